package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
)

// CLIConfig holds command-line configuration
type CLIConfig struct {
	ConfigPath  string
	DatasetPath string
	OutPath     string
	LogLevel    string
	LogFormat   string
	Enrich      bool
	MetricsPort int
	ShowVersion bool
	ShowHelp    bool
}

func parseFlags() *CLIConfig {
	cfg := &CLIConfig{}

	// Define flags with environment variable fallback
	flag.StringVar(&cfg.ConfigPath, "config",
		getEnv("SEMFAIR_CONFIG", ""),
		"Path to experiment metadata file, JSON or YAML (env: SEMFAIR_CONFIG)")

	flag.StringVar(&cfg.ConfigPath, "c",
		getEnv("SEMFAIR_CONFIG", ""),
		"Path to experiment metadata file, JSON or YAML (env: SEMFAIR_CONFIG)")

	flag.StringVar(&cfg.DatasetPath, "dataset",
		getEnv("SEMFAIR_DATASET", ""),
		"Path to measurement data file, CSV (env: SEMFAIR_DATASET)")

	flag.StringVar(&cfg.DatasetPath, "d",
		getEnv("SEMFAIR_DATASET", ""),
		"Path to measurement data file, CSV (env: SEMFAIR_DATASET)")

	flag.StringVar(&cfg.OutPath, "out",
		getEnv("SEMFAIR_OUT", ""),
		"Write a FAIR bundle ZIP here instead of printing the report (env: SEMFAIR_OUT)")

	flag.StringVar(&cfg.OutPath, "o",
		getEnv("SEMFAIR_OUT", ""),
		"Write a FAIR bundle ZIP here instead of printing the report (env: SEMFAIR_OUT)")

	flag.StringVar(&cfg.LogLevel, "log-level",
		getEnv("SEMFAIR_LOG_LEVEL", "info"),
		"Log level: debug, info, warn, error (env: SEMFAIR_LOG_LEVEL)")

	flag.StringVar(&cfg.LogFormat, "log-format",
		getEnv("SEMFAIR_LOG_FORMAT", "json"),
		"Log format: json, text (env: SEMFAIR_LOG_FORMAT)")

	flag.BoolVar(&cfg.Enrich, "enrich",
		getEnvBool("SEMFAIR_ENRICH", false),
		"Write ontology annotations into the record before validation (env: SEMFAIR_ENRICH)")

	flag.IntVar(&cfg.MetricsPort, "metrics-port",
		getEnvInt("SEMFAIR_METRICS_PORT", 0),
		"Prometheus metrics port, 0 to disable (env: SEMFAIR_METRICS_PORT)")

	flag.BoolVar(&cfg.ShowVersion, "version", false, "Show version information")
	flag.BoolVar(&cfg.ShowVersion, "v", false, "Show version information")
	flag.BoolVar(&cfg.ShowHelp, "help", false, "Show help information")
	flag.BoolVar(&cfg.ShowHelp, "h", false, "Show help information")

	// Custom usage
	flag.Usage = func() {
		printDetailedHelp()
	}

	flag.Parse()

	return cfg
}

func validateFlags(cfg *CLIConfig) error {
	// Skip validation for special flags
	if cfg.ShowVersion || cfg.ShowHelp {
		return nil
	}

	// Validate experiment config file
	if cfg.ConfigPath == "" {
		return fmt.Errorf("missing experiment config: set -config or SEMFAIR_CONFIG")
	}
	if _, err := os.Stat(cfg.ConfigPath); err != nil {
		return fmt.Errorf("config file not found: %s", cfg.ConfigPath)
	}

	// Validate dataset file when given
	if cfg.DatasetPath != "" {
		if _, err := os.Stat(cfg.DatasetPath); err != nil {
			return fmt.Errorf("dataset file not found: %s", cfg.DatasetPath)
		}
	}

	// Bundles package the data file alongside the metadata
	if cfg.OutPath != "" && cfg.DatasetPath == "" {
		return fmt.Errorf("bundle export needs a dataset: set -dataset alongside -out")
	}

	// Validate log level
	validLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLevels, cfg.LogLevel) {
		return fmt.Errorf("invalid log level: %s", cfg.LogLevel)
	}

	// Validate log format
	validFormats := []string{"json", "text"}
	if !contains(validFormats, cfg.LogFormat) {
		return fmt.Errorf("invalid log format: %s", cfg.LogFormat)
	}

	// Validate metrics port
	if cfg.MetricsPort < 0 || cfg.MetricsPort > 65535 {
		return fmt.Errorf("invalid metrics port: %d", cfg.MetricsPort)
	}

	return nil
}

func printDetailedHelp() {
	_, _ = fmt.Fprintf(os.Stderr, `%s - FAIR assessment for electrochemistry data

Usage: %s [options]

Options:
`, appName, os.Args[0])
	flag.PrintDefaults()
	_, _ = fmt.Fprintf(os.Stderr, `
Examples:
  # Print a FAIR assessment report for an experiment
  %s --config=experiment.json --dataset=cv_run1.csv

  # Package data and metadata into a FAIR bundle
  %s --config=experiment.json --dataset=cv_run1.csv --out=bundle.zip

  # Annotate the record with ontology terms before assessing
  %s --config=experiment.json --enrich

  # Re-assess the metadata from a previously exported bundle
  %s --config=metadata.yaml

  # Run with environment variables
  export SEMFAIR_CONFIG=experiment.json
  export SEMFAIR_LOG_LEVEL=debug
  %s

Version: %s
Build: %s
`, os.Args[0], os.Args[0], os.Args[0], os.Args[0], os.Args[0], Version, BuildTime)
}

// Environment variable helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// Utility function to check if slice contains string
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
