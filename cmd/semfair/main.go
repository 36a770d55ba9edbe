// Package main implements the entry point for the semfair command.
// SemFair assesses electrochemistry experiment metadata for FAIR
// compliance: it validates a record against its technique, scores
// completeness and FAIR readiness, and packages data plus metadata
// into a reusable bundle.
package main

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/c360/semfair/dataset"
	"github.com/c360/semfair/document"
	fairengine "github.com/c360/semfair/engine"
	"github.com/c360/semfair/export"
	"github.com/c360/semfair/metric"
	"github.com/c360/semfair/technique"
)

// Build information constants
const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "semfair"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	// Run application with proper error handling
	if err := run(); err != nil {
		slog.Error("Assessment failed", "error", err, "exit_code", 1)
		os.Exit(1)
	}
}

func run() error {
	// Parse and validate CLI flags
	cliCfg, logger, shouldExit, err := initializeCLI()
	if shouldExit || err != nil {
		return err
	}

	// Build the metadata document from the experiment config
	doc, err := loadExperiment(cliCfg.ConfigPath)
	if err != nil {
		return fmt.Errorf("load experiment: %w", err)
	}

	// Attach the data file when one was given
	var data []byte
	if cliCfg.DatasetPath != "" {
		data, err = attachDataset(doc, cliCfg.DatasetPath)
		if err != nil {
			return fmt.Errorf("attach dataset: %w", err)
		}
	}

	// Metrics are always recorded; they are only served on request
	registry := metric.NewMetricsRegistry()
	stopMetrics := serveMetrics(registry, cliCfg.MetricsPort)
	defer stopMetrics()

	res, err := assess(doc, cliCfg, logger, registry)
	if err != nil {
		return fmt.Errorf("assess document: %w", err)
	}

	return emit(doc, data, res, cliCfg)
}

// initializeCLI parses flags and sets up logging
func initializeCLI() (*CLIConfig, *slog.Logger, bool, error) {
	cliCfg := parseFlags()
	if err := validateFlags(cliCfg); err != nil {
		return nil, nil, false, fmt.Errorf("invalid flags: %w", err)
	}

	if cliCfg.ShowVersion {
		fmt.Printf("%s version %s\n", appName, Version)
		return nil, nil, true, nil
	}

	if cliCfg.ShowHelp {
		printHelp()
		return nil, nil, true, nil
	}

	logger := setupLogger(cliCfg.LogLevel, cliCfg.LogFormat)
	slog.SetDefault(logger)

	slog.Info("Starting SemFair (FAIR metadata assessment)",
		"version", Version,
		"build_time", BuildTime,
		"config_path", cliCfg.ConfigPath)

	return cliCfg, logger, false, nil
}

// loadExperiment reads the experiment description and builds a metadata
// document from it. Known techniques start from registry defaults so
// partial configs inherit parameter values; unknown techniques still
// load and are left for validation to judge.
func loadExperiment(path string) (*document.Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var head struct {
		Technique struct {
			Name string `json:"name" yaml:"name"`
		} `json:"technique" yaml:"technique"`
	}
	if err := decodeConfig(path, raw, &head); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	tech := technique.Technique(head.Technique.Name)
	doc, err := document.NewWithDefaults(technique.Default(), tech)
	if err != nil {
		doc = document.New(tech)
	}

	seedID := doc.ExperimentID
	if err := decodeConfig(path, raw, doc); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// Keep the findable identifier aligned with the experiment ID unless
	// the config pinned a different one.
	if doc.FAIR.Findable.UniqueIdentifier == "" || doc.FAIR.Findable.UniqueIdentifier == seedID {
		doc.FAIR.Findable.UniqueIdentifier = doc.ExperimentID
	}

	return doc, nil
}

// decodeConfig picks the codec from the file extension. YAML covers the
// metadata.yaml shipped in exported bundles, JSON everything else.
func decodeConfig(path string, raw []byte, v any) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(raw, v)
	default:
		return json.Unmarshal(raw, v)
	}
}

// attachDataset reads the data file, captures its header row, and
// replaces the document's dataset descriptor, keeping any description
// the config carried. Returns the raw bytes for bundle export.
func attachDataset(doc *document.Document, path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	headers, err := dataset.ReadHeader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	info := dataset.Describe(path, data)
	info.Description = doc.Dataset.Description
	info.ExpectedColumns = headers
	doc.Apply(document.WithDataset(info))

	slog.Debug("Dataset attached",
		"filename", info.Filename,
		"size_bytes", info.SizeBytes,
		"columns", len(headers))

	return data, nil
}

// serveMetrics exposes the Prometheus registry over HTTP when port is
// non-zero. The returned stop function is safe to call either way.
func serveMetrics(registry *metric.MetricsRegistry, port int) func() {
	if port == 0 {
		return func() {}
	}

	srv := metric.NewServer(port, "/metrics", registry)
	go func() {
		if err := srv.Start(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			slog.Error("Metrics server failed", "error", err)
		}
	}()
	slog.Info("Serving metrics", "address", srv.Address())

	return func() {
		if err := srv.Stop(); err != nil {
			slog.Warn("Metrics server stop failed", "error", err)
		}
	}
}

// assess runs the engine over the document and logs the outcome.
func assess(
	doc *document.Document,
	cliCfg *CLIConfig,
	logger *slog.Logger,
	registry *metric.MetricsRegistry,
) (*fairengine.Result, error) {
	opts := []fairengine.Option{
		fairengine.WithLogger(logger),
		fairengine.WithMetricsRegistry(registry),
	}
	if cliCfg.Enrich {
		opts = append(opts, fairengine.WithEnrichment())
	}

	res, err := fairengine.New(opts...).Process(doc)
	if err != nil {
		return nil, err
	}

	slog.Info("Assessment complete",
		"experiment_id", doc.ExperimentID,
		"technique", doc.Technique.Name,
		"valid", res.Report.Valid,
		"completeness", res.Scores.Completeness,
		"fair", res.Scores.FAIR)

	return res, nil
}

// emit writes the bundle when an output path was given, otherwise prints
// the assessment report to stdout.
func emit(doc *document.Document, data []byte, res *fairengine.Result, cliCfg *CLIConfig) error {
	if cliCfg.OutPath == "" {
		_, err := os.Stdout.Write(export.RenderReport(doc, res))
		return err
	}

	out := cliCfg.OutPath
	if fi, err := os.Stat(out); err == nil && fi.IsDir() {
		out = filepath.Join(out, export.BundleName(doc))
	}

	if err := export.WriteBundle(out, doc, data, res); err != nil {
		// Show what blocked the export before failing
		_, _ = os.Stdout.Write(export.RenderReport(doc, res))
		return fmt.Errorf("write bundle: %w", err)
	}

	slog.Info("Bundle written", "path", out)
	return nil
}

// printHelp prints help information
func printHelp() {
	printDetailedHelp()
}
