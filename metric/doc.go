// Package metric provides Prometheus-based metrics collection and an HTTP
// server for monitoring SemFair document processing.
//
// The package offers a centralized metrics registry managing both core engine
// metrics (documents processed, validation findings, score distributions) and
// custom component-specific metrics. It includes an HTTP server exposing
// metrics in Prometheus format for monitoring system integration.
//
// # Architecture
//
// The package follows a three-layer design:
//
//  1. Core Metrics: Engine-level metrics automatically registered (Metrics type)
//  2. Component Registry: Extensible registration for component-specific metrics (MetricsRegistrar interface)
//  3. HTTP Server: Metrics endpoint with health checks (Server type)
//
// This architecture separates infrastructure concerns (core metrics) from
// application concerns (component-specific metrics) while providing a unified
// metrics endpoint for monitoring systems.
//
// # Basic Usage
//
// Setting up metrics collection and the HTTP server:
//
//	registry := metric.NewMetricsRegistry()
//	server := metric.NewServer(9090, "/metrics", registry)
//
//	go func() {
//	    if err := server.Start(); err != nil {
//	        log.Printf("Metrics server error: %v", err)
//	    }
//	}()
//	defer server.Stop()
//
//	// Record core engine metrics
//	coreMetrics := registry.CoreMetrics()
//	coreMetrics.RecordDocumentProcessed("CV", "valid")
//	coreMetrics.RecordFindings("CV", 0, 3)
//	coreMetrics.RecordScores("CV", 0.81, 0.92)
//
// The server exposes Prometheus-formatted metrics at
// http://localhost:9090/metrics and a health check at
// http://localhost:9090/health.
//
// # Core Metrics
//
// The registry automatically registers core engine metrics tracking:
//
//   - Processing volume: documents_processed_total by technique and status
//   - Processing performance: processing_duration_seconds by operation
//   - Validation output: findings_total by technique and severity
//   - Score distributions: completeness_score, fair_score by technique
//   - Ontology mapping: mapping_coverage by technique
//
// All core metrics use the namespace "semfair" with subsystems matching the
// engine stage that records them:
//
//   - semfair_engine_documents_processed_total{technique="CV",status="valid"}
//   - semfair_validation_findings_total{technique="CV",severity="warning"}
//   - semfair_scoring_completeness_score{technique="CV"}
//   - semfair_ontology_mapping_coverage{technique="CV"}
//
// Score and coverage histograms use linear buckets over [0, 1] in steps of
// 0.1 so dashboards can show how a corpus distributes across compliance
// levels.
//
// # Component-Specific Metrics
//
// Applications embedding the engine can register custom metrics through the
// registry:
//
//	exportCounter := prometheus.NewCounter(prometheus.CounterOpts{
//	    Name: "bundles_exported_total",
//	    Help: "Total number of exported FAIR bundles",
//	})
//	err := registry.RegisterCounter("export", "bundles_exported_total", exportCounter)
//
// Vector metrics with labels work the same way:
//
//	uploadsVec := prometheus.NewCounterVec(
//	    prometheus.CounterOpts{
//	        Name: "uploads_total",
//	        Help: "Total dataset uploads by format",
//	    },
//	    []string{"format"},
//	)
//	err = registry.RegisterCounterVec("ingest", "uploads_total", uploadsVec)
//	uploadsVec.WithLabelValues("csv").Inc()
//
// Components hold the MetricsRegistrar interface rather than the concrete
// registry, which keeps them testable with mock registrars.
//
// # HTTP Server
//
// The metrics server provides three endpoints:
//
//   - GET / - HTML page with links to metrics and health endpoints
//   - GET /metrics - Prometheus-formatted metrics (default path, configurable)
//   - GET /health - plain health check response
//
// Server.Start() blocks, so run it in a goroutine. It returns an error when
// the server is already running, the registry is nil, or the listener fails
// (port in use, permission denied). Stop() closes the server and allows a
// later restart.
//
// # Thread Safety
//
// All registry operations are thread-safe:
//   - Registration methods use mutex protection
//   - Metric recording is lock-free (Prometheus guarantee)
//   - CoreMetrics() returns a thread-safe shared instance
//   - PrometheusRegistry() is safe for concurrent access
//
// # Error Handling
//
// Registration methods return errors for:
//
//   - Duplicate registration: the same component.metric key registered twice
//   - Prometheus conflicts: a collector colliding with one registered under
//     another key
//   - Prometheus registration failures
//
// Duplicates and conflicts are classified invalid, registration failures
// fatal, following the errors package conventions.
//
// # Design Decisions
//
// Centralized Registry: A single registry ensures a consistent metric
// namespace, prevents duplication, and enables runtime metric discovery.
//
// Core vs Component Metrics: Engine-level metrics are separated from
// component-specific metrics to distinguish pipeline health from application
// concerns.
//
// Prometheus Direct Integration: The package uses the official Prometheus
// client rather than an abstraction to leverage native features and ensure
// compatibility with the Prometheus ecosystem.
package metric
