package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics contains the engine-level metrics for document processing.
// Domain extensions (e.g. a lab service embedding the engine) register
// their own collectors through the MetricsRegistry instead of adding
// fields here.
type Metrics struct {
	// Processing metrics
	DocumentsProcessed *prometheus.CounterVec
	ProcessingDuration *prometheus.HistogramVec

	// Validation metrics
	FindingsTotal *prometheus.CounterVec

	// Scoring metrics
	CompletenessScore *prometheus.HistogramVec
	FAIRScore         *prometheus.HistogramVec

	// Ontology metrics
	MappingCoverage *prometheus.HistogramVec
}

// scoreBuckets covers the [0,1] score range in tenths.
var scoreBuckets = prometheus.LinearBuckets(0, 0.1, 11)

// NewMetrics creates a new Metrics instance with all engine metrics
func NewMetrics() *Metrics {
	return &Metrics{
		DocumentsProcessed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "semfair",
				Subsystem: "engine",
				Name:      "documents_processed_total",
				Help:      "Total number of documents processed",
			},
			[]string{"technique", "status"},
		),

		ProcessingDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "semfair",
				Subsystem: "engine",
				Name:      "processing_duration_seconds",
				Help:      "Document processing duration in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 10, 6),
			},
			[]string{"operation"},
		),

		FindingsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "semfair",
				Subsystem: "validation",
				Name:      "findings_total",
				Help:      "Total number of validation findings",
			},
			[]string{"technique", "severity"},
		),

		CompletenessScore: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "semfair",
				Subsystem: "scoring",
				Name:      "completeness_score",
				Help:      "Distribution of completeness scores",
				Buckets:   scoreBuckets,
			},
			[]string{"technique"},
		),

		FAIRScore: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "semfair",
				Subsystem: "scoring",
				Name:      "fair_score",
				Help:      "Distribution of FAIR scores",
				Buckets:   scoreBuckets,
			},
			[]string{"technique"},
		),

		MappingCoverage: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "semfair",
				Subsystem: "ontology",
				Name:      "mapping_coverage",
				Help:      "Distribution of vocabulary mapping coverage",
				Buckets:   scoreBuckets,
			},
			[]string{"technique"},
		),
	}
}

// RecordDocumentProcessed increments the processed document counter
func (c *Metrics) RecordDocumentProcessed(technique, status string) {
	c.DocumentsProcessed.WithLabelValues(technique, status).Inc()
}

// RecordProcessingDuration records how long one engine operation took
func (c *Metrics) RecordProcessingDuration(operation string, duration time.Duration) {
	c.ProcessingDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordFindings adds validation finding counts by severity
func (c *Metrics) RecordFindings(technique string, errors, warnings int) {
	if errors > 0 {
		c.FindingsTotal.WithLabelValues(technique, "error").Add(float64(errors))
	}
	if warnings > 0 {
		c.FindingsTotal.WithLabelValues(technique, "warning").Add(float64(warnings))
	}
}

// RecordScores observes one document's completeness and FAIR scores
func (c *Metrics) RecordScores(technique string, completeness, fair float64) {
	c.CompletenessScore.WithLabelValues(technique).Observe(completeness)
	c.FAIRScore.WithLabelValues(technique).Observe(fair)
}

// RecordMappingCoverage observes one document's vocabulary mapping coverage
func (c *Metrics) RecordMappingCoverage(technique string, coverage float64) {
	c.MappingCoverage.WithLabelValues(technique).Observe(coverage)
}
