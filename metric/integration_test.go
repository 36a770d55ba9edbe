package metric

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockExporter simulates an application component that registers its own
// metrics alongside the core engine metrics
type MockExporter struct {
	name    string
	metrics struct {
		bundlesExported prometheus.Counter
		pendingExports  prometheus.Gauge
	}
}

func NewMockExporter(name string) *MockExporter {
	return &MockExporter{name: name}
}

func (m *MockExporter) Name() string {
	return m.name
}

// RegisterMetrics registers the exporter's metrics with the registrar
func (m *MockExporter) RegisterMetrics(registrar MetricsRegistrar) error {
	m.metrics.bundlesExported = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "semfair",
		Subsystem: "export",
		Name:      "bundles_exported_total",
		Help:      "Total number of exported FAIR bundles",
	})

	err := registrar.RegisterCounter(m.name, "bundles_exported_total", m.metrics.bundlesExported)
	if err != nil {
		return err
	}

	m.metrics.pendingExports = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "semfair",
		Subsystem: "export",
		Name:      "pending_exports",
		Help:      "Number of export requests waiting to be written",
	})

	return registrar.RegisterGauge(m.name, "pending_exports", m.metrics.pendingExports)
}

// Export simulates bundle exports and updates metrics
func (m *MockExporter) Export(bundles, pending int) {
	m.metrics.bundlesExported.Add(float64(bundles))
	m.metrics.pendingExports.Set(float64(pending))
}

func TestMetricsIntegration_ComponentRegistration(t *testing.T) {
	registry := NewMetricsRegistry()

	exporter := NewMockExporter("exporter")

	err := exporter.RegisterMetrics(registry)
	require.NoError(t, err)

	// Simulate some activity
	exporter.Export(10, 5)

	foundMetrics := gatheredNames(t, registry)

	assert.True(t, foundMetrics["semfair_export_bundles_exported_total"],
		"Custom bundles_exported metric should be registered")
	assert.True(t, foundMetrics["semfair_export_pending_exports"],
		"Custom pending_exports metric should be registered")
}

func TestMetricsIntegration_NoDuplicateRegistration(t *testing.T) {
	registry := NewMetricsRegistry()

	// Two components with the same name (this shouldn't happen in real usage)
	exporter1 := NewMockExporter("duplicate-exporter")
	exporter2 := NewMockExporter("duplicate-exporter")

	err := exporter1.RegisterMetrics(registry)
	require.NoError(t, err)

	// Second registration under the same name must fail
	err = exporter2.RegisterMetrics(registry)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestMetricsIntegration_CoreAndComponentMetricsSeparate(t *testing.T) {
	registry := NewMetricsRegistry()
	coreMetrics := registry.CoreMetrics()

	exporter := NewMockExporter("separation-test")
	err := exporter.RegisterMetrics(registry)
	require.NoError(t, err)

	// Use core metrics
	coreMetrics.RecordDocumentProcessed("CV", "valid")
	coreMetrics.RecordScores("CV", 0.9, 0.85)

	// Use component-specific metrics
	exporter.Export(5, 3)

	foundMetrics := gatheredNames(t, registry)

	// Verify core metrics
	assert.True(t, foundMetrics["semfair_engine_documents_processed_total"],
		"core documents processed metric should be present")
	assert.True(t, foundMetrics["semfair_scoring_completeness_score"],
		"core completeness score metric should be present")

	// Verify component-specific metrics
	assert.True(t, foundMetrics["semfair_export_bundles_exported_total"],
		"Component bundles exported metric should be present")
	assert.True(t, foundMetrics["semfair_export_pending_exports"],
		"Component pending exports metric should be present")
}

func TestMetricsIntegration_MetricsUnregistration(t *testing.T) {
	registry := NewMetricsRegistry()

	exporter := NewMockExporter("unregister-test")

	err := exporter.RegisterMetrics(registry)
	require.NoError(t, err)

	// Export once to make metrics visible
	exporter.Export(1, 1)

	assert.True(t, gatheredNames(t, registry)["semfair_export_bundles_exported_total"],
		"Metric should be present before unregistration")

	success := registry.Unregister("unregister-test", "bundles_exported_total")
	assert.True(t, success, "Unregistration should succeed")

	foundAfter := gatheredNames(t, registry)
	assert.False(t, foundAfter["semfair_export_bundles_exported_total"],
		"Metric should be absent after unregistration")
	assert.True(t, foundAfter["semfair_export_pending_exports"],
		"Other component metrics should remain")
}

func TestMetricsIntegration_ConflictingComponents(t *testing.T) {
	registry := NewMetricsRegistry()

	// Different component names but identical Prometheus metric names
	exporter1 := NewMockExporter("archive-writer")
	exporter2 := NewMockExporter("report-writer")

	err := exporter1.RegisterMetrics(registry)
	require.NoError(t, err)

	// The second component fails because it registers the same Prometheus
	// metric names, which the registry reports as a conflict
	err = exporter2.RegisterMetrics(registry)
	assert.Error(t, err, "Second component should fail due to Prometheus metric name conflict")
	assert.Contains(t, err.Error(), "prometheus conflict")
}
