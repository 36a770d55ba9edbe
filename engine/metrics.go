package fairengine

import (
	"time"

	"github.com/c360/semfair/metric"
	"github.com/c360/semfair/ontology"
	"github.com/c360/semfair/score"
	"github.com/c360/semfair/validate"
)

// engineMetrics records pipeline outcomes into the core metric set.
// A nil receiver disables recording, so the engine never branches on
// whether instrumentation is configured.
type engineMetrics struct {
	core *metric.Metrics
}

// newEngineMetrics wires the engine to a metrics registry. A nil registry
// returns nil, which keeps all record methods as no-ops.
func newEngineMetrics(registry *metric.MetricsRegistry) *engineMetrics {
	if registry == nil {
		return nil
	}
	return &engineMetrics{core: registry.CoreMetrics()}
}

// recordProcess records one Process call with its outcome status.
func (m *engineMetrics) recordProcess(technique, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.core.RecordDocumentProcessed(technique, status)
	m.core.RecordProcessingDuration("process", duration)
}

// recordOutcome records the assessment results of a completed pass.
func (m *engineMetrics) recordOutcome(technique string, rep validate.Report, ann ontology.Annotation, s score.Scores) {
	if m == nil {
		return
	}
	m.core.RecordFindings(technique, len(rep.Errors), len(rep.Warnings))
	m.core.RecordScores(technique, s.Completeness, s.FAIR)
	m.core.RecordMappingCoverage(technique, ann.Coverage())
}
