package fairengine

import (
	"log/slog"
	"time"

	"github.com/c360/semfair/document"
	"github.com/c360/semfair/errors"
	"github.com/c360/semfair/metric"
	"github.com/c360/semfair/ontology"
	"github.com/c360/semfair/score"
	"github.com/c360/semfair/validate"
)

// Engine runs the full assessment pipeline over a metadata document:
// validation, ontology mapping, scoring, and the quality metrics projection.
type Engine struct {
	validator *validate.Validator
	mapper    *ontology.Mapper
	scorer    *score.Scorer
	logger    *slog.Logger
	metrics   *engineMetrics
	enrich    bool
}

// Result carries everything one assessment pass produced. The scored
// document itself is updated in place through AttachQuality.
type Result struct {
	Report      validate.Report
	Annotation  ontology.Annotation
	Scores      score.Scores
	Suggestions []string
}

// Option configures the engine.
type Option func(*Engine)

// WithValidator replaces the default validator.
func WithValidator(v *validate.Validator) Option {
	return func(e *Engine) { e.validator = v }
}

// WithMapper replaces the default ontology mapper.
func WithMapper(m *ontology.Mapper) Option {
	return func(e *Engine) { e.mapper = m }
}

// WithScorer replaces the default scorer.
func WithScorer(s *score.Scorer) Option {
	return func(e *Engine) { e.scorer = s }
}

// WithLogger sets the logger for pipeline diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithMetricsRegistry enables Prometheus instrumentation. A nil registry
// leaves metrics disabled.
func WithMetricsRegistry(registry *metric.MetricsRegistry) Option {
	return func(e *Engine) { e.metrics = newEngineMetrics(registry) }
}

// WithEnrichment makes Process write resolved ontology terms back into the
// document before validation, instead of mapping read-only.
func WithEnrichment() Option {
	return func(e *Engine) { e.enrich = true }
}

// New creates an engine wired with default collaborators. Options replace
// individual stages; an engine without options assesses against the builtin
// technique registry and vocabulary.
func New(opts ...Option) *Engine {
	e := &Engine{
		validator: validate.New(),
		mapper:    ontology.New(),
		scorer:    score.New(),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Process assesses the document and attaches the resulting quality metrics.
// The pipeline is fixed: optional ontology enrichment, then validation,
// mapping, scoring, and the AttachQuality projection. Any checkable
// document yields a result; only a nil document or a mutation during
// processing fails.
//
// Processing an unchanged document twice yields identical results, so
// callers may re-run the pipeline freely as fields are filled in.
func (e *Engine) Process(d *document.Document) (*Result, error) {
	if d == nil {
		return nil, errors.WrapInvalid(errors.ErrNilDocument, "fairengine", "Process", "process document")
	}

	start := time.Now()
	status := "error"
	defer func() {
		e.metrics.recordProcess(d.Technique.Name, status, time.Since(start))
	}()

	var (
		ann ontology.Annotation
		err error
	)
	if e.enrich {
		// Enrichment mutates the document, so it runs before the
		// revision is captured for the quality projection.
		ann, err = e.mapper.Enrich(d)
	} else {
		ann, err = e.mapper.Map(d)
	}
	if err != nil {
		return nil, err
	}

	rev := d.Rev()

	rep, err := e.validator.Validate(d)
	if err != nil {
		return nil, err
	}

	scores, err := e.scorer.Score(d, rep, ann)
	if err != nil {
		return nil, err
	}

	qm := document.QualityMetrics{
		CompletenessScore:  scores.Completeness,
		FAIRScore:          scores.FAIR,
		ValidationErrors:   rep.ErrorMessages(),
		ValidationWarnings: rep.WarningMessages(),
	}
	if err := d.AttachQuality(qm, rev); err != nil {
		return nil, err
	}

	if !rep.Valid {
		e.logger.Warn("document has validation errors",
			"experiment_id", d.ExperimentID,
			"technique", d.Technique.Name,
			"errors", len(rep.Errors),
			"warnings", len(rep.Warnings))
	}

	result := &Result{
		Report:      rep,
		Annotation:  ann,
		Scores:      scores,
		Suggestions: e.scorer.Suggest(d, rep, ann),
	}

	status = "invalid"
	if rep.Valid {
		status = "valid"
	}
	e.metrics.recordOutcome(d.Technique.Name, rep, ann, scores)

	return result, nil
}
