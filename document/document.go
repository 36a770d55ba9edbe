// Package document defines the metadata document for an electrochemistry
// experiment: the technique block, experimental setup, dataset descriptor,
// FAIR compliance sections, attribution, and derived quality metrics.
//
// A Document is a mutable aggregate with a monotonically increasing revision.
// Construction seeds identity fields (experiment ID, creation time, schema
// version); every Apply call bumps the revision and clears any attached
// quality metrics, so stale derived state is always detectable.
package document

import (
	"time"

	"github.com/google/uuid"

	"github.com/c360/semfair/errors"
	"github.com/c360/semfair/technique"
)

const (
	// SchemaVersion is the document schema version stamped at creation.
	SchemaVersion = "1.0.0"

	// MetadataStandard names the convention the document follows.
	MetadataStandard = "EChem-FAIR v1.0"

	// DefaultTemperature and DefaultAtmosphere seed the setup section when a
	// document is created with defaults.
	DefaultTemperature = "Room temperature (20±2°C)"
	DefaultAtmosphere  = "Air"
)

// Document is the complete metadata record for one experiment.
type Document struct {
	ExperimentID  string    `json:"experiment_id" yaml:"experiment_id"`
	CreatedDate   time.Time `json:"created_date" yaml:"created_date"`
	SchemaVersion string    `json:"schema_version" yaml:"schema_version"`

	Technique   TechniqueBlock    `json:"technique" yaml:"technique"`
	Setup       ExperimentalSetup `json:"experimental_setup" yaml:"experimental_setup"`
	Dataset     DatasetInfo       `json:"dataset" yaml:"dataset"`
	FAIR        FAIRCompliance    `json:"fair_compliance" yaml:"fair_compliance"`
	Attribution Attribution       `json:"attribution" yaml:"attribution"`
	RelatedWork RelatedWork       `json:"related_work" yaml:"related_work"`

	// Quality holds the derived metrics, or nil when none are attached.
	Quality *QualityMetrics `json:"quality_metrics,omitempty" yaml:"quality_metrics,omitempty"`

	// rev counts mutations. It starts at 1 and increases on every Apply.
	rev uint64
}

// Option mutates a document during construction or Apply.
type Option func(*Document)

// New creates a document for the given technique with fresh identity fields.
// It accepts any technique name; validation judges the content later. Use
// NewWithDefaults to seed registry defaults for a known technique.
func New(tech technique.Technique, opts ...Option) *Document {
	d := &Document{
		ExperimentID:  uuid.NewString(),
		CreatedDate:   time.Now().UTC(),
		SchemaVersion: SchemaVersion,
		Technique: TechniqueBlock{
			Name:       string(tech),
			Parameters: make(map[string]any),
		},
		rev: 1,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// NewWithDefaults creates a document for a registered technique, seeding the
// registry's default parameter values, the technique description, the setup
// temperature and atmosphere, and the findable identity tags. Returns
// ErrUnknownTechnique when the registry does not know the technique.
func NewWithDefaults(reg *technique.Registry, tech technique.Technique, opts ...Option) (*Document, error) {
	defaults, err := reg.Defaults(tech)
	if err != nil {
		return nil, err
	}
	desc, err := reg.Describe(tech)
	if err != nil {
		return nil, err
	}

	d := New(tech)
	d.Technique.Description = desc
	d.Technique.Parameters = defaults
	d.Setup.Temperature = DefaultTemperature
	d.Setup.Atmosphere = DefaultAtmosphere
	d.FAIR.Findable.UniqueIdentifier = d.ExperimentID
	d.FAIR.Findable.MetadataStandard = MetadataStandard
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Apply mutates the document in place, bumps its revision, and discards any
// attached quality metrics.
func (d *Document) Apply(opts ...Option) {
	for _, opt := range opts {
		opt(d)
	}
	d.rev++
	d.Quality = nil
}

// Rev reports the document's current revision.
func (d *Document) Rev() uint64 {
	return d.rev
}

// AttachQuality attaches metrics computed at revision at. It fails with
// ErrStaleMetrics when the document has been mutated since, so a concurrent
// edit cannot silently pin outdated scores to the record.
func (d *Document) AttachQuality(qm QualityMetrics, at uint64) error {
	if at != d.rev {
		return errors.WrapInvalid(errors.ErrStaleMetrics, "document", "AttachQuality",
			"attach quality metrics")
	}
	qm.rev = at
	d.Quality = &qm
	return nil
}

// QualityCurrent reports whether attached metrics match the document's
// current revision. A document with no metrics is not current.
func (d *Document) QualityCurrent() bool {
	return d.Quality != nil && d.Quality.rev == d.rev
}

// Clone returns a deep copy of the document, including parameter maps and
// slices, sharing no mutable state with the original.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	c := *d
	if d.Technique.Parameters != nil {
		c.Technique.Parameters = make(map[string]any, len(d.Technique.Parameters))
		for k, v := range d.Technique.Parameters {
			if list, ok := v.([]float64); ok {
				c.Technique.Parameters[k] = append([]float64(nil), list...)
				continue
			}
			c.Technique.Parameters[k] = v
		}
	}
	if d.Setup.PH != nil {
		ph := *d.Setup.PH
		c.Setup.PH = &ph
	}
	if d.Setup.ScanArea != nil {
		area := *d.Setup.ScanArea
		c.Setup.ScanArea = &area
	}
	c.Dataset.ExpectedColumns = append([]string(nil), d.Dataset.ExpectedColumns...)
	c.FAIR.Findable.Keywords = append([]string(nil), d.FAIR.Findable.Keywords...)
	if d.Quality != nil {
		qm := *d.Quality
		qm.ValidationErrors = append([]string(nil), d.Quality.ValidationErrors...)
		qm.ValidationWarnings = append([]string(nil), d.Quality.ValidationWarnings...)
		c.Quality = &qm
	}
	return &c
}

// WithDescription sets the technique description.
func WithDescription(desc string) Option {
	return func(d *Document) {
		d.Technique.Description = desc
	}
}

// WithParameter sets one technique parameter.
func WithParameter(name string, value any) Option {
	return func(d *Document) {
		if d.Technique.Parameters == nil {
			d.Technique.Parameters = make(map[string]any)
		}
		d.Technique.Parameters[name] = value
	}
}

// WithParameters merges the given parameters over the current set.
func WithParameters(params map[string]any) Option {
	return func(d *Document) {
		if d.Technique.Parameters == nil {
			d.Technique.Parameters = make(map[string]any, len(params))
		}
		for k, v := range params {
			d.Technique.Parameters[k] = v
		}
	}
}

// WithElectrodes sets the four mandatory cell fields in one call.
func WithElectrodes(working, reference, counter, electrolyte string) Option {
	return func(d *Document) {
		d.Setup.WorkingElectrode = working
		d.Setup.ReferenceElectrode = reference
		d.Setup.CounterElectrode = counter
		d.Setup.Electrolyte = electrolyte
	}
}

// WithSetup replaces the whole experimental setup section, including any
// seeded temperature and atmosphere defaults.
func WithSetup(setup ExperimentalSetup) Option {
	return func(d *Document) {
		d.Setup = setup
	}
}

// WithTemperature sets the setup temperature description.
func WithTemperature(temperature string) Option {
	return func(d *Document) {
		d.Setup.Temperature = temperature
	}
}

// WithAtmosphere sets the setup atmosphere.
func WithAtmosphere(atmosphere string) Option {
	return func(d *Document) {
		d.Setup.Atmosphere = atmosphere
	}
}

// WithPH records the electrolyte pH.
func WithPH(ph float64) Option {
	return func(d *Document) {
		d.Setup.PH = &ph
	}
}

// WithScanArea records the electrode scan area in cm².
func WithScanArea(area float64) Option {
	return func(d *Document) {
		d.Setup.ScanArea = &area
	}
}

// WithDataset sets the dataset descriptor.
func WithDataset(ds DatasetInfo) Option {
	return func(d *Document) {
		d.Dataset = ds
	}
}

// WithKeywords sets the findable keywords.
func WithKeywords(keywords ...string) Option {
	return func(d *Document) {
		d.FAIR.Findable.Keywords = keywords
	}
}

// WithAccess sets the accessible facet: protocol, URL, and format.
func WithAccess(protocol, url, format string) Option {
	return func(d *Document) {
		d.FAIR.Accessible.AccessProtocol = protocol
		d.FAIR.Accessible.AccessURL = url
		d.FAIR.Accessible.Format = format
	}
}

// WithMetadataVocabulary sets the interoperable vocabulary reference.
func WithMetadataVocabulary(vocab string) Option {
	return func(d *Document) {
		d.FAIR.Interoperable.MetadataVocabulary = vocab
	}
}

// WithDataFormatStandard sets the interoperable data format standard.
func WithDataFormatStandard(standard string) Option {
	return func(d *Document) {
		d.FAIR.Interoperable.DataFormatStandard = standard
	}
}

// WithLicense sets the reuse license.
func WithLicense(license string) Option {
	return func(d *Document) {
		d.FAIR.Reusable.License = license
	}
}

// WithProvenance sets the reuse provenance note.
func WithProvenance(provenance string) Option {
	return func(d *Document) {
		d.FAIR.Reusable.Provenance = provenance
	}
}

// WithQualityAssessment sets the reuse quality assessment note.
func WithQualityAssessment(assessment string) Option {
	return func(d *Document) {
		d.FAIR.Reusable.QualityAssessment = assessment
	}
}

// WithAttribution sets the attribution section.
func WithAttribution(attr Attribution) Option {
	return func(d *Document) {
		d.Attribution = attr
	}
}

// WithRelatedWork sets the related work section.
func WithRelatedWork(rw RelatedWork) Option {
	return func(d *Document) {
		d.RelatedWork = rw
	}
}

// WithOntologyAnnotation sets the technique's ontology annotation fields.
func WithOntologyAnnotation(iri, label, definition string) Option {
	return func(d *Document) {
		d.Technique.EMMOIRI = iri
		d.Technique.EMMOLabel = label
		d.Technique.EMMODefinition = definition
	}
}
