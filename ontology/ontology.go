// Package ontology maps document fields onto controlled vocabulary terms
// and enriches documents with the resulting annotations.
//
// Mapping is read-only and deterministic: the mapper walks a fixed set of
// fields, resolves each non-empty value against the vocabulary, and reports
// what resolved and what did not. Enrichment applies the technique term to
// the document and records the vocabulary reference, leaving
// researcher-entered values untouched.
package ontology

import (
	"github.com/c360/semfair/document"
	"github.com/c360/semfair/errors"
	"github.com/c360/semfair/vocabulary"
)

// TermUse records one field value resolved to a vocabulary term.
type TermUse struct {
	Field string          `json:"field"` // dotted path, e.g. "experimental_setup.electrolyte"
	Value string          `json:"value"` // the value that resolved
	Term  vocabulary.Term `json:"term"`
}

// Annotation is the outcome of mapping one document.
type Annotation struct {
	// Ontology is the base IRI of the vocabulary the terms come from.
	Ontology string `json:"ontology"`

	// TermsUsed lists resolved fields in document order.
	TermsUsed []TermUse `json:"terms_used"`

	// Unmapped lists non-empty fields whose value resolved to no term.
	Unmapped []string `json:"unmapped"`

	// Checked is the number of mappable fields in the document shape.
	Checked int `json:"checked"`
}

// Coverage is the fraction of mappable fields that resolved to a term.
// Empty fields count against coverage: an unfilled field interoperates no
// better than an unmappable one.
func (a Annotation) Coverage() float64 {
	if a.Checked == 0 {
		return 0
	}
	return float64(len(a.TermsUsed)) / float64(a.Checked)
}

// mappedFields is the fixed set of fields the mapper resolves, with the
// vocabulary categories each value is allowed to come from.
var mappedFields = []struct {
	path       string
	categories []vocabulary.Category
	get        func(*document.Document) string
}{
	{
		path:       "technique.name",
		categories: []vocabulary.Category{vocabulary.CategoryTechnique},
		get:        func(d *document.Document) string { return d.Technique.Name },
	},
	{
		path:       "experimental_setup.working_electrode",
		categories: []vocabulary.Category{vocabulary.CategoryMaterial, vocabulary.CategoryElectrode},
		get:        func(d *document.Document) string { return d.Setup.WorkingElectrode },
	},
	{
		path:       "experimental_setup.reference_electrode",
		categories: []vocabulary.Category{vocabulary.CategoryMaterial, vocabulary.CategoryElectrode},
		get:        func(d *document.Document) string { return d.Setup.ReferenceElectrode },
	},
	{
		path:       "experimental_setup.counter_electrode",
		categories: []vocabulary.Category{vocabulary.CategoryMaterial, vocabulary.CategoryElectrode},
		get:        func(d *document.Document) string { return d.Setup.CounterElectrode },
	},
	{
		path:       "experimental_setup.electrolyte",
		categories: []vocabulary.Category{vocabulary.CategoryElectrolyte, vocabulary.CategoryMaterial},
		get:        func(d *document.Document) string { return d.Setup.Electrolyte },
	},
}

// Mapper resolves document fields against a vocabulary registry.
type Mapper struct {
	vocab *vocabulary.Registry
}

// Option configures a Mapper.
type Option func(*Mapper)

// WithVocabulary sets the vocabulary registry.
func WithVocabulary(reg *vocabulary.Registry) Option {
	return func(m *Mapper) {
		m.vocab = reg
	}
}

// New creates a Mapper, defaulting to the builtin vocabulary.
func New(opts ...Option) *Mapper {
	m := &Mapper{}
	for _, opt := range opts {
		opt(m)
	}
	if m.vocab == nil {
		m.vocab = vocabulary.Default()
	}
	return m
}

// Vocabulary returns the registry the mapper resolves against.
func (m *Mapper) Vocabulary() *vocabulary.Registry {
	return m.vocab
}

// Map resolves the document's mappable fields. It fails only for a nil
// document.
func (m *Mapper) Map(d *document.Document) (Annotation, error) {
	if d == nil {
		return Annotation{}, errors.WrapInvalid(errors.ErrNilDocument, "ontology", "Map", "map document terms")
	}

	ann := Annotation{
		Ontology: vocabulary.EMMOElectrochemistryBase,
		Checked:  len(mappedFields),
	}
	for _, f := range mappedFields {
		value := f.get(d)
		if value == "" {
			continue
		}
		term, ok := m.vocab.Resolve(value, f.categories...)
		if !ok {
			ann.Unmapped = append(ann.Unmapped, f.path)
			continue
		}
		ann.TermsUsed = append(ann.TermsUsed, TermUse{Field: f.path, Value: value, Term: term})
	}
	return ann, nil
}

// Enrich maps the document and applies what resolved: the technique block
// gains its term's IRI, label, and definition, and an empty metadata
// vocabulary reference is filled with the ontology name. Fields already
// carrying the right values are left alone, so enriching twice changes
// nothing and the document revision stays put.
func (m *Mapper) Enrich(d *document.Document) (Annotation, error) {
	ann, err := m.Map(d)
	if err != nil {
		return Annotation{}, err
	}

	var opts []document.Option
	for _, use := range ann.TermsUsed {
		if use.Field != "technique.name" {
			continue
		}
		term := use.Term
		if d.Technique.EMMOIRI != term.IRI ||
			d.Technique.EMMOLabel != term.Label ||
			d.Technique.EMMODefinition != term.Definition {
			opts = append(opts, document.WithOntologyAnnotation(term.IRI, term.Label, term.Definition))
		}
		break
	}
	if d.FAIR.Interoperable.MetadataVocabulary == "" {
		opts = append(opts, document.WithMetadataVocabulary(vocabulary.OntologyName))
	}

	if len(opts) > 0 {
		d.Apply(opts...)
	}
	return ann, nil
}
