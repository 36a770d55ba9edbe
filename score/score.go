// Package score turns a document, its validation report, and its ontology
// annotation into completeness and FAIR scores.
//
// Both scores are pure functions of their inputs: no randomness, no clock,
// no state. Completeness is the fraction of definable fields the researcher
// actually populated, where a field still holding its seeded default counts
// as unpopulated. The FAIR score is the unweighted mean of the four letter
// sub-scores, each the satisfied fraction of its own checklist. Validation
// errors are not an extra penalty: an empty required field already counts
// against completeness, and counting the same gap twice would skew
// comparisons between documents of different optional-field density.
package score

import (
	"strings"

	"github.com/c360/semfair/document"
	"github.com/c360/semfair/errors"
	"github.com/c360/semfair/ontology"
	"github.com/c360/semfair/technique"
	"github.com/c360/semfair/validate"
)

// Scores is the scoring outcome for one document. All values are in [0,1].
type Scores struct {
	Completeness float64 `json:"completeness"`
	FAIR         float64 `json:"fair"`

	// Per-letter sub-scores behind the FAIR mean.
	Findable      float64 `json:"findable"`
	Accessible    float64 `json:"accessible"`
	Interoperable float64 `json:"interoperable"`
	Reusable      float64 `json:"reusable"`
}

// Scorer computes scores against a technique registry, which supplies the
// parameter defaults that completeness counting needs.
type Scorer struct {
	reg *technique.Registry
}

// Option configures a Scorer.
type Option func(*Scorer)

// WithRegistry sets the technique registry.
func WithRegistry(reg *technique.Registry) Option {
	return func(s *Scorer) {
		s.reg = reg
	}
}

// New creates a Scorer, defaulting to the builtin registry.
func New(opts ...Option) *Scorer {
	s := &Scorer{}
	for _, opt := range opts {
		opt(s)
	}
	if s.reg == nil {
		s.reg = technique.Default()
	}
	return s
}

// Score computes the completeness and FAIR scores. The validation report
// does not enter the math; it is part of the contract so that scoring and
// reporting always travel together, and Suggest uses it. Fails only for a
// nil document.
func (s *Scorer) Score(d *document.Document, rep validate.Report, ann ontology.Annotation) (Scores, error) {
	if d == nil {
		return Scores{}, errors.WrapInvalid(errors.ErrNilDocument, "score", "Score", "score document")
	}

	out := Scores{Completeness: s.completeness(d)}
	out.Findable = s.findable(d)
	out.Accessible = s.accessible(d)
	out.Interoperable = s.interoperable(d, ann)
	out.Reusable = s.reusable(d)
	out.FAIR = (out.Findable + out.Accessible + out.Interoperable + out.Reusable) / 4
	return out, nil
}

// completeness counts populated definable fields over all definable fields.
// The definable set is fixed for a given technique, so filling a field can
// only raise the score.
func (s *Scorer) completeness(d *document.Document) float64 {
	populated, definable := 0, 0

	count := func(ok bool) {
		definable++
		if ok {
			populated++
		}
	}
	filled := func(v string) bool { return strings.TrimSpace(v) != "" }

	tech := technique.Technique(d.Technique.Name)
	if desc, err := s.reg.Describe(tech); err == nil {
		count(filled(d.Technique.Description) && d.Technique.Description != desc)
	} else {
		count(filled(d.Technique.Description))
	}
	if specs, err := s.reg.SpecsFor(tech); err == nil {
		for _, spec := range specs {
			value, ok := d.Technique.Parameters[spec.Name]
			count(ok && !matchesDefault(value, spec.Default))
		}
	}

	count(filled(d.Setup.WorkingElectrode))
	count(filled(d.Setup.ReferenceElectrode))
	count(filled(d.Setup.CounterElectrode))
	count(filled(d.Setup.Electrolyte))
	count(filled(d.Setup.Temperature) && d.Setup.Temperature != document.DefaultTemperature)
	count(filled(d.Setup.Atmosphere) && d.Setup.Atmosphere != document.DefaultAtmosphere)
	count(d.Setup.PH != nil)
	count(d.Setup.ScanArea != nil)

	count(filled(d.Dataset.Filename))
	count(filled(d.Dataset.Format))
	count(filled(d.Dataset.Description))

	count(len(d.FAIR.Findable.Keywords) > 0)
	count(filled(d.FAIR.Accessible.AccessProtocol))
	count(filled(d.FAIR.Accessible.AccessURL))
	count(filled(d.FAIR.Accessible.Format))
	count(filled(d.FAIR.Interoperable.MetadataVocabulary))
	count(filled(d.FAIR.Interoperable.DataFormatStandard))
	count(filled(d.FAIR.Reusable.License))
	count(filled(d.FAIR.Reusable.Provenance))
	count(filled(d.FAIR.Reusable.QualityAssessment))

	count(filled(d.Attribution.Creator))
	count(filled(d.Attribution.Institution))
	count(filled(d.Attribution.ContactEmail))
	count(filled(d.Attribution.ORCID))

	count(filled(d.RelatedWork.PublicationDOI))
	count(filled(d.RelatedWork.FundingSource))

	if definable == 0 {
		return 0
	}
	return float64(populated) / float64(definable)
}

// matchesDefault reports whether a parameter value still equals its spec
// default, comparing through the tolerant numeric conversions.
func matchesDefault(value, def any) bool {
	switch dv := def.(type) {
	case float64:
		f, ok := technique.AsFloat(value)
		return ok && f == dv
	case []float64:
		list, ok := technique.AsFloatList(value)
		if !ok || len(list) != len(dv) {
			return false
		}
		for i := range dv {
			if list[i] != dv[i] {
				return false
			}
		}
		return true
	}
	return false
}

func (s *Scorer) findable(d *document.Document) float64 {
	return checklist(
		d.FAIR.Findable.UniqueIdentifier != "",
		len(d.FAIR.Findable.Keywords) > 0,
		d.FAIR.Findable.MetadataStandard != "",
	)
}

func (s *Scorer) accessible(d *document.Document) float64 {
	return checklist(
		d.FAIR.Accessible.AccessProtocol != "",
		d.FAIR.Accessible.AccessURL != "",
		d.FAIR.Accessible.Format != "",
	)
}

// interoperable averages the ontology mapping coverage with the presence of
// a declared data format standard.
func (s *Scorer) interoperable(d *document.Document, ann ontology.Annotation) float64 {
	format := 0.0
	if d.FAIR.Interoperable.DataFormatStandard != "" {
		format = 1
	}
	return (ann.Coverage() + format) / 2
}

func (s *Scorer) reusable(d *document.Document) float64 {
	attributed := d.Attribution.Creator != "" &&
		(d.Attribution.Institution != "" || d.Attribution.ORCID != "")
	return checklist(
		d.FAIR.Reusable.License != "",
		d.FAIR.Reusable.Provenance != "",
		attributed,
	)
}

// checklist returns the satisfied fraction of its items.
func checklist(items ...bool) float64 {
	met := 0
	for _, ok := range items {
		if ok {
			met++
		}
	}
	return float64(met) / float64(len(items))
}
