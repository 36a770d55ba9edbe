// Package validate runs the data-quality checks on a metadata document and
// folds the results into a Report of findings.
//
// Findings come in two severities. Errors are violations of the document
// contract or grossly unphysical values; warnings flag values that are
// unusual but recordable. Validation itself never fails for checkable input:
// the only operational error is a nil document.
//
// Checks run in a fixed order: required fields, enumerations, numeric
// ranges (hard physical bounds, then technique parameter bounds and
// advisories), dataset columns, identifier formats. Parameter and column
// checks are skipped when the technique itself is unknown, since there is
// no definition to check against.
package validate

import (
	"github.com/c360/semfair/dataset"
	"github.com/c360/semfair/document"
	"github.com/c360/semfair/errors"
	"github.com/c360/semfair/schema"
	"github.com/c360/semfair/technique"
)

// Severity ranks a finding.
type Severity string

// Finding severities.
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// String returns the severity name.
func (s Severity) String() string {
	return string(s)
}

// Finding codes for checks beyond the structural contract. Contract
// findings carry the schema package's codes unchanged.
const (
	CodeBounds           = "bounds"
	CodeType             = "type"
	CodeUnknownParameter = "unknown_parameter"
	CodeMissingParameter = "missing_parameter"
	CodeColumns          = "columns"
	CodeAdvisory         = "advisory"
	CodeRecommended      = "recommended"
)

// Finding is one validation observation about a document.
type Finding struct {
	Severity Severity `json:"severity"`
	Section  string   `json:"section"` // dotted path, e.g. "technique.parameters.scan_rate"
	Message  string   `json:"message"`
	Code     string   `json:"code"`
}

// String renders the finding as "section: message".
func (f Finding) String() string {
	return f.Section + ": " + f.Message
}

// Report is the outcome of validating one document.
type Report struct {
	Valid    bool      `json:"valid"`
	Errors   []Finding `json:"errors"`
	Warnings []Finding `json:"warnings"`
}

// add routes findings into the report by severity.
func (r *Report) add(findings ...Finding) {
	for _, f := range findings {
		if f.Severity == SeverityError {
			r.Errors = append(r.Errors, f)
			continue
		}
		r.Warnings = append(r.Warnings, f)
	}
}

// ErrorMessages returns the rendered error findings in report order.
func (r Report) ErrorMessages() []string {
	return renderFindings(r.Errors)
}

// WarningMessages returns the rendered warning findings in report order.
func (r Report) WarningMessages() []string {
	return renderFindings(r.Warnings)
}

func renderFindings(findings []Finding) []string {
	out := make([]string, 0, len(findings))
	for _, f := range findings {
		out = append(out, f.String())
	}
	return out
}

// Policy tunes how hard the validator judges out-of-range parameters.
type Policy struct {
	// GrossFactor is the magnitude ratio beyond which a bound violation
	// stops being a warning and becomes an error. Values below 1 are
	// clamped to 1, which makes every violation gross.
	GrossFactor float64
}

// DefaultPolicy returns the standard judging policy.
func DefaultPolicy() Policy {
	return Policy{GrossFactor: 10}
}

// Validator checks documents against a technique registry, a structural
// contract, and a judging policy. A zero-option Validator uses the builtin
// registry and contract.
type Validator struct {
	reg      *technique.Registry
	contract *schema.Contract
	policy   Policy
}

// Option configures a Validator.
type Option func(*Validator)

// WithRegistry sets the technique registry. Unless a contract is also
// given, the structural contract is derived from this registry's
// techniques.
func WithRegistry(reg *technique.Registry) Option {
	return func(v *Validator) {
		v.reg = reg
	}
}

// WithContract sets the structural contract.
func WithContract(c *schema.Contract) Option {
	return func(v *Validator) {
		v.contract = c
	}
}

// WithPolicy sets the judging policy.
func WithPolicy(p Policy) Option {
	return func(v *Validator) {
		v.policy = p
	}
}

// New creates a Validator.
func New(opts ...Option) *Validator {
	v := &Validator{policy: DefaultPolicy()}
	for _, opt := range opts {
		opt(v)
	}
	if v.reg == nil {
		v.reg = technique.Default()
	}
	if v.contract == nil {
		var names []string
		for _, t := range v.reg.Techniques() {
			names = append(names, string(t))
		}
		v.contract = schema.New(names)
	}
	if v.policy.GrossFactor < 1 {
		v.policy.GrossFactor = 1
	}
	return v
}

// Validate checks the document and reports every finding. It fails only
// for a nil document; any checkable document yields a report.
func (v *Validator) Validate(d *document.Document) (Report, error) {
	if d == nil {
		return Report{}, errors.WrapInvalid(errors.ErrNilDocument, "validate", "Validate", "check document")
	}

	var rep Report
	rep.add(fromFieldErrors(v.contract.CheckRequired(d))...)
	rep.add(fromFieldErrors(v.contract.CheckEnums(d))...)
	rep.add(fromFieldErrors(v.contract.CheckRanges(d))...)

	tech := technique.Technique(d.Technique.Name)
	if v.reg.Known(tech) {
		rep.add(v.checkParameters(tech, d.Technique.Parameters)...)
		rep.add(v.checkAdvisories(tech, d.Technique.Parameters)...)
		rep.add(v.checkColumns(tech, d.Dataset.ExpectedColumns)...)
	}

	rep.add(fromFieldErrors(v.contract.CheckPatterns(d))...)
	rep.add(checkRecommended(d)...)

	rep.Valid = len(rep.Errors) == 0
	return rep, nil
}

// recommendedFields are optional fields whose absence costs reuse value.
// Leaving one empty is worth a nudge but never blocks the record.
var recommendedFields = []struct {
	path  string
	label string
	get   func(*document.Document) string
}{
	{"attribution.creator", "creator name", func(d *document.Document) string { return d.Attribution.Creator }},
	{"attribution.institution", "institution", func(d *document.Document) string { return d.Attribution.Institution }},
	{"fair_compliance.reusable.license", "license", func(d *document.Document) string { return d.FAIR.Reusable.License }},
	{"related_work.publication_doi", "related publication DOI", func(d *document.Document) string { return d.RelatedWork.PublicationDOI }},
	{"dataset.description", "dataset description", func(d *document.Document) string { return d.Dataset.Description }},
}

func checkRecommended(d *document.Document) []Finding {
	var findings []Finding
	for _, f := range recommendedFields {
		if f.get(d) != "" {
			continue
		}
		findings = append(findings, Finding{
			Severity: SeverityWarning,
			Section:  f.path,
			Message:  "recommended field is empty: add " + f.label,
			Code:     CodeRecommended,
		})
	}
	return findings
}

// fromFieldErrors lifts contract violations into error findings.
func fromFieldErrors(errs []schema.FieldError) []Finding {
	findings := make([]Finding, 0, len(errs))
	for _, e := range errs {
		findings = append(findings, Finding{
			Severity: SeverityError,
			Section:  e.Field,
			Message:  e.Message,
			Code:     e.Code,
		})
	}
	return findings
}

// checkColumns compares recorded dataset columns against the technique's
// expected set. Column findings are always warnings: a sparse file is
// still recordable data.
func (v *Validator) checkColumns(tech technique.Technique, columns []string) []Finding {
	if len(columns) == 0 {
		return nil
	}
	match, err := dataset.Match(v.reg, tech, columns)
	if err != nil {
		return nil
	}

	var findings []Finding
	for _, name := range match.Missing {
		findings = append(findings, Finding{
			Severity: SeverityWarning,
			Section:  "dataset.expected_columns",
			Message:  "expected column " + quote(name) + " not found in dataset",
			Code:     CodeColumns,
		})
	}
	for _, name := range match.Unexpected {
		findings = append(findings, Finding{
			Severity: SeverityWarning,
			Section:  "dataset.expected_columns",
			Message:  "column " + quote(name) + " is not expected for " + tech.String(),
			Code:     CodeColumns,
		})
	}
	return findings
}

func quote(s string) string {
	return `"` + s + `"`
}
