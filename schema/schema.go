// Package schema defines the structural contract for metadata documents:
// required fields, closed enumerations, identifier patterns, and hard
// physical ranges. The contract is described as data and walked by check
// methods; each check returns the full list of violations rather than
// stopping at the first.
//
// Error codes are stable and machine readable:
//   - "required": mandatory field is empty
//   - "enum":     value not in the allowed set
//   - "pattern":  identifier does not match its format
//   - "range":    numeric value outside its physical bounds
package schema

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/c360/semfair/document"
	"github.com/c360/semfair/technique"
)

// FieldError reports one contract violation on a named document field.
type FieldError struct {
	Field   string `json:"field"`   // dotted path, e.g. "experimental_setup.electrolyte"
	Message string `json:"message"` // human-readable description
	Code    string `json:"code"`    // machine-readable code
}

// Violation codes.
const (
	CodeRequired = "required"
	CodeEnum     = "enum"
	CodePattern  = "pattern"
	CodeRange    = "range"
)

var (
	experimentIDPattern = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)
	orcidPattern        = regexp.MustCompile(`^\d{4}-\d{4}-\d{4}-\d{3}[\dX]$`)
	doiPattern          = regexp.MustCompile(`^10\.\d{4,9}/\S+$`)
	emailPattern        = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// Atmosphere values accepted by the setup section.
var atmospheres = []string{"Air", "Nitrogen", "Argon", "Other"}

// License identifiers accepted by the reusable section.
var licenses = []string{
	"CC-BY-4.0",
	"CC-BY-SA-4.0",
	"CC-BY-NC-4.0",
	"CC0-1.0",
	"MIT",
	"Apache-2.0",
	"Other",
}

// Atmospheres returns the allowed atmosphere values.
func Atmospheres() []string {
	return append([]string(nil), atmospheres...)
}

// Licenses returns the allowed license identifiers.
func Licenses() []string {
	return append([]string(nil), licenses...)
}

// Contract is the structural contract a document is checked against. The
// technique enumeration is injected so the contract follows whatever
// registry the caller runs with.
type Contract struct {
	techniques []string
}

// New builds a contract accepting the given technique names.
func New(techniques []string) *Contract {
	return &Contract{techniques: append([]string(nil), techniques...)}
}

var (
	defaultOnce     sync.Once
	defaultContract *Contract
)

// Default returns the contract for the builtin technique registry.
func Default() *Contract {
	defaultOnce.Do(func() {
		var names []string
		for _, t := range technique.Default().Techniques() {
			names = append(names, string(t))
		}
		defaultContract = New(names)
	})
	return defaultContract
}

// Check runs every contract group in order: required fields, enumerations,
// identifier patterns, physical ranges. The returned slice is empty for a
// conforming document.
func (c *Contract) Check(d *document.Document) []FieldError {
	if d == nil {
		return []FieldError{{
			Field:   "document",
			Message: "document is nil",
			Code:    CodeRequired,
		}}
	}
	var errs []FieldError
	errs = append(errs, c.CheckRequired(d)...)
	errs = append(errs, c.CheckEnums(d)...)
	errs = append(errs, c.CheckPatterns(d)...)
	errs = append(errs, c.CheckRanges(d)...)
	return errs
}

// requiredFields lists the mandatory string fields and how to read them.
var requiredFields = []struct {
	path string
	get  func(*document.Document) string
}{
	{"experiment_id", func(d *document.Document) string { return d.ExperimentID }},
	{"schema_version", func(d *document.Document) string { return d.SchemaVersion }},
	{"technique.name", func(d *document.Document) string { return d.Technique.Name }},
	{"experimental_setup.working_electrode", func(d *document.Document) string { return d.Setup.WorkingElectrode }},
	{"experimental_setup.reference_electrode", func(d *document.Document) string { return d.Setup.ReferenceElectrode }},
	{"experimental_setup.counter_electrode", func(d *document.Document) string { return d.Setup.CounterElectrode }},
	{"experimental_setup.electrolyte", func(d *document.Document) string { return d.Setup.Electrolyte }},
}

// CheckRequired reports mandatory fields that are empty or whitespace.
func (c *Contract) CheckRequired(d *document.Document) []FieldError {
	var errs []FieldError
	for _, f := range requiredFields {
		if strings.TrimSpace(f.get(d)) == "" {
			errs = append(errs, FieldError{
				Field:   f.path,
				Message: fmt.Sprintf("field %q is required", f.path),
				Code:    CodeRequired,
			})
		}
	}
	if d.CreatedDate.IsZero() {
		errs = append(errs, FieldError{
			Field:   "created_date",
			Message: `field "created_date" is required`,
			Code:    CodeRequired,
		})
	}
	return errs
}

// CheckEnums reports values outside their closed sets. Empty optional fields
// pass; emptiness is a completeness concern, not a contract one.
func (c *Contract) CheckEnums(d *document.Document) []FieldError {
	var errs []FieldError
	if v := d.Technique.Name; v != "" && !contains(c.techniques, v) {
		errs = append(errs, enumError("technique.name", v, c.techniques))
	}
	if v := d.SchemaVersion; v != "" && v != document.SchemaVersion {
		errs = append(errs, enumError("schema_version", v, []string{document.SchemaVersion}))
	}
	if v := d.Setup.Atmosphere; v != "" && !contains(atmospheres, v) {
		errs = append(errs, enumError("experimental_setup.atmosphere", v, atmospheres))
	}
	if v := d.FAIR.Reusable.License; v != "" && !contains(licenses, v) {
		errs = append(errs, enumError("fair_compliance.reusable.license", v, licenses))
	}
	return errs
}

// CheckPatterns reports malformed identifiers. Empty values pass for the
// optional identifiers (ORCID, DOI, email); the experiment ID is mandatory
// and already reported by CheckRequired when missing.
func (c *Contract) CheckPatterns(d *document.Document) []FieldError {
	var errs []FieldError
	if v := d.ExperimentID; v != "" && !experimentIDPattern.MatchString(v) {
		errs = append(errs, patternError("experiment_id", v, "a lowercase UUID"))
	}
	if v := d.Attribution.ORCID; v != "" && !orcidPattern.MatchString(v) {
		errs = append(errs, patternError("attribution.orcid", v, "0000-0000-0000-0000 with an optional X check digit"))
	}
	if v := d.RelatedWork.PublicationDOI; v != "" && !doiPattern.MatchString(v) {
		errs = append(errs, patternError("related_work.publication_doi", v, `a DOI starting with "10."`))
	}
	if v := d.Attribution.ContactEmail; v != "" && !emailPattern.MatchString(v) {
		errs = append(errs, patternError("attribution.contact_email", v, "an email address"))
	}
	return errs
}

// CheckRanges reports physical quantities outside hard bounds. These are
// contract errors, not advisories: a pH of 15 cannot be measured.
func (c *Contract) CheckRanges(d *document.Document) []FieldError {
	var errs []FieldError
	if ph := d.Setup.PH; ph != nil && (*ph < 0 || *ph > 14) {
		errs = append(errs, FieldError{
			Field:   "experimental_setup.ph",
			Message: fmt.Sprintf("pH %g is outside the physical range [0, 14]", *ph),
			Code:    CodeRange,
		})
	}
	if area := d.Setup.ScanArea; area != nil && *area < 0 {
		errs = append(errs, FieldError{
			Field:   "experimental_setup.scan_area",
			Message: fmt.Sprintf("scan area %g cm² must be non-negative", *area),
			Code:    CodeRange,
		})
	}
	return errs
}

func enumError(path, got string, allowed []string) FieldError {
	return FieldError{
		Field:   path,
		Message: fmt.Sprintf("field %q value %q must be one of: %s", path, got, strings.Join(allowed, ", ")),
		Code:    CodeEnum,
	}
}

func patternError(path, got, want string) FieldError {
	return FieldError{
		Field:   path,
		Message: fmt.Sprintf("field %q value %q is not %s", path, got, want),
		Code:    CodePattern,
	}
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
