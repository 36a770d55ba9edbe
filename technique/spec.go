package technique

import (
	"regexp"
	"strings"
)

// Kind describes the value shape of a technique parameter.
type Kind string

const (
	// KindScalar parameters hold one numeric value.
	KindScalar Kind = "scalar"
	// KindList parameters hold an ordered numeric sequence, like the
	// [high, low] frequency range of an impedance sweep.
	KindList Kind = "list"
)

// Bounds is an advisory [Min, Max] range for a scalar parameter. Bounds
// describe the span instruments realistically deliver, not physical limits;
// the validator grades excursions by how far outside they fall.
type Bounds struct {
	Min float64
	Max float64
}

// Contains reports whether v lies within the bounds, inclusive.
func (b Bounds) Contains(v float64) bool {
	return v >= b.Min && v <= b.Max
}

// ParamSpec describes one expected parameter of a technique: its value
// shape, unit, default, and optional advisory bounds. Specs are immutable
// reference data.
type ParamSpec struct {
	// Name is the parameter key in snake_case, e.g. "scan_rate".
	Name string

	// Unit is the measurement unit symbol, empty for dimensionless counts.
	Unit string

	// Kind is the value shape. Zero value means scalar.
	Kind Kind

	// Default is the suggested starting value: float64 for scalar
	// parameters, []float64 for list parameters.
	Default any

	// Bounds are optional advisory limits for scalar parameters and for
	// the elements of list parameters. Nil means unbounded.
	Bounds *Bounds

	// Description is a one-line human explanation of the parameter.
	Description string
}

// ColumnSpec describes one dataset column a technique's export is expected
// to contain. Matching is case-insensitive search over trimmed headers, loose
// enough to absorb instrument naming variation ("Potential/V", "E (V)").
type ColumnSpec struct {
	// Name is the human-facing label used in findings, e.g. "Potential (V)".
	Name string

	// Pattern is the regular expression a header must satisfy.
	Pattern string

	re *regexp.Regexp
}

// Matches reports whether the trimmed header satisfies the column pattern.
func (c ColumnSpec) Matches(header string) bool {
	if c.re == nil {
		return false
	}
	return c.re.MatchString(strings.TrimSpace(header))
}

// compile builds the case-insensitive matcher for the spec's pattern.
func (c *ColumnSpec) compile() error {
	re, err := regexp.Compile("(?i)" + c.Pattern)
	if err != nil {
		return err
	}
	c.re = re
	return nil
}

// AdvisoryKind selects the rule a technique advisory evaluates. Advisories
// are declarative sanity checks beyond simple bounds; the validator
// dispatches on kind, so new techniques add rows of data, never new control
// flow.
type AdvisoryKind string

const (
	// AdvisoryMinWindow warns when the absolute difference of two scalar
	// parameters is below Threshold.
	AdvisoryMinWindow AdvisoryKind = "min_window"

	// AdvisoryDescending warns when a list parameter does not run from
	// high to low.
	AdvisoryDescending AdvisoryKind = "descending"

	// AdvisoryMinValue warns when a scalar parameter, or any element of a
	// list parameter, is below Threshold.
	AdvisoryMinValue AdvisoryKind = "min_value"
)

// Advisory is one declarative sanity rule over a technique's parameters.
// Advisories only ever produce warnings.
type Advisory struct {
	// Kind selects the rule.
	Kind AdvisoryKind

	// Params names the parameters the rule consumes. MinWindow takes two,
	// the others one.
	Params []string

	// Threshold is the rule's numeric limit, unused by Descending.
	Threshold float64

	// Message is the human-facing warning text.
	Message string
}
