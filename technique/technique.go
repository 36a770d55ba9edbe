// Package technique provides the per-technique parameter registry that
// parameterizes metadata validation.
package technique

// Technique identifies an electrochemical measurement method.
//
// Values are the short names researchers and instruments use. The set of
// known techniques is defined by the Registry, not by this type: adding a
// technique means registering a new Definition, never extending a switch.
type Technique string

// Builtin techniques. The constants are conveniences; Registry.Known is the
// authority on what a given registry accepts.
const (
	// CV is cyclic voltammetry.
	CV Technique = "CV"
	// DPV is differential pulse voltammetry.
	DPV Technique = "DPV"
	// SWV is square wave voltammetry.
	SWV Technique = "SWV"
	// EIS is electrochemical impedance spectroscopy.
	EIS Technique = "EIS"
	// CA is chronoamperometry.
	CA Technique = "CA"
)

// String returns the string representation of the technique
func (t Technique) String() string {
	return string(t)
}
