package validate

import (
	"fmt"
	"math"
	"sort"

	"github.com/c360/semfair/technique"
)

// checkParameters judges the technique block's parameter values against the
// registry specs: shape, then bounds. Unknown and unset parameters are
// warnings; a value of the wrong shape is an error because nothing further
// can be checked; an out-of-bounds value is a warning until it is grossly
// out, at which point it is an error.
func (v *Validator) checkParameters(tech technique.Technique, params map[string]any) []Finding {
	specs, err := v.reg.SpecsFor(tech)
	if err != nil {
		return nil
	}

	known := make(map[string]bool, len(specs))
	var findings []Finding
	for _, spec := range specs {
		known[spec.Name] = true
		path := "technique.parameters." + spec.Name

		value, ok := params[spec.Name]
		if !ok {
			findings = append(findings, Finding{
				Severity: SeverityWarning,
				Section:  path,
				Message:  fmt.Sprintf("parameter %q is not set", spec.Name),
				Code:     CodeMissingParameter,
			})
			continue
		}

		switch spec.Kind {
		case technique.KindList:
			list, ok := technique.AsFloatList(value)
			if !ok {
				findings = append(findings, Finding{
					Severity: SeverityError,
					Section:  path,
					Message:  fmt.Sprintf("parameter %q must be a list of numbers", spec.Name),
					Code:     CodeType,
				})
				continue
			}
			if spec.Bounds != nil {
				for _, elem := range list {
					if f, bad := v.boundsFinding(spec, path, elem); bad {
						findings = append(findings, f)
						break
					}
				}
			}
		default:
			f, ok := technique.AsFloat(value)
			if !ok {
				findings = append(findings, Finding{
					Severity: SeverityError,
					Section:  path,
					Message:  fmt.Sprintf("parameter %q must be a number", spec.Name),
					Code:     CodeType,
				})
				continue
			}
			if spec.Bounds != nil {
				if finding, bad := v.boundsFinding(spec, path, f); bad {
					findings = append(findings, finding)
				}
			}
		}
	}

	extra := make([]string, 0)
	for name := range params {
		if !known[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	for _, name := range extra {
		findings = append(findings, Finding{
			Severity: SeverityWarning,
			Section:  "technique.parameters." + name,
			Message:  fmt.Sprintf("parameter %q is not defined for %s", name, tech),
			Code:     CodeUnknownParameter,
		})
	}
	return findings
}

// boundsFinding reports a violation of a parameter's typical range. The
// second return is false when the value is in range.
func (v *Validator) boundsFinding(spec technique.ParamSpec, path string, value float64) (Finding, bool) {
	b := *spec.Bounds
	if b.Contains(value) {
		return Finding{}, false
	}

	severity := SeverityWarning
	degree := "outside"
	if grossViolation(value, b, v.policy.GrossFactor) {
		severity = SeverityError
		degree = "far outside"
	}
	unit := ""
	if spec.Unit != "" {
		unit = " " + spec.Unit
	}
	return Finding{
		Severity: severity,
		Section:  path,
		Message: fmt.Sprintf("parameter %q = %g%s is %s the typical range [%g, %g]",
			spec.Name, value, unit, degree, b.Min, b.Max),
		Code: CodeBounds,
	}, true
}

// grossViolation reports whether a value violates its bound by more than
// the policy's magnitude factor. The comparison is against the violated
// bound: an order of magnitude beyond it, or below a tenth of it on the
// low side, is no longer a plausible typo.
func grossViolation(value float64, b technique.Bounds, factor float64) bool {
	bound := b.Min
	if value > b.Max {
		bound = b.Max
	}
	limit := math.Abs(bound)
	mag := math.Abs(value)
	if mag > limit*factor {
		return true
	}
	return bound != 0 && mag < limit/factor
}

// checkAdvisories evaluates the technique's advisory rules. Advisories are
// always warnings, and a rule whose parameters are missing or malformed is
// skipped; those problems are already reported by checkParameters.
func (v *Validator) checkAdvisories(tech technique.Technique, params map[string]any) []Finding {
	advs, err := v.reg.AdvisoriesFor(tech)
	if err != nil {
		return nil
	}

	var findings []Finding
	for _, adv := range advs {
		if v.advisoryFires(adv, params) {
			findings = append(findings, Finding{
				Severity: SeverityWarning,
				Section:  "technique.parameters",
				Message:  adv.Message,
				Code:     CodeAdvisory,
			})
		}
	}
	return findings
}

// advisoryFires dispatches on the advisory kind over its parameter values.
func (v *Validator) advisoryFires(adv technique.Advisory, params map[string]any) bool {
	switch adv.Kind {
	case technique.AdvisoryMinWindow:
		a, okA := floatParam(params, adv.Params[0])
		b, okB := floatParam(params, adv.Params[1])
		return okA && okB && math.Abs(a-b) < adv.Threshold

	case technique.AdvisoryDescending:
		list, ok := listParam(params, adv.Params[0])
		if !ok || len(list) < 2 {
			return false
		}
		for i := 1; i < len(list); i++ {
			if list[i] >= list[i-1] {
				return true
			}
		}
		return false

	case technique.AdvisoryMinValue:
		if value, ok := floatParam(params, adv.Params[0]); ok {
			return value < adv.Threshold
		}
		list, ok := listParam(params, adv.Params[0])
		if !ok {
			return false
		}
		for _, value := range list {
			if value < adv.Threshold {
				return true
			}
		}
		return false
	}
	return false
}

func floatParam(params map[string]any, name string) (float64, bool) {
	value, ok := params[name]
	if !ok {
		return 0, false
	}
	return technique.AsFloat(value)
}

func listParam(params map[string]any, name string) ([]float64, bool) {
	value, ok := params[name]
	if !ok {
		return nil, false
	}
	return technique.AsFloatList(value)
}
