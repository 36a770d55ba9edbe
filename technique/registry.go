package technique

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/c360/semfair/errors"
)

// Definition binds a technique to its ordered parameter specs, expected
// dataset columns, and advisory rules.
type Definition struct {
	Technique   Technique
	Description string
	Params      []ParamSpec
	Columns     []ColumnSpec
	Advisories  []Advisory
}

// Registry is the immutable technique catalog. It is built once, validated
// eagerly, and safe for unlimited concurrent readers. Lookups for techniques
// outside the registered set fail with ErrUnknownTechnique rather than
// returning silent empties.
type Registry struct {
	order []Technique
	defs  map[Technique]Definition
}

var specNamePattern = regexp.MustCompile(`^[a-z0-9]+(_[a-z0-9]+)*$`)

// New builds a Registry from technique definitions. Construction fails fast
// on defective reference data with a fatal-classified error: bad parameter
// shapes, uncompilable column patterns, or duplicate registrations indicate
// a configuration defect, not user input.
func New(defs ...Definition) (*Registry, error) {
	r := &Registry{
		order: make([]Technique, 0, len(defs)),
		defs:  make(map[Technique]Definition, len(defs)),
	}

	for _, def := range defs {
		if def.Technique == "" {
			err := fmt.Errorf("%w: empty technique name", errors.ErrMalformedSpec)
			return nil, errors.WrapFatal(err, "Technique", "New", "definition check")
		}
		if _, exists := r.defs[def.Technique]; exists {
			err := fmt.Errorf("%w: %s", errors.ErrDuplicateSpec, def.Technique)
			return nil, errors.WrapFatal(err, "Technique", "New", "definition check")
		}
		if err := checkDefinition(&def); err != nil {
			return nil, errors.WrapFatal(err, "Technique", "New", "definition check")
		}

		r.order = append(r.order, def.Technique)
		r.defs[def.Technique] = def
	}

	return r, nil
}

// MustNew is New for compiled-in reference data: it panics on error.
func MustNew(defs ...Definition) *Registry {
	r, err := New(defs...)
	if err != nil {
		panic(err)
	}
	return r
}

// checkDefinition validates one definition and compiles its column patterns
// in place.
func checkDefinition(def *Definition) error {
	seen := make(map[string]bool, len(def.Params))
	for _, p := range def.Params {
		if err := checkParam(def.Technique, p); err != nil {
			return err
		}
		if seen[p.Name] {
			return fmt.Errorf("%w: %s.%s", errors.ErrDuplicateSpec, def.Technique, p.Name)
		}
		seen[p.Name] = true
	}

	for i := range def.Columns {
		col := &def.Columns[i]
		if col.Name == "" || col.Pattern == "" {
			return fmt.Errorf("%w: %s column %d missing name or pattern",
				errors.ErrMalformedSpec, def.Technique, i)
		}
		if err := col.compile(); err != nil {
			return fmt.Errorf("%w: %s column %q: %v",
				errors.ErrMalformedSpec, def.Technique, col.Name, err)
		}
	}

	for _, adv := range def.Advisories {
		if err := checkAdvisory(def, adv); err != nil {
			return err
		}
	}
	return nil
}

func checkParam(t Technique, p ParamSpec) error {
	if p.Name == "" || !specNamePattern.MatchString(p.Name) {
		return fmt.Errorf("%w: %s parameter %q", errors.ErrMalformedSpec, t, p.Name)
	}

	kind := p.Kind
	if kind == "" {
		kind = KindScalar
	}
	switch kind {
	case KindScalar:
		if p.Default != nil {
			if _, ok := AsFloat(p.Default); !ok {
				return fmt.Errorf("%w: %s.%s scalar default %v",
					errors.ErrMalformedSpec, t, p.Name, p.Default)
			}
		}
	case KindList:
		if p.Default != nil {
			if _, ok := AsFloatList(p.Default); !ok {
				return fmt.Errorf("%w: %s.%s list default %v",
					errors.ErrMalformedSpec, t, p.Name, p.Default)
			}
		}
	default:
		return fmt.Errorf("%w: %s.%s unknown kind %q", errors.ErrMalformedSpec, t, p.Name, p.Kind)
	}

	if p.Bounds != nil && p.Bounds.Min > p.Bounds.Max {
		return fmt.Errorf("%w: %s.%s bounds [%v, %v]",
			errors.ErrMalformedSpec, t, p.Name, p.Bounds.Min, p.Bounds.Max)
	}
	return nil
}

func checkAdvisory(def *Definition, adv Advisory) error {
	params := make(map[string]bool, len(def.Params))
	for _, p := range def.Params {
		params[p.Name] = true
	}
	for _, name := range adv.Params {
		if !params[name] {
			return fmt.Errorf("%w: %s advisory references unknown parameter %q",
				errors.ErrMalformedSpec, def.Technique, name)
		}
	}

	switch adv.Kind {
	case AdvisoryMinWindow:
		if len(adv.Params) != 2 {
			return fmt.Errorf("%w: %s min_window advisory needs two parameters",
				errors.ErrMalformedSpec, def.Technique)
		}
	case AdvisoryDescending, AdvisoryMinValue:
		if len(adv.Params) != 1 {
			return fmt.Errorf("%w: %s %s advisory needs one parameter",
				errors.ErrMalformedSpec, def.Technique, adv.Kind)
		}
	default:
		return fmt.Errorf("%w: %s unknown advisory kind %q",
			errors.ErrMalformedSpec, def.Technique, adv.Kind)
	}
	if adv.Message == "" {
		return fmt.Errorf("%w: %s advisory missing message", errors.ErrMalformedSpec, def.Technique)
	}
	return nil
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry of builtin techniques, built once
// on first use.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = MustNew(Builtin()...)
	})
	return defaultRegistry
}

// Techniques returns the registered techniques in registration order.
func (r *Registry) Techniques() []Technique {
	out := make([]Technique, len(r.order))
	copy(out, r.order)
	return out
}

// Known reports whether the technique is registered.
func (r *Registry) Known(t Technique) bool {
	_, ok := r.defs[t]
	return ok
}

// lookup returns the definition or an ErrUnknownTechnique wrapped with the
// calling method's context.
func (r *Registry) lookup(t Technique, method string) (Definition, error) {
	def, ok := r.defs[t]
	if !ok {
		err := fmt.Errorf("%w: %q", errors.ErrUnknownTechnique, t)
		return Definition{}, errors.WrapInvalid(err, "Registry", method, "technique lookup")
	}
	return def, nil
}

// SpecsFor returns the ordered parameter specs of a technique. Requesting an
// unregistered technique fails with ErrUnknownTechnique.
func (r *Registry) SpecsFor(t Technique) ([]ParamSpec, error) {
	def, err := r.lookup(t, "SpecsFor")
	if err != nil {
		return nil, err
	}
	out := make([]ParamSpec, len(def.Params))
	copy(out, def.Params)
	return out, nil
}

// SpecOf returns one parameter spec of a technique. An unregistered technique
// fails with ErrUnknownTechnique, an unregistered parameter with
// ErrUnknownParameter.
func (r *Registry) SpecOf(t Technique, param string) (ParamSpec, error) {
	def, err := r.lookup(t, "SpecOf")
	if err != nil {
		return ParamSpec{}, err
	}
	for _, p := range def.Params {
		if p.Name == param {
			return p, nil
		}
	}
	perr := fmt.Errorf("%w: %s.%s", errors.ErrUnknownParameter, t, param)
	return ParamSpec{}, errors.WrapInvalid(perr, "Registry", "SpecOf", "parameter lookup")
}

// ColumnSpecsFor returns the expected dataset columns of a technique in
// declaration order.
func (r *Registry) ColumnSpecsFor(t Technique) ([]ColumnSpec, error) {
	def, err := r.lookup(t, "ColumnSpecsFor")
	if err != nil {
		return nil, err
	}
	out := make([]ColumnSpec, len(def.Columns))
	copy(out, def.Columns)
	return out, nil
}

// AdvisoriesFor returns the advisory rules of a technique.
func (r *Registry) AdvisoriesFor(t Technique) ([]Advisory, error) {
	def, err := r.lookup(t, "AdvisoriesFor")
	if err != nil {
		return nil, err
	}
	out := make([]Advisory, len(def.Advisories))
	copy(out, def.Advisories)
	return out, nil
}

// Describe returns the one-line human description of a technique.
func (r *Registry) Describe(t Technique) (string, error) {
	def, err := r.lookup(t, "Describe")
	if err != nil {
		return "", err
	}
	return def.Description, nil
}

// Defaults returns a fresh parameter map seeded with the technique's default
// values, in the shape the document model stores parameters. List defaults
// are copied so callers can mutate freely.
func (r *Registry) Defaults(t Technique) (map[string]any, error) {
	def, err := r.lookup(t, "Defaults")
	if err != nil {
		return nil, err
	}

	out := make(map[string]any, len(def.Params))
	for _, p := range def.Params {
		if p.Default == nil {
			continue
		}
		if list, ok := AsFloatList(p.Default); ok && p.Kind == KindList {
			out[p.Name] = list
			continue
		}
		if v, ok := AsFloat(p.Default); ok {
			out[p.Name] = v
		}
	}
	return out, nil
}

// AsFloat converts a parameter value to float64, accepting int and float
// shapes that JSON and YAML decoding produce.
func AsFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// AsFloatList converts a parameter value to []float64, accepting typed and
// decoded ([]any) list shapes. The returned slice is always a fresh copy.
func AsFloatList(v any) ([]float64, bool) {
	switch list := v.(type) {
	case []float64:
		out := make([]float64, len(list))
		copy(out, list)
		return out, true
	case []int:
		out := make([]float64, len(list))
		for i, n := range list {
			out[i] = float64(n)
		}
		return out, true
	case []any:
		out := make([]float64, len(list))
		for i, item := range list {
			n, ok := AsFloat(item)
			if !ok {
				return nil, false
			}
			out[i] = n
		}
		return out, true
	default:
		return nil, false
	}
}
