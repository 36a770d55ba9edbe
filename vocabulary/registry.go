package vocabulary

import (
	"fmt"
	"strings"
	"sync"

	"github.com/c360/semfair/errors"
)

// Registry is an immutable vocabulary table. It is built once from a term
// slice, validated eagerly, and never mutated afterwards, which makes it safe
// for unlimited concurrent readers with no locking.
type Registry struct {
	terms []Term
	byKey map[string]int
}

// New builds a Registry from the given terms. Construction fails fast on
// defective reference data: a malformed term (bad key shape, invalid IRI,
// empty label, unknown category) or a duplicate key indicates a configuration
// defect, not user input, and returns a fatal-classified error.
func New(terms ...Term) (*Registry, error) {
	r := &Registry{
		terms: make([]Term, 0, len(terms)),
		byKey: make(map[string]int, len(terms)),
	}

	for _, t := range terms {
		if err := checkTerm(t); err != nil {
			return nil, errors.WrapFatal(err, "Vocabulary", "New", "term check")
		}
		if _, exists := r.byKey[t.Key]; exists {
			err := fmt.Errorf("%w: %s", errors.ErrDuplicateTerm, t.Key)
			return nil, errors.WrapFatal(err, "Vocabulary", "New", "term check")
		}

		// Copy the synonym slice so later mutation of the caller's terms
		// cannot reach into the registry.
		t.Synonyms = append([]string(nil), t.Synonyms...)
		r.byKey[t.Key] = len(r.terms)
		r.terms = append(r.terms, t)
	}

	return r, nil
}

// MustNew is New for compiled-in reference data: it panics on error. Use it
// only with term tables that are defects to get wrong, like Builtin().
func MustNew(terms ...Term) *Registry {
	r, err := New(terms...)
	if err != nil {
		panic(err)
	}
	return r
}

// checkTerm validates one term against the registry's structural rules.
func checkTerm(t Term) error {
	switch {
	case t.Key == "" || !keyPattern.MatchString(t.Key):
		return fmt.Errorf("%w: bad key %q", errors.ErrMalformedTerm, t.Key)
	case !ValidTermIRI(t.IRI):
		return fmt.Errorf("%w: bad IRI %q for key %s", errors.ErrMalformedTerm, t.IRI, t.Key)
	case t.Label == "":
		return fmt.Errorf("%w: empty label for key %s", errors.ErrMalformedTerm, t.Key)
	case !t.Category.valid():
		return fmt.Errorf("%w: unknown category %q for key %s", errors.ErrMalformedTerm, t.Category, t.Key)
	default:
		return nil
	}
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry of builtin EMMO terms, built once
// on first use.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = MustNew(Builtin()...)
	})
	return defaultRegistry
}

// Len returns the number of registered terms.
func (r *Registry) Len() int {
	return len(r.terms)
}

// Terms returns all registered terms in registration order. The slice is a
// copy; the registry itself stays immutable.
func (r *Registry) Terms() []Term {
	out := make([]Term, len(r.terms))
	copy(out, r.terms)
	return out
}

// Lookup retrieves a term by its registry key.
func (r *Registry) Lookup(key string) (Term, bool) {
	i, ok := r.byKey[key]
	if !ok {
		return Term{}, false
	}
	return r.terms[i], true
}

// TermsIn returns the terms of one category in registration order.
func (r *Registry) TermsIn(category Category) []Term {
	var out []Term
	for _, t := range r.terms {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

// Resolve maps a free-text value to a vocabulary term. When categories are
// given, only terms in those categories are considered; with none, all terms
// are.
//
// Resolution is deterministic and purely table-based: an exact pass (key
// form, label, synonyms) runs over the terms in registration order, then a
// containment pass that accepts values embedding a term name, such as
// "Glassy carbon, 3 mm". The first matching term wins. Values that resolve
// to nothing simply report no match; unmapped values are a scoring matter,
// not an error.
func (r *Registry) Resolve(value string, categories ...Category) (Term, bool) {
	normalized := Normalize(value)
	if normalized == "" {
		return Term{}, false
	}

	eligible := func(t Term) bool {
		if len(categories) == 0 {
			return true
		}
		for _, c := range categories {
			if t.Category == c {
				return true
			}
		}
		return false
	}

	for _, t := range r.terms {
		if eligible(t) && t.matchesExact(normalized) {
			return t, true
		}
	}
	for _, t := range r.terms {
		if eligible(t) && t.matchesWithin(normalized) {
			return t, true
		}
	}
	return Term{}, false
}

// Suggest returns up to limit terms whose label, synonyms, or definition
// contain the input, in registration order. A limit <= 0 applies the default
// of 5. Intended for interactive "did you mean" hints, not for resolution.
func (r *Registry) Suggest(input string, limit int, categories ...Category) []Term {
	normalized := Normalize(input)
	if normalized == "" {
		return nil
	}
	if limit <= 0 {
		limit = 5
	}

	eligible := func(t Term) bool {
		if len(categories) == 0 {
			return true
		}
		for _, c := range categories {
			if t.Category == c {
				return true
			}
		}
		return false
	}

	var out []Term
	for _, t := range r.terms {
		if len(out) == limit {
			break
		}
		if !eligible(t) {
			continue
		}
		if containsNormalized(t.Label, normalized) ||
			containsNormalized(t.Definition, normalized) ||
			anyContainsNormalized(t.Synonyms, normalized) {
			out = append(out, t)
		}
	}
	return out
}

// containsNormalized reports whether the normalized form of haystack contains
// needle, which must already be normalized.
func containsNormalized(haystack, needle string) bool {
	if haystack == "" || needle == "" {
		return false
	}
	return strings.Contains(Normalize(haystack), needle)
}

func anyContainsNormalized(haystacks []string, needle string) bool {
	for _, h := range haystacks {
		if containsNormalized(h, needle) {
			return true
		}
	}
	return false
}
