package vocabulary

import (
	"regexp"
	"strings"
)

// Category classifies what a vocabulary term may annotate.
//
// The mapper uses categories to restrict which terms are considered for a
// given document field: a technique name is only ever resolved against
// technique terms, an electrode description against electrode and material
// terms, and so on.
type Category string

const (
	// CategoryTechnique terms name electrochemical measurement methods.
	CategoryTechnique Category = "technique"

	// CategoryElectrode terms name electrode roles in a cell (working,
	// reference, counter).
	CategoryElectrode Category = "electrode"

	// CategoryMaterial terms name electrode construction materials.
	CategoryMaterial Category = "material"

	// CategoryElectrolyte terms name electrolyte components.
	CategoryElectrolyte Category = "electrolyte"
)

// String returns the string representation of the category
func (c Category) String() string {
	return string(c)
}

// valid reports whether the category is one of the defined set.
func (c Category) valid() bool {
	switch c {
	case CategoryTechnique, CategoryElectrode, CategoryMaterial, CategoryElectrolyte:
		return true
	default:
		return false
	}
}

// Term is one immutable vocabulary entry: a canonical ontology class plus the
// lookup forms under which free-text metadata values resolve to it.
type Term struct {
	// Key is the stable registry key in snake_case, e.g. "cyclic_voltammetry".
	Key string

	// IRI is the canonical ontology identifier for the class.
	IRI string

	// Label is the ontology's CamelCase class label, e.g. "CyclicVoltammetry".
	Label string

	// Definition is the human-readable class definition.
	Definition string

	// Category restricts which document fields the term may annotate.
	Category Category

	// Synonyms are alternative names matched during resolution. Short
	// synonyms (abbreviations like "CV" or "Pt") match whole tokens only;
	// longer synonyms match as substrings of the candidate value.
	Synonyms []string
}

// Option is a functional option for constructing vocabulary terms.
type Option func(*Term)

// WithDefinition sets the human-readable class definition.
func WithDefinition(def string) Option {
	return func(t *Term) {
		t.Definition = def
	}
}

// WithSynonyms appends alternative names matched during resolution.
func WithSynonyms(synonyms ...string) Option {
	return func(t *Term) {
		t.Synonyms = append(t.Synonyms, synonyms...)
	}
}

// NewTerm constructs a Term with the given identity and options applied.
// Validity is checked when the term enters a Registry, not here.
func NewTerm(key string, category Category, iri, label string, opts ...Option) Term {
	t := Term{
		Key:      key,
		IRI:      iri,
		Label:    label,
		Category: category,
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// keyPattern is the required shape of a term key: lowercase snake_case.
var keyPattern = regexp.MustCompile(`^[a-z0-9]+(_[a-z0-9]+)*$`)

// Normalize lowercases s, trims surrounding whitespace, and collapses runs of
// internal whitespace to single spaces. All matching in this package operates
// on normalized values.
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// keyForm converts a normalized value to key shape ("cyclic voltammetry" ->
// "cyclic_voltammetry") for direct key lookups.
func keyForm(normalized string) string {
	return strings.ReplaceAll(normalized, " ", "_")
}

// spaceForm converts a term key to its natural-language shape
// ("cyclic_voltammetry" -> "cyclic voltammetry").
func spaceForm(key string) string {
	return strings.ReplaceAll(key, "_", " ")
}

// tokens splits a normalized value into alphanumeric tokens. Used to match
// short abbreviation synonyms without false substring hits ("pt" must not
// match inside "adopted").
func tokens(normalized string) []string {
	return strings.FieldsFunc(normalized, func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9')
	})
}

// shortSynonymLimit is the synonym length at or below which matching requires
// a whole-token hit rather than substring containment.
const shortSynonymLimit = 2

// matchesExact reports whether the normalized value names this term exactly:
// by key form, natural key form, label, or any synonym.
func (t Term) matchesExact(normalized string) bool {
	if keyForm(normalized) == t.Key || normalized == spaceForm(t.Key) {
		return true
	}
	if normalized == strings.ToLower(t.Label) {
		return true
	}
	for _, syn := range t.Synonyms {
		if normalized == Normalize(syn) {
			return true
		}
	}
	return false
}

// matchesWithin reports whether the term's name forms occur inside the
// normalized value. This is the loose pass that lets "Glassy carbon, 3 mm"
// resolve to the glassy carbon material term.
func (t Term) matchesWithin(normalized string) bool {
	candidates := make([]string, 0, len(t.Synonyms)+1)
	candidates = append(candidates, spaceForm(t.Key))
	for _, syn := range t.Synonyms {
		candidates = append(candidates, Normalize(syn))
	}

	var toks []string
	for _, cand := range candidates {
		if cand == "" {
			continue
		}
		if len([]rune(cand)) <= shortSynonymLimit {
			if toks == nil {
				toks = tokens(normalized)
			}
			for _, tok := range toks {
				if tok == cand {
					return true
				}
			}
			continue
		}
		if strings.Contains(normalized, cand) {
			return true
		}
	}
	return false
}
