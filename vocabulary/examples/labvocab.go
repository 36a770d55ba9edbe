// Package examples provides reference vocabulary extensions.
// These are NOT part of the core vocabulary - they demonstrate how a lab
// should add its own terms alongside the builtin EMMO snapshot.
//
// Applications should create similar packages in their own codebases, using
// the published IRIs of whatever ontology their terms come from; the
// example.org namespace below stands in for a lab-internal vocabulary.
package examples

import "github.com/c360/semfair/vocabulary"

// LabVocabularyBase is the namespace for lab-internal terms that have no
// published ontology class yet.
const LabVocabularyBase = "https://echem.example.org/vocab"

// LabTerms returns example lab-specific terms: an electrode material and an
// electrolyte the builtin EMMO snapshot does not cover.
func LabTerms() []vocabulary.Term {
	return []vocabulary.Term{
		vocabulary.NewTerm("gold", vocabulary.CategoryMaterial,
			LabVocabularyBase+"#gold", "Gold",
			vocabulary.WithDefinition("A noble metal electrode material, often used for self-assembled monolayers."),
			vocabulary.WithSynonyms("Au", "gold disk")),

		vocabulary.NewTerm("phosphate_buffer", vocabulary.CategoryElectrolyte,
			LabVocabularyBase+"#phosphate_buffer", "PhosphateBuffer",
			vocabulary.WithDefinition("A phosphate buffered electrolyte solution, commonly PBS at pH 7.4."),
			vocabulary.WithSynonyms("PBS", "phosphate buffered saline")),
	}
}

// NewLabRegistry builds a registry combining the builtin EMMO terms with the
// lab extensions. Applications would call something like this once at startup.
func NewLabRegistry() (*vocabulary.Registry, error) {
	return vocabulary.New(append(vocabulary.Builtin(), LabTerms()...)...)
}
