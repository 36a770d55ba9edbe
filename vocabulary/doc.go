// Package vocabulary provides the controlled ontology vocabulary used to
// annotate electrochemistry metadata.
//
// # Overview
//
// The package ships an offline snapshot of terms from the EMMO
// electrochemistry domain ontology (https://w3id.org/emmo/domain/electrochemistry):
// measurement techniques, electrode roles, electrode materials, and
// electrolyte components, each carrying its published IRI, label, definition,
// and lookup synonyms.
//
// Terms live in an immutable Registry built once at process start. The
// builtin table is available through Default(); applications with their own
// terms build a custom registry instead:
//
//	terms := append(vocabulary.Builtin(),
//	    vocabulary.NewTerm("gold", vocabulary.CategoryMaterial,
//	        "https://echem.example.org/vocab#gold", "Gold",
//	        vocabulary.WithSynonyms("Au")))
//	reg, err := vocabulary.New(terms...)
//
// Construction validates every term and fails fast on malformed reference
// data; a defective table is a configuration defect, not a user error.
//
// # Resolution
//
// Registry.Resolve maps free-text metadata values onto terms
// deterministically: exact matches on key, label, or synonym first, then a
// containment pass so values like "Glassy carbon, 3 mm" still resolve.
// Values with no match report no term; unmapped values lower the
// interoperability score but are never errors.
//
// # Thread Safety
//
// A Registry is immutable after construction and safe for unlimited
// concurrent readers.
package vocabulary
