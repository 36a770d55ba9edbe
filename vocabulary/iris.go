// Package vocabulary provides the controlled ontology vocabulary for
// electrochemistry metadata.
package vocabulary

import (
	"net/url"
	"regexp"
	"strings"
)

// Base IRI constants for the EMMO electrochemistry domain ontology.
const (
	// EMMOElectrochemistryBase is the published IRI of the EMMO
	// electrochemistry domain ontology that the builtin terms are drawn from.
	EMMOElectrochemistryBase = "https://w3id.org/emmo/domain/electrochemistry"

	// OntologyName identifies the vocabulary source in exported metadata.
	OntologyName = "EMMO Electrochemistry Domain Ontology"

	// OntologyVersion is the snapshot version of the builtin term table.
	// The table is curated offline; bump this when terms are added or revised.
	OntologyVersion = "1.0.0"
)

// emmoTermPattern matches term IRIs minted by the EMMO electrochemistry
// domain: the ontology base plus a fragment of the form
// "electrochemistry_" followed by a UUID with underscores.
var emmoTermPattern = regexp.MustCompile(
	`^https://w3id\.org/emmo/domain/electrochemistry#electrochemistry_[0-9a-f]{8}(_[0-9a-f]{4}){3}_[0-9a-f]{12}$`)

// ValidTermIRI reports whether iri is usable as a vocabulary term identifier:
// an absolute http(s) URL that names a class, either by fragment (EMMO style)
// or by path (OBO/Wikidata style). Terms from ontologies other than EMMO are
// acceptable as long as they identify a single class.
func ValidTermIRI(iri string) bool {
	if iri == "" {
		return false
	}
	u, err := url.Parse(iri)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	if u.Host == "" {
		return false
	}
	return u.Fragment != "" || (u.Path != "" && u.Path != "/")
}

// IsEMMOTermIRI reports whether iri was minted by the EMMO electrochemistry
// domain ontology.
func IsEMMOTermIRI(iri string) bool {
	return emmoTermPattern.MatchString(iri)
}

// TermFragment returns the fragment part of a term IRI, or "" if the IRI has
// none. Useful for compact display of long EMMO identifiers.
func TermFragment(iri string) string {
	i := strings.IndexByte(iri, '#')
	if i < 0 || i == len(iri)-1 {
		return ""
	}
	return iri[i+1:]
}
