package score

import (
	"github.com/c360/semfair/document"
	"github.com/c360/semfair/ontology"
	"github.com/c360/semfair/validate"
)

// maxSuggestions caps how many improvement hints one call returns.
const maxSuggestions = 5

// Suggest lists concrete steps that would raise the document's scores, most
// valuable first, at most five. A document with nothing left to improve
// gets an empty list.
func (s *Scorer) Suggest(d *document.Document, rep validate.Report, ann ontology.Annotation) []string {
	if d == nil {
		return nil
	}

	var out []string
	add := func(msg string) {
		if len(out) < maxSuggestions {
			out = append(out, msg)
		}
	}

	if d.FAIR.Reusable.License == "" {
		add("Specify a data license (e.g. CC-BY-4.0) to clarify reuse terms")
	}
	if d.Attribution.Creator == "" {
		add("Add a creator name so the dataset can be attributed")
	}
	if d.Attribution.ORCID == "" {
		add("Add an ORCID iD for unambiguous researcher identification")
	}
	if d.Attribution.ContactEmail == "" {
		add("Add a contact email for data inquiries")
	}
	if len(ann.Unmapped) > 0 || d.FAIR.Interoperable.MetadataVocabulary == "" {
		add("Use EMMO vocabulary terms for better interoperability")
	}
	if len(d.FAIR.Findable.Keywords) == 0 {
		add("Add keywords so the dataset can be discovered")
	}
	if d.FAIR.Accessible.AccessProtocol == "" && d.FAIR.Accessible.AccessURL == "" {
		add("Describe how the data can be accessed (protocol and URL)")
	}
	if d.RelatedWork.PublicationDOI == "" {
		add("Link related publications via DOI if available")
	}
	if d.Dataset.Description == "" {
		add("Add a detailed dataset description")
	}
	for _, f := range rep.Warnings {
		if f.Code == validate.CodeBounds || f.Code == validate.CodeAdvisory {
			add("Review technique parameters flagged by validation")
			break
		}
	}
	return out
}
