package export

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/c360/semfair/document"
	"github.com/c360/semfair/errors"
)

// repositoryURL identifies the generating tool in citation files.
const repositoryURL = "https://github.com/c360/semfair"

// cffAuthor is one author entry in Citation File Format 1.2.0.
type cffAuthor struct {
	FamilyNames string `yaml:"family-names"`
	GivenNames  string `yaml:"given-names,omitempty"`
	ORCID       string `yaml:"orcid,omitempty"`
	Affiliation string `yaml:"affiliation,omitempty"`
}

// citationFile is the CFF 1.2.0 document shape for a dataset release.
type citationFile struct {
	CFFVersion     string      `yaml:"cff-version"`
	Message        string      `yaml:"message"`
	Type           string      `yaml:"type"`
	Title          string      `yaml:"title"`
	Authors        []cffAuthor `yaml:"authors"`
	DateReleased   string      `yaml:"date-released"`
	License        string      `yaml:"license,omitempty"`
	RepositoryCode string      `yaml:"repository-code,omitempty"`
}

// Citation renders a CITATION.cff for the dataset. The creator's last
// name token becomes the family name; an unset creator is published as
// "Unknown" so the file stays structurally valid for later editing.
func Citation(d *document.Document) ([]byte, error) {
	if d == nil {
		return nil, errors.WrapInvalid(errors.ErrNilDocument, "export", "Citation", "render citation")
	}

	family, given := splitCreator(d.Attribution.Creator)

	author := cffAuthor{
		FamilyNames: family,
		GivenNames:  given,
		Affiliation: d.Attribution.Institution,
	}
	if d.Attribution.ORCID != "" {
		author.ORCID = "https://orcid.org/" + d.Attribution.ORCID
	}

	title := "Electrochemical measurement data"
	if d.Technique.Name != "" {
		title = d.Technique.Name + " measurement data"
	}

	cff := citationFile{
		CFFVersion:     "1.2.0",
		Message:        "If you use this dataset, please cite it as below.",
		Type:           "dataset",
		Title:          title,
		Authors:        []cffAuthor{author},
		DateReleased:   d.CreatedDate.Format("2006-01-02"),
		License:        d.FAIR.Reusable.License,
		RepositoryCode: repositoryURL,
	}

	out, err := yaml.Marshal(cff)
	if err != nil {
		return nil, errors.Wrap(err, "export", "Citation", "marshal citation file")
	}
	return out, nil
}

// splitCreator separates a display name into CFF family and given names.
// The last whitespace token is the family name; everything before it is
// the given names.
func splitCreator(creator string) (family, given string) {
	parts := strings.Fields(creator)
	switch len(parts) {
	case 0:
		return "Unknown", ""
	case 1:
		return parts[0], ""
	default:
		return parts[len(parts)-1], strings.Join(parts[:len(parts)-1], " ")
	}
}
