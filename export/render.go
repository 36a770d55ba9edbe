package export

import (
	"fmt"
	"strings"

	"github.com/c360/semfair/document"
	fairengine "github.com/c360/semfair/engine"
)

// generatorTag is the footer line stamped into generated documentation.
const generatorTag = "Generated by SemFair v1.0"

// Readme renders the bundle's README.md: what the bundle contains, how the
// record follows FAIR practice, and where to find citation and licensing
// details.
func Readme(d *document.Document) []byte {
	dataName := d.Dataset.Filename
	if dataName == "" {
		dataName = "data.csv"
	}
	techName := d.Technique.Name
	if techName == "" {
		techName = "Unknown"
	}
	license := d.FAIR.Reusable.License
	if license == "" {
		license = "Please check metadata for licensing information"
	}

	return fmt.Appendf(nil, `# Electrochemical Data Bundle

## Overview
This bundle contains FAIR-compliant electrochemical data.

**Technique:** %s
**Created:** %s
**ID:** %s

## Files Included
- `+"`data/%s`"+` - Raw experimental data
- `+"`metadata/metadata.yaml`"+` - FAIR metadata following EChem-FAIR schema
- `+"`metadata/CITATION.cff`"+` - Citation information in Citation File Format

## Usage
This data follows FAIR principles:
- **Findable:** Unique identifier and rich metadata
- **Accessible:** Open formats (CSV, YAML)
- **Interoperable:** Standardised vocabulary and structure
- **Reusable:** Clear licensing and attribution

## Citation
Please see CITATION.cff for proper attribution.

## License
%s

---
%s
`,
		techName,
		d.CreatedDate.Format("2006-01-02"),
		d.ExperimentID,
		dataName,
		license,
		generatorTag,
	)
}

// RenderReport renders the assessment outcome as a Markdown summary:
// scores, findings, resolved ontology terms, and the suggested next
// actions. It is display output, so it accepts any document state.
func RenderReport(d *document.Document, res *fairengine.Result) []byte {
	if d == nil || res == nil {
		return nil
	}

	var b strings.Builder

	fmt.Fprintf(&b, "# FAIR Assessment Report\n\n")
	fmt.Fprintf(&b, "**Experiment:** %s\n", d.ExperimentID)
	fmt.Fprintf(&b, "**Technique:** %s\n", d.Technique.Name)
	fmt.Fprintf(&b, "**Created:** %s\n\n", d.CreatedDate.Format("2006-01-02"))

	fmt.Fprintf(&b, "## Scores\n\n")
	fmt.Fprintf(&b, "| Metric | Score |\n|---|---|\n")
	fmt.Fprintf(&b, "| Completeness | %.2f |\n", res.Scores.Completeness)
	fmt.Fprintf(&b, "| FAIR | %.2f |\n", res.Scores.FAIR)
	fmt.Fprintf(&b, "| Findable | %.2f |\n", res.Scores.Findable)
	fmt.Fprintf(&b, "| Accessible | %.2f |\n", res.Scores.Accessible)
	fmt.Fprintf(&b, "| Interoperable | %.2f |\n", res.Scores.Interoperable)
	fmt.Fprintf(&b, "| Reusable | %.2f |\n\n", res.Scores.Reusable)

	fmt.Fprintf(&b, "## Validation\n\n")
	switch {
	case len(res.Report.Errors) == 0 && len(res.Report.Warnings) == 0:
		fmt.Fprintf(&b, "All validation checks passed.\n\n")
	default:
		if len(res.Report.Errors) > 0 {
			fmt.Fprintf(&b, "### Errors\n\n")
			for _, f := range res.Report.Errors {
				fmt.Fprintf(&b, "- %s\n", f.String())
			}
			fmt.Fprintf(&b, "\n")
		}
		if len(res.Report.Warnings) > 0 {
			fmt.Fprintf(&b, "### Recommendations\n\n")
			for _, f := range res.Report.Warnings {
				fmt.Fprintf(&b, "- %s\n", f.String())
			}
			fmt.Fprintf(&b, "\n")
		}
	}

	fmt.Fprintf(&b, "## Ontology Terms\n\n")
	if len(res.Annotation.TermsUsed) == 0 {
		fmt.Fprintf(&b, "No fields resolved to vocabulary terms.\n\n")
	} else {
		for _, use := range res.Annotation.TermsUsed {
			fmt.Fprintf(&b, "- %s: %q resolved to %s (%s)\n", use.Field, use.Value, use.Term.Label, use.Term.IRI)
		}
		fmt.Fprintf(&b, "\n")
	}
	if len(res.Annotation.Unmapped) > 0 {
		fmt.Fprintf(&b, "Unmapped fields: %s\n\n", strings.Join(res.Annotation.Unmapped, ", "))
	}

	if len(res.Suggestions) > 0 {
		fmt.Fprintf(&b, "## Suggested Improvements\n\n")
		for i, s := range res.Suggestions {
			fmt.Fprintf(&b, "%d. %s\n", i+1, s)
		}
		fmt.Fprintf(&b, "\n")
	}

	fmt.Fprintf(&b, "---\n%s\n", generatorTag)
	return []byte(b.String())
}
