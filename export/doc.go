// Package export packages assessed metadata documents for distribution.
//
// # Overview
//
// The export package is the last stage of the pipeline. It turns a scored
// document into the durable artifacts a researcher publishes alongside the
// raw dataset:
//
//   - Record: the YAML metadata record, the only durable output of a session
//   - Citation: a CITATION.cff file (Citation File Format 1.2.0, dataset type)
//   - Readme: bundle documentation describing contents and FAIR usage
//   - RenderReport: a Markdown summary of scores, findings, and ontology terms
//   - Bundle / WriteBundle: the complete ZIP archive
//
// # Bundle Layout
//
// Bundle writes a fixed archive structure:
//
//	data/<dataset filename>      raw experimental data
//	metadata/metadata.yaml       FAIR metadata record
//	metadata/CITATION.cff        citation information
//	documentation/README.md      usage documentation
//	documentation/report.md      assessment report (when a Result is given)
//
// # Export Contract
//
// Record and Bundle refuse documents that would violate the published
// schema: structural violations return ErrInvalidDocument and missing or
// outdated quality metrics return ErrStaleMetrics, both classified invalid.
// Callers run the engine's Process immediately before exporting; a document
// mutated after scoring fails the gate instead of shipping stale scores.
//
// Citation, Readme, and RenderReport are display renderers and accept any
// document state.
//
// # Usage
//
//	res, err := eng.Process(doc)
//	if err != nil {
//	    return err
//	}
//	if err := export.WriteBundle(export.BundleName(doc), doc, csvBytes, res); err != nil {
//	    return err
//	}
package export
