// Package semfair turns electrochemistry measurement records into FAIR
// research data: validated metadata, ontology annotations, completeness
// and FAIR compliance scores, and a packaged bundle ready for upload to
// a data repository.
//
// # Philosophy: Assessment, Not Analysis
//
// SemFair is a metadata engine with two independent concerns:
//
// Document Layer (what a record is):
//   - Techniques: CV, DPV, SWV, EIS, CA parameter catalogues
//   - Documents: the experiment metadata record and its sections
//   - Schema: the structural contract every exported record satisfies
//   - Vocabulary: EMMO electrochemistry terms for annotation
//
// Assessment Layer (what a record is worth):
//   - Validation: findings about parameters, setup, columns, patterns
//   - Ontology: mapping metadata fields to shared vocabulary terms
//   - Scoring: completeness and FAIR sub-scores from the record alone
//   - Export: bundles that refuse to ship invalid or stale records
//
// SemFair MUST NOT contain:
//   - Chemometric or statistical analysis of the measurement data
//   - Natural-language understanding of free-text descriptions
//   - Repository upload clients or deployment machinery
//
// The data file itself is opaque beyond its header row. SemFair judges
// the metadata describing a measurement, never the measurement.
//
// # Architecture
//
// Assessment is a single pass over one document:
//
//	┌─────────────────────────────────────┐
//	│            Engine                   │  orchestration,
//	│   (enrich?, validate, score)        │  quality attachment
//	└─────────────────────────────────────┘
//	           ↓ composes
//	┌──────────┬──────────────┬───────────┐
//	│ Validate │   Ontology   │   Score   │  findings, terms,
//	│          │              │           │  sub-scores
//	└──────────┴──────────────┴───────────┘
//	           ↓ all read from
//	┌─────────────────────────────────────┐
//	│       Document + Technique          │  record sections,
//	│     (sections, registry, schema)    │  parameter specs
//	└─────────────────────────────────────┘
//
// The engine never mutates the record except to attach quality metrics,
// and those carry the revision they were computed from. A record edited
// after assessment reports stale metrics until it is assessed again,
// and the exporter refuses to package it.
//
// # Framework Packages
//
// Document layer:
//   - technique: technique registry, parameter and column specs
//   - document: the metadata record, options, revision tracking
//   - schema: structural contract and pattern checks
//   - vocabulary: EMMO term registry
//   - dataset: CSV header reading, column matching, checksums
//
// Assessment layer:
//   - validate: completeness and consistency findings
//   - ontology: term mapping, coverage, enrichment
//   - score: completeness and FAIR scoring with suggestions
//   - engine: the assessment pipeline
//   - export: YAML records, citations, READMEs, ZIP bundles
//
// Infrastructure:
//   - errors: structured error handling with severity classification
//   - metric: Prometheus metrics registry and HTTP server
//
// # Usage Patterns
//
// Basic assessment:
//
//	doc, _ := document.NewWithDefaults(technique.Default(), technique.CV,
//	    document.WithElectrodes("Glassy carbon", "Ag/AgCl", "Pt wire", "0.1 M KCl"),
//	    document.WithLicense("CC-BY-4.0"),
//	)
//
//	eng := fairengine.New()
//	res, err := eng.Process(doc)
//	if err != nil {
//	    // nil document or stale attachment; findings are in res, not err
//	}
//	fmt.Println(res.Scores.FAIR, res.Suggestions)
//
// Bundle export:
//
//	if err := export.WriteBundle("bundle.zip", doc, csvBytes, res); err != nil {
//	    // the record violated the schema contract or was edited after
//	    // assessment; nothing was written
//	}
//
// # Design Principles
//
// Two error tiers:
//   - Findings (validate.Finding) describe the record's quality and are
//     data, returned in reports and scored
//   - Errors (errors.ClassifiedError) describe contract violations
//     between caller and library, classified invalid or fatal
//
// Determinism:
//   - Same document, same registry, same results; iteration follows
//     registration order, never map order
//
// Testability:
//   - Explicit dependencies (no globals)
//   - Frozen registries shared safely across goroutines
//
// # Binary
//
// Build and run the CLI:
//
//	go build -o bin/semfair ./cmd/semfair
//
//	# Print an assessment report
//	./bin/semfair --config experiment.json --dataset cv_run1.csv
//
//	# Write a FAIR bundle
//	./bin/semfair --config experiment.json --dataset cv_run1.csv --out bundle.zip
package semfair
