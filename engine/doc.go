// Package fairengine runs the full FAIR assessment pipeline over metadata documents.
//
// # Overview
//
// The fairengine package is the facade over the assessment stages. It wires
// the validator, the ontology mapper, and the scorer into one Process call
// and projects the outcome into the document's quality metrics section, so
// callers never assemble the pipeline by hand or attach scores at the wrong
// revision.
//
// # Architecture
//
// Process runs a fixed sequence:
//
//	┌──────────────┐
//	│   Document   │ (document package)
//	└──────┬───────┘
//	       │ optional enrichment (WithEnrichment)
//	       ▼
//	┌──────────────┐    findings     ┌──────────────┐
//	│  Validator   │ ──────────────> │    Report    │
//	│ (validate)   │                 └──────────────┘
//	└──────┬───────┘
//	       ▼
//	┌──────────────┐    terms        ┌──────────────┐
//	│    Mapper    │ ──────────────> │  Annotation  │
//	│ (ontology)   │                 └──────────────┘
//	└──────┬───────┘
//	       ▼
//	┌──────────────┐    scores       ┌──────────────┐
//	│    Scorer    │ ──────────────> │    Scores    │
//	│ (score)      │                 └──────────────┘
//	└──────┬───────┘
//	       │ AttachQuality(rev)
//	       ▼
//	quality_metrics populated, Result returned
//
// The revision captured before validation guards the projection: if another
// goroutine mutates the document mid-pipeline, AttachQuality rejects the
// stale metrics instead of pinning them to the changed record.
//
// # Basic Usage
//
// Assessing a document with the builtin reference data:
//
//	eng := fairengine.New()
//	doc, err := document.NewWithDefaults(technique.Default(), technique.CV)
//	if err != nil {
//	    return err
//	}
//
//	result, err := eng.Process(doc)
//	if err != nil {
//	    return err
//	}
//
//	fmt.Printf("completeness %.2f, FAIR %.2f, %d errors\n",
//	    result.Scores.Completeness, result.Scores.FAIR, len(result.Report.Errors))
//	for _, s := range result.Suggestions {
//	    fmt.Println("next:", s)
//	}
//
// After Process returns, doc.Quality holds the same scores and finding
// messages, and doc.QualityCurrent() reports true until the next mutation.
//
// # Configuration
//
// Options replace individual stages or add concerns:
//
//	eng := fairengine.New(
//	    fairengine.WithValidator(validate.New(validate.WithPolicy(policy))),
//	    fairengine.WithMapper(ontology.New(ontology.WithVocabulary(vocab))),
//	    fairengine.WithEnrichment(),
//	    fairengine.WithLogger(logger),
//	    fairengine.WithMetricsRegistry(registry),
//	)
//
// WithEnrichment makes Process write resolved ontology annotations back into
// the document before validation. Enrichment only mutates when it has
// something new to write, so repeated Process calls still converge.
//
// # Error Handling
//
// Process follows the two-tier error design: data-quality problems come back
// inside Result.Report as findings, never as errors. The returned error is
// reserved for contract violations (nil document, a mutation racing the
// pipeline) and is classified through the errors package.
//
// # Instrumentation
//
// With a metrics registry configured, every Process call records the
// document counter, stage duration, finding counts, and score distributions
// defined in the metric package. Without one, recording is a no-op.
package fairengine
