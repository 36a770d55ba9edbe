// Package errors provides standardized error handling patterns for SemFair components.
//
// # Overview
//
// The errors package implements a two-class error classification system for a
// metadata validation engine: Invalid (bad input to an API, non-recoverable by
// the engine) and Fatal (defective reference data or wiring, stop the process).
//
// The split mirrors the engine's two error tiers. Problems in user-entered
// metadata are not errors at all: the validate package reports them as findings
// so that a messy document still yields a report and a score. Errors here mark
// the other tier, contract violations such as asking the registry for a
// technique it does not define, or constructing a vocabulary table from a
// malformed term.
//
// # Quick Start
//
// Use standard error variables for known conditions:
//
//	specs, err := registry.SpecsFor(name)
//	if errors.Is(err, errors.ErrUnknownTechnique) {
//	    // caller passed a technique outside the enumerated set
//	}
//
// Wrap errors with context for debugging:
//
//	if err := dec.Decode(&cfg); err != nil {
//	    return errors.WrapInvalid(err, "Loader", "Load", "config decode")
//	}
//
// # Error Wrapping Pattern
//
// All error wrapping follows the standardized format:
//
//	"component.method: action failed: %w"
//
// This format keeps log lines parseable and greppable across packages. The
// Wrap family applies the pattern; WrapInvalid and WrapFatal additionally tag
// the chain with a class recoverable through errors.As.
//
// # Integration with errors.As/Is
//
// All error types support standard library inspection:
//
//	var ce *errors.ClassifiedError
//	if errors.As(err, &ce) {
//	    log.Printf("component: %s, class: %s", ce.Component, ce.Class)
//	}
//
//	wrapped := errors.Wrap(errors.ErrUnknownTechnique, "Registry", "SpecsFor", "lookup")
//	errors.IsInvalid(wrapped) // true, classification preserved through the chain
//
// # Thread Safety
//
// Error variables are immutable and safe for concurrent access. ClassifiedError
// values are safe to share across goroutines after creation.
package errors
