// Package errors provides standardized error handling patterns for SemFair components.
// It includes error classification, standard error variables, and helper functions
// for consistent error wrapping across the system.
package errors

import (
	"errors"
	"fmt"
)

// ErrorClass represents the classification of errors for handling purposes
type ErrorClass int

const (
	// ErrorInvalid represents errors due to invalid input or configuration
	ErrorInvalid ErrorClass = iota
	// ErrorFatal represents defects in reference data or wiring that should stop the process
	ErrorFatal
)

// String returns the string representation of ErrorClass
func (ec ErrorClass) String() string {
	switch ec {
	case ErrorInvalid:
		return "invalid"
	case ErrorFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Standard error variables for common conditions.
//
// Data-quality problems in user metadata are never errors; they are reported as
// validate.Finding values. The variables below mark contract violations: a caller
// asked for something the reference tables do not define, or reference data itself
// is defective.
var (
	// Registry and vocabulary contract errors
	ErrUnknownTechnique = errors.New("unknown technique")
	ErrUnknownParameter = errors.New("unknown parameter")
	ErrMalformedTerm    = errors.New("malformed vocabulary term")
	ErrDuplicateTerm    = errors.New("duplicate vocabulary term")
	ErrMalformedSpec    = errors.New("malformed technique spec")
	ErrDuplicateSpec    = errors.New("duplicate technique spec")

	// Document and export contract errors
	ErrNilDocument     = errors.New("nil document")
	ErrInvalidDocument = errors.New("document violates schema contract")
	ErrStaleMetrics    = errors.New("quality metrics out of date with document")

	// Configuration errors
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrMissingConfig = errors.New("missing required configuration")
)

// ClassifiedError wraps an error with its classification
type ClassifiedError struct {
	Class     ErrorClass
	Err       error
	Message   string
	Component string
	Operation string
}

// Error implements the error interface
func (ce *ClassifiedError) Error() string {
	if ce.Message != "" {
		return ce.Message
	}
	return ce.Err.Error()
}

// Unwrap returns the underlying error
func (ce *ClassifiedError) Unwrap() error {
	return ce.Err
}

// IsInvalid checks if an error is due to invalid input
func IsInvalid(err error) bool {
	if err == nil {
		return false
	}

	// Check for classified error
	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorInvalid
	}

	// Check for known invalid errors
	return errors.Is(err, ErrUnknownTechnique) ||
		errors.Is(err, ErrUnknownParameter) ||
		errors.Is(err, ErrNilDocument) ||
		errors.Is(err, ErrInvalidDocument) ||
		errors.Is(err, ErrStaleMetrics) ||
		errors.Is(err, ErrInvalidConfig) ||
		errors.Is(err, ErrMissingConfig)
}

// IsFatal checks if an error indicates defective reference data or wiring
func IsFatal(err error) bool {
	if err == nil {
		return false
	}

	// Check for classified error
	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorFatal
	}

	// Check for known fatal errors
	return errors.Is(err, ErrMalformedTerm) ||
		errors.Is(err, ErrDuplicateTerm) ||
		errors.Is(err, ErrMalformedSpec) ||
		errors.Is(err, ErrDuplicateSpec)
}

// Classify returns the error class for an error. Unknown errors classify as
// invalid: a caller mistake is the common case, and nothing in the engine
// retries, so there is no third class to fall back to.
func Classify(err error) ErrorClass {
	if IsFatal(err) {
		return ErrorFatal
	}
	return ErrorInvalid
}

// newClassified creates a new classified error
// This is an internal helper - use WrapInvalid() or WrapFatal() instead.
func newClassified(class ErrorClass, err error, component, operation, message string) *ClassifiedError {
	return &ClassifiedError{
		Class:     class,
		Err:       err,
		Message:   message,
		Component: component,
		Operation: operation,
	}
}

// Wrap creates a standardized error with context following the pattern:
// "component.method: action failed: %w"
func Wrap(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s.%s: %s failed: %w", component, method, action, err)
}

// WrapInvalid wraps an error as invalid with context
func WrapInvalid(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorInvalid, wrappedErr, component, method, wrappedErr.Error())
}

// WrapFatal wraps an error as fatal with context
func WrapFatal(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorFatal, wrappedErr, component, method, wrappedErr.Error())
}
