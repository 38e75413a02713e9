// Package errors provides standardized error handling patterns for funowl.
// It includes error classification, standard error variables, and helper functions
// for consistent error wrapping and classification across the library.
package errors

import (
	"errors"
	"fmt"
)

// ErrorClass represents the classification of errors for handling purposes
type ErrorClass int

const (
	// ErrorConstruction represents errors raised while building a node from
	// constructor arguments. No partial object is returned alongside one.
	ErrorConstruction ErrorClass = iota
	// ErrorRender represents errors raised while rendering an already-built
	// tree into functional syntax or RDF triples.
	ErrorRender
)

// String returns the string representation of ErrorClass
func (ec ErrorClass) String() string {
	switch ec {
	case ErrorConstruction:
		return "construction"
	case ErrorRender:
		return "render"
	default:
		return "unknown"
	}
}

// Standard error variables for common conditions
var (
	// Constructor classification errors
	ErrUnrecognizedArgument = errors.New("unrecognized constructor argument")
	ErrUnknownField         = errors.New("unknown field name")
	ErrSlotOccupied         = errors.New("field slot already occupied")

	// Render-time validation errors
	ErrVersionWithoutIRI  = errors.New("ontology has a version IRI but no ontology IRI")
	ErrMissingOntologyIRI = errors.New("referenced ontology has no IRI")
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

// IsConstruction checks if an error originated in a constructor call
func IsConstruction(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorConstruction
	}

	return errors.Is(err, ErrUnrecognizedArgument) ||
		errors.Is(err, ErrUnknownField) ||
		errors.Is(err, ErrSlotOccupied)
}

// IsRender checks if an error originated during a render pass
func IsRender(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorRender
	}

	return errors.Is(err, ErrVersionWithoutIRI) ||
		errors.Is(err, ErrMissingOntologyIRI)
}

// Classify returns the error class for an error.
// Errors matching neither class default to ErrorConstruction, since every
// failure in this in-memory core is a local validation failure.
func Classify(err error) ErrorClass {
	if IsRender(err) {
		return ErrorRender
	}
	return ErrorConstruction
}

// newClassified creates a new classified error.
// This is an internal helper - use WrapConstruction() or WrapRender() instead.
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

// WrapConstruction wraps an error as a construction failure with context
func WrapConstruction(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorConstruction, wrappedErr, component, method, wrappedErr.Error())
}

// WrapRender wraps an error as a render failure with context
func WrapRender(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorRender, wrappedErr, component, method, wrappedErr.Error())
}
