package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorClassString(t *testing.T) {
	tests := []struct {
		name     string
		class    ErrorClass
		expected string
	}{
		{name: "construction class", class: ErrorConstruction, expected: "construction"},
		{name: "render class", class: ErrorRender, expected: "render"},
		{name: "out of range class", class: ErrorClass(99), expected: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.class.String())
		})
	}
}

func TestIsConstruction(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "nil error", err: nil, expected: false},
		{name: "unrecognized argument sentinel", err: ErrUnrecognizedArgument, expected: true},
		{name: "unknown field sentinel", err: ErrUnknownField, expected: true},
		{name: "occupied slot sentinel", err: ErrSlotOccupied, expected: true},
		{name: "wrapped sentinel", err: fmt.Errorf("ontology: %w", ErrUnknownField), expected: true},
		{name: "render sentinel", err: ErrVersionWithoutIRI, expected: false},
		{name: "unrelated error", err: stderrors.New("boom"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsConstruction(tt.err))
		})
	}
}

func TestIsRender(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "nil error", err: nil, expected: false},
		{name: "version without IRI sentinel", err: ErrVersionWithoutIRI, expected: true},
		{name: "missing ontology IRI sentinel", err: ErrMissingOntologyIRI, expected: true},
		{name: "wrapped sentinel", err: fmt.Errorf("import: %w", ErrMissingOntologyIRI), expected: true},
		{name: "construction sentinel", err: ErrUnrecognizedArgument, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsRender(tt.err))
		})
	}
}

func TestWrapConstruction(t *testing.T) {
	base := stderrors.New("no slot accepts value")

	err := WrapConstruction(base, "ontology", "NewOntology", "classify arguments")
	require.Error(t, err)

	assert.Contains(t, err.Error(), "ontology.NewOntology")
	assert.Contains(t, err.Error(), "classify arguments failed")
	assert.True(t, stderrors.Is(err, base))
	assert.True(t, IsConstruction(err))
	assert.Equal(t, ErrorConstruction, Classify(err))

	var ce *ClassifiedError
	require.True(t, stderrors.As(err, &ce))
	assert.Equal(t, "ontology", ce.Component)
	assert.Equal(t, "NewOntology", ce.Operation)
}

func TestWrapRender(t *testing.T) {
	err := WrapRender(ErrVersionWithoutIRI, "ontology", "ToFunctional", "validate header")
	require.Error(t, err)

	assert.True(t, stderrors.Is(err, ErrVersionWithoutIRI))
	assert.True(t, IsRender(err))
	assert.Equal(t, ErrorRender, Classify(err))
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "a", "b", "c"))
	assert.NoError(t, WrapConstruction(nil, "a", "b", "c"))
	assert.NoError(t, WrapRender(nil, "a", "b", "c"))
}

func TestClassifiedErrorMessage(t *testing.T) {
	base := stderrors.New("inner")

	withMessage := &ClassifiedError{Class: ErrorRender, Err: base, Message: "outer message"}
	assert.Equal(t, "outer message", withMessage.Error())

	withoutMessage := &ClassifiedError{Class: ErrorRender, Err: base}
	assert.Equal(t, "inner", withoutMessage.Error())
	assert.Equal(t, base, withoutMessage.Unwrap())
}
