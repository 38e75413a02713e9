package funowl

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clin113jhu/funowl/errors"
)

func TestNewOntologySlotOrder(t *testing.T) {
	iri := NewIRI("http://x/o")
	version := NewIRI("http://x/o/1.0")
	imp1 := NewImport(NewIRI("http://x/i1"))
	imp2 := NewImport(NewIRI("http://x/i2"))
	ax1 := &SubClassOf{Sub: NewIRI("http://x/A"), Super: NewIRI("http://x/B")}
	ax2 := &FunctionalObjectProperty{Property: NewIRI("http://x/p")}

	o, err := NewOntology(iri, version, imp1, imp2, ax1, ax2)
	require.NoError(t, err)

	// Slot contents concatenated back in slot order equal the original
	// positional sequence.
	assert.Equal(t, iri, o.IRI())
	assert.Equal(t, version, o.Version())
	assert.Equal(t, []Import{imp1, imp2}, o.DirectImports())
	assert.Equal(t, []Axiom{ax1, ax2}, o.Axioms())
}

func TestNewOntologyPartialSequences(t *testing.T) {
	iri := NewIRI("http://x/o")
	imp := NewImport(NewIRI("http://x/i"))
	ax := &SubClassOf{Sub: NewIRI("http://x/A"), Super: NewIRI("http://x/B")}

	tests := []struct {
		name        string
		args        []any
		wantIRI     IRI
		wantVersion IRI
		wantImports int
		wantAxioms  int
	}{
		{name: "no arguments", args: nil},
		{name: "identifier only", args: []any{iri}, wantIRI: iri},
		{name: "imports without identifier", args: []any{imp}, wantImports: 1},
		{name: "axioms without identifier", args: []any{ax}, wantAxioms: 1},
		{name: "identifier then axioms", args: []any{iri, ax}, wantIRI: iri, wantAxioms: 1},
		{
			name: "identifier, import, axiom", args: []any{iri, imp, ax},
			wantIRI: iri, wantImports: 1, wantAxioms: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, err := NewOntology(tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.wantIRI, o.IRI())
			assert.Equal(t, tt.wantVersion, o.Version())
			assert.Len(t, o.DirectImports(), tt.wantImports)
			assert.Len(t, o.Axioms(), tt.wantAxioms)
		})
	}
}

func TestNewOntologyUnrecognizedArgument(t *testing.T) {
	iri := NewIRI("http://x/o")
	imp := NewImport(NewIRI("http://x/i"))
	ax := &SubClassOf{Sub: NewIRI("http://x/A"), Super: NewIRI("http://x/B")}

	tests := []struct {
		name string
		args []any
	}{
		{name: "arbitrary value", args: []any{42}},
		{name: "value after all slots", args: []any{iri, ax, "leftover"}},
		// An import appearing after the axiom slot has started: the import
		// slot stopped accepting, so the value matches nothing.
		{name: "import after axiom", args: []any{ax, imp}},
		// A third IRI: both single identifier slots are spent.
		{name: "three identifiers", args: []any{iri, iri, iri}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, err := NewOntology(tt.args...)
			require.Error(t, err)
			assert.Nil(t, o, "no partial object on construction failure")
			assert.True(t, stderrors.Is(err, errors.ErrUnrecognizedArgument))
			assert.True(t, errors.IsConstruction(err))
		})
	}
}

func TestNewOntologyNamedFields(t *testing.T) {
	iri := NewIRI("http://x/o")
	version := NewIRI("http://x/o/2.0")
	imp1 := NewImport(NewIRI("http://x/i1"))
	imp2 := NewImport(NewIRI("http://x/i2"))
	ann := NewAnnotation(NewIRI("http://x/note"), NewLiteral("hello"))

	t.Run("fields fill empty slots", func(t *testing.T) {
		o, err := NewOntology(Fields{"iri": iri, "version": version})
		require.NoError(t, err)
		assert.Equal(t, iri, o.IRI())
		assert.Equal(t, version, o.Version())
	})

	t.Run("string value for an identifier slot", func(t *testing.T) {
		o, err := NewOntology(Fields{"iri": "http://x/o"})
		require.NoError(t, err)
		assert.Equal(t, "http://x/o", o.IRI().String())
	})

	t.Run("list field concatenates after positional values", func(t *testing.T) {
		o, err := NewOntology(imp1, Fields{"imports": []Import{imp2}})
		require.NoError(t, err)
		assert.Equal(t, []Import{imp1, imp2}, o.DirectImports())
	})

	t.Run("annotations are a named-only slot", func(t *testing.T) {
		o, err := NewOntology(Fields{"annotations": []Annotation{ann}})
		require.NoError(t, err)
		require.Len(t, o.Annotations, 1)
		assert.Equal(t, "hello", o.Annotations[0].Value.(Literal).Value)
	})

	t.Run("unknown field name", func(t *testing.T) {
		o, err := NewOntology(Fields{"bogus": iri})
		require.Error(t, err)
		assert.Nil(t, o)
		assert.True(t, stderrors.Is(err, errors.ErrUnknownField))
	})

	t.Run("occupied single slot rejects a named value", func(t *testing.T) {
		o, err := NewOntology(iri, Fields{"iri": NewIRI("http://x/other")})
		require.Error(t, err)
		assert.Nil(t, o)
		assert.True(t, stderrors.Is(err, errors.ErrSlotOccupied))
	})

	t.Run("ill-typed field value", func(t *testing.T) {
		o, err := NewOntology(Fields{"axioms": 42})
		require.Error(t, err)
		assert.Nil(t, o)
		assert.True(t, stderrors.Is(err, errors.ErrUnrecognizedArgument))
	})
}

func TestVersionSlotNeedsIdentifierFirst(t *testing.T) {
	// A single IRI lands in the identifier slot, never the version slot.
	iri := NewIRI("http://x/o")
	o, err := NewOntology(iri)
	require.NoError(t, err)
	assert.Equal(t, iri, o.IRI())
	assert.True(t, o.Version().IsZero())

	// The second of two IRIs is the version.
	version := NewIRI("http://x/o/1.0")
	o, err = NewOntology(iri, version)
	require.NoError(t, err)
	assert.Equal(t, version, o.Version())
}
