package funowl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clin113jhu/funowl/graph"
	"github.com/clin113jhu/funowl/vocabulary"
)

func TestAnnotationRendering(t *testing.T) {
	tests := []struct {
		name string
		ann  Annotation
		want string
	}{
		{
			name: "iri value",
			ann:  NewAnnotation(NewIRI("http://x/seeAlso"), NewIRI("http://x/other")),
			want: "Annotation(<http://x/seeAlso> <http://x/other>)",
		},
		{
			name: "plain literal",
			ann:  NewAnnotation(NewIRI("http://x/note"), NewLiteral("hello")),
			want: `Annotation(<http://x/note> "hello")`,
		},
		{
			name: "language-tagged literal",
			ann:  NewAnnotation(NewIRI("http://x/note"), LangLiteral("bonjour", "fr")),
			want: `Annotation(<http://x/note> "bonjour"@fr)`,
		},
		{
			name: "typed literal",
			ann:  NewAnnotation(NewIRI("http://x/count"), TypedLiteral("4", vocabulary.XsdInteger)),
			want: `Annotation(<http://x/count> "4"^^<http://www.w3.org/2001/XMLSchema#integer>)`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := RenderFunctional(tt.ann)
			require.NoError(t, err)
			assert.Equal(t, tt.want, text)
		})
	}
}

func TestNestedAnnotationRendering(t *testing.T) {
	outer := NewAnnotation(NewIRI("http://x/p"), NewLiteral("outer")).
		WithSub(NewAnnotation(NewIRI("http://x/q"), NewLiteral("inner")))

	text, err := RenderFunctional(outer)
	require.NoError(t, err)
	assert.Equal(t,
		"Annotation(\n    Annotation(<http://x/q> \"inner\")\n<http://x/p> \"outer\")",
		text)
}

func TestWithSubCopies(t *testing.T) {
	base := NewAnnotation(NewIRI("http://x/p"), NewLiteral("v"))

	first := base.WithSub(NewAnnotation(NewIRI("http://x/q"), NewLiteral("1")))
	second := base.WithSub(NewAnnotation(NewIRI("http://x/r"), NewLiteral("2")))

	assert.Empty(t, base.Annotations)
	require.Len(t, first.Annotations, 1)
	require.Len(t, second.Annotations, 1)
	assert.Equal(t, "http://x/q", first.Annotations[0].Property.String())
	assert.Equal(t, "http://x/r", second.Annotations[0].Property.String())
}

func TestAnnotationEmitsNoTriplesAlone(t *testing.T) {
	ann := NewAnnotation(NewIRI("http://x/p"), NewLiteral("v"))

	g := graph.NewMemoryGraph()
	subject, err := ann.ToRDF(g)
	require.NoError(t, err)
	assert.Nil(t, subject)
	assert.Equal(t, 0, g.Len())
}

func TestAxiomAnnotationAttachesToAxiomSubject(t *testing.T) {
	ax := &SubClassOf{
		Sub:   NewIRI("http://x/A"),
		Super: NewIRI("http://x/B"),
	}
	ax.Annotate(NewIRI(vocabulary.RdfsComment), NewLiteral("asserted upstream"))

	g := graph.NewMemoryGraph()
	subject, err := ax.ToRDF(g)
	require.NoError(t, err)
	assert.Equal(t, graph.IRIRef("http://x/A"), subject)

	assert.True(t, g.Has(graph.Triple{
		Subject:   graph.IRIRef("http://x/A"),
		Predicate: graph.IRIRef(vocabulary.RdfsComment),
		Object:    graph.Literal{Value: "asserted upstream"},
	}))
	assert.Equal(t, 2, g.Len())
}

func TestAnnotatedAxiomRendering(t *testing.T) {
	ax := &SubClassOf{
		Sub:   NewIRI("http://x/A"),
		Super: NewIRI("http://x/B"),
	}
	ax.Annotate(NewIRI("http://x/note"), NewLiteral("v"))

	text, err := RenderFunctional(ax)
	require.NoError(t, err)
	assert.Equal(t,
		`SubClassOf(Annotation(<http://x/note> "v") <http://x/A> <http://x/B>)`,
		text)
}

func TestNestedAnnotationsAreTextOnly(t *testing.T) {
	ax := &SubClassOf{
		Sub:   NewIRI("http://x/A"),
		Super: NewIRI("http://x/B"),
	}
	ax.Annotations = append(ax.Annotations,
		NewAnnotation(NewIRI("http://x/p"), NewLiteral("outer")).
			WithSub(NewAnnotation(NewIRI("http://x/q"), NewLiteral("inner"))))

	g := graph.NewMemoryGraph()
	_, err := ax.ToRDF(g)
	require.NoError(t, err)

	// The outer annotation attaches to the axiom subject; the nested one
	// contributes no triples.
	assert.True(t, g.Has(graph.Triple{
		Subject:   graph.IRIRef("http://x/A"),
		Predicate: graph.IRIRef("http://x/p"),
		Object:    graph.Literal{Value: "outer"},
	}))
	assert.Equal(t, 2, g.Len())
}
