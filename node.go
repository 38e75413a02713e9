package funowl

import (
	"github.com/clin113jhu/funowl/errors"
	"github.com/clin113jhu/funowl/graph"
	"github.com/clin113jhu/funowl/writer"
)

// Node is the protocol every ontology construct implements: ontology,
// import, prefix, axiom, annotation, identifier, literal.
//
// Both operations are pure with respect to the node itself: all mutation is
// confined to the writer or sink, so rendering the same unmodified node
// twice into fresh targets produces the same output.
type Node interface {
	// ToFunctional appends this node's canonical keyword and bracketed
	// children to the writer, honoring its current indentation policy.
	ToFunctional(w *writer.Functional) error

	// ToRDF emits zero or more triples describing this node into the sink.
	// It returns the node's own subject term (a named resource or a freshly
	// minted blank node) when the node can be the subject of further
	// triples, or nil when it cannot.
	ToRDF(g graph.Graph) (graph.Term, error)
}

// AnnotationValue is the value position of an annotation: an IRI or a
// literal.
type AnnotationValue interface {
	Node
	annotationValue()
}

// ClassExpression is a class position operand. Named classes are plain IRIs;
// the interface leaves room for anonymous class expressions.
type ClassExpression interface {
	Node
	classExpression()
}

// ObjectPropertyExpression is an object property position operand. Named
// properties are plain IRIs.
type ObjectPropertyExpression interface {
	Node
	objectPropertyExpression()
}

// Axiom is one OWL2 assertion. The concrete kinds in this package form a
// closed set, but the protocol is open: anything implementing Axiom can be
// held in an ontology's axiom list.
type Axiom interface {
	Node
	isAxiom()
}

// Annotatable is the shared annotation behavior embedded in the ontology
// and in every axiom kind.
type Annotatable struct {
	Annotations []Annotation
}

// Annotate appends one annotation.
func (a *Annotatable) Annotate(property IRI, value AnnotationValue) {
	a.Annotations = append(a.Annotations, NewAnnotation(property, value))
}

// writeAnnotations renders each annotation as a leading child of the
// enclosing group, one per token run in declaration order.
func (a *Annotatable) writeAnnotations(w *writer.Functional) error {
	for i := range a.Annotations {
		if err := a.Annotations[i].ToFunctional(w); err != nil {
			return err
		}
	}
	return nil
}

// attachAnnotations emits one (subject, property, value) triple per
// annotation. A nil subject skips attachment.
func (a *Annotatable) attachAnnotations(g graph.Graph, subject graph.Term) error {
	if subject == nil {
		return nil
	}
	for i := range a.Annotations {
		ann := a.Annotations[i]
		value, err := ann.Value.ToRDF(g)
		if err != nil {
			return errors.WrapRender(err, "annotatable", "attachAnnotations", "resolve annotation value")
		}
		g.Add(graph.Triple{Subject: subject, Predicate: ann.Property.Term(), Object: value})
	}
	return nil
}

// RenderFunctional renders a node into functional-syntax text using a fresh
// writer with an empty namespace registry.
func RenderFunctional(n Node) (string, error) {
	w := writer.NewFunctional(nil)
	if err := n.ToFunctional(w); err != nil {
		return "", err
	}
	return w.String(), nil
}
