package funowl

import (
	"github.com/clin113jhu/funowl/graph"
	"github.com/clin113jhu/funowl/writer"
)

// Annotation is a property/value pair attached to an ontology or axiom.
// Annotations may themselves carry nested annotations; nesting is finite by
// construction since the value is a tree, not a graph.
type Annotation struct {
	Annotatable

	// Property is the annotation property identifier.
	Property IRI

	// Value is the annotation value: an IRI or a literal.
	Value AnnotationValue
}

// NewAnnotation creates an annotation.
func NewAnnotation(property IRI, value AnnotationValue) Annotation {
	return Annotation{Property: property, Value: value}
}

// WithSub returns a copy of the annotation carrying the given nested
// annotations after any it already has.
func (a Annotation) WithSub(sub ...Annotation) Annotation {
	a.Annotations = append(a.Annotations[:len(a.Annotations):len(a.Annotations)], sub...)
	return a
}

// ToFunctional renders Annotation(property value), with any nested
// annotations on indented lines before the property.
func (a Annotation) ToFunctional(w *writer.Functional) error {
	var renderErr error
	w.Func("Annotation", func() {
		if len(a.Annotations) > 0 {
			w.Indented(func() {
				for i := range a.Annotations {
					w.Break()
					if renderErr == nil {
						renderErr = a.Annotations[i].ToFunctional(w)
					}
				}
			})
			w.Break()
		}
		if renderErr != nil {
			return
		}
		if err := a.Property.ToFunctional(w); err != nil {
			renderErr = err
			return
		}
		renderErr = a.Value.ToFunctional(w)
	})
	return renderErr
}

// ToRDF returns nothing: an annotation only produces triples when attached
// to a subject, which the owning node does through its Annotatable behavior.
// Nested annotations are a text-level feature and are not mapped to triples.
func (a Annotation) ToRDF(_ graph.Graph) (graph.Term, error) {
	return nil, nil
}
