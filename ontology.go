package funowl

import (
	"fmt"

	"github.com/clin113jhu/funowl/errors"
	"github.com/clin113jhu/funowl/graph"
	"github.com/clin113jhu/funowl/vocabulary"
	"github.com/clin113jhu/funowl/writer"
)

// Ontology is the ontology body: an optional identifier, an optional version
// identifier, and ordered lists of imports, axioms, and annotations.
//
// Declaration order is preserved in all three lists because order is
// semantically visible in the textual rendering. An ontology may hold a
// version identifier without a main identifier; the invariant that version
// requires an identifier is enforced by the functional renderer, not the
// constructor, so the RDF rendering of such an ontology still succeeds with
// an anonymous subject.
type Ontology struct {
	Annotatable

	iri     IRI
	version IRI
	imports []Import
	axioms  []Axiom
}

// NewOntology builds an ontology from a flat argument list via the grammar
// classifier. Accepted positional values, consumed in this order: at most
// one IRI as the ontology identifier, at most one further IRI as the version
// identifier, zero or more Import values, zero or more Axiom values. A
// Fields value may appear anywhere and applies named slots ("iri",
// "version", "imports", "axioms", "annotations") after positional
// consumption. Any other value fails the construction with
// ErrUnrecognizedArgument and no ontology is returned.
func NewOntology(args ...any) (*Ontology, error) {
	o := &Ontology{}
	if err := classify("ontology", args, o.slots()); err != nil {
		return nil, err
	}
	return o, nil
}

// slots declares the ontology grammar for the generic classifier:
// identifier, version, imports, axioms as ordered non-terminals plus the
// named-only annotations slot.
func (o *Ontology) slots() []Slot {
	matchIRI := func(v any) bool {
		if _, ok := v.(IRI); !ok {
			return false
		}
		// An identifier that is also an axiom would belong to the axiom
		// slot; IRI is not one today, but the predicate keeps the rule
		// faithful for extensions.
		_, isAxiom := v.(Axiom)
		return !isAxiom
	}
	assignIRI := func(dst *IRI) func(v any) error {
		return func(v any) error {
			switch value := v.(type) {
			case IRI:
				*dst = value
			case string:
				*dst = NewIRI(value)
			default:
				return fmt.Errorf("%w: %T is not an IRI", errors.ErrUnrecognizedArgument, v)
			}
			return nil
		}
	}

	return []Slot{
		{
			Name:   "iri",
			Kind:   SlotSingle,
			Match:  matchIRI,
			Filled: func() bool { return !o.iri.IsZero() },
			Assign: assignIRI(&o.iri),
		},
		{
			Name:   "version",
			Kind:   SlotSingle,
			Match:  matchIRI,
			Filled: func() bool { return !o.version.IsZero() },
			Assign: assignIRI(&o.version),
		},
		{
			Name:  "imports",
			Kind:  SlotList,
			Match: func(v any) bool { _, ok := v.(Import); return ok },
			Assign: func(v any) error {
				switch value := v.(type) {
				case Import:
					o.imports = append(o.imports, value)
				case []Import:
					o.imports = append(o.imports, value...)
				default:
					return fmt.Errorf("%w: %T is not an Import", errors.ErrUnrecognizedArgument, v)
				}
				return nil
			},
		},
		{
			Name:  "axioms",
			Kind:  SlotList,
			Match: func(v any) bool { _, ok := v.(Axiom); return ok },
			Assign: func(v any) error {
				switch value := v.(type) {
				case Axiom:
					o.axioms = append(o.axioms, value)
				case []Axiom:
					o.axioms = append(o.axioms, value...)
				default:
					return fmt.Errorf("%w: %T is not an Axiom", errors.ErrUnrecognizedArgument, v)
				}
				return nil
			},
		},
		{
			Name:  "annotations",
			Kind:  SlotList,
			Match: func(any) bool { return false }, // named-only slot
			Assign: func(v any) error {
				switch value := v.(type) {
				case Annotation:
					o.Annotations = append(o.Annotations, value)
				case []Annotation:
					o.Annotations = append(o.Annotations, value...)
				default:
					return fmt.Errorf("%w: %T is not an Annotation", errors.ErrUnrecognizedArgument, v)
				}
				return nil
			},
		},
	}
}

// IRI returns the ontology identifier; the zero IRI means anonymous.
func (o *Ontology) IRI() IRI {
	return o.iri
}

// Version returns the version identifier; the zero IRI means unversioned.
func (o *Ontology) Version() IRI {
	return o.version
}

// DirectImports returns the import list in declaration order.
func (o *Ontology) DirectImports() []Import {
	return o.imports
}

// Axioms returns the axiom list in declaration order.
func (o *Ontology) Axioms() []Axiom {
	return o.axioms
}

// Annotation appends an ontology annotation and returns the ontology for
// chaining.
func (o *Ontology) Annotation(property IRI, value AnnotationValue) *Ontology {
	o.Annotate(property, value)
	return o
}

// Declaration appends a Declaration axiom for the entity.
func (o *Ontology) Declaration(entity Entity) *Ontology {
	o.axioms = append(o.axioms, &Declaration{Entity: entity})
	return o
}

// SubClassOf appends a SubClassOf axiom.
func (o *Ontology) SubClassOf(sub, super ClassExpression) *Ontology {
	o.axioms = append(o.axioms, &SubClassOf{Sub: sub, Super: super})
	return o
}

// EquivalentClasses appends an EquivalentClasses axiom.
func (o *Ontology) EquivalentClasses(exprs ...ClassExpression) *Ontology {
	o.axioms = append(o.axioms, &EquivalentClasses{Exprs: exprs})
	return o
}

// SubObjectPropertyOf appends a SubObjectPropertyOf axiom.
func (o *Ontology) SubObjectPropertyOf(sub, super ObjectPropertyExpression) *Ontology {
	o.axioms = append(o.axioms, &SubObjectPropertyOf{Sub: sub, Super: super})
	return o
}

// InverseObjectProperties appends an InverseObjectProperties axiom.
func (o *Ontology) InverseObjectProperties(first, second ObjectPropertyExpression) *Ontology {
	o.axioms = append(o.axioms, &InverseObjectProperties{First: first, Second: second})
	return o
}

// FunctionalObjectProperty appends a FunctionalObjectProperty axiom.
func (o *Ontology) FunctionalObjectProperty(property ObjectPropertyExpression) *Ontology {
	o.axioms = append(o.axioms, &FunctionalObjectProperty{Property: property})
	return o
}

// InverseFunctionalObjectProperty appends an InverseFunctionalObjectProperty
// axiom.
func (o *Ontology) InverseFunctionalObjectProperty(property ObjectPropertyExpression) *Ontology {
	o.axioms = append(o.axioms, &InverseFunctionalObjectProperty{Property: property})
	return o
}

// ObjectPropertyDomain appends an ObjectPropertyDomain axiom.
func (o *Ontology) ObjectPropertyDomain(property ObjectPropertyExpression, domain ClassExpression) *Ontology {
	o.axioms = append(o.axioms, &ObjectPropertyDomain{Property: property, Domain: domain})
	return o
}

// ObjectPropertyRange appends an ObjectPropertyRange axiom.
func (o *Ontology) ObjectPropertyRange(property ObjectPropertyExpression, rng ClassExpression) *Ontology {
	o.axioms = append(o.axioms, &ObjectPropertyRange{Property: property, Range: rng})
	return o
}

// Imports appends an import. The target may be an IRI, a full-IRI string,
// or another *Ontology (referenced for its identifier only).
func (o *Ontology) Imports(target any) *Ontology {
	switch value := target.(type) {
	case IRI:
		o.imports = append(o.imports, NewImport(value))
	case string:
		o.imports = append(o.imports, NewImport(NewIRI(value)))
	case *Ontology:
		o.imports = append(o.imports, ImportOntology(value))
	case Import:
		o.imports = append(o.imports, value)
	}
	return o
}

// ToFunctional renders the ontology group: identifier, version, then each
// import, annotation, and axiom on its own line. Fails with
// ErrVersionWithoutIRI when a version identifier is set without a main
// identifier.
func (o *Ontology) ToFunctional(w *writer.Functional) error {
	if !o.version.IsZero() && o.iri.IsZero() {
		return errors.WrapRender(errors.ErrVersionWithoutIRI,
			"ontology", "ToFunctional", "validate header")
	}

	var renderErr error
	w.Func("Ontology", func() {
		if !o.iri.IsZero() {
			w.Resource(o.iri.String())
		}
		if !o.version.IsZero() {
			w.Resource(o.version.String())
		}
		if len(o.imports) == 0 && len(o.Annotations) == 0 && len(o.axioms) == 0 {
			return
		}
		for i := range o.imports {
			w.Break()
			if renderErr == nil {
				renderErr = o.imports[i].ToFunctional(w)
			}
		}
		for i := range o.Annotations {
			w.Break()
			if renderErr == nil {
				renderErr = o.Annotations[i].ToFunctional(w)
			}
		}
		for i := range o.axioms {
			w.Break()
			if renderErr == nil {
				renderErr = o.axioms[i].ToFunctional(w)
			}
		}
		w.Break()
	})
	return renderErr
}

// ToRDF emits the ontology header and contents in fixed relationship order:
// the rdf:type owl:Ontology assertion, the optional owl:versionIRI, one
// owl:imports per import, then each axiom's own triples (axioms determine
// their own subjects), then the ontology annotations attached to the
// ontology subject. Returns the subject: the identifier's resource form, or
// a fresh anonymous node for an anonymous ontology.
func (o *Ontology) ToRDF(g graph.Graph) (graph.Term, error) {
	var subject graph.Term
	if o.iri.IsZero() {
		subject = g.NewBNode()
	} else {
		subject = o.iri.Term()
	}

	g.Add(graph.Triple{
		Subject:   subject,
		Predicate: graph.IRIRef(vocabulary.RdfType),
		Object:    graph.IRIRef(vocabulary.OwlOntology),
	})
	if !o.version.IsZero() {
		g.Add(graph.Triple{
			Subject:   subject,
			Predicate: graph.IRIRef(vocabulary.OwlVersionIRI),
			Object:    o.version.Term(),
		})
	}
	for i := range o.imports {
		target, err := o.imports[i].ToRDF(g)
		if err != nil {
			return nil, errors.WrapRender(err, "ontology", "ToRDF", "resolve import")
		}
		g.Add(graph.Triple{
			Subject:   subject,
			Predicate: graph.IRIRef(vocabulary.OwlImports),
			Object:    target,
		})
	}
	for i := range o.axioms {
		if _, err := o.axioms[i].ToRDF(g); err != nil {
			return nil, errors.WrapRender(err, "ontology", "ToRDF", "emit axiom")
		}
	}
	if err := o.attachAnnotations(g, subject); err != nil {
		return nil, err
	}
	return subject, nil
}
