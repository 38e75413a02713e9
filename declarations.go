package funowl

import (
	"github.com/clin113jhu/funowl/graph"
	"github.com/clin113jhu/funowl/vocabulary"
	"github.com/clin113jhu/funowl/writer"
)

// EntityKind tags the six kinds of declared entities.
type EntityKind int

const (
	// ClassKind declares an OWL class.
	ClassKind EntityKind = iota
	// DatatypeKind declares a datatype.
	DatatypeKind
	// ObjectPropertyKind declares an object property.
	ObjectPropertyKind
	// DataPropertyKind declares a data property.
	DataPropertyKind
	// AnnotationPropertyKind declares an annotation property.
	AnnotationPropertyKind
	// NamedIndividualKind declares a named individual.
	NamedIndividualKind
)

// String returns the functional-syntax keyword for the kind.
func (k EntityKind) String() string {
	switch k {
	case ClassKind:
		return "Class"
	case DatatypeKind:
		return "Datatype"
	case ObjectPropertyKind:
		return "ObjectProperty"
	case DataPropertyKind:
		return "DataProperty"
	case AnnotationPropertyKind:
		return "AnnotationProperty"
	case NamedIndividualKind:
		return "NamedIndividual"
	default:
		return "unknown"
	}
}

// typeIRI returns the rdf:type object the structural mapping assigns to a
// declaration of this kind.
func (k EntityKind) typeIRI() graph.IRIRef {
	switch k {
	case ClassKind:
		return graph.IRIRef(vocabulary.OwlClass)
	case DatatypeKind:
		return graph.IRIRef(vocabulary.RdfsDatatype)
	case ObjectPropertyKind:
		return graph.IRIRef(vocabulary.OwlObjectProperty)
	case DataPropertyKind:
		return graph.IRIRef(vocabulary.OwlDatatypeProperty)
	case AnnotationPropertyKind:
		return graph.IRIRef(vocabulary.OwlAnnotationProperty)
	case NamedIndividualKind:
		return graph.IRIRef(vocabulary.OwlNamedIndividual)
	default:
		return graph.IRIRef(vocabulary.OwlClass)
	}
}

// Entity pairs an entity kind with its identifier.
type Entity struct {
	Kind EntityKind
	IRI  IRI
}

// Class builds a class entity for a Declaration.
func Class(iri IRI) Entity {
	return Entity{Kind: ClassKind, IRI: iri}
}

// Datatype builds a datatype entity for a Declaration.
func Datatype(iri IRI) Entity {
	return Entity{Kind: DatatypeKind, IRI: iri}
}

// ObjectProperty builds an object property entity for a Declaration.
func ObjectProperty(iri IRI) Entity {
	return Entity{Kind: ObjectPropertyKind, IRI: iri}
}

// DataProperty builds a data property entity for a Declaration.
func DataProperty(iri IRI) Entity {
	return Entity{Kind: DataPropertyKind, IRI: iri}
}

// AnnotationProperty builds an annotation property entity for a Declaration.
func AnnotationProperty(iri IRI) Entity {
	return Entity{Kind: AnnotationPropertyKind, IRI: iri}
}

// NamedIndividual builds a named individual entity for a Declaration.
func NamedIndividual(iri IRI) Entity {
	return Entity{Kind: NamedIndividualKind, IRI: iri}
}

// Declaration asserts that an entity of a given kind exists.
type Declaration struct {
	Annotatable
	Entity Entity
}

func (*Declaration) isAxiom() {}

// ToFunctional renders Declaration(Kind(iri)).
func (d *Declaration) ToFunctional(w *writer.Functional) error {
	var renderErr error
	w.Func("Declaration", func() {
		if renderErr = d.writeAnnotations(w); renderErr != nil {
			return
		}
		w.Func(d.Entity.Kind.String(), func() {
			renderErr = d.Entity.IRI.ToFunctional(w)
		})
	})
	return renderErr
}

// ToRDF emits (iri, rdf:type, kind) and returns the entity's identifier as
// the axiom subject.
func (d *Declaration) ToRDF(g graph.Graph) (graph.Term, error) {
	subject := d.Entity.IRI.Term()
	g.Add(graph.Triple{
		Subject:   subject,
		Predicate: graph.IRIRef(vocabulary.RdfType),
		Object:    d.Entity.Kind.typeIRI(),
	})
	if err := d.attachAnnotations(g, subject); err != nil {
		return nil, err
	}
	return subject, nil
}
