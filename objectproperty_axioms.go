package funowl

import (
	"github.com/clin113jhu/funowl/graph"
	"github.com/clin113jhu/funowl/vocabulary"
	"github.com/clin113jhu/funowl/writer"
)

// SubObjectPropertyOf asserts that Sub is a subproperty of Super.
type SubObjectPropertyOf struct {
	Annotatable
	Sub   ObjectPropertyExpression
	Super ObjectPropertyExpression
}

func (*SubObjectPropertyOf) isAxiom() {}

// ToFunctional renders SubObjectPropertyOf(sub super).
func (a *SubObjectPropertyOf) ToFunctional(w *writer.Functional) error {
	return writePropertyPair(w, "SubObjectPropertyOf", &a.Annotatable, a.Sub, a.Super)
}

// ToRDF emits (sub, rdfs:subPropertyOf, super) and returns the subproperty term.
func (a *SubObjectPropertyOf) ToRDF(g graph.Graph) (graph.Term, error) {
	return emitPropertyPair(g, &a.Annotatable, a.Sub, vocabulary.RdfsSubPropertyOf, a.Super)
}

// InverseObjectProperties asserts that First and Second are mutually inverse.
type InverseObjectProperties struct {
	Annotatable
	First  ObjectPropertyExpression
	Second ObjectPropertyExpression
}

func (*InverseObjectProperties) isAxiom() {}

// ToFunctional renders InverseObjectProperties(first second).
func (a *InverseObjectProperties) ToFunctional(w *writer.Functional) error {
	return writePropertyPair(w, "InverseObjectProperties", &a.Annotatable, a.First, a.Second)
}

// ToRDF emits (first, owl:inverseOf, second) and returns the first term.
func (a *InverseObjectProperties) ToRDF(g graph.Graph) (graph.Term, error) {
	return emitPropertyPair(g, &a.Annotatable, a.First, vocabulary.OwlInverseOf, a.Second)
}

// FunctionalObjectProperty asserts that the property is functional.
type FunctionalObjectProperty struct {
	Annotatable
	Property ObjectPropertyExpression
}

func (*FunctionalObjectProperty) isAxiom() {}

// ToFunctional renders FunctionalObjectProperty(p).
func (a *FunctionalObjectProperty) ToFunctional(w *writer.Functional) error {
	return writeCharacteristic(w, "FunctionalObjectProperty", &a.Annotatable, a.Property)
}

// ToRDF emits (p, rdf:type, owl:FunctionalProperty).
func (a *FunctionalObjectProperty) ToRDF(g graph.Graph) (graph.Term, error) {
	return emitCharacteristic(g, &a.Annotatable, a.Property, vocabulary.OwlFunctionalProperty)
}

// InverseFunctionalObjectProperty asserts that the property is
// inverse-functional.
type InverseFunctionalObjectProperty struct {
	Annotatable
	Property ObjectPropertyExpression
}

func (*InverseFunctionalObjectProperty) isAxiom() {}

// ToFunctional renders InverseFunctionalObjectProperty(p).
func (a *InverseFunctionalObjectProperty) ToFunctional(w *writer.Functional) error {
	return writeCharacteristic(w, "InverseFunctionalObjectProperty", &a.Annotatable, a.Property)
}

// ToRDF emits (p, rdf:type, owl:InverseFunctionalProperty).
func (a *InverseFunctionalObjectProperty) ToRDF(g graph.Graph) (graph.Term, error) {
	return emitCharacteristic(g, &a.Annotatable, a.Property, vocabulary.OwlInverseFunctionalProperty)
}

// ObjectPropertyDomain asserts the domain class of an object property.
type ObjectPropertyDomain struct {
	Annotatable
	Property ObjectPropertyExpression
	Domain   ClassExpression
}

func (*ObjectPropertyDomain) isAxiom() {}

// ToFunctional renders ObjectPropertyDomain(p ce).
func (a *ObjectPropertyDomain) ToFunctional(w *writer.Functional) error {
	return writePropertyPair(w, "ObjectPropertyDomain", &a.Annotatable, a.Property, a.Domain)
}

// ToRDF emits (p, rdfs:domain, ce) and returns the property term.
func (a *ObjectPropertyDomain) ToRDF(g graph.Graph) (graph.Term, error) {
	return emitPropertyPair(g, &a.Annotatable, a.Property, vocabulary.RdfsDomain, a.Domain)
}

// ObjectPropertyRange asserts the range class of an object property.
type ObjectPropertyRange struct {
	Annotatable
	Property ObjectPropertyExpression
	Range    ClassExpression
}

func (*ObjectPropertyRange) isAxiom() {}

// ToFunctional renders ObjectPropertyRange(p ce).
func (a *ObjectPropertyRange) ToFunctional(w *writer.Functional) error {
	return writePropertyPair(w, "ObjectPropertyRange", &a.Annotatable, a.Property, a.Range)
}

// ToRDF emits (p, rdfs:range, ce) and returns the property term.
func (a *ObjectPropertyRange) ToRDF(g graph.Graph) (graph.Term, error) {
	return emitPropertyPair(g, &a.Annotatable, a.Property, vocabulary.RdfsRange, a.Range)
}

// writePropertyPair renders Keyword(first second) with leading annotations.
func writePropertyPair(w *writer.Functional, keyword string, anns *Annotatable, first, second Node) error {
	var renderErr error
	w.Func(keyword, func() {
		if renderErr = anns.writeAnnotations(w); renderErr != nil {
			return
		}
		if renderErr = first.ToFunctional(w); renderErr != nil {
			return
		}
		renderErr = second.ToFunctional(w)
	})
	return renderErr
}

// writeCharacteristic renders Keyword(operand) with leading annotations.
func writeCharacteristic(w *writer.Functional, keyword string, anns *Annotatable, operand Node) error {
	var renderErr error
	w.Func(keyword, func() {
		if renderErr = anns.writeAnnotations(w); renderErr != nil {
			return
		}
		renderErr = operand.ToFunctional(w)
	})
	return renderErr
}

// emitPropertyPair emits (first, predicate, second) and returns first.
func emitPropertyPair(g graph.Graph, anns *Annotatable, first Node, predicate string, second Node) (graph.Term, error) {
	subject, err := first.ToRDF(g)
	if err != nil {
		return nil, err
	}
	object, err := second.ToRDF(g)
	if err != nil {
		return nil, err
	}
	g.Add(graph.Triple{Subject: subject, Predicate: graph.IRIRef(predicate), Object: object})
	if err := anns.attachAnnotations(g, subject); err != nil {
		return nil, err
	}
	return subject, nil
}

// emitCharacteristic emits (operand, rdf:type, class) and returns operand.
func emitCharacteristic(g graph.Graph, anns *Annotatable, operand Node, class string) (graph.Term, error) {
	subject, err := operand.ToRDF(g)
	if err != nil {
		return nil, err
	}
	g.Add(graph.Triple{
		Subject:   subject,
		Predicate: graph.IRIRef(vocabulary.RdfType),
		Object:    graph.IRIRef(class),
	})
	if err := anns.attachAnnotations(g, subject); err != nil {
		return nil, err
	}
	return subject, nil
}
