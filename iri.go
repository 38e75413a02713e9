package funowl

import (
	"github.com/clin113jhu/funowl/graph"
	"github.com/clin113jhu/funowl/writer"
)

// IRI is a full identifier for a resource. The zero value is "no IRI";
// optional slots use it to mean absent.
//
// Functional rendering abbreviates the IRI to a prefixed name whenever the
// writer's namespace registry has a matching binding; RDF rendering always
// uses the full form, since abbreviation is a text-only concern and never
// affects identity.
type IRI struct {
	full string
}

// NewIRI creates an identifier from its full form.
func NewIRI(full string) IRI {
	return IRI{full: full}
}

// String returns the full form.
func (i IRI) String() string {
	return i.full
}

// IsZero reports whether this is the absent identifier.
func (i IRI) IsZero() bool {
	return i.full == ""
}

// Term returns the identifier as an RDF resource term.
func (i IRI) Term() graph.IRIRef {
	return graph.IRIRef(i.full)
}

// ToFunctional renders the identifier, abbreviated when possible.
func (i IRI) ToFunctional(w *writer.Functional) error {
	w.Resource(i.full)
	return nil
}

// ToRDF returns the resource term. An identifier emits no triples of its own.
func (i IRI) ToRDF(_ graph.Graph) (graph.Term, error) {
	return i.Term(), nil
}

func (IRI) annotationValue()          {}
func (IRI) classExpression()          {}
func (IRI) objectPropertyExpression() {}

// Literal is a literal annotation value: a lexical form with an optional
// datatype IRI or language tag. At most one of Datatype and Lang is set;
// Lang wins when both are.
type Literal struct {
	Value    string
	Datatype string
	Lang     string
}

// NewLiteral creates a plain literal.
func NewLiteral(value string) Literal {
	return Literal{Value: value}
}

// TypedLiteral creates a literal with an explicit datatype IRI.
func TypedLiteral(value, datatype string) Literal {
	return Literal{Value: value, Datatype: datatype}
}

// LangLiteral creates a language-tagged literal.
func LangLiteral(value, lang string) Literal {
	return Literal{Value: value, Lang: lang}
}

// ToFunctional renders the quoted literal.
func (l Literal) ToFunctional(w *writer.Functional) error {
	w.Literal(l.Value, l.Datatype, l.Lang)
	return nil
}

// ToRDF returns the literal term. A literal emits no triples of its own.
func (l Literal) ToRDF(_ graph.Graph) (graph.Term, error) {
	return graph.Literal{Value: l.Value, Datatype: l.Datatype, Lang: l.Lang}, nil
}

func (Literal) annotationValue() {}
