package graph

import "fmt"

// Term is one RDF term: a named resource, an anonymous node, or a literal.
// The three concrete kinds are closed; Term values appear as triple subjects,
// predicates, and objects.
type Term interface {
	fmt.Stringer

	// isTerm restricts implementations to this package.
	isTerm()
}

// IRIRef is a named resource identified by a full IRI.
type IRIRef string

func (IRIRef) isTerm() {}

// String returns the N-Triples form of the resource.
func (r IRIRef) String() string {
	return "<" + string(r) + ">"
}

// BNode is an anonymous node. The label has no meaning outside the graph
// that minted it.
type BNode string

func (BNode) isTerm() {}

// String returns the N-Triples form of the blank node.
func (b BNode) String() string {
	return "_:" + string(b)
}

// Literal is a value term with an optional datatype IRI or language tag.
// At most one of Datatype and Lang is set.
type Literal struct {
	Value    string `json:"value"`
	Datatype string `json:"datatype,omitempty"`
	Lang     string `json:"lang,omitempty"`
}

func (Literal) isTerm() {}

// String returns the N-Triples form of the literal.
func (l Literal) String() string {
	switch {
	case l.Lang != "":
		return fmt.Sprintf("%q@%s", l.Value, l.Lang)
	case l.Datatype != "":
		return fmt.Sprintf("%q^^<%s>", l.Value, l.Datatype)
	default:
		return fmt.Sprintf("%q", l.Value)
	}
}
