package funowl

import (
	"github.com/clin113jhu/funowl/errors"
	"github.com/clin113jhu/funowl/graph"
	"github.com/clin113jhu/funowl/writer"
)

// Prefix is one prefix declaration: a short name bound to a full IRI.
// An empty Name declares the default prefix.
type Prefix struct {
	Name string
	Base string
}

// NewPrefix creates a prefix declaration.
func NewPrefix(name, base string) Prefix {
	return Prefix{Name: name, Base: base}
}

// ToFunctional renders Prefix(name:=<base>). The base is always written in
// full form: a prefix declaration defines an abbreviation and must not use
// one.
func (p Prefix) ToFunctional(w *writer.Functional) error {
	w.Func("Prefix", func() {
		w.Token(p.Name + ":=<" + p.Base + ">")
	})
	return nil
}

// ToRDF registers the binding with the sink's namespace registry. Prefixes
// are a text-rendering concern and emit no triples.
func (p Prefix) ToRDF(g graph.Graph) (graph.Term, error) {
	g.Bind(p.Name, p.Base, true)
	return nil, nil
}

// Document is the top-level compilable unit: an ordered list of prefix
// declarations and exactly one ontology.
type Document struct {
	prefixes []Prefix
	ontology *Ontology
}

// NewDocument creates a document around an ontology. A nil ontology gets an
// empty anonymous one, so an empty document is still renderable.
func NewDocument(ontology *Ontology, prefixes ...Prefix) *Document {
	if ontology == nil {
		ontology = &Ontology{}
	}
	return &Document{prefixes: prefixes, ontology: ontology}
}

// Prefix declares a prefix and returns the document for chaining.
// Declaring is explicit and append-only; declaration order is preserved in
// the rendered output.
func (d *Document) Prefix(name, base string) *Document {
	d.prefixes = append(d.prefixes, NewPrefix(name, base))
	return d
}

// DefaultPrefix declares the default (empty-name) prefix.
func (d *Document) DefaultPrefix(base string) *Document {
	return d.Prefix("", base)
}

// Prefixes returns the declared prefixes in declaration order.
func (d *Document) Prefixes() []Prefix {
	return d.prefixes
}

// Ontology returns the document's ontology.
func (d *Document) Ontology() *Ontology {
	return d.ontology
}

// ToFunctional binds every declared prefix into the writer's namespace
// registry before any text is produced, so all subsequent identifier
// rendering can abbreviate. It then renders one prefix line per registry
// entry, a blank line, and the ontology.
func (d *Document) ToFunctional(w *writer.Functional) error {
	for _, p := range d.prefixes {
		w.Namespaces().Bind(p.Name, p.Base, true)
	}

	bound := w.Namespaces().List()
	for _, ns := range bound {
		if err := NewPrefix(ns.Prefix, ns.Base).ToFunctional(w); err != nil {
			return err
		}
		w.Break()
	}
	if len(bound) > 0 {
		w.HardBreak()
	}

	if err := d.ontology.ToFunctional(w); err != nil {
		return errors.WrapRender(err, "document", "ToFunctional", "render ontology")
	}
	return nil
}

// ToRDF registers each prefix with the sink's namespace registry (emitting
// no triples for them) and delegates to the ontology. Returns the ontology
// subject.
func (d *Document) ToRDF(g graph.Graph) (graph.Term, error) {
	for _, p := range d.prefixes {
		if _, err := p.ToRDF(g); err != nil {
			return nil, err
		}
	}
	return d.ontology.ToRDF(g)
}
