// Package funowl models an OWL2 ontology document as a typed abstract syntax
// tree and renders it into two independent target representations: the OWL2
// Functional-Style Syntax and RDF triples per the OWL2 structural mapping.
//
// # Architecture: Dual-Serialization Core
//
// Every construct in the tree (ontology, import, prefix, axiom, annotation,
// identifier, literal) implements the same two-operation Node protocol:
//
//   - ToFunctional(w): append the node's keyword and bracketed children to a
//     functional-syntax writer
//   - ToRDF(g): emit the node's triples into a graph sink and return the
//     node's subject term
//
// Both operations are side-effect-free on the node itself; all mutation is
// confined to the writer or sink, so a tree can be rendered repeatedly and
// into both targets without interference.
//
// # Construction
//
// Trees are built three ways, freely mixed:
//
// Grammar-directed constructor - NewOntology classifies a flat, heterogeneous
// argument list into the ontology's slots by runtime type, acting as a
// miniature parser over the document grammar's ordered non-terminals:
//
//	o, err := funowl.NewOntology(
//	    funowl.NewIRI("http://example.org/o"),
//	    funowl.NewImport(funowl.NewIRI("http://example.org/base")),
//	)
//
// Builder methods - each appends one axiom, import, or annotation and
// returns the ontology for chaining:
//
//	o.SubClassOf(funowl.NewIRI("http://example.org/A"), funowl.NewIRI("http://example.org/B")).
//	    FunctionalObjectProperty(funowl.NewIRI("http://example.org/hasPart"))
//
// Named fields - a Fields value applies named slots after positional
// classification:
//
//	o, err := funowl.NewOntology(funowl.Fields{"annotations": anns})
//
// # Rendering
//
// A Document owns the prefix table and one ontology. Functional rendering
// threads a live namespace registry through the writer so identifiers
// abbreviate to prefixed names; RDF rendering registers the prefixes with
// the sink and walks imports, axioms, and annotations in declaration order:
//
//	doc := funowl.NewDocument(o).Prefix("ex", "http://example.org/")
//
//	w := writer.NewFunctional(nil)
//	if err := doc.ToFunctional(w); err != nil { ... }
//	text := w.String()
//
//	g := graph.NewMemoryGraph()
//	subject, err := doc.ToRDF(g)
//
// Prefix abbreviation is a text-only concern: the same identifier renders as
// ex:Foo in functional syntax and as the full resource in RDF.
//
// # Error Handling
//
// Construction failures (an argument matching no grammar slot, an unknown
// field name) and render failures (a version IRI without an ontology IRI, an
// import of an anonymous ontology) are distinct classes; see the errors
// package. An ontology may legally hold a state that one renderer rejects
// and the other accepts.
package funowl
