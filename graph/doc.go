// Package graph provides the RDF term model and the triple sink consumed by
// the funowl renderers.
//
// # Role
//
// The rendering core never stores triples itself. Every RDF render pass walks
// the ontology tree and pushes triples into a Graph, the external collaborator
// contract of the library:
//
//	type Graph interface {
//	    Add(t Triple)
//	    NewBNode() BNode
//	    Bind(prefix, base string, both bool)
//	    Namespaces() []Namespace
//	}
//
// MemoryGraph is the reference implementation: an ordered in-memory triple
// list with an ordered namespace table. Alternative sinks (see the natsgraph
// package) can forward triples anywhere as long as they honor sequential
// emission order within one render pass.
//
// # Terms
//
// Terms follow the standard RDF partition:
//
//   - IRIRef: a named resource
//   - BNode: an anonymous node, freshly minted per render pass
//   - Literal: a value with optional datatype IRI or language tag
//
// # Namespaces
//
// Namespaces is an ordered prefix table with bidirectional lookup. It is
// shared between the functional-syntax writer (for abbreviation) and RDF
// sinks (for downstream serializers). Binding is explicit; nothing is
// registered implicitly. Only bindings made with both directions enabled
// participate in abbreviation.
package graph
