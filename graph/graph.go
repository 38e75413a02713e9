package graph

// Graph is the triple sink contract consumed by the RDF renderers.
//
// A Graph must support adding a triple, minting a fresh anonymous node,
// and maintaining a namespace registry. The renderers never read triples
// back; iteration and querying are implementation concerns.
//
// Implementations are not required to be safe for concurrent use. Each
// render pass assumes exclusive ownership of its sink; a sink shared across
// documents must be serialized externally.
type Graph interface {
	// Add appends one triple to the sink.
	Add(t Triple)

	// NewBNode mints a fresh anonymous node, unique within this graph.
	NewBNode() BNode

	// Bind registers a prefix -> base namespace binding. When both is true
	// the binding is also used for abbreviation in textual serializers.
	Bind(prefix, base string, both bool)

	// Namespaces returns all registered bindings in declaration order.
	Namespaces() []Namespace
}
