package graph

import "github.com/google/uuid"

// MemoryGraph is the in-memory reference implementation of Graph.
// Triples are kept in insertion order. Blank node labels are minted from
// random UUIDs so labels never collide across graphs or render passes.
//
// MemoryGraph is not safe for concurrent use.
type MemoryGraph struct {
	triples []Triple
	ns      *Namespaces
}

// NewMemoryGraph creates an empty in-memory graph.
func NewMemoryGraph() *MemoryGraph {
	return &MemoryGraph{ns: NewNamespaces()}
}

// Add appends one triple in insertion order.
func (g *MemoryGraph) Add(t Triple) {
	g.triples = append(g.triples, t)
}

// NewBNode mints a fresh anonymous node.
func (g *MemoryGraph) NewBNode() BNode {
	return BNode("b" + uuid.NewString())
}

// Bind registers a namespace binding.
func (g *MemoryGraph) Bind(prefix, base string, both bool) {
	g.ns.Bind(prefix, base, both)
}

// Namespaces returns all bindings in declaration order.
func (g *MemoryGraph) Namespaces() []Namespace {
	return g.ns.List()
}

// Triples returns the stored triples in insertion order.
// The returned slice is a copy.
func (g *MemoryGraph) Triples() []Triple {
	out := make([]Triple, len(g.triples))
	copy(out, g.triples)
	return out
}

// Len returns the number of stored triples.
func (g *MemoryGraph) Len() int {
	return len(g.triples)
}

// Has reports whether an identical triple has been added.
func (g *MemoryGraph) Has(t Triple) bool {
	for _, existing := range g.triples {
		if existing.Equal(t) {
			return true
		}
	}
	return false
}

// Filter returns the stored triples matching the given terms.
// A nil term matches anything, so Filter(nil, pred, nil) selects by predicate.
func (g *MemoryGraph) Filter(subject Term, predicate Term, object Term) []Triple {
	var out []Triple
	for _, t := range g.triples {
		if subject != nil && t.Subject != subject {
			continue
		}
		if predicate != nil && Term(t.Predicate) != predicate {
			continue
		}
		if object != nil && t.Object != object {
			continue
		}
		out = append(out, t)
	}
	return out
}
