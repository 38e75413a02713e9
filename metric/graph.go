package metric

import "github.com/clin113jhu/funowl/graph"

// Graph decorates a graph sink with triple and blank node counters.
// All calls delegate to the wrapped sink; the decorator adds no behavior
// beyond counting, so it can wrap any Graph implementation.
type Graph struct {
	inner graph.Graph
	m     *Metrics
}

// InstrumentGraph wraps a sink with the given metrics.
func InstrumentGraph(inner graph.Graph, m *Metrics) *Graph {
	return &Graph{inner: inner, m: m}
}

// Add counts and forwards one triple.
func (g *Graph) Add(t graph.Triple) {
	g.m.TriplesEmitted.Inc()
	g.inner.Add(t)
}

// NewBNode counts and forwards a blank node mint.
func (g *Graph) NewBNode() graph.BNode {
	g.m.BNodesMinted.Inc()
	return g.inner.NewBNode()
}

// Bind forwards a namespace binding.
func (g *Graph) Bind(prefix, base string, both bool) {
	g.inner.Bind(prefix, base, both)
}

// Namespaces forwards to the wrapped sink.
func (g *Graph) Namespaces() []graph.Namespace {
	return g.inner.Namespaces()
}
