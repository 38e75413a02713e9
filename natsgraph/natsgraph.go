// Package natsgraph provides a graph sink that publishes emitted triples to
// a NATS subject, so a render pass can stream an ontology's structural
// mapping straight onto a message bus instead of accumulating it in memory.
package natsgraph

import (
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/clin113jhu/funowl/graph"
)

// DefaultSubject is the subject triples are published to unless overridden.
const DefaultSubject = "semantic.ontology.triples"

// Publisher is the transport dependency. *nats.Conn satisfies it; tests
// inject a capture fake.
type Publisher interface {
	Publish(subject string, data []byte) error
}

var _ Publisher = (*nats.Conn)(nil)

// WireTriple is the published JSON form of one triple. Terms are flattened
// to strings plus a kind tag so consumers do not need the Go term types.
type WireTriple struct {
	Subject       string `json:"subject"`
	SubjectKind   string `json:"subject_kind"` // "iri" or "bnode"
	Predicate     string `json:"predicate"`
	Object        string `json:"object"`
	ObjectKind    string `json:"object_kind"` // "iri", "bnode", or "literal"
	ObjectLang    string `json:"object_lang,omitempty"`
	ObjectTypeIRI string `json:"object_datatype,omitempty"`
}

// Graph publishes each added triple to a NATS subject.
//
// Publish failures do not interrupt the render pass that is feeding the
// sink: the first failure is retained and logged, subsequent triples are
// still attempted, and the caller checks Err after the pass. Namespace
// bindings are kept locally; they are a serialization concern, not bus
// traffic.
//
// Graph is not safe for concurrent use; each render pass owns its sink.
type Graph struct {
	pub     Publisher
	subject string
	ns      *graph.Namespaces
	log     *slog.Logger
	conn    *nats.Conn
	err     error
}

// Option configures a Graph.
type Option func(*Graph)

// WithSubject overrides the publish subject.
func WithSubject(subject string) Option {
	return func(g *Graph) {
		g.subject = subject
	}
}

// WithLogger overrides the logger.
func WithLogger(log *slog.Logger) Option {
	return func(g *Graph) {
		g.log = log
	}
}

// New creates a publishing sink on top of the given transport.
func New(pub Publisher, opts ...Option) *Graph {
	g := &Graph{
		pub:     pub,
		subject: DefaultSubject,
		ns:      graph.NewNamespaces(),
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Connect dials a NATS server and returns a sink publishing over the new
// connection. The connection is owned by the caller's process lifetime;
// close it with Conn().Close() when no more passes will run.
func Connect(url string, opts ...Option) (*Graph, error) {
	nc, err := nats.Connect(url, nats.Name("funowl-natsgraph"))
	if err != nil {
		return nil, err
	}
	g := New(nc, opts...)
	g.conn = nc
	return g, nil
}

// Conn returns the owned NATS connection, or nil for a sink built over an
// injected Publisher.
func (g *Graph) Conn() *nats.Conn {
	return g.conn
}

// Add publishes one triple. Marshal or publish failures are retained for
// Err and logged; Add itself never fails, matching the sink contract.
func (g *Graph) Add(t graph.Triple) {
	wire := WireTriple{
		Predicate: string(t.Predicate),
	}
	wire.Subject, wire.SubjectKind, _, _ = flatten(t.Subject)
	wire.Object, wire.ObjectKind, wire.ObjectLang, wire.ObjectTypeIRI = flatten(t.Object)

	data, err := json.Marshal(wire)
	if err != nil {
		g.fail("marshal triple", err)
		return
	}
	if err := g.pub.Publish(g.subject, data); err != nil {
		g.fail("publish triple", err)
	}
}

// NewBNode mints a fresh anonymous node.
func (g *Graph) NewBNode() graph.BNode {
	return graph.BNode("b" + uuid.NewString())
}

// Bind registers a namespace binding in the local registry.
func (g *Graph) Bind(prefix, base string, both bool) {
	g.ns.Bind(prefix, base, both)
}

// Namespaces returns the locally registered bindings in declaration order.
func (g *Graph) Namespaces() []graph.Namespace {
	return g.ns.List()
}

// Err returns the first failure seen since the sink was created.
func (g *Graph) Err() error {
	return g.err
}

// fail retains the first error and logs every one.
func (g *Graph) fail(action string, err error) {
	g.log.Warn("natsgraph: "+action+" failed",
		slog.String("subject", g.subject),
		slog.String("error", err.Error()))
	if g.err == nil {
		g.err = err
	}
}

// flatten converts a term to its wire fields: value, kind, lang, datatype.
func flatten(t graph.Term) (value, kind, lang, datatype string) {
	switch term := t.(type) {
	case graph.IRIRef:
		return string(term), "iri", "", ""
	case graph.BNode:
		return string(term), "bnode", "", ""
	case graph.Literal:
		return term.Value, "literal", term.Lang, term.Datatype
	default:
		return t.String(), "unknown", "", ""
	}
}
