package graph

// Triple represents one semantic statement following the Subject-Predicate-Object
// pattern of the RDF abstract syntax.
//
// Triple design follows these principles:
//   - Subject: a named resource or an anonymous node (never a literal)
//   - Predicate: always a named resource
//   - Object: any term, including literals
//
// Triples are produced by the RDF renderers in a fixed relationship order per
// node and pushed into a Graph sink; the core never reads them back.
type Triple struct {
	// Subject identifies the resource this triple describes.
	Subject Term `json:"subject"`

	// Predicate identifies the relationship between subject and object.
	Predicate IRIRef `json:"predicate"`

	// Object contains the related resource or literal value.
	Object Term `json:"object"`
}

// String returns the triple in N-Triples statement form.
func (t Triple) String() string {
	return t.Subject.String() + " " + t.Predicate.String() + " " + t.Object.String() + " ."
}

// Equal reports whether two triples have identical terms.
// Term comparison is structural, so blank nodes match only on label.
func (t Triple) Equal(o Triple) bool {
	return t.Subject == o.Subject && t.Predicate == o.Predicate && t.Object == o.Object
}
