package funowl

import (
	"github.com/clin113jhu/funowl/errors"
	"github.com/clin113jhu/funowl/graph"
	"github.com/clin113jhu/funowl/writer"
)

// Import is a directly-imports entry: a reference to another ontology,
// always reducible to exactly one identifier.
//
// An Import built from another Ontology holds a non-owning reference used
// only to extract that ontology's identifier. The referenced ontology is
// never rendered recursively through the import; only OntologyIRI can reach
// it.
type Import struct {
	iri IRI
	ref *Ontology
}

// NewImport creates an import of a direct target identifier.
func NewImport(iri IRI) Import {
	return Import{iri: iri}
}

// ImportOntology creates an import referencing another ontology by its
// identifier.
func ImportOntology(o *Ontology) Import {
	return Import{ref: o}
}

// OntologyIRI resolves the import to its single identifier. Resolving a
// reference to an anonymous ontology fails with ErrMissingOntologyIRI.
func (i Import) OntologyIRI() (IRI, error) {
	if i.ref != nil {
		if i.ref.iri.IsZero() {
			return IRI{}, errors.WrapRender(errors.ErrMissingOntologyIRI,
				"import", "OntologyIRI", "resolve referenced ontology")
		}
		return i.ref.iri, nil
	}
	return i.iri, nil
}

// ToFunctional renders Import(iri).
func (i Import) ToFunctional(w *writer.Functional) error {
	iri, err := i.OntologyIRI()
	if err != nil {
		return err
	}
	var renderErr error
	w.Func("Import", func() {
		renderErr = iri.ToFunctional(w)
	})
	return renderErr
}

// ToRDF resolves to the target's resource term. An import emits no triples
// of its own; the owning ontology emits the owl:imports triple.
func (i Import) ToRDF(_ graph.Graph) (graph.Term, error) {
	iri, err := i.OntologyIRI()
	if err != nil {
		return nil, err
	}
	return iri.Term(), nil
}
