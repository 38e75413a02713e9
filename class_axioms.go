package funowl

import (
	"github.com/clin113jhu/funowl/graph"
	"github.com/clin113jhu/funowl/vocabulary"
	"github.com/clin113jhu/funowl/writer"
)

// SubClassOf asserts that Sub is a subclass of Super.
type SubClassOf struct {
	Annotatable
	Sub   ClassExpression
	Super ClassExpression
}

func (*SubClassOf) isAxiom() {}

// ToFunctional renders SubClassOf(sub super).
func (a *SubClassOf) ToFunctional(w *writer.Functional) error {
	var renderErr error
	w.Func("SubClassOf", func() {
		if renderErr = a.writeAnnotations(w); renderErr != nil {
			return
		}
		if renderErr = a.Sub.ToFunctional(w); renderErr != nil {
			return
		}
		renderErr = a.Super.ToFunctional(w)
	})
	return renderErr
}

// ToRDF emits (sub, rdfs:subClassOf, super) and returns the subclass term.
func (a *SubClassOf) ToRDF(g graph.Graph) (graph.Term, error) {
	sub, err := a.Sub.ToRDF(g)
	if err != nil {
		return nil, err
	}
	super, err := a.Super.ToRDF(g)
	if err != nil {
		return nil, err
	}
	g.Add(graph.Triple{
		Subject:   sub,
		Predicate: graph.IRIRef(vocabulary.RdfsSubClassOf),
		Object:    super,
	})
	if err := a.attachAnnotations(g, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// EquivalentClasses asserts that all listed class expressions are equivalent.
type EquivalentClasses struct {
	Annotatable
	Exprs []ClassExpression
}

func (*EquivalentClasses) isAxiom() {}

// ToFunctional renders EquivalentClasses(e1 e2 ...).
func (a *EquivalentClasses) ToFunctional(w *writer.Functional) error {
	var renderErr error
	w.Func("EquivalentClasses", func() {
		if renderErr = a.writeAnnotations(w); renderErr != nil {
			return
		}
		for _, expr := range a.Exprs {
			if renderErr = expr.ToFunctional(w); renderErr != nil {
				return
			}
		}
	})
	return renderErr
}

// ToRDF emits the pairwise owl:equivalentClass chain (e1,e2), (e2,e3), ...
// and returns the first expression's term.
func (a *EquivalentClasses) ToRDF(g graph.Graph) (graph.Term, error) {
	terms := make([]graph.Term, 0, len(a.Exprs))
	for _, expr := range a.Exprs {
		term, err := expr.ToRDF(g)
		if err != nil {
			return nil, err
		}
		terms = append(terms, term)
	}
	for i := 0; i+1 < len(terms); i++ {
		g.Add(graph.Triple{
			Subject:   terms[i],
			Predicate: graph.IRIRef(vocabulary.OwlEquivalentClass),
			Object:    terms[i+1],
		})
	}
	if len(terms) == 0 {
		return nil, nil
	}
	if err := a.attachAnnotations(g, terms[0]); err != nil {
		return nil, err
	}
	return terms[0], nil
}
