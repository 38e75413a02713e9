package vocabulary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardIRIsUseTheirNamespace(t *testing.T) {
	tests := []struct {
		name      string
		iri       string
		namespace string
	}{
		{name: "rdf type", iri: RdfType, namespace: RdfNamespace},
		{name: "rdfs subClassOf", iri: RdfsSubClassOf, namespace: RdfsNamespace},
		{name: "rdfs subPropertyOf", iri: RdfsSubPropertyOf, namespace: RdfsNamespace},
		{name: "owl Ontology", iri: OwlOntology, namespace: OwlNamespace},
		{name: "owl imports", iri: OwlImports, namespace: OwlNamespace},
		{name: "owl versionIRI", iri: OwlVersionIRI, namespace: OwlNamespace},
		{name: "owl inverseOf", iri: OwlInverseOf, namespace: OwlNamespace},
		{name: "xsd string", iri: XsdString, namespace: XsdNamespace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, strings.HasPrefix(tt.iri, tt.namespace))
			assert.NotEqual(t, tt.iri, tt.namespace, "IRI must have a local part")
		})
	}
}

func TestStandardNamespaces(t *testing.T) {
	list := StandardNamespaces()
	require.Len(t, list, 4)

	byPrefix := make(map[string]string, len(list))
	for _, ns := range list {
		byPrefix[ns.Prefix] = ns.Base
	}

	assert.Equal(t, RdfNamespace, byPrefix["rdf"])
	assert.Equal(t, RdfsNamespace, byPrefix["rdfs"])
	assert.Equal(t, XsdNamespace, byPrefix["xsd"])
	assert.Equal(t, OwlNamespace, byPrefix["owl"])
}
