// Package vocabulary provides the W3C standard IRIs used by the funowl
// structural-to-RDF mapping and the well-known namespace bindings for
// textual abbreviation.
package vocabulary

import "github.com/clin113jhu/funowl/graph"

// Standard Vocabulary Namespaces
//
// References:
// - RDF: https://www.w3.org/TR/rdf11-concepts/
// - RDF Schema: https://www.w3.org/TR/rdf-schema/
// - OWL: https://www.w3.org/TR/owl2-overview/
// - XML Schema Datatypes: https://www.w3.org/TR/xmlschema11-2/
const (
	// RdfNamespace is the RDF syntax namespace.
	RdfNamespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

	// RdfsNamespace is the RDF Schema namespace.
	RdfsNamespace = "http://www.w3.org/2000/01/rdf-schema#"

	// OwlNamespace is the Web Ontology Language namespace.
	OwlNamespace = "http://www.w3.org/2002/07/owl#"

	// XsdNamespace is the XML Schema datatype namespace.
	XsdNamespace = "http://www.w3.org/2001/XMLSchema#"
)

// RDF Standard IRIs
const (
	// RdfType relates a resource to one of its classes.
	RdfType = RdfNamespace + "type"
)

// RDF Schema Standard IRIs
const (
	// RdfsLabel provides a human-readable name for a resource
	RdfsLabel = RdfsNamespace + "label"

	// RdfsComment provides a human-readable description
	RdfsComment = RdfsNamespace + "comment"

	// RdfsSubClassOf relates a class to one of its superclasses
	RdfsSubClassOf = RdfsNamespace + "subClassOf"

	// RdfsSubPropertyOf relates a property to one of its superproperties
	RdfsSubPropertyOf = RdfsNamespace + "subPropertyOf"

	// RdfsDomain states the class of subjects a property applies to
	RdfsDomain = RdfsNamespace + "domain"

	// RdfsRange states the class of values a property takes
	RdfsRange = RdfsNamespace + "range"

	// RdfsDatatype is the class of datatypes
	RdfsDatatype = RdfsNamespace + "Datatype"
)

// OWL Standard IRIs used by the structural mapping
const (
	// OwlOntology is the class of ontologies; every ontology header
	// emits (subject, rdf:type, owl:Ontology).
	OwlOntology = OwlNamespace + "Ontology"

	// OwlImports relates an ontology to one it directly imports
	OwlImports = OwlNamespace + "imports"

	// OwlVersionIRI relates an ontology to its version IRI
	OwlVersionIRI = OwlNamespace + "versionIRI"

	// OwlClass is the class of OWL classes
	OwlClass = OwlNamespace + "Class"

	// OwlObjectProperty is the class of object properties
	OwlObjectProperty = OwlNamespace + "ObjectProperty"

	// OwlDatatypeProperty is the class of data properties
	OwlDatatypeProperty = OwlNamespace + "DatatypeProperty"

	// OwlAnnotationProperty is the class of annotation properties
	OwlAnnotationProperty = OwlNamespace + "AnnotationProperty"

	// OwlNamedIndividual is the class of named individuals
	OwlNamedIndividual = OwlNamespace + "NamedIndividual"

	// OwlEquivalentClass relates two equivalent class expressions
	OwlEquivalentClass = OwlNamespace + "equivalentClass"

	// OwlInverseOf relates two mutually inverse object properties
	OwlInverseOf = OwlNamespace + "inverseOf"

	// OwlFunctionalProperty is the class of functional properties
	OwlFunctionalProperty = OwlNamespace + "FunctionalProperty"

	// OwlInverseFunctionalProperty is the class of inverse-functional properties
	OwlInverseFunctionalProperty = OwlNamespace + "InverseFunctionalProperty"
)

// XSD Standard IRIs for common literal datatypes
const (
	// XsdString is the xsd:string datatype
	XsdString = XsdNamespace + "string"

	// XsdBoolean is the xsd:boolean datatype
	XsdBoolean = XsdNamespace + "boolean"

	// XsdInteger is the xsd:integer datatype
	XsdInteger = XsdNamespace + "integer"

	// XsdDecimal is the xsd:decimal datatype
	XsdDecimal = XsdNamespace + "decimal"

	// XsdDateTime is the xsd:dateTime datatype
	XsdDateTime = XsdNamespace + "dateTime"
)

// StandardNamespaces returns the conventional prefix bindings for the four
// standard vocabularies, in the order OWL tooling usually declares them.
// Callers can bind these into a writer or sink before rendering so standard
// terms abbreviate in functional-syntax output.
func StandardNamespaces() []graph.Namespace {
	return []graph.Namespace{
		{Prefix: "rdf", Base: RdfNamespace},
		{Prefix: "rdfs", Base: RdfsNamespace},
		{Prefix: "xsd", Base: XsdNamespace},
		{Prefix: "owl", Base: OwlNamespace},
	}
}
