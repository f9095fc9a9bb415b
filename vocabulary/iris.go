package vocabulary

// Namespace prefixes and their IRIs. The four core prefixes are declared
// ahead of any schema or instance mapping; the two instance prefixes carry
// formatted instance names.
const (
	// PrefixRDF is the core RDF namespace prefix.
	PrefixRDF = "rdf"
	// NamespaceRDF is the core RDF namespace IRI.
	NamespaceRDF = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

	// PrefixRDFS is the RDF Schema namespace prefix.
	PrefixRDFS = "rdfs"
	// NamespaceRDFS is the RDF Schema namespace IRI.
	NamespaceRDFS = "http://www.w3.org/2000/01/rdf-schema#"

	// PrefixXSD is the XML Schema datatype namespace prefix.
	PrefixXSD = "xsd"
	// NamespaceXSD is the XML Schema datatype namespace IRI.
	NamespaceXSD = "http://www.w3.org/2001/XMLSchema#"

	// PrefixEC is the domain-extension vocabulary prefix.
	PrefixEC = "ec"
	// NamespaceEC is the domain-extension vocabulary IRI.
	NamespaceEC = "https://ecgraph.dev/ontology/ec#"

	// PrefixElement is the instance namespace for entities, aspects and
	// code specs.
	PrefixElement = "elementId"
	// NamespaceElement is the element instance namespace IRI.
	NamespaceElement = "https://ecgraph.dev/instance/element#"

	// PrefixResource is the instance namespace shared by models and
	// relationships, whose identifiers are drawn from the same underlying
	// space.
	PrefixResource = "resourceId"
	// NamespaceResource is the resource instance namespace IRI.
	NamespaceResource = "https://ecgraph.dev/instance/resource#"
)

// SchemaNamespaceBase is the IRI root under which every mapped schema gets
// its own namespace: SchemaNamespaceBase + alias + "#".
const SchemaNamespaceBase = "https://ecgraph.dev/schema/"

// SchemaNamespace returns the namespace IRI bound to a schema alias.
func SchemaNamespace(alias string) string {
	return SchemaNamespaceBase + alias + "#"
}

// Core RDF/RDFS predicates used by the mappers.
const (
	RDFType    = "rdf:type"
	RDFList    = "rdf:List"
	SubClassOf = "rdfs:subClassOf"
	Label      = "rdfs:label"
	Comment    = "rdfs:comment"
	Domain     = "rdfs:domain"
	Range      = "rdfs:range"
)

// XSD datatype terms used as primitive property ranges.
const (
	XSDString       = "xsd:string"
	XSDBoolean      = "xsd:boolean"
	XSDDateTime     = "xsd:dateTime"
	XSDDouble       = "xsd:double"
	XSDInteger      = "xsd:integer"
	XSDLong         = "xsd:long"
	XSDBase64Binary = "xsd:base64Binary"
)
