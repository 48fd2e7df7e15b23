// Package linkset defines the ISO 21597-1 Linkset ontology vocabulary.
package linkset

// Namespace is the base IRI for the ISO 21597-1 Linkset ontology.
const Namespace = "https://standards.iso.org/iso/21597/-1/ed-1/en/Linkset#"

// OntologyIRI is the canonical location of the Linkset ontology document.
const OntologyIRI = "https://standards.iso.org/iso/21597/-1/ed-1/en/Linkset.rdf"

// Class IRIs for link entities and their structural classifications.
const (
	// ClassLink is the base link entity class.
	ClassLink = Namespace + "Link"

	// ClassDirectedLink is a link whose elements have from/to roles.
	ClassDirectedLink = Namespace + "DirectedLink"

	// ClassDirected1toNLink is a directed link from one element to many.
	// The least-constrained directed structure; the fallback shape.
	ClassDirected1toNLink = Namespace + "Directed1toNLink"

	// ClassDirectedBinaryLink is a directed link with exactly one element on each end.
	ClassDirectedBinaryLink = Namespace + "DirectedBinaryLink"

	// ClassBinaryLink is an undirected link between exactly two elements.
	ClassBinaryLink = Namespace + "BinaryLink"

	// ClassLinkElement is one endpoint of a link.
	ClassLinkElement = Namespace + "LinkElement"

	// ClassStringBasedIdentifier anchors a link element to a sub-part of a
	// document by a field/value pair, e.g. an IFC GUID.
	ClassStringBasedIdentifier = Namespace + "StringBasedIdentifier"

	// ClassURIBasedIdentifier anchors a link element by an absolute URI.
	ClassURIBasedIdentifier = Namespace + "URIBasedIdentifier"

	// ClassQueryBasedIdentifier anchors a link element by a query expression.
	ClassQueryBasedIdentifier = Namespace + "QueryBasedIdentifier"
)

// Property IRIs for link structure.
const (
	// PropHasFromLinkElement links a directed link to its from end.
	PropHasFromLinkElement = Namespace + "hasFromLinkElement"

	// PropHasToLinkElement links a directed link to its to end.
	PropHasToLinkElement = Namespace + "hasToLinkElement"

	// PropHasDocument links a link element to the document it points at.
	PropHasDocument = Namespace + "hasDocument"

	// PropHasIdentifier links a link element to its sub-element identifier.
	PropHasIdentifier = Namespace + "hasIdentifier"

	// PropIdentifier is the value of a string-based identifier.
	PropIdentifier = Namespace + "identifier"

	// PropIdentifierField is the field name of a string-based identifier.
	PropIdentifierField = Namespace + "identifierField"

	// PropURI is the value of a URI-based identifier.
	PropURI = Namespace + "uri"

	// PropQueryExpression is the expression of a query-based identifier.
	PropQueryExpression = Namespace + "queryExpression"

	// PropQueryLanguage is the query language of a query-based identifier.
	PropQueryLanguage = Namespace + "queryLanguage"
)
