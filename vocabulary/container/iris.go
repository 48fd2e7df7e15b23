// Package container defines the ISO 21597-1 Container ontology vocabulary.
package container

// Namespace is the base IRI for the ISO 21597-1 Container ontology.
const Namespace = "https://standards.iso.org/iso/21597/-1/ed-1/en/Container#"

// OntologyIRI is the canonical location of the Container ontology document.
const OntologyIRI = "https://standards.iso.org/iso/21597/-1/ed-1/en/Container.rdf"

// Class IRIs for container-level entities.
const (
	// ClassContainerDescription is the top-level description entity of a container.
	ClassContainerDescription = Namespace + "ContainerDescription"

	// ClassParty identifies a person or organisation, e.g. the publisher.
	ClassParty = Namespace + "Party"

	// ClassInternalDocument is a document stored inside the container payload.
	ClassInternalDocument = Namespace + "InternalDocument"

	// ClassFolderDocument is a payload folder registered as a document.
	ClassFolderDocument = Namespace + "FolderDocument"
)

// Property IRIs for container metadata.
const (
	// PropConformanceIndicator declares the ISO conformance level.
	PropConformanceIndicator = Namespace + "conformanceIndicator"

	// PropPublishedBy links the container description to its publishing Party.
	PropPublishedBy = Namespace + "publishedBy"

	// PropName is the display name of a document or party.
	PropName = Namespace + "name"

	// PropFilename is the payload-relative path of an InternalDocument.
	PropFilename = Namespace + "filename"

	// PropFiletype is the lower-cased file extension of an InternalDocument.
	PropFiletype = Namespace + "filetype"

	// PropFoldername is the payload-relative path of a FolderDocument.
	PropFoldername = Namespace + "foldername"

	// PropContainsDocument links the container description to a registered document.
	PropContainsDocument = Namespace + "containsDocument"

	// PropContainsLinkset links the container description to a serialized linkset file.
	PropContainsLinkset = Namespace + "containsLinkset"
)

// ConformanceIndicatorPart1 is the conformance value written for Part 1 containers.
const ConformanceIndicatorPart1 = "ICDD-Part1-Container"
