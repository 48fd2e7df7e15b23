// Package extlinkset defines the ISO 21597-2 ExtendedLinkset ontology vocabulary.
//
// The ExtendedLinkset ontology is the extension vocabulary the relation
// normalizer resolves free-text relation types against. Only concepts whose
// IRI lives in this namespace are admitted into the semantic name index.
package extlinkset

// Namespace is the base IRI for the ISO 21597-2 ExtendedLinkset ontology.
const Namespace = "https://standards.iso.org/iso/21597/-2/ed-1/en/ExtendedLinkset#"

// OntologyIRI is the canonical location of the ExtendedLinkset ontology document.
const OntologyIRI = "https://standards.iso.org/iso/21597/-2/ed-1/en/ExtendedLinkset.rdf"

// Semantic link class IRIs declared by ISO 21597-2.
const (
	ClassHasPart         = Namespace + "HasPart"
	ClassIsPartOf        = Namespace + "IsPartOf"
	ClassHasMember       = Namespace + "HasMember"
	ClassIsMemberOf      = Namespace + "IsMemberOf"
	ClassElaborates      = Namespace + "Elaborates"
	ClassIsElaboratedBy  = Namespace + "IsElaboratedBy"
	ClassSpecialises     = Namespace + "Specialises"
	ClassIsSpecialisedAs = Namespace + "IsSpecialisedAs"
	ClassSupersedes      = Namespace + "Supersedes"
	ClassIsSupersededBy  = Namespace + "IsSupersededBy"
	ClassControls        = Namespace + "Controls"
	ClassIsControlledBy  = Namespace + "IsControlledBy"
	ClassIsIdenticalTo   = Namespace + "IsIdenticalTo"
	ClassIsAlternativeTo = Namespace + "IsAlternativeTo"
	ClassConflictsWith   = Namespace + "ConflictsWith"
)
