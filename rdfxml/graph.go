// Package rdfxml provides a minimal append-only RDF graph with RDF/XML
// serialization and parsing.
//
// It covers exactly what ICDD containers need: typed subject nodes,
// resource-valued and literal-valued properties, and prefix-qualified
// output. It is not a general RDF toolkit.
package rdfxml

import "strings"

// Core W3C namespace IRIs.
const (
	RDFNamespace  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	RDFSNamespace = "http://www.w3.org/2000/01/rdf-schema#"
	OWLNamespace  = "http://www.w3.org/2002/07/owl#"
	XSDNamespace  = "http://www.w3.org/2001/XMLSchema#"
)

// Frequently used term IRIs.
const (
	RDFType       = RDFNamespace + "type"
	RDFSComment   = RDFSNamespace + "comment"
	RDFSLabel     = RDFSNamespace + "label"
	RDFSSubClass  = RDFSNamespace + "subClassOf"
	OWLClass      = OWLNamespace + "Class"
	OWLOntology   = OWLNamespace + "Ontology"
	OWLImports    = OWLNamespace + "imports"
)

// IRI marks a triple object as a resource reference rather than a literal.
type IRI string

// Triple is a single statement. Object is either an IRI or a literal string.
type Triple struct {
	Subject   string
	Predicate string
	Object    any
}

// Graph is an append-only collection of triples with namespace prefixes.
// Subject order is first-insertion order, which keeps serialization
// deterministic across runs.
type Graph struct {
	triples  []Triple
	prefixes map[string]string
	order    []string
	seen     map[string]bool
}

// NewGraph creates an empty graph with the rdf, rdfs, owl and xsd prefixes
// bound.
func NewGraph() *Graph {
	return &Graph{
		prefixes: map[string]string{
			"rdf":  RDFNamespace,
			"rdfs": RDFSNamespace,
			"owl":  OWLNamespace,
			"xsd":  XSDNamespace,
		},
		seen: make(map[string]bool),
	}
}

// Bind registers a namespace prefix for serialization.
func (g *Graph) Bind(prefix, namespace string) {
	g.prefixes[prefix] = namespace
}

// Add appends a triple. Objects of type IRI serialize as rdf:resource
// references; everything else serializes as a literal.
func (g *Graph) Add(subject, predicate string, object any) {
	if !g.seen[subject] {
		g.seen[subject] = true
		g.order = append(g.order, subject)
	}
	g.triples = append(g.triples, Triple{Subject: subject, Predicate: predicate, Object: object})
}

// Len returns the number of triples in the graph.
func (g *Graph) Len() int {
	return len(g.triples)
}

// Triples returns all triples in insertion order.
func (g *Graph) Triples() []Triple {
	return g.triples
}

// Subjects returns distinct subjects in first-insertion order.
func (g *Graph) Subjects() []string {
	return g.order
}

// SubjectsOfType returns the subjects carrying an rdf:type assertion for
// the given class IRI, in first-insertion order.
func (g *Graph) SubjectsOfType(classIRI string) []string {
	var out []string
	found := make(map[string]bool)
	for _, t := range g.triples {
		if t.Predicate != RDFType || found[t.Subject] {
			continue
		}
		if iri, ok := t.Object.(IRI); ok && string(iri) == classIRI {
			found[t.Subject] = true
		}
	}
	for _, s := range g.order {
		if found[s] {
			out = append(out, s)
		}
	}
	return out
}

// HasType reports whether the subject carries an rdf:type assertion for
// the given class IRI.
func (g *Graph) HasType(subject, classIRI string) bool {
	for _, t := range g.triples {
		if t.Subject != subject || t.Predicate != RDFType {
			continue
		}
		if iri, ok := t.Object.(IRI); ok && string(iri) == classIRI {
			return true
		}
	}
	return false
}

// Objects returns every object of triples matching subject and predicate.
func (g *Graph) Objects(subject, predicate string) []any {
	var out []any
	for _, t := range g.triples {
		if t.Subject == subject && t.Predicate == predicate {
			out = append(out, t.Object)
		}
	}
	return out
}

// FirstLiteral returns the first literal object for subject and predicate.
func (g *Graph) FirstLiteral(subject, predicate string) (string, bool) {
	for _, t := range g.triples {
		if t.Subject == subject && t.Predicate == predicate {
			if s, ok := t.Object.(string); ok {
				return s, true
			}
		}
	}
	return "", false
}

// SplitIRI separates an IRI into its namespace and local name. The split
// point is after the last '#' or '/'.
func SplitIRI(iri string) (namespace, local string) {
	if i := strings.LastIndexAny(iri, "#/"); i >= 0 && i < len(iri)-1 {
		return iri[:i+1], iri[i+1:]
	}
	return "", iri
}
