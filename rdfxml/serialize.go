package rdfxml

import (
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Serialize writes the graph as RDF/XML, one typed element per subject in
// first-insertion order. Output is deterministic for a given graph.
func (g *Graph) Serialize(w io.Writer) error {
	prefixes := g.serializationPrefixes()

	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="utf-8"?>` + "\n")
	sb.WriteString("<rdf:RDF")

	names := make([]string, 0, len(prefixes))
	for prefix := range prefixes {
		names = append(names, prefix)
	}
	sort.Strings(names)
	for _, prefix := range names {
		sb.WriteString(fmt.Sprintf("\n  xmlns:%s=%q", prefix, prefixes[prefix]))
	}
	sb.WriteString(">\n")

	for _, subject := range g.order {
		g.writeSubject(&sb, prefixes, subject)
	}

	sb.WriteString("</rdf:RDF>\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

// writeSubject writes one subject node. The first rdf:type whose namespace
// has a bound prefix becomes the element name; remaining types stay as
// rdf:type children.
func (g *Graph) writeSubject(sb *strings.Builder, prefixes map[string]string, subject string) {
	var props []Triple
	var types []IRI
	for _, t := range g.triples {
		if t.Subject != subject {
			continue
		}
		if t.Predicate == RDFType {
			if iri, ok := t.Object.(IRI); ok {
				types = append(types, iri)
				continue
			}
		}
		props = append(props, t)
	}

	element := "rdf:Description"
	rest := types
	for i, typeIRI := range types {
		if q, ok := qname(prefixes, string(typeIRI)); ok {
			element = q
			rest = append(append([]IRI{}, types[:i]...), types[i+1:]...)
			break
		}
	}

	sb.WriteString(fmt.Sprintf("  <%s rdf:about=%q>\n", element, subject))
	for _, typeIRI := range rest {
		sb.WriteString(fmt.Sprintf("    <rdf:type rdf:resource=%q/>\n", string(typeIRI)))
	}
	for _, t := range props {
		q, ok := qname(prefixes, t.Predicate)
		if !ok {
			// Unbound predicate namespaces are bound up front; this is a
			// safety net for malformed predicate IRIs.
			continue
		}
		switch o := t.Object.(type) {
		case IRI:
			sb.WriteString(fmt.Sprintf("    <%s rdf:resource=%q/>\n", q, string(o)))
		default:
			sb.WriteString(fmt.Sprintf("    <%s>%s</%s>\n", q, escapeText(fmt.Sprintf("%v", o)), q))
		}
	}
	sb.WriteString(fmt.Sprintf("  </%s>\n", element))
}

// serializationPrefixes returns the bound prefixes plus generated bindings
// for any predicate or subject-type namespace not yet covered.
func (g *Graph) serializationPrefixes() map[string]string {
	prefixes := make(map[string]string, len(g.prefixes))
	for p, ns := range g.prefixes {
		prefixes[p] = ns
	}

	bound := make(map[string]bool, len(prefixes))
	for _, ns := range prefixes {
		bound[ns] = true
	}

	next := 1
	ensure := func(iri string) {
		ns, local := SplitIRI(iri)
		if ns == "" || local == "" || bound[ns] {
			return
		}
		prefixes[fmt.Sprintf("ns%d", next)] = ns
		bound[ns] = true
		next++
	}

	for _, t := range g.triples {
		ensure(t.Predicate)
		if t.Predicate == RDFType {
			if iri, ok := t.Object.(IRI); ok {
				ensure(string(iri))
			}
		}
	}
	return prefixes
}

// qname maps an IRI to prefix:local form using the given prefix table.
func qname(prefixes map[string]string, iri string) (string, bool) {
	ns, local := SplitIRI(iri)
	if ns == "" || local == "" {
		return "", false
	}
	best := ""
	for prefix, bound := range prefixes {
		if bound == ns && (best == "" || prefix < best) {
			best = prefix
		}
	}
	if best == "" {
		return "", false
	}
	return best + ":" + local, true
}

func escapeText(s string) string {
	var sb strings.Builder
	if err := xml.EscapeText(&sb, []byte(s)); err != nil {
		return s
	}
	return sb.String()
}
