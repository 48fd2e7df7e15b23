package rdfxml

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Parse reads an RDF/XML document into a graph. It understands the striped
// subset ICDD files use: typed or rdf:Description subject nodes, rdf:about
// subjects, rdf:resource object references, nested node elements, and
// literal property values. Unsupported constructs are skipped, not errors.
func Parse(r io.Reader) (*Graph, error) {
	g := NewGraph()
	dec := xml.NewDecoder(r)
	blank := 0

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return g, nil
		}
		if err != nil {
			return nil, fmt.Errorf("parse rdf/xml: %w", err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if start.Name.Space == RDFNamespace && start.Name.Local == "RDF" {
			if err := parseNodeList(dec, g, &blank); err != nil {
				return nil, err
			}
			continue
		}
		// Document without an rdf:RDF wrapper: treat the root as a node.
		if _, err := parseNode(dec, start, g, &blank); err != nil {
			return nil, err
		}
	}
}

// parseNodeList consumes subject nodes until the enclosing end element.
func parseNodeList(dec *xml.Decoder, g *Graph, blank *int) error {
	for {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("parse rdf/xml: %w", err)
		}
		switch el := tok.(type) {
		case xml.StartElement:
			if _, err := parseNode(dec, el, g, blank); err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

// parseNode reads one subject node and its property children, returning the
// subject identifier. Nodes without rdf:about get a generated blank node id.
func parseNode(dec *xml.Decoder, start xml.StartElement, g *Graph, blank *int) (string, error) {
	subject := nodeSubject(start, blank)

	if start.Name.Space != RDFNamespace || start.Name.Local != "Description" {
		g.Add(subject, RDFType, IRI(start.Name.Space+start.Name.Local))
	}

	for {
		tok, err := dec.Token()
		if err != nil {
			return "", fmt.Errorf("parse rdf/xml: %w", err)
		}
		switch el := tok.(type) {
		case xml.StartElement:
			if err := parseProperty(dec, el, g, subject, blank); err != nil {
				return "", err
			}
		case xml.EndElement:
			return subject, nil
		}
	}
}

// parseProperty reads one property element of a subject node.
func parseProperty(dec *xml.Decoder, start xml.StartElement, g *Graph, subject string, blank *int) error {
	predicate := start.Name.Space + start.Name.Local

	for _, attr := range start.Attr {
		if attr.Name.Space == RDFNamespace && attr.Name.Local == "resource" {
			g.Add(subject, predicate, IRI(attr.Value))
			return dec.Skip()
		}
	}

	var text strings.Builder
	nested := false
	for {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("parse rdf/xml: %w", err)
		}
		switch el := tok.(type) {
		case xml.StartElement:
			object, err := parseNode(dec, el, g, blank)
			if err != nil {
				return err
			}
			g.Add(subject, predicate, IRI(object))
			nested = true
		case xml.CharData:
			text.Write(el)
		case xml.EndElement:
			if !nested {
				g.Add(subject, predicate, strings.TrimSpace(text.String()))
			}
			return nil
		}
	}
}

func nodeSubject(start xml.StartElement, blank *int) string {
	for _, attr := range start.Attr {
		if attr.Name.Space != RDFNamespace {
			continue
		}
		switch attr.Name.Local {
		case "about", "ID", "nodeID":
			return attr.Value
		}
	}
	*blank++
	return fmt.Sprintf("_:b%d", *blank)
}
