// Package linkset builds ISO 21597 link graphs: it normalizes free-text
// relation types against the extension ontology and materializes typed
// link entities into an append-only relationship graph.
package linkset

import (
	"github.com/c360studio/icddkit/rdfxml"
	ls "github.com/c360studio/icddkit/vocabulary/linkset"
)

// DefaultQueryLanguage is assumed when a query identifier names none.
const DefaultQueryLanguage = "XPath"

// Identifier anchors a link element to a sub-part of its document. Exactly
// three kinds exist: string-keyed, URI-based and query-based. An identifier
// missing a required field is never emitted; the builder drops it whole.
type Identifier interface {
	// Valid reports whether all required fields are present.
	Valid() bool

	// addTriples emits the identifier entity into the RDF graph.
	addTriples(g *rdfxml.Graph, uri string)
}

// StringIdentifier keys a sub-element by a named field and value, e.g.
// field "GUID" with an IFC global id.
type StringIdentifier struct {
	Field string
	Value string
}

// Valid requires both field name and value.
func (i StringIdentifier) Valid() bool {
	return i.Field != "" && i.Value != ""
}

func (i StringIdentifier) addTriples(g *rdfxml.Graph, uri string) {
	g.Add(uri, rdfxml.RDFType, rdfxml.IRI(ls.ClassStringBasedIdentifier))
	g.Add(uri, ls.PropIdentifier, i.Value)
	g.Add(uri, ls.PropIdentifierField, i.Field)
}

// URIIdentifier keys a sub-element by a single absolute identifier string.
type URIIdentifier struct {
	URI string
}

// Valid requires the identifier string.
func (i URIIdentifier) Valid() bool {
	return i.URI != ""
}

func (i URIIdentifier) addTriples(g *rdfxml.Graph, uri string) {
	g.Add(uri, rdfxml.RDFType, rdfxml.IRI(ls.ClassURIBasedIdentifier))
	g.Add(uri, ls.PropURI, i.URI)
}

// QueryIdentifier keys a sub-element by a query expression. Language
// defaults to XPath when empty.
type QueryIdentifier struct {
	Expression string
	Language   string
}

// Valid requires the expression; the language has a default.
func (i QueryIdentifier) Valid() bool {
	return i.Expression != ""
}

func (i QueryIdentifier) addTriples(g *rdfxml.Graph, uri string) {
	language := i.Language
	if language == "" {
		language = DefaultQueryLanguage
	}
	g.Add(uri, rdfxml.RDFType, rdfxml.IRI(ls.ClassQueryBasedIdentifier))
	g.Add(uri, ls.PropQueryExpression, i.Expression)
	g.Add(uri, ls.PropQueryLanguage, language)
}
