package linkset

import (
	"log/slog"

	"github.com/c360studio/icddkit/container"
	"github.com/c360studio/icddkit/rdfxml"
	ct "github.com/c360studio/icddkit/vocabulary/container"
	els "github.com/c360studio/icddkit/vocabulary/extlinkset"
	ls "github.com/c360studio/icddkit/vocabulary/linkset"
)

// LinkElement is one endpoint of a link. It is owned exclusively by its
// link and created in from/to pairs.
type LinkElement struct {
	URI        string
	Document   container.Document
	Identifier Identifier
}

// Link is one relationship entity. Links are immutable after creation:
// the builder appends them to the graph and nothing mutates them later.
// Shape is always set; ConceptIRI and Note are optional and orthogonal.
type Link struct {
	URI        string
	Shape      Shape
	ConceptIRI string
	Note       string
	From       LinkElement
	To         LinkElement
}

// Graph is the append-only set of links produced by one import pass.
// There is exactly one writer per import, so no locking is needed.
type Graph struct {
	baseURI string
	links   []Link
}

// NewGraph creates an empty relationship graph generating entity URIs
// under the given base namespace.
func NewGraph(baseURI string) *Graph {
	return &Graph{baseURI: baseURI}
}

// Links returns the accumulated links in creation order.
func (g *Graph) Links() []Link {
	return g.links
}

// Len returns the number of links built so far.
func (g *Graph) Len() int {
	return len(g.links)
}

// BuildLink materializes one link entity: the shape-tagged link, its two
// typed elements, the optional sub-element identifier on the to end, and
// the optional diagnostic note. An unresolved relation type never blocks
// creation; it only means the link carries no semantic class.
//
// Identifiers missing required fields are dropped whole; a partial
// identifier is never emitted. Entity URIs are freshly generated on every
// call, so repeated identical inputs produce structurally identical but
// distinctly identified links. The builder does not deduplicate.
func (g *Graph) BuildLink(from, to container.Document, res Resolution, toIdentifier Identifier, note string) Link {
	if toIdentifier != nil && !toIdentifier.Valid() {
		slog.Warn("Incomplete sub-element identifier, omitting it",
			"from", from.RelativePath, "to", to.RelativePath)
		toIdentifier = nil
	}

	link := Link{
		URI:        container.NewEntityURI(g.baseURI, "Link"),
		Shape:      res.Shape,
		ConceptIRI: res.ConceptIRI,
		Note:       note,
		From: LinkElement{
			URI:      container.NewEntityURI(g.baseURI, "LinkElement"),
			Document: from,
		},
		To: LinkElement{
			URI:        container.NewEntityURI(g.baseURI, "LinkElement"),
			Document:   to,
			Identifier: toIdentifier,
		},
	}
	g.links = append(g.links, link)
	return link
}

// BuildPartAnchor builds the auxiliary self-referential HasPart link that
// anchors a sub-element inside its owning document: both ends point at the
// document, the identifier sits on the to end, and the shape is OneToMany.
func (g *Graph) BuildPartAnchor(doc container.Document, identifier Identifier) Link {
	return g.BuildLink(doc, doc, Resolution{
		ConceptIRI: els.ClassHasPart,
		Shape:      ShapeOneToMany,
	}, identifier, "")
}

// RDF renders the graph as RDF triples with the ls, els and ct prefixes
// bound for serialization.
func (g *Graph) RDF() *rdfxml.Graph {
	out := rdfxml.NewGraph()
	out.Bind("ls", ls.Namespace)
	out.Bind("els", els.Namespace)
	out.Bind("ct", ct.Namespace)

	for _, link := range g.links {
		out.Add(link.URI, rdfxml.RDFType, rdfxml.IRI(link.Shape.ClassIRI()))
		if link.ConceptIRI != "" {
			out.Add(link.URI, rdfxml.RDFType, rdfxml.IRI(link.ConceptIRI))
		}
		if link.Note != "" {
			out.Add(link.URI, rdfxml.RDFSComment, link.Note)
		}
		out.Add(link.URI, ls.PropHasFromLinkElement, rdfxml.IRI(link.From.URI))
		out.Add(link.URI, ls.PropHasToLinkElement, rdfxml.IRI(link.To.URI))

		addElement(out, g.baseURI, link.From)
		addElement(out, g.baseURI, link.To)
	}
	return out
}

func addElement(out *rdfxml.Graph, baseURI string, el LinkElement) {
	out.Add(el.URI, rdfxml.RDFType, rdfxml.IRI(ls.ClassLinkElement))
	out.Add(el.URI, ls.PropHasDocument, rdfxml.IRI(el.Document.URI))
	if el.Identifier != nil {
		idURI := container.NewEntityURI(baseURI, "Identifier")
		out.Add(el.URI, ls.PropHasIdentifier, rdfxml.IRI(idURI))
		el.Identifier.addTriples(out, idURI)
	}
}
