package linkset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/icddkit/container"
	"github.com/c360studio/icddkit/rdfxml"
	els "github.com/c360studio/icddkit/vocabulary/extlinkset"
	ls "github.com/c360studio/icddkit/vocabulary/linkset"
)

func testDoc(path string) container.Document {
	return container.Document{
		URI:          "http://example.com/container/InternalDocument-" + path,
		Kind:         container.KindFile,
		RelativePath: path,
		Name:         path,
	}
}

func TestBuildLinkShapeAlwaysSet(t *testing.T) {
	g := NewGraph("http://example.com/container")

	link := g.BuildLink(testDoc("a.pdf"), testDoc("b.pdf"), Resolution{Shape: ShapeOneToMany}, nil, "Unmapped relation type: 'x'")
	assert.Equal(t, ShapeOneToMany, link.Shape)
	assert.Empty(t, link.ConceptIRI)
	assert.NotEmpty(t, link.URI)
	assert.NotEmpty(t, link.From.URI)
	assert.NotEmpty(t, link.To.URI)
	assert.Equal(t, 1, g.Len())
}

func TestBuildLinkIdentifierOnToEndOnly(t *testing.T) {
	g := NewGraph("http://example.com/container")

	link := g.BuildLink(testDoc("a.pdf"), testDoc("b.ifc"),
		Resolution{ConceptIRI: els.ClassElaborates, Shape: ShapeBinary},
		StringIdentifier{Field: "GUID", Value: "2O2Fr$t4X7Zf8NOew3FLOH"}, "")

	assert.Nil(t, link.From.Identifier)
	require.NotNil(t, link.To.Identifier)
	assert.True(t, link.To.Identifier.Valid())
}

func TestBuildLinkDropsInvalidIdentifier(t *testing.T) {
	g := NewGraph("http://example.com/container")

	link := g.BuildLink(testDoc("a.pdf"), testDoc("b.ifc"),
		Resolution{Shape: ShapeOneToMany},
		StringIdentifier{Field: "GUID"}, "")

	// The whole identifier is dropped; the link itself still exists.
	assert.Nil(t, link.To.Identifier)
	assert.Equal(t, 1, g.Len())
}

func TestBuildLinkNoDeduplication(t *testing.T) {
	g := NewGraph("http://example.com/container")
	from, to := testDoc("a.pdf"), testDoc("b.pdf")
	res := Resolution{ConceptIRI: els.ClassHasPart, Shape: ShapeOneToMany}

	first := g.BuildLink(from, to, res, nil, "")
	second := g.BuildLink(from, to, res, nil, "")

	assert.Equal(t, 2, g.Len())
	assert.NotEqual(t, first.URI, second.URI)
	assert.NotEqual(t, first.From.URI, second.From.URI)
	assert.NotEqual(t, first.To.URI, second.To.URI)
}

func TestBuildPartAnchor(t *testing.T) {
	g := NewGraph("http://example.com/container")
	doc := testDoc("model.ifc")

	link := g.BuildPartAnchor(doc, StringIdentifier{Field: "GUID", Value: "abc"})

	assert.Equal(t, doc.URI, link.From.Document.URI)
	assert.Equal(t, doc.URI, link.To.Document.URI)
	assert.Equal(t, els.ClassHasPart, link.ConceptIRI)
	assert.Equal(t, ShapeOneToMany, link.Shape)
	assert.Nil(t, link.From.Identifier)
	assert.NotNil(t, link.To.Identifier)
}

func TestGraphRDF(t *testing.T) {
	g := NewGraph("http://example.com/container")
	link := g.BuildLink(testDoc("a.pdf"), testDoc("b.ifc"),
		Resolution{ConceptIRI: els.ClassElaborates, Shape: ShapeBinary},
		StringIdentifier{Field: "GUID", Value: "abc"}, "note text")

	rdf := g.RDF()

	// Link node: shape class, concept class, comment, both element refs.
	assert.True(t, rdf.HasType(link.URI, ls.ClassDirectedBinaryLink))
	assert.True(t, rdf.HasType(link.URI, els.ClassElaborates))
	note, ok := rdf.FirstLiteral(link.URI, rdfxml.RDFSComment)
	require.True(t, ok)
	assert.Equal(t, "note text", note)
	assert.Len(t, rdf.Objects(link.URI, ls.PropHasFromLinkElement), 1)
	assert.Len(t, rdf.Objects(link.URI, ls.PropHasToLinkElement), 1)

	// Elements: both typed, to end carries the identifier entity.
	assert.True(t, rdf.HasType(link.From.URI, ls.ClassLinkElement))
	assert.True(t, rdf.HasType(link.To.URI, ls.ClassLinkElement))
	assert.Empty(t, rdf.Objects(link.From.URI, ls.PropHasIdentifier))

	ids := rdf.Objects(link.To.URI, ls.PropHasIdentifier)
	require.Len(t, ids, 1)
	idURI := string(ids[0].(rdfxml.IRI))
	assert.True(t, rdf.HasType(idURI, ls.ClassStringBasedIdentifier))
	value, ok := rdf.FirstLiteral(idURI, ls.PropIdentifier)
	require.True(t, ok)
	assert.Equal(t, "abc", value)
	field, ok := rdf.FirstLiteral(idURI, ls.PropIdentifierField)
	require.True(t, ok)
	assert.Equal(t, "GUID", field)
}

func TestGraphRDFRoundTrip(t *testing.T) {
	g := NewGraph("http://example.com/container")
	g.BuildLink(testDoc("a.pdf"), testDoc("b.pdf"),
		Resolution{ConceptIRI: els.ClassHasPart, Shape: ShapeOneToMany}, nil, "")
	g.BuildLink(testDoc("b.pdf"), testDoc("c.pdf"),
		Resolution{ConceptIRI: els.ClassElaborates, Shape: ShapeBinary},
		URIIdentifier{URI: "http://example.com/part/7"}, "")

	var sb strings.Builder
	require.NoError(t, g.RDF().Serialize(&sb))

	parsed, err := rdfxml.Parse(strings.NewReader(sb.String()))
	require.NoError(t, err)

	// Shape and semantic type assertions survive serialization.
	assert.Len(t, parsed.SubjectsOfType(ls.ClassDirected1toNLink), 1)
	assert.Len(t, parsed.SubjectsOfType(ls.ClassDirectedBinaryLink), 1)
	assert.Len(t, parsed.SubjectsOfType(els.ClassHasPart), 1)
	assert.Len(t, parsed.SubjectsOfType(els.ClassElaborates), 1)
	assert.Len(t, parsed.SubjectsOfType(ls.ClassLinkElement), 4)
	assert.Len(t, parsed.SubjectsOfType(ls.ClassURIBasedIdentifier), 1)
}

func TestQueryIdentifierDefaultsLanguage(t *testing.T) {
	g := rdfxml.NewGraph()
	QueryIdentifier{Expression: "//wall"}.addTriples(g, "http://example.com/id1")

	language, ok := g.FirstLiteral("http://example.com/id1", ls.PropQueryLanguage)
	require.True(t, ok)
	assert.Equal(t, DefaultQueryLanguage, language)
}

func TestIdentifierValidity(t *testing.T) {
	assert.True(t, StringIdentifier{Field: "GUID", Value: "v"}.Valid())
	assert.False(t, StringIdentifier{Field: "GUID"}.Valid())
	assert.False(t, StringIdentifier{Value: "v"}.Valid())
	assert.True(t, URIIdentifier{URI: "http://x"}.Valid())
	assert.False(t, URIIdentifier{}.Valid())
	assert.True(t, QueryIdentifier{Expression: "//a"}.Valid())
	assert.False(t, QueryIdentifier{Language: "XPath"}.Valid())
}
