package linkset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/icddkit/ontology"
	els "github.com/c360studio/icddkit/vocabulary/extlinkset"
	ls "github.com/c360studio/icddkit/vocabulary/linkset"
)

const normalizeOntology = `<?xml version="1.0" encoding="UTF-8"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
         xmlns:rdfs="http://www.w3.org/2000/01/rdf-schema#"
         xmlns:owl="http://www.w3.org/2002/07/owl#">
  <owl:Class rdf:about="https://standards.iso.org/iso/21597/-2/ed-1/en/ExtendedLinkset#HasPart">
    <rdfs:subClassOf rdf:resource="https://standards.iso.org/iso/21597/-1/ed-1/en/Linkset#Directed1toNLink"/>
  </owl:Class>
  <owl:Class rdf:about="https://standards.iso.org/iso/21597/-2/ed-1/en/ExtendedLinkset#Elaborates">
    <rdfs:subClassOf rdf:resource="https://standards.iso.org/iso/21597/-2/ed-1/en/ExtendedLinkset#Directed1to1Link"/>
  </owl:Class>
  <owl:Class rdf:about="https://standards.iso.org/iso/21597/-2/ed-1/en/ExtendedLinkset#Directed1to1Link">
    <rdfs:subClassOf rdf:resource="https://standards.iso.org/iso/21597/-1/ed-1/en/Linkset#DirectedBinaryLink"/>
  </owl:Class>
</rdf:RDF>`

func normalizeIndex(t *testing.T) *ontology.SemanticIndex {
	t.Helper()
	idx, err := ontology.BuildIndex(strings.NewReader(normalizeOntology), els.Namespace)
	require.NoError(t, err)
	return idx
}

func TestNormalizeAliases(t *testing.T) {
	idx := normalizeIndex(t)

	tests := []struct {
		name    string
		input   string
		concept string
		shape   Shape
	}{
		{"alias", "Aggregation", els.ClassHasPart, ShapeOneToMany},
		{"alias upper", "AGGREGATION", els.ClassHasPart, ShapeOneToMany},
		{"alias with separators", "agg-reg-ation", els.ClassHasPart, ShapeOneToMany},
		{"alias underscore", "agg_regation", els.ClassHasPart, ShapeOneToMany},
		{"direct concept name", "HasPart", els.ClassHasPart, ShapeOneToMany},
		{"binary via transitive subclass", "Elaboration", els.ClassElaborates, ShapeBinary},
		{"binary direct name", "elaborates", els.ClassElaborates, ShapeBinary},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input, idx)
			assert.True(t, got.Resolved())
			assert.Equal(t, tt.concept, got.ConceptIRI)
			assert.Equal(t, tt.shape, got.Shape)
		})
	}
}

func TestNormalizeUnresolved(t *testing.T) {
	idx := normalizeIndex(t)

	for _, input := range []string{"depends-on", "", "   ", "related"} {
		got := Normalize(input, idx)
		assert.False(t, got.Resolved(), "input %q", input)
		assert.Empty(t, got.ConceptIRI)
		assert.Equal(t, ShapeOneToMany, got.Shape)
	}
}

func TestNormalizeEmptyIndex(t *testing.T) {
	got := Normalize("Aggregation", ontology.Empty())
	assert.False(t, got.Resolved())
	assert.Equal(t, ShapeOneToMany, got.Shape)
}

func TestShapeClassIRI(t *testing.T) {
	assert.Equal(t, ls.ClassDirectedBinaryLink, ShapeBinary.ClassIRI())
	assert.Equal(t, ls.ClassDirected1toNLink, ShapeOneToMany.ClassIRI())
}
