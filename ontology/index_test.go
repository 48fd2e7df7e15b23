package ontology

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testLS  = "https://standards.iso.org/iso/21597/-1/ed-1/en/Linkset#"
	testELS = "https://standards.iso.org/iso/21597/-2/ed-1/en/ExtendedLinkset#"
)

const testOntology = `<?xml version="1.0" encoding="UTF-8"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
         xmlns:rdfs="http://www.w3.org/2000/01/rdf-schema#"
         xmlns:owl="http://www.w3.org/2002/07/owl#">
  <owl:Class rdf:about="https://standards.iso.org/iso/21597/-2/ed-1/en/ExtendedLinkset#HasPart">
    <rdfs:label>has part</rdfs:label>
    <rdfs:subClassOf rdf:resource="https://standards.iso.org/iso/21597/-1/ed-1/en/Linkset#Directed1toNLink"/>
  </owl:Class>
  <owl:Class rdf:about="https://standards.iso.org/iso/21597/-2/ed-1/en/ExtendedLinkset#Elaborates">
    <rdfs:subClassOf rdf:resource="https://standards.iso.org/iso/21597/-1/ed-1/en/Linkset#DirectedBinaryLink"/>
  </owl:Class>
  <owl:Class rdf:about="https://standards.iso.org/iso/21597/-1/ed-1/en/Linkset#DirectedBinaryLink">
    <rdfs:subClassOf rdf:resource="https://standards.iso.org/iso/21597/-1/ed-1/en/Linkset#DirectedLink"/>
  </owl:Class>
  <owl:Class rdf:about="https://standards.iso.org/iso/21597/-1/ed-1/en/Linkset#DirectedLink">
    <rdfs:subClassOf rdf:resource="https://standards.iso.org/iso/21597/-1/ed-1/en/Linkset#Link"/>
  </owl:Class>
</rdf:RDF>`

func TestBuildIndexNamesAndLabels(t *testing.T) {
	idx, err := BuildIndex(strings.NewReader(testOntology), testELS)
	require.NoError(t, err)

	// Local name and label both resolve to the same concept.
	byName, ok := idx.Lookup("haspart")
	require.True(t, ok)
	byLabel, ok := idx.Lookup(CompactKey("has part"))
	require.True(t, ok)
	assert.Equal(t, byName, byLabel)
	assert.Equal(t, testELS+"HasPart", byName)

	// Classes outside the extension namespace are not lookup keys.
	_, ok = idx.Lookup("directedbinarylink")
	assert.False(t, ok)
}

func TestIsSubclassOf(t *testing.T) {
	idx, err := BuildIndex(strings.NewReader(testOntology), testELS)
	require.NoError(t, err)

	elaborates := testELS + "Elaborates"
	hasPart := testELS + "HasPart"

	assert.True(t, idx.IsSubclassOf(elaborates, elaborates), "reflexive")
	assert.True(t, idx.IsSubclassOf(elaborates, testLS+"DirectedBinaryLink"), "direct")
	assert.True(t, idx.IsSubclassOf(elaborates, testLS+"Link"), "transitive")
	assert.False(t, idx.IsSubclassOf(hasPart, testLS+"DirectedBinaryLink"))
	assert.False(t, idx.IsSubclassOf(testLS+"Link", elaborates), "direction matters")
}

func TestIsSubclassOfToleratesCycles(t *testing.T) {
	idx := Empty()
	idx.parents["a"] = []string{"b"}
	idx.parents["b"] = []string{"a"}

	assert.False(t, idx.IsSubclassOf("a", "c"))
	assert.True(t, idx.IsSubclassOf("a", "b"))
}

func TestBuildIndexFromFileMissing(t *testing.T) {
	idx := BuildIndexFromFile(filepath.Join(t.TempDir(), "nope.rdf"), testELS)
	require.NotNil(t, idx)
	assert.Equal(t, 0, idx.Len())
	_, ok := idx.Lookup("haspart")
	assert.False(t, ok)
}

func TestCompactKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Aggregation", "aggregation"},
		{"  Has Part ", "haspart"},
		{"has_part", "haspart"},
		{"agg-reg-ation", "aggregation"},
		{"", ""},
		{"  _- ", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CompactKey(tt.in), tt.in)
	}
}
