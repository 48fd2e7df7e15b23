// Package ontology builds the semantic name index the relation normalizer
// resolves free-text relation types against.
package ontology

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/c360studio/icddkit/rdfxml"
)

// SemanticIndex maps human-readable concept keys to formal concept IRIs
// and retains the subclass hierarchy needed to classify link shapes.
// An index is built once per container and is immutable afterwards.
type SemanticIndex struct {
	names   map[string]string
	parents map[string][]string
}

// Empty returns an index with no concepts. Lookups miss and every subclass
// test is false; the normalizer degrades to its unresolved fallback.
func Empty() *SemanticIndex {
	return &SemanticIndex{
		names:   make(map[string]string),
		parents: make(map[string][]string),
	}
}

// BuildIndex scans an ontology resource for class declarations. Every
// declared class whose IRI belongs to the extension namespace is registered
// under its case-folded local name and under each of its rdfs:label values.
// Parent edges are retained for all classes so subclass chains may pass
// through concepts outside the extension namespace.
func BuildIndex(r io.Reader, extensionNamespace string) (*SemanticIndex, error) {
	g, err := rdfxml.Parse(r)
	if err != nil {
		return Empty(), err
	}

	idx := Empty()
	for _, subject := range g.Subjects() {
		for _, o := range g.Objects(subject, rdfxml.RDFSSubClass) {
			if parent, ok := o.(rdfxml.IRI); ok {
				idx.parents[subject] = append(idx.parents[subject], string(parent))
			}
		}

		if !g.HasType(subject, rdfxml.OWLClass) {
			continue
		}
		if !strings.HasPrefix(subject, extensionNamespace) {
			continue
		}

		_, local := rdfxml.SplitIRI(subject)
		idx.register(local, subject)
		for _, o := range g.Objects(subject, rdfxml.RDFSLabel) {
			if label, ok := o.(string); ok {
				idx.register(label, subject)
			}
		}
	}
	return idx, nil
}

// BuildIndexFromFile builds the index from an ontology file. A missing or
// unparsable resource degrades to an empty index; this is recoverable, the
// normalizer just stops resolving concepts for the rest of the run.
func BuildIndexFromFile(path, extensionNamespace string) *SemanticIndex {
	f, err := os.Open(path)
	if err != nil {
		slog.Warn("Ontology resource not available, semantic index is empty", "path", path, "error", err)
		return Empty()
	}
	defer f.Close()

	idx, err := BuildIndex(f, extensionNamespace)
	if err != nil {
		slog.Warn("Ontology resource unparsable, semantic index is empty", "path", path, "error", err)
		return Empty()
	}
	slog.Debug("Semantic index built", "path", path, "concepts", idx.Len())
	return idx
}

// register adds one lookup key for a concept. The first registration of a
// key wins, keeping lookups deterministic in ontology statement order.
func (x *SemanticIndex) register(key, conceptIRI string) {
	k := CompactKey(key)
	if k == "" {
		return
	}
	if _, exists := x.names[k]; !exists {
		x.names[k] = conceptIRI
	}
}

// Lookup resolves a compact key to a concept IRI.
func (x *SemanticIndex) Lookup(key string) (string, bool) {
	iri, ok := x.names[key]
	return iri, ok
}

// Len returns the number of registered lookup keys.
func (x *SemanticIndex) Len() int {
	return len(x.names)
}

// IsSubclassOf reports whether ancestor is reachable from concept over
// declared rdfs:subClassOf edges. A concept is reflexively a subclass of
// itself. Cycles in the declared hierarchy are tolerated.
func (x *SemanticIndex) IsSubclassOf(concept, ancestor string) bool {
	visited := make(map[string]bool)
	queue := []string{concept}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current == ancestor {
			return true
		}
		if visited[current] {
			continue
		}
		visited[current] = true
		queue = append(queue, x.parents[current]...)
	}
	return false
}

// CompactKey case-folds a relation key and strips spaces, underscores and
// hyphens, so "Has Part", "has_part" and "HasPart" all collide.
func CompactKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '_', '-':
			return -1
		}
		return r
	}, s)
}
