package linkset

import (
	"github.com/c360studio/icddkit/ontology"
	ls "github.com/c360studio/icddkit/vocabulary/linkset"
)

// Shape is the structural classification of a link. Every link carries a
// shape even when no semantic concept resolved; the graph never holds an
// unshaped link.
type Shape string

const (
	// ShapeBinary is a directed link with exactly one document on each end.
	ShapeBinary Shape = "DirectedBinary"

	// ShapeOneToMany is the least-constrained directed shape and therefore
	// the fallback for unresolved or non-binary relation types.
	ShapeOneToMany Shape = "Directed1toN"
)

// ClassIRI returns the ls: class asserted for the shape.
func (s Shape) ClassIRI() string {
	if s == ShapeBinary {
		return ls.ClassDirectedBinaryLink
	}
	return ls.ClassDirected1toNLink
}

// Resolution is the outcome of normalizing a relation-type text.
type Resolution struct {
	// ConceptIRI is the resolved semantic concept, empty when unresolved.
	ConceptIRI string

	// Shape is always set, ShapeOneToMany when unresolved.
	Shape Shape
}

// Resolved reports whether a semantic concept was found.
func (r Resolution) Resolved() bool {
	return r.ConceptIRI != ""
}

// aliases maps common human relation terms to canonical compact concept
// keys. The table is a closed, versioned list (v1); extending it is a
// deliberate change, not something done per import.
var aliases = map[string]string{
	"aggregation":    "haspart",
	"composition":    "haspart",
	"decomposition":  "ispartof",
	"membership":     "hasmember",
	"specialization": "specialises",
	"specialisation": "specialises",
	"elaboration":    "elaborates",
	"refinement":     "elaborates",
	"supersession":   "supersedes",
	"replacement":    "supersedes",
	"identity":       "isidenticalto",
	"equivalence":    "isidenticalto",
	"alternative":    "isalternativeto",
	"conflict":       "conflictswith",
	"control":        "controls",
}

// Normalize maps a free-text relation type onto an extension ontology
// concept and a structural shape. The function is pure: it reads only its
// arguments and the fixed alias table.
//
// The input is trimmed, case-folded and compacted (spaces, underscores and
// hyphens stripped), alias-substituted, then looked up in the semantic
// index. A miss yields an unresolved result with the OneToMany fallback
// shape. A hit is Binary iff the concept is a declared subclass of
// ls:DirectedBinaryLink.
func Normalize(relationType string, idx *ontology.SemanticIndex) Resolution {
	key := ontology.CompactKey(relationType)
	if key == "" {
		return Resolution{Shape: ShapeOneToMany}
	}
	if canonical, ok := aliases[key]; ok {
		key = canonical
	}

	concept, ok := idx.Lookup(key)
	if !ok {
		return Resolution{Shape: ShapeOneToMany}
	}

	shape := ShapeOneToMany
	if idx.IsSubclassOf(concept, ls.ClassDirectedBinaryLink) {
		shape = ShapeBinary
	}
	return Resolution{ConceptIRI: concept, Shape: shape}
}
