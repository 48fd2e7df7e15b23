// Package container manages ISO 21597 container directories: the scaffold
// layout, the Index.rdf description graph, and the registry of payload
// documents.
package container

import "strings"

// DocumentKind discriminates file and folder documents.
type DocumentKind string

const (
	// KindFile is a payload file registered as ct:InternalDocument.
	KindFile DocumentKind = "file"

	// KindFolder is a payload folder registered as ct:FolderDocument.
	KindFolder DocumentKind = "folder"
)

// Document is one registered payload entry. Documents are created once
// during registration and never mutated.
type Document struct {
	// URI is the document's identifier in the container index graph.
	URI string

	// Kind discriminates file and folder documents.
	Kind DocumentKind

	// RelativePath is the payload-relative path, forward-slash separated,
	// with immediately repeated segments collapsed.
	RelativePath string

	// Name is the display name (base name of the file or folder).
	Name string

	// Extension is the lower-cased file extension including the dot.
	// Empty for folders.
	Extension string
}

// IsIFC reports whether the document is an IFC model file.
func (d Document) IsIFC() bool {
	return d.Kind == KindFile && d.Extension == ".ifc"
}

// DocumentIndex is the lookup structure over a container's registered
// documents. Resolution order is insertion order, which is the enumeration
// order at build time and the Index.rdf statement order after reopening a
// container. First match wins; this is a defined, tested behavior.
type DocumentIndex struct {
	docs []Document
}

// NewDocumentIndex creates an empty index.
func NewDocumentIndex() *DocumentIndex {
	return &DocumentIndex{}
}

// Add appends a document to the index.
func (x *DocumentIndex) Add(doc Document) {
	x.docs = append(x.docs, doc)
}

// Len returns the number of registered documents.
func (x *DocumentIndex) Len() int {
	return len(x.docs)
}

// Documents returns all registered documents in insertion order.
func (x *DocumentIndex) Documents() []Document {
	return x.docs
}

// ByExtension returns all file documents with the given lower-cased
// extension, in insertion order.
func (x *DocumentIndex) ByExtension(ext string) []Document {
	var out []Document
	for _, d := range x.docs {
		if d.Kind == KindFile && d.Extension == ext {
			out = append(out, d)
		}
	}
	return out
}

// Resolve looks up a document by path. The input is normalized first
// (backslashes to forward slashes, leading separators stripped). File
// documents are matched before folder documents; within each pass matching
// is exact string equality in insertion order.
func (x *DocumentIndex) Resolve(path string) (Document, bool) {
	normalized := NormalizePath(path)
	for _, d := range x.docs {
		if d.Kind == KindFile && d.RelativePath == normalized {
			return d, true
		}
	}
	for _, d := range x.docs {
		if d.Kind == KindFolder && d.RelativePath == normalized {
			return d, true
		}
	}
	return Document{}, false
}

// NormalizePath converts backslashes to forward slashes and strips leading
// path separators.
func NormalizePath(path string) string {
	p := strings.ReplaceAll(strings.TrimSpace(path), "\\", "/")
	return strings.TrimLeft(p, "/")
}
