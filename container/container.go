package container

import (
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/c360studio/icddkit/rdfxml"
	ct "github.com/c360studio/icddkit/vocabulary/container"
	els "github.com/c360studio/icddkit/vocabulary/extlinkset"
	ls "github.com/c360studio/icddkit/vocabulary/linkset"
)

// Standard container directory layout and file names (ISO 21597-1).
const (
	OntologyDir        = "Ontology resources"
	PayloadDocumentsDir = "Payload documents"
	PayloadTriplesDir  = "Payload triples"
	IndexFile          = "Index.rdf"
)

// OntologyFiles are the ontology resources copied into every new container.
var OntologyFiles = []string{"Container.rdf", "Linkset.rdf", "ExtendedLinkset.rdf"}

// Container is an opened ICDD container directory: its description graph
// (Index.rdf) plus the document registry built from it.
type Container struct {
	// Dir is the container directory on disk.
	Dir string

	// BaseURI is the namespace all generated entity URIs share.
	BaseURI string

	// URI identifies the ct:ContainerDescription entity.
	URI string

	// Index is the parsed Index.rdf graph.
	Index *rdfxml.Graph

	// Documents is the registry of payload documents.
	Documents *DocumentIndex
}

// CreateOptions configures container scaffolding.
type CreateOptions struct {
	// BaseURI is the namespace for generated entity URIs.
	BaseURI string

	// Publisher is the name recorded on the ct:Party entity.
	Publisher string

	// OntologySourceDir holds the local copies of the ISO ontology files.
	// Missing files are logged and skipped, not fatal.
	OntologySourceDir string
}

// NewEntityURI generates a fresh entity URI under the base namespace.
// Identifiers are never reused; two calls always yield distinct URIs.
func NewEntityURI(baseURI, prefix string) string {
	return fmt.Sprintf("%s/%s%s", strings.TrimRight(baseURI, "/"), prefix, uuid.New())
}

// Create scaffolds a new container directory: the three payload
// subdirectories, local copies of the ontology resources, and an Index.rdf
// holding the ContainerDescription, publisher Party and owl:imports.
func Create(dir string, opts CreateOptions) (*Container, error) {
	if opts.BaseURI == "" {
		return nil, fmt.Errorf("create container: base URI is required")
	}

	for _, sub := range []string{OntologyDir, PayloadDocumentsDir, PayloadTriplesDir} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0o755); err != nil {
			return nil, fmt.Errorf("create container layout: %w", err)
		}
	}

	if opts.OntologySourceDir != "" {
		for _, name := range OntologyFiles {
			src := filepath.Join(opts.OntologySourceDir, name)
			if _, err := os.Stat(src); err != nil {
				slog.Warn("Ontology resource not found, skipping", "file", name, "dir", opts.OntologySourceDir)
				continue
			}
			if err := copyFile(src, filepath.Join(dir, OntologyDir, name)); err != nil {
				return nil, fmt.Errorf("copy ontology %s: %w", name, err)
			}
			slog.Debug("Copied ontology resource", "file", name)
		}
	}

	baseURI := strings.TrimRight(opts.BaseURI, "/")
	g := newIndexGraph()

	containerURI := NewEntityURI(baseURI, "ContainerDescription")
	g.Add(containerURI, rdfxml.RDFType, rdfxml.IRI(ct.ClassContainerDescription))
	g.Add(containerURI, ct.PropConformanceIndicator, ct.ConformanceIndicatorPart1)

	if opts.Publisher != "" {
		partyURI := NewEntityURI(baseURI, "Party")
		g.Add(containerURI, ct.PropPublishedBy, rdfxml.IRI(partyURI))
		g.Add(partyURI, rdfxml.RDFType, rdfxml.IRI(ct.ClassParty))
		g.Add(partyURI, ct.PropName, opts.Publisher)
	}

	g.Add(baseURI, rdfxml.RDFType, rdfxml.IRI(rdfxml.OWLOntology))
	g.Add(baseURI, rdfxml.OWLImports, rdfxml.IRI(ct.OntologyIRI))
	g.Add(baseURI, rdfxml.OWLImports, rdfxml.IRI(ls.OntologyIRI))
	g.Add(baseURI, rdfxml.OWLImports, rdfxml.IRI(els.OntologyIRI))

	c := &Container{
		Dir:       dir,
		BaseURI:   baseURI,
		URI:       containerURI,
		Index:     g,
		Documents: NewDocumentIndex(),
	}
	if err := c.SaveIndex(); err != nil {
		return nil, err
	}
	slog.Info("Container created", "dir", dir, "base_uri", baseURI)
	return c, nil
}

// Open loads an existing container directory. The document registry is
// rebuilt from Index.rdf in statement order, which fixes the resolution
// order of duplicate paths to the order documents were registered.
func Open(dir string) (*Container, error) {
	indexPath := filepath.Join(dir, IndexFile)
	f, err := os.Open(indexPath)
	if err != nil {
		return nil, fmt.Errorf("open container index: %w", err)
	}
	defer f.Close()

	g, err := rdfxml.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", IndexFile, err)
	}
	bindIndexPrefixes(g)

	descriptions := g.SubjectsOfType(ct.ClassContainerDescription)
	if len(descriptions) == 0 {
		return nil, fmt.Errorf("no ContainerDescription in %s", IndexFile)
	}
	containerURI := descriptions[0]

	baseURI := containerURI
	if i := strings.LastIndex(containerURI, "/"); i > 0 {
		baseURI = containerURI[:i]
	}

	c := &Container{
		Dir:       dir,
		BaseURI:   baseURI,
		URI:       containerURI,
		Index:     g,
		Documents: NewDocumentIndex(),
	}
	c.loadDocuments()
	return c, nil
}

// loadDocuments rebuilds the document registry from the index graph.
func (c *Container) loadDocuments() {
	for _, subject := range c.Index.Subjects() {
		switch {
		case c.Index.HasType(subject, ct.ClassInternalDocument):
			path, _ := c.Index.FirstLiteral(subject, ct.PropFilename)
			name, _ := c.Index.FirstLiteral(subject, ct.PropName)
			ext, _ := c.Index.FirstLiteral(subject, ct.PropFiletype)
			c.Documents.Add(Document{
				URI:          subject,
				Kind:         KindFile,
				RelativePath: NormalizePath(path),
				Name:         name,
				Extension:    strings.ToLower(ext),
			})
		case c.Index.HasType(subject, ct.ClassFolderDocument):
			path, _ := c.Index.FirstLiteral(subject, ct.PropFoldername)
			name, _ := c.Index.FirstLiteral(subject, ct.PropName)
			c.Documents.Add(Document{
				URI:          subject,
				Kind:         KindFolder,
				RelativePath: NormalizePath(path),
				Name:         name,
			})
		}
	}
}

// PayloadPath returns the payload documents directory of the container.
func (c *Container) PayloadPath() string {
	return filepath.Join(c.Dir, PayloadDocumentsDir)
}

// TriplesPath returns the payload triples directory of the container.
func (c *Container) TriplesPath() string {
	return filepath.Join(c.Dir, PayloadTriplesDir)
}

// RegisterDocuments assigns URIs to enumerated records and adds them to
// both the index graph and the document registry. Registration order is
// record order.
func (c *Container) RegisterDocuments(records []Record) []Document {
	docs := make([]Document, 0, len(records))
	for _, r := range records {
		doc := Document{
			Kind:         r.Kind,
			RelativePath: r.RelativePath,
			Name:         r.Name,
			Extension:    r.Extension,
		}
		switch r.Kind {
		case KindFolder:
			doc.URI = NewEntityURI(c.BaseURI, "FolderDocument")
			c.Index.Add(doc.URI, rdfxml.RDFType, rdfxml.IRI(ct.ClassFolderDocument))
			c.Index.Add(doc.URI, ct.PropFoldername, doc.RelativePath)
			c.Index.Add(doc.URI, ct.PropName, doc.Name)
		default:
			doc.URI = NewEntityURI(c.BaseURI, "InternalDocument")
			c.Index.Add(doc.URI, rdfxml.RDFType, rdfxml.IRI(ct.ClassInternalDocument))
			c.Index.Add(doc.URI, ct.PropFiletype, doc.Extension)
			c.Index.Add(doc.URI, ct.PropFilename, doc.RelativePath)
			c.Index.Add(doc.URI, ct.PropName, doc.Name)
		}
		c.Index.Add(c.URI, ct.PropContainsDocument, rdfxml.IRI(doc.URI))
		c.Documents.Add(doc)
		docs = append(docs, doc)
	}
	return docs
}

// EnumeratePayload enumerates the payload documents directory and registers
// every entry found.
func (c *Container) EnumeratePayload() error {
	records, err := Enumerate(c.PayloadPath())
	if err != nil {
		return err
	}
	c.RegisterDocuments(records)
	slog.Info("Payload documents registered", "count", len(records))
	return nil
}

// AddLinksetRef records a serialized linkset file against the container
// description. The reference URI is the base URI plus the escaped
// payload-triples path of the file.
func (c *Container) AddLinksetRef(filename string) string {
	ref := fmt.Sprintf("%s/%s/%s", c.BaseURI, url.PathEscape(PayloadTriplesDir), url.PathEscape(filename))
	c.Index.Add(c.URI, ct.PropContainsLinkset, rdfxml.IRI(ref))
	return ref
}

// SaveIndex writes Index.rdf back to the container directory.
func (c *Container) SaveIndex() error {
	f, err := os.Create(filepath.Join(c.Dir, IndexFile))
	if err != nil {
		return fmt.Errorf("write %s: %w", IndexFile, err)
	}
	defer f.Close()
	if err := c.Index.Serialize(f); err != nil {
		return fmt.Errorf("serialize %s: %w", IndexFile, err)
	}
	return nil
}

func newIndexGraph() *rdfxml.Graph {
	g := rdfxml.NewGraph()
	bindIndexPrefixes(g)
	return g
}

func bindIndexPrefixes(g *rdfxml.Graph) {
	g.Bind("ct", ct.Namespace)
	g.Bind("ls", ls.Namespace)
	g.Bind("els", els.Namespace)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
