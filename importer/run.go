package importer

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/c360studio/icddkit/container"
	"github.com/c360studio/icddkit/ifc"
	"github.com/c360studio/icddkit/linkset"
	"github.com/c360studio/icddkit/ontology"
)

// AnchorPolicy selects the IFC document the auxiliary HasPart link is
// anchored to when a row carries a sub-element GUID.
type AnchorPolicy string

const (
	// AnchorEndpoint anchors to an IFC document among the row's own
	// endpoints (to end preferred), falling back to the sole registered
	// IFC document. With several registered IFC documents and no IFC
	// endpoint the anchor is skipped with a warning rather than guessed.
	AnchorEndpoint AnchorPolicy = "endpoint"

	// AnchorFirst always anchors to the first registered IFC document,
	// matching the legacy behavior even when it may be the wrong model.
	AnchorFirst AnchorPolicy = "first"
)

// Options configures an import pass.
type Options struct {
	AnchorPolicy AnchorPolicy
}

// Report accumulates the outcome of one import pass. Per-row problems are
// warnings; they never stop the batch.
type Report struct {
	Rows     int
	Links    int
	Warnings []string
}

// Warnf records a per-row warning.
func (r *Report) Warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	r.Warnings = append(r.Warnings, msg)
	slog.Warn(msg)
}

// Importer resolves relationship rows against a container and accumulates
// links into a relationship graph. Construct one per import pass; the
// semantic index and alias table are fixed for its lifetime.
type Importer struct {
	container *container.Container
	semantics *ontology.SemanticIndex
	graph     *linkset.Graph
	policy    AnchorPolicy
}

// New creates an importer over an opened container and a built semantic
// index. The container's document registry must be fully populated first.
func New(c *container.Container, semantics *ontology.SemanticIndex, opts Options) *Importer {
	policy := opts.AnchorPolicy
	if policy == "" {
		policy = AnchorEndpoint
	}
	return &Importer{
		container: c,
		semantics: semantics,
		graph:     linkset.NewGraph(c.BaseURI),
		policy:    policy,
	}
}

// Graph exposes the accumulated relationship graph.
func (imp *Importer) Graph() *linkset.Graph {
	return imp.graph
}

// ImportRows processes every row, skipping the ones that fail to resolve.
func (imp *Importer) ImportRows(rows []Row, report *Report) {
	for _, row := range rows {
		imp.ImportRow(row, report)
	}
}

// ImportRow resolves one relationship row and fans out into one or two
// BuildLink calls: the user-declared link, plus the HasPart anchor link
// when the row carries a GUID and an anchor document can be determined.
func (imp *Importer) ImportRow(row Row, report *Report) {
	report.Rows++

	from, ok := imp.container.Documents.Resolve(row.FromPath)
	if !ok {
		report.Warnf("line %d: document not found for path %q", row.Line, row.FromPath)
		return
	}
	to, ok := imp.container.Documents.Resolve(row.ToPath)
	if !ok {
		report.Warnf("line %d: document not found for path %q", row.Line, row.ToPath)
		return
	}

	var toIdentifier linkset.Identifier
	if row.GUID != "" {
		toIdentifier = linkset.StringIdentifier{Field: ColumnGUID, Value: row.GUID}
	}

	res := linkset.Normalize(row.RelationType, imp.semantics)
	note := ""
	if !res.Resolved() {
		note = fmt.Sprintf("Unmapped relation type: '%s'", row.RelationType)
		report.Warnf("line %d: %s", row.Line, note)
	}

	imp.graph.BuildLink(from, to, res, toIdentifier, note)
	report.Links++

	if row.GUID == "" {
		return
	}
	anchor, ok := imp.anchorDocument(from, to, row, report)
	if !ok {
		return
	}
	imp.graph.BuildPartAnchor(anchor, linkset.StringIdentifier{Field: ColumnGUID, Value: row.GUID})
	report.Links++
}

// anchorDocument picks the IFC document owning the row's sub-element.
func (imp *Importer) anchorDocument(from, to container.Document, row Row, report *Report) (container.Document, bool) {
	registered := imp.container.Documents.ByExtension(".ifc")
	if len(registered) == 0 {
		return container.Document{}, false
	}
	if imp.policy == AnchorFirst {
		return registered[0], true
	}

	// Endpoint policy: the row's own IFC endpoint wins, to end first.
	if to.IsIFC() {
		return to, true
	}
	if from.IsIFC() {
		return from, true
	}
	if len(registered) == 1 {
		return registered[0], true
	}
	report.Warnf("line %d: %d IFC documents registered and neither endpoint is one, skipping sub-element anchor for GUID %q",
		row.Line, len(registered), row.GUID)
	return container.Document{}, false
}

// ImportFile reads one CSV file and imports its rows. Schema errors are
// returned as-is so callers can distinguish them from I/O failures.
func (imp *Importer) ImportFile(path string, report *Report) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	rows, err := ReadRows(f)
	if err != nil {
		return err
	}
	slog.Info("Importing relationship rows", "file", filepath.Base(path), "rows", len(rows))
	imp.ImportRows(rows, report)
	return nil
}

// AddProjectAnchors scans every registered IFC document for its IfcProject
// root element and anchors it with a HasPart link, one per model that has
// one. Scan failures are per-document warnings.
func (imp *Importer) AddProjectAnchors(report *Report) {
	for _, doc := range imp.container.Documents.ByExtension(".ifc") {
		path := filepath.Join(imp.container.PayloadPath(), filepath.FromSlash(doc.RelativePath))
		guid, found, err := ifc.ProjectGlobalIDFromFile(path)
		if err != nil {
			report.Warnf("scan IFC %s: %v", doc.RelativePath, err)
			continue
		}
		if !found {
			slog.Info("No IfcProject record found", "document", doc.RelativePath)
			continue
		}
		imp.graph.BuildPartAnchor(doc, linkset.StringIdentifier{Field: ColumnGUID, Value: guid})
		report.Links++
		slog.Info("Anchored IfcProject root element", "document", doc.RelativePath, "guid", guid)
	}
}

// Finish serializes the relationship graph into the container's payload
// triples directory and records the containsLinkset back-reference in
// Index.rdf. It returns the linkset file name.
func (imp *Importer) Finish() (string, error) {
	filename := fmt.Sprintf("LinksetRelations_%s.rdf", uuid.New())
	path := filepath.Join(imp.container.TriplesPath(), filename)

	if err := os.MkdirAll(imp.container.TriplesPath(), 0o755); err != nil {
		return "", fmt.Errorf("write linkset: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("write linkset: %w", err)
	}
	defer f.Close()
	if err := imp.graph.RDF().Serialize(f); err != nil {
		return "", fmt.Errorf("serialize linkset: %w", err)
	}

	imp.container.AddLinksetRef(filename)
	if err := imp.container.SaveIndex(); err != nil {
		return "", err
	}
	slog.Info("Linkset written", "file", filename, "links", imp.graph.Len())
	return filename, nil
}
