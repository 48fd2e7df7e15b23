package container

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// Record is one entry emitted by the flat enumerator. Records carry no URI;
// the container assigns identifiers at registration time.
type Record struct {
	Kind         DocumentKind
	RelativePath string
	Name         string
	Extension    string
}

// Enumerate walks the directory tree under root and emits one record per
// folder (other than root itself) and per file. Entries within a directory
// are visited in sorted name order, so output is deterministic across runs.
// Relative paths have immediately repeated segments collapsed to guard
// against the double-nesting artifact in upstream backup exports.
func Enumerate(root string) ([]Record, error) {
	var records []Record
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		rel = CollapseRepeats(filepath.ToSlash(rel))
		if entry.IsDir() {
			records = append(records, Record{
				Kind:         KindFolder,
				RelativePath: rel,
				Name:         entry.Name(),
			})
			return nil
		}
		records = append(records, Record{
			Kind:         KindFile,
			RelativePath: rel,
			Name:         entry.Name(),
			Extension:    strings.ToLower(filepath.Ext(entry.Name())),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("enumerate %s: %w", root, err)
	}
	return records, nil
}

// CollapseRepeats removes immediately repeated path segments from a
// forward-slash path: "X/X/Y" becomes "X/Y". The operation is idempotent.
func CollapseRepeats(path string) string {
	parts := strings.Split(path, "/")
	out := parts[:0]
	for _, part := range parts {
		if len(out) > 0 && out[len(out)-1] == part {
			continue
		}
		out = append(out, part)
	}
	return strings.Join(out, "/")
}
