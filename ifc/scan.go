// Package ifc provides the minimal IFC introspection the link importer
// needs: locating the IfcProject root element's GlobalId in a STEP file.
// It is a text-level scan, not a STEP parser.
package ifc

import (
	"bufio"
	"io"
	"os"
	"strings"
)

const projectKeyword = "IFCPROJECT("

// ProjectGlobalID scans IFC STEP data for the IFCPROJECT record and returns
// its GlobalId, the first quoted attribute of the record. The second return
// is false when no project record is present; read failures are returned
// as errors.
func ProjectGlobalID(r io.Reader) (string, bool, error) {
	scanner := bufio.NewScanner(r)
	// STEP exports can put very long records on one line.
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		i := strings.Index(strings.ToUpper(line), projectKeyword)
		if i < 0 {
			continue
		}
		if guid, ok := firstQuoted(line[i+len(projectKeyword):]); ok {
			return guid, true, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", false, err
	}
	return "", false, nil
}

// ProjectGlobalIDFromFile scans an IFC file on disk.
func ProjectGlobalIDFromFile(path string) (string, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", false, err
	}
	defer f.Close()
	return ProjectGlobalID(f)
}

// firstQuoted extracts the first '...' delimited value from a STEP
// attribute list.
func firstQuoted(s string) (string, bool) {
	start := strings.IndexByte(s, '\'')
	if start < 0 {
		return "", false
	}
	end := strings.IndexByte(s[start+1:], '\'')
	if end < 0 {
		return "", false
	}
	return s[start+1 : start+1+end], true
}
