// Package importer runs the batch pipelines that populate a container:
// CSV relationship import and CDE backup intake.
package importer

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Required CSV columns. A file missing any of them violates the column
// contract and fails the whole batch.
const (
	ColumnFrom = "fromPath"
	ColumnTo   = "toPath"
	ColumnType = "Type"
	ColumnGUID = "GUID"
)

// SchemaError reports a CSV file whose header misses required columns.
// Unlike per-row problems this is fatal for the batch.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("csv schema error: missing required columns: %s", strings.Join(e.Missing, ", "))
}

// Row is one transient relationship record read from a CSV file.
type Row struct {
	FromPath     string
	ToPath       string
	RelationType string
	GUID         string

	// Line is the 1-based CSV line for diagnostics.
	Line int
}

// ReadRows parses relationship rows from CSV data. The delimiter is
// sniffed from the header line (comma, semicolon or tab). Header columns
// beyond the known set are ignored. A header missing a required column
// returns a SchemaError.
func ReadRows(r io.Reader) ([]Row, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(1024)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	cr := csv.NewReader(br)
	cr.Comma = sniffDelimiter(string(head))
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &SchemaError{Missing: []string{ColumnFrom, ColumnTo, ColumnType}}
		}
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	var missing []string
	for _, required := range []string{ColumnFrom, ColumnTo, ColumnType} {
		if _, ok := columns[required]; !ok {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, &SchemaError{Missing: missing}
	}

	var rows []Row
	line := 1
	for {
		record, err := cr.Read()
		line++
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read csv line %d: %w", line, err)
		}
		rows = append(rows, Row{
			FromPath:     field(record, columns, ColumnFrom),
			ToPath:       field(record, columns, ColumnTo),
			RelationType: field(record, columns, ColumnType),
			GUID:         field(record, columns, ColumnGUID),
			Line:         line,
		})
	}
}

func field(record []string, columns map[string]int, name string) string {
	i, ok := columns[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

// sniffDelimiter picks the delimiter with the most occurrences on the
// header line, defaulting to comma.
func sniffDelimiter(head string) rune {
	if i := strings.IndexByte(head, '\n'); i >= 0 {
		head = head[:i]
	}
	best := ','
	bestCount := strings.Count(head, ",")
	for _, candidate := range []rune{';', '\t'} {
		if count := strings.Count(head, string(candidate)); count > bestCount {
			best = candidate
			bestCount = count
		}
	}
	return best
}
