package schema

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Table is a raw delimited export: a header row plus data rows. Rows may be
// ragged; MapRow sees only the columns that are present.
type Table struct {
	Headers []string
	Rows    [][]string
}

// ErrEmptyTable is returned when the input has no header row.
var ErrEmptyTable = errors.New("source file is empty")

// delimiters tried during auto-detection, in order of preference.
var delimiters = []rune{',', ';', '\t'}

// ReadTable reads a delimited file, auto-detecting the delimiter from the
// header line. The delimiter producing the most columns wins.
func ReadTable(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}

	text := strings.TrimPrefix(string(data), "\uFEFF")
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyTable
	}

	delim := detectDelimiter(firstLine(text))

	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = delim
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse delimited input: %w", err)
	}

	if len(records) == 0 {
		return nil, ErrEmptyTable
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(h)
	}

	return &Table{
		Headers: headers,
		Rows:    records[1:],
	}, nil
}

// HeaderSet returns the header names as a lookup set.
func (t *Table) HeaderSet() map[string]bool {
	set := make(map[string]bool, len(t.Headers))
	for _, h := range t.Headers {
		set[h] = true
	}
	return set
}

// RowMap returns row i keyed by header name.
func (t *Table) RowMap(i int) map[string]string {
	row := t.Rows[i]
	m := make(map[string]string, len(t.Headers))
	for j, h := range t.Headers {
		if j < len(row) {
			m[h] = strings.TrimSpace(row[j])
		}
	}
	return m
}

func detectDelimiter(header string) rune {
	best := delimiters[0]
	bestCount := 0
	for _, d := range delimiters {
		if n := strings.Count(header, string(d)); n > bestCount {
			best = d
			bestCount = n
		}
	}
	return best
}

func firstLine(text string) string {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		return text[:i]
	}
	return text
}
