package output

import (
	"encoding/json"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/muurk/wlaninfo/internal/fields"
)

// Document is one of Record, Table or List.
type Document interface {
	tty() string
	jsonValues() []any
}

// Record is a single mapping.
type Record struct {
	Fields fields.Mapping
}

// Table is an ordered list of mappings. Columns fixes the tty column order;
// when nil the columns are the sorted union of all keys. JSON output always
// carries every field.
type Table struct {
	Records []fields.Mapping
	Columns []string
}

// List is a sequence of plain strings.
type List struct {
	Items []string
}

func (r Record) tty() string       { return RenderKeyValueTable(r.Fields) }
func (r Record) jsonValues() []any { return []any{r.Fields} }

func (t Table) tty() string { return RenderTable(t.Records, t.Columns) }
func (t Table) jsonValues() []any {
	values := make([]any, len(t.Records))
	for i, m := range t.Records {
		values[i] = m
	}
	return values
}

func (l List) tty() string { return RenderList(l.Items) }
func (l List) jsonValues() []any {
	values := make([]any, len(l.Items))
	for i, item := range l.Items {
		values[i] = item
	}
	return values
}

// RenderKeyValueTable renders one "<key>: <value>" line per field, keys in
// alphabetical order and padded to the widest key. There is no trailing
// newline.
func RenderKeyValueTable(m fields.Mapping) string {
	keys := m.Keys()
	width := 0
	for _, k := range keys {
		width = max(width, runewidth.StringWidth(k))
	}

	lines := make([]string, len(keys))
	for i, k := range keys {
		lines[i] = runewidth.FillRight(k, width) + ": " + m[k].String()
	}
	return strings.Join(lines, "\n")
}

// RenderTable renders a tab-separated header row followed by one row per
// mapping. A mapping without a column gets an empty cell; an absent value
// gets the placeholder. There is no trailing newline.
func RenderTable(records []fields.Mapping, columns []string) string {
	if columns == nil {
		columns = inferColumns(records)
	}

	lines := make([]string, 0, len(records)+1)
	lines = append(lines, strings.Join(columns, "\t"))
	cells := make([]string, len(columns))
	for _, m := range records {
		for i, col := range columns {
			v, ok := m[col]
			if !ok {
				cells[i] = ""
				continue
			}
			cells[i] = v.String()
		}
		lines = append(lines, strings.Join(cells, "\t"))
	}
	return strings.Join(lines, "\n")
}

// inferColumns returns the sorted union of keys across records.
func inferColumns(records []fields.Mapping) []string {
	union := make(fields.Mapping)
	for _, m := range records {
		for k := range m {
			union[k] = fields.Absent
		}
	}
	return union.Keys()
}

// RenderList renders one item per line with no trailing newline.
func RenderList(items []string) string {
	return strings.Join(items, "\n")
}

// RenderJSON encodes each mapping or list item of doc as a compact JSON
// line. Map keys are sorted. Every line, including the last, ends in a
// newline.
func RenderJSON(doc Document) (string, error) {
	var b strings.Builder
	for _, v := range doc.jsonValues() {
		line, err := json.Marshal(v)
		if err != nil {
			return "", &SerializationError{Format: FormatJSON, Err: err}
		}
		b.Write(line)
		b.WriteByte('\n')
	}
	return b.String(), nil
}
