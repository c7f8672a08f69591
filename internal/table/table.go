// Package table builds the data tables that drive templated procedure
// runs. A table is a header row plus keyed records: the first field of
// each data row is the record key, and the remaining fields are exposed
// to input instructions by header name. Records keep their source order,
// so a procedure expanded over a table replays once per row, top to
// bottom.
package table

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Record is one data row, keyed by header name. Records are immutable
// once built.
type Record struct {
	names  []string
	values map[string]string
}

// Get returns the value for a field name. The second result is false if
// the record has no such field.
func (r *Record) Get(name string) (string, bool) {
	if r == nil {
		return "", false
	}
	v, ok := r.values[name]
	return v, ok
}

// Names returns the field names in header order.
func (r *Record) Names() []string {
	if r == nil {
		return nil
	}
	return append([]string(nil), r.names...)
}

// Len returns the number of fields in the record.
func (r *Record) Len() int {
	if r == nil {
		return 0
	}
	return len(r.names)
}

// Table is an ordered set of keyed records. A nil *Table is the explicit
// "no data" sentinel: expansion over a nil table performs a single pass
// with no bound record.
type Table struct {
	headers []string
	keys    []string
	records map[string]*Record
}

// Headers returns the header row, including the key column.
func (t *Table) Headers() []string {
	if t == nil {
		return nil
	}
	return append([]string(nil), t.headers...)
}

// Keys returns the record keys in source row order.
func (t *Table) Keys() []string {
	if t == nil {
		return nil
	}
	return append([]string(nil), t.keys...)
}

// Len returns the number of records.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.keys)
}

// Record returns the record for a key, or nil if the key is unknown.
func (t *Table) Record(key string) *Record {
	if t == nil {
		return nil
	}
	return t.records[key]
}

// FromRows builds a table from pre-split rows. The first row supplies
// the headers; the first field of each later row supplies the record
// key, and the rest map to headers by position. Short rows simply stop
// early; a duplicate key replaces the earlier record in place.
func FromRows(rows [][]string) (*Table, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("data table has no header row")
	}

	headers := append([]string(nil), rows[0]...)
	t := &Table{
		headers: headers,
		records: make(map[string]*Record, len(rows)-1),
	}

	for _, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}
		key := row[0]

		rec := &Record{values: make(map[string]string)}
		for col := 1; col < len(headers) && col < len(row); col++ {
			name := headers[col]
			if _, seen := rec.values[name]; !seen {
				rec.names = append(rec.names, name)
			}
			rec.values[name] = row[col]
		}

		if _, seen := t.records[key]; !seen {
			t.keys = append(t.keys, key)
		}
		t.records[key] = rec
	}

	return t, nil
}

// FromText builds a table from delimiter-separated text. Rows split on
// newline, fields on the delimiter; each field is trimmed of surrounding
// whitespace, and rows that reduce to a single empty field are dropped.
func FromText(text, delimiter string) (*Table, error) {
	var rows [][]string
	for _, line := range strings.Split(text, "\n") {
		fields := strings.Split(line, delimiter)
		row := make([]string, 0, len(fields))
		for _, f := range fields {
			row = append(row, strings.TrimSpace(f))
		}
		if len(row) == 1 && row[0] == "" {
			continue
		}
		rows = append(rows, row)
	}
	return FromRows(rows)
}

// FromReader reads the stream fully and builds a table from its text.
func FromReader(r io.Reader, delimiter string) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading data table: %w", err)
	}
	return FromText(string(data), delimiter)
}

// FromFile reads a file fully and builds a table from its text.
func FromFile(path, delimiter string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening data file: %w", err)
	}
	defer f.Close()

	return FromReader(f, delimiter)
}
