// Reclookup - Precomputed Recommendation Lookup Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reclookup

package table

import (
	"fmt"
	"strings"
)

// Format identifies how recommendations are laid out in a table.
type Format string

const (
	// FormatColumns stores one recommendation per column; every column whose
	// header starts with Spec.ValuePrefix is a value column.
	FormatColumns Format = "columns"

	// FormatDelimited stores all recommendations in Spec.ValueColumn as a
	// single comma-joined string.
	FormatDelimited Format = "delimited"
)

// Spec describes one recommendation table and how to read it.
type Spec struct {
	// Name is the source display name, e.g. "Collaborative Filtering".
	Name string

	// Path is the file location.
	Path string

	Format      Format
	KeyColumn   string
	ValuePrefix string
	ValueColumn string

	// MissingValues are cell values treated as absent. Empty cells are
	// always absent.
	MissingValues []string
}

// Cell is one value cell of a row.
type Cell struct {
	Value   string
	Present bool
}

// Row is the value cells of one table row, in value-column order.
type Row struct {
	Key   string
	Cells []Cell
}

// Table is an immutable in-memory recommendation table.
// It is safe for concurrent reads.
type Table struct {
	name         string
	path         string
	format       Format
	keyColumn    string
	valueColumns []string
	rows         []Row
	index        map[string]int
}

// Name returns the source display name.
func (t *Table) Name() string { return t.name }

// Path returns the file the table was loaded from.
func (t *Table) Path() string { return t.path }

// Format returns the value layout.
func (t *Table) Format() Format { return t.format }

// KeyColumn returns the key column header.
func (t *Table) KeyColumn() string { return t.keyColumn }

// ValueColumns returns a copy of the value column headers in header order.
func (t *Table) ValueColumns() []string {
	return append([]string(nil), t.valueColumns...)
}

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.rows) }

// Row returns the first row whose key equals key exactly.
// The returned cells must not be modified.
func (t *Table) Row(key string) (Row, bool) {
	i, ok := t.index[key]
	if !ok {
		return Row{}, false
	}
	return t.rows[i], true
}

// Keys returns up to n keys in row order. n < 0 returns every key.
func (t *Table) Keys(n int) []string {
	if n < 0 || n > len(t.rows) {
		n = len(t.rows)
	}
	keys := make([]string, 0, n)
	for _, row := range t.rows[:n] {
		keys = append(keys, row.Key)
	}
	return keys
}

// NewTable builds a table from a header and raw records, applying the same
// rules as the file loaders.
//
//nolint:gocritic // Spec passed by value for immutability
func NewTable(spec Spec, header []string, records [][]string) (*Table, error) {
	b, err := newBuilder(spec, header)
	if err != nil {
		return nil, err
	}
	for i, record := range records {
		if err := b.add(i+2, record, nil); err != nil {
			return nil, err
		}
	}
	return b.build(), nil
}

// builder accumulates rows for a table. Line numbers are 1-based file lines
// with the header on line 1.
type builder struct {
	table    *Table
	keyIdx   int
	valueIdx []int
	width    int
	missing  map[string]struct{}
}

//nolint:gocritic // Spec passed by value for immutability
func newBuilder(spec Spec, header []string) (*builder, error) {
	if len(header) == 0 {
		return nil, fmt.Errorf("%w: file has no header row", ErrMalformed)
	}
	header = append([]string(nil), header...)
	header[0] = strings.TrimPrefix(header[0], "\ufeff")

	b := &builder{
		keyIdx:  -1,
		width:   len(header),
		missing: make(map[string]struct{}, len(spec.MissingValues)+1),
		table: &Table{
			name:      spec.Name,
			path:      spec.Path,
			format:    spec.Format,
			keyColumn: spec.KeyColumn,
			index:     make(map[string]int),
		},
	}
	b.missing[""] = struct{}{}
	for _, v := range spec.MissingValues {
		b.missing[v] = struct{}{}
	}

	for i, col := range header {
		if col == spec.KeyColumn {
			b.keyIdx = i
			break
		}
	}
	if b.keyIdx < 0 {
		return nil, fmt.Errorf("%w: key column %q not found", ErrMalformed, spec.KeyColumn)
	}

	switch spec.Format {
	case FormatColumns:
		if spec.ValuePrefix == "" {
			return nil, fmt.Errorf("%w: empty value column prefix", ErrMalformed)
		}
		for i, col := range header {
			if i != b.keyIdx && strings.HasPrefix(col, spec.ValuePrefix) {
				b.valueIdx = append(b.valueIdx, i)
				b.table.valueColumns = append(b.table.valueColumns, col)
			}
		}
		if len(b.valueIdx) == 0 {
			return nil, fmt.Errorf("%w: no columns with prefix %q", ErrMalformed, spec.ValuePrefix)
		}
	case FormatDelimited:
		for i, col := range header {
			if col == spec.ValueColumn {
				b.valueIdx = []int{i}
				b.table.valueColumns = []string{col}
				break
			}
		}
		if len(b.valueIdx) == 0 {
			return nil, fmt.Errorf("%w: value column %q not found", ErrMalformed, spec.ValueColumn)
		}
	default:
		return nil, fmt.Errorf("%w: unknown format %q", ErrMalformed, spec.Format)
	}

	return b, nil
}

// add appends one record. nulls, when non-nil, marks fields that the reader
// already knows to be absent.
func (b *builder) add(line int, fields []string, nulls []bool) error {
	if len(fields) > b.width {
		return fmt.Errorf("%w: line %d has %d fields, header has %d", ErrMalformed, line, len(fields), b.width)
	}

	key, ok := b.field(fields, nulls, b.keyIdx)
	row := Row{Key: key, Cells: make([]Cell, len(b.valueIdx))}
	for i, idx := range b.valueIdx {
		v, present := b.field(fields, nulls, idx)
		row.Cells[i] = Cell{Value: v, Present: present}
	}

	b.table.rows = append(b.table.rows, row)
	if !ok {
		return nil
	}
	if _, dup := b.table.index[key]; !dup {
		b.table.index[key] = len(b.table.rows) - 1
	}
	return nil
}

// field returns the value at idx and whether it is present. Short rows are
// padded with missing cells.
func (b *builder) field(fields []string, nulls []bool, idx int) (string, bool) {
	if idx >= len(fields) {
		return "", false
	}
	if nulls != nil && nulls[idx] {
		return "", false
	}
	v := fields[idx]
	if _, isMissing := b.missing[v]; isMissing {
		return "", false
	}
	return v, true
}

func (b *builder) build() *Table {
	return b.table
}
