// Package tabular holds the in-memory table model shared by every converter:
// an ordered list of named text columns. Cells are always strings — values are
// never auto-typed on read, so phone numbers keep their leading zeros. Typed
// coercion happens downstream, per field, where a converter requires it.
package tabular

import (
	"fmt"
	"strings"
)

type Table struct {
	Headers []string
	Rows    [][]string
}

func New(headers []string) *Table {
	return &Table{Headers: headers}
}

func (t *Table) Width() int { return len(t.Headers) }
func (t *Table) Len() int   { return len(t.Rows) }

// Cell returns the value at (row, col), "" when the row is ragged-short.
func (t *Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) || col < 0 {
		return ""
	}
	r := t.Rows[row]
	if col >= len(r) {
		return ""
	}
	return r[col]
}

// SetCell grows the row as needed before writing.
func (t *Table) SetCell(row, col int, v string) {
	if row < 0 || row >= len(t.Rows) || col < 0 {
		return
	}
	for len(t.Rows[row]) <= col {
		t.Rows[row] = append(t.Rows[row], "")
	}
	t.Rows[row][col] = v
}

// Column materializes column col as a slice of t.Len() values.
func (t *Table) Column(col int) []string {
	out := make([]string, t.Len())
	for i := range t.Rows {
		out[i] = t.Cell(i, col)
	}
	return out
}

// AddColumn appends a new column filled with fill and returns its index.
func (t *Table) AddColumn(header, fill string) int {
	idx := len(t.Headers)
	t.Headers = append(t.Headers, header)
	for i := range t.Rows {
		for len(t.Rows[i]) < idx {
			t.Rows[i] = append(t.Rows[i], "")
		}
		t.Rows[i] = append(t.Rows[i], fill)
	}
	return idx
}

// Clone deep-copies the table so merges never mutate the caller's input.
func (t *Table) Clone() *Table {
	c := &Table{Headers: append([]string(nil), t.Headers...)}
	c.Rows = make([][]string, len(t.Rows))
	for i, r := range t.Rows {
		c.Rows[i] = append([]string(nil), r...)
	}
	return c
}

// FillHeaders trims header cells and substitutes "Column N" for blanks, so
// header-free exports stay addressable by position.
func FillHeaders(h []string) []string {
	out := make([]string, len(h))
	for i, v := range h {
		v = strings.TrimSpace(v)
		if v == "" {
			v = fmt.Sprintf("Column %d", i+1)
		}
		out[i] = v
	}
	return out
}

// FromRows builds a table from raw sheet rows: row headerRow-1 becomes the
// header (1-based). Width is taken from the widest row, not the header row —
// sheet readers trim trailing empty cells per row, and a blank header cell
// above a data column must still be addressable by letter. Interior blank
// rows are kept; trailing blank rows are dropped.
func FromRows(rows [][]string, headerRow int) *Table {
	if len(rows) == 0 {
		return New(nil)
	}
	idx := headerRow - 1
	if idx < 0 || idx >= len(rows) {
		idx = 0
	}
	width := len(rows[idx])
	for r := idx + 1; r < len(rows); r++ {
		if len(rows[r]) > width {
			width = len(rows[r])
		}
	}
	header := make([]string, width)
	copy(header, rows[idx])
	t := New(FillHeaders(header))
	last := 0
	for r := idx + 1; r < len(rows); r++ {
		rec := rows[r]
		row := make([]string, width)
		empty := true
		for c := 0; c < width; c++ {
			if c < len(rec) {
				row[c] = rec[c]
			}
			if strings.TrimSpace(row[c]) != "" {
				empty = false
			}
		}
		t.Rows = append(t.Rows, row)
		if !empty {
			last = len(t.Rows)
		}
	}
	t.Rows = t.Rows[:last]
	return t
}
