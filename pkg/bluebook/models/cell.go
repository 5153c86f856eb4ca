// Package models defines data structures for quote report extraction.
package models

// Cell is a single grid cell with its display value and optional note.
type Cell struct {
	// Value is the cell's displayed text ("" when empty).
	Value string `json:"v,omitempty"`
	// Annotation is the text of the comment attached to the cell, if any.
	Annotation string `json:"a,omitempty"`
}

// HasAnnotation reports whether the cell carries a non-empty note.
func (c Cell) HasAnnotation() bool {
	return c.Annotation != ""
}

// Row is one sheet row, indexed by zero-based column.
type Row []Cell

// Cell returns the cell at column idx, or the zero Cell when idx is out of range.
func (r Row) Cell(idx int) Cell {
	if idx < 0 || idx >= len(r) {
		return Cell{}
	}
	return r[idx]
}

// IsEmpty reports whether no cell in the row has a value.
func (r Row) IsEmpty() bool {
	for _, c := range r {
		if c.Value != "" {
			return false
		}
	}
	return true
}
