package models

// Grid is the read-only view of a sheet the analysis consumes.
type Grid interface {
	// Rows returns the sheet rows in order; index 0 is the first sheet row.
	Rows() []Row
}

// Sheet is an in-memory Grid loaded from a workbook.
type Sheet struct {
	// Name is the sheet name inside the workbook.
	Name string `json:"name"`
	// Data holds the materialized rows.
	Data []Row `json:"rows,omitempty"`
}

// Rows implements Grid.
func (s *Sheet) Rows() []Row {
	if s == nil {
		return nil
	}
	return s.Data
}

// NewSheet builds a Sheet from plain values, mainly for tests and fixtures.
func NewSheet(name string, values [][]string) *Sheet {
	rows := make([]Row, len(values))
	for i, vals := range values {
		row := make(Row, len(vals))
		for j, v := range vals {
			row[j] = Cell{Value: v}
		}
		rows[i] = row
	}
	return &Sheet{Name: name, Data: rows}
}

// Annotate attaches a note to the cell at (row, col), growing the grid as needed.
func (s *Sheet) Annotate(row, col int, text string) {
	for len(s.Data) <= row {
		s.Data = append(s.Data, nil)
	}
	for len(s.Data[row]) <= col {
		s.Data[row] = append(s.Data[row], Cell{})
	}
	s.Data[row][col].Annotation = text
}
