package models

// QuoteBlock is a contiguous run of rows attributed to one technician.
type QuoteBlock struct {
	// Start is the zero-based index of the tag row.
	Start int `json:"start_row"`
	// End is the zero-based index one past the last row of the block.
	End int `json:"end_row"`
	// Technician is the normalized name from the tag cell.
	Technician string `json:"technician"`
	// Header is the tag row itself.
	Header Row `json:"header_cells"`
	// Details are the rows after the tag row, up to End.
	Details []Row `json:"detail_rows,omitempty"`
}

// Len returns the number of rows in the block.
func (b QuoteBlock) Len() int {
	return b.End - b.Start
}
