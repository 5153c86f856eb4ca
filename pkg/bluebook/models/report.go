package models

// PriceConflict records a labor code observed with two different amounts.
type PriceConflict struct {
	// Code is the labor code.
	Code string `json:"code"`
	// Kept is the amount that stayed in the table.
	Kept float64 `json:"kept"`
	// Discarded is the amount that lost.
	Discarded float64 `json:"discarded"`
	// Cell is the A1 reference of the later observation.
	Cell string `json:"cell"`
}

// Report is the full result of analyzing one sheet.
type Report struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name,omitempty"`
	// SheetName is the analyzed sheet.
	SheetName string `json:"sheet_name,omitempty"`
	// Columns are the resolved header columns.
	Columns ColumnMap `json:"columns"`
	// Prices maps labor code to canonical price.
	Prices map[string]float64 `json:"prices,omitempty"`
	// Conflicts lists codes seen with differing prices, in scan order.
	Conflicts []PriceConflict `json:"price_conflicts,omitempty"`
	// Blocks are the quote blocks in row order.
	Blocks []QuoteBlock `json:"-"`
	// Records holds one ModificationRecord per block, in block order.
	Records []ModificationRecord `json:"records"`
	// Counts is the per-technician quote count, sorted.
	Counts []TechnicianCount `json:"counts"`
	// Summaries is the per-technician modification summary, sorted.
	Summaries []TechnicianSummary `json:"summaries"`
}

// TotalQuotes returns the number of quote blocks in the report.
func (r *Report) TotalQuotes() int {
	n := 0
	for _, c := range r.Counts {
		n += c.Quotes
	}
	return n
}
