package models

// Fallback column indices used when a header cannot be located.
const (
	DefaultTagColumn          = 1
	DefaultSummaryLaborColumn = 3
)

// ColumnMap holds the zero-based column indices resolved from the sheet headers.
type ColumnMap struct {
	// Tag is the column holding "<name> (<time>)" creator cells.
	Tag int `json:"tag_column"`
	// SummaryLabor is the labor column of the quote header row.
	SummaryLabor int `json:"summary_labor_column"`
	// DetailLabor is the labor column of the job detail rows.
	DetailLabor int `json:"detail_labor_column"`
}
