package models

// Direction is the inferred direction of a labor price change.
type Direction string

const (
	DirectionUp      Direction = "up"
	DirectionDown    Direction = "down"
	DirectionEven    Direction = "even"
	DirectionUnknown Direction = "unknown"
)

// ModificationRecord is the inference result for one QuoteBlock.
type ModificationRecord struct {
	// Row is the 1-based sheet row of the block's tag cell.
	Row int `json:"row"`
	// Technician is the block owner.
	Technician string `json:"technician"`
	// LaborText is the raw text of the summary labor cell.
	LaborText string `json:"labor_text"`
	// LaborCode is the labor code parsed from LaborText, if any.
	LaborCode string `json:"labor_code,omitempty"`
	// LaborAmount is the amount parsed or looked up from LaborText.
	LaborAmount *float64 `json:"labor_amount,omitempty"`
	// Annotated is true when the summary labor cell carries a note.
	Annotated bool `json:"labor_commented"`
	// Changed is true when an annotated price resolved to a real difference.
	Changed bool `json:"labor_changed"`
	// Direction is up, down, even or unknown.
	Direction Direction `json:"labor_direction"`
	// Before is the resolved price before modification.
	Before *float64 `json:"labor_before,omitempty"`
	// After is the resolved price after modification.
	After *float64 `json:"labor_after,omitempty"`
	// Baseline is true when Before came from the block's detail rows.
	Baseline bool `json:"natural_baseline,omitempty"`
	// Annotation is the note text of the summary labor cell.
	Annotation string `json:"labor_comment,omitempty"`
	// PartModified is true when another header cell carries a note.
	PartModified bool `json:"part_modified"`
}
