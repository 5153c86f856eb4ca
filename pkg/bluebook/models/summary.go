package models

// TechnicianCount is the number of quotes created by one technician.
type TechnicianCount struct {
	Technician string `json:"technician"`
	Quotes     int    `json:"quotes"`
}

// TechnicianSummary folds the modification records of one technician.
type TechnicianSummary struct {
	Technician string `json:"technician"`
	Total      int    `json:"total"`
	Modified   int    `json:"labor_modified"`
	Up         int    `json:"up"`
	Down       int    `json:"down"`
	Even       int    `json:"even"`
}

// PercentModified returns Modified as a percentage of Total (0 when Total is 0).
func (s TechnicianSummary) PercentModified() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Modified) / float64(s.Total) * 100
}
