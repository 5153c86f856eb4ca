// Package output renders analysis reports as tables and writes them out.
package output

import (
	"strconv"

	"github.com/samskrta/bluebookCounterUpper/pkg/bluebook/models"
)

// Table names, also used as file suffixes and sheet names.
const (
	TableCounts        = "counts"
	TableModifications = "modifications"
	TableSummary       = "modification_summary"
)

// Table is a named header plus data rows.
type Table struct {
	Name   string
	Header []string
	Rows   [][]string
}

// Tables returns the three report tables in output order.
func Tables(r *models.Report) []Table {
	return []Table{CountsTable(r), ModificationsTable(r), SummaryTable(r)}
}

// CountsTable lists quotes per technician followed by a TOTAL row.
func CountsTable(r *models.Report) Table {
	t := Table{Name: TableCounts, Header: []string{"Technician", "Quotes"}}
	total := 0
	for _, c := range r.Counts {
		t.Rows = append(t.Rows, []string{c.Technician, strconv.Itoa(c.Quotes)})
		total += c.Quotes
	}
	t.Rows = append(t.Rows, []string{"TOTAL", strconv.Itoa(total)})
	return t
}

// ModificationsTable lists one row per quote block.
func ModificationsTable(r *models.Report) Table {
	t := Table{
		Name: TableModifications,
		Header: []string{
			"row", "technician", "labor_value", "labor_commented", "labor_changed",
			"labor_direction", "labor_before", "labor_after", "part_modified",
			"labor_comment", "labor_code",
		},
	}
	for _, rec := range r.Records {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(rec.Row),
			rec.Technician,
			rec.LaborText,
			strconv.FormatBool(rec.Annotated),
			strconv.FormatBool(rec.Changed),
			string(rec.Direction),
			formatAmount(rec.Before),
			formatAmount(rec.After),
			strconv.FormatBool(rec.PartModified),
			rec.Annotation,
			rec.LaborCode,
		})
	}
	return t
}

// SummaryTable lists modification statistics per technician followed by a
// TOTAL row.
func SummaryTable(r *models.Report) Table {
	t := Table{
		Name:   TableSummary,
		Header: []string{"Technician", "Total", "Labor Modified", "% Modified", "Up", "Down", "Even"},
	}
	var total models.TechnicianSummary
	total.Technician = "TOTAL"
	for _, s := range r.Summaries {
		t.Rows = append(t.Rows, summaryRow(s))
		total.Total += s.Total
		total.Modified += s.Modified
		total.Up += s.Up
		total.Down += s.Down
		total.Even += s.Even
	}
	t.Rows = append(t.Rows, summaryRow(total))
	return t
}

func summaryRow(s models.TechnicianSummary) []string {
	return []string{
		s.Technician,
		strconv.Itoa(s.Total),
		strconv.Itoa(s.Modified),
		strconv.FormatFloat(s.PercentModified(), 'f', 2, 64),
		strconv.Itoa(s.Up),
		strconv.Itoa(s.Down),
		strconv.Itoa(s.Even),
	}
}

func formatAmount(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}
