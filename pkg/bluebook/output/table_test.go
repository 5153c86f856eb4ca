package output

import (
	"bytes"
	"testing"

	"github.com/samskrta/bluebookCounterUpper/pkg/bluebook/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func sampleReport() *models.Report {
	return &models.Report{
		Records: []models.ModificationRecord{
			{Row: 4, Technician: "Jane Doe", LaborText: "$100.00", Direction: models.DirectionUnknown},
			{
				Row: 6, Technician: "Jane Doe", LaborText: "$75.00", LaborCode: "J2",
				Annotated: true, Changed: true, Direction: models.DirectionUp,
				Before: ptr(50), After: ptr(75), Annotation: "from 50 to 75", PartModified: true,
			},
			{Row: 8, Technician: "Bob, Jr.", LaborText: "J13", Direction: models.DirectionUnknown},
		},
		Counts: []models.TechnicianCount{
			{Technician: "Jane Doe", Quotes: 2},
			{Technician: "Bob, Jr.", Quotes: 1},
		},
		Summaries: []models.TechnicianSummary{
			{Technician: "Jane Doe", Total: 2, Modified: 1, Up: 1},
			{Technician: "Bob, Jr.", Total: 1},
		},
	}
}

func TestCountsTable(t *testing.T) {
	table := CountsTable(sampleReport())

	assert.Equal(t, TableCounts, table.Name)
	assert.Equal(t, []string{"Technician", "Quotes"}, table.Header)
	assert.Equal(t, [][]string{
		{"Jane Doe", "2"},
		{"Bob, Jr.", "1"},
		{"TOTAL", "3"},
	}, table.Rows)
}

func TestModificationsTable(t *testing.T) {
	table := ModificationsTable(sampleReport())

	assert.Equal(t, []string{
		"row", "technician", "labor_value", "labor_commented", "labor_changed",
		"labor_direction", "labor_before", "labor_after", "part_modified",
		"labor_comment", "labor_code",
	}, table.Header)
	require.Len(t, table.Rows, 3)
	assert.Equal(t, []string{"4", "Jane Doe", "$100.00", "false", "false", "unknown", "", "", "false", "", ""}, table.Rows[0])
	assert.Equal(t, []string{"6", "Jane Doe", "$75.00", "true", "true", "up", "50.00", "75.00", "true", "from 50 to 75", "J2"}, table.Rows[1])
}

func TestSummaryTable(t *testing.T) {
	table := SummaryTable(sampleReport())

	assert.Equal(t, []string{"Technician", "Total", "Labor Modified", "% Modified", "Up", "Down", "Even"}, table.Header)
	assert.Equal(t, [][]string{
		{"Jane Doe", "2", "1", "50.00", "1", "0", "0"},
		{"Bob, Jr.", "1", "0", "0.00", "0", "0", "0"},
		{"TOTAL", "3", "1", "33.33", "1", "0", "0"},
	}, table.Rows)
}

func TestEmptyReportTables(t *testing.T) {
	tables := Tables(&models.Report{})

	require.Len(t, tables, 3)
	assert.Equal(t, [][]string{{"TOTAL", "0"}}, tables[0].Rows)
	assert.Empty(t, tables[1].Rows)
	assert.Equal(t, [][]string{{"TOTAL", "0", "0", "0.00", "0", "0", "0"}}, tables[2].Rows)
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Print(&buf, CountsTable(sampleReport())))

	assert.Equal(t, "Technician,Quotes\nJane Doe,2\n\"Bob, Jr.\",1\nTOTAL,3\n", buf.String())
}
