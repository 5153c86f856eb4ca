// Package testutil builds Blue Book report fixtures for tests.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// FixtureCell is one value, with an optional comment, at an A1 reference.
type FixtureCell struct {
	Ref     string
	Value   string
	Comment string
}

// QuoteReportCells is a three-quote report for "Jane Doe" and one quote for
// "Bob Smith":
//   - quote 1 (row 4) has no labor comment
//   - quote 2 (row 6) is commented "from 50 to 75"
//   - quote 3 (row 8) is commented "80" and has a "J9 - $60.00" detail row
//   - quote 4 (row 10) uses the bare code J13, priced in row 5
var QuoteReportCells = []FixtureCell{
	{Ref: "A1", Value: "Blue Book Report"},
	{Ref: "B2", Value: "Created By (At)"},
	{Ref: "C2", Value: "Service Charge"},
	{Ref: "D2", Value: "Labor"},
	{Ref: "E2", Value: "Parts"},
	{Ref: "F2", Value: "Total"},
	{Ref: "C3", Value: "Job Name"},
	{Ref: "D3", Value: "Part Number"},
	{Ref: "E3", Value: "Part Price"},
	{Ref: "F3", Value: "Labor"},
	{Ref: "G3", Value: "Total"},
	{Ref: "B4", Value: "Jane Doe (5:07 PM)"},
	{Ref: "D4", Value: "$100.00"},
	{Ref: "C5", Value: "Brake job"},
	{Ref: "F5", Value: "J13 - $100.00"},
	{Ref: "B6", Value: "Jane Doe (6:15 PM)"},
	{Ref: "D6", Value: "$75.00", Comment: "from 50 to 75"},
	{Ref: "C7", Value: "Oil change"},
	{Ref: "F7", Value: "J2 - $50.00"},
	{Ref: "B8", Value: "Jane  Doe (7:00 AM)"},
	{Ref: "D8", Value: "80", Comment: "80"},
	{Ref: "E8", Value: "$12.00", Comment: "filter swapped"},
	{Ref: "C9", Value: "Tune up"},
	{Ref: "F9", Value: "J9 - $60.00"},
	{Ref: "B10", Value: "Bob Smith (9:00 AM)"},
	{Ref: "D10", Value: "J13"},
}

// WriteWorkbook saves cells to a new xlsx file in a temp dir and returns its
// path. The single sheet is named sheetName.
func WriteWorkbook(t *testing.T, name, sheetName string, cells []FixtureCell) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName("Sheet1", sheetName))
	for _, c := range cells {
		if c.Value != "" {
			require.NoError(t, f.SetCellStr(sheetName, c.Ref, c.Value))
		}
		if c.Comment != "" {
			require.NoError(t, f.AddComment(sheetName, excelize.Comment{
				Cell:   c.Ref,
				Author: "Reviewer",
				Text:   c.Comment,
			}))
		}
	}

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, f.SaveAs(path))
	return path
}

// WriteQuoteReport saves QuoteReportCells in a sheet named "ALL".
func WriteQuoteReport(t *testing.T) string {
	t.Helper()
	return WriteWorkbook(t, "BlueBook_Report.xlsx", "ALL", QuoteReportCells)
}
