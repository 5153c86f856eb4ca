// Package parser provides the sheet parsing steps of quote analysis.
package parser

import (
	"strings"

	"github.com/samskrta/bluebookCounterUpper/pkg/bluebook/models"
	"github.com/xuri/excelize/v2"
)

// ExtractGrid loads a sheet into a models.Sheet, pairing every cell value
// with the text of its comment. Comments on cells beyond the last value row
// or column grow the grid so no note is lost.
func ExtractGrid(f *excelize.File, sheetName string) (*models.Sheet, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	sheet := &models.Sheet{Name: sheetName, Data: make([]models.Row, len(rows))}
	for rowIdx, row := range rows {
		cells := make(models.Row, len(row))
		for colIdx, value := range row {
			cells[colIdx] = models.Cell{Value: strings.TrimSpace(value)}
		}
		sheet.Data[rowIdx] = cells
	}

	comments, err := f.GetComments(sheetName)
	if err != nil {
		return nil, err
	}
	for _, c := range comments {
		col, row, err := excelize.CellNameToCoordinates(c.Cell)
		if err != nil {
			continue
		}
		if text := commentText(c); text != "" {
			sheet.Annotate(row-1, col-1, text)
		}
	}

	return sheet, nil
}

// commentText flattens a comment's plain text and rich text runs. The notice
// of a threaded comment and a leading "<author>:" prefix, as Excel writes
// them, are dropped.
func commentText(c excelize.Comment) string {
	var runs strings.Builder
	for _, run := range c.Paragraph {
		runs.WriteString(run.Text)
	}
	text := c.Text
	if p := runs.String(); p != text {
		text += p
	}
	text = NoteText(text)
	if c.Author != "" {
		text = strings.TrimSpace(strings.TrimPrefix(text, c.Author+":"))
	}
	return text
}
