package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// WriteWorkbook writes every table to its own sheet of one xlsx file.
func WriteWorkbook(path string, tables []Table) error {
	if len(tables) == 0 {
		return fmt.Errorf("no tables to write")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, t := range tables {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", t.Name); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(t.Name); err != nil {
			return err
		}

		if err := writeSheetRow(f, t.Name, 1, t.Header); err != nil {
			return err
		}
		for r, row := range t.Rows {
			if err := writeSheetRow(f, t.Name, r+2, row); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(path)
}

func writeSheetRow(f *excelize.File, sheet string, rowNum int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}
	return f.SetSheetRow(sheet, cell, &row)
}
