package parser

import (
	"fmt"

	"github.com/samskrta/bluebookCounterUpper/pkg/bluebook/models"
	"github.com/xuri/excelize/v2"
)

// PriceTable maps a labor code (e.g. "J13") to its canonical price.
type PriceTable map[string]float64

// PricePolicy decides which price survives when a code is seen twice.
type PricePolicy string

const (
	// PriceLastWins keeps the last observed price.
	PriceLastWins PricePolicy = "last"
	// PriceFirstWins keeps the first observed price.
	PriceFirstWins PricePolicy = "first"
)

// ParsePricePolicy converts a policy name to a PricePolicy.
func ParsePricePolicy(s string) (PricePolicy, error) {
	switch PricePolicy(s) {
	case "", PriceLastWins:
		return PriceLastWins, nil
	case PriceFirstWins:
		return PriceFirstWins, nil
	default:
		return "", fmt.Errorf("invalid price policy: %s (must be last or first)", s)
	}
}

// BuildPriceTable scans every cell value and annotation of grid for
// "<code> - <amount>" pairs. Values are scanned before the annotation of the
// same cell, row by row. Codes seen with a different amount are reported as
// conflicts; policy decides which amount stays.
func BuildPriceTable(grid models.Grid, policy PricePolicy) (PriceTable, []models.PriceConflict) {
	table := make(PriceTable)
	var conflicts []models.PriceConflict

	observe := func(text string, rowIdx, colIdx int) {
		for _, m := range codeAmountRe.FindAllStringSubmatch(text, -1) {
			amount, ok := parseAmount(m[2])
			if !ok {
				continue
			}
			code := m[1]
			prev, seen := table[code]
			if !seen {
				table[code] = amount
				continue
			}
			if prev == amount {
				continue
			}

			cellName, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			conflict := models.PriceConflict{Code: code, Kept: prev, Discarded: amount, Cell: cellName}
			if policy != PriceFirstWins {
				table[code] = amount
				conflict.Kept, conflict.Discarded = amount, prev
			}
			conflicts = append(conflicts, conflict)
		}
	}

	for rowIdx, row := range grid.Rows() {
		for colIdx, cell := range row {
			if cell.Value != "" {
				observe(cell.Value, rowIdx, colIdx)
			}
			if cell.Annotation != "" {
				observe(cell.Annotation, rowIdx, colIdx)
			}
		}
	}

	return table, conflicts
}
