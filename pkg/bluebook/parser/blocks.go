package parser

import "github.com/samskrta/bluebookCounterUpper/pkg/bluebook/models"

// SegmentBlocks splits grid into quote blocks. A block opens at every row whose
// tag column holds a technician tag and runs until the next such row or the end
// of the sheet. Rows before the first tag belong to no block.
func SegmentBlocks(grid models.Grid, tagColumn int) []models.QuoteBlock {
	rows := grid.Rows()

	var blocks []models.QuoteBlock
	for i, row := range rows {
		name, ok := ParseTechnician(row.Cell(tagColumn).Value)
		if !ok {
			continue
		}
		if n := len(blocks); n > 0 {
			blocks[n-1].End = i
		}
		blocks = append(blocks, models.QuoteBlock{
			Start:      i,
			End:        len(rows),
			Technician: name,
			Header:     row,
		})
	}

	for i := range blocks {
		if blocks[i].End > blocks[i].Start+1 {
			blocks[i].Details = rows[blocks[i].Start+1 : blocks[i].End]
		}
	}
	return blocks
}
