package parser

import (
	"strings"

	"github.com/samskrta/bluebookCounterUpper/pkg/bluebook/models"
)

// HeaderScanRows is the number of non-empty rows inspected for headers.
const HeaderScanRows = 25

var (
	summaryHeaderWords = []string{"service charge", "parts", "total", "labor"}
	detailHeaderWords  = []string{"job name", "part number", "part price", "labor", "total"}
)

// LocateColumns finds the tag, summary labor and detail labor columns by
// probing header text in the first HeaderScanRows non-empty rows. Roles that
// cannot be found fall back to fixed indices; it never fails.
func LocateColumns(grid models.Grid) models.ColumnMap {
	tag, summary, detail := -1, -1, -1

	scanned := 0
	for _, row := range grid.Rows() {
		if tag >= 0 && summary >= 0 && detail >= 0 {
			break
		}
		if row.IsEmpty() {
			continue
		}
		if scanned >= HeaderScanRows {
			break
		}
		scanned++

		texts := normalizedTexts(row)

		if tag < 0 {
			for col, t := range texts {
				if strings.HasPrefix(t, "created") {
					tag = col
					break
				}
			}
		}

		set := textSet(texts)
		if summary < 0 && containsAll(set, summaryHeaderWords) {
			summary = indexOf(texts, "labor")
		}
		if detail < 0 && containsAll(set, detailHeaderWords) {
			detail = lastIndexOf(texts, "labor")
		}
	}

	cols := models.ColumnMap{Tag: tag, SummaryLabor: summary, DetailLabor: detail}
	if cols.Tag < 0 {
		cols.Tag = models.DefaultTagColumn
	}
	if cols.SummaryLabor < 0 {
		cols.SummaryLabor = models.DefaultSummaryLaborColumn
	}
	if cols.DetailLabor < 0 {
		cols.DetailLabor = cols.SummaryLabor
	}
	return cols
}

// normalizedTexts returns the trimmed, lower-cased value of every cell.
func normalizedTexts(row models.Row) []string {
	texts := make([]string, len(row))
	for i, c := range row {
		texts[i] = strings.ToLower(strings.TrimSpace(c.Value))
	}
	return texts
}

func textSet(texts []string) map[string]struct{} {
	set := make(map[string]struct{}, len(texts))
	for _, t := range texts {
		if t != "" {
			set[t] = struct{}{}
		}
	}
	return set
}

func containsAll(set map[string]struct{}, words []string) bool {
	for _, w := range words {
		if _, ok := set[w]; !ok {
			return false
		}
	}
	return true
}

func indexOf(texts []string, word string) int {
	for i, t := range texts {
		if t == word {
			return i
		}
	}
	return -1
}

func lastIndexOf(texts []string, word string) int {
	for i := len(texts) - 1; i >= 0; i-- {
		if texts[i] == word {
			return i
		}
	}
	return -1
}
