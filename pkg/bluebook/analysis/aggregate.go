package analysis

import (
	"sort"
	"strings"

	"github.com/samskrta/bluebookCounterUpper/pkg/bluebook/models"
)

// CountQuotes returns the number of blocks per technician, by descending
// count then case-insensitive name.
func CountQuotes(blocks []models.QuoteBlock) []models.TechnicianCount {
	index := make(map[string]int)
	var counts []models.TechnicianCount
	for _, b := range blocks {
		i, ok := index[b.Technician]
		if !ok {
			i = len(counts)
			index[b.Technician] = i
			counts = append(counts, models.TechnicianCount{Technician: b.Technician})
		}
		counts[i].Quotes++
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return less(counts[i].Quotes, counts[j].Quotes, counts[i].Technician, counts[j].Technician)
	})
	return counts
}

// Summarize folds records into per-technician modification statistics,
// ordered like CountQuotes.
func Summarize(records []models.ModificationRecord) []models.TechnicianSummary {
	index := make(map[string]int)
	var sums []models.TechnicianSummary
	for _, r := range records {
		i, ok := index[r.Technician]
		if !ok {
			i = len(sums)
			index[r.Technician] = i
			sums = append(sums, models.TechnicianSummary{Technician: r.Technician})
		}
		s := &sums[i]
		s.Total++
		if r.Changed {
			s.Modified++
		}
		switch r.Direction {
		case models.DirectionUp:
			s.Up++
		case models.DirectionDown:
			s.Down++
		case models.DirectionEven:
			s.Even++
		}
	}

	sort.SliceStable(sums, func(i, j int) bool {
		return less(sums[i].Total, sums[j].Total, sums[i].Technician, sums[j].Technician)
	})
	return sums
}

// less orders by descending n, then case-insensitive name, then exact name.
func less(ni, nj int, namei, namej string) bool {
	if ni != nj {
		return ni > nj
	}
	li, lj := strings.ToLower(namei), strings.ToLower(namej)
	if li != lj {
		return li < lj
	}
	return namei < namej
}
