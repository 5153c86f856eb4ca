// Package analysis infers labor price modifications for quote blocks and
// folds the results per technician.
package analysis

import (
	"math"

	"github.com/samskrta/bluebookCounterUpper/pkg/bluebook/models"
	"github.com/samskrta/bluebookCounterUpper/pkg/bluebook/parser"
)

// Epsilon is the smallest price difference counted as a change (half a cent).
const Epsilon = 0.005

// pairSource tells where a before/after pair came from.
type pairSource int

const (
	pairNone pairSource = iota
	pairFromTo
	pairTokens
	pairSingle
)

// Infer builds the ModificationRecord for one block. Only an annotated
// summary labor cell can produce a direction other than unknown.
func Infer(b models.QuoteBlock, cols models.ColumnMap, prices parser.PriceTable) models.ModificationRecord {
	cell := b.Header.Cell(cols.SummaryLabor)
	note := parser.NoteText(cell.Annotation)
	labor := parser.ParseLabor(cell.Value, prices)

	rec := models.ModificationRecord{
		Row:          b.Start + 1,
		Technician:   b.Technician,
		LaborText:    cell.Value,
		LaborCode:    labor.Code,
		LaborAmount:  labor.Amount,
		Annotated:    cell.HasAnnotation(),
		Annotation:   note,
		Direction:    models.DirectionUnknown,
		PartModified: partModified(b.Header, cols.SummaryLabor),
	}
	if !rec.Annotated {
		return rec
	}

	before, after, src := annotationPair(note, labor.Amount)

	// A lone number equal to the current amount only restates the price;
	// the detail rows are better evidence of what it was before.
	restated := src == pairSingle && math.Abs(after-before) < Epsilon
	if src == pairNone || restated {
		if baseline, ok := NaturalBaseline(b, cols.DetailLabor, prices); ok && labor.HasAmount() {
			before, after, src = baseline, *labor.Amount, pairSingle
			rec.Baseline = true
		}
	}
	if src == pairNone {
		return rec
	}

	rec.Before = &before
	rec.After = &after
	rec.Direction = Classify(before, after)
	rec.Changed = math.Abs(after-before) >= Epsilon
	return rec
}

// annotationPair resolves before/after from note text: an explicit
// "from X to Y", else the first and last of several numbers, else a single
// number paired with the current amount.
func annotationPair(note string, current *float64) (before, after float64, src pairSource) {
	if b, a, ok := parser.ParseFromTo(note); ok {
		return b, a, pairFromTo
	}

	amounts := parser.ParseAmounts(note)
	switch {
	case len(amounts) >= 2:
		return amounts[0], amounts[len(amounts)-1], pairTokens
	case len(amounts) == 1 && current != nil:
		return amounts[0], *current, pairSingle
	}
	return 0, 0, pairNone
}

// NaturalBaseline returns the highest labor amount found in the detail labor
// column of the block's detail rows.
func NaturalBaseline(b models.QuoteBlock, detailColumn int, prices parser.PriceTable) (float64, bool) {
	found := false
	baseline := 0.0
	for _, row := range b.Details {
		labor := parser.ParseLabor(row.Cell(detailColumn).Value, prices)
		if !labor.HasAmount() {
			continue
		}
		if !found || *labor.Amount > baseline {
			baseline = *labor.Amount
			found = true
		}
	}
	return baseline, found
}

// Classify compares a before/after pair with Epsilon tolerance.
func Classify(before, after float64) models.Direction {
	switch {
	case math.Abs(after-before) < Epsilon:
		return models.DirectionEven
	case after > before:
		return models.DirectionUp
	default:
		return models.DirectionDown
	}
}

// partModified reports whether any header cell other than the summary labor
// cell carries a note.
func partModified(header models.Row, laborColumn int) bool {
	for i, c := range header {
		if i != laborColumn && c.HasAnnotation() {
			return true
		}
	}
	return false
}
