package parser

import (
	"testing"

	"github.com/samskrta/bluebookCounterUpper/pkg/bluebook/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func priceGrid() *models.Sheet {
	s := models.NewSheet("ALL", [][]string{
		{"J13 - $133.65", "notes"},
		{"", "", "J2 - 50"},
		{"J13 - $140.00", "J2-50.00"},
	})
	s.Annotate(1, 2, "old rate J9 – $60")
	return s
}

func TestBuildPriceTableLastWins(t *testing.T) {
	table, conflicts := BuildPriceTable(priceGrid(), PriceLastWins)

	assert.Equal(t, PriceTable{"J13": 140, "J2": 50, "J9": 60}, table)
	require.Len(t, conflicts, 1)
	assert.Equal(t, models.PriceConflict{Code: "J13", Kept: 140, Discarded: 133.65, Cell: "A3"}, conflicts[0])
}

func TestBuildPriceTableFirstWins(t *testing.T) {
	table, conflicts := BuildPriceTable(priceGrid(), PriceFirstWins)

	assert.Equal(t, PriceTable{"J13": 133.65, "J2": 50, "J9": 60}, table)
	require.Len(t, conflicts, 1)
	assert.Equal(t, models.PriceConflict{Code: "J13", Kept: 133.65, Discarded: 140, Cell: "A3"}, conflicts[0])
}

func TestBuildPriceTableEmpty(t *testing.T) {
	table, conflicts := BuildPriceTable(models.NewSheet("s", nil), PriceLastWins)
	assert.Empty(t, table)
	assert.Empty(t, conflicts)
}

func TestParsePricePolicy(t *testing.T) {
	p, err := ParsePricePolicy("")
	require.NoError(t, err)
	assert.Equal(t, PriceLastWins, p)

	p, err = ParsePricePolicy("first")
	require.NoError(t, err)
	assert.Equal(t, PriceFirstWins, p)

	_, err = ParsePricePolicy("average")
	assert.Error(t, err)
}
