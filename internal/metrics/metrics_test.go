package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/samskrta/bluebookCounterUpper/pkg/bluebook/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *models.Report {
	return &models.Report{
		Counts: []models.TechnicianCount{{Technician: "Jane Doe", Quotes: 3}, {Technician: "Bob", Quotes: 1}},
		Records: []models.ModificationRecord{
			{Technician: "Jane Doe", Direction: models.DirectionUnknown},
			{Technician: "Jane Doe", Annotated: true, Changed: true, Direction: models.DirectionUp},
			{Technician: "Jane Doe", Annotated: true, Changed: true, Direction: models.DirectionUp},
			{Technician: "Bob", Annotated: true, Direction: models.DirectionEven},
		},
		Conflicts: []models.PriceConflict{{Code: "J13"}},
	}
}

func TestRecorderObserve(t *testing.T) {
	r := NewRecorder()
	r.Observe(sampleReport())

	assert.Equal(t, 3.0, testutil.ToFloat64(r.quoteBlocks.WithLabelValues("Jane Doe")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.quoteBlocks.WithLabelValues("Bob")))
	assert.Equal(t, 3.0, testutil.ToFloat64(r.laborAnnotated))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.laborChanges.WithLabelValues("up")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.laborChanges.WithLabelValues("even")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.priceConflicts))
}

func TestWriteTextfile(t *testing.T) {
	r := NewRecorder()
	r.Observe(sampleReport())

	path := filepath.Join(t.TempDir(), "bluebook.prom")
	require.NoError(t, r.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `bluebook_quote_blocks_total{technician="Jane Doe"} 3`)
	assert.Contains(t, string(data), `bluebook_labor_changes_total{direction="up"} 2`)
	assert.Contains(t, string(data), "bluebook_price_conflicts_total 1")
}
