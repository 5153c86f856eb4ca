package analysis

import (
	"context"

	"github.com/samskrta/bluebookCounterUpper/pkg/bluebook/models"
	"github.com/samskrta/bluebookCounterUpper/pkg/bluebook/parser"
	"golang.org/x/sync/errgroup"
)

// InferAll runs Infer over every block. With workers > 1 blocks are inferred
// concurrently; records always come back in block order.
func InferAll(ctx context.Context, blocks []models.QuoteBlock, cols models.ColumnMap, prices parser.PriceTable, workers int) ([]models.ModificationRecord, error) {
	records := make([]models.ModificationRecord, len(blocks))
	if workers < 2 || len(blocks) < 2 {
		for i, b := range blocks {
			records[i] = Infer(b, cols, prices)
		}
		return records, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range blocks {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			records[i] = Infer(blocks[i], cols, prices)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}
