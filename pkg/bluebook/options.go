// Package bluebook extracts quote records from Blue Book report exports and
// infers labor price modifications from cell comments.
package bluebook

import (
	"github.com/samskrta/bluebookCounterUpper/pkg/bluebook/parser"
	"go.uber.org/zap"
)

// DefaultSheet is the sheet name Blue Book exports use for all quotes.
const DefaultSheet = "ALL"

// Options configures analysis behavior.
type Options struct {
	// Sheet is the preferred sheet name. The first sheet is used when it is
	// empty or missing from the workbook.
	Sheet string
	// Workers is the number of goroutines inferring blocks. Values below 2
	// run sequentially.
	Workers int
	// PricePolicy decides which price a repeated labor code keeps.
	PricePolicy parser.PricePolicy
	// Logger receives progress and warnings. If nil, logging is disabled.
	Logger *zap.Logger
}

// DefaultOptions returns default analysis options.
func DefaultOptions() Options {
	return Options{
		Sheet:       DefaultSheet,
		Workers:     1,
		PricePolicy: parser.PriceLastWins,
	}
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}
