package bluebook

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/samskrta/bluebookCounterUpper/pkg/bluebook/analysis"
	"github.com/samskrta/bluebookCounterUpper/pkg/bluebook/models"
	"github.com/samskrta/bluebookCounterUpper/pkg/bluebook/parser"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// OpenSheet loads one sheet of an xlsx file. If sheetHint does not name a
// sheet in the workbook, the first sheet is used.
func OpenSheet(path, sheetHint string, logger *zap.Logger) (*models.Sheet, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, NewExtractionError(path, "", ErrFileNotFound)
		}
		return nil, NewExtractionError(path, "", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, NewExtractionError(path, "", fmt.Errorf("%w: %v", ErrInvalidFormat, err))
	}
	defer f.Close()

	sheetList := f.GetSheetList()
	if len(sheetList) == 0 {
		return nil, NewExtractionError(path, "", ErrNoSheets)
	}

	sheetName := sheetList[0]
	found := false
	for _, name := range sheetList {
		if name == sheetHint {
			sheetName = name
			found = true
			break
		}
	}
	if !found && sheetHint != "" {
		logger.Warn("Sheet not found, using first sheet",
			zap.String("requested", sheetHint),
			zap.String("sheet", sheetName))
	}

	sheet, err := parser.ExtractGrid(f, sheetName)
	if err != nil {
		return nil, NewExtractionError(path, sheetName, err)
	}
	logger.Debug("Sheet loaded",
		zap.String("sheet", sheetName),
		zap.Int("rows", len(sheet.Data)))
	return sheet, nil
}

// Analyze loads the sheet at path and analyzes it.
func Analyze(ctx context.Context, path string, opts Options) (*models.Report, error) {
	sheet, err := OpenSheet(path, opts.Sheet, opts.Logger)
	if err != nil {
		return nil, err
	}

	report, err := AnalyzeGrid(ctx, sheet, opts)
	if err != nil {
		return nil, err
	}
	report.BookName = filepath.Base(path)
	report.SheetName = sheet.Name
	return report, nil
}

// AnalyzeGrid locates the header columns, builds the labor price table,
// segments the grid into quote blocks and infers a modification record for
// each block.
func AnalyzeGrid(ctx context.Context, grid models.Grid, opts Options) (*models.Report, error) {
	logger := opts.logger()

	cols := parser.LocateColumns(grid)
	logger.Debug("Columns located",
		zap.Int("tag", cols.Tag),
		zap.Int("summary_labor", cols.SummaryLabor),
		zap.Int("detail_labor", cols.DetailLabor))

	prices, conflicts := parser.BuildPriceTable(grid, opts.PricePolicy)
	for _, c := range conflicts {
		logger.Warn("Conflicting labor code price",
			zap.String("code", c.Code),
			zap.Float64("kept", c.Kept),
			zap.Float64("discarded", c.Discarded),
			zap.String("cell", c.Cell))
	}

	blocks := parser.SegmentBlocks(grid, cols.Tag)
	records, err := analysis.InferAll(ctx, blocks, cols, prices, opts.Workers)
	if err != nil {
		return nil, fmt.Errorf("inference failed: %w", err)
	}

	report := &models.Report{
		Columns:   cols,
		Prices:    prices,
		Conflicts: conflicts,
		Blocks:    blocks,
		Records:   records,
		Counts:    analysis.CountQuotes(blocks),
		Summaries: analysis.Summarize(records),
	}
	if sheet, ok := grid.(*models.Sheet); ok {
		report.SheetName = sheet.Name
	}

	logger.Info("Sheet analyzed",
		zap.Int("blocks", len(blocks)),
		zap.Int("technicians", len(report.Counts)),
		zap.Int("labor_codes", len(prices)))
	return report, nil
}
