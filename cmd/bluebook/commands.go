package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/samskrta/bluebookCounterUpper/internal/metrics"
	"github.com/samskrta/bluebookCounterUpper/pkg/bluebook"
	"github.com/samskrta/bluebookCounterUpper/pkg/bluebook/models"
	"github.com/samskrta/bluebookCounterUpper/pkg/bluebook/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newCountCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count [input.xlsx]",
		Short: "Count quotes per technician",
		Args:  cobra.ExactArgs(1),
		RunE:  runCount,
	}
	cmd.Flags().StringVar(&csvPath, "csv", "", "Write the counts CSV to this path instead of the output directory")
	return cmd
}

func newAnalyzeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [input.xlsx]",
		Short: "Count quotes and infer labor price modifications",
		Args:  cobra.ExactArgs(1),
		RunE:  runAnalyze,
	}
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Also write all tables to this xlsx file")
	cmd.Flags().StringVar(&metricsFile, "metrics-file", "", "Write run metrics in Prometheus textfile format")
	return cmd
}

func newCodesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "codes [input.xlsx]",
		Short: "Print the labor code price table",
		Args:  cobra.ExactArgs(1),
		RunE:  runCodes,
	}
}

func loadReport(cmd *cobra.Command, inputPath string) (*models.Report, error) {
	opts, err := analyzeOptions()
	if err != nil {
		return nil, err
	}
	report, err := bluebook.Analyze(cmd.Context(), inputPath, opts)
	if err != nil {
		return nil, fmt.Errorf("analysis failed: %w", err)
	}
	return report, nil
}

// outputLocation returns the directory and file stem for the tables of inputPath.
func outputLocation(inputPath string) (string, string) {
	dir := cfg.OutDir
	if dir == "" {
		dir = filepath.Dir(inputPath)
	}
	stem := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	return dir, stem
}

func openBestEffort(path string) {
	if err := fileOpener().Open(path); err != nil {
		logger.Warn("Could not open output", zap.String("path", path), zap.Error(err))
	}
}

func runCount(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	report, err := loadReport(cmd, inputPath)
	if err != nil {
		return err
	}

	counts := output.CountsTable(report)
	if err := output.Print(cmd.OutOrStdout(), counts); err != nil {
		return fmt.Errorf("failed to print counts: %w", err)
	}

	path := csvPath
	if path == "" {
		dir, stem := outputLocation(inputPath)
		path = output.CSVPath(dir, stem, counts.Name)
	}
	if err := output.WriteCSV(path, counts); err != nil {
		return &output.TableError{Table: counts.Name, Path: path, Err: err}
	}
	logger.Info("Counts written", zap.String("path", path))
	openBestEffort(path)
	return nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	report, err := loadReport(cmd, inputPath)
	if err != nil {
		return err
	}

	tables := output.Tables(report)
	var errs []error

	dir, stem := outputLocation(inputPath)
	written, writeErr := output.WriteAll(dir, stem, tables)
	if writeErr != nil {
		logger.Error("Some tables were not written", zap.Error(writeErr))
		errs = append(errs, writeErr)
	}
	for _, p := range written {
		logger.Info("Table written", zap.String("path", p))
	}

	if cfg.XLSX != "" {
		if err := output.WriteWorkbook(cfg.XLSX, tables); err != nil {
			logger.Error("Workbook not written", zap.String("path", cfg.XLSX), zap.Error(err))
			errs = append(errs, fmt.Errorf("failed to write workbook: %w", err))
		}
	}

	if cfg.MetricsFile != "" {
		rec := metrics.NewRecorder()
		rec.Observe(report)
		if err := rec.WriteTextfile(cfg.MetricsFile); err != nil {
			logger.Error("Metrics not written", zap.String("path", cfg.MetricsFile), zap.Error(err))
			errs = append(errs, fmt.Errorf("failed to write metrics: %w", err))
		}
	}

	out := cmd.OutOrStdout()
	if err := output.Print(out, tables[0]); err != nil {
		errs = append(errs, err)
	}
	fmt.Fprintln(out)
	if err := output.Print(out, tables[2]); err != nil {
		errs = append(errs, err)
	}

	countsPath := output.CSVPath(dir, stem, output.TableCounts)
	for _, p := range written {
		if p == countsPath {
			openBestEffort(p)
		}
	}
	return errors.Join(errs...)
}

func runCodes(cmd *cobra.Command, args []string) error {
	report, err := loadReport(cmd, args[0])
	if err != nil {
		return err
	}

	codes := make([]string, 0, len(report.Prices))
	for code := range report.Prices {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	t := output.Table{Name: "codes", Header: []string{"Code", "Price"}}
	for _, code := range codes {
		t.Rows = append(t.Rows, []string{code, strconv.FormatFloat(report.Prices[code], 'f', 2, 64)})
	}
	out := cmd.OutOrStdout()
	if err := output.Print(out, t); err != nil {
		return err
	}

	if len(report.Conflicts) == 0 {
		return nil
	}
	conflicts := output.Table{Name: "conflicts", Header: []string{"Code", "Kept", "Discarded", "Cell"}}
	for _, c := range report.Conflicts {
		conflicts.Rows = append(conflicts.Rows, []string{
			c.Code,
			strconv.FormatFloat(c.Kept, 'f', 2, 64),
			strconv.FormatFloat(c.Discarded, 'f', 2, 64),
			c.Cell,
		})
	}
	fmt.Fprintln(out)
	return output.Print(out, conflicts)
}
