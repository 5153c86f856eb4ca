// Package main provides the CLI entry point for bluebook.
package main

import (
	"fmt"
	"os"

	"github.com/samskrta/bluebookCounterUpper/internal/config"
	"github.com/samskrta/bluebookCounterUpper/internal/logging"
	"github.com/samskrta/bluebookCounterUpper/pkg/bluebook"
	"github.com/samskrta/bluebookCounterUpper/pkg/bluebook/output"
	"github.com/samskrta/bluebookCounterUpper/pkg/bluebook/parser"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	configPath  string
	sheet       string
	outDir      string
	logLevel    string
	verbose     bool
	workers     int
	openOutput  bool
	pricePolicy string
	xlsxPath    string
	metricsFile string
	csvPath     string

	cfg    *config.Config
	logger *zap.Logger
	opener output.Opener = output.SystemOpener{}
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bluebook",
		Short: "Count Blue Book quotes and detect labor price changes",
		Long: `bluebook reads a Blue Book report export (.xlsx), splits it into quotes
per technician and infers from cell comments whether labor prices were changed.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Config file path (default: "+config.DefaultPath+" if present)")
	flags.StringVar(&sheet, "sheet", bluebook.DefaultSheet, "Sheet name (first sheet if not found)")
	flags.StringVarP(&outDir, "out-dir", "o", "", "Directory for CSV output (default: next to input)")
	flags.StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	flags.IntVar(&workers, "workers", 1, "Concurrent inference workers")
	flags.BoolVar(&openOutput, "open", true, "Open the counts CSV with the default application")
	flags.StringVar(&pricePolicy, "price-policy", string(parser.PriceLastWins), "Price kept for repeated labor codes: last, first")

	rootCmd.AddCommand(newCountCommand())
	rootCmd.AddCommand(newAnalyzeCommand())
	rootCmd.AddCommand(newCodesCommand())
	return rootCmd
}

// setup loads the config, applies explicitly set flags over it and builds
// the logger.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("sheet") {
		cfg.Sheet = sheet
	}
	if flags.Changed("out-dir") {
		cfg.OutDir = outDir
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = logLevel
	}
	if verbose {
		cfg.Logging.Level = zapcore.DebugLevel.String()
	}
	if flags.Changed("workers") {
		cfg.Workers = workers
	}
	if flags.Changed("open") {
		cfg.Open = openOutput
	}
	if flags.Changed("price-policy") {
		cfg.PricePolicy = pricePolicy
	}
	if flags.Changed("xlsx") {
		cfg.XLSX = xlsxPath
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile = metricsFile
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	logger, err = logging.New(cfg.Logging)
	return err
}

// fileOpener returns the opener for written files, or a no-op one when
// opening is disabled.
func fileOpener() output.Opener {
	if !cfg.Open {
		return output.NopOpener{}
	}
	return opener
}

// analyzeOptions builds analysis options from the effective config.
func analyzeOptions() (bluebook.Options, error) {
	policy, err := parser.ParsePricePolicy(cfg.PricePolicy)
	if err != nil {
		return bluebook.Options{}, err
	}
	opts := bluebook.DefaultOptions()
	opts.Sheet = cfg.Sheet
	opts.Workers = cfg.Workers
	opts.PricePolicy = policy
	opts.Logger = logger
	return opts, nil
}
