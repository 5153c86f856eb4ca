// Package config loads bluebook settings from a YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file read when no path is given.
const DefaultPath = "bluebook.yaml"

// EnvPrefix prefixes every environment override (BLUEBOOK_SHEET, ...).
const EnvPrefix = "BLUEBOOK"

// Config holds all bluebook configuration.
type Config struct {
	// Sheet is the preferred sheet name.
	Sheet string `yaml:"sheet" envconfig:"SHEET"`
	// OutDir is where CSV tables are written. Empty means next to the input.
	OutDir string `yaml:"out_dir" envconfig:"OUT_DIR"`
	// Open opens the counts CSV with the default application after writing.
	Open bool `yaml:"open" envconfig:"OPEN"`
	// Workers is the number of concurrent inference workers.
	Workers int `yaml:"workers" envconfig:"WORKERS"`
	// PricePolicy is "last" or "first".
	PricePolicy string `yaml:"price_policy" envconfig:"PRICE_POLICY"`
	// XLSX also writes all tables to one workbook at this path.
	XLSX string `yaml:"xlsx" envconfig:"XLSX"`
	// MetricsFile receives run metrics in Prometheus textfile format.
	MetricsFile string `yaml:"metrics_file" envconfig:"METRICS_FILE"`

	Logging LoggingConfig `yaml:"logging" envconfig:"LOG"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level       string `yaml:"level" envconfig:"LEVEL"`
	Format      string `yaml:"format" envconfig:"FORMAT"` // console, json
	Development bool   `yaml:"development" envconfig:"DEVELOPMENT"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Sheet:       "ALL",
		Open:        true,
		Workers:     1,
		PricePolicy: "last",
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// Load reads path (DefaultPath when empty) over the defaults, then applies
// environment overrides. A missing DefaultPath is not an error; a missing
// explicit path is. The result is not validated so callers can layer flags
// on top before calling Validate.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	return cfg, nil
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	switch c.PricePolicy {
	case "last", "first":
	default:
		return fmt.Errorf("invalid price_policy: %q (must be last or first)", c.PricePolicy)
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log format: %q", c.Logging.Format)
	}
	return nil
}
