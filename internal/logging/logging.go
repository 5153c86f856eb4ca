// Package logging builds the zap logger used by the bluebook CLI.
package logging

import (
	"github.com/google/uuid"
	"github.com/samskrta/bluebookCounterUpper/internal/config"
	"go.uber.org/zap"
)

// New creates a logger writing to stderr so that stdout stays reserved for
// report tables. Every entry carries a run_id.
func New(cfg config.LoggingConfig) (*zap.Logger, error) {
	var zapConfig zap.Config
	if cfg.Development {
		zapConfig = zap.NewDevelopmentConfig()
	} else {
		zapConfig = zap.NewProductionConfig()
	}

	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	zapConfig.Level = level

	if cfg.Format == "json" {
		zapConfig.Encoding = "json"
	} else {
		zapConfig.Encoding = "console"
	}
	zapConfig.OutputPaths = []string{"stderr"}
	zapConfig.ErrorOutputPaths = []string{"stderr"}

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, err
	}
	return logger.With(zap.String("run_id", uuid.NewString())), nil
}
