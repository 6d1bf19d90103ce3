// Package logging builds the application logger.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/javiermolinar/classgrid/internal/config"
)

// New returns a JSON logger writing to cfg.File when debug logging is
// enabled, and a no-op logger otherwise.
func New(cfg config.LogConfig) (*zap.Logger, error) {
	if !cfg.Debug {
		return zap.NewNop(), nil
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	zc.Sampling = nil
	zc.OutputPaths = []string{cfg.File}
	zc.ErrorOutputPaths = []string{cfg.File}
	zc.EncoderConfig.TimeKey = "ts"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("creating debug log: %w", err)
	}
	return logger, nil
}
