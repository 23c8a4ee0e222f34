// Package telemetry owns the shared structured logger and the prometheus
// collectors for the scoring pipeline.
package telemetry

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the process-wide structured logger, set by InitLogger.
var Logger *zap.Logger

// InitLogger builds the zap logger. Development mode uses the console
// encoder; anything else uses production JSON with ISO8601 timestamps.
func InitLogger(env, level string) error {
	var config zap.Config
	if env == "development" {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
		config.EncoderConfig.TimeKey = "timestamp"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	if level != "" {
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return fmt.Errorf("parse log level %q: %w", level, err)
		}
		config.Level = zap.NewAtomicLevelAt(lvl)
	}

	var err error
	Logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	return nil
}

// Sync flushes buffered log entries. Call on shutdown.
func Sync() {
	if Logger != nil {
		_ = Logger.Sync()
	}
}
