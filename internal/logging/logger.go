package logging

import (
	"fmt"
	"strings"

	"helmdeploy/internal/ports"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LevelKey is the configuration key holding the log level.
const LevelKey = "log-level"

// New returns a console logger writing to stderr at the given level.
func New(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	var zapLevel zapcore.Level
	switch strings.ToLower(level) {
	case "debug":
		cfg.Development = true
		zapLevel = zapcore.DebugLevel
	case "info", "":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("unknown log level %q (expected debug, info, warn, or error)", level)
	}
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	cfg.Sampling = nil
	return cfg.Build()
}

// ProvideLogger builds the logger from the LOG_LEVEL setting.
func ProvideLogger(environment ports.Environment) (*zap.Logger, error) {
	return New(environment.GetString(LevelKey))
}
