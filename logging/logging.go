// Package logging builds the zap loggers used by the batch runner and the CLI.
//
// The solver package itself never logs; only the glue around it does.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds logging configuration.
type Config struct {
	Level     string `yaml:"level"`  // "debug", "info", "warn" or "error"
	Format    string `yaml:"format"` // "json" or "console"
	Output    string `yaml:"output"` // "stdout", "stderr" or a file path
	AddCaller bool   `yaml:"add_caller"`
	AddStack  bool   `yaml:"add_stack"`
}

// DefaultConfig logs info and above as console text to stderr, leaving
// stdout to the run summary.
func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: "console",
		Output: "stderr",
	}
}

// New creates a zap logger from cfg. Empty fields take DefaultConfig values.
func New(cfg Config) (*zap.Logger, error) {
	def := DefaultConfig()
	if cfg.Level == "" {
		cfg.Level = def.Level
	}
	if cfg.Format == "" {
		cfg.Format = def.Format
	}
	if cfg.Output == "" {
		cfg.Output = def.Output
	}

	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	if cfg.Format != "json" && cfg.Format != "console" {
		return nil, fmt.Errorf("logging: unknown format %q", cfg.Format)
	}

	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(level)
	zapConfig.Encoding = cfg.Format
	zapConfig.OutputPaths = []string{cfg.Output}
	zapConfig.ErrorOutputPaths = []string{cfg.Output}
	zapConfig.DisableCaller = !cfg.AddCaller
	zapConfig.DisableStacktrace = !cfg.AddStack
	zapConfig.Sampling = nil
	if cfg.Format == "console" {
		zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("logging: build logger: %w", err)
	}

	return logger, nil
}

// ParseLevel maps a level name to its zap level.
func ParseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info", "":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("logging: unknown level %q", level)
	}
}
