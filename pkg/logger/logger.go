// Package logger provides the process-wide zap logger. A TUI owns
// stdout, so logs go to a file when one is configured and are dropped
// otherwise.
package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var global *zap.Logger

// Init initializes the global logger. An empty logFile installs a no-op
// logger; the terminal is reserved for the interface.
func Init(logLevel, logFile string) error {
	if logFile == "" {
		global = zap.NewNop()
		return nil
	}

	var level zapcore.Level
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		level = zapcore.DebugLevel
	case "WARN":
		level = zapcore.WarnLevel
	case "ERROR":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	cfg := zap.Config{
		Level:       zap.NewAtomicLevelAt(level),
		Development: false,
		Encoding:    "console",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "timestamp",
			LevelKey:       "level",
			MessageKey:     "message",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.SecondsDurationEncoder,
		},
		OutputPaths:      []string{logFile},
		ErrorOutputPaths: []string{logFile},
	}
	logger, err := cfg.Build()
	if err != nil {
		return err
	}
	global = logger
	return nil
}

// L returns the global logger, initializing a no-op one if needed.
func L() *zap.Logger {
	if global == nil {
		global = zap.NewNop()
	}
	return global
}

// Sync flushes any buffered log entries.
func Sync() error {
	if global != nil {
		return global.Sync()
	}
	return nil
}
