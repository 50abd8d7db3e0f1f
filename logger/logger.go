// SPDX-License-Identifier: MIT

// Package logger owns the process-wide zap logger used by the lvbrain CLI.
// Library packages never read it; they receive a *zap.Logger through options.
package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Logger is the global sugared logger. It is a no-op until Initialize.
	Logger *zap.SugaredLogger
	// JSONOutput records whether Initialize selected JSON encoding.
	JSONOutput bool
)

func init() {
	Logger = zap.NewNop().Sugar()
}

// Initialize replaces the global logger. Console output is human readable
// and goes to stderr so stdout stays free for command results.
func Initialize(jsonOutput bool, level string) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	l, err := New(jsonOutput, lvl)
	if err != nil {
		return err
	}
	JSONOutput = jsonOutput
	Logger = l.Sugar()

	return nil
}

// New builds a logger without touching the global one.
func New(jsonOutput bool, lvl zapcore.Level) (*zap.Logger, error) {
	if jsonOutput {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(lvl)
		cfg.OutputPaths = []string{"stderr"}
		return cfg.Build()
	}

	enc := zap.NewDevelopmentEncoderConfig()
	enc.EncodeLevel = zapcore.CapitalColorLevelEncoder
	enc.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")

	return zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(enc),
		zapcore.AddSync(os.Stderr),
		lvl,
	)), nil
}

// ParseLevel accepts zap level names; "" means warn.
func ParseLevel(s string) (zapcore.Level, error) {
	if strings.TrimSpace(s) == "" {
		return zapcore.WarnLevel, nil
	}
	return zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
}

// VerbosityToLevel maps a repeated -v flag count to a level:
// 0 warn, 1 info, 2 or more debug.
func VerbosityToLevel(verbosity int) zapcore.Level {
	switch {
	case verbosity <= 0:
		return zapcore.WarnLevel
	case verbosity == 1:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

// Zap returns the desugared global logger for library options.
func Zap() *zap.Logger { return Logger.Desugar() }

// Sync flushes the global logger; errors from syncing a terminal are ignored.
func Sync() { _ = Logger.Sync() }
