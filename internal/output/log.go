// Package output provides terminal output utilities for the mcpstack-tool CLI.
package output

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// logger is the shared logger. Commands reach it through the package-level
// helpers or through ScopedLogger.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
	ReportCaller:    false,
})

// LogConfig controls logger construction.
type LogConfig struct {
	// Verbose enables debug output, caller reporting and forces timestamps on.
	Verbose bool

	// Timestamps overrides the timestamp default when non-nil.
	Timestamps *bool

	// Writer receives log output. Defaults to os.Stderr.
	Writer io.Writer
}

func (c LogConfig) timestamps() bool {
	if c.Verbose {
		return true
	}
	if c.Timestamps != nil {
		return *c.Timestamps
	}
	return false
}

// SetupLogging configures the shared logger.
func SetupLogging(cfg LogConfig) {
	level := log.InfoLevel
	if cfg.Verbose {
		level = log.DebugLevel
	}

	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}

	logger = log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: cfg.timestamps(),
		ReportCaller:    cfg.Verbose,
		TimeFormat:      "15:04:05",
	})
}

// Logger returns the shared logger.
func Logger() *log.Logger {
	return logger
}

// ScopedLogger returns a child logger whose lines carry the given scope as
// prefix, e.g. "apply" or "reset".
func ScopedLogger(scope string) *log.Logger {
	return logger.WithPrefix(StyleDim.Render("m:") + StyleNoun.Render(scope))
}

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool {
	return &b
}

// Debug logs a debug message.
func Debug(msg string, keyvals ...interface{}) {
	logger.Debug(msg, keyvals...)
}

// Info logs an info message.
func Info(msg string, keyvals ...interface{}) {
	logger.Info(msg, keyvals...)
}

// Warn logs a warning message.
func Warn(msg string, keyvals ...interface{}) {
	logger.Warn(msg, keyvals...)
}

// Error logs an error message.
func Error(msg string, keyvals ...interface{}) {
	logger.Error(msg, keyvals...)
}
