// Package output provides terminal output utilities for the blockui CLI.
package output

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// logger is the package-level logger. Commands log through the helpers below.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
	ReportCaller:    false,
})

// stdout is where user-facing results are printed.
var stdout io.Writer = os.Stdout

// logOutput is where the logger writes.
var logOutput io.Writer = os.Stderr

// LogConfig controls logger setup.
type LogConfig struct {
	// Verbose enables debug level, caller reporting and forces timestamps on.
	Verbose bool

	// Timestamps toggles timestamps. nil means the default (off).
	Timestamps *bool
}

// SetupLogging configures the logger based on verbosity and timestamp settings.
func SetupLogging(cfg LogConfig) {
	level := log.InfoLevel
	if cfg.Verbose {
		level = log.DebugLevel
	}

	timestamps := false
	if cfg.Timestamps != nil {
		timestamps = *cfg.Timestamps
	}
	if cfg.Verbose {
		timestamps = true
	}

	logger = log.NewWithOptions(logOutput, log.Options{
		Level:           level,
		ReportTimestamp: timestamps,
		ReportCaller:    cfg.Verbose,
		TimeFormat:      "15:04:05",
	})
}

// SetOutput redirects user-facing output. Tests use it to capture results.
func SetOutput(w io.Writer) {
	stdout = w
}

// SetLogOutput redirects log output, including for later SetupLogging calls.
func SetLogOutput(w io.Writer) {
	logOutput = w
	logger.SetOutput(w)
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

// Print prints a message to stdout without any formatting.
func Print(msg string) {
	_, _ = io.WriteString(stdout, msg)
}

// Println prints a message to stdout with a newline.
func Println(msg string) {
	_, _ = io.WriteString(stdout, msg+"\n")
}

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool {
	return &b
}
