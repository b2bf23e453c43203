// Package logger builds charmbracelet/log loggers for the binaries. Everything
// goes to stderr; stdout is reserved for the msgpack channel.
package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New creates a charm logger that follows the global log level.
func New(prefix string) *log.Logger {
	return NewWithConfig(os.Stderr, prefix, log.GetLevel(), false, true)
}

// NewWithConfig creates a charm logger with explicit options.
func NewWithConfig(w io.Writer, prefix string, level log.Level, caller bool, showTimestamp bool) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		Level:           level,
		ReportCaller:    caller,
		ReportTimestamp: showTimestamp,
		Formatter:       log.TextFormatter,
	})
}

// Setup replaces the package-level default logger. Debug mode lowers the
// level and reports callers.
func Setup(debug bool) {
	level := log.WarnLevel
	if debug {
		level = log.DebugLevel
	}
	log.SetDefault(NewWithConfig(os.Stderr, "", level, debug, debug))
}
