// Package logging wraps charmbracelet/log with the settings the puzzle tools share.
package logging

import (
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/log"
)

var defaultLogger atomic.Pointer[log.Logger]

func getDefaultLogger() *log.Logger {
	if l := defaultLogger.Load(); l != nil {
		return l
	}
	// Losing the race is fine; whichever logger landed first wins.
	defaultLogger.CompareAndSwap(nil, New(os.Getenv("LOG_LEVEL")))
	return defaultLogger.Load()
}

// New returns a stderr logger at the given level. Unknown levels mean info.
func New(level string) *log.Logger {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter is New with a caller-supplied destination.
func NewWithWriter(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "puz",
	})
	logger.SetLevel(parseLevel(level))
	return logger
}

func parseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

func Default() *log.Logger {
	return getDefaultLogger()
}

func SetDefault(logger *log.Logger) {
	defaultLogger.Store(logger)
}

// SetLevel changes the level of the default logger.
func SetLevel(level string) {
	getDefaultLogger().SetLevel(parseLevel(level))
}
