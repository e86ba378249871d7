// ABOUTME: Leveled logger construction shared by the CLI, servers, and storage layers
// ABOUTME: Wraps charmbracelet/log with the carenotes prefix and level parsing
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Prefix is printed before every log line
const Prefix = "carenotes"

// New builds a logger writing to w at the named level.
// Unknown levels fall back to info.
func New(level string, w io.Writer) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          Prefix,
		ReportTimestamp: lvl == log.DebugLevel,
	})
}

// Discard returns a logger that drops everything
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

// OrDefault returns l, or the package default logger when l is nil
func OrDefault(l *log.Logger) *log.Logger {
	if l == nil {
		return log.Default()
	}
	return l
}

// LevelFromFlags resolves the effective level from configuration and CLI flags
func LevelFromFlags(configured string, verbose, quiet bool) string {
	switch {
	case verbose:
		return "debug"
	case quiet:
		return "error"
	}
	return configured
}
