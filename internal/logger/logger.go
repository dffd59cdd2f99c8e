package logger

import (
	"io"
	"os"
	"strings"

	"github.com/pterm/pterm"
)

// New returns a pterm logger writing to stderr at the given level.
// Unknown levels fall back to info.
func New(level string) *pterm.Logger {
	return pterm.DefaultLogger.
		WithWriter(os.Stderr).
		WithLevel(ParseLevel(level))
}

// Discard returns a logger that drops everything, used by tests.
func Discard() *pterm.Logger {
	return pterm.DefaultLogger.
		WithWriter(io.Discard).
		WithLevel(pterm.LogLevelDisabled)
}

func ParseLevel(level string) pterm.LogLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return pterm.LogLevelTrace
	case "debug":
		return pterm.LogLevelDebug
	case "warn", "warning":
		return pterm.LogLevelWarn
	case "error":
		return pterm.LogLevelError
	case "off", "disabled", "none":
		return pterm.LogLevelDisabled
	default:
		return pterm.LogLevelInfo
	}
}
