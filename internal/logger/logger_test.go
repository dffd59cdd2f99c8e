package logger

import (
	"testing"

	"github.com/pterm/pterm"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]pterm.LogLevel{
		"debug":   pterm.LogLevelDebug,
		"DEBUG":   pterm.LogLevelDebug,
		"warn":    pterm.LogLevelWarn,
		"warning": pterm.LogLevelWarn,
		"error":   pterm.LogLevelError,
		"off":     pterm.LogLevelDisabled,
		"info":    pterm.LogLevelInfo,
		"":        pterm.LogLevelInfo,
		"verbose": pterm.LogLevelInfo,
	}

	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
