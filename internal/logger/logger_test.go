package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want log.Level
	}{
		{"debug", log.DebugLevel},
		{"DEBUG", log.DebugLevel},
		{"warn", log.WarnLevel},
		{"warning", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"", log.InfoLevel},
		{"verbose", log.InfoLevel},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestConfigureFiltersDebug(t *testing.T) {
	orig := Logger
	t.Cleanup(func() { Logger = orig })

	var buf bytes.Buffer
	SetOutput(&buf)

	Configure("info")
	Debug("hidden", "provider", "openai")
	if buf.Len() != 0 {
		t.Fatalf("debug output written at info level: %q", buf.String())
	}

	Configure("debug")
	Debug("shown", "provider", "openai")
	if !strings.Contains(buf.String(), "provider=openai") {
		t.Errorf("debug output missing key-value pair: %q", buf.String())
	}
}
