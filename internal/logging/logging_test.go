package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
		ok   bool
	}{
		{"ERROR", LevelError, true},
		{"warn", LevelWarn, true},
		{" Info ", LevelInfo, true},
		{"DEBUG", LevelDebug, true},
		{"", LevelInfo, false},
		{"verbose", LevelInfo, false},
	}
	for _, tt := range tests {
		got, ok := ParseLevel(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelWarn)

	l.Debug("debug %d", 1)
	l.Info("info %d", 2)
	l.Warn("warn %d", 3)
	l.Error("error %d", 4)

	out := buf.String()
	if strings.Contains(out, "debug 1") || strings.Contains(out, "info 2") {
		t.Errorf("messages below WARN should be dropped, got %q", out)
	}
	if !strings.Contains(out, "[WARN] warn 3") || !strings.Contains(out, "[ERROR] error 4") {
		t.Errorf("missing WARN or ERROR output: %q", out)
	}
}

func TestNewDefaultReadsEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "DEBUG")
	if got := NewDefault("ERROR").Level(); got != LevelDebug {
		t.Errorf("level = %v, want DEBUG", got)
	}

	t.Setenv("LOG_LEVEL", "")
	if got := NewDefault("warn").Level(); got != LevelWarn {
		t.Errorf("level = %v, want WARN", got)
	}
}

func TestNilLogger(t *testing.T) {
	var l *Logger
	l.Info("nothing to see")
}
