package util

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerLevels(t *testing.T) {
	tests := []struct {
		verbosity int
		logf      func(*Logger)
		want      bool // message present in output
	}{
		{0, func(l *Logger) { l.Info("hello") }, false},
		{1, func(l *Logger) { l.Info("hello") }, true},
		{1, func(l *Logger) { l.Verbose("hello") }, false},
		{2, func(l *Logger) { l.Verbose("hello") }, true},
		{2, func(l *Logger) { l.Debug("hello") }, false},
		{3, func(l *Logger) { l.Debug("hello") }, true},
		{0, func(l *Logger) { l.Error("hello") }, true}, // errors always print
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		l := NewLogger(tt.verbosity)
		l.SetOutput(&buf)
		l.SetTimestamps(false)
		tt.logf(l)

		got := strings.Contains(buf.String(), "hello")
		if got != tt.want {
			t.Errorf("verbosity %d: message present = %v, want %v (output %q)",
				tt.verbosity, got, tt.want, buf.String())
		}
	}
}

func TestLoggerPrefixes(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(1)
	l.SetOutput(&buf)
	l.SetTimestamps(false)

	l.Warn("watch out")
	if !strings.Contains(buf.String(), "[WRN] watch out") {
		t.Errorf("missing level prefix: %q", buf.String())
	}
}

func TestLoggerScopedPrefix(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(1)
	l.SetOutput(&buf)
	l.SetTimestamps(false)

	s := l.Prefixed("session ab12cd34")
	s.Info("created")
	if !strings.Contains(buf.String(), "session ab12cd34: created") {
		t.Errorf("missing scope prefix: %q", buf.String())
	}

	// Nested prefixes chain.
	buf.Reset()
	s.Prefixed("dispatch").Info("ok")
	if !strings.Contains(buf.String(), "session ab12cd34 dispatch: ok") {
		t.Errorf("missing chained prefix: %q", buf.String())
	}
}

func TestLoggerTimestamps(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(1)
	l.SetOutput(&buf)
	l.SetTimestamps(true)

	l.Info("stamped")
	// HH:MM:SS.mmm; check for the two colons before the level tag.
	line := buf.String()
	if !strings.Contains(line, "[INF]") || strings.HasPrefix(line, "[INF]") {
		t.Errorf("expected timestamp before level tag: %q", line)
	}
}
