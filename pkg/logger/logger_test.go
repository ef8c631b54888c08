package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]LogLevel{
		"debug":   DEBUG,
		"INFO":    INFO,
		"warning": WARN,
		"Error":   ERROR,
		"":        INFO,
		"verbose": INFO,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestLoggerFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "WARN")

	l.Debugf("debug %d", 1)
	l.Printf("info %d", 2)
	l.Warnf("warn %d", 3)
	l.Errorf("error %d", 4)

	out := buf.String()
	if strings.Contains(out, "debug 1") || strings.Contains(out, "info 2") {
		t.Fatalf("messages below WARN were written: %q", out)
	}
	if !strings.Contains(out, "warn 3") || !strings.Contains(out, "error 4") {
		t.Fatalf("expected warn and error output, got %q", out)
	}
}

func TestNilLoggerIsSilent(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("nil logger panicked: %v", r)
		}
	}()

	var l *Logger
	l.Println("nothing here")
	l.Printf("nothing %s", "here")
	l.Warnf("nothing %s", "here")
	l.Error("nothing here")
	l.Errorf("nothing %s", "here")
	l.Debug("nothing here")
	l.Debugf("nothing %s", "here")
	if l.Level() != ERROR {
		t.Errorf("nil logger Level() = %d, want ERROR", l.Level())
	}
}

func TestLoggerRoutesLevelsToPrefixes(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "DEBUG")

	l.Debug("d")
	l.Println("i")
	l.Warnf("w")
	l.Error("e")

	out := buf.String()
	for _, prefix := range []string{"DEBUG: ", "INFO: ", "WARN: ", "ERROR: "} {
		if !strings.Contains(out, prefix) {
			t.Errorf("output %q lacks prefix %q", out, prefix)
		}
	}
}
