package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stdout)
	defer SetLevel(Notice)

	logger := New("test")
	SetLevel(Notice)
	logger.Debug("hidden-debug")
	logger.Notice("visible-notice")

	out := buf.String()
	if strings.Contains(out, "hidden-debug") {
		t.Fatalf("expected debug message to be filtered; got %q", out)
	}
	if !strings.Contains(out, "visible-notice") || !strings.Contains(out, "[test]") {
		t.Fatalf("expected notice message tagged with the module name; got %q", out)
	}

	buf.Reset()
	SetLevel(Debug)
	logger.Debugf("shown-%d", 42)
	if !strings.Contains(buf.String(), "shown-42") {
		t.Fatalf("expected debug message after raising verbosity; got %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	type spec struct {
		name   string
		exp    Level
		expErr bool
	}
	specs := []spec{
		{"debug", Debug, false},
		{"INFO", Info, false},
		{"notice", Notice, false},
		{"warn", Warning, false},
		{"error", Error, false},
		{"loud", Notice, true},
	}

	for index, s := range specs {
		level, err := ParseLevel(s.name)
		if (err != nil) != s.expErr {
			t.Fatalf("[spec %d] expected error to be %t; got %v", index, s.expErr, err)
		}
		if level != s.exp {
			t.Fatalf("[spec %d] expected level %d; got %d", index, s.exp, level)
		}
	}
}
