package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewWithConfigFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithConfig(&buf, "trie", log.WarnLevel, false, false)

	l.Info("hidden")
	l.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info line leaked through warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "trie") {
		t.Errorf("expected prefixed warn line, got %q", out)
	}
}

func TestSetup(t *testing.T) {
	defer log.SetLevel(log.GetLevel())

	Setup(true)
	if log.GetLevel() != log.DebugLevel {
		t.Errorf("expected debug level, got %v", log.GetLevel())
	}
	Setup(false)
	if log.GetLevel() != log.WarnLevel {
		t.Errorf("expected warn level, got %v", log.GetLevel())
	}
}
