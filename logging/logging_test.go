package logging

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestForTagsComponent(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	log := For("test_component")
	log.Info("hello")

	out := buf.String()
	if !strings.Contains(out, "test_component") {
		t.Errorf("log output missing component tag: %q", out)
	}
	if !strings.Contains(out, "hello") {
		t.Errorf("log output missing message: %q", out)
	}
}

func TestForReturnsIndependentLoggers(t *testing.T) {
	a := For("a")
	b := For("b")

	if a == b {
		t.Error("loggers for different components should not be the same value")
	}
}
