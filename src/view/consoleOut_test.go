package view

import (
	"bytes"
	"strings"
	"testing"
)

func TestConsoleOutProgressLine(t *testing.T) {
	var buf bytes.Buffer
	r := NewRunner(newTestOptions(), nil)
	c := &ConsoleOut{out: &buf}
	c.Register(r)
	if !strings.Contains(buf.String(), "Running configuration:") {
		t.Fatalf("register printed %q", buf.String())
	}
	buf.Reset()

	// a refresh before the first step must not report progress, even
	// while the run loop is already marked running
	r.running = true
	c.Refresh()
	if buf.Len() != 0 {
		t.Fatalf("refresh at iteration 0 printed %q", buf.String())
	}

	r.iteration = 10
	c.Refresh()
	if !strings.Contains(buf.String(), "Iterations done: 10") {
		t.Fatalf("expected a progress line, got %q", buf.String())
	}
}
