package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func newTestLogger(component string, verbose bool) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := NewWithCallback(component, func() bool { return verbose })
	l.SetOutput(&buf)
	l.out.now = func() time.Time { return time.Date(2024, 1, 1, 9, 30, 15, 250_000_000, time.UTC) }
	return l, &buf
}

func TestVerboseGating(t *testing.T) {
	l, buf := newTestLogger("chart", false)
	l.Debug("hidden %d", 1)
	l.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("Expected no output for debug/info when not verbose, got %q", buf.String())
	}

	l.Warn("shown")
	l.Error("failed: %v", errors.New("boom"))
	out := buf.String()
	if !strings.Contains(out, "WARN [chart] shown") {
		t.Errorf("Expected warn line, got %q", out)
	}
	if !strings.Contains(out, "ERROR [chart] failed: boom") {
		t.Errorf("Expected error line, got %q", out)
	}
}

func TestLineFormat(t *testing.T) {
	l, buf := newTestLogger("", true)
	l.InfoWithFields("phase changed", []Field{F("phase", "breaking"), Count(3), Duration(400 * time.Millisecond)})

	want := "[09:30:15.250] INFO [main] phase changed [phase=breaking count=3 duration=400ms]\n"
	if buf.String() != want {
		t.Errorf("Expected %q, got %q", want, buf.String())
	}
}

func TestWithComponentSharesOutput(t *testing.T) {
	l, buf := newTestLogger("root", true)
	child := l.WithComponent("loader")
	child.Debug("tick")

	if !strings.Contains(buf.String(), "DEBUG [loader] tick") {
		t.Errorf("Expected child output in shared buffer, got %q", buf.String())
	}
}

func TestMessageWithoutArgsKeepsPercent(t *testing.T) {
	l, buf := newTestLogger("chart", false)
	l.Warn("bar at 150%")
	if !strings.Contains(buf.String(), "bar at 150%") {
		t.Errorf("Expected literal percent, got %q", buf.String())
	}
}

func TestDiscard(t *testing.T) {
	l := Discard()
	l.Error("nothing")
	l.WarnWithFields("nothing", []Field{Error(errors.New("x"))})
}
