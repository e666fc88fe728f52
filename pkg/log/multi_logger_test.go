package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// captureLogger records events for assertions.
type captureLogger struct {
	events []Event
}

func (c *captureLogger) Log(event Event) {
	c.events = append(c.events, event)
}

func TestMultiLoggerFansOut(t *testing.T) {
	a := &captureLogger{}
	b := &captureLogger{}
	multi := NewMultiLogger(a, b, NoopLogger{})

	multi.Log(NewMessageEvent("node-1", DirectionOut, testMessage(t)))

	if len(a.events) != 1 || len(b.events) != 1 {
		t.Errorf("events not fanned out: a=%d b=%d", len(a.events), len(b.events))
	}
}

func TestSlogAdapter(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	adapter := NewSlogAdapter(slog.New(handler))

	adapter.Log(NewMessageEvent("node-1", DirectionOut, testMessage(t)))

	out := buf.String()
	for _, want := range []string{"node_id=node-1", "direction=OUT", "layer=ACCESS", "opcode=04"} {
		if !strings.Contains(out, want) {
			t.Errorf("slog output missing %q:\n%s", want, out)
		}
	}
}
