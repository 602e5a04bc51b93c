package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// TestLogger is a trace-level logger that keeps its JSON events for
// assertions.
type TestLogger struct {
	*zerolog.Logger
	events *bytes.Buffer
}

// NewTestLogger returns a TestLogger. The zerolog global level is lifted
// to trace until t finishes.
func NewTestLogger(t testing.TB) *TestLogger {
	t.Helper()

	previous := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	t.Cleanup(func() { zerolog.SetGlobalLevel(previous) })

	events := &bytes.Buffer{}
	logger := zerolog.New(events).Level(zerolog.TraceLevel)
	return &TestLogger{Logger: &logger, events: events}
}

// Lines returns the logged events, one JSON object each.
func (tl *TestLogger) Lines() []string {
	return strings.FieldsFunc(tl.events.String(), func(r rune) bool { return r == '\n' })
}

// AssertContains fails t unless a logged event contains substr.
func (tl *TestLogger) AssertContains(t testing.TB, substr string) {
	t.Helper()
	if !strings.Contains(tl.events.String(), substr) {
		t.Errorf("no log event contains %q; events:\n%s", substr, tl.events.String())
	}
}
