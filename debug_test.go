package choreo

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func bufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestDebugModeTraces(t *testing.T) {
	var buf bytes.Buffer
	a := newTestAnimator(WithLogger(bufferLogger(&buf)), WithRestartGap(0.125))
	a.SetDebugMode(true)
	a.Play(NewSequence().FadeOut(0.25).Then().Loop(LoopTimes(1)))
	runUntilDone(t, a, 5)

	out := buf.String()
	for _, want := range []string{"step start", "loop restart", "sequence complete", "mode=\"times 1\""} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}

func TestDebugModeOffIsQuiet(t *testing.T) {
	var buf bytes.Buffer
	a := newTestAnimator(WithLogger(bufferLogger(&buf)))
	a.Play(NewSequence().FadeOut(0.25).Then().Loop(LoopForever()).Then().FadeIn(1))
	run(a, 1)
	if buf.Len() != 0 {
		t.Errorf("logged without debug mode:\n%s", buf.String())
	}
}

func TestDebugModeReportsValidation(t *testing.T) {
	var buf bytes.Buffer
	a := newTestAnimator(WithLogger(bufferLogger(&buf)), WithDebug(true))
	a.Play(NewSequence().Loop(LoopForever()).Then().FadeIn(1))
	out := buf.String()
	if !strings.Contains(out, "sequence failed validation") || !strings.Contains(out, ErrForeverNotLast.Error()) {
		t.Errorf("validation warning missing:\n%s", out)
	}
}

func TestSetLoggerNilRestoresDefault(t *testing.T) {
	a := newTestAnimator()
	a.SetLogger(nil)
	if a.logger == nil {
		t.Error("SetLogger(nil) left no logger")
	}
}

func TestEventTypeString(t *testing.T) {
	tests := []struct {
		typ  EventType
		want string
	}{
		{EventStepStarted, "step-started"},
		{EventStepCompleted, "step-completed"},
		{EventLoopRestarted, "loop-restarted"},
		{EventSequenceCompleted, "sequence-completed"},
		{EventType(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("String = %q, want %q", got, tt.want)
		}
	}
}
