package choreo

import (
	"log/slog"
	"os"
)

// defaultLogger writes debug traces to stderr as text records tagged
// component=choreo.
func defaultLogger() *slog.Logger {
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(h).With(slog.String("component", "choreo"))
}

// SetDebugMode enables or disables debug mode. When enabled, every step start,
// loop restart and sequence completion is traced to the logger, sequences that
// fail Validate are reported when played, and Play on a detached animator
// panics.
func (a *Animator) SetDebugMode(enabled bool) {
	a.debug = enabled
}

// SetLogger replaces the logger used for debug traces. nil restores the
// default stderr logger.
func (a *Animator) SetLogger(l *slog.Logger) {
	if l == nil {
		l = defaultLogger()
	}
	a.logger = l
}
