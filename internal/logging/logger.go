package logging

import (
	"io"
	"log/slog"
)

// LevelCritical sits above slog.LevelError. Nothing is logged at this level;
// using it as the handler threshold silences everything but critical output.
const LevelCritical = slog.LevelError + 4

// LevelFor maps the --verbose and --quiet flags to a handler level.
// verbose wins when both are set.
func LevelFor(verbose, quiet bool) slog.Level {
	switch {
	case verbose:
		return slog.LevelDebug
	case quiet:
		return LevelCritical
	default:
		return slog.LevelInfo
	}
}

// New returns a text logger writing to w at the given level.
func New(w io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: LevelCritical}))
}
