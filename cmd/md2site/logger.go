package main

import (
	"io"
	"log/slog"
)

// newLogger returns a text logger without timestamps for terminals and a
// JSON logger otherwise.
func newLogger(w io.Writer, level slog.Level, terminal bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if !terminal {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	opts.ReplaceAttr = func(groups []string, a slog.Attr) slog.Attr {
		if len(groups) == 0 && a.Key == slog.TimeKey {
			return slog.Attr{}
		}
		return a
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// logLevel maps the verbosity flags to a level. Quiet wins over verbose.
func logLevel(quiet, verbose bool) slog.Level {
	switch {
	case quiet:
		return slog.LevelError
	case verbose:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}
