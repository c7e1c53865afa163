package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Log is the process-wide logger. Until Setup runs it writes text records at info level.
var Log = New(os.Stdout, Options{Level: "info"})

type Options struct {
	Level string
	JSON  bool
	// AddSource appends file:line to every record.
	AddSource bool
}

func New(w io.Writer, opts Options) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{
		Level:     parseLevel(opts.Level),
		AddSource: opts.AddSource,
	}
	if opts.JSON {
		return slog.New(slog.NewJSONHandler(w, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(w, handlerOpts))
}

// Setup replaces Log and the slog default.
func Setup(w io.Writer, opts Options) {
	Log = New(w, opts)
	slog.SetDefault(Log)
}

// For scopes Log to a component such as "storage.pg". Call it after Setup.
func For(component string) *slog.Logger {
	return Log.With("component", component)
}

func parseLevel(level string) slog.Level {
	if strings.EqualFold(level, "warning") {
		return slog.LevelWarn
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return l
}
