package logger

import (
	"io"
	"log/slog"
	"time"
)

type Config struct {
	Out   io.Writer
	Debug bool
}

// Setup returns a JSON logger writing to cfg.Out. A nil Out discards
// everything.
func Setup(cfg Config) *slog.Logger {
	out := cfg.Out
	if out == nil {
		out = io.Discard
	}

	level := slog.LevelInfo
	addSource := false
	if cfg.Debug {
		level = slog.LevelDebug
		addSource = true
	}

	h := slog.NewJSONHandler(out, &slog.HandlerOptions{
		Level:     level,
		AddSource: addSource,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				t := a.Value.Time().UTC()
				a.Value = slog.StringValue(t.Format(time.RFC3339Nano))
			}
			return a
		},
	})

	l := slog.New(h)
	l.Debug("logger.initialized", "debug", cfg.Debug)
	return l
}
