package log

import (
	"context"
	"io"
	"log/slog"
)

// Discard is a logger that discards all its operations.
var Discard = &Logger{
	sl:  slog.New(&discardHandler{}),
	w:   io.Discard,
	lvl: Critical + 1,
}

type discardHandler struct{}

func (*discardHandler) Enabled(context.Context, slog.Level) bool {
	return false
}

func (*discardHandler) Handle(context.Context, slog.Record) error {
	return nil
}

func (h *discardHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h
}

func (h *discardHandler) WithGroup(name string) slog.Handler {
	return h
}
