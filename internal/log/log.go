// Package log provides a leveled logging interface.
// The log messages are intended to be user-facing
// similar to the standard library's log package.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// Level specifies the level of logging.
type Level = slog.Level

// Supported log levels, from least to most severe.
const (
	Debug    = slog.LevelDebug
	Info     = slog.LevelInfo
	Warn     = slog.LevelWarn
	Error    = slog.LevelError
	Critical = Level(12)
)

// Logger logs messages at different levels, formatting them with
// fmt.Sprintf-style directives.
type Logger struct {
	sl  *slog.Logger
	w   io.Writer
	lvl Level
}

// New builds a logger that writes to the given writer.
// The logger defaults to level Info.
func New(w io.Writer) *Logger {
	return &Logger{
		sl:  slog.New(&handler{W: w, Level: Info}),
		w:   w,
		lvl: Info,
	}
}

// Level reports the level of the logger. Messages below this level are
// discarded.
func (l *Logger) Level() Level { return l.lvl }

// WithLevel builds a new logger that logs messages at or above the given
// level.
func (l *Logger) WithLevel(lvl Level) *Logger {
	return &Logger{
		sl:  slog.New(&handler{W: l.w, Level: lvl}),
		w:   l.w,
		lvl: lvl,
	}
}

// WithName builds a new logger with the provided name. The returned logger is
// safe to use concurrently with this logger.
func (l *Logger) WithName(name string) *Logger {
	out := *l
	out.sl = l.sl.WithGroup(name)
	return &out
}

// Logf logs a message at the given level.
func (l *Logger) Logf(lvl Level, format string, args ...any) {
	l.sl.Log(context.Background(), lvl, fmt.Sprintf(format, args...))
}

// Debugf logs a message at the Debug level.
func (l *Logger) Debugf(format string, args ...any) { l.Logf(Debug, format, args...) }

// Infof logs a message at the Info level.
func (l *Logger) Infof(format string, args ...any) { l.Logf(Info, format, args...) }

// Warnf logs a message at the Warn level.
func (l *Logger) Warnf(format string, args ...any) { l.Logf(Warn, format, args...) }

// Errorf logs a message at the Error level.
func (l *Logger) Errorf(format string, args ...any) { l.Logf(Error, format, args...) }

// Log logs a message with the given attributes at the given level.
func (l *Logger) Log(lvl Level, msg string, args ...any) {
	l.sl.Log(context.Background(), lvl, msg, args...)
}
