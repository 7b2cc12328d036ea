// Package log builds the process slog.Logger.
//
// Without a log file, records below error go to stdout and errors go to
// stderr. With a file, everything goes to stderr and to the file.
package log

import (
	"context"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"
)

// LevelTrace is below Debug and logs every key event.
const LevelTrace slog.Level = -8

// ParseLevel maps a level name to its slog.Level. Unknown names are info.
func ParseLevel(s string) slog.Level {
	if strings.EqualFold(s, "trace") {
		return LevelTrace
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// route sends records in [min, max) to h.
type route struct {
	min, max slog.Level
	h        slog.Handler
}

func (r route) accepts(l slog.Level) bool { return l >= r.min && l < r.max }

// fanout hands each record to every route accepting its level.
type fanout []route

func (f fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, r := range f {
		if r.accepts(level) && r.h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, rec slog.Record) error {
	for _, r := range f {
		if r.accepts(rec.Level) && r.h.Enabled(ctx, rec.Level) {
			_ = r.h.Handle(ctx, rec.Clone())
		}
	}
	return nil
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	return f.each(func(h slog.Handler) slog.Handler { return h.WithAttrs(attrs) })
}

func (f fanout) WithGroup(name string) slog.Handler {
	return f.each(func(h slog.Handler) slog.Handler { return h.WithGroup(name) })
}

func (f fanout) each(wrap func(slog.Handler) slog.Handler) fanout {
	out := make(fanout, len(f))
	for i, r := range f {
		out[i] = route{min: r.min, max: r.max, h: wrap(r.h)}
	}
	return out
}

const maxLevel slog.Level = math.MaxInt

// SetupLogger builds a logger writing to the console and, if logFile is set,
// to that file. The returned closers must be closed on exit.
func SetupLogger(logLevel, logFile string) (*slog.Logger, []io.Closer, error) {
	return setup(logLevel, logFile, os.Stdout, os.Stderr)
}

func setup(logLevel, logFile string, stdout, stderr io.Writer) (*slog.Logger, []io.Closer, error) {
	level := ParseLevel(logLevel)
	opts := &slog.HandlerOptions{Level: level}

	if logFile == "" {
		return slog.New(fanout{
			{min: level, max: slog.LevelError, h: slog.NewTextHandler(stdout, opts)},
			{min: slog.LevelError, max: maxLevel, h: slog.NewTextHandler(stderr, opts)},
		}), nil, nil
	}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return slog.New(fanout{
		{min: level, max: maxLevel, h: slog.NewTextHandler(stderr, opts)},
		{min: level, max: maxLevel, h: slog.NewTextHandler(f, opts)},
	}), []io.Closer{f}, nil
}
