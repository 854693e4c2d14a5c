// Package alog wraps log/slog with a compact single-line text handler,
// the way the assembler's CLI wants its diagnostics formatted: a
// timestamp, a level tag, the message, and any attributes space-joined
// after it.
package alog

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// Handler is a slog.Handler that writes one line per record to out. It
// delegates level filtering to an inner slog.TextHandler and builds each
// line itself from the record's time, level, message and own attributes.
// Attributes and groups added through WithAttrs or WithGroup are passed to
// the inner handler only and do not appear in the written line.
type Handler struct {
	out io.Writer
	h   slog.Handler
	mu  *sync.Mutex
}

// NewHandler builds a Handler writing to out, enabled for records at or
// above level.
func NewHandler(out io.Writer, level slog.Level) *Handler {
	return &Handler{
		out: out,
		h:   slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}),
		mu:  &sync.Mutex{},
	}
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.h.Enabled(ctx, level)
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	parts := []string{
		r.Time.Format("2006-01-02T15:04:05"),
		r.Level.String() + ":",
		r.Message,
	}

	r.Attrs(func(a slog.Attr) bool {
		parts = append(parts, a.Key+"="+a.Value.String())
		return true
	})

	line := strings.Join(parts, " ") + "\n"

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.Write([]byte(line))
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{out: h.out, h: h.h.WithAttrs(attrs), mu: h.mu}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{out: h.out, h: h.h.WithGroup(name), mu: h.mu}
}

// LevelFromString maps a config string ("debug", "info", "warn",
// "error") to its slog.Level, defaulting to Info for anything else.
func LevelFromString(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
