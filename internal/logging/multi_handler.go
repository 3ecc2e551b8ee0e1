package logging

import (
	"context"
	"log/slog"
)

// MultiHandler forwards every record to each wrapped handler that accepts
// its level. Used to write to stdout and the system_logs table at once.
type MultiHandler struct {
	targets []slog.Handler
}

func NewMultiHandler(targets ...slog.Handler) *MultiHandler {
	return &MultiHandler{targets: targets}
}

// Enabled reports whether at least one target would handle the level.
func (m *MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.targets {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

// Handle delivers the record to each interested target, stopping at the
// first error.
func (m *MultiHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, h := range m.targets {
		if !h.Enabled(ctx, record.Level) {
			continue
		}
		if err := h.Handle(ctx, record); err != nil {
			return err
		}
	}
	return nil
}

func (m *MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	targets := make([]slog.Handler, len(m.targets))
	for i, h := range m.targets {
		targets[i] = h.WithAttrs(attrs)
	}
	return &MultiHandler{targets: targets}
}

func (m *MultiHandler) WithGroup(name string) slog.Handler {
	targets := make([]slog.Handler, len(m.targets))
	for i, h := range m.targets {
		targets[i] = h.WithGroup(name)
	}
	return &MultiHandler{targets: targets}
}
