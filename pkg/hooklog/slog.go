package hooklog

import (
	"context"
	"log/slog"
)

// TargetKey is the slog attribute key that sets a record's target.
const TargetKey = "target"

// Handler adapts a Logger to slog.Handler so code written against
// log/slog is filtered and dispatched by the Logger.
//
// Attributes added after WithGroup and the record's own attributes end up
// in a single group per WithGroup call, as with slog.JSONHandler.
//
// Example:
//
//	l := hooklog.New().Level("billing", hooklog.LevelWarn).Build()
//	log := slog.New(hooklog.NewHandler(l, "app"))
//	log.With(hooklog.TargetKey, "billing").Info("dropped")
type Handler struct {
	logger  *Logger
	target  string
	goas    []groupOrAttrs
	grouped bool
}

// groupOrAttrs is either a WithGroup name or a WithAttrs batch.
type groupOrAttrs struct {
	group string
	attrs []slog.Attr
}

var _ slog.Handler = (*Handler)(nil)

// NewHandler returns a Handler logging to l as target.
func NewHandler(l *Logger, target string) *Handler {
	return &Handler{logger: l, target: target}
}

// FromSlogLevel maps a slog level onto the nearest Level at or below it.
func FromSlogLevel(level slog.Level) Level {
	switch {
	case level < slog.LevelDebug:
		return LevelTrace
	case level < slog.LevelInfo:
		return LevelDebug
	case level < slog.LevelWarn:
		return LevelInfo
	case level < slog.LevelError:
		return LevelWarn
	default:
		return LevelError
	}
}

// Enabled implements slog.Handler. A record may carry its own TargetKey
// attribute, so this passes anything some filter or the global level could
// let through; Handle makes the exact decision.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return h.logger.MostVerbose().Allows(FromSlogLevel(level))
}

// Handle implements slog.Handler. It never returns an error.
func (h *Handler) Handle(_ context.Context, sr slog.Record) error {
	level := FromSlogLevel(sr.Level)
	target := h.target

	attrs := make([]slog.Attr, 0, sr.NumAttrs())
	sr.Attrs(func(a slog.Attr) bool {
		if !h.grouped && a.Key == TargetKey {
			target = a.Value.String()
			return true
		}
		attrs = append(attrs, a)
		return true
	})

	if !h.logger.Enabled(target, level) {
		return nil
	}

	for i := len(h.goas) - 1; i >= 0; i-- {
		g := h.goas[i]
		if g.group == "" {
			attrs = append(append([]slog.Attr(nil), g.attrs...), attrs...)
			continue
		}
		if len(attrs) > 0 {
			attrs = []slog.Attr{{Key: g.group, Value: slog.GroupValue(attrs...)}}
		}
	}

	h.logger.Log(&Record{
		Target: target,
		Level:  level,
		Time:   sr.Time,
		Format: sr.Message,
		Attrs:  attrs,
	})
	return nil
}

// WithAttrs implements slog.Handler. A TargetKey attribute outside any
// group retargets the returned handler.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h2 := h.clone()
	rest := make([]slog.Attr, 0, len(attrs))
	for _, a := range attrs {
		if !h.grouped && a.Key == TargetKey {
			h2.target = a.Value.String()
			continue
		}
		rest = append(rest, a)
	}
	if len(rest) > 0 {
		h2.goas = append(h2.goas, groupOrAttrs{attrs: rest})
	}
	return h2
}

// WithGroup implements slog.Handler.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := h.clone()
	h2.goas = append(h2.goas, groupOrAttrs{group: name})
	h2.grouped = true
	return h2
}

func (h *Handler) clone() *Handler {
	return &Handler{
		logger:  h.logger,
		target:  h.target,
		goas:    append([]groupOrAttrs(nil), h.goas...),
		grouped: h.grouped,
	}
}
