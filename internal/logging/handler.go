// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package logging provides a custom slog handler that keeps a bounded
// in-memory event log. It forwards logs at WARN level and above into the
// buffer so operators can inspect recent problems over the admin API.
package logging

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// DefaultCapacity is the number of events retained when no explicit
// capacity is given.
const DefaultCapacity = 256

// Event is a single retained log record.
type Event struct {
	Time    time.Time         `json:"time"`
	Level   string            `json:"level"`
	Message string            `json:"message"`
	Attrs   map[string]string `json:"attrs,omitempty"`
}

// EventHandler is a slog.Handler that wraps another handler and also keeps
// WARN and ERROR level records in a bounded ring buffer.
type EventHandler struct {
	inner slog.Handler
	buf   *eventBuffer
	level slog.Level // Minimum level to retain (default: WARN)
	attrs []slog.Attr
}

// eventBuffer is a fixed-capacity ring shared between handler clones.
type eventBuffer struct {
	mu     sync.Mutex
	events []Event
	next   int
	full   bool
}

// NewEventHandler creates an EventHandler that wraps the given handler and
// retains up to DefaultCapacity WARN+ records.
func NewEventHandler(inner slog.Handler) *EventHandler {
	return NewEventHandlerWithCapacity(inner, DefaultCapacity)
}

// NewEventHandlerWithCapacity creates an EventHandler with a custom buffer size.
func NewEventHandlerWithCapacity(inner slog.Handler, capacity int) *EventHandler {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &EventHandler{
		inner: inner,
		buf:   &eventBuffer{events: make([]Event, capacity)},
		level: slog.LevelWarn,
	}
}

// Enabled implements slog.Handler.
func (h *EventHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

// Handle implements slog.Handler.
func (h *EventHandler) Handle(ctx context.Context, r slog.Record) error {
	// Always forward to the inner handler first
	if err := h.inner.Handle(ctx, r); err != nil {
		return err
	}

	if r.Level >= h.level {
		h.buf.add(h.toEvent(r))
	}
	return nil
}

// WithAttrs implements slog.Handler. Clones share the event buffer so a
// scoped logger still records into the same log.
func (h *EventHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &EventHandler{
		inner: h.inner.WithAttrs(attrs),
		buf:   h.buf,
		level: h.level,
		attrs: merged,
	}
}

// WithGroup implements slog.Handler.
func (h *EventHandler) WithGroup(name string) slog.Handler {
	return &EventHandler{
		inner: h.inner.WithGroup(name),
		buf:   h.buf,
		level: h.level,
		attrs: h.attrs,
	}
}

// Events returns the retained records, oldest first.
func (h *EventHandler) Events() []Event {
	return h.buf.snapshot()
}

func (h *EventHandler) toEvent(r slog.Record) Event {
	ev := Event{
		Time:    r.Time,
		Level:   levelString(r.Level),
		Message: r.Message,
	}
	if len(h.attrs) > 0 || r.NumAttrs() > 0 {
		ev.Attrs = make(map[string]string, len(h.attrs)+r.NumAttrs())
		for _, a := range h.attrs {
			ev.Attrs[a.Key] = a.Value.String()
		}
		r.Attrs(func(a slog.Attr) bool {
			ev.Attrs[a.Key] = a.Value.String()
			return true
		})
	}
	return ev
}

func levelString(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "error"
	case level >= slog.LevelWarn:
		return "warning"
	default:
		return "info"
	}
}

func (b *eventBuffer) add(ev Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events[b.next] = ev
	b.next++
	if b.next == len(b.events) {
		b.next = 0
		b.full = true
	}
}

func (b *eventBuffer) snapshot() []Event {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.full {
		out := make([]Event, b.next)
		copy(out, b.events[:b.next])
		return out
	}
	out := make([]Event, 0, len(b.events))
	out = append(out, b.events[b.next:]...)
	out = append(out, b.events[:b.next]...)
	return out
}
