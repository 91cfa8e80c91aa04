// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package logging

import (
	"bytes"
	"log/slog"
	"testing"
)

func TestEventHandlerRetainsWarnAndAbove(t *testing.T) {
	var buf bytes.Buffer
	h := NewEventHandler(slog.NewTextHandler(&buf, nil))
	log := slog.New(h)

	log.Info("just info")
	log.Warn("something odd", "key", "value")
	log.Error("something broke")

	events := h.Events()
	if len(events) != 2 {
		t.Fatalf("len(events) = %d, want 2", len(events))
	}
	if events[0].Level != "warning" || events[0].Message != "something odd" {
		t.Errorf("first event = %+v, want warning 'something odd'", events[0])
	}
	if events[0].Attrs["key"] != "value" {
		t.Errorf("attrs = %v, want key=value", events[0].Attrs)
	}
	if events[1].Level != "error" {
		t.Errorf("second event level = %q, want error", events[1].Level)
	}

	// All records still reach the inner handler
	out := buf.String()
	for _, want := range []string{"just info", "something odd", "something broke"} {
		if !bytes.Contains([]byte(out), []byte(want)) {
			t.Errorf("inner handler output missing %q", want)
		}
	}
}

func TestEventHandlerRingOverflow(t *testing.T) {
	h := NewEventHandlerWithCapacity(slog.NewTextHandler(bytes.NewBuffer(nil), nil), 3)
	log := slog.New(h)

	for _, msg := range []string{"one", "two", "three", "four", "five"} {
		log.Warn(msg)
	}

	events := h.Events()
	if len(events) != 3 {
		t.Fatalf("len(events) = %d, want 3", len(events))
	}
	// Oldest first, newest retained
	if events[0].Message != "three" || events[2].Message != "five" {
		t.Errorf("events = %v, want [three four five]", events)
	}
}

func TestEventHandlerClonesShareBuffer(t *testing.T) {
	h := NewEventHandler(slog.NewTextHandler(bytes.NewBuffer(nil), nil))
	log := slog.New(h).With("component", "store")

	log.Warn("scoped warning")

	events := h.Events()
	if len(events) != 1 {
		t.Fatalf("len(events) = %d, want 1", len(events))
	}
	if events[0].Attrs["component"] != "store" {
		t.Errorf("attrs = %v, want component=store", events[0].Attrs)
	}
}
