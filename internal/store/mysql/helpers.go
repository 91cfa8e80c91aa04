// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package mysql

import (
	"time"

	"github.com/google/uuid"
)

// orNewID returns the caller-supplied identifier when present, otherwise a
// fresh UUID. Migration passes IDs through so foreign keys stay valid.
func orNewID(id string) string {
	if id != "" {
		return id
	}
	return uuid.NewString()
}

// orNow returns the caller-supplied timestamp when present, otherwise now.
func orNow(t time.Time, now time.Time) time.Time {
	if !t.IsZero() {
		return t
	}
	return now
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
