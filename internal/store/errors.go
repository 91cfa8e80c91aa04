// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package store defines the persistence contracts shared by the backing
// store adapters and the sentinel errors they report. Absent records are
// reported as nil results, not errors; the sentinels below cover the
// conditions callers need to tell apart from plain failures.
package store

import "errors"

var (
	// ErrUnsupported reports an operation the active backend does not
	// implement. It is distinct from "not found" and from transient
	// failures so callers can recognize a capability gap.
	ErrUnsupported = errors.New("operation not supported by this backend")

	// ErrConfigIncomplete reports that the relational store was not given
	// the credentials it needs and will never be dialed.
	ErrConfigIncomplete = errors.New("relational store configuration incomplete")

	// ErrNotConnected reports a call against a store whose connection was
	// never established or has been closed.
	ErrNotConnected = errors.New("store not connected")
)
