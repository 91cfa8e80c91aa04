// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package local

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Store implements the full store contract on a SQLite database.
type Store struct {
	db *sql.DB
}

// New wraps an open database in a Store. The schema must already be
// migrated, see Migrate.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// DB exposes the underlying handle for lifecycle management.
func (s *Store) DB() *sql.DB {
	return s.db
}

func orNewID(id string) string {
	if id != "" {
		return id
	}
	return uuid.NewString()
}

func orNow(t time.Time, now time.Time) time.Time {
	if !t.IsZero() {
		return t
	}
	return now
}
