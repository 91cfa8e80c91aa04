// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package mysql implements the relational store adapter on top of
// database/sql and the go-sql-driver/mysql driver. It translates between
// the canonical entity shapes and the relational column layout, and only
// implements the mutations the relational schema supports.
package mysql

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"

	"github.com/akhdar/akhdar-go/internal/store"
)

// Config carries the connection parameters for the relational store.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

// complete reports whether the credentials required to dial are all present.
func (c Config) complete() bool {
	return c.User != "" && c.Password != "" && c.Database != ""
}

// dsn renders the driver connection string. parseTime makes DATETIME
// columns scan into time.Time.
func (c Config) dsn() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4",
		c.User, c.Password, c.Host, c.Port, c.Database)
}

// Store is the relational adapter. It holds a single sql.DB pool and
// implements store.Relational.
type Store struct {
	cfg Config
	db  *sql.DB
}

// New creates an unconnected relational store. Connect must be called
// before any query method.
func New(cfg Config) *Store {
	return &Store{cfg: cfg}
}

// Connect dials the database, verifies the connection and creates the
// schema if it is absent. An incomplete configuration is reported as
// store.ErrConfigIncomplete without dialing.
func (s *Store) Connect(ctx context.Context) error {
	if !s.cfg.complete() {
		return store.ErrConfigIncomplete
	}

	db, err := sql.Open("mysql", s.cfg.dsn())
	if err != nil {
		return fmt.Errorf("opening mysql connection: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return fmt.Errorf("pinging mysql: %w", err)
	}
	if err := createSchema(ctx, db); err != nil {
		db.Close()
		return fmt.Errorf("initializing schema: %w", err)
	}

	s.db = db
	return nil
}

// Close releases the connection pool.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Healthy reports whether the connection still answers queries.
func (s *Store) Healthy(ctx context.Context) bool {
	if s.db == nil {
		return false
	}
	var one int
	return s.db.QueryRowContext(ctx, "SELECT 1").Scan(&one) == nil
}

// conn returns the pool or ErrNotConnected when Connect has not succeeded.
func (s *Store) conn() (*sql.DB, error) {
	if s.db == nil {
		return nil, store.ErrNotConnected
	}
	return s.db, nil
}
