// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package db provides the unified persistence facade. On first use it
// decides whether the relational store or the fallback store is
// authoritative, migrates any pre-existing fallback data into the
// relational store once, and thereafter routes every operation to the
// chosen backend.
package db

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/akhdar/akhdar-go/internal/store"
	"github.com/akhdar/akhdar-go/internal/transfer"
)

// Store type names reported by Status.
const (
	StoreTypeMySQL    = "mysql"
	StoreTypeFallback = "fallback"
)

// Status describes which backend is authoritative and whether it answers.
type Status struct {
	Type      string `json:"type"`
	Connected bool   `json:"connected"`
	Healthy   bool   `json:"healthy"`
}

// Manager is the unified facade. Construct it with New and call
// Initialize (or any operation, which initializes implicitly).
type Manager struct {
	relational store.Relational
	fallback   store.Store
	log        *slog.Logger

	initOnce sync.Once
	initErr  error

	mu            sync.RWMutex
	useRelational bool
}

// New creates a facade over an optional relational store and a required
// fallback store. A nil relational store pins the facade to fallback mode.
func New(relational store.Relational, fallback store.Store, log *slog.Logger) *Manager {
	if log == nil {
		log = slog.Default()
	}
	return &Manager{
		relational: relational,
		fallback:   fallback,
		log:        log,
	}
}

// Initialize decides the authoritative store and runs the one-time
// migration. Concurrent callers share a single initialization; repeated
// calls return the first result.
func (m *Manager) Initialize(ctx context.Context) error {
	m.initOnce.Do(func() {
		m.initErr = m.initialize(ctx)
	})
	return m.initErr
}

func (m *Manager) initialize(ctx context.Context) error {
	if m.relational == nil {
		m.log.Info("no relational store supplied, using fallback store")
		return nil
	}

	err := m.relational.Connect(ctx)
	switch {
	case errors.Is(err, store.ErrConfigIncomplete):
		m.log.Info("mysql not configured, using fallback store")
		return nil
	case err != nil:
		m.log.Warn("mysql connection failed, using fallback store", "error", err)
		return nil
	}

	m.mu.Lock()
	m.useRelational = true
	m.mu.Unlock()
	m.log.Info("mysql connected, relational store is authoritative")

	if err := m.migrateFallbackData(ctx); err != nil {
		// Migration trouble is logged, the relational store stays
		// authoritative for fresh data.
		m.log.Error("fallback data migration failed", "error", err)
	}
	return nil
}

// ensure runs initialization before an operation dispatches.
func (m *Manager) ensure(ctx context.Context) error {
	return m.Initialize(ctx)
}

func (m *Manager) relationalActive() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.useRelational
}

// Status reports the authoritative store and a liveness probe result.
func (m *Manager) Status(ctx context.Context) (Status, error) {
	if err := m.ensure(ctx); err != nil {
		return Status{}, err
	}
	if m.relationalActive() {
		healthy := m.relational.Healthy(ctx)
		return Status{Type: StoreTypeMySQL, Connected: true, Healthy: healthy}, nil
	}
	return Status{Type: StoreTypeFallback, Connected: true, Healthy: true}, nil
}

// SwitchToFallback routes all subsequent operations to the fallback
// store. The relational connection, if any, is left open for a later
// ReconnectMySQL.
func (m *Manager) SwitchToFallback() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.useRelational {
		m.log.Info("switching to fallback store by operator request")
	}
	m.useRelational = false
}

// ReconnectMySQL re-establishes the relational connection and makes it
// authoritative again. No migration runs on reconnect.
func (m *Manager) ReconnectMySQL(ctx context.Context) error {
	if err := m.ensure(ctx); err != nil {
		return err
	}
	if m.relational == nil {
		return store.ErrConfigIncomplete
	}
	if err := m.relational.Connect(ctx); err != nil {
		return err
	}
	m.mu.Lock()
	m.useRelational = true
	m.mu.Unlock()
	m.log.Info("mysql reconnected, relational store is authoritative")
	return nil
}

// Close releases the relational connection when one is held.
func (m *Manager) Close() error {
	if m.relational == nil {
		return nil
	}
	return m.relational.Close()
}

// ExportData renders the authoritative store's full content as a
// pretty-printed JSON document.
func (m *Manager) ExportData(ctx context.Context) ([]byte, error) {
	if err := m.ensure(ctx); err != nil {
		return nil, err
	}

	var (
		doc *transfer.Document
		err error
	)
	if m.relationalActive() {
		doc, err = m.exportRelational(ctx)
	} else {
		doc, err = m.fallback.Export(ctx)
	}
	if err != nil {
		return nil, err
	}
	return transfer.Marshal(doc)
}

func (m *Manager) exportRelational(ctx context.Context) (*transfer.Document, error) {
	doc := &transfer.Document{}

	users, err := m.relational.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	doc.Users = make([]transfer.User, 0, len(users))
	for _, u := range users {
		doc.Users = append(doc.Users, transfer.User{User: u, PasswordHash: u.PasswordHash})
	}

	if doc.Posts, err = m.relational.ListPosts(ctx); err != nil {
		return nil, err
	}
	if doc.Categories, err = m.relational.ListCategories(ctx); err != nil {
		return nil, err
	}
	if doc.Comments, err = m.relational.ListComments(ctx); err != nil {
		return nil, err
	}
	if doc.Contacts, err = m.relational.ListContacts(ctx); err != nil {
		return nil, err
	}
	if doc.Newsletters, err = m.relational.ListNewsletters(ctx); err != nil {
		return nil, err
	}
	return doc, nil
}

// ImportData loads a transfer document into the fallback store. The
// relational path does not support bulk import.
func (m *Manager) ImportData(ctx context.Context, data []byte) error {
	if err := m.ensure(ctx); err != nil {
		return err
	}
	if m.relationalActive() {
		return store.ErrUnsupported
	}
	doc, err := transfer.Parse(data)
	if err != nil {
		return err
	}
	return m.fallback.Import(ctx, doc)
}

// ClearAllData empties the fallback store. The relational path does not
// support bulk deletion.
func (m *Manager) ClearAllData(ctx context.Context) error {
	if err := m.ensure(ctx); err != nil {
		return err
	}
	if m.relationalActive() {
		return store.ErrUnsupported
	}
	return m.fallback.ClearAll(ctx)
}

// SeedSampleData populates the fallback store with demo content.
func (m *Manager) SeedSampleData(ctx context.Context) error {
	if err := m.ensure(ctx); err != nil {
		return err
	}
	if m.relationalActive() {
		return store.ErrUnsupported
	}
	return m.fallback.SeedSampleData(ctx)
}
