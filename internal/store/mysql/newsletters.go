// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/akhdar/akhdar-go/internal/model"
	"github.com/akhdar/akhdar-go/internal/store"
)

const newsletterColumns = "id, email, name, is_active, created_at, updated_at"

// ListNewsletters returns all newsletter subscriptions, newest first.
func (s *Store) ListNewsletters(ctx context.Context) ([]model.Newsletter, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx,
		"SELECT "+newsletterColumns+" FROM newsletters ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("listing newsletters: %w", err)
	}
	defer rows.Close()

	subs := []model.Newsletter{}
	for rows.Next() {
		var (
			n        model.Newsletter
			name     sql.NullString
			isActive int
		)
		if err := rows.Scan(&n.ID, &n.Email, &name, &isActive, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning newsletter: %w", err)
		}
		n.Name = name.String
		n.IsActive = activeFromSQL(isActive)
		subs = append(subs, n)
	}
	return subs, rows.Err()
}

// CreateNewsletter inserts a subscription.
func (s *Store) CreateNewsletter(ctx context.Context, params store.CreateNewsletterParams) (*model.Newsletter, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	n := model.Newsletter{
		ID:        orNewID(params.ID),
		Email:     params.Email,
		Name:      params.Name,
		IsActive:  params.IsActive,
		CreatedAt: orNow(params.CreatedAt, now),
		UpdatedAt: orNow(params.UpdatedAt, now),
	}

	_, err = db.ExecContext(ctx,
		"INSERT INTO newsletters (id, email, name, is_active, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
		n.ID, n.Email, nullable(n.Name), activeToSQL(n.IsActive), n.CreatedAt, n.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("inserting newsletter: %w", err)
	}
	return &n, nil
}
