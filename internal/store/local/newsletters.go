// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package local

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/akhdar/akhdar-go/internal/model"
	"github.com/akhdar/akhdar-go/internal/store"
)

const newsletterColumns = "id, email, name, is_active, created_at, updated_at"

func scanNewsletter(row interface{ Scan(...any) error }) (*model.Newsletter, error) {
	var (
		n        model.Newsletter
		isActive int
	)
	err := row.Scan(&n.ID, &n.Email, &n.Name, &isActive, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return nil, err
	}
	n.IsActive = isActive != 0
	return &n, nil
}

// ListNewsletters returns all newsletter subscriptions, newest first.
func (s *Store) ListNewsletters(ctx context.Context) ([]model.Newsletter, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+newsletterColumns+" FROM newsletters ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("listing newsletters: %w", err)
	}
	defer rows.Close()

	subs := []model.Newsletter{}
	for rows.Next() {
		n, err := scanNewsletter(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning newsletter: %w", err)
		}
		subs = append(subs, *n)
	}
	return subs, rows.Err()
}

// GetNewsletterByEmail returns the subscription for an email address, or
// nil when absent.
func (s *Store) GetNewsletterByEmail(ctx context.Context, email string) (*model.Newsletter, error) {
	n, err := scanNewsletter(s.db.QueryRowContext(ctx,
		"SELECT "+newsletterColumns+" FROM newsletters WHERE email = ?", email))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting newsletter by email: %w", err)
	}
	return n, nil
}

// CreateNewsletter inserts a subscription.
func (s *Store) CreateNewsletter(ctx context.Context, params store.CreateNewsletterParams) (*model.Newsletter, error) {
	now := time.Now().UTC()
	n := model.Newsletter{
		ID:        orNewID(params.ID),
		Email:     params.Email,
		Name:      params.Name,
		IsActive:  params.IsActive,
		CreatedAt: orNow(params.CreatedAt, now),
		UpdatedAt: orNow(params.UpdatedAt, now),
	}

	isActive := 0
	if n.IsActive {
		isActive = 1
	}
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO newsletters (id, email, name, is_active, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
		n.ID, n.Email, n.Name, isActive, n.CreatedAt, n.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("inserting newsletter: %w", err)
	}
	return &n, nil
}

// UpdateNewsletter applies the non-nil fields. Returns nil when the
// subscription does not exist.
func (s *Store) UpdateNewsletter(ctx context.Context, id string, params store.UpdateNewsletterParams) (*model.Newsletter, error) {
	existing, err := scanNewsletter(s.db.QueryRowContext(ctx,
		"SELECT "+newsletterColumns+" FROM newsletters WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting newsletter: %w", err)
	}

	if params.Email != nil {
		existing.Email = *params.Email
	}
	if params.Name != nil {
		existing.Name = *params.Name
	}
	if params.IsActive != nil {
		existing.IsActive = *params.IsActive
	}
	existing.UpdatedAt = time.Now().UTC()

	isActive := 0
	if existing.IsActive {
		isActive = 1
	}
	_, err = s.db.ExecContext(ctx,
		"UPDATE newsletters SET email = ?, name = ?, is_active = ?, updated_at = ? WHERE id = ?",
		existing.Email, existing.Name, isActive, existing.UpdatedAt, id)
	if err != nil {
		return nil, fmt.Errorf("updating newsletter: %w", err)
	}
	return existing, nil
}

// DeleteNewsletter removes a subscription. Returns false when no such
// subscription exists.
func (s *Store) DeleteNewsletter(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM newsletters WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("deleting newsletter: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("deleting newsletter: %w", err)
	}
	return n > 0, nil
}

// SubscribeNewsletter creates or reactivates a subscription for the
// given address.
func (s *Store) SubscribeNewsletter(ctx context.Context, email, name string) (*model.Newsletter, error) {
	existing, err := s.GetNewsletterByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return s.CreateNewsletter(ctx, store.CreateNewsletterParams{
			Email:    email,
			Name:     name,
			IsActive: true,
		})
	}

	active := true
	params := store.UpdateNewsletterParams{IsActive: &active}
	if name != "" {
		params.Name = &name
	}
	return s.UpdateNewsletter(ctx, existing.ID, params)
}

// UnsubscribeNewsletter deactivates a subscription. Returns false when
// the address was never subscribed.
func (s *Store) UnsubscribeNewsletter(ctx context.Context, email string) (bool, error) {
	existing, err := s.GetNewsletterByEmail(ctx, email)
	if err != nil || existing == nil {
		return false, err
	}

	inactive := false
	_, err = s.UpdateNewsletter(ctx, existing.ID, store.UpdateNewsletterParams{IsActive: &inactive})
	if err != nil {
		return false, err
	}
	return true, nil
}
