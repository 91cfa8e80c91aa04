// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package local

import (
	"context"
	"fmt"
	"time"

	"github.com/akhdar/akhdar-go/internal/model"
	"github.com/akhdar/akhdar-go/internal/store"
)

const contactColumns = "id, name, email, phone, subject, message, status, created_at, updated_at"

func (s *Store) queryContacts(ctx context.Context, query string, args ...any) ([]model.Contact, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing contacts: %w", err)
	}
	defer rows.Close()

	contacts := []model.Contact{}
	for rows.Next() {
		var c model.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Subject,
			&c.Message, &c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

// ListContacts returns all contact submissions, newest first.
func (s *Store) ListContacts(ctx context.Context) ([]model.Contact, error) {
	return s.queryContacts(ctx,
		"SELECT "+contactColumns+" FROM contacts ORDER BY created_at DESC")
}

// CreateContact inserts a contact submission. A missing status defaults
// to pending.
func (s *Store) CreateContact(ctx context.Context, params store.CreateContactParams) (*model.Contact, error) {
	now := time.Now().UTC()
	c := model.Contact{
		ID:        orNewID(params.ID),
		Name:      params.Name,
		Email:     params.Email,
		Phone:     params.Phone,
		Subject:   params.Subject,
		Message:   params.Message,
		Status:    params.Status,
		CreatedAt: orNow(params.CreatedAt, now),
		UpdatedAt: orNow(params.UpdatedAt, now),
	}
	if c.Status == "" {
		c.Status = model.ContactStatusPending
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO contacts (id, name, email, phone, subject, message, status, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
		c.ID, c.Name, c.Email, c.Phone, c.Subject, c.Message, c.Status,
		c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("inserting contact: %w", err)
	}
	return &c, nil
}

// UpdateContact applies the non-nil fields. Returns nil when the contact
// does not exist.
func (s *Store) UpdateContact(ctx context.Context, id string, params store.UpdateContactParams) (*model.Contact, error) {
	contacts, err := s.queryContacts(ctx,
		"SELECT "+contactColumns+" FROM contacts WHERE id = ?", id)
	if err != nil {
		return nil, err
	}
	if len(contacts) == 0 {
		return nil, nil
	}
	existing := contacts[0]

	if params.Name != nil {
		existing.Name = *params.Name
	}
	if params.Email != nil {
		existing.Email = *params.Email
	}
	if params.Phone != nil {
		existing.Phone = *params.Phone
	}
	if params.Subject != nil {
		existing.Subject = *params.Subject
	}
	if params.Message != nil {
		existing.Message = *params.Message
	}
	if params.Status != nil {
		existing.Status = *params.Status
	}
	existing.UpdatedAt = time.Now().UTC()

	_, err = s.db.ExecContext(ctx,
		"UPDATE contacts SET name = ?, email = ?, phone = ?, subject = ?, message = ?, status = ?, updated_at = ? WHERE id = ?",
		existing.Name, existing.Email, existing.Phone, existing.Subject,
		existing.Message, existing.Status, existing.UpdatedAt, id)
	if err != nil {
		return nil, fmt.Errorf("updating contact: %w", err)
	}
	return &existing, nil
}

// DeleteContact removes a contact submission. Returns false when no such
// contact exists.
func (s *Store) DeleteContact(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM contacts WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("deleting contact: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("deleting contact: %w", err)
	}
	return n > 0, nil
}
