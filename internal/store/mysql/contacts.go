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

const contactColumns = "id, name, email, phone, subject, message, status, created_at, updated_at"

// ListContacts returns all contact submissions, newest first.
func (s *Store) ListContacts(ctx context.Context) ([]model.Contact, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx,
		"SELECT "+contactColumns+" FROM contacts ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("listing contacts: %w", err)
	}
	defer rows.Close()

	contacts := []model.Contact{}
	for rows.Next() {
		var (
			c              model.Contact
			phone, subject sql.NullString
			status         string
		)
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &phone, &subject,
			&c.Message, &status, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning contact: %w", err)
		}
		c.Phone = phone.String
		c.Subject = subject.String
		c.Status = contactStatusFromSQL(status)
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

// CreateContact inserts a contact submission. A missing status defaults
// to pending.
func (s *Store) CreateContact(ctx context.Context, params store.CreateContactParams) (*model.Contact, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	status := contactStatusToSQL(params.Status)
	c := model.Contact{
		ID:        orNewID(params.ID),
		Name:      params.Name,
		Email:     params.Email,
		Phone:     params.Phone,
		Subject:   params.Subject,
		Message:   params.Message,
		Status:    contactStatusFromSQL(status),
		CreatedAt: orNow(params.CreatedAt, now),
		UpdatedAt: orNow(params.UpdatedAt, now),
	}

	_, err = db.ExecContext(ctx,
		"INSERT INTO contacts (id, name, email, phone, subject, message, status, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
		c.ID, c.Name, c.Email, nullable(c.Phone), nullable(c.Subject),
		c.Message, status, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("inserting contact: %w", err)
	}
	return &c, nil
}
