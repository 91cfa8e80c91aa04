// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package local

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/akhdar/akhdar-go/internal/auth"
	"github.com/akhdar/akhdar-go/internal/model"
	"github.com/akhdar/akhdar-go/internal/store"
)

const userColumns = "id, email, name, phone, role, password_hash, created_at, updated_at"

func scanUser(row interface{ Scan(...any) error }) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.Phone, &u.Role,
		&u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// ListUsers returns all users, newest first.
func (s *Store) ListUsers(ctx context.Context) ([]model.User, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+userColumns+" FROM users ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning user: %w", err)
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

// GetUser returns the user with the given id, or nil when absent.
func (s *Store) GetUser(ctx context.Context, id string) (*model.User, error) {
	u, err := scanUser(s.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}
	return u, nil
}

// GetUserByEmail returns the user with the given email, or nil when absent.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	u, err := scanUser(s.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE email = ?", email))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting user by email: %w", err)
	}
	return u, nil
}

// CreateUser inserts a user. A plaintext password is hashed before
// storage; a pre-hashed credential (migration or import) is kept verbatim.
func (s *Store) CreateUser(ctx context.Context, params store.CreateUserParams) (*model.User, error) {
	passwordHash := params.PasswordHash
	if params.Password != "" {
		var err error
		passwordHash, err = auth.HashPassword(params.Password)
		if err != nil {
			return nil, fmt.Errorf("hashing password: %w", err)
		}
	}

	now := time.Now().UTC()
	u := model.User{
		ID:           orNewID(params.ID),
		Email:        params.Email,
		Name:         params.Name,
		Phone:        params.Phone,
		Role:         params.Role,
		PasswordHash: passwordHash,
		CreatedAt:    orNow(params.CreatedAt, now),
		UpdatedAt:    orNow(params.UpdatedAt, now),
	}
	if u.Role == "" {
		u.Role = model.RoleUser
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO users (id, email, name, phone, role, password_hash, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		u.ID, u.Email, u.Name, u.Phone, u.Role, u.PasswordHash, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("inserting user: %w", err)
	}
	return &u, nil
}

// UpdateUser applies the non-nil fields and returns the updated user, or
// nil when the user does not exist.
func (s *Store) UpdateUser(ctx context.Context, id string, params store.UpdateUserParams) (*model.User, error) {
	existing, err := s.GetUser(ctx, id)
	if err != nil || existing == nil {
		return nil, err
	}

	if params.Email != nil {
		existing.Email = *params.Email
	}
	if params.Name != nil {
		existing.Name = *params.Name
	}
	if params.Phone != nil {
		existing.Phone = *params.Phone
	}
	if params.Role != nil {
		existing.Role = *params.Role
	}
	if params.Password != nil {
		hash, err := auth.HashPassword(*params.Password)
		if err != nil {
			return nil, fmt.Errorf("hashing password: %w", err)
		}
		existing.PasswordHash = hash
	}
	existing.UpdatedAt = time.Now().UTC()

	_, err = s.db.ExecContext(ctx,
		"UPDATE users SET email = ?, name = ?, phone = ?, role = ?, password_hash = ?, updated_at = ? WHERE id = ?",
		existing.Email, existing.Name, existing.Phone, existing.Role,
		existing.PasswordHash, existing.UpdatedAt, id)
	if err != nil {
		return nil, fmt.Errorf("updating user: %w", err)
	}
	return existing, nil
}

// DeleteUser removes a user. Returns false when no such user exists.
func (s *Store) DeleteUser(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM users WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("deleting user: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("deleting user: %w", err)
	}
	return n > 0, nil
}
