// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package mysql

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
	var (
		u            model.User
		name, phone  sql.NullString
		role         string
		passwordHash sql.NullString
	)
	err := row.Scan(&u.ID, &u.Email, &name, &phone, &role, &passwordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	u.Name = name.String
	u.Phone = phone.String
	u.Role = roleFromSQL(role)
	u.PasswordHash = passwordHash.String
	return &u, nil
}

// ListUsers returns all users, newest first.
func (s *Store) ListUsers(ctx context.Context) ([]model.User, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx,
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
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	u, err := scanUser(db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}
	return u, nil
}

// CreateUser inserts a user. A plaintext password is hashed before
// storage; a pre-hashed credential (migration path) is stored verbatim.
func (s *Store) CreateUser(ctx context.Context, params store.CreateUserParams) (*model.User, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	passwordHash := params.PasswordHash
	if params.Password != "" {
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

	_, err = db.ExecContext(ctx,
		"INSERT INTO users (id, email, name, phone, role, password_hash, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		u.ID, u.Email, nullable(u.Name), nullable(u.Phone), roleToSQL(u.Role),
		nullable(u.PasswordHash), u.CreatedAt, u.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("inserting user: %w", err)
	}

	// The role column is two-valued, report what was actually stored
	u.Role = roleFromSQL(roleToSQL(u.Role))
	return &u, nil
}

// UpdateUser applies the non-nil fields and returns the updated user, or
// nil when the user does not exist.
func (s *Store) UpdateUser(ctx context.Context, id string, params store.UpdateUserParams) (*model.User, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	assignments := []string{}
	args := []any{}
	if params.Email != nil {
		assignments = append(assignments, "email = ?")
		args = append(args, *params.Email)
	}
	if params.Name != nil {
		assignments = append(assignments, "name = ?")
		args = append(args, nullable(*params.Name))
	}
	if params.Phone != nil {
		assignments = append(assignments, "phone = ?")
		args = append(args, nullable(*params.Phone))
	}
	if params.Role != nil {
		assignments = append(assignments, "role = ?")
		args = append(args, roleToSQL(*params.Role))
	}
	if params.Password != nil {
		hash, err := auth.HashPassword(*params.Password)
		if err != nil {
			return nil, fmt.Errorf("hashing password: %w", err)
		}
		assignments = append(assignments, "password_hash = ?")
		args = append(args, hash)
	}
	if len(assignments) == 0 {
		return s.GetUser(ctx, id)
	}

	assignments = append(assignments, "updated_at = ?")
	args = append(args, time.Now().UTC(), id)

	query := "UPDATE users SET "
	for i, a := range assignments {
		if i > 0 {
			query += ", "
		}
		query += a
	}
	query += " WHERE id = ?"

	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("updating user: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// Either absent or unchanged; distinguish by fetching
		u, err := s.GetUser(ctx, id)
		if err != nil || u == nil {
			return nil, err
		}
		return u, nil
	}
	return s.GetUser(ctx, id)
}

// DeleteUser removes a user, cascading to their posts. Returns false when
// no such user exists.
func (s *Store) DeleteUser(ctx context.Context, id string) (bool, error) {
	db, err := s.conn()
	if err != nil {
		return false, err
	}

	res, err := db.ExecContext(ctx, "DELETE FROM users WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("deleting user: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("deleting user: %w", err)
	}
	return n > 0, nil
}
