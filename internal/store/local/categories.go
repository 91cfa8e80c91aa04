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
	"github.com/akhdar/akhdar-go/internal/util"
)

const categoryColumns = "id, name, slug, description, color, created_at, updated_at"

func scanCategory(row interface{ Scan(...any) error }) (*model.Category, error) {
	var c model.Category
	err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.Color,
		&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListCategories returns all categories ordered by name.
func (s *Store) ListCategories(ctx context.Context) ([]model.Category, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+categoryColumns+" FROM categories ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	categories := []model.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}
		categories = append(categories, *c)
	}
	return categories, rows.Err()
}

// GetCategory returns the category with the given id, or nil when absent.
func (s *Store) GetCategory(ctx context.Context, id string) (*model.Category, error) {
	c, err := scanCategory(s.db.QueryRowContext(ctx,
		"SELECT "+categoryColumns+" FROM categories WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting category: %w", err)
	}
	return c, nil
}

// CreateCategory inserts a category. The slug is derived from the name
// and an empty color takes the site default.
func (s *Store) CreateCategory(ctx context.Context, params store.CreateCategoryParams) (*model.Category, error) {
	now := time.Now().UTC()
	c := model.Category{
		ID:          orNewID(params.ID),
		Name:        params.Name,
		Slug:        util.Slugify(params.Name),
		Description: params.Description,
		Color:       params.Color,
		CreatedAt:   orNow(params.CreatedAt, now),
		UpdatedAt:   orNow(params.UpdatedAt, now),
	}
	if c.Color == "" {
		c.Color = model.DefaultCategoryColor
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO categories (id, name, slug, description, color, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		c.ID, c.Name, c.Slug, c.Description, c.Color, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("inserting category: %w", err)
	}
	return &c, nil
}

// UpdateCategory applies the non-nil fields, re-deriving the slug when
// the name changes. Returns nil when the category does not exist.
func (s *Store) UpdateCategory(ctx context.Context, id string, params store.UpdateCategoryParams) (*model.Category, error) {
	existing, err := s.GetCategory(ctx, id)
	if err != nil || existing == nil {
		return nil, err
	}

	if params.Name != nil {
		existing.Name = *params.Name
		existing.Slug = util.Slugify(*params.Name)
	}
	if params.Description != nil {
		existing.Description = *params.Description
	}
	if params.Color != nil {
		existing.Color = *params.Color
	}
	existing.UpdatedAt = time.Now().UTC()

	_, err = s.db.ExecContext(ctx,
		"UPDATE categories SET name = ?, slug = ?, description = ?, color = ?, updated_at = ? WHERE id = ?",
		existing.Name, existing.Slug, existing.Description, existing.Color,
		existing.UpdatedAt, id)
	if err != nil {
		return nil, fmt.Errorf("updating category: %w", err)
	}
	return existing, nil
}

// DeleteCategory removes a category. Returns false when no such category
// exists.
func (s *Store) DeleteCategory(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM categories WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("deleting category: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("deleting category: %w", err)
	}
	return n > 0, nil
}
