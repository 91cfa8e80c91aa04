// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package mysql

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

const categoryColumns = "id, name, description, color, created_at, updated_at"

func scanCategory(row interface{ Scan(...any) error }) (*model.Category, error) {
	var (
		c           model.Category
		description sql.NullString
	)
	err := row.Scan(&c.ID, &c.Name, &description, &c.Color, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	c.Description = description.String
	c.Slug = util.Slugify(c.Name)
	return &c, nil
}

// ListCategories returns all categories ordered by name.
func (s *Store) ListCategories(ctx context.Context) ([]model.Category, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx,
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
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	c, err := scanCategory(db.QueryRowContext(ctx,
		"SELECT "+categoryColumns+" FROM categories WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting category: %w", err)
	}
	return c, nil
}

// CreateCategory inserts a category. An empty color takes the site default.
func (s *Store) CreateCategory(ctx context.Context, params store.CreateCategoryParams) (*model.Category, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

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

	_, err = db.ExecContext(ctx,
		"INSERT INTO categories (id, name, description, color, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
		c.ID, c.Name, nullable(c.Description), c.Color, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("inserting category: %w", err)
	}
	return &c, nil
}
