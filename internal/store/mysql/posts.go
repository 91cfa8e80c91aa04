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

const postColumns = "id, title, content, excerpt, status, author_id, category_id, created_at, updated_at"

func scanPost(row interface{ Scan(...any) error }) (*model.Post, error) {
	var (
		p                model.Post
		content, excerpt sql.NullString
		status           string
		categoryID       sql.NullString
	)
	err := row.Scan(&p.ID, &p.Title, &content, &excerpt, &status, &p.AuthorID,
		&categoryID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.Content = content.String
	p.Excerpt = excerpt.String
	p.Status = postStatusFromSQL(status)
	p.Categories = categoriesFromSQL(categoryID)
	// Slug and publishedAt have no columns, both are derived on read
	p.Slug = util.Slugify(p.Title)
	p.PublishedAt = publishedAtFromSQL(status, p.UpdatedAt)
	return &p, nil
}

func (s *Store) queryPosts(ctx context.Context, query string, args ...any) ([]model.Post, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing posts: %w", err)
	}
	defer rows.Close()

	posts := []model.Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning post: %w", err)
		}
		posts = append(posts, *p)
	}
	return posts, rows.Err()
}

// ListPosts returns all posts, newest first.
func (s *Store) ListPosts(ctx context.Context) ([]model.Post, error) {
	return s.queryPosts(ctx,
		"SELECT "+postColumns+" FROM posts ORDER BY created_at DESC")
}

// ListPublishedPosts returns only published posts, newest first.
func (s *Store) ListPublishedPosts(ctx context.Context) ([]model.Post, error) {
	return s.queryPosts(ctx,
		"SELECT "+postColumns+" FROM posts WHERE status = 'published' ORDER BY created_at DESC")
}

// GetPost returns the post with the given id, or nil when absent.
func (s *Store) GetPost(ctx context.Context, id string) (*model.Post, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	p, err := scanPost(db.QueryRowContext(ctx,
		"SELECT "+postColumns+" FROM posts WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting post: %w", err)
	}
	return p, nil
}

// CreatePost inserts a post. Only the first category survives the single
// FK column of the relational schema.
func (s *Store) CreatePost(ctx context.Context, params store.CreatePostParams) (*model.Post, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	id := orNewID(params.ID)
	createdAt := orNow(params.CreatedAt, now)
	updatedAt := orNow(params.UpdatedAt, now)
	status := postStatusToSQL(params.Status)
	categoryID := categoryIDToSQL(params.Categories)

	_, err = db.ExecContext(ctx,
		"INSERT INTO posts (id, title, content, excerpt, status, author_id, category_id, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
		id, params.Title, nullable(params.Content), nullable(params.Excerpt),
		status, params.AuthorID, categoryID, createdAt, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("inserting post: %w", err)
	}

	return &model.Post{
		ID:          id,
		Title:       params.Title,
		Content:     params.Content,
		Excerpt:     params.Excerpt,
		Slug:        util.Slugify(params.Title),
		Status:      postStatusFromSQL(status),
		PublishedAt: publishedAtFromSQL(status, updatedAt),
		AuthorID:    params.AuthorID,
		Categories:  categoriesFromSQL(categoryID),
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}, nil
}
