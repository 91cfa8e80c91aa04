// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package local

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/akhdar/akhdar-go/internal/model"
	"github.com/akhdar/akhdar-go/internal/store"
	"github.com/akhdar/akhdar-go/internal/util"
)

const postColumns = "id, title, content, excerpt, slug, status, published_at, author_id, categories, created_at, updated_at"

func scanPost(row interface{ Scan(...any) error }) (*model.Post, error) {
	var (
		p           model.Post
		publishedAt sql.NullTime
		categories  string
	)
	err := row.Scan(&p.ID, &p.Title, &p.Content, &p.Excerpt, &p.Slug, &p.Status,
		&publishedAt, &p.AuthorID, &categories, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if publishedAt.Valid {
		t := publishedAt.Time
		p.PublishedAt = &t
	}
	if err := json.Unmarshal([]byte(categories), &p.Categories); err != nil {
		return nil, fmt.Errorf("decoding categories: %w", err)
	}
	if p.Categories == nil {
		p.Categories = []string{}
	}
	return &p, nil
}

func encodeCategories(categories []string) (string, error) {
	if categories == nil {
		categories = []string{}
	}
	data, err := json.Marshal(categories)
	if err != nil {
		return "", fmt.Errorf("encoding categories: %w", err)
	}
	return string(data), nil
}

func (s *Store) queryPosts(ctx context.Context, query string, args ...any) ([]model.Post, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
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
		"SELECT "+postColumns+" FROM posts WHERE status = ? ORDER BY created_at DESC",
		model.PostStatusPublished)
}

// ListPostsByCategory returns posts carrying the given category id.
// Categories are stored as a JSON list so the filter happens in Go.
func (s *Store) ListPostsByCategory(ctx context.Context, categoryID string) ([]model.Post, error) {
	posts, err := s.ListPosts(ctx)
	if err != nil {
		return nil, err
	}
	matched := []model.Post{}
	for _, p := range posts {
		for _, c := range p.Categories {
			if c == categoryID {
				matched = append(matched, p)
				break
			}
		}
	}
	return matched, nil
}

// ListPostsByAuthor returns the posts written by one author, newest first.
func (s *Store) ListPostsByAuthor(ctx context.Context, authorID string) ([]model.Post, error) {
	return s.queryPosts(ctx,
		"SELECT "+postColumns+" FROM posts WHERE author_id = ? ORDER BY created_at DESC", authorID)
}

// GetPost returns the post with the given id, or nil when absent.
func (s *Store) GetPost(ctx context.Context, id string) (*model.Post, error) {
	p, err := scanPost(s.db.QueryRowContext(ctx,
		"SELECT "+postColumns+" FROM posts WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting post: %w", err)
	}
	return p, nil
}

// GetPostBySlug returns the post with the given slug, or nil when absent.
func (s *Store) GetPostBySlug(ctx context.Context, slug string) (*model.Post, error) {
	p, err := scanPost(s.db.QueryRowContext(ctx,
		"SELECT "+postColumns+" FROM posts WHERE slug = ?", slug))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting post by slug: %w", err)
	}
	return p, nil
}

// CreatePost inserts a post. The slug is derived from the title and a
// published post gets its publication time stamped.
func (s *Store) CreatePost(ctx context.Context, params store.CreatePostParams) (*model.Post, error) {
	now := time.Now().UTC()
	p := model.Post{
		ID:         orNewID(params.ID),
		Title:      params.Title,
		Content:    params.Content,
		Excerpt:    params.Excerpt,
		Slug:       util.Slugify(params.Title),
		Status:     params.Status,
		AuthorID:   params.AuthorID,
		Categories: params.Categories,
		CreatedAt:  orNow(params.CreatedAt, now),
		UpdatedAt:  orNow(params.UpdatedAt, now),
	}
	if p.Status == "" {
		p.Status = model.PostStatusDraft
	}
	if p.Categories == nil {
		p.Categories = []string{}
	}
	if p.Status == model.PostStatusPublished {
		t := p.UpdatedAt
		p.PublishedAt = &t
	}

	categories, err := encodeCategories(p.Categories)
	if err != nil {
		return nil, err
	}

	var publishedAt any
	if p.PublishedAt != nil {
		publishedAt = *p.PublishedAt
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO posts (id, title, content, excerpt, slug, status, published_at, author_id, categories, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		p.ID, p.Title, p.Content, p.Excerpt, p.Slug, p.Status, publishedAt,
		p.AuthorID, categories, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("inserting post: %w", err)
	}
	return &p, nil
}

// UpdatePost applies the non-nil fields. A post entering published state
// gets its publication time set once; later edits keep the original.
func (s *Store) UpdatePost(ctx context.Context, id string, params store.UpdatePostParams) (*model.Post, error) {
	existing, err := s.GetPost(ctx, id)
	if err != nil || existing == nil {
		return nil, err
	}

	if params.Title != nil {
		existing.Title = *params.Title
		existing.Slug = util.Slugify(*params.Title)
	}
	if params.Content != nil {
		existing.Content = *params.Content
	}
	if params.Excerpt != nil {
		existing.Excerpt = *params.Excerpt
	}
	if params.Status != nil {
		existing.Status = *params.Status
	}
	if params.AuthorID != nil {
		existing.AuthorID = *params.AuthorID
	}
	if params.Categories != nil {
		existing.Categories = *params.Categories
	}
	existing.UpdatedAt = time.Now().UTC()
	if existing.Status == model.PostStatusPublished && existing.PublishedAt == nil {
		t := existing.UpdatedAt
		existing.PublishedAt = &t
	}

	categories, err := encodeCategories(existing.Categories)
	if err != nil {
		return nil, err
	}

	var publishedAt any
	if existing.PublishedAt != nil {
		publishedAt = *existing.PublishedAt
	}

	_, err = s.db.ExecContext(ctx,
		"UPDATE posts SET title = ?, content = ?, excerpt = ?, slug = ?, status = ?, published_at = ?, author_id = ?, categories = ?, updated_at = ? WHERE id = ?",
		existing.Title, existing.Content, existing.Excerpt, existing.Slug,
		existing.Status, publishedAt, existing.AuthorID, categories,
		existing.UpdatedAt, id)
	if err != nil {
		return nil, fmt.Errorf("updating post: %w", err)
	}
	return existing, nil
}

// DeletePost removes a post and its comments. Returns false when no such
// post exists.
func (s *Store) DeletePost(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM posts WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("deleting post: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("deleting post: %w", err)
	}
	return n > 0, nil
}
