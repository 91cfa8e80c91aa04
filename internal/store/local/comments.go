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

const commentColumns = "id, content, author_id, post_id, created_at, updated_at"

func (s *Store) queryComments(ctx context.Context, query string, args ...any) ([]model.Comment, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing comments: %w", err)
	}
	defer rows.Close()

	comments := []model.Comment{}
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.Content, &c.AuthorID, &c.PostID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning comment: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// ListComments returns all comments, newest first.
func (s *Store) ListComments(ctx context.Context) ([]model.Comment, error) {
	return s.queryComments(ctx,
		"SELECT "+commentColumns+" FROM comments ORDER BY created_at DESC")
}

// ListCommentsByPost returns the comments on one post, oldest first.
func (s *Store) ListCommentsByPost(ctx context.Context, postID string) ([]model.Comment, error) {
	return s.queryComments(ctx,
		"SELECT "+commentColumns+" FROM comments WHERE post_id = ? ORDER BY created_at", postID)
}

// CreateComment inserts a comment.
func (s *Store) CreateComment(ctx context.Context, params store.CreateCommentParams) (*model.Comment, error) {
	now := time.Now().UTC()
	c := model.Comment{
		ID:        orNewID(params.ID),
		Content:   params.Content,
		AuthorID:  params.AuthorID,
		PostID:    params.PostID,
		CreatedAt: orNow(params.CreatedAt, now),
		UpdatedAt: orNow(params.UpdatedAt, now),
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO comments (id, content, author_id, post_id, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
		c.ID, c.Content, c.AuthorID, c.PostID, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("inserting comment: %w", err)
	}
	return &c, nil
}

// UpdateComment applies the non-nil fields. Returns nil when the comment
// does not exist.
func (s *Store) UpdateComment(ctx context.Context, id string, params store.UpdateCommentParams) (*model.Comment, error) {
	comments, err := s.queryComments(ctx,
		"SELECT "+commentColumns+" FROM comments WHERE id = ?", id)
	if err != nil {
		return nil, err
	}
	if len(comments) == 0 {
		return nil, nil
	}
	existing := comments[0]

	if params.Content != nil {
		existing.Content = *params.Content
	}
	existing.UpdatedAt = time.Now().UTC()

	_, err = s.db.ExecContext(ctx,
		"UPDATE comments SET content = ?, updated_at = ? WHERE id = ?",
		existing.Content, existing.UpdatedAt, id)
	if err != nil {
		return nil, fmt.Errorf("updating comment: %w", err)
	}
	return &existing, nil
}

// DeleteComment removes a comment. Returns false when no such comment
// exists.
func (s *Store) DeleteComment(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM comments WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("deleting comment: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("deleting comment: %w", err)
	}
	return n > 0, nil
}
