// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package db

import (
	"context"
	"fmt"

	"github.com/akhdar/akhdar-go/internal/store"
)

// migrateFallbackData copies any pre-existing fallback content into the
// relational store, then empties the fallback store. Records move one at
// a time in dependency order so foreign keys always reference rows that
// were inserted earlier. A failing record is logged and skipped; the
// migration is deliberately non-atomic.
func (m *Manager) migrateFallbackData(ctx context.Context) error {
	doc, err := m.fallback.Export(ctx)
	if err != nil {
		return fmt.Errorf("reading fallback data: %w", err)
	}
	if doc.IsEmpty() {
		return nil
	}

	m.log.Info("migrating fallback data to mysql", "records", doc.Total())
	migrated, skipped := 0, 0

	for _, u := range doc.Users {
		_, err := m.relational.CreateUser(ctx, store.CreateUserParams{
			ID:           u.ID,
			Email:        u.Email,
			Name:         u.Name,
			Phone:        u.Phone,
			Role:         u.Role,
			PasswordHash: u.PasswordHash,
			CreatedAt:    u.CreatedAt,
			UpdatedAt:    u.UpdatedAt,
		})
		if err != nil {
			m.log.Warn("skipping user during migration", "id", u.ID, "error", err)
			skipped++
			continue
		}
		migrated++
	}

	for _, c := range doc.Categories {
		_, err := m.relational.CreateCategory(ctx, store.CreateCategoryParams{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
			Color:       c.Color,
			CreatedAt:   c.CreatedAt,
			UpdatedAt:   c.UpdatedAt,
		})
		if err != nil {
			m.log.Warn("skipping category during migration", "id", c.ID, "error", err)
			skipped++
			continue
		}
		migrated++
	}

	for _, p := range doc.Posts {
		_, err := m.relational.CreatePost(ctx, store.CreatePostParams{
			ID:         p.ID,
			Title:      p.Title,
			Content:    p.Content,
			Excerpt:    p.Excerpt,
			Status:     p.Status,
			AuthorID:   p.AuthorID,
			Categories: p.Categories,
			CreatedAt:  p.CreatedAt,
			UpdatedAt:  p.UpdatedAt,
		})
		if err != nil {
			m.log.Warn("skipping post during migration", "id", p.ID, "error", err)
			skipped++
			continue
		}
		migrated++
	}

	for _, c := range doc.Comments {
		_, err := m.relational.CreateComment(ctx, store.CreateCommentParams{
			ID:        c.ID,
			Content:   c.Content,
			AuthorID:  c.AuthorID,
			PostID:    c.PostID,
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
		})
		if err != nil {
			m.log.Warn("skipping comment during migration", "id", c.ID, "error", err)
			skipped++
			continue
		}
		migrated++
	}

	for _, c := range doc.Contacts {
		_, err := m.relational.CreateContact(ctx, store.CreateContactParams{
			ID:        c.ID,
			Name:      c.Name,
			Email:     c.Email,
			Phone:     c.Phone,
			Subject:   c.Subject,
			Message:   c.Message,
			Status:    c.Status,
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
		})
		if err != nil {
			m.log.Warn("skipping contact during migration", "id", c.ID, "error", err)
			skipped++
			continue
		}
		migrated++
	}

	for _, n := range doc.Newsletters {
		_, err := m.relational.CreateNewsletter(ctx, store.CreateNewsletterParams{
			ID:        n.ID,
			Email:     n.Email,
			Name:      n.Name,
			IsActive:  n.IsActive,
			CreatedAt: n.CreatedAt,
			UpdatedAt: n.UpdatedAt,
		})
		if err != nil {
			m.log.Warn("skipping newsletter during migration", "id", n.ID, "error", err)
			skipped++
			continue
		}
		migrated++
	}

	if err := m.fallback.ClearAll(ctx); err != nil {
		return fmt.Errorf("clearing fallback store after migration: %w", err)
	}

	m.log.Info("fallback data migration finished", "migrated", migrated, "skipped", skipped)
	return nil
}
