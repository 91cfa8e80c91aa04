// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package local

import (
	"context"
	"fmt"

	"github.com/akhdar/akhdar-go/internal/store"
	"github.com/akhdar/akhdar-go/internal/transfer"
)

// Export collects the whole store into a transfer document. Users carry
// their stored credential hash so an import can restore them verbatim.
func (s *Store) Export(ctx context.Context) (*transfer.Document, error) {
	doc := &transfer.Document{}

	users, err := s.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	doc.Users = make([]transfer.User, 0, len(users))
	for _, u := range users {
		doc.Users = append(doc.Users, transfer.User{User: u, PasswordHash: u.PasswordHash})
	}

	if doc.Posts, err = s.ListPosts(ctx); err != nil {
		return nil, err
	}
	if doc.Categories, err = s.ListCategories(ctx); err != nil {
		return nil, err
	}
	if doc.Comments, err = s.ListComments(ctx); err != nil {
		return nil, err
	}
	if doc.Contacts, err = s.ListContacts(ctx); err != nil {
		return nil, err
	}
	if doc.Newsletters, err = s.ListNewsletters(ctx); err != nil {
		return nil, err
	}
	return doc, nil
}

// Import inserts every record of a transfer document, preserving ids and
// timestamps. Referenced entities are inserted before their dependents.
func (s *Store) Import(ctx context.Context, doc *transfer.Document) error {
	for _, u := range doc.Users {
		_, err := s.CreateUser(ctx, store.CreateUserParams{
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
			return fmt.Errorf("importing user %s: %w", u.ID, err)
		}
	}
	for _, c := range doc.Categories {
		_, err := s.CreateCategory(ctx, store.CreateCategoryParams{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
			Color:       c.Color,
			CreatedAt:   c.CreatedAt,
			UpdatedAt:   c.UpdatedAt,
		})
		if err != nil {
			return fmt.Errorf("importing category %s: %w", c.ID, err)
		}
	}
	for _, p := range doc.Posts {
		_, err := s.CreatePost(ctx, store.CreatePostParams{
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
			return fmt.Errorf("importing post %s: %w", p.ID, err)
		}
	}
	for _, c := range doc.Comments {
		_, err := s.CreateComment(ctx, store.CreateCommentParams{
			ID:        c.ID,
			Content:   c.Content,
			AuthorID:  c.AuthorID,
			PostID:    c.PostID,
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
		})
		if err != nil {
			return fmt.Errorf("importing comment %s: %w", c.ID, err)
		}
	}
	for _, c := range doc.Contacts {
		_, err := s.CreateContact(ctx, store.CreateContactParams{
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
			return fmt.Errorf("importing contact %s: %w", c.ID, err)
		}
	}
	for _, n := range doc.Newsletters {
		_, err := s.CreateNewsletter(ctx, store.CreateNewsletterParams{
			ID:        n.ID,
			Email:     n.Email,
			Name:      n.Name,
			IsActive:  n.IsActive,
			CreatedAt: n.CreatedAt,
			UpdatedAt: n.UpdatedAt,
		})
		if err != nil {
			return fmt.Errorf("importing newsletter %s: %w", n.ID, err)
		}
	}
	return nil
}

// ClearAll removes every record. Dependent tables go first so foreign
// keys never block the sweep.
func (s *Store) ClearAll(ctx context.Context) error {
	for _, table := range []string{"comments", "posts", "categories", "users", "contacts", "newsletters"} {
		if _, err := s.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}
	return nil
}
