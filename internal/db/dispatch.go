// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package db

import (
	"context"

	"github.com/akhdar/akhdar-go/internal/model"
	"github.com/akhdar/akhdar-go/internal/store"
)

// The relational schema has no columns for derived lookups (slug, email,
// category membership), so the relational path lists and filters in
// memory. Content volumes here are small enough that this stays cheap.

// Users

func (m *Manager) GetAllUsers(ctx context.Context) ([]model.User, error) {
	if err := m.ensure(ctx); err != nil {
		return nil, err
	}
	if m.relationalActive() {
		return m.relational.ListUsers(ctx)
	}
	return m.fallback.ListUsers(ctx)
}

func (m *Manager) GetUser(ctx context.Context, id string) (*model.User, error) {
	if err := m.ensure(ctx); err != nil {
		return nil, err
	}
	if m.relationalActive() {
		return m.relational.GetUser(ctx, id)
	}
	return m.fallback.GetUser(ctx, id)
}

func (m *Manager) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	if err := m.ensure(ctx); err != nil {
		return nil, err
	}
	if m.relationalActive() {
		users, err := m.relational.ListUsers(ctx)
		if err != nil {
			return nil, err
		}
		for i := range users {
			if users[i].Email == email {
				return &users[i], nil
			}
		}
		return nil, nil
	}
	return m.fallback.GetUserByEmail(ctx, email)
}

func (m *Manager) CreateUser(ctx context.Context, params store.CreateUserParams) (*model.User, error) {
	if err := m.ensure(ctx); err != nil {
		return nil, err
	}
	if m.relationalActive() {
		return m.relational.CreateUser(ctx, params)
	}
	return m.fallback.CreateUser(ctx, params)
}

func (m *Manager) UpdateUser(ctx context.Context, id string, params store.UpdateUserParams) (*model.User, error) {
	if err := m.ensure(ctx); err != nil {
		return nil, err
	}
	if m.relationalActive() {
		return m.relational.UpdateUser(ctx, id, params)
	}
	return m.fallback.UpdateUser(ctx, id, params)
}

func (m *Manager) DeleteUser(ctx context.Context, id string) (bool, error) {
	if err := m.ensure(ctx); err != nil {
		return false, err
	}
	if m.relationalActive() {
		return m.relational.DeleteUser(ctx, id)
	}
	return m.fallback.DeleteUser(ctx, id)
}

// Posts

func (m *Manager) GetAllPosts(ctx context.Context) ([]model.Post, error) {
	if err := m.ensure(ctx); err != nil {
		return nil, err
	}
	if m.relationalActive() {
		return m.relational.ListPosts(ctx)
	}
	return m.fallback.ListPosts(ctx)
}

func (m *Manager) GetPublishedPosts(ctx context.Context) ([]model.Post, error) {
	if err := m.ensure(ctx); err != nil {
		return nil, err
	}
	if m.relationalActive() {
		return m.relational.ListPublishedPosts(ctx)
	}
	return m.fallback.ListPublishedPosts(ctx)
}

func (m *Manager) GetPostsByCategory(ctx context.Context, categoryID string) ([]model.Post, error) {
	if err := m.ensure(ctx); err != nil {
		return nil, err
	}
	if m.relationalActive() {
		posts, err := m.relational.ListPosts(ctx)
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
	return m.fallback.ListPostsByCategory(ctx, categoryID)
}

func (m *Manager) GetPostsByAuthor(ctx context.Context, authorID string) ([]model.Post, error) {
	if err := m.ensure(ctx); err != nil {
		return nil, err
	}
	if m.relationalActive() {
		posts, err := m.relational.ListPosts(ctx)
		if err != nil {
			return nil, err
		}
		matched := []model.Post{}
		for _, p := range posts {
			if p.AuthorID == authorID {
				matched = append(matched, p)
			}
		}
		return matched, nil
	}
	return m.fallback.ListPostsByAuthor(ctx, authorID)
}

func (m *Manager) GetPost(ctx context.Context, id string) (*model.Post, error) {
	if err := m.ensure(ctx); err != nil {
		return nil, err
	}
	if m.relationalActive() {
		return m.relational.GetPost(ctx, id)
	}
	return m.fallback.GetPost(ctx, id)
}

func (m *Manager) GetPostBySlug(ctx context.Context, slug string) (*model.Post, error) {
	if err := m.ensure(ctx); err != nil {
		return nil, err
	}
	if m.relationalActive() {
		posts, err := m.relational.ListPosts(ctx)
		if err != nil {
			return nil, err
		}
		for i := range posts {
			if posts[i].Slug == slug {
				return &posts[i], nil
			}
		}
		return nil, nil
	}
	return m.fallback.GetPostBySlug(ctx, slug)
}

func (m *Manager) CreatePost(ctx context.Context, params store.CreatePostParams) (*model.Post, error) {
	if err := m.ensure(ctx); err != nil {
		return nil, err
	}
	if m.relationalActive() {
		return m.relational.CreatePost(ctx, params)
	}
	return m.fallback.CreatePost(ctx, params)
}

func (m *Manager) UpdatePost(ctx context.Context, id string, params store.UpdatePostParams) (*model.Post, error) {
	if err := m.ensure(ctx); err != nil {
		return nil, err
	}
	if m.relationalActive() {
		return nil, store.ErrUnsupported
	}
	return m.fallback.UpdatePost(ctx, id, params)
}

func (m *Manager) DeletePost(ctx context.Context, id string) (bool, error) {
	if err := m.ensure(ctx); err != nil {
		return false, err
	}
	if m.relationalActive() {
		return false, store.ErrUnsupported
	}
	return m.fallback.DeletePost(ctx, id)
}

// Categories

func (m *Manager) GetAllCategories(ctx context.Context) ([]model.Category, error) {
	if err := m.ensure(ctx); err != nil {
		return nil, err
	}
	if m.relationalActive() {
		return m.relational.ListCategories(ctx)
	}
	return m.fallback.ListCategories(ctx)
}

func (m *Manager) GetCategory(ctx context.Context, id string) (*model.Category, error) {
	if err := m.ensure(ctx); err != nil {
		return nil, err
	}
	if m.relationalActive() {
		return m.relational.GetCategory(ctx, id)
	}
	return m.fallback.GetCategory(ctx, id)
}

func (m *Manager) CreateCategory(ctx context.Context, params store.CreateCategoryParams) (*model.Category, error) {
	if err := m.ensure(ctx); err != nil {
		return nil, err
	}
	if m.relationalActive() {
		return m.relational.CreateCategory(ctx, params)
	}
	return m.fallback.CreateCategory(ctx, params)
}

func (m *Manager) UpdateCategory(ctx context.Context, id string, params store.UpdateCategoryParams) (*model.Category, error) {
	if err := m.ensure(ctx); err != nil {
		return nil, err
	}
	if m.relationalActive() {
		return nil, store.ErrUnsupported
	}
	return m.fallback.UpdateCategory(ctx, id, params)
}

func (m *Manager) DeleteCategory(ctx context.Context, id string) (bool, error) {
	if err := m.ensure(ctx); err != nil {
		return false, err
	}
	if m.relationalActive() {
		return false, store.ErrUnsupported
	}
	return m.fallback.DeleteCategory(ctx, id)
}

// Comments

func (m *Manager) GetAllComments(ctx context.Context) ([]model.Comment, error) {
	if err := m.ensure(ctx); err != nil {
		return nil, err
	}
	if m.relationalActive() {
		return m.relational.ListComments(ctx)
	}
	return m.fallback.ListComments(ctx)
}

func (m *Manager) GetCommentsByPost(ctx context.Context, postID string) ([]model.Comment, error) {
	if err := m.ensure(ctx); err != nil {
		return nil, err
	}
	if m.relationalActive() {
		return m.relational.ListCommentsByPost(ctx, postID)
	}
	return m.fallback.ListCommentsByPost(ctx, postID)
}

func (m *Manager) CreateComment(ctx context.Context, params store.CreateCommentParams) (*model.Comment, error) {
	if err := m.ensure(ctx); err != nil {
		return nil, err
	}
	if m.relationalActive() {
		return m.relational.CreateComment(ctx, params)
	}
	return m.fallback.CreateComment(ctx, params)
}

func (m *Manager) UpdateComment(ctx context.Context, id string, params store.UpdateCommentParams) (*model.Comment, error) {
	if err := m.ensure(ctx); err != nil {
		return nil, err
	}
	if m.relationalActive() {
		return nil, store.ErrUnsupported
	}
	return m.fallback.UpdateComment(ctx, id, params)
}

func (m *Manager) DeleteComment(ctx context.Context, id string) (bool, error) {
	if err := m.ensure(ctx); err != nil {
		return false, err
	}
	if m.relationalActive() {
		return false, store.ErrUnsupported
	}
	return m.fallback.DeleteComment(ctx, id)
}

// Contacts

func (m *Manager) GetAllContacts(ctx context.Context) ([]model.Contact, error) {
	if err := m.ensure(ctx); err != nil {
		return nil, err
	}
	if m.relationalActive() {
		return m.relational.ListContacts(ctx)
	}
	return m.fallback.ListContacts(ctx)
}

func (m *Manager) CreateContact(ctx context.Context, params store.CreateContactParams) (*model.Contact, error) {
	if err := m.ensure(ctx); err != nil {
		return nil, err
	}
	if m.relationalActive() {
		return m.relational.CreateContact(ctx, params)
	}
	return m.fallback.CreateContact(ctx, params)
}

func (m *Manager) UpdateContact(ctx context.Context, id string, params store.UpdateContactParams) (*model.Contact, error) {
	if err := m.ensure(ctx); err != nil {
		return nil, err
	}
	if m.relationalActive() {
		return nil, store.ErrUnsupported
	}
	return m.fallback.UpdateContact(ctx, id, params)
}

func (m *Manager) DeleteContact(ctx context.Context, id string) (bool, error) {
	if err := m.ensure(ctx); err != nil {
		return false, err
	}
	if m.relationalActive() {
		return false, store.ErrUnsupported
	}
	return m.fallback.DeleteContact(ctx, id)
}

// Newsletter

func (m *Manager) GetAllNewsletters(ctx context.Context) ([]model.Newsletter, error) {
	if err := m.ensure(ctx); err != nil {
		return nil, err
	}
	if m.relationalActive() {
		return m.relational.ListNewsletters(ctx)
	}
	return m.fallback.ListNewsletters(ctx)
}

func (m *Manager) GetNewsletterByEmail(ctx context.Context, email string) (*model.Newsletter, error) {
	if err := m.ensure(ctx); err != nil {
		return nil, err
	}
	if m.relationalActive() {
		subs, err := m.relational.ListNewsletters(ctx)
		if err != nil {
			return nil, err
		}
		for i := range subs {
			if subs[i].Email == email {
				return &subs[i], nil
			}
		}
		return nil, nil
	}
	return m.fallback.GetNewsletterByEmail(ctx, email)
}

func (m *Manager) CreateNewsletter(ctx context.Context, params store.CreateNewsletterParams) (*model.Newsletter, error) {
	if err := m.ensure(ctx); err != nil {
		return nil, err
	}
	if m.relationalActive() {
		return m.relational.CreateNewsletter(ctx, params)
	}
	return m.fallback.CreateNewsletter(ctx, params)
}

func (m *Manager) UpdateNewsletter(ctx context.Context, id string, params store.UpdateNewsletterParams) (*model.Newsletter, error) {
	if err := m.ensure(ctx); err != nil {
		return nil, err
	}
	if m.relationalActive() {
		return nil, store.ErrUnsupported
	}
	return m.fallback.UpdateNewsletter(ctx, id, params)
}

func (m *Manager) DeleteNewsletter(ctx context.Context, id string) (bool, error) {
	if err := m.ensure(ctx); err != nil {
		return false, err
	}
	if m.relationalActive() {
		return false, store.ErrUnsupported
	}
	return m.fallback.DeleteNewsletter(ctx, id)
}

// SubscribeNewsletter creates a subscription for a new address. On the
// relational path an existing subscription is returned as-is when active;
// reactivating an inactive one needs an update the schema does not
// support, so that case reports ErrUnsupported.
func (m *Manager) SubscribeNewsletter(ctx context.Context, email, name string) (*model.Newsletter, error) {
	if err := m.ensure(ctx); err != nil {
		return nil, err
	}
	if !m.relationalActive() {
		return m.fallback.SubscribeNewsletter(ctx, email, name)
	}

	existing, err := m.GetNewsletterByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.IsActive {
			return existing, nil
		}
		return nil, store.ErrUnsupported
	}
	return m.relational.CreateNewsletter(ctx, store.CreateNewsletterParams{
		Email:    email,
		Name:     name,
		IsActive: true,
	})
}

// UnsubscribeNewsletter deactivates a subscription on the fallback path.
// The relational schema has no newsletter update support.
func (m *Manager) UnsubscribeNewsletter(ctx context.Context, email string) (bool, error) {
	if err := m.ensure(ctx); err != nil {
		return false, err
	}
	if m.relationalActive() {
		return false, store.ErrUnsupported
	}
	return m.fallback.UnsubscribeNewsletter(ctx, email)
}
