// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"

	"github.com/akhdar/akhdar-go/internal/model"
	"github.com/akhdar/akhdar-go/internal/transfer"
)

// Store is the full persistence surface of the fallback store: per-entity
// CRUD plus the derived lookups and administrative operations the site
// needs. The local SQLite store and the REST client both implement it.
// Reads report absent records as (nil, nil); deletes report absence as
// (false, nil).
type Store interface {
	// Users
	ListUsers(ctx context.Context) ([]model.User, error)
	GetUser(ctx context.Context, id string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	CreateUser(ctx context.Context, params CreateUserParams) (*model.User, error)
	UpdateUser(ctx context.Context, id string, params UpdateUserParams) (*model.User, error)
	DeleteUser(ctx context.Context, id string) (bool, error)

	// Posts
	ListPosts(ctx context.Context) ([]model.Post, error)
	ListPublishedPosts(ctx context.Context) ([]model.Post, error)
	ListPostsByCategory(ctx context.Context, categoryID string) ([]model.Post, error)
	ListPostsByAuthor(ctx context.Context, authorID string) ([]model.Post, error)
	GetPost(ctx context.Context, id string) (*model.Post, error)
	GetPostBySlug(ctx context.Context, slug string) (*model.Post, error)
	CreatePost(ctx context.Context, params CreatePostParams) (*model.Post, error)
	UpdatePost(ctx context.Context, id string, params UpdatePostParams) (*model.Post, error)
	DeletePost(ctx context.Context, id string) (bool, error)

	// Categories
	ListCategories(ctx context.Context) ([]model.Category, error)
	GetCategory(ctx context.Context, id string) (*model.Category, error)
	CreateCategory(ctx context.Context, params CreateCategoryParams) (*model.Category, error)
	UpdateCategory(ctx context.Context, id string, params UpdateCategoryParams) (*model.Category, error)
	DeleteCategory(ctx context.Context, id string) (bool, error)

	// Comments
	ListComments(ctx context.Context) ([]model.Comment, error)
	ListCommentsByPost(ctx context.Context, postID string) ([]model.Comment, error)
	CreateComment(ctx context.Context, params CreateCommentParams) (*model.Comment, error)
	UpdateComment(ctx context.Context, id string, params UpdateCommentParams) (*model.Comment, error)
	DeleteComment(ctx context.Context, id string) (bool, error)

	// Contacts
	ListContacts(ctx context.Context) ([]model.Contact, error)
	CreateContact(ctx context.Context, params CreateContactParams) (*model.Contact, error)
	UpdateContact(ctx context.Context, id string, params UpdateContactParams) (*model.Contact, error)
	DeleteContact(ctx context.Context, id string) (bool, error)

	// Newsletter
	ListNewsletters(ctx context.Context) ([]model.Newsletter, error)
	GetNewsletterByEmail(ctx context.Context, email string) (*model.Newsletter, error)
	CreateNewsletter(ctx context.Context, params CreateNewsletterParams) (*model.Newsletter, error)
	UpdateNewsletter(ctx context.Context, id string, params UpdateNewsletterParams) (*model.Newsletter, error)
	DeleteNewsletter(ctx context.Context, id string) (bool, error)
	SubscribeNewsletter(ctx context.Context, email, name string) (*model.Newsletter, error)
	UnsubscribeNewsletter(ctx context.Context, email string) (bool, error)

	// Administrative operations
	Export(ctx context.Context) (*transfer.Document, error)
	Import(ctx context.Context, doc *transfer.Document) error
	ClearAll(ctx context.Context) error
	SeedSampleData(ctx context.Context) error
}

// Relational is the narrower contract of the MySQL adapter. Update and
// delete for posts, categories, comments, contacts and newsletters are
// deliberately absent: the facade reports ErrUnsupported for them while
// the relational store is authoritative. Derived lookups (by category,
// author, slug, email) are likewise absent; the facade filters full
// listings client-side.
type Relational interface {
	Connect(ctx context.Context) error
	Close() error
	Healthy(ctx context.Context) bool

	ListUsers(ctx context.Context) ([]model.User, error)
	GetUser(ctx context.Context, id string) (*model.User, error)
	CreateUser(ctx context.Context, params CreateUserParams) (*model.User, error)
	UpdateUser(ctx context.Context, id string, params UpdateUserParams) (*model.User, error)
	DeleteUser(ctx context.Context, id string) (bool, error)

	ListPosts(ctx context.Context) ([]model.Post, error)
	ListPublishedPosts(ctx context.Context) ([]model.Post, error)
	GetPost(ctx context.Context, id string) (*model.Post, error)
	CreatePost(ctx context.Context, params CreatePostParams) (*model.Post, error)

	ListCategories(ctx context.Context) ([]model.Category, error)
	GetCategory(ctx context.Context, id string) (*model.Category, error)
	CreateCategory(ctx context.Context, params CreateCategoryParams) (*model.Category, error)

	ListComments(ctx context.Context) ([]model.Comment, error)
	ListCommentsByPost(ctx context.Context, postID string) ([]model.Comment, error)
	CreateComment(ctx context.Context, params CreateCommentParams) (*model.Comment, error)

	ListContacts(ctx context.Context) ([]model.Contact, error)
	CreateContact(ctx context.Context, params CreateContactParams) (*model.Contact, error)

	ListNewsletters(ctx context.Context) ([]model.Newsletter, error)
	CreateNewsletter(ctx context.Context, params CreateNewsletterParams) (*model.Newsletter, error)
}
