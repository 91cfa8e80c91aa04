// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import "time"

// Create parameters carry the caller-supplied fields for each entity kind.
// ID, CreatedAt and UpdatedAt are normally zero and generated by the store;
// the migration path sets them to preserve identifiers and history across
// stores (foreign keys reference the original IDs).

// CreateUserParams holds fields for creating a user.
type CreateUserParams struct {
	ID           string    `json:"-"`
	Email        string    `json:"email"`
	Name         string    `json:"name,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Role         string    `json:"role"`
	Password     string    `json:"password,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

// CreatePostParams holds fields for creating a post.
type CreatePostParams struct {
	Title      string    `json:"title"`
	Content    string    `json:"content,omitempty"`
	Excerpt    string    `json:"excerpt,omitempty"`
	Status     string    `json:"status"`
	AuthorID   string    `json:"authorId"`
	Categories []string  `json:"categories"`
	ID         string    `json:"-"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
}

// CreateCategoryParams holds fields for creating a category.
type CreateCategoryParams struct {
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Color       string    `json:"color,omitempty"`
	ID          string    `json:"-"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

// CreateCommentParams holds fields for creating a comment.
type CreateCommentParams struct {
	Content   string    `json:"content"`
	AuthorID  string    `json:"authorId"`
	PostID    string    `json:"postId"`
	ID        string    `json:"-"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// CreateContactParams holds fields for creating a contact submission.
type CreateContactParams struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status,omitempty"`
	ID        string    `json:"-"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// CreateNewsletterParams holds fields for creating a newsletter subscription.
type CreateNewsletterParams struct {
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	IsActive  bool      `json:"isActive"`
	ID        string    `json:"-"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// Update parameters are partial: nil fields are left unchanged. Every
// applied update advances the entity's UpdatedAt timestamp.

// UpdateUserParams holds optional fields for updating a user.
type UpdateUserParams struct {
	Email    *string `json:"email,omitempty"`
	Name     *string `json:"name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Role     *string `json:"role,omitempty"`
	Password *string `json:"password,omitempty"`
}

// UpdatePostParams holds optional fields for updating a post.
type UpdatePostParams struct {
	Title      *string   `json:"title,omitempty"`
	Content    *string   `json:"content,omitempty"`
	Excerpt    *string   `json:"excerpt,omitempty"`
	Status     *string   `json:"status,omitempty"`
	AuthorID   *string   `json:"authorId,omitempty"`
	Categories *[]string `json:"categories,omitempty"`
}

// UpdateCategoryParams holds optional fields for updating a category.
type UpdateCategoryParams struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Color       *string `json:"color,omitempty"`
}

// UpdateCommentParams holds optional fields for updating a comment.
type UpdateCommentParams struct {
	Content *string `json:"content,omitempty"`
}

// UpdateContactParams holds optional fields for updating a contact.
type UpdateContactParams struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Subject *string `json:"subject,omitempty"`
	Message *string `json:"message,omitempty"`
	Status  *string `json:"status,omitempty"`
}

// UpdateNewsletterParams holds optional fields for updating a subscription.
type UpdateNewsletterParams struct {
	Email    *string `json:"email,omitempty"`
	Name     *string `json:"name,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
}
