// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package rest

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/akhdar/akhdar-go/internal/model"
	"github.com/akhdar/akhdar-go/internal/store"
)

func getList[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	var items []T
	if err := c.do(ctx, http.MethodGet, path, nil, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func getOne[T any](ctx context.Context, c *Client, path string) (*T, error) {
	var item T
	err := c.do(ctx, http.MethodGet, path, nil, &item)
	if errors.Is(err, errNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func postOne[T any](ctx context.Context, c *Client, path string, body any) (*T, error) {
	var item T
	if err := c.do(ctx, http.MethodPost, path, body, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func putOne[T any](ctx context.Context, c *Client, path string, body any) (*T, error) {
	var item T
	err := c.do(ctx, http.MethodPut, path, body, &item)
	if errors.Is(err, errNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func deleteOne(ctx context.Context, c *Client, path string) (bool, error) {
	err := c.do(ctx, http.MethodDelete, path, nil, nil)
	if errors.Is(err, errNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Users

func (c *Client) ListUsers(ctx context.Context) ([]model.User, error) {
	return getList[model.User](ctx, c, "/users")
}

func (c *Client) GetUser(ctx context.Context, id string) (*model.User, error) {
	return getOne[model.User](ctx, c, "/users/"+url.PathEscape(id))
}

func (c *Client) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return getOne[model.User](ctx, c, "/users/email/"+url.PathEscape(email))
}

func (c *Client) CreateUser(ctx context.Context, params store.CreateUserParams) (*model.User, error) {
	return postOne[model.User](ctx, c, "/users", params)
}

func (c *Client) UpdateUser(ctx context.Context, id string, params store.UpdateUserParams) (*model.User, error) {
	return putOne[model.User](ctx, c, "/users/"+url.PathEscape(id), params)
}

func (c *Client) DeleteUser(ctx context.Context, id string) (bool, error) {
	return deleteOne(ctx, c, "/users/"+url.PathEscape(id))
}

// Posts

func (c *Client) ListPosts(ctx context.Context) ([]model.Post, error) {
	return getList[model.Post](ctx, c, "/posts")
}

func (c *Client) ListPublishedPosts(ctx context.Context) ([]model.Post, error) {
	return getList[model.Post](ctx, c, "/posts/published")
}

func (c *Client) ListPostsByCategory(ctx context.Context, categoryID string) ([]model.Post, error) {
	return getList[model.Post](ctx, c, "/posts/category/"+url.PathEscape(categoryID))
}

func (c *Client) ListPostsByAuthor(ctx context.Context, authorID string) ([]model.Post, error) {
	return getList[model.Post](ctx, c, "/posts/author/"+url.PathEscape(authorID))
}

func (c *Client) GetPost(ctx context.Context, id string) (*model.Post, error) {
	return getOne[model.Post](ctx, c, "/posts/"+url.PathEscape(id))
}

func (c *Client) GetPostBySlug(ctx context.Context, slug string) (*model.Post, error) {
	return getOne[model.Post](ctx, c, "/posts/slug/"+url.PathEscape(slug))
}

func (c *Client) CreatePost(ctx context.Context, params store.CreatePostParams) (*model.Post, error) {
	return postOne[model.Post](ctx, c, "/posts", params)
}

func (c *Client) UpdatePost(ctx context.Context, id string, params store.UpdatePostParams) (*model.Post, error) {
	return putOne[model.Post](ctx, c, "/posts/"+url.PathEscape(id), params)
}

func (c *Client) DeletePost(ctx context.Context, id string) (bool, error) {
	return deleteOne(ctx, c, "/posts/"+url.PathEscape(id))
}

// Categories

func (c *Client) ListCategories(ctx context.Context) ([]model.Category, error) {
	return getList[model.Category](ctx, c, "/categories")
}

func (c *Client) GetCategory(ctx context.Context, id string) (*model.Category, error) {
	return getOne[model.Category](ctx, c, "/categories/"+url.PathEscape(id))
}

func (c *Client) CreateCategory(ctx context.Context, params store.CreateCategoryParams) (*model.Category, error) {
	return postOne[model.Category](ctx, c, "/categories", params)
}

func (c *Client) UpdateCategory(ctx context.Context, id string, params store.UpdateCategoryParams) (*model.Category, error) {
	return putOne[model.Category](ctx, c, "/categories/"+url.PathEscape(id), params)
}

func (c *Client) DeleteCategory(ctx context.Context, id string) (bool, error) {
	return deleteOne(ctx, c, "/categories/"+url.PathEscape(id))
}

// Comments

func (c *Client) ListComments(ctx context.Context) ([]model.Comment, error) {
	return getList[model.Comment](ctx, c, "/comments")
}

func (c *Client) ListCommentsByPost(ctx context.Context, postID string) ([]model.Comment, error) {
	return getList[model.Comment](ctx, c, "/comments/post/"+url.PathEscape(postID))
}

func (c *Client) CreateComment(ctx context.Context, params store.CreateCommentParams) (*model.Comment, error) {
	return postOne[model.Comment](ctx, c, "/comments", params)
}

func (c *Client) UpdateComment(ctx context.Context, id string, params store.UpdateCommentParams) (*model.Comment, error) {
	return putOne[model.Comment](ctx, c, "/comments/"+url.PathEscape(id), params)
}

func (c *Client) DeleteComment(ctx context.Context, id string) (bool, error) {
	return deleteOne(ctx, c, "/comments/"+url.PathEscape(id))
}

// Contacts

func (c *Client) ListContacts(ctx context.Context) ([]model.Contact, error) {
	return getList[model.Contact](ctx, c, "/contacts")
}

func (c *Client) CreateContact(ctx context.Context, params store.CreateContactParams) (*model.Contact, error) {
	return postOne[model.Contact](ctx, c, "/contacts", params)
}

func (c *Client) UpdateContact(ctx context.Context, id string, params store.UpdateContactParams) (*model.Contact, error) {
	return putOne[model.Contact](ctx, c, "/contacts/"+url.PathEscape(id), params)
}

func (c *Client) DeleteContact(ctx context.Context, id string) (bool, error) {
	return deleteOne(ctx, c, "/contacts/"+url.PathEscape(id))
}

// Newsletter

func (c *Client) ListNewsletters(ctx context.Context) ([]model.Newsletter, error) {
	return getList[model.Newsletter](ctx, c, "/newsletters")
}

func (c *Client) GetNewsletterByEmail(ctx context.Context, email string) (*model.Newsletter, error) {
	return getOne[model.Newsletter](ctx, c, "/newsletter/email/"+url.PathEscape(email))
}

func (c *Client) CreateNewsletter(ctx context.Context, params store.CreateNewsletterParams) (*model.Newsletter, error) {
	return postOne[model.Newsletter](ctx, c, "/newsletters", params)
}

func (c *Client) UpdateNewsletter(ctx context.Context, id string, params store.UpdateNewsletterParams) (*model.Newsletter, error) {
	return putOne[model.Newsletter](ctx, c, "/newsletters/"+url.PathEscape(id), params)
}

func (c *Client) DeleteNewsletter(ctx context.Context, id string) (bool, error) {
	return deleteOne(ctx, c, "/newsletters/"+url.PathEscape(id))
}

func (c *Client) SubscribeNewsletter(ctx context.Context, email, name string) (*model.Newsletter, error) {
	body := map[string]string{"email": email}
	if name != "" {
		body["name"] = name
	}
	return postOne[model.Newsletter](ctx, c, "/newsletter/subscribe", body)
}

func (c *Client) UnsubscribeNewsletter(ctx context.Context, email string) (bool, error) {
	err := c.do(ctx, http.MethodPost, "/newsletter/unsubscribe", map[string]string{"email": email}, nil)
	if errors.Is(err, errNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
