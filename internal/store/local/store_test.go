// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package local

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akhdar/akhdar-go/internal/model"
	"github.com/akhdar/akhdar-go/internal/store"
)

func testStore(t *testing.T) *Store {
	t.Helper()

	db, err := NewDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Migrate(db))
	return New(db)
}

func TestUserCRUD(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	created, err := s.CreateUser(ctx, store.CreateUserParams{
		Email:    "fatima@akhdar.org",
		Name:     "Fatima",
		Role:     model.RoleAdmin,
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, model.RoleAdmin, created.Role)
	assert.NotEmpty(t, created.PasswordHash)
	assert.NotEqual(t, "secret123", created.PasswordHash)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := s.GetUser(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created.Email, got.Email)

	byEmail, err := s.GetUserByEmail(ctx, "fatima@akhdar.org")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, created.ID, byEmail.ID)

	newName := "Fatima Z."
	updated, err := s.UpdateUser(ctx, created.ID, store.UpdateUserParams{Name: &newName})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Fatima Z.", updated.Name)

	deleted, err := s.DeleteUser(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	gone, err := s.GetUser(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	// Deleting again reports absence, not an error
	deleted, err = s.DeleteUser(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestGetUserAbsentReturnsNil(t *testing.T) {
	s := testStore(t)

	u, err := s.GetUser(context.Background(), "no-such-id")
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestPostLifecycle(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	author, err := s.CreateUser(ctx, store.CreateUserParams{Email: "author@akhdar.org"})
	require.NoError(t, err)

	cat, err := s.CreateCategory(ctx, store.CreateCategoryParams{Name: "Clean Energy"})
	require.NoError(t, err)

	draft, err := s.CreatePost(ctx, store.CreatePostParams{
		Title:      "Solar Power for Schools",
		Content:    "<p>Panels on every roof.</p>",
		Status:     model.PostStatusDraft,
		AuthorID:   author.ID,
		Categories: []string{cat.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, "solar-power-for-schools", draft.Slug)
	assert.Nil(t, draft.PublishedAt)

	// Publishing stamps the publication time once
	published := model.PostStatusPublished
	got, err := s.UpdatePost(ctx, draft.ID, store.UpdatePostParams{Status: &published})
	require.NoError(t, err)
	require.NotNil(t, got)
	require.NotNil(t, got.PublishedAt)
	firstPublished := *got.PublishedAt

	title := "Solar Power for Every School"
	got, err = s.UpdatePost(ctx, draft.ID, store.UpdatePostParams{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "solar-power-for-every-school", got.Slug)
	require.NotNil(t, got.PublishedAt)
	assert.WithinDuration(t, firstPublished, *got.PublishedAt, time.Second)

	bySlug, err := s.GetPostBySlug(ctx, "solar-power-for-every-school")
	require.NoError(t, err)
	require.NotNil(t, bySlug)
	assert.Equal(t, draft.ID, bySlug.ID)

	byCategory, err := s.ListPostsByCategory(ctx, cat.ID)
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, draft.ID, byCategory[0].ID)

	byAuthor, err := s.ListPostsByAuthor(ctx, author.ID)
	require.NoError(t, err)
	assert.Len(t, byAuthor, 1)

	publishedPosts, err := s.ListPublishedPosts(ctx)
	require.NoError(t, err)
	assert.Len(t, publishedPosts, 1)
}

func TestCategorySlugDerivation(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	c, err := s.CreateCategory(ctx, store.CreateCategoryParams{Name: "Clean Energy"})
	require.NoError(t, err)
	assert.Equal(t, "clean-energy", c.Slug)
	assert.Equal(t, model.DefaultCategoryColor, c.Color)

	got, err := s.GetCategory(ctx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "clean-energy", got.Slug)
}

func TestCommentsByPost(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	author, err := s.CreateUser(ctx, store.CreateUserParams{Email: "a@akhdar.org"})
	require.NoError(t, err)
	post, err := s.CreatePost(ctx, store.CreatePostParams{Title: "Wetlands", AuthorID: author.ID})
	require.NoError(t, err)

	for _, text := range []string{"first", "second"} {
		_, err := s.CreateComment(ctx, store.CreateCommentParams{
			Content:  text,
			AuthorID: author.ID,
			PostID:   post.ID,
		})
		require.NoError(t, err)
	}

	comments, err := s.ListCommentsByPost(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "first", comments[0].Content)

	// Deleting the post cascades to its comments
	deleted, err := s.DeletePost(ctx, post.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	comments, err = s.ListCommentsByPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestContactCreateThenList(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	created, err := s.CreateContact(ctx, store.CreateContactParams{
		Name:    "Layla",
		Email:   "layla@example.org",
		Subject: "Volunteering",
		Message: "How can I help?",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, model.ContactStatusPending, created.Status)
	assert.False(t, created.CreatedAt.IsZero())
	assert.False(t, created.UpdatedAt.IsZero())

	contacts, err := s.ListContacts(ctx)
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, created.ID, contacts[0].ID)
	assert.Equal(t, "How can I help?", contacts[0].Message)
}

func TestNewsletterSubscribeUnsubscribe(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	sub, err := s.SubscribeNewsletter(ctx, "samir@example.org", "Samir")
	require.NoError(t, err)
	assert.True(t, sub.IsActive)

	// Unsubscribe deactivates but keeps the record
	ok, err := s.UnsubscribeNewsletter(ctx, "samir@example.org")
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := s.GetNewsletterByEmail(ctx, "samir@example.org")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.IsActive)

	// Subscribing again reactivates the same record
	resub, err := s.SubscribeNewsletter(ctx, "samir@example.org", "")
	require.NoError(t, err)
	assert.Equal(t, sub.ID, resub.ID)
	assert.True(t, resub.IsActive)
	assert.Equal(t, "Samir", resub.Name)

	ok, err = s.UnsubscribeNewsletter(ctx, "never@example.org")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestExportImportRoundTrip(t *testing.T) {
	src := testStore(t)
	ctx := context.Background()

	user, err := src.CreateUser(ctx, store.CreateUserParams{
		Email:    "admin@akhdar.org",
		Role:     model.RoleAdmin,
		Password: "secret123",
	})
	require.NoError(t, err)
	cat, err := src.CreateCategory(ctx, store.CreateCategoryParams{Name: "Conservation"})
	require.NoError(t, err)
	post, err := src.CreatePost(ctx, store.CreatePostParams{
		Title:      "Wetlands",
		Status:     model.PostStatusPublished,
		AuthorID:   user.ID,
		Categories: []string{cat.ID},
	})
	require.NoError(t, err)

	doc, err := src.Export(ctx)
	require.NoError(t, err)
	require.Len(t, doc.Users, 1)
	assert.Equal(t, user.PasswordHash, doc.Users[0].PasswordHash)

	dst := testStore(t)
	require.NoError(t, dst.Import(ctx, doc))

	// IDs and credential hashes survive the round trip
	gotUser, err := dst.GetUser(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, gotUser)
	assert.Equal(t, user.PasswordHash, gotUser.PasswordHash)

	gotPost, err := dst.GetPost(ctx, post.ID)
	require.NoError(t, err)
	require.NotNil(t, gotPost)
	assert.Equal(t, []string{cat.ID}, gotPost.Categories)
}

func TestClearAll(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	require.NoError(t, s.SeedSampleData(ctx))
	require.NoError(t, s.ClearAll(ctx))

	doc, err := s.Export(ctx)
	require.NoError(t, err)
	assert.True(t, doc.IsEmpty())
}

func TestSeedSampleDataIdempotent(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	require.NoError(t, s.SeedSampleData(ctx))
	users, err := s.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)

	posts, err := s.ListPosts(ctx)
	require.NoError(t, err)
	assert.Len(t, posts, 3)

	// A second run must not duplicate anything
	require.NoError(t, s.SeedSampleData(ctx))
	posts, err = s.ListPosts(ctx)
	require.NoError(t, err)
	assert.Len(t, posts, 3)
}
