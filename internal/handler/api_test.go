// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akhdar/akhdar-go/internal/db"
	"github.com/akhdar/akhdar-go/internal/model"
	"github.com/akhdar/akhdar-go/internal/store"
	"github.com/akhdar/akhdar-go/internal/store/local"
)

func newTestServer(t *testing.T) (*db.Manager, http.Handler) {
	t.Helper()

	sqlDB, err := local.NewDB(filepath.Join(t.TempDir(), "api.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, local.Migrate(sqlDB))

	manager := db.New(nil, local.New(sqlDB), slog.New(slog.NewTextHandler(io.Discard, nil)))
	srv := NewServer(manager, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return manager, srv.Routes()
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	_, h := newTestServer(t)

	rec := doJSON(t, h, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok"`)
}

func TestContactEndToEnd(t *testing.T) {
	_, h := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/contacts", map[string]string{
		"name":    "Ahmed",
		"email":   "a@x.com",
		"subject": "Hi",
		"message": "Test",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created model.Contact
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, model.ContactStatusPending, created.Status)

	rec = doJSON(t, h, http.MethodGet, "/contacts", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var contacts []model.Contact
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &contacts))
	require.Len(t, contacts, 1)
	assert.Equal(t, created.ID, contacts[0].ID)
}

func TestContactValidation(t *testing.T) {
	_, h := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/contacts", map[string]string{"name": "Ahmed"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "validation_failed")
}

func TestPostCreateSanitizesContent(t *testing.T) {
	manager, h := newTestServer(t)
	ctx := context.Background()

	author, err := manager.CreateUser(ctx, store.CreateUserParams{Email: "a@akhdar.org"})
	require.NoError(t, err)

	rec := doJSON(t, h, http.MethodPost, "/posts", map[string]any{
		"title":    "Solar Power",
		"content":  `<p>hello</p><script>alert("x")</script>`,
		"authorId": author.ID,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var p model.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Contains(t, p.Content, "<p>hello</p>")
	assert.NotContains(t, p.Content, "<script>")
	assert.Equal(t, "solar-power", p.Slug)
}

func TestGetPostBySlug(t *testing.T) {
	manager, h := newTestServer(t)
	ctx := context.Background()

	author, err := manager.CreateUser(ctx, store.CreateUserParams{Email: "a@akhdar.org"})
	require.NoError(t, err)
	_, err = manager.CreatePost(ctx, store.CreatePostParams{
		Title: "Coastal Wetlands", AuthorID: author.ID,
	})
	require.NoError(t, err)

	rec := doJSON(t, h, http.MethodGet, "/posts/slug/coastal-wetlands", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/posts/slug/no-such-post", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Uppercase is not a valid slug
	rec = doJSON(t, h, http.MethodGet, "/posts/slug/Coastal-Wetlands", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestUserNotFound(t *testing.T) {
	_, h := newTestServer(t)

	rec := doJSON(t, h, http.MethodGet, "/users/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "not_found")
}

func TestUserPasswordNeverSerialized(t *testing.T) {
	_, h := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/users", map[string]string{
		"email":    "fatima@akhdar.org",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret123")
	assert.NotContains(t, rec.Body.String(), "passwordHash")
}

func TestNewsletterSubscribeFlow(t *testing.T) {
	_, h := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/newsletter/subscribe",
		map[string]string{"email": "samir@example.org"})
	require.Equal(t, http.StatusOK, rec.Code)

	var sub model.Newsletter
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sub))
	assert.True(t, sub.IsActive)

	rec = doJSON(t, h, http.MethodPost, "/newsletter/unsubscribe",
		map[string]string{"email": "samir@example.org"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/newsletter/email/samir@example.org", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sub))
	assert.False(t, sub.IsActive)

	rec = doJSON(t, h, http.MethodPost, "/newsletter/unsubscribe",
		map[string]string{"email": "never@example.org"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminStatusAndExport(t *testing.T) {
	_, h := newTestServer(t)

	rec := doJSON(t, h, http.MethodGet, "/admin/status", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var status db.Status
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, db.StoreTypeFallback, status.Type)

	rec = doJSON(t, h, http.MethodGet, "/admin/export", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	for _, key := range []string{"users", "posts", "categories", "comments", "contacts", "newsletters"} {
		assert.Contains(t, rec.Body.String(), `"`+key+`"`)
	}
}

func TestAdminSeedAndClear(t *testing.T) {
	_, h := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/admin/initialize-sample-data", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/posts/published", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var posts []model.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &posts))
	assert.NotEmpty(t, posts)

	rec = doJSON(t, h, http.MethodDelete, "/admin/clear-all", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/posts", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &posts))
	assert.Empty(t, posts)
}

func TestInvalidJSONBodyRejected(t *testing.T) {
	_, h := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/contacts", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
