// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akhdar/akhdar-go/internal/model"
	"github.com/akhdar/akhdar-go/internal/store"
)

func TestGetUserNotFoundIsNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":{"code":"not_found","message":"user not found"}}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	u, err := c.GetUser(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestCreateUserSendsCanonicalJSON(t *testing.T) {
	var received map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/users", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(model.User{ID: "u1", Email: "a@b.org", Role: model.RoleUser})
	}))
	defer srv.Close()

	c := New(srv.URL)
	u, err := c.CreateUser(context.Background(), store.CreateUserParams{
		Email:    "a@b.org",
		Role:     model.RoleUser,
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)

	assert.Equal(t, "a@b.org", received["email"])
	assert.Equal(t, "secret123", received["password"])
	// Server-generated fields never travel in the request
	assert.NotContains(t, received, "id")
	assert.NotContains(t, received, "passwordHash")
}

func TestDeleteMapsStatusToBool(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/posts/present" {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(srv.URL)

	ok, err := c.DeletePost(context.Background(), "present")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.DeletePost(context.Background(), "absent")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestErrorEnvelopeSurfacesMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error":{"code":"conflict","message":"email already exists"}}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.CreateUser(context.Background(), store.CreateUserParams{Email: "dup@b.org"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email already exists")
}

func TestListNormalizesNilToEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`null`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	posts, err := c.ListPosts(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)
}

func TestSubscribeNewsletter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/newsletter/subscribe", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "samir@example.org", body["email"])

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(model.Newsletter{ID: "n1", Email: body["email"], IsActive: true})
	}))
	defer srv.Close()

	c := New(srv.URL)
	sub, err := c.SubscribeNewsletter(context.Background(), "samir@example.org", "")
	require.NoError(t, err)
	assert.True(t, sub.IsActive)
}
