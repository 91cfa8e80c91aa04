// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package mysql

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/akhdar/akhdar-go/internal/model"
)

func TestRoleToSQL(t *testing.T) {
	tests := []struct {
		name string
		role string
		want string
	}{
		{"admin maps to lowercase", model.RoleAdmin, "admin"},
		{"user maps to lowercase", model.RoleUser, "user"},
		{"moderator has no column value and stores as user", model.RoleModerator, "user"},
		{"unknown defaults to user", "SUPERVISOR", "user"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, roleToSQL(tt.role))
		})
	}
}

func TestRoleFromSQL(t *testing.T) {
	assert.Equal(t, model.RoleAdmin, roleFromSQL("admin"))
	assert.Equal(t, model.RoleUser, roleFromSQL("user"))
	// A read can never produce MODERATOR
	assert.Equal(t, model.RoleUser, roleFromSQL("moderator"))
}

func TestRoleRoundTrip(t *testing.T) {
	assert.Equal(t, model.RoleAdmin, roleFromSQL(roleToSQL(model.RoleAdmin)))
	assert.Equal(t, model.RoleUser, roleFromSQL(roleToSQL(model.RoleUser)))
}

func TestPostStatusToSQL(t *testing.T) {
	tests := []struct {
		status string
		want   string
	}{
		{model.PostStatusDraft, "draft"},
		{model.PostStatusPublished, "published"},
		{model.PostStatusArchived, "archived"},
		{"", "draft"},
		{"PENDING", "draft"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, postStatusToSQL(tt.status), "status %q", tt.status)
	}
}

func TestPostStatusFromSQL(t *testing.T) {
	assert.Equal(t, model.PostStatusDraft, postStatusFromSQL("draft"))
	assert.Equal(t, model.PostStatusPublished, postStatusFromSQL("published"))
	assert.Equal(t, model.PostStatusArchived, postStatusFromSQL("archived"))
	assert.Equal(t, model.PostStatusDraft, postStatusFromSQL(""))
}

func TestContactStatusMapping(t *testing.T) {
	tests := []struct {
		canonical string
		column    string
	}{
		{model.ContactStatusPending, "pending"},
		{model.ContactStatusReviewed, "reviewed"},
		{model.ContactStatusResponded, "responded"},
		{model.ContactStatusClosed, "closed"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.column, contactStatusToSQL(tt.canonical))
		assert.Equal(t, tt.canonical, contactStatusFromSQL(tt.column))
	}

	assert.Equal(t, "pending", contactStatusToSQL("ESCALATED"))
	assert.Equal(t, model.ContactStatusPending, contactStatusFromSQL("unknown"))
}

func TestActiveMapping(t *testing.T) {
	assert.Equal(t, 1, activeToSQL(true))
	assert.Equal(t, 0, activeToSQL(false))
	assert.True(t, activeFromSQL(1))
	assert.False(t, activeFromSQL(0))
}

func TestCategoryIDToSQL(t *testing.T) {
	assert.False(t, categoryIDToSQL(nil).Valid)
	assert.False(t, categoryIDToSQL([]string{}).Valid)
	assert.False(t, categoryIDToSQL([]string{""}).Valid)

	// Only the first category survives the single-FK column
	got := categoryIDToSQL([]string{"cat-1", "cat-2"})
	assert.True(t, got.Valid)
	assert.Equal(t, "cat-1", got.String)
}

func TestCategoriesFromSQL(t *testing.T) {
	assert.Empty(t, categoriesFromSQL(sql.NullString{}))
	assert.Equal(t, []string{"cat-1"}, categoriesFromSQL(sql.NullString{String: "cat-1", Valid: true}))
}

func TestPublishedAtFromSQL(t *testing.T) {
	updated := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.Nil(t, publishedAtFromSQL("draft", updated))
	assert.Nil(t, publishedAtFromSQL("archived", updated))

	got := publishedAtFromSQL("published", updated)
	if assert.NotNil(t, got) {
		assert.Equal(t, updated, *got)
	}
}
