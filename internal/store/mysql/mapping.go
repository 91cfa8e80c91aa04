// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package mysql

import (
	"database/sql"
	"strings"
	"time"

	"github.com/akhdar/akhdar-go/internal/model"
)

// This file holds every translation between the canonical entity shapes
// and the relational column encoding. Each function has a matching unit
// test in mapping_test.go.

// roleToSQL maps a canonical role onto the two-valued column enum.
// MODERATOR has no relational representation and is stored as 'user'.
func roleToSQL(role string) string {
	if role == model.RoleAdmin {
		return "admin"
	}
	return "user"
}

// roleFromSQL maps the column enum back to the canonical role. The
// relational store can never yield MODERATOR.
func roleFromSQL(s string) string {
	if s == "admin" {
		return model.RoleAdmin
	}
	return model.RoleUser
}

// postStatusToSQL maps a canonical post status onto the column enum,
// defaulting unknown values to 'draft'.
func postStatusToSQL(status string) string {
	switch status {
	case model.PostStatusPublished:
		return "published"
	case model.PostStatusArchived:
		return "archived"
	default:
		return "draft"
	}
}

func postStatusFromSQL(s string) string {
	switch s {
	case "published":
		return model.PostStatusPublished
	case "archived":
		return model.PostStatusArchived
	default:
		return model.PostStatusDraft
	}
}

// contactStatusToSQL lowercases the canonical contact status, defaulting
// unknown values to 'pending'.
func contactStatusToSQL(status string) string {
	switch status {
	case model.ContactStatusReviewed, model.ContactStatusResponded, model.ContactStatusClosed:
		return strings.ToLower(status)
	default:
		return "pending"
	}
}

func contactStatusFromSQL(s string) string {
	switch s {
	case "reviewed":
		return model.ContactStatusReviewed
	case "responded":
		return model.ContactStatusResponded
	case "closed":
		return model.ContactStatusClosed
	default:
		return model.ContactStatusPending
	}
}

// activeToSQL encodes the subscription flag as the TINYINT(1) column value.
func activeToSQL(active bool) int {
	if active {
		return 1
	}
	return 0
}

func activeFromSQL(v int) bool {
	return v != 0
}

// categoryIDToSQL reduces the canonical category list to the single FK
// column: the first element wins, an empty list stores NULL.
func categoryIDToSQL(categories []string) sql.NullString {
	if len(categories) == 0 || categories[0] == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: categories[0], Valid: true}
}

// categoriesFromSQL expands the FK column back into the canonical list.
func categoriesFromSQL(categoryID sql.NullString) []string {
	if !categoryID.Valid {
		return []string{}
	}
	return []string{categoryID.String}
}

// publishedAtFromSQL derives the canonical publishedAt field: the schema
// has no such column, so a published post reports its updated_at.
func publishedAtFromSQL(status string, updatedAt time.Time) *time.Time {
	if status != "published" {
		return nil
	}
	t := updatedAt
	return &t
}
