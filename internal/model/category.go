// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// DefaultCategoryColor is used when a category is created without a display color.
const DefaultCategoryColor = "#3B82F6"

// Category represents a content category.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// Slug is derived from the name; the relational store never persists it.
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	Color       string    `json:"color,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
