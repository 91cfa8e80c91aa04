// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package transfer defines the JSON document format used to export and
// import site content, and to hand data between backing stores during
// migration.
package transfer

import "github.com/akhdar/akhdar-go/internal/model"

// Document is the complete export structure. Every key is present in the
// output even when its collection is empty.
type Document struct {
	Users       []User             `json:"users"`
	Posts       []model.Post       `json:"posts"`
	Categories  []model.Category   `json:"categories"`
	Comments    []model.Comment    `json:"comments"`
	Contacts    []model.Contact    `json:"contacts"`
	Newsletters []model.Newsletter `json:"newsletters"`
}

// User wraps the canonical user with its stored credential hash so a
// migration between stores can carry it verbatim. The hash never appears
// on the public API surface, only in export documents.
type User struct {
	model.User
	PasswordHash string `json:"passwordHash,omitempty"`
}

// IsEmpty reports whether the document holds no records at all.
func (d *Document) IsEmpty() bool {
	return len(d.Users) == 0 && len(d.Posts) == 0 && len(d.Categories) == 0 &&
		len(d.Comments) == 0 && len(d.Contacts) == 0 && len(d.Newsletters) == 0
}

// Counts returns per-collection record counts, used for migration logging.
func (d *Document) Counts() map[string]int {
	return map[string]int{
		"users":       len(d.Users),
		"posts":       len(d.Posts),
		"categories":  len(d.Categories),
		"comments":    len(d.Comments),
		"contacts":    len(d.Contacts),
		"newsletters": len(d.Newsletters),
	}
}

// Total returns the total number of records in the document.
func (d *Document) Total() int {
	return len(d.Users) + len(d.Posts) + len(d.Categories) +
		len(d.Comments) + len(d.Contacts) + len(d.Newsletters)
}
