// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package transfer

import (
	"encoding/json"
	"fmt"

	"github.com/akhdar/akhdar-go/internal/model"
)

// Marshal renders a document as pretty-printed JSON. Nil collections are
// normalized to empty arrays first so every key appears in the output.
func Marshal(doc *Document) ([]byte, error) {
	normalized := *doc
	if normalized.Users == nil {
		normalized.Users = []User{}
	}
	if normalized.Posts == nil {
		normalized.Posts = []model.Post{}
	}
	if normalized.Categories == nil {
		normalized.Categories = []model.Category{}
	}
	if normalized.Comments == nil {
		normalized.Comments = []model.Comment{}
	}
	if normalized.Contacts == nil {
		normalized.Contacts = []model.Contact{}
	}
	if normalized.Newsletters == nil {
		normalized.Newsletters = []model.Newsletter{}
	}

	data, err := json.MarshalIndent(&normalized, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling export document: %w", err)
	}
	return data, nil
}

// Parse decodes an export document from JSON.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing export document: %w", err)
	}
	return &doc, nil
}
