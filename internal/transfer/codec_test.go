// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package transfer

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akhdar/akhdar-go/internal/model"
)

func TestMarshalEmitsEveryKeyForEmptyDocument(t *testing.T) {
	data, err := Marshal(&Document{})
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))

	for _, key := range []string{"users", "posts", "categories", "comments", "contacts", "newsletters"} {
		msg, ok := raw[key]
		assert.True(t, ok, "missing key %s", key)
		assert.Equal(t, "[]", string(msg), "key %s should be an empty array", key)
	}

	// Pretty-printed, not a single line
	assert.True(t, strings.Contains(string(data), "\n  "))
}

func TestMarshalParseRoundTrip(t *testing.T) {
	doc := &Document{
		Users: []User{{
			User: model.User{
				ID:    "u1",
				Email: "admin@akhdar.org",
				Name:  "مدير الموقع",
				Role:  model.RoleAdmin,
			},
			PasswordHash: "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		}},
		Categories: []model.Category{{
			ID:   "c1",
			Name: "Clean Energy",
			Slug: "clean-energy",
		}},
	}

	data, err := Marshal(doc)
	require.NoError(t, err)

	got, err := Parse(data)
	require.NoError(t, err)

	require.Len(t, got.Users, 1)
	assert.Equal(t, "admin@akhdar.org", got.Users[0].Email)
	assert.Equal(t, "مدير الموقع", got.Users[0].Name)
	assert.Equal(t, doc.Users[0].PasswordHash, got.Users[0].PasswordHash)
	require.Len(t, got.Categories, 1)
	assert.Equal(t, "clean-energy", got.Categories[0].Slug)
}

func TestParseRejectsMalformedJSON(t *testing.T) {
	_, err := Parse([]byte(`{"users": [`))
	assert.Error(t, err)
}

func TestDocumentPredicates(t *testing.T) {
	empty := &Document{}
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, 0, empty.Total())

	doc := &Document{
		Posts:       []model.Post{{ID: "p1"}, {ID: "p2"}},
		Newsletters: []model.Newsletter{{ID: "n1"}},
	}
	assert.False(t, doc.IsEmpty())
	assert.Equal(t, 3, doc.Total())
	assert.Equal(t, 2, doc.Counts()["posts"])
	assert.Equal(t, 0, doc.Counts()["users"])
}
