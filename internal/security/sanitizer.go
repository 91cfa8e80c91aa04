// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package security sanitizes user-supplied content before storage.
package security

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	// ugcPolicy allows the markup a post body or comment may carry.
	ugcPolicy = bluemonday.UGCPolicy()

	// strictPolicy strips all markup from plain-text fields such as
	// names, subjects and excerpts.
	strictPolicy = bluemonday.StrictPolicy()
)

// SanitizeHTML cleans rich content, keeping common user-generated markup
// while removing scripts and event handlers.
func SanitizeHTML(s string) string {
	return ugcPolicy.Sanitize(s)
}

// SanitizeText strips all markup and trims surrounding whitespace.
func SanitizeText(s string) string {
	return strings.TrimSpace(strictPolicy.Sanitize(s))
}
