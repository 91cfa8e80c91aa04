// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package security

import (
	"strings"
	"testing"
)

func TestSanitizeHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "strips script tags",
			input: `<p>Hello</p><script>alert("xss")</script>`,
			want:  "<p>Hello</p>",
		},
		{
			name:  "keeps formatting markup",
			input: "<p>Renewable <strong>energy</strong> matters</p>",
			want:  "<p>Renewable <strong>energy</strong> matters</p>",
		},
		{
			name:  "strips event handlers",
			input: `<a href="https://akhdar.org" onclick="steal()">akhdar</a>`,
			want:  `<a href="https://akhdar.org" rel="nofollow">akhdar</a>`,
		},
		{
			name:  "arabic text untouched",
			input: "<p>الطاقة النظيفة</p>",
			want:  "<p>الطاقة النظيفة</p>",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeHTML(tt.input); got != tt.want {
				t.Errorf("SanitizeHTML(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeText(t *testing.T) {
	if got := SanitizeText("  <b>Layla</b> Haddad  "); got != "Layla Haddad" {
		t.Errorf("SanitizeText() = %q, want %q", got, "Layla Haddad")
	}
	if got := SanitizeText(`<script>alert(1)</script>`); strings.Contains(got, "alert") {
		t.Errorf("SanitizeText() kept script content: %q", got)
	}
}
