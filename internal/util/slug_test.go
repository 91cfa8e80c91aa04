// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package util

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple title",
			input:    "Clean Energy",
			expected: "clean-energy",
		},
		{
			name:     "with special characters",
			input:    "Solar, Wind & Water!",
			expected: "solar-wind-water",
		},
		{
			name:     "with numbers",
			input:    "Earth Day 2025",
			expected: "earth-day-2025",
		},
		{
			name:     "with accents",
			input:    "Café résumé",
			expected: "cafe-resume",
		},
		{
			name:     "with multiple spaces",
			input:    "Coastal   Wetlands",
			expected: "coastal-wetlands",
		},
		{
			name:     "with leading/trailing spaces",
			input:    "  Tree Planting  ",
			expected: "tree-planting",
		},
		{
			name:     "arabic title",
			input:    "الطاقة النظيفة",
			expected: "",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.input); got != tt.expected {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestIsValidSlug(t *testing.T) {
	valid := []string{"clean-energy", "post-123", "a"}
	for _, s := range valid {
		if !IsValidSlug(s) {
			t.Errorf("IsValidSlug(%q) = false, want true", s)
		}
	}

	invalid := []string{"", "Clean-Energy", "clean energy", "clean_energy", "slug/with/slash"}
	for _, s := range invalid {
		if IsValidSlug(s) {
			t.Errorf("IsValidSlug(%q) = true, want false", s)
		}
	}
}
