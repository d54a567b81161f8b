// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package util

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Hello World", "hello-world"},
		{"accents", "Café au Lait", "cafe-au-lait"},
		{"multiple spaces", "Serengeti  Great   Migration", "serengeti-great-migration"},
		{"special chars", "Okavango Delta: A 5-Day Escape!", "okavango-delta-a-5-day-escape"},
		{"leading trailing", "  -Masai Mara-  ", "masai-mara"},
		{"uppercase", "VICTORIA FALLS", "victoria-falls"},
		{"numbers", "7 Days in Kruger", "7-days-in-kruger"},
		{"empty", "", ""},
		{"only special", "!!!", ""},
		{"cyrillic", "Сафари", "safari"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.input); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{"Hello World", "Café au Lait", "7 Days in Kruger"}
	for _, in := range inputs {
		once := Slugify(in)
		twice := Slugify(once)
		if once != twice {
			t.Errorf("Slugify not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestIsValidSlug(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid simple", "hello-world", true},
		{"valid with numbers", "7-days-kruger", true},
		{"empty", "", false},
		{"uppercase", "Hello-World", false},
		{"leading hyphen", "-hello", false},
		{"trailing hyphen", "hello-", false},
		{"consecutive hyphens", "hello--world", false},
		{"spaces", "hello world", false},
		{"special chars", "hello_world", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidSlug(tt.input); got != tt.want {
				t.Errorf("IsValidSlug(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
