// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package util

import (
	"strings"
	"testing"
)

func TestEstimateReadTime(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"empty", "", 1},
		{"short text", "A quick note about lions.", 1},
		{"exactly 200 words", strings.Repeat("word ", 200), 1},
		{"201 words", strings.Repeat("word ", 201), 2},
		{"600 words", strings.Repeat("word ", 600), 3},
		{"html stripped", "<p>" + strings.Repeat("word ", 100) + "</p><div>" + strings.Repeat("word ", 100) + "</div>", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EstimateReadTime(tt.content); got != tt.want {
				t.Errorf("EstimateReadTime() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEstimateReadTimeMonotonic(t *testing.T) {
	prev := 0
	for _, n := range []int{10, 300, 1000, 5000} {
		got := EstimateReadTime(strings.Repeat("word ", n))
		if got < prev {
			t.Errorf("read time decreased: %d words -> %d minutes (prev %d)", n, got, prev)
		}
		prev = got
	}
}
