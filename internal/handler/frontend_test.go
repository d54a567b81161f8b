// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFilter(t *testing.T) {
	q := url.Values{
		"category":     {"Wildlife Safari", "Luxury Safari"},
		"destination":  {"Serengeti"},
		"price_min":    {"500"},
		"price_max":    {"2000"},
		"duration_max": {"7"},
	}

	f := parseFilter(q)

	assert.Equal(t, []string{"Wildlife Safari", "Luxury Safari"}, f.Categories)
	assert.Equal(t, []string{"Serengeti"}, f.Destinations)
	assert.Empty(t, f.Difficulties)
	assert.Equal(t, 500.0, f.PriceMin)
	assert.Equal(t, 2000.0, f.PriceMax)
	assert.True(t, f.PriceMaxSet)
	assert.Equal(t, 0, f.DurationMin)
	assert.Equal(t, 7, f.DurationMax)
	assert.True(t, f.DurationMaxSet)
}

func TestParseFilterEmptyQuery(t *testing.T) {
	f := parseFilter(url.Values{})

	assert.Empty(t, f.Categories)
	assert.False(t, f.PriceMaxSet)
	assert.False(t, f.DurationMaxSet)
}

func TestParseFilterDropsEmptySelections(t *testing.T) {
	f := parseFilter(url.Values{"category": {"", "Honeymoon"}})
	assert.Equal(t, []string{"Honeymoon"}, f.Categories)
}

func TestParseFilterIgnoresBadNumbers(t *testing.T) {
	f := parseFilter(url.Values{"price_max": {"cheap"}, "duration_max": {"week"}})
	assert.False(t, f.PriceMaxSet)
	assert.False(t, f.DurationMaxSet)
}
