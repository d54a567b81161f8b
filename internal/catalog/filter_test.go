// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/savannatrails/safari-go/internal/model"
)

func sampleTours() []model.TourPackage {
	return []model.TourPackage{
		{ID: 1, Title: "Budget Mara", Price: 500, DurationDays: 3,
			Destination: "Masai Mara", Category: "Wildlife Safari", Difficulty: model.DifficultyEasy},
		{ID: 2, Title: "Luxury Serengeti", Price: 1200, DurationDays: 7,
			Destination: "Serengeti", Category: "Luxury Safari", Difficulty: model.DifficultyModerate},
		{ID: 3, Title: "Kruger Family", Price: 800, DurationDays: 5,
			Destination: "Kruger", Category: "Family Safari", Difficulty: model.DifficultyEasy},
	}
}

func ids(tours []model.TourPackage) []int64 {
	out := make([]int64, len(tours))
	for i, t := range tours {
		out[i] = t.ID
	}
	return out
}

func TestEmptyFilterPassesAll(t *testing.T) {
	got := Filter{}.Apply(sampleTours())
	assert.Equal(t, []int64{1, 2, 3}, ids(got))
}

func TestPriceRangeInclusive(t *testing.T) {
	// [0,1000] over {500, 1200, 800} keeps 500 and 800 in original order
	f := Filter{PriceMax: 1000, PriceMaxSet: true}
	got := f.Apply(sampleTours())
	assert.Equal(t, []int64{1, 3}, ids(got))

	// Bounds are inclusive
	f = Filter{PriceMin: 500, PriceMax: 800, PriceMaxSet: true}
	got = f.Apply(sampleTours())
	assert.Equal(t, []int64{1, 3}, ids(got))
}

func TestMultiSelectMembership(t *testing.T) {
	f := Filter{Destinations: []string{"Serengeti", "Kruger"}}
	got := f.Apply(sampleTours())
	assert.Equal(t, []int64{2, 3}, ids(got))

	f = Filter{Categories: []string{"Luxury Safari"}}
	got = f.Apply(sampleTours())
	assert.Equal(t, []int64{2}, ids(got))
}

func TestPredicatesCombineWithAnd(t *testing.T) {
	f := Filter{
		Difficulties: []string{model.DifficultyEasy},
		DurationMin:  4,
	}
	got := f.Apply(sampleTours())
	// ID 1 is easy but too short, ID 2 long enough but moderate
	assert.Equal(t, []int64{3}, ids(got))
}

func TestFilteredIsSubsetSatisfyingAllPredicates(t *testing.T) {
	source := sampleTours()
	f := Filter{
		Destinations: []string{"Masai Mara", "Serengeti"},
		PriceMax:     1000, PriceMaxSet: true,
	}
	got := f.Apply(source)

	seen := map[int64]bool{}
	for _, tour := range got {
		seen[tour.ID] = true
		assert.True(t, f.Matches(tour))
	}
	for _, tour := range source {
		assert.Equal(t, f.Matches(tour), seen[tour.ID])
	}
}

func TestSortOrders(t *testing.T) {
	tests := []struct {
		order string
		want  []int64
	}{
		{SortPopular, []int64{1, 2, 3}},
		{"unknown", []int64{1, 2, 3}},
		{SortPriceAsc, []int64{1, 3, 2}},
		{SortPriceDesc, []int64{2, 3, 1}},
		{SortDurationAsc, []int64{1, 3, 2}},
		{SortDurationDesc, []int64{2, 3, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.order, func(t *testing.T) {
			tours := sampleTours()
			Sort(tours, tt.order)
			assert.Equal(t, tt.want, ids(tours))
		})
	}
}

func TestSortStable(t *testing.T) {
	tours := []model.TourPackage{
		{ID: 1, Price: 100},
		{ID: 2, Price: 100},
		{ID: 3, Price: 50},
		{ID: 4, Price: 100},
	}
	Sort(tours, SortPriceAsc)
	require.Equal(t, []int64{3, 1, 2, 4}, ids(tours))
}
