// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package catalog narrows and reorders tour listings for display.
// All operations are pure and work on lists already held in memory.
package catalog

import (
	"sort"

	"github.com/savannatrails/safari-go/internal/model"
)

// Filter holds independent predicates combined with AND semantics.
// An empty multi-select means "all"; zero-valued range bounds are inactive.
type Filter struct {
	Categories   []string
	Destinations []string
	Difficulties []string

	PriceMin    float64
	PriceMax    float64 // 0 means no upper bound unless PriceMaxSet
	PriceMaxSet bool

	DurationMin    int
	DurationMax    int
	DurationMaxSet bool
}

func inSet(set []string, v string) bool {
	if len(set) == 0 {
		return true
	}
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// Matches reports whether a tour satisfies every active predicate.
func (f Filter) Matches(t model.TourPackage) bool {
	if !inSet(f.Categories, t.Category) {
		return false
	}
	if !inSet(f.Destinations, t.Destination) {
		return false
	}
	if !inSet(f.Difficulties, t.Difficulty) {
		return false
	}
	if t.Price < f.PriceMin {
		return false
	}
	if f.PriceMaxSet && t.Price > f.PriceMax {
		return false
	}
	if t.DurationDays < f.DurationMin {
		return false
	}
	if f.DurationMaxSet && t.DurationDays > f.DurationMax {
		return false
	}
	return true
}

// Apply returns the tours passing every predicate, preserving input order.
func (f Filter) Apply(tours []model.TourPackage) []model.TourPackage {
	var out []model.TourPackage
	for _, t := range tours {
		if f.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}

// Sort orders.
const (
	SortPopular      = "popular" // preserves fetch order
	SortPriceAsc     = "price-asc"
	SortPriceDesc    = "price-desc"
	SortDurationAsc  = "duration-asc"
	SortDurationDesc = "duration-desc"
)

// SortOptions lists the selectable sort orders in display order.
func SortOptions() []string {
	return []string{SortPopular, SortPriceAsc, SortPriceDesc, SortDurationAsc, SortDurationDesc}
}

// Sort reorders tours in place by the named order. Unknown orders and
// "popular" preserve the existing order. Sorting is stable so equal
// elements keep their relative positions.
func Sort(tours []model.TourPackage, order string) {
	switch order {
	case SortPriceAsc:
		sort.SliceStable(tours, func(i, j int) bool { return tours[i].Price < tours[j].Price })
	case SortPriceDesc:
		sort.SliceStable(tours, func(i, j int) bool { return tours[i].Price > tours[j].Price })
	case SortDurationAsc:
		sort.SliceStable(tours, func(i, j int) bool { return tours[i].DurationDays < tours[j].DurationDays })
	case SortDurationDesc:
		sort.SliceStable(tours, func(i, j int) bool { return tours[i].DurationDays > tours[j].DurationDays })
	}
}
