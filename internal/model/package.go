// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines domain models and constants for the safari site:
// tour packages, travel ideas, articles, booking requests, and the audit
// event log.
package model

import "time"

// Package kinds. Packages and travel ideas share one shape but live in
// separate tables and route trees.
const (
	KindPackage    = "package"
	KindTravelIdea = "travel_idea"
)

// Difficulty levels for a tour package.
const (
	DifficultyEasy        = "easy"
	DifficultyModerate    = "moderate"
	DifficultyChallenging = "challenging"
)

// Difficulties returns all valid difficulty levels.
func Difficulties() []string {
	return []string{DifficultyEasy, DifficultyModerate, DifficultyChallenging}
}

// IsValidDifficulty checks if a difficulty value is valid.
func IsValidDifficulty(d string) bool {
	for _, v := range Difficulties() {
		if v == d {
			return true
		}
	}
	return false
}

// Destinations returns the enumerated destination option set offered on
// package and travel-idea forms.
func Destinations() []string {
	return []string{
		"Serengeti",
		"Masai Mara",
		"Ngorongoro",
		"Okavango Delta",
		"Kruger",
		"Victoria Falls",
		"Zanzibar",
	}
}

// PackageCategories returns the enumerated category option set.
func PackageCategories() []string {
	return []string{
		"Wildlife Safari",
		"Luxury Safari",
		"Family Safari",
		"Honeymoon",
		"Photographic",
		"Adventure",
	}
}

// MaxItineraryDayImages is the maximum number of images per itinerary day.
const MaxItineraryDayImages = 2

// ItineraryDay is one day in a package itinerary. Day always equals the
// entry's 1-based position in the list.
type ItineraryDay struct {
	Day         int      `json:"day"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Activities  []string `json:"activities,omitempty"`
	Images      []string `json:"images,omitempty"`
}

// IsComplete reports whether the day has both a title and a description.
// Incomplete days are dropped before persistence rather than rejected.
func (d ItineraryDay) IsComplete() bool {
	return d.Title != "" && d.Description != ""
}

// TourPackage represents a tour package or travel idea. The first entry of
// Images is always the cover image.
type TourPackage struct {
	ID           int64          `json:"id"`
	Title        string         `json:"title"`
	Slug         string         `json:"slug"`
	Description  string         `json:"description"`
	Price        float64        `json:"price"`
	DurationDays int            `json:"duration_days"`
	Destination  string         `json:"destination"`
	Category     string         `json:"category"`
	Difficulty   string         `json:"difficulty"`
	Images       []string       `json:"images"`
	Included     []string       `json:"included"`
	Excluded     []string       `json:"excluded"`
	Itinerary    []ItineraryDay `json:"itinerary"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// CoverImage returns the primary image URL, or empty if none uploaded.
func (p *TourPackage) CoverImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// ResequenceItinerary reassigns day numbers so that day equals the entry's
// 1-based position. Call after any removal.
func ResequenceItinerary(days []ItineraryDay) []ItineraryDay {
	for i := range days {
		days[i].Day = i + 1
	}
	return days
}
