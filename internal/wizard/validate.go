// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package wizard

import (
	"strconv"
	"strings"

	"github.com/savannatrails/safari-go/internal/model"
	"github.com/savannatrails/safari-go/internal/util"
)

// ValidationError names the first failing field of a submitted form.
// ForceStep is set for the image and itinerary checks, which navigate
// the user back to the step where the defect lives.
type ValidationError struct {
	Field     string
	Step      int
	Message   string
	ForceStep bool
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Record is the cleaned output of a validated form, ready for persistence.
type Record struct {
	Title        string
	Slug         string
	Description  string
	Price        float64
	DurationDays int
	Destination  string
	Category     string
	Difficulty   string
	Images       []string
	Included     []string
	Excluded     []string
	Itinerary    []model.ItineraryDay
}

func contains(options []string, v string) bool {
	for _, o := range options {
		if o == v {
			return true
		}
	}
	return false
}

// Validate checks the whole form and builds the record to persist.
// Checks run in field order and the first failure aborts. Itinerary days
// missing a title or description are silently dropped, not rejected.
func (f *Form) Validate() (*Record, *ValidationError) {
	if strings.TrimSpace(f.Title) == "" {
		return nil, &ValidationError{
			Field: "title", Step: StepBasicInfo,
			Message: "Title is required",
		}
	}
	if !contains(model.Destinations(), f.Destination) {
		return nil, &ValidationError{
			Field: "destination", Step: StepBasicInfo,
			Message: "Please select a destination",
		}
	}
	if !contains(model.PackageCategories(), f.Category) {
		return nil, &ValidationError{
			Field: "category", Step: StepBasicInfo,
			Message: "Please select a category",
		}
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(f.Price), 64)
	if err != nil || price <= 0 {
		return nil, &ValidationError{
			Field: "price", Step: StepBasicInfo,
			Message: "Price must be a number greater than zero",
		}
	}

	duration, err := strconv.Atoi(strings.TrimSpace(f.Duration))
	if err != nil || duration <= 0 {
		return nil, &ValidationError{
			Field: "duration", Step: StepBasicInfo,
			Message: "Duration must be a whole number of days greater than zero",
		}
	}

	if strings.TrimSpace(f.Description) == "" {
		return nil, &ValidationError{
			Field: "description", Step: StepBasicInfo,
			Message: "Description is required",
		}
	}

	if len(f.Images) == 0 {
		return nil, &ValidationError{
			Field: "images", Step: StepImages,
			Message:   "At least one image is required",
			ForceStep: true,
		}
	}

	itinerary := completeDays(f.Itinerary)
	if len(itinerary) == 0 {
		return nil, &ValidationError{
			Field: "itinerary", Step: StepItinerary,
			Message:   "At least one itinerary day with a title and description is required",
			ForceStep: true,
		}
	}

	difficulty := f.Difficulty
	if !model.IsValidDifficulty(difficulty) {
		difficulty = model.DifficultyEasy
	}

	return &Record{
		Title:        strings.TrimSpace(f.Title),
		Slug:         util.Slugify(f.Title),
		Description:  strings.TrimSpace(f.Description),
		Price:        price,
		DurationDays: duration,
		Destination:  f.Destination,
		Category:     f.Category,
		Difficulty:   difficulty,
		Images:       f.Images,
		Included:     trimmed(f.Included),
		Excluded:     trimmed(f.Excluded),
		Itinerary:    itinerary,
	}, nil
}

// completeDays drops itinerary entries missing a title or description and
// re-sequences the survivors.
func completeDays(days []model.ItineraryDay) []model.ItineraryDay {
	var kept []model.ItineraryDay
	for _, d := range days {
		if d.IsComplete() {
			kept = append(kept, d)
		}
	}
	return model.ResequenceItinerary(kept)
}

func trimmed(items []string) []string {
	var out []string
	for _, s := range items {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}
