// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package wizard implements the multi-step authoring flow for packages
// and travel ideas. The form accumulates state across four steps and is
// validated only at submission time.
package wizard

import (
	"strconv"

	"github.com/savannatrails/safari-go/internal/model"
)

func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

func formatDuration(d int) string {
	return strconv.Itoa(d)
}

// Wizard steps. Navigation between steps is free; completeness is
// checked only when the form is submitted from the final step.
const (
	StepBasicInfo  = 1
	StepImages     = 2
	StepInclusions = 3
	StepItinerary  = 4

	FirstStep = StepBasicInfo
	LastStep  = StepItinerary
)

// StepNames maps step numbers to display labels.
var StepNames = map[int]string{
	StepBasicInfo:  "Basic Info",
	StepImages:     "Images",
	StepInclusions: "Inclusions",
	StepItinerary:  "Itinerary",
}

// Form holds the accumulated wizard state. Price and Duration are kept
// as raw form input and parsed at submission.
type Form struct {
	Kind      string `json:"kind"`
	EditingID int64  `json:"editing_id"` // nonzero when editing an existing record
	Step      int    `json:"step"`

	Title       string `json:"title"`
	Description string `json:"description"`
	Destination string `json:"destination"`
	Category    string `json:"category"`
	Difficulty  string `json:"difficulty"`
	Price       string `json:"price"`
	Duration    string `json:"duration"`

	Images    []string             `json:"images"`
	Included  []string             `json:"included"`
	Excluded  []string             `json:"excluded"`
	Itinerary []model.ItineraryDay `json:"itinerary"`
}

// NewForm creates an empty form for creating a new record of the given kind.
func NewForm(kind string) *Form {
	return &Form{
		Kind:       kind,
		Step:       FirstStep,
		Difficulty: model.DifficultyEasy,
	}
}

// FormFromTour creates a form pre-filled for editing an existing record.
// Edit forms bypass draft persistence.
func FormFromTour(kind string, t model.TourPackage) *Form {
	return &Form{
		Kind:        kind,
		EditingID:   t.ID,
		Step:        FirstStep,
		Title:       t.Title,
		Description: t.Description,
		Destination: t.Destination,
		Category:    t.Category,
		Difficulty:  t.Difficulty,
		Price:       formatPrice(t.Price),
		Duration:    formatDuration(t.DurationDays),
		Images:      t.Images,
		Included:    t.Included,
		Excluded:    t.Excluded,
		Itinerary:   t.Itinerary,
	}
}

// IsEditing reports whether the form edits an existing record.
func (f *Form) IsEditing() bool {
	return f.EditingID != 0
}

// Next advances one step unless already on the last step.
func (f *Form) Next() {
	if f.Step < LastStep {
		f.Step++
	}
}

// Prev retreats one step unless already on the first step.
func (f *Form) Prev() {
	if f.Step > FirstStep {
		f.Step--
	}
}

// GoTo jumps to a step, clamping to the valid range.
func (f *Form) GoTo(step int) {
	if step < FirstStep {
		step = FirstStep
	}
	if step > LastStep {
		step = LastStep
	}
	f.Step = step
}

// CanSubmit reports whether submission is permitted. Submitting from any
// step but the last is a no-op.
func (f *Form) CanSubmit() bool {
	return f.Step == LastStep
}

// AddImage appends an uploaded image URL. The first image in the list is
// always the cover; there is no explicit "set primary" operation.
func (f *Form) AddImage(url string) {
	f.Images = append(f.Images, url)
}

// RemoveImage removes an image by index. Removing index 0 implicitly
// promotes the next image to cover.
func (f *Form) RemoveImage(i int) {
	if i < 0 || i >= len(f.Images) {
		return
	}
	f.Images = append(f.Images[:i], f.Images[i+1:]...)
}

// CoverImage returns the current cover image URL, or "" if none.
func (f *Form) CoverImage() string {
	if len(f.Images) == 0 {
		return ""
	}
	return f.Images[0]
}

// AddIncluded appends an inclusion line.
func (f *Form) AddIncluded(item string) {
	f.Included = append(f.Included, item)
}

// RemoveIncluded removes an inclusion line by index.
func (f *Form) RemoveIncluded(i int) {
	if i < 0 || i >= len(f.Included) {
		return
	}
	f.Included = append(f.Included[:i], f.Included[i+1:]...)
}

// AddExcluded appends an exclusion line.
func (f *Form) AddExcluded(item string) {
	f.Excluded = append(f.Excluded, item)
}

// RemoveExcluded removes an exclusion line by index.
func (f *Form) RemoveExcluded(i int) {
	if i < 0 || i >= len(f.Excluded) {
		return
	}
	f.Excluded = append(f.Excluded[:i], f.Excluded[i+1:]...)
}

// AddDay appends a new itinerary day numbered after the current last day.
func (f *Form) AddDay() {
	f.Itinerary = append(f.Itinerary, model.ItineraryDay{Day: len(f.Itinerary) + 1})
}

// RemoveDay removes an itinerary day by index and re-sequences the rest
// so day numbers always equal 1-based position.
func (f *Form) RemoveDay(i int) {
	if i < 0 || i >= len(f.Itinerary) {
		return
	}
	f.Itinerary = append(f.Itinerary[:i], f.Itinerary[i+1:]...)
	f.Itinerary = model.ResequenceItinerary(f.Itinerary)
}

// AddDayActivity appends a free-text activity to a day.
func (f *Form) AddDayActivity(day int, activity string) {
	if day < 0 || day >= len(f.Itinerary) {
		return
	}
	f.Itinerary[day].Activities = append(f.Itinerary[day].Activities, activity)
}

// RemoveDayActivity removes an activity from a day by index.
func (f *Form) RemoveDayActivity(day, i int) {
	if day < 0 || day >= len(f.Itinerary) {
		return
	}
	acts := f.Itinerary[day].Activities
	if i < 0 || i >= len(acts) {
		return
	}
	f.Itinerary[day].Activities = append(acts[:i], acts[i+1:]...)
}

// AddDayImage appends an image URL to a day, capped at the per-day limit.
// Returns false if the day already holds the maximum number of images.
func (f *Form) AddDayImage(day int, url string) bool {
	if day < 0 || day >= len(f.Itinerary) {
		return false
	}
	if len(f.Itinerary[day].Images) >= model.MaxItineraryDayImages {
		return false
	}
	f.Itinerary[day].Images = append(f.Itinerary[day].Images, url)
	return true
}

// RemoveDayImage removes an image URL from a day by index.
func (f *Form) RemoveDayImage(day, i int) {
	if day < 0 || day >= len(f.Itinerary) {
		return
	}
	imgs := f.Itinerary[day].Images
	if i < 0 || i >= len(imgs) {
		return
	}
	f.Itinerary[day].Images = append(imgs[:i], imgs[i+1:]...)
}
