// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/savannatrails/safari-go/internal/model"
)

func completeForm() *Form {
	f := NewForm(model.KindPackage)
	f.Title = "5-Day Serengeti Safari"
	f.Description = "Classic northern circuit."
	f.Destination = "Serengeti"
	f.Category = "Wildlife Safari"
	f.Difficulty = model.DifficultyModerate
	f.Price = "1500"
	f.Duration = "5"
	f.AddImage("https://cdn.example.com/cover.jpg")
	f.AddDay()
	f.Itinerary[0].Title = "Arrival"
	f.Itinerary[0].Description = "Airport pickup"
	return f
}

func TestNavigation(t *testing.T) {
	f := NewForm(model.KindPackage)
	assert.Equal(t, StepBasicInfo, f.Step)

	// Prev on first step stays put
	f.Prev()
	assert.Equal(t, StepBasicInfo, f.Step)

	// Next walks all the way to the last step and stops
	for i := 0; i < 10; i++ {
		f.Next()
	}
	assert.Equal(t, StepItinerary, f.Step)

	// Navigation never validates; an empty form can reach step 4
	assert.True(t, f.CanSubmit())

	f.GoTo(99)
	assert.Equal(t, LastStep, f.Step)
	f.GoTo(-3)
	assert.Equal(t, FirstStep, f.Step)
}

func TestValidateCompleteForm(t *testing.T) {
	f := completeForm()
	rec, verr := f.Validate()
	require.Nil(t, verr)
	assert.Equal(t, "5-day-serengeti-safari", rec.Slug)
	assert.Equal(t, 1500.0, rec.Price)
	assert.Equal(t, 5, rec.DurationDays)
	require.Len(t, rec.Itinerary, 1)
	assert.Equal(t, 1, rec.Itinerary[0].Day)
}

func TestValidateFirstFailingField(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Form)
		wantField string
		wantStep  int
		wantForce bool
	}{
		{"empty title", func(f *Form) { f.Title = "  " }, "title", StepBasicInfo, false},
		{"bad destination", func(f *Form) { f.Destination = "Atlantis" }, "destination", StepBasicInfo, false},
		{"no category", func(f *Form) { f.Category = "" }, "category", StepBasicInfo, false},
		{"price not a number", func(f *Form) { f.Price = "abc" }, "price", StepBasicInfo, false},
		{"zero price", func(f *Form) { f.Price = "0" }, "price", StepBasicInfo, false},
		{"fractional duration", func(f *Form) { f.Duration = "2.5" }, "duration", StepBasicInfo, false},
		{"empty description", func(f *Form) { f.Description = "" }, "description", StepBasicInfo, false},
		{"no images", func(f *Form) { f.Images = nil }, "images", StepImages, true},
		{"no itinerary", func(f *Form) { f.Itinerary = nil }, "itinerary", StepItinerary, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := completeForm()
			tt.mutate(f)
			rec, verr := f.Validate()
			require.Nil(t, rec)
			require.NotNil(t, verr)
			assert.Equal(t, tt.wantField, verr.Field)
			assert.Equal(t, tt.wantStep, verr.Step)
			assert.Equal(t, tt.wantForce, verr.ForceStep)
		})
	}
}

func TestZeroImagesForcedToImagesStep(t *testing.T) {
	// Rejection happens regardless of which step the user is on
	for step := FirstStep; step <= LastStep; step++ {
		f := completeForm()
		f.Images = nil
		f.GoTo(step)

		_, verr := f.Validate()
		require.NotNil(t, verr)
		assert.True(t, verr.ForceStep)

		f.GoTo(verr.Step)
		assert.Equal(t, StepImages, f.Step)
	}
}

func TestIncompleteItineraryDaysDropped(t *testing.T) {
	f := completeForm()
	f.AddDay() // title and description left empty
	f.AddDay()
	f.Itinerary[2].Title = "Crater rim"
	f.Itinerary[2].Description = "Descend at dawn"

	rec, verr := f.Validate()
	require.Nil(t, verr)
	require.Len(t, rec.Itinerary, 2)
	assert.Equal(t, "Arrival", rec.Itinerary[0].Title)
	assert.Equal(t, 1, rec.Itinerary[0].Day)
	assert.Equal(t, "Crater rim", rec.Itinerary[1].Title)
	assert.Equal(t, 2, rec.Itinerary[1].Day)
}

func TestOnlyIncompleteDaysRejectsSubmission(t *testing.T) {
	f := completeForm()
	f.Itinerary[0].Description = ""

	_, verr := f.Validate()
	require.NotNil(t, verr)
	assert.Equal(t, "itinerary", verr.Field)
}

func TestRemoveDayResequences(t *testing.T) {
	f := NewForm(model.KindPackage)
	for i := 0; i < 4; i++ {
		f.AddDay()
	}
	f.Itinerary[0].Title = "A"
	f.Itinerary[1].Title = "B"
	f.Itinerary[2].Title = "C"
	f.Itinerary[3].Title = "D"

	f.RemoveDay(1)

	require.Len(t, f.Itinerary, 3)
	for i, d := range f.Itinerary {
		assert.Equal(t, i+1, d.Day)
	}
	assert.Equal(t, []string{"A", "C", "D"},
		[]string{f.Itinerary[0].Title, f.Itinerary[1].Title, f.Itinerary[2].Title})
}

func TestRemoveImagePromotesNextToCover(t *testing.T) {
	f := NewForm(model.KindPackage)
	f.AddImage("first.jpg")
	f.AddImage("second.jpg")
	f.AddImage("third.jpg")
	assert.Equal(t, "first.jpg", f.CoverImage())

	f.RemoveImage(0)
	assert.Equal(t, "second.jpg", f.CoverImage())

	// Out-of-range removals are ignored
	f.RemoveImage(10)
	f.RemoveImage(-1)
	assert.Len(t, f.Images, 2)
}

func TestDayImageLimit(t *testing.T) {
	f := NewForm(model.KindPackage)
	f.AddDay()

	assert.True(t, f.AddDayImage(0, "a.jpg"))
	assert.True(t, f.AddDayImage(0, "b.jpg"))
	assert.False(t, f.AddDayImage(0, "c.jpg"))
	assert.Len(t, f.Itinerary[0].Images, model.MaxItineraryDayImages)

	f.RemoveDayImage(0, 0)
	assert.True(t, f.AddDayImage(0, "c.jpg"))
}

func TestSubmitBlockedBeforeLastStep(t *testing.T) {
	f := completeForm()
	for step := FirstStep; step < LastStep; step++ {
		f.GoTo(step)
		assert.False(t, f.CanSubmit(), "step %d", step)
	}
	f.GoTo(LastStep)
	assert.True(t, f.CanSubmit())
}

func TestFormFromTourPrefills(t *testing.T) {
	tour := model.TourPackage{
		ID: 7, Title: "Okavango Mokoro Trails", Price: 2450.5, DurationDays: 6,
		Description: "Glide through the delta by mokoro.",
		Destination: "Okavango Delta", Category: "Adventure",
		Difficulty: model.DifficultyChallenging,
		Images:     []string{"a.jpg"},
		Itinerary:  []model.ItineraryDay{{Day: 1, Title: "Arrival", Description: "Boat in"}},
	}

	f := FormFromTour(model.KindPackage, tour)
	assert.True(t, f.IsEditing())
	assert.Equal(t, "2450.5", f.Price)
	assert.Equal(t, "6", f.Duration)

	rec, verr := f.Validate()
	require.Nil(t, verr)
	assert.Equal(t, 2450.5, rec.Price)
}
