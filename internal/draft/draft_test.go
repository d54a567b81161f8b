// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package draft

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/savannatrails/safari-go/internal/cache"
	"github.com/savannatrails/safari-go/internal/model"
	"github.com/savannatrails/safari-go/internal/wizard"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	backend := cache.NewSimpleMemoryCache(time.Minute)
	t.Cleanup(func() { _ = backend.Close() })
	return NewStore(backend)
}

func TestDraftRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	form := wizard.NewForm(model.KindPackage)
	form.Title = "Victoria Falls Fly-In"
	form.Price = "980"
	form.GoTo(wizard.StepInclusions)
	form.AddImage("https://cdn.example.com/falls.jpg")
	form.AddIncluded("Park fees")
	form.AddExcluded("Visas")
	form.AddDay()
	form.Itinerary[0].Title = "Arrival"
	form.Itinerary[0].Description = "Helicopter transfer"
	form.AddDayActivity(0, "Sunset cruise")

	require.NoError(t, s.Save(ctx, "session-token", form))

	restored := s.Load(ctx, model.KindPackage, "session-token")
	require.NotNil(t, restored)
	assert.Equal(t, form, restored)
}

func TestLoadMissingDraft(t *testing.T) {
	s := newTestStore(t)
	assert.Nil(t, s.Load(context.Background(), model.KindPackage, "nobody"))
}

func TestDraftsKeyedByKindAndToken(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	pkg := wizard.NewForm(model.KindPackage)
	pkg.Title = "Package draft"
	idea := wizard.NewForm(model.KindTravelIdea)
	idea.Title = "Idea draft"

	require.NoError(t, s.Save(ctx, "token-a", pkg))
	require.NoError(t, s.Save(ctx, "token-a", idea))

	assert.Equal(t, "Package draft", s.Load(ctx, model.KindPackage, "token-a").Title)
	assert.Equal(t, "Idea draft", s.Load(ctx, model.KindTravelIdea, "token-a").Title)
	assert.Nil(t, s.Load(ctx, model.KindPackage, "token-b"))
}

func TestEditFormsNeverSaved(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	form := wizard.FormFromTour(model.KindPackage, model.TourPackage{ID: 3, Title: "Existing"})
	require.NoError(t, s.Save(ctx, "token", form))

	assert.Nil(t, s.Load(ctx, model.KindPackage, "token"))
}

func TestClearDraft(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	form := wizard.NewForm(model.KindPackage)
	form.Title = "Soon gone"
	require.NoError(t, s.Save(ctx, "token", form))
	require.NoError(t, s.Clear(ctx, model.KindPackage, "token"))

	assert.Nil(t, s.Load(ctx, model.KindPackage, "token"))
}
