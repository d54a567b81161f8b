// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/savannatrails/safari-go/internal/model"
)

func newTestQueries(t *testing.T) *Queries {
	t.Helper()
	db, err := NewDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, Migrate(db))
	return New(db)
}

func TestTourRoundTrip(t *testing.T) {
	q := newTestQueries(t)
	ctx := context.Background()

	created, err := q.CreateTour(ctx, model.KindPackage, CreateTourParams{
		Title:        "Serengeti Great Migration",
		Slug:         "serengeti-great-migration",
		Description:  "Follow the herds across the plains.",
		Price:        3200,
		DurationDays: 7,
		Destination:  "Serengeti",
		Category:     "Wildlife Safari",
		Difficulty:   model.DifficultyModerate,
		Images:       []string{"a.jpg", "b.jpg"},
		Included:     []string{"Park fees", "Guide"},
		Excluded:     []string{"Flights"},
		Itinerary: []model.ItineraryDay{
			{Day: 1, Title: "Arrival", Description: "Transfer to camp", Activities: []string{"Game drive"}},
			{Day: 2, Title: "Central Serengeti", Description: "Full day on the plains"},
		},
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := q.GetTourBySlug(ctx, model.KindPackage, "serengeti-great-migration")
	require.NoError(t, err)
	require.Equal(t, created.Title, got.Title)
	require.Equal(t, []string{"a.jpg", "b.jpg"}, got.Images)
	require.Equal(t, []string{"Park fees", "Guide"}, got.Included)
	require.Len(t, got.Itinerary, 2)
	require.Equal(t, "Arrival", got.Itinerary[0].Title)
	require.Equal(t, []string{"Game drive"}, got.Itinerary[0].Activities)

	// Packages and travel ideas live in separate tables
	_, err = q.GetTourBySlug(ctx, model.KindTravelIdea, "serengeti-great-migration")
	require.True(t, errors.Is(err, ErrNotFound))
}

func TestUpdateTourLastWriteWins(t *testing.T) {
	q := newTestQueries(t)
	ctx := context.Background()

	created, err := q.CreateTour(ctx, model.KindPackage, CreateTourParams{
		Title: "Kruger Classic", Slug: "kruger-classic", Price: 1500, DurationDays: 5,
		Destination: "Kruger", Category: "Wildlife Safari", Difficulty: model.DifficultyEasy,
	})
	require.NoError(t, err)

	updated, err := q.UpdateTour(ctx, model.KindPackage, UpdateTourParams{
		ID: created.ID, Title: "Kruger Classic", Slug: "kruger-classic",
		Price: 1750, DurationDays: 6, Destination: "Kruger",
		Category: "Wildlife Safari", Difficulty: model.DifficultyEasy,
		Images: []string{"new.jpg"},
	})
	require.NoError(t, err)
	require.Equal(t, 1750.0, updated.Price)
	require.Equal(t, 6, updated.DurationDays)
	require.Equal(t, []string{"new.jpg"}, updated.Images)
}

func TestTourSlugExists(t *testing.T) {
	q := newTestQueries(t)
	ctx := context.Background()

	created, err := q.CreateTour(ctx, model.KindPackage, CreateTourParams{
		Title: "Zanzibar Escape", Slug: "zanzibar-escape", DurationDays: 4,
		Destination: "Zanzibar", Difficulty: model.DifficultyEasy,
	})
	require.NoError(t, err)

	exists, err := q.TourSlugExists(ctx, model.KindPackage, "zanzibar-escape", 0)
	require.NoError(t, err)
	require.True(t, exists)

	// Excluding the owning row allows an update to keep its own slug
	exists, err = q.TourSlugExists(ctx, model.KindPackage, "zanzibar-escape", created.ID)
	require.NoError(t, err)
	require.False(t, exists)
}

func TestNewsletterResubscribe(t *testing.T) {
	q := newTestQueries(t)
	ctx := context.Background()

	first, err := q.SubscribeNewsletter(ctx, "traveler@example.com")
	require.NoError(t, err)
	require.True(t, first.IsActive())

	require.NoError(t, q.UnsubscribeNewsletter(ctx, "traveler@example.com"))
	sub, err := q.GetSubscriptionByEmail(ctx, "traveler@example.com")
	require.NoError(t, err)
	require.False(t, sub.IsActive())

	again, err := q.SubscribeNewsletter(ctx, "traveler@example.com")
	require.NoError(t, err)
	require.True(t, again.IsActive())
	require.Equal(t, first.ID, again.ID)

	count, err := q.CountActiveSubscriptions(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
}

func TestBookingStatusTransitions(t *testing.T) {
	q := newTestQueries(t)
	ctx := context.Background()

	booking, err := q.CreateBooking(ctx, CreateBookingParams{
		Name: "Jane Traveler", Email: "jane@example.com",
		Destination: "Masai Mara", Adults: 2, Children: 1,
		Budget: "2500-5000", Accommodation: "lodge",
	})
	require.NoError(t, err)
	require.Equal(t, model.BookingStatusNew, booking.Status)

	require.NoError(t, q.UpdateBookingStatus(ctx, booking.ID, model.BookingStatusContacted))
	got, err := q.GetBookingByID(ctx, booking.ID)
	require.NoError(t, err)
	require.Equal(t, model.BookingStatusContacted, got.Status)

	count, err := q.CountBookingsByStatus(ctx, model.BookingStatusContacted)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
}

func TestArticlePublish(t *testing.T) {
	q := newTestQueries(t)
	ctx := context.Background()

	article, err := q.CreateArticle(ctx, CreateArticleParams{
		Title: "Tracking the Big Five", Slug: "tracking-the-big-five",
		Content: "<p>Field notes.</p>", AuthorName: "Amos",
		Category: "Wildlife", Tags: []string{"lions", "tracking"},
		ReadTime: 3, Status: model.ArticleStatusDraft,
	})
	require.NoError(t, err)
	require.False(t, article.IsPublished())

	// Draft articles are invisible on the public site
	_, err = q.GetPublishedArticleBySlug(ctx, "tracking-the-big-five")
	require.True(t, errors.Is(err, ErrNotFound))

	require.NoError(t, q.PublishArticle(ctx, article.ID))
	published, err := q.GetPublishedArticleBySlug(ctx, "tracking-the-big-five")
	require.NoError(t, err)
	require.True(t, published.IsPublished())
	require.True(t, published.PublishedAt.Valid)
	require.Equal(t, []string{"lions", "tracking"}, published.Tags)
}

func TestArticleRepublishKeepsPublicationDate(t *testing.T) {
	q := newTestQueries(t)
	ctx := context.Background()

	article, err := q.CreateArticle(ctx, CreateArticleParams{
		Title: "Rains in the Mara", Slug: "rains-in-the-mara",
		Content: "<p>Storm season.</p>", AuthorName: "Amos",
		Category: "Wildlife", ReadTime: 2, Status: model.ArticleStatusDraft,
	})
	require.NoError(t, err)

	require.NoError(t, q.PublishArticle(ctx, article.ID))
	first, err := q.GetArticleByID(ctx, article.ID)
	require.NoError(t, err)
	require.True(t, first.PublishedAt.Valid)

	require.NoError(t, q.UnpublishArticle(ctx, article.ID))
	require.NoError(t, q.PublishArticle(ctx, article.ID))

	second, err := q.GetArticleByID(ctx, article.ID)
	require.NoError(t, err)
	require.True(t, second.PublishedAt.Valid)
	require.Equal(t, first.PublishedAt.Time, second.PublishedAt.Time)
}

func TestSeedIdempotent(t *testing.T) {
	db, err := NewDB(filepath.Join(t.TempDir(), "seed.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, Migrate(db))

	ctx := context.Background()
	require.NoError(t, Seed(ctx, db))
	require.NoError(t, Seed(ctx, db))

	q := New(db)
	count, err := q.CountUsers(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)

	user, err := q.GetUserByEmail(ctx, DefaultAdminEmail)
	require.NoError(t, err)
	require.True(t, user.IsAdmin())
}
