// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/savannatrails/safari-go/internal/model"
	"github.com/savannatrails/safari-go/internal/util"
)

// SeedDemo creates sample catalog content so a fresh install has something
// to show. Enabled via SAFARI_DO_SEED; skipped when packages already exist.
func SeedDemo(ctx context.Context, db *sql.DB, enabled bool) error {
	if !enabled {
		return nil
	}

	queries := New(db)

	count, err := queries.CountTours(ctx, model.KindPackage)
	if err != nil {
		return fmt.Errorf("counting packages: %w", err)
	}
	if count > 0 {
		slog.Info("catalog already has content, skipping demo seed")
		return nil
	}

	packages := []CreateTourParams{
		{
			Title:        "Great Migration Explorer",
			Slug:         "great-migration-explorer",
			Description:  "Follow the wildebeest herds across the Serengeti and Masai Mara with expert guides and classic tented camps.",
			Price:        3450,
			DurationDays: 8,
			Destination:  "Kenya",
			Category:     "Wildlife Safari",
			Difficulty:   "Moderate",
			Included:     []string{"Park fees", "Full-board accommodation", "4x4 game drives", "Airport transfers"},
			Excluded:     []string{"International flights", "Travel insurance", "Gratuities"},
			Itinerary: []model.ItineraryDay{
				{Day: 1, Title: "Arrival in Nairobi", Description: "Meet and greet at the airport, overnight at a garden hotel.", Activities: []string{"Airport transfer", "Welcome briefing"}},
				{Day: 2, Title: "Into the Masai Mara", Description: "Scenic drive to the Mara with an afternoon game drive.", Activities: []string{"Game drive", "Sundowner"}},
				{Day: 3, Title: "Full day on the plains", Description: "Track the herds at river crossings with a picnic lunch.", Activities: []string{"Game drive", "Picnic lunch"}},
			},
		},
		{
			Title:        "Okavango Delta Water Safari",
			Slug:         "okavango-delta-water-safari",
			Description:  "Glide through papyrus channels by mokoro and spot elephants from the water on this classic Botswana journey.",
			Price:        4980,
			DurationDays: 6,
			Destination:  "Botswana",
			Category:     "Luxury Safari",
			Difficulty:   "Easy",
			Included:     []string{"Light aircraft transfers", "All meals and drinks", "Mokoro excursions", "Guided walks"},
			Excluded:     []string{"International flights", "Visa fees"},
			Itinerary: []model.ItineraryDay{
				{Day: 1, Title: "Fly into the Delta", Description: "Charter flight from Maun to a water camp deep in the Delta.", Activities: []string{"Scenic flight", "Evening mokoro"}},
				{Day: 2, Title: "Channels and islands", Description: "Explore the waterways by boat and on foot.", Activities: []string{"Boat cruise", "Island walk"}},
			},
		},
	}

	for _, p := range packages {
		if _, err := queries.CreateTour(ctx, model.KindPackage, p); err != nil {
			return fmt.Errorf("seeding package %q: %w", p.Title, err)
		}
	}

	idea := CreateTourParams{
		Title:        "Gorillas and Golden Monkeys",
		Slug:         "gorillas-and-golden-monkeys",
		Description:  "A trekking-focused itinerary pairing mountain gorilla encounters in Volcanoes National Park with golden monkey tracking.",
		Price:        5800,
		DurationDays: 5,
		Destination:  "Rwanda",
		Category:     "Adventure Safari",
		Difficulty:   "Challenging",
		Included:     []string{"Gorilla permits", "Trekking guides", "Lodge accommodation"},
		Excluded:     []string{"International flights", "Porter fees"},
		Itinerary: []model.ItineraryDay{
			{Day: 1, Title: "Kigali to Musanze", Description: "Transfer through the land of a thousand hills.", Activities: []string{"City tour", "Transfer"}},
			{Day: 2, Title: "Gorilla trek", Description: "Hike into the bamboo forest to spend an hour with a gorilla family.", Activities: []string{"Gorilla trekking"}},
		},
	}
	if _, err := queries.CreateTour(ctx, model.KindTravelIdea, idea); err != nil {
		return fmt.Errorf("seeding travel idea: %w", err)
	}

	article := CreateArticleParams{
		Title:       "When to See the Great Migration",
		Slug:        "when-to-see-the-great-migration",
		Excerpt:     "The herds move year-round. Here is where to find them month by month.",
		Content:     "<p>The Great Migration is not a single event but a continuous loop of almost two million animals circling the Serengeti-Mara ecosystem. River crossings peak between July and October, while the southern plains host calving season in February.</p>",
		AuthorName:  "Savanna Trails Team",
		Category:    "Travel Tips",
		Tags:        []string{"migration", "kenya", "tanzania"},
		ReadTime:    3,
		IsFeatured:  true,
		Status:      model.ArticleStatusPublished,
		PublishedAt: util.NullTimeFromValue(time.Now().UTC()),
	}
	if _, err := queries.CreateArticle(ctx, article); err != nil {
		return fmt.Errorf("seeding article: %w", err)
	}

	slog.Info("seeded demo catalog content",
		"packages", len(packages),
		"travel_ideas", 1,
		"articles", 1,
	)
	return nil
}
