// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/savannatrails/safari-go/internal/model"
)

// tableForKind maps a tour kind to its backing table. Packages and travel
// ideas share a schema but live in separate tables.
func tableForKind(kind string) (string, error) {
	switch kind {
	case model.KindPackage:
		return "packages", nil
	case model.KindTravelIdea:
		return "travel_ideas", nil
	default:
		return "", fmt.Errorf("unknown tour kind: %q", kind)
	}
}

const tourColumns = `id, title, slug, description, price, duration_days, destination,
	category, difficulty, images, included, excluded, itinerary, created_at, updated_at`

func scanTour(row interface{ Scan(...any) error }) (model.TourPackage, error) {
	var p model.TourPackage
	var images, included, excluded, itinerary string
	err := row.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Description, &p.Price, &p.DurationDays,
		&p.Destination, &p.Category, &p.Difficulty,
		&images, &included, &excluded, &itinerary,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return model.TourPackage{}, err
	}
	if err := unmarshalJSON(images, &p.Images); err != nil {
		return model.TourPackage{}, fmt.Errorf("decoding images: %w", err)
	}
	if err := unmarshalJSON(included, &p.Included); err != nil {
		return model.TourPackage{}, fmt.Errorf("decoding included: %w", err)
	}
	if err := unmarshalJSON(excluded, &p.Excluded); err != nil {
		return model.TourPackage{}, fmt.Errorf("decoding excluded: %w", err)
	}
	if err := unmarshalJSON(itinerary, &p.Itinerary); err != nil {
		return model.TourPackage{}, fmt.Errorf("decoding itinerary: %w", err)
	}
	return p, nil
}

// CreateTourParams holds the fields for creating a package or travel idea.
type CreateTourParams struct {
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

// CreateTour inserts a new package or travel idea depending on kind.
func (q *Queries) CreateTour(ctx context.Context, kind string, arg CreateTourParams) (model.TourPackage, error) {
	table, err := tableForKind(kind)
	if err != nil {
		return model.TourPackage{}, err
	}

	images, err := marshalJSON(arg.Images)
	if err != nil {
		return model.TourPackage{}, fmt.Errorf("encoding images: %w", err)
	}
	included, err := marshalJSON(arg.Included)
	if err != nil {
		return model.TourPackage{}, fmt.Errorf("encoding included: %w", err)
	}
	excluded, err := marshalJSON(arg.Excluded)
	if err != nil {
		return model.TourPackage{}, fmt.Errorf("encoding excluded: %w", err)
	}
	itinerary, err := marshalJSON(arg.Itinerary)
	if err != nil {
		return model.TourPackage{}, fmt.Errorf("encoding itinerary: %w", err)
	}

	now := time.Now().UTC()
	query := fmt.Sprintf(`INSERT INTO %s (title, slug, description, price, duration_days,
		destination, category, difficulty, images, included, excluded, itinerary, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, table)

	res, err := q.db.ExecContext(ctx, query,
		arg.Title, arg.Slug, arg.Description, arg.Price, arg.DurationDays,
		arg.Destination, arg.Category, arg.Difficulty,
		images, included, excluded, itinerary, now, now,
	)
	if err != nil {
		return model.TourPackage{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return model.TourPackage{}, err
	}

	return q.GetTourByID(ctx, kind, id)
}

// GetTourByID fetches a package or travel idea by ID.
func (q *Queries) GetTourByID(ctx context.Context, kind string, id int64) (model.TourPackage, error) {
	table, err := tableForKind(kind)
	if err != nil {
		return model.TourPackage{}, err
	}
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = ?", tourColumns, table)
	return scanTour(q.db.QueryRowContext(ctx, query, id))
}

// GetTourBySlug fetches a package or travel idea by slug.
func (q *Queries) GetTourBySlug(ctx context.Context, kind, slug string) (model.TourPackage, error) {
	table, err := tableForKind(kind)
	if err != nil {
		return model.TourPackage{}, err
	}
	query := fmt.Sprintf("SELECT %s FROM %s WHERE slug = ?", tourColumns, table)
	return scanTour(q.db.QueryRowContext(ctx, query, slug))
}

// ListTours returns all packages or travel ideas, newest first.
func (q *Queries) ListTours(ctx context.Context, kind string) ([]model.TourPackage, error) {
	table, err := tableForKind(kind)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY created_at DESC, id DESC", tourColumns, table)

	rows, err := q.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tours []model.TourPackage
	for rows.Next() {
		p, err := scanTour(rows)
		if err != nil {
			return nil, err
		}
		tours = append(tours, p)
	}
	return tours, rows.Err()
}

// UpdateTourParams holds the fields for updating a package or travel idea.
type UpdateTourParams struct {
	ID           int64
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

// UpdateTour overwrites all editable fields of a package or travel idea.
// Last write wins; there is no optimistic locking.
func (q *Queries) UpdateTour(ctx context.Context, kind string, arg UpdateTourParams) (model.TourPackage, error) {
	table, err := tableForKind(kind)
	if err != nil {
		return model.TourPackage{}, err
	}

	images, err := marshalJSON(arg.Images)
	if err != nil {
		return model.TourPackage{}, fmt.Errorf("encoding images: %w", err)
	}
	included, err := marshalJSON(arg.Included)
	if err != nil {
		return model.TourPackage{}, fmt.Errorf("encoding included: %w", err)
	}
	excluded, err := marshalJSON(arg.Excluded)
	if err != nil {
		return model.TourPackage{}, fmt.Errorf("encoding excluded: %w", err)
	}
	itinerary, err := marshalJSON(arg.Itinerary)
	if err != nil {
		return model.TourPackage{}, fmt.Errorf("encoding itinerary: %w", err)
	}

	query := fmt.Sprintf(`UPDATE %s SET title = ?, slug = ?, description = ?, price = ?,
		duration_days = ?, destination = ?, category = ?, difficulty = ?,
		images = ?, included = ?, excluded = ?, itinerary = ?, updated_at = ?
		WHERE id = ?`, table)

	_, err = q.db.ExecContext(ctx, query,
		arg.Title, arg.Slug, arg.Description, arg.Price, arg.DurationDays,
		arg.Destination, arg.Category, arg.Difficulty,
		images, included, excluded, itinerary, time.Now().UTC(), arg.ID,
	)
	if err != nil {
		return model.TourPackage{}, err
	}

	return q.GetTourByID(ctx, kind, arg.ID)
}

// DeleteTour removes a package or travel idea by ID.
func (q *Queries) DeleteTour(ctx context.Context, kind string, id int64) error {
	table, err := tableForKind(kind)
	if err != nil {
		return err
	}
	_, err = q.db.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = ?", table), id)
	return err
}

// CountTours returns the number of packages or travel ideas.
func (q *Queries) CountTours(ctx context.Context, kind string) (int64, error) {
	table, err := tableForKind(kind)
	if err != nil {
		return 0, err
	}
	var count int64
	err = q.db.QueryRowContext(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&count)
	return count, err
}

// TourSlugExists reports whether a slug is already taken, excluding the
// given ID (pass 0 when creating).
func (q *Queries) TourSlugExists(ctx context.Context, kind, slug string, excludeID int64) (bool, error) {
	table, err := tableForKind(kind)
	if err != nil {
		return false, err
	}
	var count int64
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE slug = ? AND id != ?", table)
	if err := q.db.QueryRowContext(ctx, query, slug, excludeID).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

// ErrNotFound is a convenience alias for callers checking lookup misses.
var ErrNotFound = sql.ErrNoRows
