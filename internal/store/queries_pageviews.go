// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"
)

// CreatePageViewParams holds the fields for recording a page view.
type CreatePageViewParams struct {
	Path        string
	Referrer    string
	UserAgent   string
	Browser     string
	OS          string
	Device      string
	Country     string
	VisitorHash string
}

// CreatePageView records a single page view.
func (q *Queries) CreatePageView(ctx context.Context, arg CreatePageViewParams) error {
	_, err := q.db.ExecContext(ctx,
		`INSERT INTO page_views (path, referrer, user_agent, browser, os, device, country, visitor_hash, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		arg.Path, arg.Referrer, arg.UserAgent, arg.Browser, arg.OS, arg.Device,
		arg.Country, arg.VisitorHash, time.Now().UTC())
	return err
}

// PathCount is a page path with its view count.
type PathCount struct {
	Path  string
	Count int64
}

// TopPages returns the most viewed paths since a cutoff time.
func (q *Queries) TopPages(ctx context.Context, since time.Time, limit int64) ([]PathCount, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT path, COUNT(*) AS views FROM page_views
		 WHERE created_at >= ? GROUP BY path ORDER BY views DESC LIMIT ?`, since, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []PathCount
	for rows.Next() {
		var pc PathCount
		if err := rows.Scan(&pc.Path, &pc.Count); err != nil {
			return nil, err
		}
		results = append(results, pc)
	}
	return results, rows.Err()
}

// LabelCount is a grouped analytics dimension with its count.
type LabelCount struct {
	Label string
	Count int64
}

// CountPageViewsBy groups page views since a cutoff by one of the allowed
// dimensions: browser, os, device or country.
func (q *Queries) CountPageViewsBy(ctx context.Context, dimension string, since time.Time) ([]LabelCount, error) {
	var column string
	switch dimension {
	case "browser":
		column = "browser"
	case "os":
		column = "os"
	case "device":
		column = "device"
	case "country":
		column = "country"
	default:
		column = "browser"
	}
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+column+`, COUNT(*) AS views FROM page_views
		 WHERE created_at >= ? GROUP BY `+column+` ORDER BY views DESC`, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []LabelCount
	for rows.Next() {
		var lc LabelCount
		if err := rows.Scan(&lc.Label, &lc.Count); err != nil {
			return nil, err
		}
		results = append(results, lc)
	}
	return results, rows.Err()
}

// CountPageViewsSince returns the total page views since a cutoff time.
func (q *Queries) CountPageViewsSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM page_views WHERE created_at >= ?", since).Scan(&count)
	return count, err
}

// CountUniqueVisitorsSince returns distinct visitor hashes since a cutoff time.
func (q *Queries) CountUniqueVisitorsSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx,
		"SELECT COUNT(DISTINCT visitor_hash) FROM page_views WHERE created_at >= ?", since).Scan(&count)
	return count, err
}

// PrunePageViews deletes page views older than the cutoff. Returns rows deleted.
func (q *Queries) PrunePageViews(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := q.db.ExecContext(ctx, "DELETE FROM page_views WHERE created_at < ?", cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
