// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package analytics

import (
	"context"
	"time"

	"github.com/savannatrails/safari-go/internal/store"
)

// Summary aggregates page view data for the admin analytics page.
type Summary struct {
	TotalViews     int64
	UniqueVisitors int64
	TopPages       []store.PathCount
	Browsers       []store.LabelCount
	Devices        []store.LabelCount
	Countries      []store.LabelCount
}

// Summarize builds an analytics summary over the given trailing window.
func Summarize(ctx context.Context, queries *store.Queries, window time.Duration) (*Summary, error) {
	since := time.Now().UTC().Add(-window)

	total, err := queries.CountPageViewsSince(ctx, since)
	if err != nil {
		return nil, err
	}
	unique, err := queries.CountUniqueVisitorsSince(ctx, since)
	if err != nil {
		return nil, err
	}
	top, err := queries.TopPages(ctx, since, 10)
	if err != nil {
		return nil, err
	}
	browsers, err := queries.CountPageViewsBy(ctx, "browser", since)
	if err != nil {
		return nil, err
	}
	devices, err := queries.CountPageViewsBy(ctx, "device", since)
	if err != nil {
		return nil, err
	}
	countries, err := queries.CountPageViewsBy(ctx, "country", since)
	if err != nil {
		return nil, err
	}

	return &Summary{
		TotalViews:     total,
		UniqueVisitors: unique,
		TopPages:       top,
		Browsers:       browsers,
		Devices:        devices,
		Countries:      countries,
	}, nil
}
