// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package scheduler runs periodic maintenance jobs: pruning old
// analytics data, trimming the event log and refreshing the GeoIP
// database.
package scheduler

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/savannatrails/safari-go/internal/geoip"
	"github.com/savannatrails/safari-go/internal/store"
)

// Retention windows for pruned data.
const (
	pageViewRetention = 90 * 24 * time.Hour
	eventRetention    = 180 * 24 * time.Hour
)

// Scheduler owns the cron runner and its jobs.
type Scheduler struct {
	db     *sql.DB
	geo    *geoip.Lookup
	cron   *cron.Cron
	logger *slog.Logger
}

// New creates a scheduler. geo may be nil when GeoIP is not configured.
func New(db *sql.DB, geo *geoip.Lookup, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		db:     db,
		geo:    geo,
		cron:   cron.New(),
		logger: logger,
	}
}

// Start registers the maintenance jobs and begins the cron loop.
func (s *Scheduler) Start() error {
	// Nightly prune of old analytics and audit data
	if _, err := s.cron.AddFunc("30 3 * * *", func() {
		if err := s.pruneOldData(); err != nil {
			s.logger.Error("pruning old data failed", "error", err)
		}
	}); err != nil {
		return err
	}

	// Weekly GeoIP database refresh check
	if _, err := s.cron.AddFunc("0 4 * * 1", func() {
		if s.geo == nil {
			return
		}
		if err := s.geo.Reload(); err != nil {
			s.logger.Warn("GeoIP database reload failed", "error", err)
		}
	}); err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("scheduler started", "jobs", len(s.cron.Entries()))
	return nil
}

// Stop gracefully stops the scheduler, waiting for running jobs.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}

func (s *Scheduler) pruneOldData() error {
	ctx := context.Background()
	queries := store.New(s.db)
	now := time.Now().UTC()

	views, err := queries.PrunePageViews(ctx, now.Add(-pageViewRetention))
	if err != nil {
		return err
	}

	events, err := queries.PruneEvents(ctx, now.Add(-eventRetention))
	if err != nil {
		return err
	}

	if views > 0 || events > 0 {
		s.logger.Info("pruned old data", "page_views", views, "events", events)
	}
	return nil
}
