// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/savannatrails/safari-go/internal/analytics"
	"github.com/savannatrails/safari-go/internal/render"
	"github.com/savannatrails/safari-go/internal/store"
)

// AnalyticsHandler serves the admin traffic overview.
type AnalyticsHandler struct {
	queries  *store.Queries
	renderer *render.Renderer
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(db *sql.DB, renderer *render.Renderer) *AnalyticsHandler {
	return &AnalyticsHandler{
		queries:  store.New(db),
		renderer: renderer,
	}
}

// analyticsData holds data for the analytics page.
type analyticsData struct {
	Summary *analytics.Summary
	Window  string
}

// Overview renders traffic numbers for a trailing window selected by
// the "window" query parameter (24h, 7d or 30d; default 30d).
func (h *AnalyticsHandler) Overview(w http.ResponseWriter, r *http.Request) {
	window := r.URL.Query().Get("window")
	var span time.Duration
	switch window {
	case "24h":
		span = 24 * time.Hour
	case "7d":
		span = 7 * 24 * time.Hour
	default:
		window = "30d"
		span = 30 * 24 * time.Hour
	}

	summary, err := analytics.Summarize(r.Context(), h.queries, span)
	if err != nil {
		logAndInternalError(w, "failed to summarize analytics", "error", err)
		return
	}

	if err := h.renderer.Render(w, r, "admin/analytics", render.TemplateData{
		Title: "Analytics",
		Data: analyticsData{
			Summary: summary,
			Window:  window,
		},
	}); err != nil {
		logAndInternalError(w, "failed to render analytics", "error", err)
	}
}
