// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"net/http"

	"github.com/savannatrails/safari-go/internal/model"
	"github.com/savannatrails/safari-go/internal/render"
	"github.com/savannatrails/safari-go/internal/store"
)

// AdminHandler serves the back office dashboard.
type AdminHandler struct {
	queries  *store.Queries
	renderer *render.Renderer
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(db *sql.DB, renderer *render.Renderer) *AdminHandler {
	return &AdminHandler{
		queries:  store.New(db),
		renderer: renderer,
	}
}

// DashboardData holds the counters shown on the dashboard.
type DashboardData struct {
	PackageCount    int64
	TravelIdeaCount int64
	ArticleCount    int64
	NewBookings     int64
	NewContacts     int64
	Subscribers     int64
	RecentEvents    []model.Event
}

// Dashboard renders the admin landing page with content counters and
// the latest audit events.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	data := DashboardData{}

	var err error
	if data.PackageCount, err = h.queries.CountTours(ctx, model.KindPackage); err != nil {
		logAndInternalError(w, "failed to count packages", "error", err)
		return
	}
	if data.TravelIdeaCount, err = h.queries.CountTours(ctx, model.KindTravelIdea); err != nil {
		logAndInternalError(w, "failed to count travel ideas", "error", err)
		return
	}
	if data.ArticleCount, err = h.queries.CountArticles(ctx); err != nil {
		logAndInternalError(w, "failed to count articles", "error", err)
		return
	}
	if data.NewBookings, err = h.queries.CountBookingsByStatus(ctx, model.BookingStatusNew); err != nil {
		logAndInternalError(w, "failed to count bookings", "error", err)
		return
	}
	if data.NewContacts, err = h.queries.CountContactsByStatus(ctx, model.ContactStatusNew); err != nil {
		logAndInternalError(w, "failed to count contacts", "error", err)
		return
	}
	if data.Subscribers, err = h.queries.CountActiveSubscriptions(ctx); err != nil {
		logAndInternalError(w, "failed to count subscribers", "error", err)
		return
	}
	if data.RecentEvents, err = h.queries.ListRecentEvents(ctx, 10); err != nil {
		logAndInternalError(w, "failed to list events", "error", err)
		return
	}

	if err := h.renderer.Render(w, r, "admin/dashboard", render.TemplateData{
		Title: "Dashboard",
		Data:  data,
	}); err != nil {
		logAndInternalError(w, "failed to render dashboard", "error", err)
	}
}
