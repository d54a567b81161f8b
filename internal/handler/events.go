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

// EventHandler shows the audit event log in the back office.
type EventHandler struct {
	queries  *store.Queries
	renderer *render.Renderer
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(db *sql.DB, renderer *render.Renderer) *EventHandler {
	return &EventHandler{
		queries:  store.New(db),
		renderer: renderer,
	}
}

// eventListData holds data for the event log page.
type eventListData struct {
	Events []model.Event
}

// List renders the most recent audit events.
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.queries.ListRecentEvents(r.Context(), 200)
	if err != nil {
		logAndInternalError(w, "failed to list events", "error", err)
		return
	}

	if err := h.renderer.Render(w, r, "admin/events", render.TemplateData{
		Title: "Event Log",
		Data:  eventListData{Events: events},
	}); err != nil {
		logAndInternalError(w, "failed to render event log", "error", err)
	}
}
