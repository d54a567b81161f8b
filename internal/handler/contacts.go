// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/savannatrails/safari-go/internal/model"
	"github.com/savannatrails/safari-go/internal/render"
	"github.com/savannatrails/safari-go/internal/service"
	"github.com/savannatrails/safari-go/internal/store"
)

// ContactHandler manages contact submissions in the back office.
type ContactHandler struct {
	queries      *store.Queries
	renderer     *render.Renderer
	eventService *service.EventService
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(db *sql.DB, renderer *render.Renderer) *ContactHandler {
	return &ContactHandler{
		queries:      store.New(db),
		renderer:     renderer,
		eventService: service.NewEventService(db),
	}
}

// Routes registers the contact admin routes.
func (h *ContactHandler) Routes(r chi.Router) {
	r.Get(RouteRoot, h.List)
	r.Post(RouteParamID+"/status", h.UpdateStatus)
	r.Post(RouteParamID+"/delete", h.Delete)
}

// contactListData holds data for the contact listing.
type contactListData struct {
	Contacts   []model.ContactSubmission
	Statuses   []string
	Pagination AdminPagination
}

// List renders contact submissions.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.queries.ListContacts(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list contacts", "error", err)
		return
	}

	page := pageParam(r.URL.Query())
	pagination := BuildAdminPagination(page, len(contacts), adminPerPage, "/admin/contacts", r.URL.Query())

	start := (pagination.CurrentPage - 1) * adminPerPage
	end := start + adminPerPage
	if end > len(contacts) {
		end = len(contacts)
	}

	if err := h.renderer.Render(w, r, "admin/contacts", render.TemplateData{
		Title: "Contact Messages",
		Data: contactListData{
			Contacts:   contacts[start:end],
			Statuses:   model.ValidContactStatuses,
			Pagination: pagination,
		},
	}); err != nil {
		logAndInternalError(w, "failed to render contact list", "error", err)
	}
}

// UpdateStatus marks a contact submission read or responded.
func (h *ContactHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, "/admin/contacts") {
		return
	}

	id := urlParamID(r)
	status := r.FormValue("status")
	if !model.IsValidContactStatus(status) {
		flashError(w, r, h.renderer, "/admin/contacts", "Unknown contact status")
		return
	}

	if err := h.queries.UpdateContactStatus(r.Context(), id, status); err != nil {
		logAndInternalError(w, "failed to update contact status", "error", err, "id", id)
		return
	}

	flashSuccess(w, r, h.renderer, "/admin/contacts", "Message updated")
}

// Delete removes a contact submission.
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := urlParamID(r)
	if err := h.queries.DeleteContact(r.Context(), id); err != nil {
		logAndInternalError(w, "failed to delete contact", "error", err, "id", id)
		return
	}

	_ = h.eventService.LogInfo(r.Context(), model.EventCategoryContact,
		"Contact message deleted", 0, map[string]any{"id": id})

	flashSuccess(w, r, h.renderer, "/admin/contacts", "Message deleted")
}
