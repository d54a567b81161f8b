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

// BookingHandler manages booking requests in the back office.
type BookingHandler struct {
	queries      *store.Queries
	renderer     *render.Renderer
	eventService *service.EventService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(db *sql.DB, renderer *render.Renderer) *BookingHandler {
	return &BookingHandler{
		queries:      store.New(db),
		renderer:     renderer,
		eventService: service.NewEventService(db),
	}
}

// Routes registers the booking admin routes.
func (h *BookingHandler) Routes(r chi.Router) {
	r.Get(RouteRoot, h.List)
	r.Post(RouteParamID+"/status", h.UpdateStatus)
	r.Post(RouteParamID+"/delete", h.Delete)
}

// bookingListData holds data for the booking listing.
type bookingListData struct {
	Bookings     []model.BookingRequest
	StatusFilter string
	Statuses     []string
	Pagination   AdminPagination
}

// List renders booking requests, optionally filtered by status.
func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	var bookings []model.BookingRequest
	var err error
	if model.IsValidBookingStatus(status) {
		bookings, err = h.queries.ListBookingsByStatus(r.Context(), status)
	} else {
		status = ""
		bookings, err = h.queries.ListBookings(r.Context())
	}
	if err != nil {
		logAndInternalError(w, "failed to list bookings", "error", err)
		return
	}

	page := pageParam(r.URL.Query())
	pagination := BuildAdminPagination(page, len(bookings), adminPerPage, "/admin/bookings", r.URL.Query())

	start := (pagination.CurrentPage - 1) * adminPerPage
	end := start + adminPerPage
	if end > len(bookings) {
		end = len(bookings)
	}

	if err := h.renderer.Render(w, r, "admin/bookings", render.TemplateData{
		Title: "Booking Requests",
		Data: bookingListData{
			Bookings:     bookings[start:end],
			StatusFilter: status,
			Statuses:     model.ValidBookingStatuses,
			Pagination:   pagination,
		},
	}); err != nil {
		logAndInternalError(w, "failed to render booking list", "error", err)
	}
}

// UpdateStatus moves a booking to a new status. Any status can follow
// any other; the pipeline is advisory.
func (h *BookingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, "/admin/bookings") {
		return
	}

	id := urlParamID(r)
	status := r.FormValue("status")
	if !model.IsValidBookingStatus(status) {
		flashError(w, r, h.renderer, "/admin/bookings", "Unknown booking status")
		return
	}

	if err := h.queries.UpdateBookingStatus(r.Context(), id, status); err != nil {
		logAndInternalError(w, "failed to update booking status", "error", err, "id", id)
		return
	}

	_ = h.eventService.LogInfo(r.Context(), model.EventCategoryBooking,
		"Booking status changed", 0, map[string]any{"id": id, "status": status})

	flashSuccess(w, r, h.renderer, "/admin/bookings", "Booking updated")
}

// Delete removes a booking request.
func (h *BookingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := urlParamID(r)
	if err := h.queries.DeleteBooking(r.Context(), id); err != nil {
		logAndInternalError(w, "failed to delete booking", "error", err, "id", id)
		return
	}

	_ = h.eventService.LogInfo(r.Context(), model.EventCategoryBooking,
		"Booking deleted", 0, map[string]any{"id": id})

	flashSuccess(w, r, h.renderer, "/admin/bookings", "Booking deleted")
}
