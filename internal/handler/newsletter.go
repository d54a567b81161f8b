// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"net/http"
	"net/mail"
	"strings"

	"github.com/savannatrails/safari-go/internal/model"
	"github.com/savannatrails/safari-go/internal/render"
	"github.com/savannatrails/safari-go/internal/service"
	"github.com/savannatrails/safari-go/internal/store"
)

// NewsletterHandler serves the public subscription endpoints and the
// admin subscriber listing.
type NewsletterHandler struct {
	queries      *store.Queries
	renderer     *render.Renderer
	eventService *service.EventService
}

// NewNewsletterHandler creates a new NewsletterHandler.
func NewNewsletterHandler(db *sql.DB, renderer *render.Renderer) *NewsletterHandler {
	return &NewsletterHandler{
		queries:      store.New(db),
		renderer:     renderer,
		eventService: service.NewEventService(db),
	}
}

// Subscribe handles the public newsletter form. Resubscribing a
// previously unsubscribed address reactivates it.
func (h *NewsletterHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	redirect := r.Referer()
	if redirect == "" {
		redirect = RouteRoot
	}

	if !parseFormOrRedirect(w, r, h.renderer, redirect) {
		return
	}

	email := strings.TrimSpace(strings.ToLower(r.FormValue("email")))
	if _, err := mail.ParseAddress(email); err != nil {
		flashError(w, r, h.renderer, redirect, "Please enter a valid email address")
		return
	}

	if _, err := h.queries.SubscribeNewsletter(r.Context(), email); err != nil {
		logAndInternalError(w, "failed to subscribe email", "error", err)
		return
	}

	flashSuccess(w, r, h.renderer, redirect, "Thanks for subscribing! Watch your inbox for safari news.")
}

// Unsubscribe handles one-click unsubscribe links from newsletters.
func (h *NewsletterHandler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(strings.ToLower(r.URL.Query().Get("email")))
	if email == "" {
		http.Redirect(w, r, RouteRoot, http.StatusSeeOther)
		return
	}

	if err := h.queries.UnsubscribeNewsletter(r.Context(), email); err != nil {
		logAndInternalError(w, "failed to unsubscribe email", "error", err)
		return
	}

	flashSuccess(w, r, h.renderer, RouteRoot, "You have been unsubscribed.")
}

// subscriberListData holds data for the admin subscriber listing.
type subscriberListData struct {
	Subscriptions []model.NewsletterSubscription
	Pagination    AdminPagination
}

// List renders active subscribers in the back office.
func (h *NewsletterHandler) List(w http.ResponseWriter, r *http.Request) {
	subs, err := h.queries.ListActiveSubscriptions(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list subscriptions", "error", err)
		return
	}

	page := pageParam(r.URL.Query())
	pagination := BuildAdminPagination(page, len(subs), adminPerPage, "/admin/subscribers", r.URL.Query())

	start := (pagination.CurrentPage - 1) * adminPerPage
	end := start + adminPerPage
	if end > len(subs) {
		end = len(subs)
	}

	if err := h.renderer.Render(w, r, "admin/subscribers", render.TemplateData{
		Title: "Newsletter Subscribers",
		Data: subscriberListData{
			Subscriptions: subs[start:end],
			Pagination:    pagination,
		},
	}); err != nil {
		logAndInternalError(w, "failed to render subscriber list", "error", err)
	}
}
