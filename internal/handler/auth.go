// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package handler contains the HTTP handlers for the public site and
// the admin back office.
package handler

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"

	"github.com/savannatrails/safari-go/internal/auth"
	"github.com/savannatrails/safari-go/internal/middleware"
	"github.com/savannatrails/safari-go/internal/model"
	"github.com/savannatrails/safari-go/internal/render"
	"github.com/savannatrails/safari-go/internal/service"
	"github.com/savannatrails/safari-go/internal/store"
)

// AuthHandler handles admin authentication routes.
type AuthHandler struct {
	queries         *store.Queries
	renderer        *render.Renderer
	sessionManager  *scs.SessionManager
	eventService    *service.EventService
	loginProtection *middleware.LoginProtection
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(db *sql.DB, renderer *render.Renderer, sm *scs.SessionManager, lp *middleware.LoginProtection) *AuthHandler {
	return &AuthHandler{
		queries:         store.New(db),
		renderer:        renderer,
		sessionManager:  sm,
		eventService:    service.NewEventService(db),
		loginProtection: lp,
	}
}

// LoginForm renders the login page. Already-authenticated admins are
// sent straight to the dashboard.
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	if userID := h.sessionManager.GetInt64(r.Context(), middleware.SessionKeyUserID); userID > 0 {
		if _, err := h.queries.GetUserByID(r.Context(), userID); err == nil {
			http.Redirect(w, r, redirectAdmin, http.StatusSeeOther)
			return
		}
	}

	if err := h.renderer.Render(w, r, "auth/login", render.TemplateData{
		Title: "Sign In",
	}); err != nil {
		logAndInternalError(w, "failed to render login page", "error", err)
	}
}

// Login handles the login form submission.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, redirectLogin) {
		return
	}

	email := r.FormValue("email")
	password := r.FormValue("password")

	if email == "" || password == "" {
		flashError(w, r, h.renderer, redirectLogin, "Email and password are required")
		return
	}

	if locked, remaining := h.loginProtection.IsAccountLocked(email); locked {
		_ = h.eventService.LogWarning(r.Context(), model.EventCategoryAuth,
			"Login attempt on locked account", 0, map[string]any{"email": email})
		flashError(w, r, h.renderer, redirectLogin,
			fmt.Sprintf("Account temporarily locked. Try again in %s.", formatDuration(remaining)))
		return
	}

	user, err := h.queries.GetUserByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			_ = h.eventService.LogWarning(r.Context(), model.EventCategoryAuth,
				"Login failed: user not found", 0, map[string]any{"email": email})
		} else {
			slog.Error("database error during login", "error", err)
		}
		// Record the failure even for unknown emails to prevent enumeration
		if locked, lockDuration := h.loginProtection.RecordFailedAttempt(email); locked {
			flashError(w, r, h.renderer, redirectLogin,
				fmt.Sprintf("Too many failed attempts. Locked for %s.", formatDuration(lockDuration)))
			return
		}
		flashError(w, r, h.renderer, redirectLogin, "Invalid email or password")
		return
	}

	valid, err := auth.CheckPassword(password, user.PasswordHash)
	if err != nil {
		slog.Error("password check error", "error", err)
		flashError(w, r, h.renderer, redirectLogin, "Invalid email or password")
		return
	}

	if !valid {
		_ = h.eventService.LogWarning(r.Context(), model.EventCategoryAuth,
			"Login failed: invalid password", user.ID, map[string]any{"email": email})
		if locked, lockDuration := h.loginProtection.RecordFailedAttempt(email); locked {
			_ = h.eventService.LogWarning(r.Context(), model.EventCategoryAuth,
				"Account locked due to failed attempts", user.ID,
				map[string]any{"email": email, "duration": lockDuration.String()})
			flashError(w, r, h.renderer, redirectLogin,
				fmt.Sprintf("Too many failed attempts. Locked for %s.", formatDuration(lockDuration)))
			return
		}
		flashError(w, r, h.renderer, redirectLogin, "Invalid email or password")
		return
	}

	h.loginProtection.RecordSuccessfulLogin(email)

	// Upgrade hashes created with older parameters
	if auth.NeedsRehash(user.PasswordHash) {
		if newHash, err := auth.HashPassword(password); err == nil {
			if err := h.queries.UpdateUserPassword(r.Context(), user.ID, newHash); err != nil {
				slog.Error("failed to re-hash password", "error", err, "user_id", user.ID)
			}
		}
	}

	if err := h.queries.TouchUserLogin(r.Context(), user.ID); err != nil {
		slog.Error("failed to update last login time", "error", err, "user_id", user.ID)
	}

	// Regenerate session ID to prevent session fixation
	if err := h.sessionManager.RenewToken(r.Context()); err != nil {
		logAndInternalError(w, "session renewal error", "error", err)
		return
	}

	h.sessionManager.Put(r.Context(), middleware.SessionKeyUserID, user.ID)

	slog.Info("user logged in", "user_id", user.ID, "email", user.Email)
	_ = h.eventService.LogInfo(r.Context(), model.EventCategoryAuth,
		"User logged in", user.ID, map[string]any{"email": user.Email})

	flashSuccess(w, r, h.renderer, redirectAdmin, "Welcome back, "+user.Name)
}

// Logout destroys the session and redirects to the login page.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	userID := h.sessionManager.GetInt64(r.Context(), middleware.SessionKeyUserID)

	if err := h.sessionManager.Destroy(r.Context()); err != nil {
		logAndInternalError(w, "session destroy error", "error", err)
		return
	}

	if userID > 0 {
		_ = h.eventService.LogInfo(r.Context(), model.EventCategoryAuth,
			"User logged out", userID, nil)
	}

	http.Redirect(w, r, redirectLogin, http.StatusSeeOther)
}

// formatDuration renders a lockout duration in whole minutes or seconds.
func formatDuration(d time.Duration) string {
	if d >= time.Minute {
		return fmt.Sprintf("%d minutes", int(d.Round(time.Minute).Minutes()))
	}
	return fmt.Sprintf("%d seconds", int(d.Round(time.Second).Seconds()))
}
