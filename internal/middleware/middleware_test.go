// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestStripTrailingSlash(t *testing.T) {
	tests := []struct {
		path       string
		query      string
		wantStatus int
		wantLoc    string
	}{
		{"/tours/", "", http.StatusMovedPermanently, "/tours"},
		{"/tours/serengeti/", "sort=price-asc", http.StatusMovedPermanently, "/tours/serengeti?sort=price-asc"},
		{"/tours", "", http.StatusOK, ""},
		{"/", "", http.StatusOK, ""},
	}

	handler := StripTrailingSlash(okHandler())

	for _, tt := range tests {
		url := tt.path
		if tt.query != "" {
			url += "?" + tt.query
		}
		r := httptest.NewRequest("GET", url, nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)

		if w.Code != tt.wantStatus {
			t.Errorf("%s: status = %d, want %d", url, w.Code, tt.wantStatus)
		}
		if tt.wantLoc != "" && w.Header().Get("Location") != tt.wantLoc {
			t.Errorf("%s: Location = %q, want %q", url, w.Header().Get("Location"), tt.wantLoc)
		}
	}
}

func TestSecurityHeaders(t *testing.T) {
	cfg := DefaultSecurityHeadersConfig(false)
	handler := SecurityHeaders(cfg)(okHandler())

	r := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if got := w.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q", got)
	}
	if got := w.Header().Get("Content-Security-Policy"); got == "" {
		t.Error("Content-Security-Policy not set")
	}
	if got := w.Header().Get("Strict-Transport-Security"); got == "" {
		t.Error("HSTS not set in production config")
	}
	if got := w.Header().Get("X-Frame-Options"); got != "SAMEORIGIN" {
		t.Errorf("X-Frame-Options = %q", got)
	}
}

func TestSecurityHeadersDevSkipsHSTS(t *testing.T) {
	cfg := DefaultSecurityHeadersConfig(true)
	handler := SecurityHeaders(cfg)(okHandler())

	r := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if got := w.Header().Get("Strict-Transport-Security"); got != "" {
		t.Errorf("HSTS set in development: %q", got)
	}
}

func TestSecurityHeadersExcludePaths(t *testing.T) {
	cfg := DefaultSecurityHeadersConfig(false)
	cfg.ExcludePaths = []string{"/uploads"}
	handler := SecurityHeaders(cfg)(okHandler())

	r := httptest.NewRequest("GET", "/uploads/originals/x/y.jpg", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if got := w.Header().Get("Content-Security-Policy"); got != "" {
		t.Errorf("CSP set on excluded path: %q", got)
	}
}

func TestLoginProtectionLockout(t *testing.T) {
	lp := NewLoginProtection(LoginProtectionConfig{
		MaxFailedAttempts: 3,
		LockoutDuration:   time.Minute,
		AttemptWindow:     time.Minute,
	})

	email := "admin@example.com"

	if locked, _ := lp.IsAccountLocked(email); locked {
		t.Fatal("account locked before any attempts")
	}

	for i := 0; i < 2; i++ {
		if locked, _ := lp.RecordFailedAttempt(email); locked {
			t.Fatalf("locked after %d attempts", i+1)
		}
	}

	locked, dur := lp.RecordFailedAttempt(email)
	if !locked {
		t.Fatal("not locked after reaching max attempts")
	}
	if dur != time.Minute {
		t.Errorf("lock duration = %v, want 1m", dur)
	}

	if locked, remaining := lp.IsAccountLocked(email); !locked || remaining <= 0 {
		t.Errorf("IsAccountLocked = %v, %v", locked, remaining)
	}
}

func TestLoginProtectionClearsOnSuccess(t *testing.T) {
	lp := NewLoginProtection(LoginProtectionConfig{MaxFailedAttempts: 3})

	email := "admin@example.com"
	lp.RecordFailedAttempt(email)
	lp.RecordFailedAttempt(email)
	lp.RecordSuccessfulLogin(email)

	// Counter is reset, two more failures must not lock
	if locked, _ := lp.RecordFailedAttempt(email); locked {
		t.Error("locked after counter should have been cleared")
	}
	if locked, _ := lp.RecordFailedAttempt(email); locked {
		t.Error("locked one attempt early")
	}
}

func TestLoginProtectionIPRateLimit(t *testing.T) {
	lp := NewLoginProtection(LoginProtectionConfig{IPRateLimit: 1, IPBurst: 2})

	ip := "203.0.113.9"
	if !lp.CheckIPRateLimit(ip) || !lp.CheckIPRateLimit(ip) {
		t.Fatal("burst requests rejected")
	}
	if lp.CheckIPRateLimit(ip) {
		t.Error("request beyond burst allowed")
	}
	if !lp.CheckIPRateLimit("203.0.113.10") {
		t.Error("other IP affected by limit")
	}
}
