// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package analytics records page views for public pages and aggregates
// them for the admin dashboard.
package analytics

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/mileusna/useragent"

	"github.com/savannatrails/safari-go/internal/geoip"
	"github.com/savannatrails/safari-go/internal/store"
)

// Tracker records public page views asynchronously.
type Tracker struct {
	queries *store.Queries
	geo     *geoip.Lookup
}

// NewTracker creates a page view tracker. geo may be nil when GeoIP is
// not configured.
func NewTracker(queries *store.Queries, geo *geoip.Lookup) *Tracker {
	return &Tracker{queries: queries, geo: geo}
}

// Middleware records a page view for every successful GET of a public
// page. Admin, upload, static and health paths are skipped.
func (t *Tracker) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r)

		if r.Method != http.MethodGet || !trackablePath(r.URL.Path) {
			return
		}

		view := t.buildPageView(r)
		// Recording happens off the request path so a slow insert never
		// delays the response
		go func() {
			if err := t.queries.CreatePageView(context.Background(), view); err != nil {
				slog.Debug("recording page view failed", "error", err)
			}
		}()
	})
}

func trackablePath(path string) bool {
	for _, prefix := range []string{"/admin", "/uploads", "/static", "/healthz", "/favicon"} {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}
	return true
}

func (t *Tracker) buildPageView(r *http.Request) store.CreatePageViewParams {
	ua := useragent.Parse(r.UserAgent())

	device := "desktop"
	switch {
	case ua.Mobile:
		device = "mobile"
	case ua.Tablet:
		device = "tablet"
	case ua.Bot:
		device = "bot"
	}

	ip := clientIP(r)
	country := ""
	if t.geo != nil {
		country = t.geo.LookupCountry(ip)
	}

	return store.CreatePageViewParams{
		Path:        r.URL.Path,
		Referrer:    r.Referer(),
		UserAgent:   r.UserAgent(),
		Browser:     ua.Name,
		OS:          ua.OS,
		Device:      device,
		Country:     country,
		VisitorHash: VisitorHash(ip, r.UserAgent(), time.Now()),
	}
}

// VisitorHash derives a daily-rotating anonymous visitor identifier from
// the IP address and user agent. Raw IPs are never stored.
func VisitorHash(ip, userAgent string, now time.Time) string {
	h := sha256.New()
	h.Write([]byte(ip))
	h.Write([]byte{0})
	h.Write([]byte(userAgent))
	h.Write([]byte{0})
	h.Write([]byte(now.UTC().Format("2006-01-02")))
	return hex.EncodeToString(h.Sum(nil))[:16]
}

// clientIP extracts the remote IP, honoring chi's RealIP middleware
// which rewrites RemoteAddr from forwarding headers.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
