// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package analytics

import (
	"net/http/httptest"
	"testing"
	"time"
)

func TestVisitorHashStableWithinDay(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	later := now.Add(5 * time.Hour)

	a := VisitorHash("203.0.113.9", "Mozilla/5.0", now)
	b := VisitorHash("203.0.113.9", "Mozilla/5.0", later)
	if a != b {
		t.Error("hash changed within the same day")
	}

	nextDay := VisitorHash("203.0.113.9", "Mozilla/5.0", now.Add(24*time.Hour))
	if a == nextDay {
		t.Error("hash did not rotate across days")
	}

	otherIP := VisitorHash("203.0.113.10", "Mozilla/5.0", now)
	if a == otherIP {
		t.Error("different IPs produced the same hash")
	}
}

func TestTrackablePath(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/", true},
		{"/tours", true},
		{"/tours/serengeti-great-migration", true},
		{"/wild-tales/lion-season", true},
		{"/admin/dashboard", false},
		{"/admin/login", false},
		{"/uploads/originals/x/y.jpg", false},
		{"/static/css/site.css", false},
		{"/healthz", false},
		{"/favicon.ico", false},
	}

	for _, tt := range tests {
		if got := trackablePath(tt.path); got != tt.want {
			t.Errorf("trackablePath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestBuildPageViewParsesUserAgent(t *testing.T) {
	tr := NewTracker(nil, nil)

	r := httptest.NewRequest("GET", "/tours", nil)
	r.RemoteAddr = "203.0.113.9:54321"
	r.Header.Set("User-Agent", "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1")
	r.Header.Set("Referer", "https://www.google.com/")

	view := tr.buildPageView(r)
	if view.Path != "/tours" {
		t.Errorf("Path = %q", view.Path)
	}
	if view.Device != "mobile" {
		t.Errorf("Device = %q, want mobile", view.Device)
	}
	if view.Browser == "" || view.OS == "" {
		t.Errorf("browser/os not parsed: %q %q", view.Browser, view.OS)
	}
	if view.Referrer != "https://www.google.com/" {
		t.Errorf("Referrer = %q", view.Referrer)
	}
	if view.VisitorHash == "" {
		t.Error("VisitorHash empty")
	}
	if view.Country != "" {
		t.Errorf("Country = %q without geoip", view.Country)
	}
}
