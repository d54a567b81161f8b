// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package seo

import (
	"strings"
	"testing"
	"time"
)

func TestSitemapBuilderAddHomepage(t *testing.T) {
	builder := NewSitemapBuilder("https://example.com")
	builder.AddHomepage()

	if len(builder.urls) != 1 {
		t.Fatalf("urls length = %d, want 1", len(builder.urls))
	}

	url := builder.urls[0]
	if url.Loc != "https://example.com" {
		t.Errorf("Loc = %q, want %q", url.Loc, "https://example.com")
	}
	if url.Priority != "1.0" {
		t.Errorf("Priority = %q, want %q", url.Priority, "1.0")
	}
	if url.ChangeFreq != ChangeFreqDaily {
		t.Errorf("ChangeFreq = %q, want %q", url.ChangeFreq, ChangeFreqDaily)
	}
}

func TestSitemapBuilderAddEntry(t *testing.T) {
	builder := NewSitemapBuilder("https://example.com")
	updatedAt := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)

	builder.AddEntry(SitemapEntry{
		Path:      "/tours/great-migration-explorer",
		UpdatedAt: updatedAt,
	})

	if len(builder.urls) != 1 {
		t.Fatalf("urls length = %d, want 1", len(builder.urls))
	}

	url := builder.urls[0]
	if url.Loc != "https://example.com/tours/great-migration-explorer" {
		t.Errorf("Loc = %q", url.Loc)
	}
	if url.LastMod != "2026-01-15T10:00:00Z" {
		t.Errorf("LastMod = %q", url.LastMod)
	}
}

func TestSitemapBuilderBuild(t *testing.T) {
	builder := NewSitemapBuilder("https://example.com")
	builder.AddHomepage()
	builder.AddSection("/tours")
	builder.AddEntries([]SitemapEntry{
		{Path: "/tours/okavango-delta-water-safari"},
		{Path: "/wild-tales/when-to-see-the-great-migration"},
	})

	out, err := builder.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	xml := string(out)
	if !strings.HasPrefix(xml, "<?xml") {
		t.Error("missing XML header")
	}
	if !strings.Contains(xml, XMLNamespace) {
		t.Error("missing sitemap namespace")
	}
	for _, want := range []string{
		"<loc>https://example.com</loc>",
		"<loc>https://example.com/tours</loc>",
		"<loc>https://example.com/tours/okavango-delta-water-safari</loc>",
		"<loc>https://example.com/wild-tales/when-to-see-the-great-migration</loc>",
	} {
		if !strings.Contains(xml, want) {
			t.Errorf("missing %q in sitemap", want)
		}
	}
}

func TestRobotsBuilderDefault(t *testing.T) {
	robots := NewRobotsBuilder(RobotsConfig{SiteURL: "https://example.com"}).Build()

	for _, want := range []string{
		"User-agent: *",
		"Disallow: /admin",
		"Allow: /",
		"Sitemap: https://example.com/sitemap.xml",
	} {
		if !strings.Contains(robots, want) {
			t.Errorf("missing %q in robots.txt", want)
		}
	}
}

func TestRobotsBuilderDisallowAll(t *testing.T) {
	robots := NewRobotsBuilder(RobotsConfig{
		SiteURL:     "https://example.com",
		DisallowAll: true,
	}).Build()

	if !strings.Contains(robots, "Disallow: /\n") {
		t.Error("missing blanket disallow")
	}
	if strings.Contains(robots, "Sitemap:") {
		t.Error("staging robots.txt should not advertise a sitemap")
	}
}
