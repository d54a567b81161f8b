// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildAdminPagination(t *testing.T) {
	p := BuildAdminPagination(2, 95, 20, "/admin/bookings", nil)

	assert.Equal(t, 2, p.CurrentPage)
	assert.Equal(t, 5, p.TotalPages)
	assert.True(t, p.HasPrev)
	assert.True(t, p.HasNext)
	assert.Equal(t, 1, p.PrevPage)
	assert.Equal(t, 3, p.NextPage)
}

func TestBuildAdminPaginationClampsPage(t *testing.T) {
	p := BuildAdminPagination(99, 30, 20, "/admin/bookings", nil)
	assert.Equal(t, 2, p.CurrentPage)

	p = BuildAdminPagination(0, 30, 20, "/admin/bookings", nil)
	assert.Equal(t, 1, p.CurrentPage)
}

func TestBuildAdminPaginationEmptyList(t *testing.T) {
	p := BuildAdminPagination(1, 0, 20, "/admin/bookings", nil)

	assert.Equal(t, 1, p.TotalPages)
	assert.False(t, p.HasPrev)
	assert.False(t, p.HasNext)
}

func TestBuildAdminPaginationPreservesFilters(t *testing.T) {
	params := url.Values{"status": {"new"}, "page": {"3"}}
	p := BuildAdminPagination(3, 100, 20, "/admin/bookings", params)

	assert.Equal(t, "status=new", p.QueryString)
	for _, page := range p.Pages {
		if !page.IsEllipsis {
			assert.Contains(t, page.URL, "status=new")
			assert.Contains(t, page.URL, "page=")
		}
	}
}

func TestBuildAdminPaginationEllipsis(t *testing.T) {
	p := BuildAdminPagination(10, 400, 20, "/admin/events", nil)

	var ellipses int
	for _, page := range p.Pages {
		if page.IsEllipsis {
			ellipses++
		}
	}
	assert.Equal(t, 2, ellipses)
	assert.Equal(t, 1, p.Pages[0].Number)
	assert.Equal(t, 20, p.Pages[len(p.Pages)-1].Number)
}

func TestPageParam(t *testing.T) {
	assert.Equal(t, 1, pageParam(url.Values{}))
	assert.Equal(t, 4, pageParam(url.Values{"page": {"4"}}))
	assert.Equal(t, 1, pageParam(url.Values{"page": {"abc"}}))
	assert.Equal(t, 1, pageParam(url.Values{"page": {"-2"}}))
}
