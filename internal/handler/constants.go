// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

// Route pattern constants for chi router registration.
const (
	// RouteRoot is the root path.
	RouteRoot = "/"
	// RouteParamID is the ID parameter pattern.
	RouteParamID = "/{id}"
	// RouteParamSlug is the slug parameter pattern.
	RouteParamSlug = "/{slug}"
	// RouteSuffixNew is the suffix for "new" routes.
	RouteSuffixNew = "/new"

	// RouteTours is the public tour listing route.
	RouteTours = "/tours"
	// RouteTravelIdeas is the public travel idea listing route.
	RouteTravelIdeas = "/travel-ideas"
	// RouteDestinations is the public destinations route.
	RouteDestinations = "/destinations"
	// RouteWildTales is the public article listing route.
	RouteWildTales = "/wild-tales"
	// RouteContact is the public contact page route.
	RouteContact = "/contact"
	// RouteBooking is the public booking form route.
	RouteBooking = "/booking/{slug}"
	// RouteNewsletter is the public newsletter subscription route.
	RouteNewsletter = "/newsletter"

	// RouteLogin is the admin login route.
	RouteLogin = "/admin/login"
	// RouteLogout is the admin logout route.
	RouteLogout = "/admin/logout"

	// Admin sub-routes, mounted under /admin.
	RoutePackages    = "/packages"
	RouteIdeas       = "/travel-ideas"
	RouteArticles    = "/articles"
	RouteBookings    = "/bookings"
	RouteContacts    = "/contacts"
	RouteSubscribers = "/subscribers"
	RouteAnalytics   = "/analytics"
	RouteEvents      = "/events"

	// redirectAdmin is the post-login landing page.
	redirectAdmin = "/admin"
	// redirectLogin is where unauthenticated or failed logins land.
	redirectLogin = "/admin/login"
)

// Admin listing page size.
const adminPerPage = 20
