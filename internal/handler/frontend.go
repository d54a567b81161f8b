// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"net/http"
	"net/mail"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/savannatrails/safari-go/internal/catalog"
	"github.com/savannatrails/safari-go/internal/model"
	"github.com/savannatrails/safari-go/internal/render"
	"github.com/savannatrails/safari-go/internal/seo"
	"github.com/savannatrails/safari-go/internal/service"
	"github.com/savannatrails/safari-go/internal/store"
	"github.com/savannatrails/safari-go/internal/util"
)

// FrontendHandler serves the public marketing site.
type FrontendHandler struct {
	queries      *store.Queries
	renderer     *render.Renderer
	catalog      *service.CatalogService
	eventService *service.EventService
	siteURL      string
	isDev        bool
}

// NewFrontendHandler creates a new FrontendHandler.
func NewFrontendHandler(db *sql.DB, renderer *render.Renderer, catalogSvc *service.CatalogService, siteURL string, isDev bool) *FrontendHandler {
	return &FrontendHandler{
		queries:      store.New(db),
		renderer:     renderer,
		catalog:      catalogSvc,
		eventService: service.NewEventService(db),
		siteURL:      strings.TrimSuffix(siteURL, "/"),
		isDev:        isDev,
	}
}

// homeData holds data for the landing page.
type homeData struct {
	FeaturedPackages []model.TourPackage
	FeaturedArticles []model.Article
	Destinations     []string
}

// Home renders the landing page with the newest packages and featured
// articles.
func (h *FrontendHandler) Home(w http.ResponseWriter, r *http.Request) {
	packages, err := h.catalog.ListTours(r.Context(), model.KindPackage)
	if err != nil {
		logAndInternalError(w, "failed to load packages", "error", err)
		return
	}
	if len(packages) > 6 {
		packages = packages[:6]
	}

	articles, err := h.queries.ListFeaturedArticles(r.Context(), 3)
	if err != nil {
		logAndInternalError(w, "failed to load featured articles", "error", err)
		return
	}

	if err := h.renderer.Render(w, r, "frontend/home", render.TemplateData{
		Title: "Savanna Trails",
		Data: homeData{
			FeaturedPackages: packages,
			FeaturedArticles: articles,
			Destinations:     model.Destinations(),
		},
	}); err != nil {
		logAndInternalError(w, "failed to render home", "error", err)
	}
}

// tourListData holds data for catalog listing pages.
type tourListData struct {
	Tours        []model.TourPackage
	Filter       catalog.Filter
	Sort         string
	SortOptions  []string
	Destinations []string
	Categories   []string
	Difficulties []string
	BasePath     string
	Heading      string
}

// Tours renders the filterable package catalog.
func (h *FrontendHandler) Tours(w http.ResponseWriter, r *http.Request) {
	h.tourList(w, r, model.KindPackage, RouteTours, "Safari Tours")
}

// TravelIdeas renders the filterable travel idea catalog.
func (h *FrontendHandler) TravelIdeas(w http.ResponseWriter, r *http.Request) {
	h.tourList(w, r, model.KindTravelIdea, RouteTravelIdeas, "Travel Ideas")
}

func (h *FrontendHandler) tourList(w http.ResponseWriter, r *http.Request, kind, basePath, heading string) {
	tours, err := h.catalog.ListTours(r.Context(), kind)
	if err != nil {
		logAndInternalError(w, "failed to load tours", "error", err, "kind", kind)
		return
	}

	filter := parseFilter(r.URL.Query())
	filtered := filter.Apply(tours)

	sortOrder := r.URL.Query().Get("sort")
	catalog.Sort(filtered, sortOrder)

	if err := h.renderer.Render(w, r, "frontend/tours", render.TemplateData{
		Title: heading,
		Data: tourListData{
			Tours:        filtered,
			Filter:       filter,
			Sort:         sortOrder,
			SortOptions:  catalog.SortOptions(),
			Destinations: model.Destinations(),
			Categories:   model.PackageCategories(),
			Difficulties: model.Difficulties(),
			BasePath:     basePath,
			Heading:      heading,
		},
	}); err != nil {
		logAndInternalError(w, "failed to render tour list", "error", err)
	}
}

// tourDetailData holds data for a tour detail page.
type tourDetailData struct {
	Tour     model.TourPackage
	Related  []model.TourPackage
	BasePath string
}

// TourDetail renders a single package page.
func (h *FrontendHandler) TourDetail(w http.ResponseWriter, r *http.Request) {
	h.tourDetail(w, r, model.KindPackage, RouteTours)
}

// TravelIdeaDetail renders a single travel idea page.
func (h *FrontendHandler) TravelIdeaDetail(w http.ResponseWriter, r *http.Request) {
	h.tourDetail(w, r, model.KindTravelIdea, RouteTravelIdeas)
}

func (h *FrontendHandler) tourDetail(w http.ResponseWriter, r *http.Request, kind, basePath string) {
	slug := chi.URLParam(r, "slug")
	tour, err := h.queries.GetTourBySlug(r.Context(), kind, slug)
	if err != nil {
		h.NotFound(w, r)
		return
	}

	// Related tours share the destination
	all, err := h.catalog.ListTours(r.Context(), kind)
	if err != nil {
		logAndInternalError(w, "failed to load tours", "error", err, "kind", kind)
		return
	}
	var related []model.TourPackage
	for _, t := range all {
		if t.ID != tour.ID && t.Destination == tour.Destination {
			related = append(related, t)
			if len(related) == 3 {
				break
			}
		}
	}

	if err := h.renderer.Render(w, r, "frontend/tour_detail", render.TemplateData{
		Title: tour.Title,
		Data: tourDetailData{
			Tour:     tour,
			Related:  related,
			BasePath: basePath,
		},
	}); err != nil {
		logAndInternalError(w, "failed to render tour detail", "error", err)
	}
}

// destinationInfo pairs a destination with its package count.
type destinationInfo struct {
	Name  string
	Slug  string
	Count int
}

// Destinations renders the destination overview.
func (h *FrontendHandler) Destinations(w http.ResponseWriter, r *http.Request) {
	tours, err := h.catalog.ListTours(r.Context(), model.KindPackage)
	if err != nil {
		logAndInternalError(w, "failed to load packages", "error", err)
		return
	}

	counts := make(map[string]int)
	for _, t := range tours {
		counts[t.Destination]++
	}

	var infos []destinationInfo
	for _, d := range model.Destinations() {
		infos = append(infos, destinationInfo{
			Name:  d,
			Slug:  util.Slugify(d),
			Count: counts[d],
		})
	}

	if err := h.renderer.Render(w, r, "frontend/destinations", render.TemplateData{
		Title: "Destinations",
		Data:  infos,
	}); err != nil {
		logAndInternalError(w, "failed to render destinations", "error", err)
	}
}

// destinationDetailData holds data for a single destination page.
type destinationDetailData struct {
	Destination string
	Tours       []model.TourPackage
}

// DestinationDetail renders the packages available for one destination.
func (h *FrontendHandler) DestinationDetail(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	var name string
	for _, d := range model.Destinations() {
		if util.Slugify(d) == slug {
			name = d
			break
		}
	}
	if name == "" {
		h.NotFound(w, r)
		return
	}

	tours, err := h.catalog.ListTours(r.Context(), model.KindPackage)
	if err != nil {
		logAndInternalError(w, "failed to load packages", "error", err)
		return
	}
	filtered := catalog.Filter{Destinations: []string{name}}.Apply(tours)

	if err := h.renderer.Render(w, r, "frontend/destination_detail", render.TemplateData{
		Title: name,
		Data: destinationDetailData{
			Destination: name,
			Tours:       filtered,
		},
	}); err != nil {
		logAndInternalError(w, "failed to render destination", "error", err)
	}
}

// articleListPublicData holds data for the public article listing.
type articleListPublicData struct {
	Articles   []model.Article
	Categories []model.ArticleCategory
	Category   string
}

// WildTales renders the public article listing, optionally filtered by
// category.
func (h *FrontendHandler) WildTales(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	var articles []model.Article
	var err error
	if category != "" {
		articles, err = h.queries.ListPublishedArticlesByCategory(r.Context(), category)
	} else {
		articles, err = h.queries.ListPublishedArticles(r.Context())
	}
	if err != nil {
		logAndInternalError(w, "failed to list articles", "error", err)
		return
	}

	categories, err := h.queries.ListArticleCategories(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list article categories", "error", err)
		return
	}

	if err := h.renderer.Render(w, r, "frontend/wild_tales", render.TemplateData{
		Title: "Wild Tales",
		Data: articleListPublicData{
			Articles:   articles,
			Categories: categories,
			Category:   category,
		},
	}); err != nil {
		logAndInternalError(w, "failed to render article list", "error", err)
	}
}

// WildTaleDetail renders a published article. Drafts are invisible here.
func (h *FrontendHandler) WildTaleDetail(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	article, err := h.queries.GetPublishedArticleBySlug(r.Context(), slug)
	if err != nil {
		h.NotFound(w, r)
		return
	}

	if err := h.renderer.Render(w, r, "frontend/wild_tale_detail", render.TemplateData{
		Title: article.Title,
		Data:  article,
	}); err != nil {
		logAndInternalError(w, "failed to render article", "error", err)
	}
}

// ContactForm renders the public contact page.
func (h *FrontendHandler) ContactForm(w http.ResponseWriter, r *http.Request) {
	if err := h.renderer.Render(w, r, "frontend/contact", render.TemplateData{
		Title: "Contact Us",
	}); err != nil {
		logAndInternalError(w, "failed to render contact page", "error", err)
	}
}

// ContactSubmit captures a contact message.
func (h *FrontendHandler) ContactSubmit(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, RouteContact) {
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	email := strings.TrimSpace(r.FormValue("email"))
	message := strings.TrimSpace(r.FormValue("message"))

	if name == "" || message == "" {
		flashError(w, r, h.renderer, RouteContact, "Name and message are required")
		return
	}
	if _, err := mail.ParseAddress(email); err != nil {
		flashError(w, r, h.renderer, RouteContact, "Please enter a valid email address")
		return
	}

	contact, err := h.queries.CreateContact(r.Context(), store.CreateContactParams{
		Name:    name,
		Email:   email,
		Subject: strings.TrimSpace(r.FormValue("subject")),
		Message: message,
	})
	if err != nil {
		logAndInternalError(w, "failed to save contact message", "error", err)
		return
	}

	_ = h.eventService.LogInfo(r.Context(), model.EventCategoryContact,
		"Contact message received", 0, map[string]any{"id": contact.ID})

	flashSuccess(w, r, h.renderer, RouteContact, "Thanks! We will get back to you within two business days.")
}

// bookingFormData holds data for the booking page.
type bookingFormData struct {
	Tour           model.TourPackage
	Destinations   []string
	Budgets        []string
	Accommodations []string
}

// BookingForm renders the booking form for a package.
func (h *FrontendHandler) BookingForm(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	tour, err := h.queries.GetTourBySlug(r.Context(), model.KindPackage, slug)
	if err != nil {
		h.NotFound(w, r)
		return
	}

	if err := h.renderer.Render(w, r, "frontend/booking", render.TemplateData{
		Title: "Book " + tour.Title,
		Data: bookingFormData{
			Tour:           tour,
			Destinations:   model.Destinations(),
			Budgets:        model.BudgetBands(),
			Accommodations: model.AccommodationPreferences(),
		},
	}); err != nil {
		logAndInternalError(w, "failed to render booking form", "error", err)
	}
}

// BookingSubmit captures a booking request for a package.
func (h *FrontendHandler) BookingSubmit(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	formURL := "/booking/" + slug

	tour, err := h.queries.GetTourBySlug(r.Context(), model.KindPackage, slug)
	if err != nil {
		h.NotFound(w, r)
		return
	}

	if !parseFormOrRedirect(w, r, h.renderer, formURL) {
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	email := strings.TrimSpace(r.FormValue("email"))
	if name == "" {
		flashError(w, r, h.renderer, formURL, "Name is required")
		return
	}
	if _, err := mail.ParseAddress(email); err != nil {
		flashError(w, r, h.renderer, formURL, "Please enter a valid email address")
		return
	}

	adults, _ := strconv.Atoi(r.FormValue("adults"))
	if adults < 1 {
		adults = 1
	}
	children, _ := strconv.Atoi(r.FormValue("children"))
	if children < 0 {
		children = 0
	}

	booking, err := h.queries.CreateBooking(r.Context(), store.CreateBookingParams{
		Name:          name,
		Email:         email,
		Phone:         strings.TrimSpace(r.FormValue("phone")),
		Destination:   tour.Destination,
		PackageSlug:   tour.Slug,
		StartDate:     r.FormValue("start_date"),
		EndDate:       r.FormValue("end_date"),
		Adults:        adults,
		Children:      children,
		Budget:        r.FormValue("budget"),
		Accommodation: r.FormValue("accommodation"),
		Message:       strings.TrimSpace(r.FormValue("message")),
	})
	if err != nil {
		logAndInternalError(w, "failed to save booking request", "error", err)
		return
	}

	_ = h.eventService.LogInfo(r.Context(), model.EventCategoryBooking,
		"Booking request received", 0,
		map[string]any{"id": booking.ID, "package": tour.Slug})

	flashSuccess(w, r, h.renderer, "/tours/"+tour.Slug,
		"Your request is in! Our safari specialists will reach out shortly.")
}

// NotFound renders the 404 page.
func (h *FrontendHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	if err := h.renderer.Render(w, r, "frontend/not_found", render.TemplateData{
		Title: "Page Not Found",
	}); err != nil {
		http.Error(w, "Not Found", http.StatusNotFound)
	}
}

// parseFilter builds a catalog filter from listing query parameters.
// Empty multi-selects mean "match everything"; range bounds are
// inclusive.
func parseFilter(q url.Values) catalog.Filter {
	f := catalog.Filter{
		Categories:   nonEmpty(q["category"]),
		Destinations: nonEmpty(q["destination"]),
		Difficulties: nonEmpty(q["difficulty"]),
	}

	if v := q.Get("price_min"); v != "" {
		f.PriceMin, _ = strconv.ParseFloat(v, 64)
	}
	if v := q.Get("price_max"); v != "" {
		if max, err := strconv.ParseFloat(v, 64); err == nil {
			f.PriceMax = max
			f.PriceMaxSet = true
		}
	}
	if v := q.Get("duration_min"); v != "" {
		f.DurationMin, _ = strconv.Atoi(v)
	}
	if v := q.Get("duration_max"); v != "" {
		if max, err := strconv.Atoi(v); err == nil {
			f.DurationMax = max
			f.DurationMaxSet = true
		}
	}

	return f
}

func nonEmpty(values []string) []string {
	var out []string
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Sitemap serves sitemap.xml covering the catalog, destinations and
// published articles.
func (h *FrontendHandler) Sitemap(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	builder := seo.NewSitemapBuilder(h.siteURL)
	builder.AddHomepage()
	for _, section := range []string{RouteTours, RouteTravelIdeas, RouteDestinations, RouteWildTales, RouteContact} {
		builder.AddSection(section)
	}

	tours, err := h.catalog.ListTours(ctx, model.KindPackage)
	if err != nil {
		logAndInternalError(w, "failed to load packages for sitemap", "error", err)
		return
	}
	for _, t := range tours {
		builder.AddEntry(seo.SitemapEntry{Path: RouteTours + "/" + t.Slug, UpdatedAt: t.UpdatedAt})
	}

	ideas, err := h.catalog.ListTours(ctx, model.KindTravelIdea)
	if err != nil {
		logAndInternalError(w, "failed to load travel ideas for sitemap", "error", err)
		return
	}
	for _, t := range ideas {
		builder.AddEntry(seo.SitemapEntry{Path: RouteTravelIdeas + "/" + t.Slug, UpdatedAt: t.UpdatedAt})
	}

	for _, name := range model.Destinations() {
		builder.AddEntry(seo.SitemapEntry{Path: RouteDestinations + "/" + util.Slugify(name)})
	}

	articles, err := h.queries.ListPublishedArticles(ctx)
	if err != nil {
		logAndInternalError(w, "failed to load articles for sitemap", "error", err)
		return
	}
	for _, a := range articles {
		builder.AddEntry(seo.SitemapEntry{Path: RouteWildTales + "/" + a.Slug, UpdatedAt: a.UpdatedAt})
	}

	out, err := builder.Build()
	if err != nil {
		logAndInternalError(w, "failed to build sitemap", "error", err)
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = w.Write(out)
}

// Robots serves robots.txt. Development instances block all crawlers.
func (h *FrontendHandler) Robots(w http.ResponseWriter, r *http.Request) {
	robots := seo.NewRobotsBuilder(seo.RobotsConfig{
		SiteURL:     h.siteURL,
		DisallowAll: h.isDev,
	}).Build()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(robots))
}
