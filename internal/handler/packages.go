// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"

	"github.com/savannatrails/safari-go/internal/draft"
	"github.com/savannatrails/safari-go/internal/media"
	"github.com/savannatrails/safari-go/internal/model"
	"github.com/savannatrails/safari-go/internal/render"
	"github.com/savannatrails/safari-go/internal/service"
	"github.com/savannatrails/safari-go/internal/store"
	"github.com/savannatrails/safari-go/internal/wizard"
)

// PackageHandler drives the authoring wizard and listings for one tour
// kind. The same handler serves packages and travel ideas, mounted on
// separate admin routes.
type PackageHandler struct {
	kind           string
	basePath       string
	label          string
	queries        *store.Queries
	renderer       *render.Renderer
	sessionManager *scs.SessionManager
	drafts         *draft.Store
	media          *media.Service
	catalog        *service.CatalogService
	eventService   *service.EventService
}

// NewPackageHandler creates a handler for the given tour kind.
func NewPackageHandler(db *sql.DB, renderer *render.Renderer, sm *scs.SessionManager,
	drafts *draft.Store, mediaSvc *media.Service, catalogSvc *service.CatalogService, kind string) *PackageHandler {

	basePath := "/admin/packages"
	label := "Package"
	if kind == model.KindTravelIdea {
		basePath = "/admin/travel-ideas"
		label = "Travel idea"
	}

	return &PackageHandler{
		kind:           kind,
		basePath:       basePath,
		label:          label,
		queries:        store.New(db),
		renderer:       renderer,
		sessionManager: sm,
		drafts:         drafts,
		media:          mediaSvc,
		catalog:        catalogSvc,
		eventService:   service.NewEventService(db),
	}
}

// Routes registers the handler's routes on an admin sub-router.
func (h *PackageHandler) Routes(r chi.Router) {
	r.Get(RouteRoot, h.List)
	r.Get(RouteSuffixNew, h.NewWizard)
	r.Get(RouteParamID+"/edit", h.EditWizard)
	r.Post("/wizard", h.Wizard)
	r.Post(RouteParamID+"/delete", h.Delete)
}

// packageListData holds data for the admin package listing.
type packageListData struct {
	Tours      []model.TourPackage
	Pagination AdminPagination
	BasePath   string
	Label      string
}

// List renders the admin listing for this kind.
func (h *PackageHandler) List(w http.ResponseWriter, r *http.Request) {
	tours, err := h.queries.ListTours(r.Context(), h.kind)
	if err != nil {
		logAndInternalError(w, "failed to list tours", "error", err, "kind", h.kind)
		return
	}

	page := pageParam(r.URL.Query())
	pagination := BuildAdminPagination(page, len(tours), adminPerPage, h.basePath, r.URL.Query())

	start := (pagination.CurrentPage - 1) * adminPerPage
	end := start + adminPerPage
	if end > len(tours) {
		end = len(tours)
	}

	if err := h.renderer.Render(w, r, "admin/packages", render.TemplateData{
		Title: h.label + "s",
		Data: packageListData{
			Tours:      tours[start:end],
			Pagination: pagination,
			BasePath:   h.basePath,
			Label:      h.label,
		},
	}); err != nil {
		logAndInternalError(w, "failed to render package list", "error", err)
	}
}

// NewWizard opens the authoring wizard for a new record. A draft saved
// earlier in this session is restored if present.
func (h *PackageHandler) NewWizard(w http.ResponseWriter, r *http.Request) {
	token := h.sessionManager.Token(r.Context())

	form := h.drafts.Load(r.Context(), h.kind, token)
	if form == nil {
		form = wizard.NewForm(h.kind)
	}

	h.renderWizard(w, r, form, "")
}

// EditWizard opens the wizard pre-filled from an existing record. Edit
// sessions bypass draft persistence.
func (h *PackageHandler) EditWizard(w http.ResponseWriter, r *http.Request) {
	id := urlParamID(r)
	tour, err := h.queries.GetTourByID(r.Context(), h.kind, id)
	if err != nil {
		flashError(w, r, h.renderer, h.basePath, h.label+" not found")
		return
	}

	h.renderWizard(w, r, wizard.FormFromTour(h.kind, tour), "")
}

// Wizard handles every wizard POST: step navigation, list edits, image
// uploads and final submission. The full form state round-trips through
// a hidden field, so any step can be rendered from any request.
func (h *PackageHandler) Wizard(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(media.MaxUploadSize); err != nil {
		flashError(w, r, h.renderer, h.basePath, "Invalid form data")
		return
	}

	form := h.formFromRequest(r)
	h.applyFields(form, r)

	action := r.FormValue("action")
	if action == "submit" {
		h.submit(w, r, form)
		return
	}

	errMsg := h.applyAction(form, r, action)

	// Drafts only persist create flows; edits go straight to the row
	if !form.IsEditing() {
		token := h.sessionManager.Token(r.Context())
		if err := h.drafts.Save(r.Context(), token, form); err != nil {
			slog.Warn("failed to save draft", "error", err, "kind", h.kind)
		}
	}

	h.renderWizard(w, r, form, errMsg)
}

// Delete removes a record and invalidates the cached catalog.
func (h *PackageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := urlParamID(r)
	tour, err := h.queries.GetTourByID(r.Context(), h.kind, id)
	if err != nil {
		flashError(w, r, h.renderer, h.basePath, h.label+" not found")
		return
	}

	if err := h.queries.DeleteTour(r.Context(), h.kind, id); err != nil {
		logAndInternalError(w, "failed to delete tour", "error", err, "id", id)
		return
	}

	for _, img := range tour.Images {
		h.media.DeleteUpload(img)
	}

	h.catalog.Invalidate(r.Context(), h.kind)
	_ = h.eventService.LogInfo(r.Context(), model.EventCategoryPackage,
		h.label+" deleted", 0, map[string]any{"id": id, "title": tour.Title})

	flashSuccess(w, r, h.renderer, h.basePath, h.label+" deleted")
}

// formFromRequest restores the wizard state from the hidden state field,
// falling back to a fresh form.
func (h *PackageHandler) formFromRequest(r *http.Request) *wizard.Form {
	if state := r.FormValue("state"); state != "" {
		var form wizard.Form
		if err := json.Unmarshal([]byte(state), &form); err == nil && form.Kind == h.kind {
			return &form
		}
	}
	return wizard.NewForm(h.kind)
}

// applyFields overlays posted field values onto the form. Only fields
// present in the POST are touched, so a step submits just its own inputs.
func (h *PackageHandler) applyFields(form *wizard.Form, r *http.Request) {
	set := func(key string, dst *string) {
		if v, ok := r.PostForm[key]; ok && len(v) > 0 {
			*dst = v[0]
		}
	}

	set("title", &form.Title)
	set("description", &form.Description)
	set("destination", &form.Destination)
	set("category", &form.Category)
	set("difficulty", &form.Difficulty)
	set("price", &form.Price)
	set("duration", &form.Duration)

	for i := range form.Itinerary {
		set(fmt.Sprintf("day_title_%d", i), &form.Itinerary[i].Title)
		set(fmt.Sprintf("day_description_%d", i), &form.Itinerary[i].Description)
	}
}

// applyAction mutates the form for one wizard action and returns an
// inline error message, if any.
func (h *PackageHandler) applyAction(form *wizard.Form, r *http.Request, action string) string {
	intParam := func(key string) int {
		n, _ := strconv.Atoi(r.FormValue(key))
		return n
	}

	switch action {
	case "next":
		form.Next()
	case "prev":
		form.Prev()
	case "goto":
		form.GoTo(intParam("step"))

	case "upload_images":
		if r.MultipartForm == nil {
			return "No images uploaded"
		}
		urls, err := h.media.SaveUploads(r.MultipartForm.File["images"])
		for _, url := range urls {
			form.AddImage(url)
		}
		if err != nil {
			slog.Error("image upload failed", "error", err)
			return "Some images could not be processed"
		}
	case "remove_image":
		form.RemoveImage(intParam("index"))

	case "add_included":
		form.AddIncluded(r.FormValue("new_included"))
	case "remove_included":
		form.RemoveIncluded(intParam("index"))
	case "add_excluded":
		form.AddExcluded(r.FormValue("new_excluded"))
	case "remove_excluded":
		form.RemoveExcluded(intParam("index"))

	case "add_day":
		form.AddDay()
	case "remove_day":
		form.RemoveDay(intParam("index"))
	case "add_activity":
		form.AddDayActivity(intParam("day"), r.FormValue("new_activity"))
	case "remove_activity":
		form.RemoveDayActivity(intParam("day"), intParam("index"))

	case "upload_day_image":
		if r.MultipartForm == nil {
			return "No image uploaded"
		}
		files := r.MultipartForm.File["day_image"]
		if len(files) == 0 {
			return "No image uploaded"
		}
		url, err := h.media.SaveUpload(files[0])
		if err != nil {
			slog.Error("day image upload failed", "error", err)
			return "The image could not be processed"
		}
		if !form.AddDayImage(intParam("day"), url) {
			h.media.DeleteUpload(url)
			return fmt.Sprintf("An itinerary day can hold at most %d images", model.MaxItineraryDayImages)
		}
	case "remove_day_image":
		form.RemoveDayImage(intParam("day"), intParam("index"))
	}

	return ""
}

// submit validates and persists the form. Submission is only honored
// from the final step; elsewhere it is a no-op re-render.
func (h *PackageHandler) submit(w http.ResponseWriter, r *http.Request, form *wizard.Form) {
	if !form.CanSubmit() {
		h.renderWizard(w, r, form, "")
		return
	}

	rec, verr := form.Validate()
	if verr != nil {
		if verr.ForceStep {
			form.GoTo(verr.Step)
		}
		h.renderWizard(w, r, form, verr.Message)
		return
	}

	slug, err := h.uniqueSlug(r, rec.Slug, form.EditingID)
	if err != nil {
		logAndInternalError(w, "failed to check slug", "error", err)
		return
	}

	if form.IsEditing() {
		tour, err := h.queries.UpdateTour(r.Context(), h.kind, store.UpdateTourParams{
			ID:           form.EditingID,
			Title:        rec.Title,
			Slug:         slug,
			Description:  rec.Description,
			Price:        rec.Price,
			DurationDays: rec.DurationDays,
			Destination:  rec.Destination,
			Category:     rec.Category,
			Difficulty:   rec.Difficulty,
			Images:       rec.Images,
			Included:     rec.Included,
			Excluded:     rec.Excluded,
			Itinerary:    rec.Itinerary,
		})
		if err != nil {
			logAndInternalError(w, "failed to update tour", "error", err, "id", form.EditingID)
			return
		}

		h.catalog.Invalidate(r.Context(), h.kind)
		_ = h.eventService.LogInfo(r.Context(), model.EventCategoryPackage,
			h.label+" updated", 0, map[string]any{"id": tour.ID, "title": tour.Title})

		flashSuccess(w, r, h.renderer, h.basePath, h.label+" updated")
		return
	}

	tour, err := h.queries.CreateTour(r.Context(), h.kind, store.CreateTourParams{
		Title:        rec.Title,
		Slug:         slug,
		Description:  rec.Description,
		Price:        rec.Price,
		DurationDays: rec.DurationDays,
		Destination:  rec.Destination,
		Category:     rec.Category,
		Difficulty:   rec.Difficulty,
		Images:       rec.Images,
		Included:     rec.Included,
		Excluded:     rec.Excluded,
		Itinerary:    rec.Itinerary,
	})
	if err != nil {
		logAndInternalError(w, "failed to create tour", "error", err)
		return
	}

	h.catalog.Invalidate(r.Context(), h.kind)

	// A successful creation retires the session draft
	token := h.sessionManager.Token(r.Context())
	if err := h.drafts.Clear(r.Context(), h.kind, token); err != nil {
		slog.Warn("failed to clear draft", "error", err, "kind", h.kind)
	}

	_ = h.eventService.LogInfo(r.Context(), model.EventCategoryPackage,
		h.label+" created", 0, map[string]any{"id": tour.ID, "title": tour.Title})

	flashSuccess(w, r, h.renderer, h.basePath, h.label+" created")
}

// uniqueSlug appends a numeric suffix until the slug is free for this kind.
func (h *PackageHandler) uniqueSlug(r *http.Request, base string, excludeID int64) (string, error) {
	slug := base
	for n := 2; ; n++ {
		exists, err := h.queries.TourSlugExists(r.Context(), h.kind, slug, excludeID)
		if err != nil {
			return "", err
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, n)
	}
}

// wizardData holds everything the wizard template needs.
type wizardData struct {
	Form         *wizard.Form
	StateJSON    string
	StepNames    map[int]string
	Destinations []string
	Categories   []string
	Difficulties []string
	Error        string
	BasePath     string
	Label        string
}

func (h *PackageHandler) renderWizard(w http.ResponseWriter, r *http.Request, form *wizard.Form, errMsg string) {
	state, err := json.Marshal(form)
	if err != nil {
		logAndInternalError(w, "failed to marshal wizard state", "error", err)
		return
	}

	title := "New " + h.label
	if form.IsEditing() {
		title = "Edit " + h.label
	}

	if err := h.renderer.Render(w, r, "admin/package_wizard", render.TemplateData{
		Title: title,
		Data: wizardData{
			Form:         form,
			StateJSON:    string(state),
			StepNames:    wizard.StepNames,
			Destinations: model.Destinations(),
			Categories:   model.PackageCategories(),
			Difficulties: model.Difficulties(),
			Error:        errMsg,
			BasePath:     h.basePath,
			Label:        h.label,
		},
	}); err != nil {
		logAndInternalError(w, "failed to render wizard", "error", err)
	}
}
