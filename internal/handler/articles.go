// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"bytes"
	"database/sql"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/savannatrails/safari-go/internal/model"
	"github.com/savannatrails/safari-go/internal/render"
	"github.com/savannatrails/safari-go/internal/service"
	"github.com/savannatrails/safari-go/internal/store"
	"github.com/savannatrails/safari-go/internal/util"
)

// ArticleHandler manages Wild Tales articles in the back office.
// Authors write Markdown; it is rendered to HTML and sanitized before
// storage so the public pages serve trusted markup only.
type ArticleHandler struct {
	queries      *store.Queries
	renderer     *render.Renderer
	eventService *service.EventService
	markdown     goldmark.Markdown
	sanitizer    *bluemonday.Policy
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(db *sql.DB, renderer *render.Renderer) *ArticleHandler {
	return &ArticleHandler{
		queries:      store.New(db),
		renderer:     renderer,
		eventService: service.NewEventService(db),
		markdown: goldmark.New(
			goldmark.WithExtensions(extension.GFM, extension.Typographer),
		),
		sanitizer: bluemonday.UGCPolicy(),
	}
}

// Routes registers the article admin routes.
func (h *ArticleHandler) Routes(r chi.Router) {
	r.Get(RouteRoot, h.List)
	r.Get(RouteSuffixNew, h.NewForm)
	r.Post(RouteRoot, h.Create)
	r.Get(RouteParamID+"/edit", h.EditForm)
	r.Post(RouteParamID, h.Update)
	r.Post(RouteParamID+"/publish", h.Publish)
	r.Post(RouteParamID+"/unpublish", h.Unpublish)
	r.Post(RouteParamID+"/delete", h.Delete)
	r.Post("/categories", h.CreateCategory)
	r.Post("/categories/{id}/delete", h.DeleteCategory)
}

// articleListData holds data for the admin article listing.
type articleListData struct {
	Articles   []model.Article
	Categories []model.ArticleCategory
	Pagination AdminPagination
}

// articleFormData holds data for the article form.
type articleFormData struct {
	Article    *model.Article
	Categories []model.ArticleCategory
	Error      string
}

// List renders the admin article listing.
func (h *ArticleHandler) List(w http.ResponseWriter, r *http.Request) {
	articles, err := h.queries.ListArticles(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list articles", "error", err)
		return
	}
	categories, err := h.queries.ListArticleCategories(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list article categories", "error", err)
		return
	}

	page := pageParam(r.URL.Query())
	pagination := BuildAdminPagination(page, len(articles), adminPerPage, "/admin/articles", r.URL.Query())

	start := (pagination.CurrentPage - 1) * adminPerPage
	end := start + adminPerPage
	if end > len(articles) {
		end = len(articles)
	}

	if err := h.renderer.Render(w, r, "admin/articles", render.TemplateData{
		Title: "Wild Tales",
		Data: articleListData{
			Articles:   articles[start:end],
			Categories: categories,
			Pagination: pagination,
		},
	}); err != nil {
		logAndInternalError(w, "failed to render article list", "error", err)
	}
}

// NewForm renders an empty article form.
func (h *ArticleHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, &model.Article{Status: model.ArticleStatusDraft}, "")
}

// EditForm renders the form pre-filled from an existing article.
func (h *ArticleHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	article, err := h.queries.GetArticleByID(r.Context(), urlParamID(r))
	if err != nil {
		flashError(w, r, h.renderer, "/admin/articles", "Article not found")
		return
	}
	h.renderForm(w, r, &article, "")
}

// Create persists a new article as a draft.
func (h *ArticleHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, "/admin/articles") {
		return
	}

	article, errMsg := h.articleFromForm(r, 0)
	if errMsg != "" {
		h.renderForm(w, r, article, errMsg)
		return
	}

	created, err := h.queries.CreateArticle(r.Context(), store.CreateArticleParams{
		Title:         article.Title,
		Slug:          article.Slug,
		Excerpt:       article.Excerpt,
		Content:       article.Content,
		FeaturedImage: article.FeaturedImage,
		AuthorName:    article.AuthorName,
		Category:      article.Category,
		Tags:          article.Tags,
		ReadTime:      article.ReadTime,
		IsFeatured:    article.IsFeatured,
		Status:        model.ArticleStatusDraft,
	})
	if err != nil {
		logAndInternalError(w, "failed to create article", "error", err)
		return
	}

	_ = h.eventService.LogInfo(r.Context(), model.EventCategoryArticle,
		"Article created", 0, map[string]any{"id": created.ID, "title": created.Title})

	flashSuccess(w, r, h.renderer, "/admin/articles", "Article created")
}

// Update overwrites an existing article.
func (h *ArticleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := urlParamID(r)
	existing, err := h.queries.GetArticleByID(r.Context(), id)
	if err != nil {
		flashError(w, r, h.renderer, "/admin/articles", "Article not found")
		return
	}

	if !parseFormOrRedirect(w, r, h.renderer, "/admin/articles") {
		return
	}

	article, errMsg := h.articleFromForm(r, id)
	if errMsg != "" {
		article.ID = id
		h.renderForm(w, r, article, errMsg)
		return
	}

	updated, err := h.queries.UpdateArticle(r.Context(), store.UpdateArticleParams{
		ID:            id,
		Title:         article.Title,
		Slug:          article.Slug,
		Excerpt:       article.Excerpt,
		Content:       article.Content,
		FeaturedImage: article.FeaturedImage,
		AuthorName:    article.AuthorName,
		Category:      article.Category,
		Tags:          article.Tags,
		ReadTime:      article.ReadTime,
		IsFeatured:    article.IsFeatured,
		Status:        existing.Status,
		PublishedAt:   existing.PublishedAt,
	})
	if err != nil {
		logAndInternalError(w, "failed to update article", "error", err, "id", id)
		return
	}

	_ = h.eventService.LogInfo(r.Context(), model.EventCategoryArticle,
		"Article updated", 0, map[string]any{"id": updated.ID, "title": updated.Title})

	flashSuccess(w, r, h.renderer, "/admin/articles", "Article updated")
}

// Publish makes an article publicly visible and stamps published_at.
func (h *ArticleHandler) Publish(w http.ResponseWriter, r *http.Request) {
	id := urlParamID(r)
	if err := h.queries.PublishArticle(r.Context(), id); err != nil {
		logAndInternalError(w, "failed to publish article", "error", err, "id", id)
		return
	}
	_ = h.eventService.LogInfo(r.Context(), model.EventCategoryArticle,
		"Article published", 0, map[string]any{"id": id})
	flashSuccess(w, r, h.renderer, "/admin/articles", "Article published")
}

// Unpublish reverts an article to draft.
func (h *ArticleHandler) Unpublish(w http.ResponseWriter, r *http.Request) {
	id := urlParamID(r)
	if err := h.queries.UnpublishArticle(r.Context(), id); err != nil {
		logAndInternalError(w, "failed to unpublish article", "error", err, "id", id)
		return
	}
	flashSuccess(w, r, h.renderer, "/admin/articles", "Article unpublished")
}

// Delete removes an article.
func (h *ArticleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := urlParamID(r)
	if err := h.queries.DeleteArticle(r.Context(), id); err != nil {
		logAndInternalError(w, "failed to delete article", "error", err, "id", id)
		return
	}
	_ = h.eventService.LogInfo(r.Context(), model.EventCategoryArticle,
		"Article deleted", 0, map[string]any{"id": id})
	flashSuccess(w, r, h.renderer, "/admin/articles", "Article deleted")
}

// CreateCategory adds an article category.
func (h *ArticleHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, "/admin/articles") {
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	if name == "" {
		flashError(w, r, h.renderer, "/admin/articles", "Category name is required")
		return
	}

	if _, err := h.queries.CreateArticleCategory(r.Context(), name, util.Slugify(name)); err != nil {
		logAndInternalError(w, "failed to create article category", "error", err)
		return
	}

	flashSuccess(w, r, h.renderer, "/admin/articles", "Category created")
}

// DeleteCategory removes an article category. Existing articles keep
// their category string.
func (h *ArticleHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.queries.DeleteArticleCategory(r.Context(), urlParamID(r)); err != nil {
		logAndInternalError(w, "failed to delete article category", "error", err)
		return
	}
	flashSuccess(w, r, h.renderer, "/admin/articles", "Category deleted")
}

// articleFromForm builds an article from form input. Markdown content is
// rendered and sanitized here; read time comes from the rendered HTML.
func (h *ArticleHandler) articleFromForm(r *http.Request, excludeID int64) (*model.Article, string) {
	article := &model.Article{
		Title:         strings.TrimSpace(r.FormValue("title")),
		Excerpt:       strings.TrimSpace(r.FormValue("excerpt")),
		FeaturedImage: r.FormValue("featured_image"),
		AuthorName:    strings.TrimSpace(r.FormValue("author_name")),
		Category:      r.FormValue("category"),
		IsFeatured:    r.FormValue("is_featured") == "on",
	}

	for _, tag := range strings.Split(r.FormValue("tags"), ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			article.Tags = append(article.Tags, tag)
		}
	}

	if article.Title == "" {
		return article, "Title is required"
	}

	content := r.FormValue("content")
	if strings.TrimSpace(content) == "" {
		return article, "Content is required"
	}

	var buf bytes.Buffer
	if err := h.markdown.Convert([]byte(content), &buf); err != nil {
		return article, "Content could not be rendered"
	}
	article.Content = h.sanitizer.Sanitize(buf.String())
	article.ReadTime = util.EstimateReadTime(article.Content)

	slug := util.Slugify(article.Title)
	for n := 2; ; n++ {
		exists, err := h.queries.ArticleSlugExists(r.Context(), slug, excludeID)
		if err != nil {
			return article, "Could not verify the article slug"
		}
		if !exists {
			break
		}
		slug = fmt.Sprintf("%s-%d", util.Slugify(article.Title), n)
	}
	article.Slug = slug

	return article, ""
}

func (h *ArticleHandler) renderForm(w http.ResponseWriter, r *http.Request, article *model.Article, errMsg string) {
	categories, err := h.queries.ListArticleCategories(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list article categories", "error", err)
		return
	}

	title := "New Article"
	if article.ID != 0 {
		title = "Edit Article"
	}

	if err := h.renderer.Render(w, r, "admin/article_form", render.TemplateData{
		Title: title,
		Data: articleFormData{
			Article:    article,
			Categories: categories,
			Error:      errMsg,
		},
	}); err != nil {
		logAndInternalError(w, "failed to render article form", "error", err)
	}
}
