// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/savannatrails/safari-go/internal/model"
)

const articleColumns = `id, title, slug, excerpt, content, featured_image, author_name,
	category, tags, read_time, is_featured, status, published_at, created_at, updated_at`

func scanArticle(row interface{ Scan(...any) error }) (model.Article, error) {
	var a model.Article
	var tags string
	err := row.Scan(&a.ID, &a.Title, &a.Slug, &a.Excerpt, &a.Content, &a.FeaturedImage,
		&a.AuthorName, &a.Category, &tags, &a.ReadTime, &a.IsFeatured, &a.Status,
		&a.PublishedAt, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return model.Article{}, err
	}
	if err := unmarshalJSON(tags, &a.Tags); err != nil {
		return model.Article{}, fmt.Errorf("decoding tags: %w", err)
	}
	return a, nil
}

// CreateArticleParams holds the fields for creating an article.
type CreateArticleParams struct {
	Title         string
	Slug          string
	Excerpt       string
	Content       string
	FeaturedImage string
	AuthorName    string
	Category      string
	Tags          []string
	ReadTime      int
	IsFeatured    bool
	Status        string
	PublishedAt   sql.NullTime
}

// CreateArticle inserts a new article.
func (q *Queries) CreateArticle(ctx context.Context, arg CreateArticleParams) (model.Article, error) {
	tags, err := marshalJSON(arg.Tags)
	if err != nil {
		return model.Article{}, fmt.Errorf("encoding tags: %w", err)
	}
	now := time.Now().UTC()
	res, err := q.db.ExecContext(ctx,
		`INSERT INTO articles (title, slug, excerpt, content, featured_image, author_name,
		 category, tags, read_time, is_featured, status, published_at, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		arg.Title, arg.Slug, arg.Excerpt, arg.Content, arg.FeaturedImage, arg.AuthorName,
		arg.Category, tags, arg.ReadTime, arg.IsFeatured, arg.Status, arg.PublishedAt, now, now)
	if err != nil {
		return model.Article{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Article{}, err
	}
	return q.GetArticleByID(ctx, id)
}

// GetArticleByID fetches an article by ID.
func (q *Queries) GetArticleByID(ctx context.Context, id int64) (model.Article, error) {
	return scanArticle(q.db.QueryRowContext(ctx,
		"SELECT "+articleColumns+" FROM articles WHERE id = ?", id))
}

// GetArticleBySlug fetches an article by slug.
func (q *Queries) GetArticleBySlug(ctx context.Context, slug string) (model.Article, error) {
	return scanArticle(q.db.QueryRowContext(ctx,
		"SELECT "+articleColumns+" FROM articles WHERE slug = ?", slug))
}

// GetPublishedArticleBySlug fetches a published article by slug.
func (q *Queries) GetPublishedArticleBySlug(ctx context.Context, slug string) (model.Article, error) {
	return scanArticle(q.db.QueryRowContext(ctx,
		"SELECT "+articleColumns+" FROM articles WHERE slug = ? AND status = ?",
		slug, model.ArticleStatusPublished))
}

func (q *Queries) listArticles(ctx context.Context, query string, args ...any) ([]model.Article, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []model.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

// ListArticles returns all articles for the back office, newest first.
func (q *Queries) ListArticles(ctx context.Context) ([]model.Article, error) {
	return q.listArticles(ctx,
		"SELECT "+articleColumns+" FROM articles ORDER BY created_at DESC, id DESC")
}

// ListPublishedArticles returns published articles, most recently published first.
func (q *Queries) ListPublishedArticles(ctx context.Context) ([]model.Article, error) {
	return q.listArticles(ctx,
		"SELECT "+articleColumns+" FROM articles WHERE status = ? ORDER BY published_at DESC, id DESC",
		model.ArticleStatusPublished)
}

// ListPublishedArticlesByCategory returns published articles in a category.
func (q *Queries) ListPublishedArticlesByCategory(ctx context.Context, category string) ([]model.Article, error) {
	return q.listArticles(ctx,
		"SELECT "+articleColumns+" FROM articles WHERE status = ? AND category = ? ORDER BY published_at DESC, id DESC",
		model.ArticleStatusPublished, category)
}

// ListFeaturedArticles returns published featured articles.
func (q *Queries) ListFeaturedArticles(ctx context.Context, limit int64) ([]model.Article, error) {
	return q.listArticles(ctx,
		"SELECT "+articleColumns+" FROM articles WHERE status = ? AND is_featured = 1 ORDER BY published_at DESC LIMIT ?",
		model.ArticleStatusPublished, limit)
}

// UpdateArticleParams holds the fields for updating an article.
type UpdateArticleParams struct {
	ID            int64
	Title         string
	Slug          string
	Excerpt       string
	Content       string
	FeaturedImage string
	AuthorName    string
	Category      string
	Tags          []string
	ReadTime      int
	IsFeatured    bool
	Status        string
	PublishedAt   sql.NullTime
}

// UpdateArticle overwrites all editable fields of an article.
func (q *Queries) UpdateArticle(ctx context.Context, arg UpdateArticleParams) (model.Article, error) {
	tags, err := marshalJSON(arg.Tags)
	if err != nil {
		return model.Article{}, fmt.Errorf("encoding tags: %w", err)
	}
	_, err = q.db.ExecContext(ctx,
		`UPDATE articles SET title = ?, slug = ?, excerpt = ?, content = ?, featured_image = ?,
		 author_name = ?, category = ?, tags = ?, read_time = ?, is_featured = ?,
		 status = ?, published_at = ?, updated_at = ? WHERE id = ?`,
		arg.Title, arg.Slug, arg.Excerpt, arg.Content, arg.FeaturedImage,
		arg.AuthorName, arg.Category, tags, arg.ReadTime, arg.IsFeatured,
		arg.Status, arg.PublishedAt, time.Now().UTC(), arg.ID)
	if err != nil {
		return model.Article{}, err
	}
	return q.GetArticleByID(ctx, arg.ID)
}

// PublishArticle transitions an article to published. published_at is
// stamped on the first publish only; republishing keeps the original
// publication date and listing order.
func (q *Queries) PublishArticle(ctx context.Context, id int64) error {
	now := time.Now().UTC()
	_, err := q.db.ExecContext(ctx,
		"UPDATE articles SET status = ?, published_at = COALESCE(published_at, ?), updated_at = ? WHERE id = ?",
		model.ArticleStatusPublished, now, now, id)
	return err
}

// UnpublishArticle transitions an article back to draft.
func (q *Queries) UnpublishArticle(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx,
		"UPDATE articles SET status = ?, updated_at = ? WHERE id = ?",
		model.ArticleStatusDraft, time.Now().UTC(), id)
	return err
}

// DeleteArticle removes an article by ID.
func (q *Queries) DeleteArticle(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, "DELETE FROM articles WHERE id = ?", id)
	return err
}

// CountArticles returns the number of articles.
func (q *Queries) CountArticles(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM articles").Scan(&count)
	return count, err
}

// ArticleSlugExists reports whether a slug is already taken, excluding the
// given ID (pass 0 when creating).
func (q *Queries) ArticleSlugExists(ctx context.Context, slug string, excludeID int64) (bool, error) {
	var count int64
	err := q.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM articles WHERE slug = ? AND id != ?", slug, excludeID).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateArticleCategory inserts a new article category.
func (q *Queries) CreateArticleCategory(ctx context.Context, name, slug string) (model.ArticleCategory, error) {
	res, err := q.db.ExecContext(ctx,
		"INSERT INTO article_categories (name, slug, created_at) VALUES (?, ?, ?)",
		name, slug, time.Now().UTC())
	if err != nil {
		return model.ArticleCategory{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.ArticleCategory{}, err
	}
	var c model.ArticleCategory
	err = q.db.QueryRowContext(ctx,
		"SELECT id, name, slug, created_at FROM article_categories WHERE id = ?", id).
		Scan(&c.ID, &c.Name, &c.Slug, &c.CreatedAt)
	return c, err
}

// ListArticleCategories returns all article categories ordered by name.
func (q *Queries) ListArticleCategories(ctx context.Context) ([]model.ArticleCategory, error) {
	rows, err := q.db.QueryContext(ctx,
		"SELECT id, name, slug, created_at FROM article_categories ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []model.ArticleCategory
	for rows.Next() {
		var c model.ArticleCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// DeleteArticleCategory removes an article category by ID.
func (q *Queries) DeleteArticleCategory(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, "DELETE FROM article_categories WHERE id = ?", id)
	return err
}
