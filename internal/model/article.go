// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"database/sql"
	"time"
)

// Article statuses
const (
	ArticleStatusDraft     = "draft"
	ArticleStatusPublished = "published"
)

// ValidArticleStatuses contains all valid article statuses.
var ValidArticleStatuses = []string{ArticleStatusDraft, ArticleStatusPublished}

// IsValidArticleStatus checks if a status is valid.
func IsValidArticleStatus(status string) bool {
	for _, s := range ValidArticleStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Article represents a Wild Tales article. Content is sanitized HTML;
// ReadTime is derived from the word count at 200 wpm and is at least 1.
type Article struct {
	ID            int64        `json:"id"`
	Title         string       `json:"title"`
	Slug          string       `json:"slug"`
	Excerpt       string       `json:"excerpt"`
	Content       string       `json:"content"`
	FeaturedImage string       `json:"featured_image"`
	AuthorName    string       `json:"author_name"`
	Category      string       `json:"category"`
	Tags          []string     `json:"tags"`
	ReadTime      int          `json:"read_time"`
	IsFeatured    bool         `json:"is_featured"`
	Status        string       `json:"status"`
	PublishedAt   sql.NullTime `json:"published_at,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// IsPublished returns true if the article is published.
func (a *Article) IsPublished() bool {
	return a.Status == ArticleStatusPublished
}

// ArticleCategory is an admin-managed category for articles.
type ArticleCategory struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}
