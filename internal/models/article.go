// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// ArticleStatus represents the visibility state of an article.
type ArticleStatus string

const (
	StatusDraft     ArticleStatus = "draft"
	StatusPublished ArticleStatus = "published"
)

// Article is the central entity of the site: a titled piece of content
// identified publicly by its unique slug. The author reference is fixed
// at creation and never changed by updates.
type Article struct {
	ID            uuid.UUID     `json:"id"`
	Title         string        `json:"title"`
	Slug          string        `json:"slug"`
	Excerpt       *string       `json:"excerpt,omitempty"`
	Body          string        `json:"body"`
	Status        ArticleStatus `json:"status"`
	AuthorID      uuid.UUID     `json:"author_id"`
	CategoryID    *uuid.UUID    `json:"category_id,omitempty"`
	FeaturedImage *string       `json:"featured_image,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	PublishedAt   *time.Time    `json:"published_at,omitempty"`
	Views         int64         `json:"views"`

	// Display fields joined in by list/detail queries. Not columns of the
	// articles table and not written back on save.
	CategoryName *string `json:"category,omitempty"`
	AuthorName   *string `json:"author,omitempty"`
}

// IsPublished returns true if the article is in published status.
func (a *Article) IsPublished() bool {
	return a.Status == StatusPublished
}
