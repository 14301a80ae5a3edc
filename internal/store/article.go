// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"newsdesk/internal/models"
)

// ArticleStore handles all article-related database operations.
type ArticleStore struct {
	db *sql.DB
}

// NewArticleStore creates a new ArticleStore with the given database connection.
func NewArticleStore(db *sql.DB) *ArticleStore {
	return &ArticleStore{db: db}
}

const articleColumns = `a.id, a.title, a.slug, a.excerpt, a.body, a.status,
	       a.author_id, a.category_id, a.featured_image,
	       a.created_at, a.published_at, a.views`

// scanArticle scans an article row including the joined category and
// author display names.
func scanArticle(scanner interface{ Scan(...any) error }) (*models.Article, error) {
	a := &models.Article{}
	err := scanner.Scan(
		&a.ID, &a.Title, &a.Slug, &a.Excerpt, &a.Body, &a.Status,
		&a.AuthorID, &a.CategoryID, &a.FeaturedImage,
		&a.CreatedAt, &a.PublishedAt, &a.Views,
		&a.CategoryName, &a.AuthorName,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// ListPublished returns published articles ordered by publish time
// descending, with category and author names joined in for display.
// Drafts are excluded unconditionally.
func (s *ArticleStore) ListPublished() ([]models.Article, error) {
	rows, err := s.db.Query(`
		SELECT ` + articleColumns + `, c.name, u.name
		FROM articles a
		LEFT JOIN categories c ON a.category_id = c.id
		LEFT JOIN users u ON a.author_id = u.id
		WHERE a.status = 'published'
		ORDER BY a.published_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list published articles: %w", err)
	}
	defer rows.Close()

	var items []models.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		items = append(items, *a)
	}
	return items, rows.Err()
}

// ListAll returns every article regardless of status, newest first, for
// the admin dashboard.
func (s *ArticleStore) ListAll() ([]models.Article, error) {
	rows, err := s.db.Query(`
		SELECT ` + articleColumns + `, c.name, u.name
		FROM articles a
		LEFT JOIN categories c ON a.category_id = c.id
		LEFT JOIN users u ON a.author_id = u.id
		ORDER BY a.created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()

	var items []models.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		items = append(items, *a)
	}
	return items, rows.Err()
}

// FindBySlug retrieves one article by exact slug match, with category and
// author names joined in. Returns nil if not found. The lookup itself
// never mutates state; view counting is a separate call.
func (s *ArticleStore) FindBySlug(slug string) (*models.Article, error) {
	a, err := scanArticle(s.db.QueryRow(`
		SELECT `+articleColumns+`, c.name, u.name
		FROM articles a
		LEFT JOIN categories c ON a.category_id = c.id
		LEFT JOIN users u ON a.author_id = u.id
		WHERE a.slug = $1
	`, slug))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find article by slug: %w", err)
	}
	return a, nil
}

// FindByID retrieves an article by its UUID. Returns nil if not found.
func (s *ArticleStore) FindByID(id uuid.UUID) (*models.Article, error) {
	a, err := scanArticle(s.db.QueryRow(`
		SELECT `+articleColumns+`, c.name, u.name
		FROM articles a
		LEFT JOIN categories c ON a.category_id = c.id
		LEFT JOIN users u ON a.author_id = u.id
		WHERE a.id = $1
	`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find article by id: %w", err)
	}
	return a, nil
}

// stampPublishedAt enforces the publish-timestamp invariant before a write:
// published articles carry a timestamp (stamped now on the draft→published
// transition, otherwise preserved), drafts carry none.
func stampPublishedAt(a *models.Article) {
	switch a.Status {
	case models.StatusPublished:
		if a.PublishedAt == nil {
			now := time.Now()
			a.PublishedAt = &now
		}
	default:
		a.PublishedAt = nil
	}
}

// Create inserts a new article and returns it with the generated ID.
// A slug collision violates the unique constraint and surfaces as a
// generic insertion error; callers do not retry.
func (s *ArticleStore) Create(a *models.Article) (*models.Article, error) {
	stampPublishedAt(a)

	result := &models.Article{}
	err := s.db.QueryRow(`
		INSERT INTO articles (title, slug, excerpt, body, status,
		                      author_id, category_id, featured_image, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, title, slug, excerpt, body, status,
		          author_id, category_id, featured_image,
		          created_at, published_at, views
	`, a.Title, a.Slug, a.Excerpt, a.Body, a.Status,
		a.AuthorID, a.CategoryID, a.FeaturedImage, a.PublishedAt,
	).Scan(
		&result.ID, &result.Title, &result.Slug, &result.Excerpt, &result.Body,
		&result.Status, &result.AuthorID, &result.CategoryID, &result.FeaturedImage,
		&result.CreatedAt, &result.PublishedAt, &result.Views,
	)
	if err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	return result, nil
}

// Update overwrites an article's content fields. The author reference and
// creation timestamp are never touched. PublishedAt follows the same
// stamping rule as Create: an already-published article keeps its original
// publish time across edits.
func (s *ArticleStore) Update(a *models.Article) error {
	stampPublishedAt(a)

	_, err := s.db.Exec(`
		UPDATE articles SET
			title = $1, slug = $2, excerpt = $3, body = $4, status = $5,
			category_id = $6, featured_image = $7, published_at = $8
		WHERE id = $9
	`, a.Title, a.Slug, a.Excerpt, a.Body, a.Status,
		a.CategoryID, a.FeaturedImage, a.PublishedAt, a.ID,
	)
	if err != nil {
		return fmt.Errorf("update article: %w", err)
	}
	return nil
}

// Delete removes an article by ID. Hard delete; nothing references
// articles, so no cascade handling is needed.
func (s *ArticleStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	return nil
}

// IncrementViews adds one to an article's view counter. Invoked by the
// public detail path as a best-effort side effect: the read response never
// waits for it, and a failure here never fails the read.
func (s *ArticleStore) IncrementViews(id uuid.UUID) error {
	_, err := s.db.Exec(`UPDATE articles SET views = views + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("increment views: %w", err)
	}
	return nil
}
