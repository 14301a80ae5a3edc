// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"newsdesk/internal/render"
	"newsdesk/internal/store"
)

// Public groups handlers for the public-facing site: the article index
// and the article detail page.
type Public struct {
	renderer *render.Renderer
	articles *store.ArticleStore
}

// NewPublic creates a new Public handler group.
func NewPublic(renderer *render.Renderer, articles *store.ArticleStore) *Public {
	return &Public{
		renderer: renderer,
		articles: articles,
	}
}

// Index renders the public homepage: published articles, newest first.
func (p *Public) Index(w http.ResponseWriter, r *http.Request) {
	articles, err := p.articles.ListPublished()
	if err != nil {
		slog.Error("list published articles failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	p.renderer.Page(w, r, "index", &render.PageData{
		Title: "Newsdesk",
		Data:  map[string]any{"Articles": articles},
	})
}

// Article renders a single article looked up by slug. Each successful
// read bumps the view counter, but the increment is fired on a detached
// goroutine: the response neither waits for it nor fails with it.
func (p *Public) Article(w http.ResponseWriter, r *http.Request) {
	slugParam := chi.URLParam(r, "slug")

	article, err := p.articles.FindBySlug(slugParam)
	if err != nil {
		slog.Error("find article by slug failed", "error", err, "slug", slugParam)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if article == nil {
		http.NotFound(w, r)
		return
	}

	// Best-effort view count, decoupled from the response path.
	go func() {
		if err := p.articles.IncrementViews(article.ID); err != nil {
			slog.Warn("view increment failed", "error", err, "article_id", article.ID)
		}
	}()

	p.renderer.Page(w, r, "article", &render.PageData{
		Title: article.Title,
		Data:  map[string]any{"Article": article},
	})
}
