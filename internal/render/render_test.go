package render

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"newsdesk/internal/middleware"
	"newsdesk/internal/models"
	"newsdesk/internal/session"
)

func testRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r
}

func sessionRequest(target string, sess *session.Data) *http.Request {
	r := httptest.NewRequest(http.MethodGet, target, nil)
	if sess != nil {
		r = r.WithContext(context.WithValue(r.Context(), middleware.SessionKey, sess))
	}
	return r
}

func TestNewParsesAllTemplates(t *testing.T) {
	r := testRenderer(t)

	for _, name := range []string{
		"login", "twofa_setup", "twofa_verify",
		"index", "article", "dashboard", "article_form",
	} {
		if _, ok := r.templates[name]; !ok {
			t.Errorf("template %q not parsed", name)
		}
	}
}

func TestPageRendersPublicIndex(t *testing.T) {
	r := testRenderer(t)

	author := "Jane Reporter"
	now := time.Now()
	articles := []models.Article{
		{
			ID:          uuid.New(),
			Title:       "First Story",
			Slug:        "first-story",
			Body:        "body",
			Status:      models.StatusPublished,
			PublishedAt: &now,
			AuthorName:  &author,
		},
	}

	w := httptest.NewRecorder()
	r.Page(w, sessionRequest("/", nil), "index", &PageData{
		Title: "Home",
		Data:  map[string]any{"Articles": articles},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q, want text/html", ct)
	}
	body := w.Body.String()
	if !strings.Contains(body, "First Story") {
		t.Error("index does not show the article title")
	}
	if !strings.Contains(body, "/article/first-story") {
		t.Error("index does not link the article by slug")
	}
}

func TestPageRendersArticleDetail(t *testing.T) {
	r := testRenderer(t)

	now := time.Now()
	excerpt := "short teaser"
	a := &models.Article{
		ID:          uuid.New(),
		Title:       "Deep Dive",
		Slug:        "deep-dive",
		Excerpt:     &excerpt,
		Body:        "long body text",
		Status:      models.StatusPublished,
		PublishedAt: &now,
	}

	w := httptest.NewRecorder()
	r.Page(w, sessionRequest("/article/deep-dive", nil), "article", &PageData{
		Title: a.Title,
		Data:  map[string]any{"Article": a},
	})

	body := w.Body.String()
	if !strings.Contains(body, "Deep Dive") || !strings.Contains(body, "long body text") {
		t.Error("article page missing title or body")
	}
}

func TestPageRendersDashboardWithSession(t *testing.T) {
	r := testRenderer(t)

	sess := &session.Data{
		UserID: uuid.New(),
		Name:   "Admin",
		Email:  "admin@example.com",
		Role:   "admin",
	}

	w := httptest.NewRecorder()
	r.Page(w, sessionRequest("/admin", sess), "dashboard", &PageData{
		Title:   "Dashboard",
		Section: "dashboard",
		Data:    map[string]any{"Articles": []models.Article{}},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), "Admin") {
		t.Error("dashboard does not show the signed-in user")
	}
}

func TestPageFillsCSRFTokenFromCookie(t *testing.T) {
	r := testRenderer(t)

	req := sessionRequest("/admin/login", nil)
	req.AddCookie(&http.Cookie{Name: middleware.CSRFCookieName, Value: "csrf-test-token"})

	w := httptest.NewRecorder()
	r.Page(w, req, "login", nil)

	if !strings.Contains(w.Body.String(), "csrf-test-token") {
		t.Error("login form does not embed the CSRF token")
	}
}

func TestPageUnknownTemplate(t *testing.T) {
	r := testRenderer(t)

	w := httptest.NewRecorder()
	r.Page(w, sessionRequest("/", nil), "no-such-template", nil)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
}

func TestPageEscapesArticleBody(t *testing.T) {
	r := testRenderer(t)

	now := time.Now()
	a := &models.Article{
		ID:          uuid.New(),
		Title:       "XSS Check",
		Slug:        "xss-check",
		Body:        `<script>alert("pwned")</script>`,
		Status:      models.StatusPublished,
		PublishedAt: &now,
	}

	w := httptest.NewRecorder()
	r.Page(w, sessionRequest("/article/xss-check", nil), "article", &PageData{
		Data: map[string]any{"Article": a},
	})

	if strings.Contains(w.Body.String(), "<script>alert") {
		t.Error("article body rendered without HTML escaping")
	}
}
