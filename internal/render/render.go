// Package render provides HTML template rendering for both the public site
// and the admin interface. Templates are embedded at compile time.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"newsdesk/internal/middleware"
	"newsdesk/internal/session"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageData holds all data passed to templates.
type PageData struct {
	Title     string         // Page title for <title> tag
	Section   string         // Active nav section (e.g., "dashboard")
	Session   *session.Data  // Current user session (nil if unauthenticated)
	CSRFToken string         // CSRF token for forms
	Data      map[string]any // Page-specific data
}

// Renderer handles template parsing and execution.
type Renderer struct {
	templates map[string]*template.Template
}

// standaloneTemplates lists templates that render as full HTML pages
// without the admin layout (they have their own <html>, <head>, etc.).
var standaloneTemplates = map[string]bool{
	"login":        true,
	"twofa_setup":  true,
	"twofa_verify": true,
	"index":        true,
	"article":      true,
}

// New creates a Renderer by parsing all templates from the embedded
// filesystem. Admin page templates are paired with the base layout.
func New() (*Renderer, error) {
	funcMap := template.FuncMap{
		// deref safely dereferences a string pointer for use in templates.
		"deref": func(s *string) string {
			if s == nil {
				return ""
			}
			return *s
		},
		// date formats a time pointer for display; empty when nil.
		"date": func(t *time.Time) string {
			if t == nil {
				return ""
			}
			return t.Format("Jan 2, 2006 15:04")
		},
		// uuidEq compares a *uuid.UUID pointer with a uuid.UUID value.
		// Returns true if the pointer is non-nil and points to the same value.
		"uuidEq": func(ptr *uuid.UUID, val uuid.UUID) bool {
			return ptr != nil && *ptr == val
		},
	}

	entries, err := templateFS.ReadDir("templates")
	if err != nil {
		return nil, fmt.Errorf("read embedded templates: %w", err)
	}

	r := &Renderer{templates: make(map[string]*template.Template)}

	for _, e := range entries {
		if e.IsDir() || e.Name() == "base.html" {
			continue
		}
		name := strings.TrimSuffix(e.Name(), ".html")

		var t *template.Template
		if standaloneTemplates[name] {
			t, err = template.New(e.Name()).Funcs(funcMap).ParseFS(templateFS, "templates/"+e.Name())
		} else {
			t, err = template.New("base.html").Funcs(funcMap).ParseFS(templateFS, "templates/base.html", "templates/"+e.Name())
		}
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", e.Name(), err)
		}
		r.templates[name] = t
	}

	return r, nil
}

// Page renders the named template with the given data. The current session
// and CSRF token are filled in from the request so every template can show
// the signed-in user and protect its forms.
func (r *Renderer) Page(w http.ResponseWriter, req *http.Request, name string, data *PageData) {
	t, ok := r.templates[name]
	if !ok {
		slog.Error("unknown template", "name", name)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if data == nil {
		data = &PageData{}
	}
	data.Session = middleware.SessionFromCtx(req.Context())
	data.CSRFToken = middleware.GetCSRFToken(req)

	// Execute into a buffer so template failures become a clean 500
	// instead of a half-written page.
	var buf bytes.Buffer
	entry := "base.html"
	if standaloneTemplates[name] {
		entry = name + ".html"
	}
	if err := t.ExecuteTemplate(&buf, entry, data); err != nil {
		slog.Error("render template failed", "name", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}
