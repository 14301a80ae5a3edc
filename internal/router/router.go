// Package router sets up all HTTP routes and middleware chains for the
// newsdesk server. It organizes routes into public and admin groups with
// appropriate middleware stacks.
package router

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"

	"newsdesk/internal/handlers"
	"newsdesk/internal/middleware"
	"newsdesk/internal/session"
	"newsdesk/web"
)

// maxRequestBytes caps admin request bodies: the upload limit plus room
// for the other multipart form fields.
const maxRequestBytes = (5 << 20) + (1 << 20)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up. uploadDir is the on-disk directory served
// under /uploads/.
func New(sessionStore *session.Store, admin *handlers.Admin, auth *handlers.Auth, public *handlers.Public, uploadDir string) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request. MethodOverride must
	// run before routing so PUT/DELETE form submissions match their routes.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.MethodOverride)
	r.Use(middleware.LoadSession(sessionStore))

	// Health check — no auth, no CSRF.
	r.Get("/health", healthHandler)

	// Admin routes — CSRF-protected; mutations additionally require an
	// authenticated admin.
	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.RequestSizeLimit(maxRequestBytes))
		r.Use(middleware.CSRF)

		// Auth pages — accessible without a session.
		r.Get("/login", auth.LoginPage)
		r.Post("/login", auth.LoginSubmit)
		r.Get("/logout", auth.Logout)

		// 2FA verification — requires a session, not yet a verified one.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireSession)
			r.Get("/2fa/verify", auth.TwoFAVerifyPage)
			r.Post("/2fa/verify", auth.TwoFAVerifySubmit)
		})

		// Content management — admin only.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin)

			r.Get("/", admin.Dashboard)
			r.Get("/new", admin.ArticleNew)
			r.Get("/edit/{id}", admin.ArticleEdit)

			r.Post("/articles", admin.ArticleCreate)
			r.Put("/articles/{id}", admin.ArticleUpdate)
			r.Delete("/articles/{id}", admin.ArticleDelete)

			r.Post("/upload", admin.Upload)

			r.Get("/2fa/setup", auth.TwoFASetupPage)
		})
	})

	// Public routes.
	r.Get("/", public.Index)
	r.Get("/article/{slug}", public.Article)

	// Static assets: embedded site assets and on-disk uploads.
	staticFS, err := fs.Sub(web.StaticFS, "public")
	if err == nil {
		r.Handle("/public/*", http.StripPrefix("/public/", http.FileServer(http.FS(staticFS))))
	}
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadDir))))

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
