// handler_test.go provides the shared environment for handler integration
// tests: a migrated PostgreSQL database, a Redis-backed session store, the
// embedded template renderer, and an upload directory on temp disk. Tests
// are skipped when PostgreSQL or Redis is unavailable.
package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"

	"newsdesk/internal/database"
	"newsdesk/internal/middleware"
	"newsdesk/internal/models"
	"newsdesk/internal/render"
	"newsdesk/internal/session"
	"newsdesk/internal/store"
	"newsdesk/internal/upload"
)

type testEnv struct {
	db         *sql.DB
	sessions   *session.Store
	users      *store.UserStore
	articles   *store.ArticleStore
	categories *store.CategoryStore
	admin      *Admin
	auth       *Auth
	public     *Public
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func testDSN() string {
	user := envOr("POSTGRES_USER", "newsdesk")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	name := envOr("POSTGRES_DB", "newsdesk")
	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"
}

// newTestEnv wires up the full handler stack against real backing
// services, skipping the test when either is unreachable.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := sql.Open("pgx", testDSN())
	if err != nil {
		t.Skipf("skipping integration test: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}
	goose.SetBaseFS(nil)
	t.Cleanup(func() { db.Close() })

	redisClient := redis.NewClient(&redis.Options{
		Addr:     envOr("REDIS_HOST", "localhost") + ":" + envOr("REDIS_PORT", "6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		t.Skipf("skipping integration test: Redis not reachable: %v", err)
	}
	t.Cleanup(func() { redisClient.Close() })

	renderer, err := render.New()
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}
	saver, err := upload.NewSaver(t.TempDir())
	if err != nil {
		t.Fatalf("upload.NewSaver: %v", err)
	}

	sessions := session.NewStore(redisClient, false)
	users := store.NewUserStore(db)
	articles := store.NewArticleStore(db)
	categories := store.NewCategoryStore(db)

	return &testEnv{
		db:         db,
		sessions:   sessions,
		users:      users,
		articles:   articles,
		categories: categories,
		admin:      NewAdmin(renderer, articles, categories, saver),
		auth:       NewAuth(renderer, sessions, users),
		public:     NewPublic(renderer, articles),
	}
}

// createAdmin inserts an admin user and registers cleanup for it.
func (e *testEnv) createAdmin(t *testing.T, email string) *models.User {
	t.Helper()
	u, err := e.users.Create("Handler Test Admin", email, "handler-pass", models.RoleAdmin)
	if err != nil {
		t.Fatalf("create admin: %v", err)
	}
	t.Cleanup(func() { e.db.Exec("DELETE FROM users WHERE email = $1", email) })
	return u
}

// cleanupArticle registers a slug for removal when the test ends.
func (e *testEnv) cleanupArticle(t *testing.T, slugs ...string) {
	t.Helper()
	t.Cleanup(func() {
		for _, s := range slugs {
			e.db.Exec("DELETE FROM articles WHERE slug = $1", s)
		}
	})
}

// withSession attaches session data to a request context, the way
// LoadSession does in production.
func withSession(r *http.Request, u *models.User) *http.Request {
	data := &session.Data{
		UserID:    u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		TwoFADone: true,
	}
	return r.WithContext(context.WithValue(r.Context(), middleware.SessionKey, data))
}

// withChiParam injects a URL parameter as the chi router would.
func withChiParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// formRequest builds an urlencoded POST the way an HTML form submits.
func formRequest(target string, form url.Values) *http.Request {
	r, _ := http.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

// uniqueSlugSuffix distinguishes test articles across parallel runs.
func uniqueSlugSuffix() string {
	return uuid.NewString()[:8]
}
