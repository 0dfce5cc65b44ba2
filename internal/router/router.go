// Package router sets up all HTTP routes and middleware chains for the
// LocalHub console. Each content kind gets an identical admin route group;
// public listings live under /api.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"localhub/internal/handlers"
	"localhub/internal/middleware"
	"localhub/internal/models"
)

// kindPaths maps URL path segments to content kinds. The segments match the
// identifier namespaces so admin URLs and slugs read the same.
var kindPaths = []struct {
	Path string
	Kind models.Kind
}{
	{"pages", models.KindPage},
	{"vendors", models.KindVendor},
	{"forum", models.KindForum},
	{"store", models.KindProduct},
}

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(admin *handlers.Admin, public *handlers.Public, limiter *middleware.RateLimiter) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	// Health check.
	r.Get("/health", healthHandler)

	// Admin routes — one identical group per content kind.
	r.Route("/admin", func(r chi.Router) {
		r.Use(limiter.Middleware)

		r.Get("/stats", admin.Stats())

		for _, kp := range kindPaths {
			kind := kp.Kind
			r.Route("/"+kp.Path, func(r chi.Router) {
				r.Get("/", admin.ItemsList(kind))
				r.Post("/", admin.ItemCreate(kind))

				r.Route("/categories", func(r chi.Router) {
					r.Get("/", admin.CategoriesList(kind))
					r.Post("/", admin.CategoryCreate(kind))
					r.Put("/{categoryID}", admin.CategoryUpdate(kind))
					r.Delete("/{categoryID}", admin.CategoryDelete(kind))
				})

				r.Get("/{id}", admin.ItemShow(kind))
				r.Put("/{id}", admin.ItemUpdate(kind))
				r.Delete("/{id}", admin.ItemDelete(kind))
				r.Post("/{id}/move-up", admin.ItemMoveUp(kind))
				r.Post("/{id}/move-down", admin.ItemMoveDown(kind))
				r.Post("/{id}/visibility", admin.ItemVisibility(kind))
			})
		}
	})

	// Public listings — visible items grouped by resolved category, plus
	// single-item lookup by derived identifier.
	r.Route("/api", func(r chi.Router) {
		for _, kp := range kindPaths {
			r.Get("/"+kp.Path, public.Listing(kp.Kind))
			r.Get("/"+kp.Path+"/{slug}", public.Item(kp.Kind))
		}
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
