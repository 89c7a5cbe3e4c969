package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vogue360/studio/internal/auth"
	"github.com/vogue360/studio/internal/console"
	"github.com/vogue360/studio/internal/store"
)

// Deps are the collaborators of the API handlers.
type Deps struct {
	Bookings *store.Bookings
	Catalog  *store.Catalog
	Auth     *auth.Manager
	Consoles *console.Registry
	Logger   *slog.Logger
}

// NewRouter creates the API router with all endpoints registered. Paths are
// relative to the mount point, /api.
func NewRouter(d Deps) http.Handler {
	log := d.Logger
	if log == nil {
		log = slog.Default()
	}

	authHandler := &AuthHandler{Auth: d.Auth, Consoles: d.Consoles, Logger: log}
	catalogHandler := &CatalogHandler{Catalog: d.Catalog}
	bookingsHandler := &BookingsHandler{Bookings: d.Bookings}

	r := chi.NewRouter()
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		jsonError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		jsonError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	// Public.
	r.Post("/auth/login", authHandler.Login)
	r.Get("/catalog", catalogHandler.List)
	r.Get("/catalog/{id}", catalogHandler.Get)

	// Admin.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(d.Auth))
		r.Post("/auth/logout", authHandler.Logout)
		r.Get("/bookings", bookingsHandler.List)
		r.Get("/bookings/{id}", bookingsHandler.Get)
	})

	return r
}
