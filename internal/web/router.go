package web

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/vogue360/studio/internal/auth"
	"github.com/vogue360/studio/internal/clock"
	"github.com/vogue360/studio/internal/console"
	"github.com/vogue360/studio/internal/imaging"
	"github.com/vogue360/studio/internal/metrics"
	"github.com/vogue360/studio/internal/store"
	webembed "github.com/vogue360/studio/web"
)

// Deps are the collaborators of the page handlers.
type Deps struct {
	Bookings *store.Bookings
	Catalog  *store.Catalog
	Images   *store.Images
	Auth     *auth.Manager
	Consoles *console.Registry
	Metrics  *metrics.Metrics
	Imaging  imaging.Processor

	// BookingDelay is the simulated latency of a public booking request.
	BookingDelay time.Duration
	// UploadLimit caps the size of a catalog form with an image, in bytes.
	UploadLimit int64
	Now         clock.Func
	Logger      *slog.Logger
}

// Server holds all dependencies for page handlers.
type Server struct {
	Deps
	Templates *Templates
}

// NewRouter creates the page router with all page routes registered.
func NewRouter(d Deps) (chi.Router, error) {
	switch {
	case d.Bookings == nil || d.Catalog == nil || d.Images == nil:
		return nil, errors.New("web: stores are required")
	case d.Auth == nil || d.Consoles == nil:
		return nil, errors.New("web: auth manager and console registry are required")
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	if d.UploadLimit <= 0 {
		d.UploadLimit = 5 << 20
	}

	templates, err := LoadTemplates()
	if err != nil {
		return nil, err
	}
	s := &Server{Deps: d, Templates: templates}

	r := chi.NewRouter()
	r.NotFound(s.NotFound)

	// Static assets.
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(webembed.StaticFS()))))
	r.Get("/images/{key}", s.Image)
	r.Get("/placeholder.jpg", s.Placeholder)

	// Public pages.
	r.Get("/", s.Home)
	r.Get("/gallery", s.Gallery)
	r.Get("/booking", s.BookingPage)
	r.Post("/booking", s.BookingSubmit)

	// Admin login.
	r.Get("/admin", s.LoginPage)
	r.Post("/admin/login", s.LoginSubmit)

	// Authenticated admin pages.
	r.Group(func(r chi.Router) {
		r.Use(s.requireSession)
		r.Post("/admin/logout", s.Logout)

		r.Route("/admin/dashboard", func(r chi.Router) {
			r.Get("/", s.Dashboard)

			r.Route("/bookings", func(r chi.Router) {
				r.Get("/", s.BookingsPage)
				r.Post("/new", s.BookingNew)
				r.Post("/close", s.BookingClose)
				r.Post("/editor", s.BookingEditorSubmit)
				r.Post("/editor/cancel", s.BookingEditorCancel)
				r.Post("/notification/dismiss", s.BookingDismiss)
				r.Get("/{id}", s.BookingSelect)
				r.Post("/{id}/status", s.BookingStatusSubmit)
				r.Post("/{id}/edit", s.BookingEdit)
				r.Post("/{id}/delete", s.BookingDelete)
			})

			r.Route("/gallery", func(r chi.Router) {
				r.Get("/", s.CatalogPage)
				r.Post("/new", s.CatalogNew)
				r.Post("/editor", s.CatalogEditorSubmit)
				r.Post("/editor/cancel", s.CatalogEditorCancel)
				r.Post("/notification/dismiss", s.CatalogDismiss)
				r.Post("/{id}/edit", s.CatalogEdit)
				r.Post("/{id}/delete", s.CatalogDelete)
			})
		})
	})

	return r, nil
}

// consoleFor returns the screen state of the request's admin session.
func (s *Server) consoleFor(r *http.Request) *console.Console {
	return s.Consoles.Open(auth.FromContext(r.Context()).ID)
}

// adminPage returns the base data of an admin page.
func adminPage(r *http.Request, title, active string) PageData {
	return PageData{Title: title, Session: auth.FromContext(r.Context()), Admin: true, Active: active}
}

// pathID parses the {id} URL parameter.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil
}

// seeOther redirects back to path after a form post.
func seeOther(w http.ResponseWriter, r *http.Request, path string) {
	http.Redirect(w, r, path, http.StatusSeeOther)
}
