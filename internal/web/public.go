package web

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vogue360/studio/internal/editor"
	"github.com/vogue360/studio/internal/imaging"
	"github.com/vogue360/studio/internal/latency"
	"github.com/vogue360/studio/internal/model"
	"github.com/vogue360/studio/internal/projection"
	"github.com/vogue360/studio/internal/store"
)

// Booking request outcomes, as counted in metrics.
const (
	bookingFiled     = "filed"
	bookingInvalid   = "invalid"
	bookingAbandoned = "abandoned"
)

// Home handles GET /.
func (s *Server) Home(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "home.html", &struct {
		PageData
		Collections []model.FeaturedCollection
	}{
		PageData:    PageData{Title: "Vogue 360", Active: "home"},
		Collections: store.FeaturedCollections(),
	})
}

// Gallery handles GET /gallery?category=&q=.
func (s *Server) Gallery(w http.ResponseWriter, r *http.Request) {
	criteria := projection.Criteria{
		Filter: r.URL.Query().Get("category"),
		Query:  r.URL.Query().Get("q"),
	}.Normalize()

	s.Templates.Render(w, "gallery.html", &struct {
		PageData
		Criteria   projection.Criteria
		Categories []model.Category
		Items      []model.CatalogItem
	}{
		PageData:   PageData{Title: "Gallery | Vogue 360", Active: "gallery"},
		Criteria:   criteria,
		Categories: model.Categories,
		Items:      projection.Catalog(s.Catalog.List(), criteria),
	})
}

type bookingPage struct {
	PageData
	Draft     editor.BookingDraft
	Dates     []string
	TimeSlots []string
}

func (s *Server) renderBooking(w http.ResponseWriter, d editor.BookingDraft, msg string) {
	s.Templates.Render(w, "booking.html", &bookingPage{
		PageData:  PageData{Title: "Book a Session | Vogue 360", Active: "booking", Error: msg},
		Draft:     d,
		Dates:     model.BookableDates(s.Now()),
		TimeSlots: model.TimeSlots,
	})
}

// BookingPage handles GET /booking.
func (s *Server) BookingPage(w http.ResponseWriter, r *http.Request) {
	s.renderBooking(w, editor.BookingDraft{}, "")
}

// BookingSubmit handles POST /booking. A valid request is filed as a pending
// booking once the simulated latency has passed; an abandoned request files
// nothing.
func (s *Server) BookingSubmit(w http.ResponseWriter, r *http.Request) {
	d := editor.BookingDraft{
		Name:    r.FormValue("name"),
		Email:   r.FormValue("email"),
		Phone:   r.FormValue("phone"),
		Date:    r.FormValue("date"),
		Time:    r.FormValue("time"),
		Message: r.FormValue("message"),
	}

	b, err := editor.BuildBooking(d, model.Booking{})
	if err != nil {
		var verr *editor.ValidationError
		if !errors.As(err, &verr) {
			s.Logger.Error("building booking", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		s.observeBooking(bookingInvalid)
		s.renderBooking(w, d, verr.Message)
		return
	}

	err = latency.Do(r.Context(), s.BookingDelay, func() error {
		b.CreatedAt = s.Now()
		b = s.Bookings.Add(b)
		return nil
	})
	if err != nil {
		s.observeBooking(bookingAbandoned)
		s.Logger.Warn("booking request abandoned", "email", b.Email, "error", err)
		return
	}
	s.observeBooking(bookingFiled)
	s.Logger.Info("booking requested", "booking", b.ID, "date", b.Date, "time", b.Time)

	s.Templates.Render(w, "booking_done.html", &struct {
		PageData
		Booking model.Booking
	}{
		PageData: PageData{Title: "Book a Session | Vogue 360", Active: "booking"},
		Booking:  b,
	})
}

func (s *Server) observeBooking(outcome string) {
	if s.Metrics != nil {
		s.Metrics.ObserveBookingRequest(outcome)
	}
}

// Image handles GET /images/{key}.
func (s *Server) Image(w http.ResponseWriter, r *http.Request) {
	img, ok := s.Images.Get(chi.URLParam(r, "key"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	s.writeImage(w, img.Data, img.MIME, "public, max-age=31536000, immutable")
}

// Placeholder handles GET /placeholder.jpg, the fallback for broken image
// links.
func (s *Server) Placeholder(w http.ResponseWriter, r *http.Request) {
	result, err := imaging.Placeholder(600, 800)
	if err != nil {
		s.Logger.Error("rendering placeholder", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	s.writeImage(w, result.Data, result.MIME, "public, max-age=86400")
}

func (s *Server) writeImage(w http.ResponseWriter, data []byte, mime, cache string) {
	w.Header().Set("Content-Type", mime)
	w.Header().Set("Content-Disposition", "inline")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Cache-Control", cache)
	if _, err := w.Write(data); err != nil {
		s.Logger.Error("failed to write image response", "error", err)
	}
}

// NotFound renders the not-found page for unknown paths.
func (s *Server) NotFound(w http.ResponseWriter, r *http.Request) {
	s.Templates.RenderStatus(w, http.StatusNotFound, "not_found.html", &PageData{Title: "Page Not Found | Vogue 360"})
}
