package web

import (
	"errors"
	"net/http"

	"github.com/vogue360/studio/internal/console"
	"github.com/vogue360/studio/internal/editor"
	"github.com/vogue360/studio/internal/model"
	"github.com/vogue360/studio/internal/projection"
)

const bookingsPath = "/admin/dashboard/bookings"

// BookingsPage handles GET /admin/dashboard/bookings?status=&q=. The
// criteria persist in the session until changed.
func (s *Server) BookingsPage(w http.ResponseWriter, r *http.Request) {
	screen := s.consoleFor(r).Bookings
	if q := r.URL.Query(); q.Has("status") || q.Has("q") {
		screen.SetCriteria(projection.Criteria{Filter: q.Get("status"), Query: q.Get("q")})
	}

	s.Templates.Render(w, "bookings.html", &struct {
		PageData
		console.BookingsView
		Statuses  []model.BookingStatus
		TimeSlots []string
	}{
		PageData:     adminPage(r, "Bookings | Vogue 360 Admin", "bookings"),
		BookingsView: screen.View(),
		Statuses:     model.BookingStatuses,
		TimeSlots:    model.TimeSlots,
	})
}

// BookingSelect handles GET /admin/dashboard/bookings/{id}.
func (s *Server) BookingSelect(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	if !s.consoleFor(r).Bookings.Select(id) {
		s.NotFound(w, r)
		return
	}
	seeOther(w, r, bookingsPath)
}

// BookingClose handles POST /admin/dashboard/bookings/close.
func (s *Server) BookingClose(w http.ResponseWriter, r *http.Request) {
	s.consoleFor(r).Bookings.CloseDetail()
	seeOther(w, r, bookingsPath)
}

// BookingStatusSubmit handles POST /admin/dashboard/bookings/{id}/status.
func (s *Server) BookingStatusSubmit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	status, err := model.ParseBookingStatus(r.FormValue("status"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.consoleFor(r).Bookings.SetStatus(id, status)
	seeOther(w, r, bookingsPath)
}

// BookingDelete handles POST /admin/dashboard/bookings/{id}/delete.
func (s *Server) BookingDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	s.consoleFor(r).Bookings.Delete(id)
	seeOther(w, r, bookingsPath)
}

// BookingNew handles POST /admin/dashboard/bookings/new.
func (s *Server) BookingNew(w http.ResponseWriter, r *http.Request) {
	s.consoleFor(r).Bookings.OpenCreate()
	seeOther(w, r, bookingsPath)
}

// BookingEdit handles POST /admin/dashboard/bookings/{id}/edit.
func (s *Server) BookingEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	s.consoleFor(r).Bookings.OpenEdit(id)
	seeOther(w, r, bookingsPath)
}

// BookingEditorSubmit handles POST /admin/dashboard/bookings/editor.
// Validation failures keep the editor open and surface as a notification.
func (s *Server) BookingEditorSubmit(w http.ResponseWriter, r *http.Request) {
	d := editor.BookingDraft{
		Name:    r.FormValue("name"),
		Email:   r.FormValue("email"),
		Phone:   r.FormValue("phone"),
		Date:    r.FormValue("date"),
		Time:    r.FormValue("time"),
		Message: r.FormValue("message"),
		Status:  r.FormValue("status"),
	}
	if _, err := s.consoleFor(r).Bookings.Submit(d); errors.Is(err, editor.ErrClosed) {
		s.Logger.Warn("booking submitted with no open editor")
	}
	seeOther(w, r, bookingsPath)
}

// BookingEditorCancel handles POST /admin/dashboard/bookings/editor/cancel.
func (s *Server) BookingEditorCancel(w http.ResponseWriter, r *http.Request) {
	s.consoleFor(r).Bookings.CancelEdit()
	seeOther(w, r, bookingsPath)
}

// BookingDismiss handles POST /admin/dashboard/bookings/notification/dismiss.
func (s *Server) BookingDismiss(w http.ResponseWriter, r *http.Request) {
	s.consoleFor(r).Bookings.Dismiss()
	seeOther(w, r, bookingsPath)
}
