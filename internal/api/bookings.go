package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/vogue360/studio/internal/projection"
	"github.com/vogue360/studio/internal/store"
)

// BookingsHandler serves bookings to the admin.
type BookingsHandler struct {
	Bookings *store.Bookings
}

// List handles GET /api/bookings?status=&q=.
func (h *BookingsHandler) List(w http.ResponseWriter, r *http.Request) {
	criteria := projection.Criteria{
		Filter: r.URL.Query().Get("status"),
		Query:  r.URL.Query().Get("q"),
	}.Normalize()
	jsonResponse(w, http.StatusOK, projection.Bookings(h.Bookings.List(), criteria))
}

// Get handles GET /api/bookings/{id}.
func (h *BookingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid id")
		return
	}
	b, ok := h.Bookings.Get(id)
	if !ok {
		jsonError(w, http.StatusNotFound, "booking not found")
		return
	}
	jsonResponse(w, http.StatusOK, b)
}
