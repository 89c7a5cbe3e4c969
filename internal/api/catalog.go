package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/vogue360/studio/internal/projection"
	"github.com/vogue360/studio/internal/store"
)

// CatalogHandler serves the gallery catalog.
type CatalogHandler struct {
	Catalog *store.Catalog
}

// List handles GET /api/catalog?category=&q=.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	criteria := projection.Criteria{
		Filter: r.URL.Query().Get("category"),
		Query:  r.URL.Query().Get("q"),
	}.Normalize()
	jsonResponse(w, http.StatusOK, projection.Catalog(h.Catalog.List(), criteria))
}

// Get handles GET /api/catalog/{id}.
func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid id")
		return
	}
	item, ok := h.Catalog.Get(id)
	if !ok {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}
	jsonResponse(w, http.StatusOK, item)
}
