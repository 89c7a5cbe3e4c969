package web

import (
	"errors"
	"net/http"

	"github.com/vogue360/studio/internal/console"
	"github.com/vogue360/studio/internal/editor"
	"github.com/vogue360/studio/internal/model"
	"github.com/vogue360/studio/internal/projection"
	"github.com/vogue360/studio/internal/store"
)

const catalogPath = "/admin/dashboard/gallery"

// CatalogPage handles GET /admin/dashboard/gallery?category=&q=.
func (s *Server) CatalogPage(w http.ResponseWriter, r *http.Request) {
	screen := s.consoleFor(r).Catalog
	if q := r.URL.Query(); q.Has("category") || q.Has("q") {
		screen.SetCriteria(projection.Criteria{Filter: q.Get("category"), Query: q.Get("q")})
	}

	s.Templates.Render(w, "catalog.html", &struct {
		PageData
		console.CatalogView
		Categories []model.Category
	}{
		PageData:    adminPage(r, "Gallery | Vogue 360 Admin", "gallery"),
		CatalogView: screen.View(),
		Categories:  model.Categories,
	})
}

// CatalogNew handles POST /admin/dashboard/gallery/new.
func (s *Server) CatalogNew(w http.ResponseWriter, r *http.Request) {
	s.consoleFor(r).Catalog.OpenCreate()
	seeOther(w, r, catalogPath)
}

// CatalogEdit handles POST /admin/dashboard/gallery/{id}/edit.
func (s *Server) CatalogEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	s.consoleFor(r).Catalog.OpenEdit(id)
	seeOther(w, r, catalogPath)
}

// CatalogDelete handles POST /admin/dashboard/gallery/{id}/delete.
func (s *Server) CatalogDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	s.consoleFor(r).Catalog.Delete(id)
	seeOther(w, r, catalogPath)
}

// CatalogEditorSubmit handles POST /admin/dashboard/gallery/editor. The form
// may carry an uploaded photo in image_file, which replaces the image URL.
func (s *Server) CatalogEditorSubmit(w http.ResponseWriter, r *http.Request) {
	screen := s.consoleFor(r).Catalog

	r.Body = http.MaxBytesReader(w, r.Body, s.UploadLimit)
	if err := r.ParseMultipartForm(s.UploadLimit); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		screen.Reject("Image is too large")
		seeOther(w, r, catalogPath)
		return
	}

	d := editor.CatalogDraft{
		Name:     r.FormValue("name"),
		Category: r.FormValue("category"),
		Price:    r.FormValue("price"),
		Image:    r.FormValue("image"),
	}

	file, _, err := r.FormFile("image_file")
	switch {
	case err == nil:
		defer file.Close()
		result, err := s.Imaging.Process(file)
		if err != nil {
			s.Logger.Warn("rejected catalog image", "error", err)
			screen.Reject("Please upload a JPEG or PNG image")
			seeOther(w, r, catalogPath)
			return
		}
		d.Image = store.URL(s.Images.Put(result.Data, result.MIME))
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
	default:
		s.Logger.Error("reading catalog image", "error", err)
		screen.Reject("Image upload failed")
		seeOther(w, r, catalogPath)
		return
	}

	if _, err := screen.Submit(d); errors.Is(err, editor.ErrClosed) {
		s.Logger.Warn("catalog item submitted with no open editor")
	}
	seeOther(w, r, catalogPath)
}

// CatalogEditorCancel handles POST /admin/dashboard/gallery/editor/cancel.
func (s *Server) CatalogEditorCancel(w http.ResponseWriter, r *http.Request) {
	s.consoleFor(r).Catalog.CancelEdit()
	seeOther(w, r, catalogPath)
}

// CatalogDismiss handles POST /admin/dashboard/gallery/notification/dismiss.
func (s *Server) CatalogDismiss(w http.ResponseWriter, r *http.Request) {
	s.consoleFor(r).Catalog.Dismiss()
	seeOther(w, r, catalogPath)
}
