package web

import (
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/vogue360/studio/internal/auth"
	"github.com/vogue360/studio/internal/model"
	"github.com/vogue360/studio/internal/projection"
	webembed "github.com/vogue360/studio/web"
)

// Templates holds parsed HTML templates.
type Templates struct {
	templates map[string]*template.Template
}

// FuncMap returns the template function map.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"price": func(p float64) string {
			return "$" + strconv.FormatFloat(p, 'f', 2, 64)
		},
		"categoryName": func(c any) string {
			name := fmt.Sprint(c)
			if name == projection.All {
				return "All"
			}
			return model.Category(name).DisplayName()
		},
		"statusName": func(st any) string {
			name := fmt.Sprint(st)
			if name == projection.All {
				return "All"
			}
			return model.BookingStatus(name).DisplayName()
		},
		"same": func(a, b any) bool {
			return fmt.Sprint(a) == fmt.Sprint(b)
		},
	}
}

// pages lists every page template; each is parsed together with the layout.
var pages = []string{
	"home.html",
	"gallery.html",
	"booking.html",
	"booking_done.html",
	"not_found.html",
	"login.html",
	"dashboard.html",
	"bookings.html",
	"catalog.html",
}

// LoadTemplates parses all page templates with the layout.
func LoadTemplates() (*Templates, error) {
	tfs := webembed.TemplatesFS()

	layoutBytes, err := fs.ReadFile(tfs, "layout.html")
	if err != nil {
		return nil, fmt.Errorf("reading layout template: %w", err)
	}

	ts := &Templates{templates: make(map[string]*template.Template)}

	for _, page := range pages {
		pageBytes, err := fs.ReadFile(tfs, page)
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", page, err)
		}

		tmpl := template.New(page).Funcs(FuncMap())
		tmpl, err = tmpl.Parse(string(layoutBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing layout for %s: %w", page, err)
		}
		tmpl, err = tmpl.Parse(string(pageBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", page, err)
		}

		ts.templates[page] = tmpl
	}

	return ts, nil
}

// Render renders a template with the given data and a 200 status.
func (ts *Templates) Render(w http.ResponseWriter, name string, data any) {
	ts.RenderStatus(w, http.StatusOK, name, data)
}

// RenderStatus renders a template with the given data and status.
func (ts *Templates) RenderStatus(w http.ResponseWriter, status int, name string, data any) {
	tmpl, ok := ts.templates[name]
	if !ok {
		http.Error(w, "template not found", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		slog.Error("failed to render template", "template", name, "error", err)
	}
}

// PageData is the base data passed to all templates.
type PageData struct {
	Title   string
	Session *auth.Session
	// Admin selects the admin navigation in the layout.
	Admin bool
	// Active names the current navigation entry.
	Active string
	Error  string
}
