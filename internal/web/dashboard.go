package web

import (
	"net/http"

	"github.com/vogue360/studio/internal/console"
)

// Dashboard handles GET /admin/dashboard.
func (s *Server) Dashboard(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "dashboard.html", &struct {
		PageData
		Overview console.Overview
	}{
		PageData: adminPage(r, "Dashboard | Vogue 360 Admin", "overview"),
		Overview: console.Summarize(s.Bookings, s.Catalog),
	})
}
