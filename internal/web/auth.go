package web

import (
	"errors"
	"net/http"

	"github.com/vogue360/studio/internal/auth"
	"github.com/vogue360/studio/internal/metrics"
)

const loginTitle = "Admin Login"

// LoginPage handles GET /admin. A logged-in admin goes straight to the
// dashboard.
func (s *Server) LoginPage(w http.ResponseWriter, r *http.Request) {
	if s.sessionFromCookie(r) != nil {
		seeOther(w, r, "/admin/dashboard")
		return
	}
	s.Templates.Render(w, "login.html", &struct {
		PageData
		Email string
	}{PageData: PageData{Title: loginTitle}})
}

// LoginSubmit handles POST /admin/login.
func (s *Server) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	password := r.FormValue("password")

	render := func(msg string) {
		s.Templates.Render(w, "login.html", &struct {
			PageData
			Email string
		}{
			PageData: PageData{Title: loginTitle, Error: msg},
			Email:    email,
		})
	}

	session, token, err := s.Auth.Login(r.Context(), email, password)
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		s.observeLogin(metrics.LoginFailure)
		s.Logger.Warn("admin login failed", "email", email)
		render("Invalid email or password")
		return
	case r.Context().Err() != nil:
		// The client went away during the simulated check.
		s.observeLogin(metrics.LoginAbandoned)
		return
	case err != nil:
		s.Logger.Error("admin login", "error", err)
		render("Login failed, please try again")
		return
	}

	s.observeLogin(metrics.LoginSuccess)
	s.Consoles.Open(session.ID)
	setSessionCookie(w, token, session.ExpiresAt)
	s.Logger.Info("admin logged in", "email", session.Email)
	seeOther(w, r, "/admin/dashboard")
}

// Logout handles POST /admin/logout.
func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	session := auth.FromContext(r.Context())
	s.Auth.Logout(session)
	s.Consoles.Close(session.ID)
	clearSessionCookie(w)
	s.Logger.Info("admin logged out", "email", session.Email)
	seeOther(w, r, "/admin")
}

func (s *Server) observeLogin(outcome string) {
	if s.Metrics != nil {
		s.Metrics.ObserveLogin(outcome)
	}
}
