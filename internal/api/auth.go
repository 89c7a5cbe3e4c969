package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/vogue360/studio/internal/auth"
	"github.com/vogue360/studio/internal/console"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	Auth *auth.Manager
	// Consoles, when set, drops the screen state of a logged-out session.
	Consoles *console.Registry
	Logger   *slog.Logger
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		jsonError(w, http.StatusBadRequest, "email and password required")
		return
	}

	session, token, err := h.Auth.Login(r.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		h.Logger.Warn("login failed", "email", req.Email, "remote", r.RemoteAddr)
		jsonError(w, http.StatusUnauthorized, "invalid credentials")
		return
	case err != nil:
		if r.Context().Err() == nil {
			h.Logger.Error("login", "error", err)
			jsonError(w, http.StatusInternalServerError, "failed to log in")
		}
		return
	}

	h.Logger.Info("admin logged in", "email", session.Email, "via", "api")
	jsonResponse(w, http.StatusOK, loginResponse{Token: token, ExpiresAt: session.ExpiresAt})
}

// Logout handles POST /api/auth/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session := auth.FromContext(r.Context())
	h.Auth.Logout(session)
	if h.Consoles != nil {
		h.Consoles.Close(session.ID)
	}
	h.Logger.Info("admin logged out", "email", session.Email, "via", "api")
	jsonResponse(w, http.StatusOK, map[string]string{"message": "logged out"})
}
