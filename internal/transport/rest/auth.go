package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/dripdrop-backend/internal/service/auth"
)

// authService defines the minimal interface needed by AuthHandler.
type authService interface {
	Register(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)
	LoginWithPassword(ctx context.Context, input auth.LoginPasswordInput) (*auth.AuthResult, error)
	Refresh(ctx context.Context, input auth.RefreshInput) (*auth.AuthResult, error)
	Logout(ctx context.Context) error
}

// sessionCookies writes the session cookies that the session gate reads.
type sessionCookies interface {
	Refresh(r *http.Request) string
	Set(w http.ResponseWriter, result *auth.AuthResult)
	Clear(w http.ResponseWriter)
}

// AuthHandler serves sign-up, sign-in, refresh and sign-out. Successful calls
// set the session cookies and also return the tokens in the body for API
// clients that send a Bearer header.
type AuthHandler struct {
	svc     authService
	cookies sessionCookies
	log     *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, cookies sessionCookies, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, cookies: cookies, log: logger.With("handler", "auth")}
}

// Signup handles POST /auth/signup.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var input auth.RegisterInput
	if err := decodeJSON(w, r, &input, false); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	result, err := h.svc.Register(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	h.cookies.Set(w, result)
	writeJSON(w, http.StatusCreated, toAuthResponse(result))
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input auth.LoginPasswordInput
	if err := decodeJSON(w, r, &input, false); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	result, err := h.svc.LoginWithPassword(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	h.cookies.Set(w, result)
	writeJSON(w, http.StatusOK, toAuthResponse(result))
}

// Refresh handles POST /auth/refresh. The refresh cookie wins over the body.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var input auth.RefreshInput
	if err := decodeJSON(w, r, &input, true); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if token := h.cookies.Refresh(r); token != "" {
		input.RefreshToken = token
	}

	result, err := h.svc.Refresh(r.Context(), input)
	if err != nil {
		if isUnauthorized(err) {
			h.cookies.Clear(w)
		}
		handleError(w, r, h.log, err)
		return
	}

	h.cookies.Set(w, result)
	writeJSON(w, http.StatusOK, toAuthResponse(result))
}

// Logout handles POST /auth/logout. Cookies are cleared even when the caller
// has no session, so the call is safe to repeat.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	err := h.svc.Logout(r.Context())
	h.cookies.Clear(w)
	if err != nil && !isUnauthorized(err) {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
