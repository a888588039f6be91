package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/dripdrop-backend/internal/domain"
	"github.com/heartmarshall/dripdrop-backend/internal/service/profile"
)

type profileService interface {
	GetPublicProfile(ctx context.Context, username string) (*profile.PublicPage, error)
	GetOwnProfile(ctx context.Context) (*domain.User, error)
	UpdateProfile(ctx context.Context, input profile.UpdateProfileInput) (*domain.User, error)
	Dashboard(ctx context.Context) (*profile.Dashboard, error)
}

// ProfileHandler serves the public profile page, the dashboard and the
// caller's own profile.
type ProfileHandler struct {
	svc profileService
	log *slog.Logger
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(svc profileService, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{svc: svc, log: logger.With("handler", "profile")}
}

// Public handles GET /{username}.
func (h *ProfileHandler) Public(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.GetPublicProfile(r.Context(), r.PathValue("username"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.Header().Set("Cache-Control", "public, max-age=30")
	writeJSON(w, http.StatusOK, toPublicPageResponse(page))
}

// Me handles GET /api/me.
func (h *ProfileHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.GetOwnProfile(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// UpdateMe handles PATCH /api/me.
func (h *ProfileHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var input profile.UpdateProfileInput
	if err := decodeJSON(w, r, &input, false); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	u, err := h.svc.UpdateProfile(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// Dashboard handles GET /dashboard. The session gate has already redirected
// anonymous callers.
func (h *ProfileHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Dashboard(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, dashboardResponse{
		User:     toUserResponse(d.User),
		Items:    toItemsResponse(d.Items),
		ShareURL: d.ShareURL,
	})
}

type loginPageResponse struct {
	Page      string `json:"page"`
	LoginURL  string `json:"login_url"`
	SignupURL string `json:"signup_url"`
}

// LoginPage handles GET /login. It only describes where the credentials go;
// authenticated callers never reach it.
func (h *ProfileHandler) LoginPage(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, loginPageResponse{
		Page:      "login",
		LoginURL:  "/auth/login",
		SignupURL: "/auth/signup",
	})
}
