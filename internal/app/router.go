package app

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/dripdrop-backend/internal/config"
	"github.com/heartmarshall/dripdrop-backend/internal/transport/middleware"
	"github.com/heartmarshall/dripdrop-backend/internal/transport/rest"
)

// refreshPath is served by the auth handler, which rotates the refresh cookie
// itself.
const refreshPath = "/auth/refresh"

// routes holds everything newRouter mounts.
type routes struct {
	health  *rest.HealthHandler
	auth    *rest.AuthHandler
	items   *rest.ItemHandler
	clicks  *rest.ClickHandler
	profile *rest.ProfileHandler

	authLimit   middleware.Middleware
	clickLimit  middleware.Middleware
	sessionGate middleware.Middleware
}

// newRouter mounts every endpoint on a ServeMux and wraps it in the global
// chain. The session gate runs once per request, before routing, so page
// redirects apply to every path.
//
// Each route records metrics under its own pattern: the request reaching the
// mux is a copy, so r.Pattern is not visible to an outer middleware.
func newRouter(h routes, cors config.CORSConfig, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()

	handle := func(pattern string, fn http.HandlerFunc, mws ...middleware.Middleware) {
		chain := append([]middleware.Middleware{middleware.Metrics(pattern)}, mws...)
		mux.Handle(pattern, middleware.Chain(chain...)(fn))
	}

	// Probes and metrics.
	handle("GET /live", h.health.Live)
	handle("GET /ready", h.health.Ready)
	handle("GET /health", h.health.Health)
	mux.Handle("GET /metrics", promhttp.Handler())

	// Auth.
	handle("POST /auth/signup", h.auth.Signup, h.authLimit)
	handle("POST /auth/login", h.auth.Login, h.authLimit)
	handle("POST "+refreshPath, h.auth.Refresh, h.authLimit)
	handle("POST /auth/logout", h.auth.Logout)

	// Pages.
	handle("GET /login", h.profile.LoginPage)
	handle("GET /dashboard", h.profile.Dashboard)

	// Owner API.
	handle("GET /api/me", h.profile.Me)
	handle("PATCH /api/me", h.profile.UpdateMe)
	handle("GET /api/items", h.items.List)
	handle("POST /api/items", h.items.Create)
	handle("PUT /api/items/order", h.items.Reorder)
	handle("PATCH /api/items/{id}", h.items.Update)
	handle("DELETE /api/items/{id}", h.items.Delete)
	handle("POST /api/items/{id}/toggle", h.items.Toggle)

	// Visitors.
	handle("POST /api/items/{id}/click", h.clicks.Track, h.clickLimit)
	handle("GET /{username}", h.profile.Public)

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cors),
		h.sessionGate,
	)(mux)
}
