package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/dripdrop-backend/internal/auth"
	"github.com/heartmarshall/dripdrop-backend/internal/config"
	"github.com/heartmarshall/dripdrop-backend/internal/domain"
	"github.com/heartmarshall/dripdrop-backend/internal/observability"
	authsvc "github.com/heartmarshall/dripdrop-backend/internal/service/auth"
	"github.com/heartmarshall/dripdrop-backend/pkg/ctxutil"
)

type sessionProvider interface {
	ValidateToken(ctx context.Context, token string) (auth.AccessToken, error)
	Refresh(ctx context.Context, input authsvc.RefreshInput) (*authsvc.AuthResult, error)
}

// SessionGate resolves the caller's session once per request and enforces
// the page redirects.
//
// A valid access token (Bearer header, else the access cookie) with more than
// the refresh window left authenticates the request. A missing, invalid or
// nearly expired token is rotated through the refresh cookie, and the new
// tokens are written back as cookies. The gate never clears cookies: a
// rejected refresh token may only mean a parallel request rotated it first,
// so clearing is left to the logout and refresh endpoints.
//
// Unauthenticated requests under a protected prefix are redirected to the
// login path, and authenticated requests for the login path to the landing
// path. A nil provider treats every request as unauthenticated.
type SessionGate struct {
	provider sessionProvider
	cookies  *SessionCookies
	cfg      config.SessionConfig
	log      *slog.Logger
	now      func() time.Time

	// Paths where the handler itself consumes the refresh cookie.
	noRotate []string
}

// NewSessionGate creates a SessionGate. provider may be nil.
func NewSessionGate(provider sessionProvider, cookies *SessionCookies, cfg config.SessionConfig, logger *slog.Logger) *SessionGate {
	return &SessionGate{
		provider: provider,
		cookies:  cookies,
		cfg:      cfg,
		log:      logger.With("component", "session_gate"),
		now:      time.Now,
	}
}

// SkipRotation disables refresh on the given exact paths. The access token is
// still honored there.
func (g *SessionGate) SkipRotation(paths ...string) *SessionGate {
	g.noRotate = append(g.noRotate, paths...)
	return g
}

// Middleware returns the gate as HTTP middleware.
func (g *SessionGate) Middleware() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := g.resolve(w, r)
			if ok {
				r = r.WithContext(ctxutil.WithUserID(r.Context(), userID))
			}

			path := r.URL.Path
			switch {
			case !ok && g.isProtected(path):
				http.Redirect(w, r, g.cfg.LoginPath, http.StatusFound)
				return
			case ok && path == g.cfg.LoginPath:
				http.Redirect(w, r, g.cfg.LandingPath, http.StatusFound)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (g *SessionGate) resolve(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	if g.provider == nil {
		return uuid.Nil, false
	}
	ctx := r.Context()

	var (
		access auth.AccessToken
		valid  bool
	)
	if token := g.accessToken(r); token != "" {
		at, err := g.provider.ValidateToken(ctx, token)
		if err == nil {
			access, valid = at, true
		}
	}

	if valid && access.ExpiresAt.Sub(g.now()) > g.cfg.RefreshWindow {
		return access.UserID, true
	}

	refresh := g.cookies.Refresh(r)
	if refresh == "" || slices.Contains(g.noRotate, r.URL.Path) {
		return access.UserID, valid
	}

	result, err := g.provider.Refresh(ctx, authsvc.RefreshInput{RefreshToken: refresh})
	switch {
	case err == nil:
		observability.SessionRefreshes.WithLabelValues("rotated").Inc()
		g.cookies.Set(w, result)
		return result.User.ID, true

	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrValidation):
		observability.SessionRefreshes.WithLabelValues("rejected").Inc()
		return access.UserID, valid

	default:
		observability.SessionRefreshes.WithLabelValues("error").Inc()
		g.log.WarnContext(ctx, "session refresh failed",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		return access.UserID, valid
	}
}

func (g *SessionGate) accessToken(r *http.Request) string {
	if token := extractBearerToken(r); token != "" {
		return token
	}
	return g.cookies.Access(r)
}

func (g *SessionGate) isProtected(path string) bool {
	for _, prefix := range g.cfg.ProtectedPrefixes {
		prefix = strings.TrimRight(prefix, "/")
		if prefix == "" {
			continue
		}
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}
	return false
}

// extractBearerToken returns the token of an "Authorization: Bearer" header,
// matching the scheme without regard to case.
func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
