package middleware

import (
	"net/http"
	"time"

	"github.com/heartmarshall/dripdrop-backend/internal/config"
	authsvc "github.com/heartmarshall/dripdrop-backend/internal/service/auth"
)

// SessionCookies reads and writes the access and refresh cookies.
type SessionCookies struct {
	cfg config.SessionConfig
}

// NewSessionCookies creates cookie helpers for the configured names and flags.
func NewSessionCookies(cfg config.SessionConfig) *SessionCookies {
	return &SessionCookies{cfg: cfg}
}

// Access returns the access token cookie value, or "".
func (c *SessionCookies) Access(r *http.Request) string {
	return cookieValue(r, c.cfg.AccessCookie)
}

// Refresh returns the refresh token cookie value, or "".
func (c *SessionCookies) Refresh(r *http.Request) string {
	return cookieValue(r, c.cfg.RefreshCookie)
}

// Set writes both tokens of result. Each cookie expires with its token.
func (c *SessionCookies) Set(w http.ResponseWriter, result *authsvc.AuthResult) {
	http.SetCookie(w, c.cookie(c.cfg.AccessCookie, result.AccessToken, result.AccessExpiresAt))
	http.SetCookie(w, c.cookie(c.cfg.RefreshCookie, result.RefreshToken, result.RefreshExpiresAt))
}

// Clear expires both cookies.
func (c *SessionCookies) Clear(w http.ResponseWriter) {
	for _, name := range []string{c.cfg.AccessCookie, c.cfg.RefreshCookie} {
		ck := c.cookie(name, "", time.Unix(0, 0))
		ck.MaxAge = -1
		http.SetCookie(w, ck)
	}
}

func (c *SessionCookies) cookie(name, value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   c.cfg.CookieDomain,
		Expires:  expires,
		HttpOnly: true,
		Secure:   c.cfg.CookieSecure,
		SameSite: c.cfg.SameSite(),
	}
}

func cookieValue(r *http.Request, name string) string {
	ck, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return ck.Value
}
