package config

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be within %d..%d (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}
	if c.Auth.AccessTokenTTL <= 0 || c.Auth.RefreshTokenTTL <= c.Auth.AccessTokenTTL {
		return fmt.Errorf("auth: refresh_token_ttl (%s) must exceed access_token_ttl (%s) > 0",
			c.Auth.RefreshTokenTTL, c.Auth.AccessTokenTTL)
	}

	if err := c.Session.validate(c.Auth); err != nil {
		return fmt.Errorf("session: %w", err)
	}

	if u, err := url.Parse(c.Server.PublicBaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("server.public_base_url must be an absolute URL (got %q)", c.Server.PublicBaseURL)
	}

	if c.Cache.ProfileTTL < 0 {
		return fmt.Errorf("cache.profile_ttl must be >= 0 (got %s)", c.Cache.ProfileTTL)
	}
	if c.Click.Timeout <= 0 {
		return fmt.Errorf("click.timeout must be > 0 (got %s)", c.Click.Timeout)
	}
	if c.RateLimit.AuthPerMinute <= 0 || c.RateLimit.ClickPerMinute <= 0 || c.RateLimit.Burst <= 0 {
		return fmt.Errorf("rate_limit values must be > 0")
	}

	return nil
}

func (s *SessionConfig) validate(auth AuthConfig) error {
	if s.AccessCookie == "" || s.RefreshCookie == "" {
		return fmt.Errorf("cookie names are required")
	}
	if s.AccessCookie == s.RefreshCookie {
		return fmt.Errorf("access_cookie and refresh_cookie must differ")
	}
	if s.RefreshWindow < 0 || s.RefreshWindow >= auth.AccessTokenTTL {
		return fmt.Errorf("refresh_window must be within [0, access_token_ttl) (got %s)", s.RefreshWindow)
	}
	if !strings.HasPrefix(s.LoginPath, "/") || !strings.HasPrefix(s.LandingPath, "/") {
		return fmt.Errorf("login_path and landing_path must start with '/'")
	}
	for _, p := range s.ProtectedPrefixes {
		if !strings.HasPrefix(p, "/") {
			return fmt.Errorf("protected prefix %q must start with '/'", p)
		}
		if strings.HasPrefix(s.LoginPath, p) {
			return fmt.Errorf("login_path %q must not be protected by %q", s.LoginPath, p)
		}
	}
	return nil
}
