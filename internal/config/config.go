package config

import (
	"net/http"
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	Cache     CacheConfig     `yaml:"cache"`
	Auth      AuthConfig      `yaml:"auth"`
	Session   SessionConfig   `yaml:"session"`
	Click     ClickConfig     `yaml:"click"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	PublicBaseURL   string        `yaml:"public_base_url"  env:"SERVER_PUBLIC_BASE_URL"  env-default:"http://localhost:8080"`
	SiteName        string        `yaml:"site_name"        env:"SERVER_SITE_NAME"        env-default:"DripDrop"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// RedisConfig holds Redis connection settings. An empty Addr disables caching.
type RedisConfig struct {
	Addr        string        `yaml:"addr"         env:"REDIS_ADDR"`
	Password    string        `yaml:"password"     env:"REDIS_PASSWORD"`
	DB          int           `yaml:"db"           env:"REDIS_DB"           env-default:"0"`
	DialTimeout time.Duration `yaml:"dial_timeout" env:"REDIS_DIAL_TIMEOUT" env-default:"2s"`
}

// Enabled reports whether a Redis address is configured.
func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

// CacheConfig holds cache TTLs.
type CacheConfig struct {
	ProfileTTL time.Duration `yaml:"profile_ttl" env:"CACHE_PROFILE_TTL" env-default:"30s"`
}

// AuthConfig holds token and password hashing settings.
type AuthConfig struct {
	JWTSecret        string        `yaml:"jwt_secret"         env:"AUTH_JWT_SECRET"         env-required:"true"`
	JWTIssuer        string        `yaml:"jwt_issuer"         env:"AUTH_JWT_ISSUER"         env-default:"dripdrop"`
	AccessTokenTTL   time.Duration `yaml:"access_token_ttl"   env:"AUTH_ACCESS_TOKEN_TTL"   env-default:"15m"`
	RefreshTokenTTL  time.Duration `yaml:"refresh_token_ttl"  env:"AUTH_REFRESH_TOKEN_TTL"  env-default:"720h"`
	PasswordHashCost int           `yaml:"password_hash_cost" env:"AUTH_PASSWORD_HASH_COST" env-default:"12"`
}

// SessionConfig drives the session gate and its cookies.
type SessionConfig struct {
	AccessCookie      string        `yaml:"access_cookie"      env:"SESSION_ACCESS_COOKIE"      env-default:"dd_access"`
	RefreshCookie     string        `yaml:"refresh_cookie"     env:"SESSION_REFRESH_COOKIE"     env-default:"dd_refresh"`
	CookieDomain      string        `yaml:"cookie_domain"      env:"SESSION_COOKIE_DOMAIN"`
	CookieSecure      bool          `yaml:"cookie_secure"      env:"SESSION_COOKIE_SECURE"      env-default:"true"`
	CookieSameSite    string        `yaml:"cookie_same_site"   env:"SESSION_COOKIE_SAME_SITE"   env-default:"lax"`
	RefreshWindow     time.Duration `yaml:"refresh_window"     env:"SESSION_REFRESH_WINDOW"     env-default:"2m"`
	ProtectedPrefixes []string      `yaml:"protected_prefixes" env:"SESSION_PROTECTED_PREFIXES" env-default:"/dashboard" env-separator:","`
	LoginPath         string        `yaml:"login_path"         env:"SESSION_LOGIN_PATH"         env-default:"/login"`
	LandingPath       string        `yaml:"landing_path"       env:"SESSION_LANDING_PATH"       env-default:"/dashboard"`
}

// SameSite converts the configured string into an http.SameSite value.
func (c SessionConfig) SameSite() http.SameSite {
	switch strings.ToLower(c.CookieSameSite) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

// ClickConfig holds click tracking settings.
type ClickConfig struct {
	Timeout time.Duration `yaml:"timeout" env:"CLICK_TIMEOUT" env-default:"2s"`
}

// RateLimitConfig holds per-IP limits for public endpoints.
type RateLimitConfig struct {
	AuthPerMinute  int `yaml:"auth_per_minute"  env:"RATE_LIMIT_AUTH_PER_MINUTE"  env-default:"10"`
	ClickPerMinute int `yaml:"click_per_minute" env:"RATE_LIMIT_CLICK_PER_MINUTE" env-default:"120"`
	Burst          int `yaml:"burst"            env:"RATE_LIMIT_BURST"            env-default:"5"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
