package app

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/dripdrop-backend/internal/adapter/cache"
	"github.com/heartmarshall/dripdrop-backend/internal/adapter/postgres"
	"github.com/heartmarshall/dripdrop-backend/internal/adapter/postgres/authmethod"
	itemrepo "github.com/heartmarshall/dripdrop-backend/internal/adapter/postgres/item"
	"github.com/heartmarshall/dripdrop-backend/internal/adapter/postgres/token"
	userrepo "github.com/heartmarshall/dripdrop-backend/internal/adapter/postgres/user"
	authpkg "github.com/heartmarshall/dripdrop-backend/internal/auth"
	"github.com/heartmarshall/dripdrop-backend/internal/config"
	authsvc "github.com/heartmarshall/dripdrop-backend/internal/service/auth"
	clicksvc "github.com/heartmarshall/dripdrop-backend/internal/service/click"
	itemsvc "github.com/heartmarshall/dripdrop-backend/internal/service/item"
	profilesvc "github.com/heartmarshall/dripdrop-backend/internal/service/profile"
	"github.com/heartmarshall/dripdrop-backend/internal/transport/middleware"
	"github.com/heartmarshall/dripdrop-backend/internal/transport/rest"
)

// Idle limiter entries are swept this often.
const limiterCleanupInterval = 5 * time.Minute

// server is the assembled HTTP application: the routed handler plus the
// background resources that must be released on shutdown.
type server struct {
	handler  http.Handler
	limiters []*middleware.RateLimiter
}

// newServer builds repositories, services, handlers and the router on top of
// an open pool. rdb may be nil, in which case the profile cache is off.
func newServer(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, rdb *redis.Client) *server {
	txm := postgres.NewTxManager(pool)

	// Repositories.
	userRepo := userrepo.New(pool)
	tokenRepo := token.New(pool)
	authMethodRepo := authmethod.New(pool)
	itemRepo := itemrepo.New(pool, txm)

	profileCache := cache.NewProfileCache(rdb, cfg.Cache.ProfileTTL, logger)
	jwtMgr := authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	// Services.
	authService := authsvc.NewService(logger, userRepo, tokenRepo, authMethodRepo, txm, jwtMgr, cfg.Auth)
	profileService := profilesvc.NewService(logger, userRepo, itemRepo, profileCache, cfg.Server)
	itemService := itemsvc.NewService(logger, itemRepo, profileService)
	clickService := clicksvc.NewService(logger, itemRepo, cfg.Click.Timeout)

	// Transport.
	cookies := middleware.NewSessionCookies(cfg.Session)

	health := rest.NewHealthHandler(pool, nil, BuildVersion())
	if rdb != nil {
		health = rest.NewHealthHandler(pool, profileCache, BuildVersion())
	}

	authLimiter := middleware.NewRateLimiter(cfg.RateLimit.AuthPerMinute, cfg.RateLimit.Burst, limiterCleanupInterval)
	clickLimiter := middleware.NewRateLimiter(cfg.RateLimit.ClickPerMinute, cfg.RateLimit.Burst, limiterCleanupInterval)

	h := routes{
		health:      health,
		auth:        rest.NewAuthHandler(authService, cookies, logger),
		items:       rest.NewItemHandler(itemService, logger),
		clicks:      rest.NewClickHandler(clickService),
		profile:     rest.NewProfileHandler(profileService, logger),
		authLimit:   authLimiter.Limit(),
		clickLimit:  clickLimiter.Limit(),
		sessionGate: middleware.NewSessionGate(authService, cookies, cfg.Session, logger).
			SkipRotation(refreshPath).
			Middleware(),
	}

	return &server{
		handler:  newRouter(h, cfg.CORS, logger),
		limiters: []*middleware.RateLimiter{authLimiter, clickLimiter},
	}
}

// close stops background goroutines owned by the server.
func (s *server) close() {
	for _, l := range s.limiters {
		l.Stop()
	}
}
