package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/dripdrop-backend/internal/domain"
	"github.com/heartmarshall/dripdrop-backend/internal/observability"
)

const profileKeyPrefix = "profile:"

// ProfileKey returns the cache key of a public profile. Usernames are
// case-insensitive, so the key is built from the lowercased name.
func ProfileKey(username string) string {
	return profileKeyPrefix + strings.ToLower(username)
}

// ProfileCache stores rendered public profiles for a short TTL.
// All errors are logged and swallowed: a cache failure degrades to a miss.
type ProfileCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *slog.Logger
}

// NewProfileCache creates a ProfileCache. A nil client or a non-positive ttl
// disables caching.
func NewProfileCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *ProfileCache {
	return &ProfileCache{
		client: client,
		ttl:    ttl,
		log:    logger.With("component", "profile_cache"),
	}
}

func (c *ProfileCache) enabled() bool {
	return c != nil && c.client != nil && c.ttl > 0
}

// Get returns the cached profile for username, if any.
func (c *ProfileCache) Get(ctx context.Context, username string) (*domain.PublicProfile, bool) {
	if !c.enabled() {
		return nil, false
	}

	raw, err := c.client.Get(ctx, ProfileKey(username)).Bytes()
	if errors.Is(err, redis.Nil) {
		observability.ProfileCacheResults.WithLabelValues("miss").Inc()
		return nil, false
	}
	if err != nil {
		observability.ProfileCacheResults.WithLabelValues("error").Inc()
		c.log.WarnContext(ctx, "profile cache get failed",
			slog.String("username", username),
			slog.String("error", err.Error()),
		)
		return nil, false
	}

	var p domain.PublicProfile
	if err := json.Unmarshal(raw, &p); err != nil {
		observability.ProfileCacheResults.WithLabelValues("error").Inc()
		c.log.WarnContext(ctx, "profile cache entry corrupt",
			slog.String("username", username),
			slog.String("error", err.Error()),
		)
		c.Delete(ctx, username)
		return nil, false
	}

	observability.ProfileCacheResults.WithLabelValues("hit").Inc()
	return &p, true
}

// Set stores p under its username.
func (c *ProfileCache) Set(ctx context.Context, p *domain.PublicProfile) {
	if !c.enabled() || p == nil {
		return
	}

	raw, err := json.Marshal(p)
	if err != nil {
		c.log.ErrorContext(ctx, "profile cache marshal failed", slog.String("error", err.Error()))
		return
	}

	if err := c.client.Set(ctx, ProfileKey(p.Username), raw, c.ttl).Err(); err != nil {
		c.log.WarnContext(ctx, "profile cache set failed",
			slog.String("username", p.Username),
			slog.String("error", err.Error()),
		)
	}
}

// Delete drops the cached profile of username.
func (c *ProfileCache) Delete(ctx context.Context, username string) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, ProfileKey(username)).Err(); err != nil {
		c.log.WarnContext(ctx, "profile cache delete failed",
			slog.String("username", username),
			slog.String("error", err.Error()),
		)
	}
}

// Ping checks the Redis connection. It returns nil when caching is off.
func (c *ProfileCache) Ping(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Ping(ctx).Err()
}
