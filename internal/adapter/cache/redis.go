// Package cache provides the Redis-backed public profile cache.
// A nil *redis.Client is valid everywhere in this package and turns every
// operation into a no-op, so the application keeps serving from PostgreSQL
// when Redis is not configured or unreachable.
package cache

import (
	"context"
	"errors"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/dripdrop-backend/internal/config"
	"github.com/heartmarshall/dripdrop-backend/internal/observability"
)

type metricsHook struct{}

func (metricsHook) DialHook(next redis.DialHook) redis.DialHook {
	return next
}

func (metricsHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		err := next(ctx, cmd)
		if err != nil && !errors.Is(err, redis.Nil) {
			observability.RedisErrors.WithLabelValues(cmd.Name()).Inc()
		}
		return err
	}
}

func (metricsHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		err := next(ctx, cmds)
		if err != nil && !errors.Is(err, redis.Nil) {
			observability.RedisErrors.WithLabelValues("pipeline").Inc()
		}
		return err
	}
}

// NewClient connects to Redis. It returns nil when no address is configured
// or the server does not answer a PING within the dial timeout.
func NewClient(ctx context.Context, cfg config.RedisConfig, logger *slog.Logger) *redis.Client {
	if !cfg.Enabled() {
		logger.Info("redis disabled, profile cache off")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: cfg.DialTimeout,
	})
	client.AddHook(metricsHook{})

	pingCtx, cancel := context.WithTimeout(ctx, cfg.DialTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Warn("redis unreachable, continuing without cache",
			slog.String("addr", cfg.Addr),
			slog.String("error", err.Error()),
		)
		_ = client.Close()
		return nil
	}

	logger.Info("redis connected", slog.String("addr", cfg.Addr))
	return client
}
