// Package ratelimit provides fixed-window counter stores for the HTTP rate limiters.
package ratelimit

import (
	"context"
	"log/slog"

	"budget/config"
	"budget/internal/domain/constants"
	"budget/internal/domain/lifecycle"
	"budget/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// StoreParams holds dependencies for the rate limit store, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewStore selects the counter backend from config. Memory is the default.
func NewStore(params StoreParams) (service.RateLimitStore, error) {
	cfg := params.Config.RateLimit
	if cfg == nil || cfg.Store == "" || cfg.Store == constants.RateLimitStoreMemory {
		params.Logger.Info("Using in-memory rate limit store")

		return NewMemoryStore(), nil
	}

	if cfg.Store != constants.RateLimitStoreRedis {
		return nil, errors.Errorf("unknown rate limit store: %s", cfg.Store)
	}
	if cfg.Redis.Addr == "" {
		return nil, errors.New("redis address is required for redis rate limit store")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping redis")
			}
			params.Logger.Info("Using redis rate limit store", slog.String("addr", cfg.Redis.Addr))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return NewRedisStore(client), nil
}

// Module provides the rate limit store
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewStore),
)
