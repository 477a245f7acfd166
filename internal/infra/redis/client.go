// Package redis provides the shared Redis client.
package redis

import (
	"context"
	"log/slog"

	"voll/config"
	"voll/internal/domain/constants"
	"voll/internal/errors"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// ClientParams holds dependencies for the Redis client, injected by Fx.
type ClientParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewClient returns a Redis client when a component needs one, or nil otherwise.
// Only the redis rate limit provider uses Redis today.
func NewClient(params ClientParams) (*goredis.Client, error) {
	cfg := params.Config
	if cfg.RateLimit == nil || !cfg.RateLimit.Enabled || cfg.RateLimit.Provider != constants.RateLimitProviderRedis {
		return nil, nil
	}
	if cfg.Redis == nil || cfg.Redis.URL == "" {
		return nil, errors.New("redis.url must be set when rateLimit.provider is redis")
	}

	client, err := New(cfg.Redis)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "redis ping failed")
			}
			params.Logger.Info("Redis connection established")

			return nil
		},
		OnStop: func(_ context.Context) error {
			params.Logger.Info("Closing Redis connection")

			return client.Close()
		},
	})

	return client, nil
}

// New builds a client from the connection URL and applies pool overrides.
func New(cfg *config.RedisConfig) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(cfg.URL)
	if err != nil {
		return nil, errors.Wrap(err, "parse redis url")
	}

	if cfg.PoolSize > 0 {
		opts.PoolSize = cfg.PoolSize
	}
	if cfg.MinIdleConns > 0 {
		opts.MinIdleConns = cfg.MinIdleConns
	}
	if cfg.DialTimeout > 0 {
		opts.DialTimeout = cfg.DialTimeout
	}
	if cfg.ReadTimeout > 0 {
		opts.ReadTimeout = cfg.ReadTimeout
	}
	if cfg.WriteTimeout > 0 {
		opts.WriteTimeout = cfg.WriteTimeout
	}

	return goredis.NewClient(opts), nil
}
