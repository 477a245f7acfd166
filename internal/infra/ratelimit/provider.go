package ratelimit

import (
	"context"
	"log/slog"

	"voll/config"
	"voll/internal/domain/constants"
	"voll/internal/domain/service"
	"voll/internal/errors"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// LimiterParams holds dependencies for the rate limiter, injected by Fx.
type LimiterParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
	Redis  *goredis.Client `optional:"true"`
}

// NewRateLimiter returns the limiter selected by configuration, or nil when rate limiting is disabled.
func NewRateLimiter(params LimiterParams) (service.RateLimiter, error) {
	cfg := params.Config.RateLimit
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("Rate limiting disabled")

		return nil, nil
	}

	switch cfg.Provider {
	case constants.RateLimitProviderRedis:
		if params.Redis == nil {
			return nil, errors.New("redis rate limit provider requires a redis client")
		}
		params.Logger.Info("Rate limiting enabled",
			slog.String("provider", cfg.Provider),
			slog.Int("limit", cfg.Burst),
			slog.Duration("window", cfg.Window),
		)

		return NewRedisStore(params.Redis, cfg.Burst, cfg.Window), nil

	case constants.RateLimitProviderMemory, "":
		store := NewMemoryStore(cfg.RPS, cfg.Burst, WithIdleTTL(cfg.IdleTTL))

		janitorCtx, cancel := context.WithCancel(context.Background())
		params.Lc.Append(fx.Hook{
			OnStart: func(_ context.Context) error {
				store.StartJanitor(janitorCtx)

				return nil
			},
			OnStop: func(_ context.Context) error {
				cancel()

				return nil
			},
		})

		params.Logger.Info("Rate limiting enabled",
			slog.String("provider", constants.RateLimitProviderMemory),
			slog.Float64("rps", cfg.RPS),
			slog.Int("burst", cfg.Burst),
		)

		return store, nil

	default:
		return nil, errors.Errorf("unknown rate limit provider: %s", cfg.Provider)
	}
}
