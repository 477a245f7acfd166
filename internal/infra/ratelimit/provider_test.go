package ratelimit

import (
	"io"
	"log/slog"
	"testing"

	"voll/config"
	"voll/internal/domain/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newProviderParams(t *testing.T, cfg *config.RateLimitConfig) (LimiterParams, *fxtest.Lifecycle) {
	lc := fxtest.NewLifecycle(t)

	return LimiterParams{
		Lc:     lc,
		Config: &config.Config{RateLimit: cfg},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, lc
}

func TestNewRateLimiter_Disabled(t *testing.T) {
	params, _ := newProviderParams(t, &config.RateLimitConfig{Enabled: false})

	limiter, err := NewRateLimiter(params)
	require.NoError(t, err)
	assert.Nil(t, limiter)
}

func TestNewRateLimiter_Memory(t *testing.T) {
	params, lc := newProviderParams(t, &config.RateLimitConfig{
		Enabled:  true,
		Provider: constants.RateLimitProviderMemory,
		RPS:      5,
		Burst:    5,
	})

	limiter, err := NewRateLimiter(params)
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, limiter)

	lc.RequireStart()
	lc.RequireStop()
}

func TestNewRateLimiter_RedisWithoutClient(t *testing.T) {
	params, _ := newProviderParams(t, &config.RateLimitConfig{
		Enabled:  true,
		Provider: constants.RateLimitProviderRedis,
	})

	_, err := NewRateLimiter(params)
	assert.Error(t, err)
}

func TestNewRateLimiter_UnknownProvider(t *testing.T) {
	params, _ := newProviderParams(t, &config.RateLimitConfig{Enabled: true, Provider: "carrier-pigeon"})

	_, err := NewRateLimiter(params)
	assert.Error(t, err)
}
