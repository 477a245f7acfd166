package middleware

import (
	"log/slog"
	"math"
	"strconv"

	deliverycontext "voll/internal/delivery/context"
	domainerrors "voll/internal/domain/errors"
	"voll/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// RateLimitRecorder counts rejected requests.
type RateLimitRecorder interface {
	IncRateLimited()
}

// RateLimitMiddleware throttles requests per client IP.
type RateLimitMiddleware struct {
	limiter  service.RateLimiter
	recorder RateLimitRecorder
	logger   *slog.Logger
}

// NewRateLimitMiddleware identifies clients by c.RealIP(), so the echo instance's
// IPExtractor decides which forwarding headers, if any, are believed.
func NewRateLimitMiddleware(limiter service.RateLimiter, recorder RateLimitRecorder, logger *slog.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter:  limiter,
		recorder: recorder,
		logger:   logger,
	}
}

// Limit answers 429 with Retry-After when the client is over its budget.
// A limiter failure lets the request through.
func (m *RateLimitMiddleware) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		key := "ip:" + c.RealIP()

		decision, err := m.limiter.Allow(ctx, key)
		if err != nil {
			deliverycontext.Logger(ctx, m.logger).Warn("Rate limiter unavailable",
				slog.String("key", key),
				slog.Any("error", err),
			)

			return next(c)
		}

		if !decision.Allowed {
			if m.recorder != nil {
				m.recorder.IncRateLimited()
			}
			seconds := int(math.Ceil(decision.RetryAfter.Seconds()))
			if seconds < 1 {
				seconds = 1
			}
			c.Response().Header().Set(echo.HeaderRetryAfter, strconv.Itoa(seconds))

			return domainerrors.ErrTooManyRequests
		}

		return next(c)
	}
}
