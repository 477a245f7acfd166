package service

import (
	"context"
	"time"
)

// RateDecision is the outcome of a rate limit check.
type RateDecision struct {
	Allowed bool
	// RetryAfter is how long the client should wait before retrying. Zero when allowed.
	RetryAfter time.Duration
}

// RateLimiter decides whether a client identified by key may perform one more request now.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (RateDecision, error)
}
