package ratelimit

import (
	"context"
	"strconv"
	"strings"
	"time"

	"voll/internal/domain/service"
	"voll/internal/errors"

	goredis "github.com/redis/go-redis/v9"
)

const defaultRedisPrefix = "voll:ratelimit"

// RedisStore is a fixed window counter per key shared by every instance through Redis.
type RedisStore struct {
	rdb    goredis.Cmdable
	prefix string
	limit  int64
	window time.Duration
	now    func() time.Time
}

// RedisOption configures a RedisStore.
type RedisOption func(*RedisStore)

// WithRedisPrefix sets the key namespace.
func WithRedisPrefix(prefix string) RedisOption {
	return func(s *RedisStore) {
		if p := strings.Trim(prefix, ":"); p != "" {
			s.prefix = p
		}
	}
}

// NewRedisStore allows limit requests per key in each window.
func NewRedisStore(rdb goredis.Cmdable, limit int, window time.Duration, opts ...RedisOption) *RedisStore {
	if window <= 0 {
		window = time.Second
	}
	s := &RedisStore{
		rdb:    rdb,
		prefix: defaultRedisPrefix,
		limit:  int64(limit),
		window: window,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Allow implements service.RateLimiter.
func (s *RedisStore) Allow(ctx context.Context, key string) (service.RateDecision, error) {
	now := s.now()
	slot := now.UnixNano() / int64(s.window)
	windowEnd := time.Unix(0, (slot+1)*int64(s.window))
	redisKey := s.prefix + ":" + key + ":" + strconv.FormatInt(slot, 10)

	pipe := s.rdb.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, s.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return service.RateDecision{}, errors.Wrap(err, "rate limit counter update failed")
	}

	if incr.Val() > s.limit {
		retryAfter := windowEnd.Sub(now)
		if retryAfter <= 0 {
			retryAfter = s.window
		}

		return service.RateDecision{Allowed: false, RetryAfter: retryAfter}, nil
	}

	return service.RateDecision{Allowed: true}, nil
}
