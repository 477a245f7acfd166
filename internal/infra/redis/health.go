package redis

import (
	"context"

	"voll/internal/domain/service"

	goredis "github.com/redis/go-redis/v9"
)

type healthCheck struct {
	client *goredis.Client
}

// NewHealthCheck reports whether Redis answers a ping. It returns nil when Redis is not configured.
func NewHealthCheck(client *goredis.Client) service.HealthCheck {
	if client == nil {
		return nil
	}

	return &healthCheck{client: client}
}

func (h *healthCheck) Name() string { return "redis" }

func (h *healthCheck) Check(ctx context.Context) error {
	return h.client.Ping(ctx).Err()
}
