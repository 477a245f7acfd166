package service

import "context"

// HealthCheck probes one backing dependency.
type HealthCheck interface {
	Name() string
	Check(ctx context.Context) error
}
