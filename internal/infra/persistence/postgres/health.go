package postgres

import (
	"context"

	"voll/internal/domain/service"
	"voll/internal/errors"

	"gorm.io/gorm"
)

type healthCheck struct {
	db *gorm.DB
}

// NewHealthCheck reports whether the database answers a ping.
func NewHealthCheck(db *gorm.DB) service.HealthCheck {
	return &healthCheck{db: db}
}

func (h *healthCheck) Name() string { return "postgres" }

func (h *healthCheck) Check(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	return sqlDB.PingContext(ctx)
}
