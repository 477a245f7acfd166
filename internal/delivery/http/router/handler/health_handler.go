package handler

import (
	"context"
	"net/http"
	"time"

	"voll/internal/delivery/http/response"
	"voll/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const healthCheckTimeout = 2 * time.Second

// HealthStatus is the body of GET /health.
type HealthStatus struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// HealthHandler reports liveness plus the state of each backing dependency.
type HealthHandler struct {
	checks []service.HealthCheck
}

// NewHealthHandler drops nil checks, which stand for dependencies that are not configured.
func NewHealthHandler(checks []service.HealthCheck) *HealthHandler {
	active := make([]service.HealthCheck, 0, len(checks))
	for _, check := range checks {
		if check != nil {
			active = append(active, check)
		}
	}

	return &HealthHandler{checks: active}
}

// Check answers 200 when every dependency responds and 503 otherwise.
func (h *HealthHandler) Check(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	status := HealthStatus{Status: "ok"}
	code := http.StatusOK
	if len(h.checks) > 0 {
		status.Checks = make(map[string]string, len(h.checks))
	}

	for _, check := range h.checks {
		if err := check.Check(ctx); err != nil {
			status.Checks[check.Name()] = "down"
			status.Status = "degraded"
			code = http.StatusServiceUnavailable

			continue
		}
		status.Checks[check.Name()] = "ok"
	}

	return response.Success(c, code, status)
}
