package middleware

import (
	"log/slog"

	deliverycontext "voll/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// maxRequestIDLength bounds client supplied IDs before they reach logs and events.
const maxRequestIDLength = 128

// RequestIDMiddleware propagates or generates the X-Request-Id of each request
// and attaches a request-scoped logger to its context.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process keeps a well-formed client ID, otherwise generates one, and echoes it back.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if !isAcceptableRequestID(requestID) {
			requestID = uuid.New().String()
		}

		deliverycontext.SetEchoRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		reqLogger := m.logger.With(slog.String("request_id", requestID))

		ctx := deliverycontext.WithRequest(c.Request().Context(), requestID, reqLogger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

func isAcceptableRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		// printable ASCII only
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}

	return true
}
