// Package context carries the request ID and the request-scoped logger
// from the HTTP edge down to services and repositories.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

type ctxKey int

const (
	requestIDKey ctxKey = iota
	loggerKey
)

// echoRequestIDKey is where the request ID is kept on echo.Context.
const echoRequestIDKey = "request_id"

// HeaderXRequestID is the HTTP header carrying the request ID.
const HeaderXRequestID = echo.HeaderXRequestID

// WithRequest returns a context carrying the request ID and its logger.
func WithRequest(ctx context.Context, requestID string, logger *slog.Logger) context.Context {
	ctx = context.WithValue(ctx, requestIDKey, requestID)
	if logger != nil {
		ctx = context.WithValue(ctx, loggerKey, logger)
	}

	return ctx
}

// RequestID returns the request ID stored in ctx, or "" outside a request.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

// SetEchoRequestID stores the request ID on the echo context.
func SetEchoRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestIDKey, requestID)
}

// EchoRequestID returns the ID assigned to the request being served.
// It is "" when no request ID middleware ran.
func EchoRequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestIDKey).(string); ok && id != "" {
		return id
	}

	return RequestID(c.Request().Context())
}

// Logger returns the request-scoped logger from ctx, or fallback when there is none.
func Logger(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}
