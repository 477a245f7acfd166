package middleware

import (
	"strings"

	domainerrors "voll/internal/domain/errors"
	"voll/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate.
const (
	ContextKeySubject = "subject"
	ContextKeyRoles   = "roles"
)

// AuthMiddleware validates bearer tokens on protected routes.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate rejects requests without a valid "Bearer" access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		scheme, tokenString, found := strings.Cut(authHeader, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(tokenString) == "" {
			return domainerrors.ErrUnauthorized
		}

		claims, err := m.tokenSvc.ValidateToken(strings.TrimSpace(tokenString))
		if err != nil {
			return domainerrors.ErrUnauthorized
		}

		c.Set(ContextKeySubject, claims.Subject)
		c.Set(ContextKeyRoles, claims.Roles)

		return next(c)
	}
}
