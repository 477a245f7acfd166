package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by access tokens.
type Claims struct {
	Roles []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// TokenService issues and validates access tokens for the registry API.
// Tokens are issued out of band (operators, other services); the API only validates them.
type TokenService interface {
	// GenerateToken creates a signed access token for the given subject.
	GenerateToken(subject string, roles []string, ttl time.Duration) (string, error)

	// ValidateToken parses and verifies a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
