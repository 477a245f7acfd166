// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"voll/config"
	"voll/internal/domain/service"
	"voll/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const defaultIssuer = "voll"

// jwtService is a concrete implementation of the TokenService interface using HS256 signed JWTs.
type jwtService struct {
	secret []byte
	issuer string
}

// NewJWTService is the constructor for jwtService.
// A secret is mandatory only when authentication is enabled.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	authCfg := cfg.Auth
	if authCfg == nil {
		authCfg = &config.AuthConfig{}
	}
	if authCfg.Enabled && authCfg.Secret == "" {
		return nil, errors.New("auth.secret must be provided when auth is enabled")
	}

	issuer := authCfg.Issuer
	if issuer == "" {
		issuer = defaultIssuer
	}

	return &jwtService{
		secret: []byte(authCfg.Secret),
		issuer: issuer,
	}, nil
}

// GenerateToken creates a signed access token for the given subject and roles.
func (s *jwtService) GenerateToken(subject string, roles []string, ttl time.Duration) (string, error) {
	if len(s.secret) == 0 {
		return "", errors.New("no signing secret configured")
	}

	now := time.Now()
	claims := service.Claims{
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// ValidateToken verifies signature, issuer and expiry, and returns the claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	if len(s.secret) == 0 {
		return nil, errors.New("no signing secret configured")
	}

	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, errors.Wrap(err, "invalid token")
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
