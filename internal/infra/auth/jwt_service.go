// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"todo/config"
	"todo/internal/domain/service"
	"todo/internal/errors"
)

const defaultAccessTTL = 30 * time.Minute

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret    []byte        // Secret key for signing access tokens.
	accessTTL time.Duration // Lifetime applied when the caller does not override it.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	accessTTL := defaultAccessTTL
	if cfg.Auth != nil && cfg.Auth.AccessTokenTTL != 0 {
		accessTTL = cfg.Auth.AccessTokenTTL
	}

	return &jwtService{
		secret:    []byte(cfg.SecretKey.Access),
		accessTTL: accessTTL,
	}, nil
}

// Issue creates a signed HS256 token with {sub, iat, exp} claims. The
// ttl is taken literally; a zero ttl yields a token that is already
// expired. Callers wanting the configured lifetime pass DefaultTTL().
// A signing failure is surfaced as service.ErrTokenSigning so callers can
// tell "could not issue" apart from "issued but now invalid".
func (s *jwtService) Issue(subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(service.ErrTokenSigning, err.Error())
	}

	return signed, nil
}

// Validate checks the signature and expiry of a token string.
// Malformed tokens, wrong signatures and expired tokens all collapse into
// service.ErrTokenInvalid; the distinction must not leak to clients.
func (s *jwtService) Validate(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.WithStack(service.ErrTokenInvalid)
	}

	if claims.Subject == "" {
		return nil, errors.WithStack(service.ErrTokenInvalid)
	}

	return claims, nil
}

// DefaultTTL returns the configured default token lifetime.
func (s *jwtService) DefaultTTL() time.Duration {
	return s.accessTTL
}
