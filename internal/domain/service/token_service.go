package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenInvalid is returned by Validate for any token that fails
// verification: malformed, wrong signature, or expired. Callers are not
// told which, on purpose.
var ErrTokenInvalid = errors.New("token is invalid or expired")

// ErrTokenSigning is returned by Issue when the token could not be
// signed. This is an infrastructure fault, distinct from a token that
// was issued and later turned invalid.
var ErrTokenSigning = errors.New("token signing failed")

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a signed token for the given subject, expiring ttl
	// from now. The ttl is literal; a zero ttl produces an already
	// expired token. DefaultTTL supplies the configured lifetime.
	Issue(subject string, ttl time.Duration) (string, error)

	// Validate checks the signature and expiry of a token string and
	// returns its claims. Any failure yields ErrTokenInvalid.
	Validate(tokenString string) (*Claims, error)

	// DefaultTTL returns the configured lifetime applied when Issue is
	// called with a zero ttl.
	DefaultTTL() time.Duration
}
