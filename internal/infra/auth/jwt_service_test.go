package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo/config"
	"todo/internal/domain/service"
)

func newTestJWTService(t *testing.T) service.TokenService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc := newTestJWTService(t)

	token, err := svc.Issue("alice", time.Minute)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	assert.NoError(t, err)
	require.NotNil(t, claims)
	assert.Equal(t, "alice", claims.Subject)
}

func TestJWTService_DefaultTTLApplied(t *testing.T) {
	svc := newTestJWTService(t)

	token, err := svc.Issue("bob", svc.DefaultTTL())
	assert.NoError(t, err)

	claims, err := svc.Validate(token)
	require.NoError(t, err)

	// Default lifetime is 30 minutes; allow slack for test latency.
	remaining := time.Until(claims.ExpiresAt.Time)
	assert.Greater(t, remaining, 29*time.Minute)
	assert.LessOrEqual(t, remaining, 30*time.Minute)
}

func TestJWTService_ZeroTTLIsAlreadyExpired(t *testing.T) {
	svc := newTestJWTService(t)

	// The ttl is literal, so zero means the token expired at issuance.
	token, err := svc.Issue("bob", 0)
	assert.NoError(t, err)

	claims, err := svc.Validate(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := newTestJWTService(t)

	// A negative ttl produces a token that is already past its expiry.
	token, err := svc.Issue("carol", -time.Second)
	assert.NoError(t, err)

	claims, err := svc.Validate(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
}

func TestJWTService_MalformedToken(t *testing.T) {
	svc := newTestJWTService(t)

	claims, err := svc.Validate("clearly-not-a-jwt-token")
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
}

func TestJWTService_WrongSecret(t *testing.T) {
	svc := newTestJWTService(t)

	other := &config.Config{}
	other.SecretKey.Access = "a_completely_different_secret_key"
	otherSvc, err := NewJWTService(other)
	require.NoError(t, err)

	token, err := svc.Issue("dave", time.Minute)
	require.NoError(t, err)

	claims, err := otherSvc.Validate(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
}

func TestJWTService_EmptySecret(t *testing.T) {
	svc, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}

func TestJWTService_DefaultTTLFromConfig(t *testing.T) {
	cfg := &config.Config{
		Auth: &config.AuthConfig{AccessTokenTTL: time.Hour},
	}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, svc.DefaultTTL())
}
