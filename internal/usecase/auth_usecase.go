package usecase

import (
	"context"

	"todo/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Username string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account's public information.
type RegisterOutput struct {
	Username string
}

// LoginOutput returns the generated token after a successful login.
type LoginOutput struct {
	AccessToken string
	ExpiresIn   int64 // Token lifetime in seconds.
}

// AuthUsecase defines the interface for account and session operations.
type AuthUsecase interface {
	// Register creates a new account. Duplicate usernames fail with
	// ErrUserAlreadyExists.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login verifies credentials and issues a bearer token. An unknown
	// username and a wrong password both fail with the same
	// ErrInvalidCredentials, so callers cannot enumerate accounts.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// CurrentUser resolves a bearer token to the registered account it
	// was issued for. Any validation failure, or a subject that no
	// longer resolves to a user, yields ErrInvalidToken.
	CurrentUser(ctx context.Context, token string) (*entity.User, error)
}
