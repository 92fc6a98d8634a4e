package repository

import (
	"context"
	"errors"

	"todo/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicateUsername is a domain-specific error returned when a username is already registered.
var ErrDuplicateUsername = errors.New("username already exists")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// Create persists a new user. Returns ErrDuplicateUsername if the
	// username is already taken (case-sensitive exact match).
	Create(ctx context.Context, user *entity.User) error

	// FindByUsername retrieves a single user by their username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
}
