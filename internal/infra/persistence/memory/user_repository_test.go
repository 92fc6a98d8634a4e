package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo/internal/domain/entity"
	"todo/internal/domain/repository"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	user := &entity.User{Username: "alice", PasswordHash: "$2a$10$fakehash"}
	require.NoError(t, repo.Create(ctx, user))
	assert.False(t, user.CreatedAt.IsZero())

	found, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", found.Username)
	assert.Equal(t, "$2a$10$fakehash", found.PasswordHash)
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.User{Username: "bob", PasswordHash: "first-hash"}))

	err := repo.Create(ctx, &entity.User{Username: "bob", PasswordHash: "second-hash"})
	assert.ErrorIs(t, err, repository.ErrDuplicateUsername)

	// The first-registered hash is retained.
	found, err := repo.FindByUsername(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, "first-hash", found.PasswordHash)
}

func TestUserRepository_UsernameIsCaseSensitive(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.User{Username: "Carol", PasswordHash: "hash"}))

	_, err := repo.FindByUsername(ctx, "carol")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_FindMissingUser(t *testing.T) {
	repo := NewUserRepository()

	found, err := repo.FindByUsername(context.Background(), "nobody")
	assert.Nil(t, found)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}
