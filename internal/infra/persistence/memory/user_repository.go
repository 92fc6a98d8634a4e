package memory

import (
	"context"
	"sync"
	"time"

	"todo/internal/domain/entity"
	"todo/internal/domain/repository"
)

// userRepository keeps users in a map keyed by username.
type userRepository struct {
	mu    sync.RWMutex
	users map[string]*entity.User
}

// NewUserRepository is the constructor for the in-memory userRepository.
func NewUserRepository() repository.UserRepository {
	return &userRepository{
		users: make(map[string]*entity.User),
	}
}

// Create persists a new user. Usernames are matched case-sensitively, so
// "Alice" and "alice" are distinct accounts.
func (repo *userRepository) Create(_ context.Context, user *entity.User) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, exists := repo.users[user.Username]; exists {
		return repository.ErrDuplicateUsername
	}

	user.CreatedAt = time.Now()
	stored := *user
	repo.users[user.Username] = &stored

	return nil
}

// FindByUsername retrieves a single user by their username.
func (repo *userRepository) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	stored, ok := repo.users[username]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	copied := *stored

	return &copied, nil
}
