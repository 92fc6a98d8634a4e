package postgres

import (
	"context"

	"todo/internal/domain/entity"
	"todo/internal/domain/repository"
	"todo/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// Create persists a new user. The username primary key enforces
// uniqueness; a violation surfaces as ErrDuplicateUsername.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := &model.UserModel{
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
	}

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateUsername
		}

		return errors.Wrap(err, "failed to create user")
	}

	user.CreatedAt = userM.CreatedAt

	return nil
}

// FindByUsername retrieves a single user by their username (case-sensitive exact match).
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).
		Where("username = ?", username).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	return &entity.User{
		Username:     userM.Username,
		PasswordHash: userM.PasswordHash,
		CreatedAt:    userM.CreatedAt,
	}, nil
}
