package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "todo/internal/delivery/context"
	"todo/internal/domain/entity"
	domainerrors "todo/internal/domain/errors"
	"todo/internal/domain/repository"
	"todo/internal/domain/service"
	"todo/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// dummyHash is compared against when the username does not exist, so a
// login attempt costs one bcrypt verification either way and response
// timing does not reveal whether the account exists.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account with a bcrypt-hashed password.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	if strings.TrimSpace(input.Username) == "" || input.Password == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "username and password are required")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	user := &entity.User{
		Username:     input.Username,
		PasswordHash: hashedPassword,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.UserRepo().Create(ctx, user); err != nil {
			if errors.Is(err, repository.ErrDuplicateUsername) {
				return domainerrors.ErrUserAlreadyExists.WrapMessage("username already registered")
			}

			return errors.Wrap(err, "failed to create user")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("User registered", slog.String("username", user.Username))

	return &usecase.RegisterOutput{Username: user.Username}, nil
}

// Login verifies the credentials and issues a signed bearer token.
// Unknown usernames and wrong passwords produce the same error; nothing
// in the response or its timing says which one happened.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.UserRepo().FindByUsername(ctx, input.Username)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return nil
			}

			return errors.Wrap(err, "failed to find user")
		}
		user = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to look up user during login", slog.Any("error", err))

		return nil, err
	}

	if user == nil {
		srv.hasher.Check(input.Password, dummyHash)
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login rejected")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login rejected")
	}

	ttl := srv.tokenService.DefaultTTL()

	token, err := srv.tokenService.Issue(user.Username, ttl)
	if err != nil {
		srv.log(ctx).Error("Failed to sign token", slog.String("username", user.Username), slog.Any("error", err))

		return nil, domainerrors.ErrTokenSigningFailed.WrapMessage("failed to issue token")
	}

	srv.log(ctx).Info("User logged in", slog.String("username", user.Username))

	return &usecase.LoginOutput{
		AccessToken: token,
		ExpiresIn:   int64(ttl.Seconds()),
	}, nil
}

// CurrentUser decodes the bearer token and resolves its subject to the
// registered account it was issued for.
func (srv *authService) CurrentUser(ctx context.Context, token string) (*entity.User, error) {
	claims, err := srv.tokenService.Validate(token)
	if err != nil {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("token validation failed")
	}

	var user *entity.User

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		user, err = repoFactory.UserRepo().FindByUsername(ctx, claims.Subject)
		if errors.Is(err, repository.ErrUserNotFound) {
			// The token outlived its account.
			return domainerrors.ErrInvalidToken.WrapMessage("token subject no longer exists")
		}

		return errors.Wrap(err, "failed to resolve token subject")
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to resolve current user", slog.Any("error", err))

		return nil, err
	}

	return user, nil
}
