package main

import (
	"context"
	"log/slog"
	"os"

	"todo/config"
	"todo/internal/delivery"
	"todo/internal/delivery/http"
	"todo/internal/delivery/http/middleware"
	"todo/internal/delivery/http/router/handler"
	"todo/internal/domain/repository"
	"todo/internal/errors"
	"todo/internal/infra/auth"
	logs "todo/internal/infra/log"
	"todo/internal/infra/persistence/memory"
	"todo/internal/infra/persistence/postgres"
	"todo/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

type persistenceParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// persistence bundles the repositories and transaction manager for the
// backend the configuration selects.
type persistence struct {
	taskRepo  repository.TaskRepository
	userRepo  repository.UserRepository
	txManager repository.TransactionManager
}

// newPersistence builds the storage backend named by storage.driver.
// "memory" keeps everything in-process; "postgres" connects via GORM.
func newPersistence(params persistenceParams) (*persistence, error) {
	switch params.Config.Storage.Driver {
	case "memory":
		taskRepo := memory.NewTaskRepository()
		userRepo := memory.NewUserRepository()

		return &persistence{
			taskRepo:  taskRepo,
			userRepo:  userRepo,
			txManager: memory.NewTransactionManager(taskRepo, userRepo),
		}, nil
	case "postgres":
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, err
		}

		return &persistence{
			taskRepo:  postgres.NewTaskRepository(db),
			userRepo:  postgres.NewUserRepository(db),
			txManager: postgres.NewTransactionManager(db),
		}, nil
	default:
		return nil, errors.Errorf("unknown storage driver: %q", params.Config.Storage.Driver)
	}
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newPersistence,
			func(p *persistence) repository.TaskRepository { return p.taskRepo },
			func(p *persistence) repository.UserRepository { return p.userRepo },
			func(p *persistence) repository.TransactionManager { return p.txManager },
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewTaskService,
			impl.NewAuthService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewRequestIDMiddleware,
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewTaskHandler,
			handler.NewAuthHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
