// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "todo/internal/delivery/context"
	"todo/internal/domain/entity"
	domainerrors "todo/internal/domain/errors"
	"todo/internal/domain/repository"
	"todo/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// taskService implements the TaskUsecase interface.
type taskService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// TaskServiceParams holds dependencies for taskService, injected by Fx.
type TaskServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewTaskService is the constructor for taskService. It receives all dependencies as interfaces.
func NewTaskService(params TaskServiceParams) usecase.TaskUsecase {
	return &taskService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *taskService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateTask inserts a new task into the collection.
func (srv *taskService) CreateTask(ctx context.Context, input *usecase.CreateTaskInput) (*usecase.TaskOutput, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "task title must not be empty")
	}

	task := &entity.Task{
		ID:          input.ID,
		Title:       input.Title,
		Description: input.Description,
		Completed:   input.Completed,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.TaskRepo().Create(ctx, task); err != nil {
			if errors.Is(err, repository.ErrDuplicateTaskID) {
				return domainerrors.ErrTaskAlreadyExists.WrapMessage("task id already taken")
			}

			return errors.Wrap(err, "failed to create task")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create task", slog.Int64("id", input.ID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Task created", slog.Int64("id", task.ID))

	return &usecase.TaskOutput{Task: task}, nil
}

// ListTasks returns all tasks in insertion order.
func (srv *taskService) ListTasks(ctx context.Context) (*usecase.TaskListOutput, error) {
	var tasks []*entity.Task

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		tasks, err = repoFactory.TaskRepo().List(ctx)

		return errors.Wrap(err, "failed to list tasks")
	})
	if err != nil {
		srv.log(ctx).Error("Failed to list tasks", slog.Any("error", err))

		return nil, err
	}

	return &usecase.TaskListOutput{Tasks: tasks}, nil
}

// UpdateTask applies a patch to an existing task. Every supplied field is
// written, including zero values; absent fields keep their stored value.
func (srv *taskService) UpdateTask(ctx context.Context, id int64, patch entity.TaskPatch) (*usecase.TaskOutput, error) {
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "task title must not be empty")
	}

	var task *entity.Task

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		task, err = repoFactory.TaskRepo().Update(ctx, id, patch)
		if errors.Is(err, repository.ErrTaskNotFound) {
			return domainerrors.ErrTaskNotFound.WrapMessage("cannot update missing task")
		}

		return errors.Wrap(err, "failed to update task")
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update task", slog.Int64("id", id), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Task updated", slog.Int64("id", id))

	return &usecase.TaskOutput{Task: task}, nil
}

// DeleteTask removes a task and returns the removed record.
func (srv *taskService) DeleteTask(ctx context.Context, id int64) (*usecase.TaskOutput, error) {
	var task *entity.Task

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		task, err = repoFactory.TaskRepo().Delete(ctx, id)
		if errors.Is(err, repository.ErrTaskNotFound) {
			return domainerrors.ErrTaskNotFound.WrapMessage("cannot delete missing task")
		}

		return errors.Wrap(err, "failed to delete task")
	})
	if err != nil {
		srv.log(ctx).Error("Failed to delete task", slog.Int64("id", id), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Task deleted", slog.Int64("id", id))

	return &usecase.TaskOutput{Task: task}, nil
}
