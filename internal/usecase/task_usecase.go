// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"todo/internal/domain/entity"
)

// --- Input DTOs ---

// CreateTaskInput defines the data required to create a new task.
// A zero ID asks the store to assign one.
type CreateTaskInput struct {
	ID          int64
	Title       string
	Description string
	Completed   bool
}

// --- Output DTOs ---

// TaskOutput returns a single task.
type TaskOutput struct {
	Task *entity.Task
}

// TaskListOutput returns all tasks in insertion order.
type TaskListOutput struct {
	Tasks []*entity.Task
}

// TaskUsecase defines the interface for task-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type TaskUsecase interface {
	CreateTask(ctx context.Context, input *CreateTaskInput) (*TaskOutput, error)
	ListTasks(ctx context.Context) (*TaskListOutput, error)
	UpdateTask(ctx context.Context, id int64, patch entity.TaskPatch) (*TaskOutput, error)
	DeleteTask(ctx context.Context, id int64) (*TaskOutput, error)
}
