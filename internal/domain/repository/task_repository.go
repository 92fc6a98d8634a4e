// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"todo/internal/domain/entity"
)

// ErrTaskNotFound is a domain-specific error returned when a task is not found.
var ErrTaskNotFound = errors.New("task not found")

// ErrDuplicateTaskID is a domain-specific error returned when a task id is already taken.
var ErrDuplicateTaskID = errors.New("task id already exists")

// TaskRepository defines the standard operations for task persistence.
// The application layer will depend on this interface, not the concrete implementation.
type TaskRepository interface {
	// Create persists a new task. A zero task.ID asks the store to assign
	// the next free identifier; a non-zero ID must be unused or
	// ErrDuplicateTaskID is returned. The entity is updated in place
	// with the assigned ID and timestamps.
	Create(ctx context.Context, task *entity.Task) error

	// List returns all tasks in insertion order.
	List(ctx context.Context) ([]*entity.Task, error)

	// FindByID retrieves a single task by its identifier.
	FindByID(ctx context.Context, id int64) (*entity.Task, error)

	// Update applies every supplied patch field to the task with the
	// given id as a single atomic read-modify-write, and returns the
	// updated record. Supplied zero values (completed=false, empty
	// description) are written, never skipped.
	Update(ctx context.Context, id int64, patch entity.TaskPatch) (*entity.Task, error)

	// Delete removes a task and returns the removed record.
	Delete(ctx context.Context, id int64) (*entity.Task, error)
}
