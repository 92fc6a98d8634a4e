// Package memory contains mutex-guarded in-memory implementations of the
// repository interfaces. It backs local development and tests, where a
// database is more machinery than the task collection needs.
package memory

import (
	"context"
	"sync"
	"time"

	"todo/internal/domain/entity"
	"todo/internal/domain/repository"
)

// taskRepository keeps tasks in a map keyed by id, with a separate slice
// holding insertion order so List never has to sort. Writers take the
// exclusive lock; readers share.
type taskRepository struct {
	mu     sync.RWMutex
	tasks  map[int64]*entity.Task
	order  []int64
	nextID int64
}

// NewTaskRepository is the constructor for the in-memory taskRepository.
func NewTaskRepository() repository.TaskRepository {
	return &taskRepository{
		tasks:  make(map[int64]*entity.Task),
		nextID: 1,
	}
}

// Create inserts a task, assigning the next free id when the caller left
// it zero. Caller-supplied ids must be unused.
func (repo *taskRepository) Create(_ context.Context, task *entity.Task) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if task.ID == 0 {
		task.ID = repo.nextID
	} else if _, exists := repo.tasks[task.ID]; exists {
		return repository.ErrDuplicateTaskID
	}
	if task.ID >= repo.nextID {
		repo.nextID = task.ID + 1
	}

	now := time.Now()
	task.CreatedAt = now
	task.UpdatedAt = now

	stored := *task
	repo.tasks[task.ID] = &stored
	repo.order = append(repo.order, task.ID)

	return nil
}

// List returns copies of all tasks in insertion order, so callers can
// never race a writer through a shared pointer.
func (repo *taskRepository) List(_ context.Context) ([]*entity.Task, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	tasks := make([]*entity.Task, 0, len(repo.order))
	for _, id := range repo.order {
		copied := *repo.tasks[id]
		tasks = append(tasks, &copied)
	}

	return tasks, nil
}

// FindByID retrieves a single task by its identifier.
func (repo *taskRepository) FindByID(_ context.Context, id int64) (*entity.Task, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	stored, ok := repo.tasks[id]
	if !ok {
		return nil, repository.ErrTaskNotFound
	}

	copied := *stored

	return &copied, nil
}

// Update applies the patch to an existing task under the exclusive lock,
// so the read-modify-write cannot interleave with another writer.
func (repo *taskRepository) Update(_ context.Context, id int64, patch entity.TaskPatch) (*entity.Task, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	stored, ok := repo.tasks[id]
	if !ok {
		return nil, repository.ErrTaskNotFound
	}

	patch.Apply(stored)
	stored.UpdatedAt = time.Now()

	copied := *stored

	return &copied, nil
}

// Delete removes a task and returns the removed record.
func (repo *taskRepository) Delete(_ context.Context, id int64) (*entity.Task, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	stored, ok := repo.tasks[id]
	if !ok {
		return nil, repository.ErrTaskNotFound
	}

	delete(repo.tasks, id)
	for i, orderedID := range repo.order {
		if orderedID == id {
			repo.order = append(repo.order[:i], repo.order[i+1:]...)

			break
		}
	}

	return stored, nil
}
