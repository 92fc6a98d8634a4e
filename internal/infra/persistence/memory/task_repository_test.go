package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo/internal/domain/entity"
	"todo/internal/domain/repository"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestTaskRepository_CreateAssignsIDs(t *testing.T) {
	repo := NewTaskRepository()
	ctx := context.Background()

	first := &entity.Task{Title: "buy milk"}
	require.NoError(t, repo.Create(ctx, first))
	assert.Equal(t, int64(1), first.ID)
	assert.False(t, first.CreatedAt.IsZero())

	second := &entity.Task{Title: "walk dog"}
	require.NoError(t, repo.Create(ctx, second))
	assert.Equal(t, int64(2), second.ID)
}

func TestTaskRepository_CreateWithClientSuppliedID(t *testing.T) {
	repo := NewTaskRepository()
	ctx := context.Background()

	task := &entity.Task{ID: 42, Title: "explicit id"}
	require.NoError(t, repo.Create(ctx, task))

	// Generated ids continue past the highest client-supplied one.
	next := &entity.Task{Title: "generated id"}
	require.NoError(t, repo.Create(ctx, next))
	assert.Equal(t, int64(43), next.ID)
}

func TestTaskRepository_CreateDuplicateID(t *testing.T) {
	repo := NewTaskRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.Task{ID: 7, Title: "first"}))

	err := repo.Create(ctx, &entity.Task{ID: 7, Title: "second"})
	assert.ErrorIs(t, err, repository.ErrDuplicateTaskID)

	// Store keeps only the first task.
	tasks, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "first", tasks[0].Title)
}

func TestTaskRepository_ListPreservesInsertionOrder(t *testing.T) {
	repo := NewTaskRepository()
	ctx := context.Background()

	// Out-of-order client ids must not change list order.
	require.NoError(t, repo.Create(ctx, &entity.Task{ID: 30, Title: "third id, first in"}))
	require.NoError(t, repo.Create(ctx, &entity.Task{ID: 10, Title: "first id, second in"}))
	require.NoError(t, repo.Create(ctx, &entity.Task{ID: 20, Title: "second id, third in"}))

	tasks, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, int64(30), tasks[0].ID)
	assert.Equal(t, int64(10), tasks[1].ID)
	assert.Equal(t, int64(20), tasks[2].ID)
}

func TestTaskRepository_UpdateAppliesZeroValues(t *testing.T) {
	repo := NewTaskRepository()
	ctx := context.Background()

	task := &entity.Task{Title: "write report", Description: "quarterly numbers", Completed: true}
	require.NoError(t, repo.Create(ctx, task))

	// completed=false and description="" are supplied and must be written.
	updated, err := repo.Update(ctx, task.ID, entity.TaskPatch{
		Description: strPtr(""),
		Completed:   boolPtr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, "write report", updated.Title)
	assert.Empty(t, updated.Description)
	assert.False(t, updated.Completed)
}

func TestTaskRepository_UpdateKeepsUnsuppliedFields(t *testing.T) {
	repo := NewTaskRepository()
	ctx := context.Background()

	task := &entity.Task{Title: "original", Description: "keep me"}
	require.NoError(t, repo.Create(ctx, task))

	updated, err := repo.Update(ctx, task.ID, entity.TaskPatch{Completed: boolPtr(true)})
	require.NoError(t, err)
	assert.Equal(t, "original", updated.Title)
	assert.Equal(t, "keep me", updated.Description)
	assert.True(t, updated.Completed)
}

func TestTaskRepository_UpdateMissingTask(t *testing.T) {
	repo := NewTaskRepository()

	updated, err := repo.Update(context.Background(), 99, entity.TaskPatch{Title: strPtr("ghost")})
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, repository.ErrTaskNotFound)

	// Update never silently creates a task.
	tasks, listErr := repo.List(context.Background())
	require.NoError(t, listErr)
	assert.Empty(t, tasks)
}

func TestTaskRepository_DeleteReturnsRemovedTask(t *testing.T) {
	repo := NewTaskRepository()
	ctx := context.Background()

	task := &entity.Task{Title: "disposable"}
	require.NoError(t, repo.Create(ctx, task))

	removed, err := repo.Delete(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "disposable", removed.Title)

	// Second delete on the same id fails with not found.
	_, err = repo.Delete(ctx, task.ID)
	assert.ErrorIs(t, err, repository.ErrTaskNotFound)

	tasks, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestTaskRepository_ListReturnsCopies(t *testing.T) {
	repo := NewTaskRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.Task{Title: "immutable"}))

	tasks, err := repo.List(ctx)
	require.NoError(t, err)
	tasks[0].Title = "mutated by caller"

	again, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "immutable", again[0].Title)
}

func TestTaskRepository_ConcurrentCreates(t *testing.T) {
	repo := NewTaskRepository()
	ctx := context.Background()

	const goroutines = 32
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for range goroutines {
		go func() {
			defer wg.Done()
			_ = repo.Create(ctx, &entity.Task{Title: "concurrent"})
		}()
	}
	wg.Wait()

	tasks, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, goroutines)

	// Assigned ids stay unique under contention.
	seen := make(map[int64]bool, goroutines)
	for _, task := range tasks {
		assert.False(t, seen[task.ID], "duplicate id %d", task.ID)
		seen[task.ID] = true
	}
}
