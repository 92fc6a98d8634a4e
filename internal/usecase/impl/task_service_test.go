package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo/internal/domain/entity"
	domainerrors "todo/internal/domain/errors"
	"todo/internal/usecase"
)

func createTestTaskService(t *testing.T) usecase.TaskUsecase {
	t.Helper()

	txManager, _, _ := newMemoryPersistence()

	return NewTaskService(TaskServiceParams{
		TxManager: txManager,
		Logger:    newDiscardLogger(),
	})
}

func TestTaskService_CreateTask_Success(t *testing.T) {
	service := createTestTaskService(t)
	ctx := context.Background()

	output, err := service.CreateTask(ctx, &usecase.CreateTaskInput{Title: "buy milk"})
	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, int64(1), output.Task.ID)
	assert.Equal(t, "buy milk", output.Task.Title)
	assert.Empty(t, output.Task.Description)
	assert.False(t, output.Task.Completed)
}

func TestTaskService_CreateTask_EmptyTitle(t *testing.T) {
	service := createTestTaskService(t)

	output, err := service.CreateTask(context.Background(), &usecase.CreateTaskInput{Title: "   "})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestTaskService_CreateTask_DuplicateID(t *testing.T) {
	service := createTestTaskService(t)
	ctx := context.Background()

	_, err := service.CreateTask(ctx, &usecase.CreateTaskInput{ID: 1, Title: "first"})
	require.NoError(t, err)

	output, err := service.CreateTask(ctx, &usecase.CreateTaskInput{ID: 1, Title: "second"})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrTaskAlreadyExists)
}

func TestTaskService_ListTasks_InCreationOrder(t *testing.T) {
	service := createTestTaskService(t)
	ctx := context.Background()

	titles := []string{"first", "second", "third"}
	for _, title := range titles {
		_, err := service.CreateTask(ctx, &usecase.CreateTaskInput{Title: title})
		require.NoError(t, err)
	}

	output, err := service.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, output.Tasks, 3)
	for i, title := range titles {
		assert.Equal(t, title, output.Tasks[i].Title)
	}
}

func TestTaskService_UpdateTask_AppliesZeroValues(t *testing.T) {
	service := createTestTaskService(t)
	ctx := context.Background()

	created, err := service.CreateTask(ctx, &usecase.CreateTaskInput{
		Title:       "write report",
		Description: "quarterly numbers",
		Completed:   true,
	})
	require.NoError(t, err)

	// Supplied falsy values must be written, not skipped.
	output, err := service.UpdateTask(ctx, created.Task.ID, entity.TaskPatch{
		Description: strPtr(""),
		Completed:   boolPtr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, "write report", output.Task.Title)
	assert.Empty(t, output.Task.Description)
	assert.False(t, output.Task.Completed)
}

func TestTaskService_UpdateTask_NotFound(t *testing.T) {
	service := createTestTaskService(t)
	ctx := context.Background()

	output, err := service.UpdateTask(ctx, 404, entity.TaskPatch{Title: strPtr("ghost")})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrTaskNotFound)

	// The failed update must not have created anything.
	listed, err := service.ListTasks(ctx)
	require.NoError(t, err)
	assert.Empty(t, listed.Tasks)
}

func TestTaskService_UpdateTask_EmptyTitleRejected(t *testing.T) {
	service := createTestTaskService(t)
	ctx := context.Background()

	created, err := service.CreateTask(ctx, &usecase.CreateTaskInput{Title: "keep me"})
	require.NoError(t, err)

	output, err := service.UpdateTask(ctx, created.Task.ID, entity.TaskPatch{Title: strPtr("")})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestTaskService_DeleteTask_Idempotence(t *testing.T) {
	service := createTestTaskService(t)
	ctx := context.Background()

	created, err := service.CreateTask(ctx, &usecase.CreateTaskInput{Title: "disposable"})
	require.NoError(t, err)

	output, err := service.DeleteTask(ctx, created.Task.ID)
	require.NoError(t, err)
	assert.Equal(t, "disposable", output.Task.Title)

	// Deleting the same id again fails with not found.
	output, err = service.DeleteTask(ctx, created.Task.ID)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrTaskNotFound)
}

func TestTaskService_BuyMilkLifecycle(t *testing.T) {
	service := createTestTaskService(t)
	ctx := context.Background()

	created, err := service.CreateTask(ctx, &usecase.CreateTaskInput{ID: 1, Title: "buy milk"})
	require.NoError(t, err)

	listed, err := service.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, listed.Tasks, 1)
	assert.Equal(t, int64(1), listed.Tasks[0].ID)
	assert.Equal(t, "buy milk", listed.Tasks[0].Title)
	assert.Empty(t, listed.Tasks[0].Description)
	assert.False(t, listed.Tasks[0].Completed)

	updated, err := service.UpdateTask(ctx, 1, entity.TaskPatch{
		Title:     strPtr("buy milk"),
		Completed: boolPtr(true),
	})
	require.NoError(t, err)
	assert.True(t, updated.Task.Completed)

	deleted, err := service.DeleteTask(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, created.Task.ID, deleted.Task.ID)

	listed, err = service.ListTasks(ctx)
	require.NoError(t, err)
	assert.Empty(t, listed.Tasks)
}
