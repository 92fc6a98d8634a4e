package impl

import (
	"io"
	"log/slog"

	"todo/internal/domain/repository"
	"todo/internal/infra/persistence/memory"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newMemoryPersistence wires the in-memory repositories behind a
// transaction manager, the same shape production uses.
func newMemoryPersistence() (repository.TransactionManager, repository.TaskRepository, repository.UserRepository) {
	taskRepo := memory.NewTaskRepository()
	userRepo := memory.NewUserRepository()

	return memory.NewTransactionManager(taskRepo, userRepo), taskRepo, userRepo
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
