package memory

import (
	"context"

	"todo/internal/domain/repository"
)

// transactionManager satisfies the TransactionManager contract for the
// in-memory backend. The repositories serialize their own mutations, and
// each use-case operation is a single repository call, so Execute simply
// runs the function against the live repositories. There is no rollback.
type transactionManager struct {
	factory *repositoryFactory
}

// repositoryFactory hands out the process-wide repository instances.
type repositoryFactory struct {
	taskRepo repository.TaskRepository
	userRepo repository.UserRepository
}

// TaskRepo returns the shared task repository.
func (f *repositoryFactory) TaskRepo() repository.TaskRepository {
	return f.taskRepo
}

// UserRepo returns the shared user repository.
func (f *repositoryFactory) UserRepo() repository.UserRepository {
	return f.userRepo
}

// NewTransactionManager is the constructor for the in-memory transaction manager.
func NewTransactionManager(taskRepo repository.TaskRepository, userRepo repository.UserRepository) repository.TransactionManager {
	return &transactionManager{
		factory: &repositoryFactory{
			taskRepo: taskRepo,
			userRepo: userRepo,
		},
	}
}

// Execute runs the given function against the shared repositories.
func (tm *transactionManager) Execute(_ context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return fn(tm.factory)
}
