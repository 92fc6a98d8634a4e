package postgres

import (
	"context"

	"todo/internal/domain/entity"
	"todo/internal/domain/repository"
	"todo/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// taskRepository implements the domain.TaskRepository interface using GORM.
type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository is the constructor for taskRepository.
// It returns the repository as a domain repository.TaskRepository interface, adhering to dependency inversion.
func NewTaskRepository(db *gorm.DB) repository.TaskRepository {
	return &taskRepository{db: db}
}

// Create persists a new task. A zero id lets the database sequence assign
// one; a caller-supplied id that collides with an existing row surfaces
// as ErrDuplicateTaskID.
func (repo *taskRepository) Create(ctx context.Context, task *entity.Task) error {
	taskM := fromTaskDomain(task)

	if err := repo.db.WithContext(ctx).Create(taskM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateTaskID
		}

		return errors.Wrap(err, "failed to create task")
	}

	task.ID = taskM.ID
	task.CreatedAt = taskM.CreatedAt
	task.UpdatedAt = taskM.UpdatedAt

	return nil
}

// List returns all tasks in insertion order.
func (repo *taskRepository) List(ctx context.Context) ([]*entity.Task, error) {
	var taskMs []*model.TaskModel
	if err := repo.db.WithContext(ctx).
		Order("created_at, id").
		Find(&taskMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list tasks")
	}

	tasks := make([]*entity.Task, 0, len(taskMs))
	for _, taskM := range taskMs {
		tasks = append(tasks, toTaskDomain(taskM))
	}

	return tasks, nil
}

// FindByID retrieves a single task by its identifier. Inside a
// transaction the row is locked (SELECT ... FOR UPDATE) so a concurrent
// update or delete cannot slip between the read and the write.
func (repo *taskRepository) FindByID(ctx context.Context, id int64) (*entity.Task, error) {
	var taskM model.TaskModel
	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("id = ?", id).
		First(&taskM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTaskNotFound
		}

		return nil, errors.Wrap(err, "failed to find task by id")
	}

	return toTaskDomain(&taskM), nil
}

// Update applies the patch as a read-modify-write. Run inside
// TransactionManager.Execute, the FindByID row lock holds until commit,
// so two concurrent updates cannot silently drop one's fields. Writing
// through a map forces zero values (completed=false, empty description)
// to be persisted instead of being skipped.
func (repo *taskRepository) Update(ctx context.Context, id int64, patch entity.TaskPatch) (*entity.Task, error) {
	task, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(task)

	result := repo.db.WithContext(ctx).
		Model(&model.TaskModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"title":       task.Title,
			"description": task.Description,
			"completed":   task.Completed,
		})
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to update task")
	}

	return repo.FindByID(ctx, id)
}

// Delete removes a task and returns the removed record.
func (repo *taskRepository) Delete(ctx context.Context, id int64) (*entity.Task, error) {
	task, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.TaskModel{}).Error; err != nil {
		return nil, errors.Wrap(err, "failed to delete task")
	}

	return task, nil
}

// toTaskDomain maps the persistence model back to a pure domain entity.
func toTaskDomain(taskM *model.TaskModel) *entity.Task {
	return &entity.Task{
		ID:          taskM.ID,
		Title:       taskM.Title,
		Description: taskM.Description,
		Completed:   taskM.Completed,
		CreatedAt:   taskM.CreatedAt,
		UpdatedAt:   taskM.UpdatedAt,
	}
}

// fromTaskDomain maps a pure domain entity to a GORM persistence model.
func fromTaskDomain(task *entity.Task) *model.TaskModel {
	return &model.TaskModel{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
	}
}
