// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"todo/internal/delivery/http/response"
	"todo/internal/domain/entity"
	domainerrors "todo/internal/domain/errors"
	"todo/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TaskHandler holds dependencies for task-related handlers.
type TaskHandler struct {
	uc     usecase.TaskUsecase
	logger *slog.Logger
}

// NewTaskHandler is the constructor for TaskHandler, injected by Fx.
func NewTaskHandler(uc usecase.TaskUsecase, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateTaskRequest is the payload for creating a task. A zero or absent
// id asks the store to assign one.
type CreateTaskRequest struct {
	ID          int64  `json:"id" validate:"gte=0"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// UpdateTaskRequest is the payload for updating a task. Only the supplied
// fields change; supplied zero values are applied, not skipped.
type UpdateTaskRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

// TaskResponse is the wire representation of a task.
type TaskResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toTaskResponse(task *entity.Task) *TaskResponse {
	return &TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

// CreateTask handles the task creation request.
func (h *TaskHandler) CreateTask(c echo.Context) error {
	var req CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid task input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.CreateTask(c.Request().Context(), &usecase.CreateTaskInput{
		ID:          req.ID,
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toTaskResponse(output.Task), "Task created successfully")
}

// ListTasks handles the task listing request. Tasks come back in the
// order they were created.
func (h *TaskHandler) ListTasks(c echo.Context) error {
	output, err := h.uc.ListTasks(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	tasks := make([]*TaskResponse, 0, len(output.Tasks))
	for _, task := range output.Tasks {
		tasks = append(tasks, toTaskResponse(task))
	}

	return response.Success(c, http.StatusOK, tasks, "Tasks retrieved successfully")
}

// UpdateTask handles the task update request.
func (h *TaskHandler) UpdateTask(c echo.Context) error {
	id, err := parseTaskID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid task input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.UpdateTask(c.Request().Context(), id, entity.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTaskResponse(output.Task), "Task updated successfully")
}

// DeleteTask handles the task deletion request and returns the removed task.
func (h *TaskHandler) DeleteTask(c echo.Context) error {
	id, err := parseTaskID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.DeleteTask(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTaskResponse(output.Task), "Task deleted successfully")
}

func parseTaskID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WithDetails("task id must be an integer")
	}

	return id, nil
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
