// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Task is the unit of work tracked by the system.
type Task struct {
	ID          int64     // Unique identifier within the task collection. Assigned by the store when zero on creation.
	Title       string    // Short, non-empty summary of the task.
	Description string    // Optional free-form details.
	Completed   bool      // Whether the task is done. Defaults to false.
	CreatedAt   time.Time // Timestamp of when this task was created.
	UpdatedAt   time.Time // Timestamp of the last modification to this task.
}

// TaskPatch carries a partial update for a task. A nil field means
// "not supplied, keep the stored value"; a non-nil field is applied
// unconditionally, including zero values like an empty description
// or completed=false.
type TaskPatch struct {
	Title       *string
	Description *string
	Completed   *bool
}

// Apply overwrites the task's mutable fields with every supplied patch field.
func (p TaskPatch) Apply(task *Task) {
	if p.Title != nil {
		task.Title = *p.Title
	}
	if p.Description != nil {
		task.Description = *p.Description
	}
	if p.Completed != nil {
		task.Completed = *p.Completed
	}
}
