// Package model contains the GORM persistence models mirroring the database schema.
package model

import "time"

// TaskModel mirrors the 'tasks' table. Listing orders by created_at with
// id as tiebreaker, which preserves insertion order even when clients
// supply their own ids.
type TaskModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Title       string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text"`
	Completed   bool   `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (TaskModel) TableName() string {
	return "tasks"
}
