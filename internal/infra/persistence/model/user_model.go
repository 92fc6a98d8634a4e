package model

import "time"

// UserModel mirrors the 'users' table. The username is the primary key;
// only the bcrypt hash of the password is ever persisted.
type UserModel struct {
	Username     string `gorm:"type:varchar(255);primaryKey"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
