package model

import "time"

// User is an authenticated principal. Users are created at bootstrap (or via
// the CLI) and are not exposed through the public API.
type User struct {
	ID           uint      `gorm:"column:id;primaryKey"`
	Username     string    `gorm:"column:username;uniqueIndex;not null"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	Role         Role      `gorm:"column:role;type:varchar(16);not null"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (User) TableName() string {
	return "users"
}
