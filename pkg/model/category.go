package model

import "time"

// Category is a normalized taxonomy entity. Categories are created lazily on
// first reference and shared by every post that names them.
type Category struct {
	ID        uint      `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name;uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Category) TableName() string {
	return "categories"
}
