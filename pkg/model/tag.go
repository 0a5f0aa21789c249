package model

import "time"

// Tag is a normalized taxonomy entity with a many-to-many relation to posts.
type Tag struct {
	ID        uint      `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name;uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Tag) TableName() string {
	return "tags"
}
