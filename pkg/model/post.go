package model

import (
	"sort"
	"time"
)

// Post is a blog article. The slug is derived from the title at creation time
// and never changes afterwards, so permalinks stay stable across title edits.
type Post struct {
	ID         uint      `gorm:"column:id;primaryKey"`
	Slug       string    `gorm:"column:slug;uniqueIndex;not null"`
	Title      string    `gorm:"column:title;not null"`
	Excerpt    string    `gorm:"column:excerpt"`
	Content    string    `gorm:"column:content;not null"`
	ReadTime   string    `gorm:"column:read_time"`
	CategoryID uint      `gorm:"column:category_id"`
	Category   Category  `gorm:"foreignKey:CategoryID"`
	Tags       []Tag     `gorm:"many2many:post_tags"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Post) TableName() string {
	return "posts"
}

// TagNames returns the post's tag names in alphabetical order.
func (p *Post) TagNames() []string {
	names := make([]string, 0, len(p.Tags))
	for _, t := range p.Tags {
		names = append(names, t.Name)
	}
	sort.Strings(names)
	return names
}
