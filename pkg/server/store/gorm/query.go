package gorm

import (
	"gorm.io/gorm"

	"github.com/novatech/blog-api/pkg/server/store"
)

// sortColumns whitelists the sortable attributes. Anything else falls back
// to the default ordering.
var sortColumns = map[string]string{
	"createdAt": "posts.created_at",
	"title":     "posts.title",
	"slug":      "posts.slug",
	"readTime":  "posts.read_time",
}

func orderClause(page store.PageRequest) string {
	column, ok := sortColumns[page.Sort]
	if !ok {
		return "posts.created_at DESC"
	}
	if page.Descending {
		return column + " DESC"
	}
	return column + " ASC"
}

// filterScopes translates a PostFilter into query scopes. Set fields are
// combined with AND; an empty filter yields no scopes.
func filterScopes(filter store.PostFilter) []func(*gorm.DB) *gorm.DB {
	var scopes []func(*gorm.DB) *gorm.DB
	if filter.Keyword != "" {
		scopes = append(scopes, keywordScope(filter.Keyword))
	}
	if filter.Category != "" {
		scopes = append(scopes, categoryScope(filter.Category))
	}
	if filter.Tag != "" {
		scopes = append(scopes, tagScope(filter.Tag))
	}
	return scopes
}

func keywordScope(keyword string) func(*gorm.DB) *gorm.DB {
	pattern := "%" + keyword + "%"
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(
			"posts.title ILIKE ? OR posts.content ILIKE ? OR posts.excerpt ILIKE ?",
			pattern, pattern, pattern,
		)
	}
}

func categoryScope(name string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Joins("JOIN categories ON categories.id = posts.category_id").
			Where("LOWER(categories.name) = LOWER(?)", name)
	}
}

func tagScope(name string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(
			"EXISTS (SELECT 1 FROM post_tags JOIN tags ON tags.id = post_tags.tag_id"+
				" WHERE post_tags.post_id = posts.id AND tags.name = ?)",
			name,
		)
	}
}
