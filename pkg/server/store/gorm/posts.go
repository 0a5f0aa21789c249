package gorm

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/novatech/blog-api/pkg/model"
	"github.com/novatech/blog-api/pkg/server/store"
	"github.com/novatech/blog-api/pkg/slug"
)

// Ensure PostsStore implements store.PostsStore
var _ store.PostsStore = (*PostsStore)(nil)

// PostsStore implements store.PostsStore using GORM
type PostsStore struct {
	db *gorm.DB
}

// NewPostsStore creates a new PostsStore
func NewPostsStore(db *gorm.DB) *PostsStore {
	return &PostsStore{db: db}
}

// CreatePost creates a post, deriving a unique slug from the title.
func (s *PostsStore) CreatePost(input store.PostInput) (*store.Post, error) {
	category, err := s.resolveCategory(input.Category)
	if err != nil {
		return nil, err
	}
	tags, err := s.resolveTags(input.Tags)
	if err != nil {
		return nil, err
	}

	candidate := slug.Generate(input.Title)
	var existing model.Post
	tx := s.db.Select("id").Where("slug = ?", candidate).First(&existing)
	if tx.Error == nil {
		candidate = fmt.Sprintf("%s-%d", slug.Generate(input.Title), time.Now().UnixMilli())
	} else if !errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, tx.Error
	}

	post := model.Post{
		Slug:       candidate,
		Title:      input.Title,
		Excerpt:    input.Excerpt,
		Content:    input.Content,
		ReadTime:   input.ReadTime,
		CategoryID: category.ID,
		Tags:       tags,
	}

	// The slug index can still collide between the check and the insert.
	// Retry once with a finer-grained suffix before giving up.
	if err := s.db.Omit("Tags.*").Create(&post).Error; err != nil {
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
		post.ID = 0
		post.Slug = fmt.Sprintf("%s-%d", slug.Generate(input.Title), time.Now().UnixNano())
		if err := s.db.Omit("Tags.*").Create(&post).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, store.ErrSlugConflict
			}
			return nil, err
		}
	}

	post.Category = *category
	return toStorePost(&post), nil
}

// GetPostBySlug retrieves a single post by its slug.
func (s *PostsStore) GetPostBySlug(postSlug string) (*store.Post, error) {
	var post model.Post
	tx := s.db.Preload("Category").Preload("Tags").Where("slug = ?", postSlug).First(&post)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, store.ErrPostNotFound
		}
		return nil, tx.Error
	}
	return toStorePost(&post), nil
}

// UpdatePost replaces the attributes of the post with the given id.
// The slug never changes, and an omitted read time keeps its stored value.
func (s *PostsStore) UpdatePost(id uint, input store.PostInput) (*store.Post, error) {
	var post model.Post
	tx := s.db.Preload("Tags").First(&post, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, store.ErrPostNotFound
		}
		return nil, tx.Error
	}

	category, err := s.resolveCategory(input.Category)
	if err != nil {
		return nil, err
	}
	tags, err := s.resolveTags(input.Tags)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"title":       input.Title,
			"excerpt":     input.Excerpt,
			"content":     input.Content,
			"category_id": category.ID,
		}
		if input.ReadTime != "" {
			updates["read_time"] = input.ReadTime
		}
		if err := tx.Model(&post).Updates(updates).Error; err != nil {
			return err
		}
		return tx.Model(&post).Association("Tags").Replace(&tags)
	})
	if err != nil {
		return nil, err
	}

	post.Category = *category
	post.Tags = tags
	return toStorePost(&post), nil
}

// DeletePost removes the post with the given id. Join rows in post_tags
// go with it via the foreign key cascade.
func (s *PostsStore) DeletePost(id uint) error {
	tx := s.db.Delete(&model.Post{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return store.ErrPostNotFound
	}
	return nil
}

// ListPosts returns a page of posts matching the filter.
func (s *PostsStore) ListPosts(filter store.PostFilter, page store.PageRequest) (*store.Page, error) {
	base := s.db.Model(&model.Post{}).Scopes(filterScopes(filter)...)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	if page.Size <= 0 {
		page.Size = 10
	}
	if page.Page < 0 {
		page.Page = 0
	}

	var posts []model.Post
	err := base.Session(&gorm.Session{}).
		Preload("Category").
		Preload("Tags").
		Order(orderClause(page)).
		Limit(page.Size).
		Offset(page.Page * page.Size).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}

	result := &store.Page{
		Posts:         make([]store.Post, 0, len(posts)),
		Page:          page.Page,
		Size:          page.Size,
		TotalElements: total,
	}
	for i := range posts {
		result.Posts = append(result.Posts, *toStorePost(&posts[i]))
	}
	return result, nil
}

// DistinctCategories returns the category names in use by at least one post.
func (s *PostsStore) DistinctCategories() ([]string, error) {
	var names []string
	err := s.db.Model(&model.Post{}).
		Distinct("categories.name").
		Joins("JOIN categories ON categories.id = posts.category_id").
		Order("categories.name").
		Pluck("categories.name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}

// DistinctTags returns the tag names in use by at least one post.
func (s *PostsStore) DistinctTags() ([]string, error) {
	var names []string
	err := s.db.Model(&model.Tag{}).
		Distinct("tags.name").
		Joins("JOIN post_tags ON post_tags.tag_id = tags.id").
		Order("tags.name").
		Pluck("tags.name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}

// CountPosts returns the total number of posts.
func (s *PostsStore) CountPosts() (int64, error) {
	var count int64
	err := s.db.Model(&model.Post{}).Count(&count).Error
	return count, err
}

// resolveCategory finds or creates the named category. Concurrent creates
// of the same name race against the unique index, so the insert ignores
// conflicts and the follow-up select picks the winner.
func (s *PostsStore) resolveCategory(name string) (*model.Category, error) {
	err := s.db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.Category{Name: name}).Error
	if err != nil {
		return nil, err
	}

	var category model.Category
	if err := s.db.Where("name = ?", name).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// resolveTags finds or creates each named tag.
func (s *PostsStore) resolveTags(names []string) ([]model.Tag, error) {
	tags := make([]model.Tag, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true

		err := s.db.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&model.Tag{Name: name}).Error
		if err != nil {
			return nil, err
		}

		var tag model.Tag
		if err := s.db.Where("name = ?", name).First(&tag).Error; err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

func toStorePost(post *model.Post) *store.Post {
	return &store.Post{
		ID:        post.ID,
		Slug:      post.Slug,
		Title:     post.Title,
		Excerpt:   post.Excerpt,
		Content:   post.Content,
		Category:  post.Category.Name,
		Tags:      post.TagNames(),
		ReadTime:  post.ReadTime,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
}
