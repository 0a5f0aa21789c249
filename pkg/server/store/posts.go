package store

import (
	"errors"
	"time"
)

// ErrPostNotFound is returned when a post doesn't exist
var ErrPostNotFound = errors.New("post not found")

// ErrSlugConflict is returned when a unique slug could not be generated
var ErrSlugConflict = errors.New("could not generate a unique slug")

// Post represents a published post with its resolved taxonomy
type Post struct {
	ID        uint
	Slug      string
	Title     string
	Excerpt   string
	Content   string
	Category  string
	Tags      []string
	ReadTime  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PostInput carries the writable attributes of a post
type PostInput struct {
	Title    string
	Excerpt  string
	Content  string
	Category string
	Tags     []string
	ReadTime string
}

// PostFilter narrows post listings. Empty fields are ignored; set fields
// are combined with AND.
type PostFilter struct {
	// Keyword matches title, content, or excerpt (case-insensitive substring)
	Keyword string
	// Category matches the category name (case-insensitive exact)
	Category string
	// Tag matches posts carrying the named tag (exact)
	Tag string
}

// PageRequest selects a page of results
type PageRequest struct {
	// Page is the zero-based page number
	Page int
	// Size is the page size
	Size int
	// Sort is the attribute to sort by (createdAt, title, slug, readTime)
	Sort string
	// Descending reverses the sort order
	Descending bool
}

// Page is one page of posts plus pagination totals
type Page struct {
	Posts         []Post
	Page          int
	Size          int
	TotalElements int64
}

// TotalPages returns the number of pages needed to hold all elements.
func (p Page) TotalPages() int {
	if p.Size <= 0 {
		return 0
	}
	return int((p.TotalElements + int64(p.Size) - 1) / int64(p.Size))
}

// PostsStore abstracts post storage operations
type PostsStore interface {
	// CreatePost creates a post, deriving a unique slug from the title.
	// Returns ErrSlugConflict if a unique slug could not be generated.
	CreatePost(input PostInput) (*Post, error)

	// GetPostBySlug retrieves a single post by its slug.
	// Returns ErrPostNotFound if the post doesn't exist.
	GetPostBySlug(slug string) (*Post, error)

	// UpdatePost replaces the attributes of the post with the given id.
	// The slug never changes, and an omitted read time keeps its stored
	// value. Returns ErrPostNotFound if the post doesn't exist.
	UpdatePost(id uint, input PostInput) (*Post, error)

	// DeletePost removes the post with the given id.
	// Returns ErrPostNotFound if the post doesn't exist.
	DeletePost(id uint) error

	// ListPosts returns a page of posts matching the filter, newest first
	// unless the page request says otherwise.
	ListPosts(filter PostFilter, page PageRequest) (*Page, error)

	// DistinctCategories returns the category names currently in use by
	// at least one post, alphabetically.
	DistinctCategories() ([]string, error)

	// DistinctTags returns the tag names currently in use by at least one
	// post, alphabetically.
	DistinctTags() ([]string, error)

	// CountPosts returns the total number of posts.
	CountPosts() (int64, error)
}
