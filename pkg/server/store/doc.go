// Package store provides storage abstractions for the blog server.
//
// This package defines interfaces for database operations, allowing the
// server endpoints to be decoupled from the specific database implementation.
// This enables easier testing with mocks and potential support for different
// storage backends.
//
// # Available Stores
//
//   - PostsStore: Post CRUD, search, and taxonomy listings
//   - UsersStore: User lookup and creation for authentication
//
// # Usage
//
//	posts := gorm.NewPostsStore(db)
//	post, err := posts.GetPostBySlug("getting-started-with-go")
//	if err != nil {
//	    if errors.Is(err, store.ErrPostNotFound) {
//	        // Handle not found
//	    }
//	}
package store
