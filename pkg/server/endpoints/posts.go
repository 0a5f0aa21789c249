package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/novatech/blog-api/pkg/render"
	"github.com/novatech/blog-api/pkg/server"
	"github.com/novatech/blog-api/pkg/server/middleware"
	"github.com/novatech/blog-api/pkg/server/store"
)

// defaultReadTime is assigned to new posts created without a read time.
const defaultReadTime = "5 min"

// postResponse is the JSON shape for a single post
type postResponse struct {
	ID        uint      `json:"id"`
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Excerpt   string    `json:"excerpt"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	Tags      []string  `json:"tags"`
	ReadTime  string    `json:"readTime"`
	CreatedAt time.Time `json:"createdAt"`
	Date      string    `json:"date"`
}

// pageResponse is the JSON shape for a page of posts
type pageResponse struct {
	Content       []postResponse `json:"content"`
	Page          int            `json:"page"`
	Size          int            `json:"size"`
	TotalElements int64          `json:"totalElements"`
	TotalPages    int            `json:"totalPages"`
}

func RegisterPostsEndpoints(s *server.Server) {
	api := s.Router.PathPrefix("/api/v1").Subrouter()
	posts := s.PostsStore

	adminOnly := func(h http.Handler) http.Handler {
		return s.AuthMiddleware.Middleware(middleware.RequireAdmin(h))
	}

	// Fixed paths first: gorilla mux matches in registration order, and
	// /posts/{slug} would otherwise swallow them.
	api.HandleFunc("/posts/search", handleListPosts(posts)).Methods("GET")
	api.HandleFunc("/posts/categories", handleListCategories(posts)).Methods("GET")
	api.HandleFunc("/posts/tags", handleListTags(posts)).Methods("GET")

	api.HandleFunc("/posts", handleListPosts(posts)).Methods("GET")
	api.Handle("/posts", adminOnly(handleCreatePost(posts))).Methods("POST")

	api.HandleFunc("/posts/{slug}", handleGetPost(posts)).Methods("GET")
	api.Handle("/posts/{id:[0-9]+}", adminOnly(handleUpdatePost(posts))).Methods("PUT")
	api.Handle("/posts/{id:[0-9]+}", adminOnly(handleDeletePost(posts))).Methods("DELETE")
}

// handleListPosts serves both the listing and search endpoints. Filters are
// optional on both; they only differ in path.
func handleListPosts(posts store.PostsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := posts.ListPosts(parsePostFilter(r), parsePageRequest(r))
		if err != nil {
			respondWithError(w, r, http.StatusInternalServerError, "Failed to list posts")
			return
		}

		respondWithJSON(w, http.StatusOK, toPageResponse(page))
	}
}

func handleGetPost(posts store.PostsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := mux.Vars(r)["slug"]

		post, err := posts.GetPostBySlug(slug)
		if err != nil {
			if errors.Is(err, store.ErrPostNotFound) {
				respondWithError(w, r, http.StatusNotFound, "Post not found with slug: "+slug)
				return
			}
			respondWithError(w, r, http.StatusInternalServerError, "Failed to fetch post")
			return
		}

		respondWithJSON(w, http.StatusOK, toPostResponse(post))
	}
}

func handleCreatePost(posts store.PostsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		input, ok := decodePostRequest(w, r)
		if !ok {
			return
		}
		if input.ReadTime == "" {
			input.ReadTime = defaultReadTime
		}

		post, err := posts.CreatePost(*input)
		if err != nil {
			if errors.Is(err, store.ErrSlugConflict) {
				respondWithError(w, r, http.StatusConflict, "Could not generate a unique slug, try again")
				return
			}
			respondWithError(w, r, http.StatusInternalServerError, "Failed to create post")
			return
		}

		respondWithJSON(w, http.StatusCreated, toPostResponse(post))
	}
}

func handleUpdatePost(posts store.PostsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := postID(w, r)
		if !ok {
			return
		}

		input, ok := decodePostRequest(w, r)
		if !ok {
			return
		}

		post, err := posts.UpdatePost(id, *input)
		if err != nil {
			if errors.Is(err, store.ErrPostNotFound) {
				respondWithError(w, r, http.StatusNotFound, "Post not found with id: "+mux.Vars(r)["id"])
				return
			}
			respondWithError(w, r, http.StatusInternalServerError, "Failed to update post")
			return
		}

		respondWithJSON(w, http.StatusOK, toPostResponse(post))
	}
}

func handleDeletePost(posts store.PostsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := postID(w, r)
		if !ok {
			return
		}

		if err := posts.DeletePost(id); err != nil {
			if errors.Is(err, store.ErrPostNotFound) {
				respondWithError(w, r, http.StatusNotFound, "Post not found with id: "+mux.Vars(r)["id"])
				return
			}
			respondWithError(w, r, http.StatusInternalServerError, "Failed to delete post")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// postID parses the {id} path variable. The route pattern only admits
// digits, so the only parse failure left is overflow.
func postID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		respondWithError(w, r, http.StatusBadRequest, "Invalid post id")
		return 0, false
	}
	return uint(id), true
}

func handleListCategories(posts store.PostsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := posts.DistinctCategories()
		if err != nil {
			respondWithError(w, r, http.StatusInternalServerError, "Failed to list categories")
			return
		}
		if categories == nil {
			categories = []string{}
		}
		respondWithJSON(w, http.StatusOK, categories)
	}
}

func handleListTags(posts store.PostsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tags, err := posts.DistinctTags()
		if err != nil {
			respondWithError(w, r, http.StatusInternalServerError, "Failed to list tags")
			return
		}
		if tags == nil {
			tags = []string{}
		}
		respondWithJSON(w, http.StatusOK, tags)
	}
}

// decodePostRequest parses, validates, and renders the post payload.
// On failure it writes the error response and returns ok=false.
func decodePostRequest(w http.ResponseWriter, r *http.Request) (*store.PostInput, bool) {
	var req postRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, r, http.StatusBadRequest, "Invalid JSON body")
		return nil, false
	}
	defer func() { _ = r.Body.Close() }()

	if err := validate.Struct(req); err != nil {
		respondWithError(w, r, http.StatusBadRequest, validationMessage(err))
		return nil, false
	}

	content := req.Content
	if req.ContentFormat == "markdown" {
		html, err := render.Markdown(content)
		if err != nil {
			respondWithError(w, r, http.StatusBadRequest, "Failed to render markdown content")
			return nil, false
		}
		content = html
	}
	content = render.SanitizeHTML(content)

	return &store.PostInput{
		Title:    req.Title,
		Excerpt:  req.Excerpt,
		Content:  content,
		Category: req.Category,
		Tags:     req.Tags,
		ReadTime: req.ReadTime,
	}, true
}

func toPostResponse(post *store.Post) postResponse {
	tags := post.Tags
	if tags == nil {
		tags = []string{}
	}
	return postResponse{
		ID:        post.ID,
		Slug:      post.Slug,
		Title:     post.Title,
		Excerpt:   post.Excerpt,
		Content:   post.Content,
		Category:  post.Category,
		Tags:      tags,
		ReadTime:  post.ReadTime,
		CreatedAt: post.CreatedAt,
		Date:      post.CreatedAt.Format("2006-01-02"),
	}
}

func toPageResponse(page *store.Page) pageResponse {
	content := make([]postResponse, 0, len(page.Posts))
	for i := range page.Posts {
		content = append(content, toPostResponse(&page.Posts[i]))
	}
	return pageResponse{
		Content:       content,
		Page:          page.Page,
		Size:          page.Size,
		TotalElements: page.TotalElements,
		TotalPages:    page.TotalPages(),
	}
}
