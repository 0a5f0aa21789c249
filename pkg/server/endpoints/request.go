package endpoints

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/novatech/blog-api/pkg/server/store"
)

var (
	readTimeRegex = regexp.MustCompile(`^\d+\s+(min|hour|hours)$`)
	categoryRegex = regexp.MustCompile(`^[A-Za-z\s]+$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("readtime", func(fl validator.FieldLevel) bool {
		return readTimeRegex.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("categoryname", func(fl validator.FieldLevel) bool {
		return categoryRegex.MatchString(fl.Field().String())
	})

	return v
}

// postRequest is the payload for creating or updating a post
type postRequest struct {
	Title         string   `json:"title" validate:"required,min=5,max=200"`
	Excerpt       string   `json:"excerpt" validate:"omitempty,min=20,max=500"`
	Content       string   `json:"content" validate:"required,min=50"`
	Category      string   `json:"category" validate:"required,categoryname"`
	Tags          []string `json:"tags" validate:"max=10,dive,required"`
	ReadTime      string   `json:"readTime" validate:"omitempty,readtime"`
	ContentFormat string   `json:"contentFormat" validate:"omitempty,oneof=html markdown"`
}

// loginRequest is the payload for the login endpoint
type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// validationMessage flattens a validation failure into the "field: message"
// form, reporting only the first failing field.
func validationMessage(err error) string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return "Invalid request body"
	}
	fe := errs[0]
	return fe.Field() + ": " + fieldMessage(fe)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "title":
		if fe.Tag() == "required" {
			return "Title is required"
		}
		return "Title must be between 5 and 200 characters"
	case "excerpt":
		return "Excerpt must be between 20 and 500 characters"
	case "content":
		if fe.Tag() == "required" {
			return "Content is required"
		}
		return "Content must be at least 50 characters"
	case "category":
		if fe.Tag() == "required" {
			return "Category is required"
		}
		return "Category must contain only letters and spaces"
	case "tags":
		return "A post can have at most 10 tags"
	case "readTime":
		return "Read time must be a duration like '5 min' or '1 hour'"
	case "username":
		return "Username is required"
	case "password":
		return "Password is required"
	case "contentFormat":
		return "Content format must be 'html' or 'markdown'"
	}
	return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
}

// parsePageRequest reads page, size, sort, and direction query parameters.
// Sort accepts either a bare attribute with a separate direction parameter
// or the combined "attribute,direction" form. Defaults to newest first.
func parsePageRequest(r *http.Request) store.PageRequest {
	page := store.PageRequest{
		Page:       0,
		Size:       10,
		Sort:       "createdAt",
		Descending: true,
	}

	query := r.URL.Query()
	if v, err := strconv.Atoi(query.Get("page")); err == nil && v >= 0 {
		page.Page = v
	}
	if v, err := strconv.Atoi(query.Get("size")); err == nil && v > 0 {
		if v > 100 {
			v = 100
		}
		page.Size = v
	}
	if sort := query.Get("sort"); sort != "" {
		parts := strings.SplitN(sort, ",", 2)
		page.Sort = parts[0]
		if len(parts) == 2 {
			page.Descending = !strings.EqualFold(parts[1], "asc")
		}
	}
	if dir := query.Get("direction"); dir != "" {
		page.Descending = !strings.EqualFold(dir, "asc")
	}

	return page
}

func parsePostFilter(r *http.Request) store.PostFilter {
	query := r.URL.Query()
	return store.PostFilter{
		Keyword:  strings.TrimSpace(query.Get("keyword")),
		Category: strings.TrimSpace(query.Get("category")),
		Tag:      strings.TrimSpace(query.Get("tag")),
	}
}
