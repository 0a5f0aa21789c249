package endpoints

import (
	"github.com/stretchr/testify/mock"

	"github.com/novatech/blog-api/pkg/model"
	"github.com/novatech/blog-api/pkg/server/store"
)

// MockPostsStore implements store.PostsStore for testing using testify/mock
type MockPostsStore struct {
	mock.Mock
}

func NewMockPostsStore() *MockPostsStore {
	return &MockPostsStore{}
}

func (m *MockPostsStore) CreatePost(input store.PostInput) (*store.Post, error) {
	args := m.Called(input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Post), args.Error(1)
}

func (m *MockPostsStore) GetPostBySlug(slug string) (*store.Post, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Post), args.Error(1)
}

func (m *MockPostsStore) UpdatePost(id uint, input store.PostInput) (*store.Post, error) {
	args := m.Called(id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Post), args.Error(1)
}

func (m *MockPostsStore) DeletePost(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockPostsStore) ListPosts(filter store.PostFilter, page store.PageRequest) (*store.Page, error) {
	args := m.Called(filter, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Page), args.Error(1)
}

func (m *MockPostsStore) DistinctCategories() ([]string, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockPostsStore) DistinctTags() ([]string, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockPostsStore) CountPosts() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// MockUsersStore implements store.UsersStore for testing using testify/mock
type MockUsersStore struct {
	mock.Mock
}

func NewMockUsersStore() *MockUsersStore {
	return &MockUsersStore{}
}

func (m *MockUsersStore) FetchUserByUsername(username string) (*store.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.User), args.Error(1)
}

func (m *MockUsersStore) CreateUser(username, passwordHash string, role model.Role) (*store.User, error) {
	args := m.Called(username, passwordHash, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.User), args.Error(1)
}

func (m *MockUsersStore) CountUsers() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}
