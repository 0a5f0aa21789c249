package gorm

import (
	"errors"

	"gorm.io/gorm"

	"github.com/novatech/blog-api/pkg/model"
	"github.com/novatech/blog-api/pkg/server/store"
)

// Ensure UsersStore implements store.UsersStore
var _ store.UsersStore = (*UsersStore)(nil)

// UsersStore implements store.UsersStore using GORM
type UsersStore struct {
	db *gorm.DB
}

// NewUsersStore creates a new UsersStore
func NewUsersStore(db *gorm.DB) *UsersStore {
	return &UsersStore{db: db}
}

// FetchUserByUsername retrieves a user by username.
func (s *UsersStore) FetchUserByUsername(username string) (*store.User, error) {
	var user model.User
	tx := s.db.Where("username = ?", username).First(&user)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, store.ErrUserNotFound
		}
		return nil, tx.Error
	}

	return &store.User{
		ID:           user.ID,
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		Role:         user.Role,
	}, nil
}

// CreateUser creates a user with an already-hashed password.
func (s *UsersStore) CreateUser(username, passwordHash string, role model.Role) (*store.User, error) {
	user := model.User{
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}

	return &store.User{
		ID:           user.ID,
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		Role:         user.Role,
	}, nil
}

// CountUsers returns the total number of users.
func (s *UsersStore) CountUsers() (int64, error) {
	var count int64
	err := s.db.Model(&model.User{}).Count(&count).Error
	return count, err
}
