package gorm

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novatech/blog-api/pkg/model"
	"github.com/novatech/blog-api/pkg/server/store"
)

func TestFetchUserByUsername(t *testing.T) {
	db, mock := newTestDB(t)
	users := NewUsersStore(db)

	rows := sqlmock.NewRows([]string{"id", "username", "password_hash", "role"}).
		AddRow(int64(1), "admin", "$2a$10$hash", "ADMIN")
	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WithArgs("admin", 1).
		WillReturnRows(rows)

	user, err := users.FetchUserByUsername("admin")
	require.NoError(t, err)

	assert.Equal(t, "admin", user.Username)
	assert.Equal(t, model.RoleAdmin, user.Role)
	assert.Equal(t, "$2a$10$hash", user.PasswordHash)
}

func TestFetchUserByUsernameNotFound(t *testing.T) {
	db, mock := newTestDB(t)
	users := NewUsersStore(db)

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WithArgs("nobody", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}))

	_, err := users.FetchUserByUsername("nobody")
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestCountUsers(t *testing.T) {
	db, mock := newTestDB(t)
	users := NewUsersStore(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(1)))

	count, err := users.CountUsers()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
