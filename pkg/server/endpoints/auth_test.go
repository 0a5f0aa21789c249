package endpoints

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novatech/blog-api/pkg/authn"
	"github.com/novatech/blog-api/pkg/model"
	"github.com/novatech/blog-api/pkg/server/store"
)

func TestLogin(t *testing.T) {
	srv, _, users := newTestServer(t)

	hash, err := authn.HashPassword("admin123")
	require.NoError(t, err)

	users.On("FetchUserByUsername", "admin").Return(&store.User{
		ID:           1,
		Username:     "admin",
		PasswordHash: hash,
		Role:         model.RoleAdmin,
	}, nil)

	req := httptest.NewRequest("POST", "/api/v1/auth/login",
		strings.NewReader(`{"username": "admin", "password": "admin123"}`))
	w := httptest.NewRecorder()
	srv.Router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp loginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, "admin", resp.Username)
	assert.Equal(t, "ADMIN", resp.Role)
	assert.Equal(t, 3600, resp.ExpiresIn)

	claims, err := srv.TokenIssuer.Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, "ADMIN", claims.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	srv, _, users := newTestServer(t)

	hash, err := authn.HashPassword("admin123")
	require.NoError(t, err)

	users.On("FetchUserByUsername", "admin").Return(&store.User{
		Username:     "admin",
		PasswordHash: hash,
		Role:         model.RoleAdmin,
	}, nil)

	req := httptest.NewRequest("POST", "/api/v1/auth/login",
		strings.NewReader(`{"username": "admin", "password": "nope"}`))
	w := httptest.NewRecorder()
	srv.Router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Invalid username or password", body["message"])
}

func TestLoginUnknownUser(t *testing.T) {
	srv, _, users := newTestServer(t)
	users.On("FetchUserByUsername", "ghost").Return(nil, store.ErrUserNotFound)

	req := httptest.NewRequest("POST", "/api/v1/auth/login",
		strings.NewReader(`{"username": "ghost", "password": "whatever"}`))
	w := httptest.NewRecorder()
	srv.Router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)

	// Same message as a wrong password, so usernames can't be probed
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Invalid username or password", body["message"])
}

func TestLoginValidation(t *testing.T) {
	srv, _, _ := newTestServer(t)

	req := httptest.NewRequest("POST", "/api/v1/auth/login",
		strings.NewReader(`{"username": "admin"}`))
	w := httptest.NewRecorder()
	srv.Router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "password: Password is required", body["message"])
}

func TestLoginBadJSON(t *testing.T) {
	srv, _, _ := newTestServer(t)

	req := httptest.NewRequest("POST", "/api/v1/auth/login", strings.NewReader(`{`))
	w := httptest.NewRecorder()
	srv.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogout(t *testing.T) {
	srv, _, _ := newTestServer(t)

	req := httptest.NewRequest("POST", "/api/v1/auth/logout", nil)
	w := httptest.NewRecorder()
	srv.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}
