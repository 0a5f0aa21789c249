package endpoints

import (
	"testing"

	"github.com/novatech/blog-api/pkg/config"
	"github.com/novatech/blog-api/pkg/model"
	"github.com/novatech/blog-api/pkg/server"
)

// newTestServer builds a server wired to mock stores. No database needed.
func newTestServer(t *testing.T) (*server.Server, *MockPostsStore, *MockUsersStore) {
	t.Helper()

	cfg := &config.Config{
		BindAddress:        "127.0.0.1",
		Port:               8080,
		TokenSecret:        "test-secret",
		TokenTTLSeconds:    3600,
		CORSAllowedOrigins: []string{"*"},
		LoginRatePerMinute: 1000,
		LoginRateBurst:     1000,
	}

	posts := NewMockPostsStore()
	users := NewMockUsersStore()

	srv := server.NewServer(cfg, nil, posts, users)
	RegisterAll(srv)

	return srv, posts, users
}

func adminToken(t *testing.T, srv *server.Server) string {
	t.Helper()
	token, err := srv.TokenIssuer.Issue("admin", model.RoleAdmin)
	if err != nil {
		t.Fatalf("failed to issue admin token: %v", err)
	}
	return token
}

func userToken(t *testing.T, srv *server.Server) string {
	t.Helper()
	token, err := srv.TokenIssuer.Issue("reader", model.RoleUser)
	if err != nil {
		t.Fatalf("failed to issue user token: %v", err)
	}
	return token
}
