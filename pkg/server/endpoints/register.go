package endpoints

import (
	"github.com/novatech/blog-api/pkg/server"
)

// RegisterAll registers all API endpoints on the server
func RegisterAll(srv *server.Server) {
	RegisterPostsEndpoints(srv)
	RegisterAuthEndpoints(srv)
	RegisterStatusEndpoint(srv)
}
