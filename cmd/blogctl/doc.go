// Package main provides blogctl, the NovaTech blog backend server and
// operations CLI.
//
// The backend is a REST API for a publishing site: posts with slugs,
// categories, and tags, plus stateless JWT authentication for the admin
// editing surface.
//
// # Architecture
//
// The server is organized into several packages:
//
//   - pkg/server: HTTP server and routing
//   - pkg/server/endpoints: REST API endpoint handlers
//   - pkg/server/store: Storage interfaces and the GORM implementation
//   - pkg/authn: Password hashing and access-token issuance
//   - pkg/slug: Slug derivation from post titles
//   - pkg/render: Markdown rendering and HTML sanitization
//   - pkg/model: Database models
//   - pkg/db: Database connection utilities
//   - pkg/config: Configuration management
//
// # Quick Start
//
//	# Generate a token-signing secret
//	export BLOG_TOKEN_SECRET="$(blogctl secret generate)"
//
//	# Run database migrations
//	blogctl db migrate
//
//	# Seed the default admin user and starter posts
//	blogctl db seed
//
//	# Start the server
//	blogctl server
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string
//   - BLOG_TOKEN_SECRET: Secret used to sign access tokens
//   - BLOG_TOKEN_TTL: Access-token lifetime in seconds (default: 86400)
//   - BLOG_ADMIN_PASSWORD: Bootstrap password for the seeded admin user
//   - BLOG_CONFIG_PATH: Directory holding blog.yml (default: /etc/novatech)
//   - BLOG_LOG_LEVEL: Log level (debug enables SQL logging)
//   - BLOG_PORT: Server port (default: 8080)
package main
