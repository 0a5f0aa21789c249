// Package integration spins up a real Postgres in Docker and exercises the
// HTTP API end to end. Tests skip unless INTEGRATION_TEST=1.
package integration

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	migrations "github.com/novatech/blog-api/db"
	"github.com/novatech/blog-api/pkg/config"
	"github.com/novatech/blog-api/pkg/server"
	"github.com/novatech/blog-api/pkg/server/endpoints"
	gormstore "github.com/novatech/blog-api/pkg/server/store/gorm"
)

const (
	testAdminPassword = "admin123"
	testServerPort    = 18090
)

// TestContext holds all the resources needed for integration tests
type TestContext struct {
	DB          *gorm.DB
	RawDB       *sql.DB
	Container   testcontainers.Container
	Server      *server.Server
	ServerURL   string
	DatabaseURL string
	HTTPClient  *http.Client
}

// NewTestContext starts a PostgreSQL testcontainer, migrates and seeds the
// schema, and runs the server in-process.
func NewTestContext(ctx context.Context) (*TestContext, error) {
	pgContainer, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("blog_test"),
		tcpostgres.WithUsername("blog"),
		tcpostgres.WithPassword("blog"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start postgres container: %w", err)
	}

	host, err := pgContainer.Host(ctx)
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to get container host: %w", err)
	}
	port, err := pgContainer.MappedPort(ctx, "5432")
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to get container port: %w", err)
	}
	connStr := fmt.Sprintf("postgres://blog:blog@%s:%s/blog_test?sslmode=disable", host, port.Port())

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		DSN:                  connStr,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	rawDB, err := db.DB()
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to get raw db: %w", err)
	}

	if err := runMigrations(rawDB); err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := gormstore.Seed(db, testAdminPassword); err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to seed database: %w", err)
	}

	cfg := &config.Config{
		BindAddress:        "127.0.0.1",
		Port:               testServerPort,
		TokenSecret:        "integration-test-secret",
		TokenTTLSeconds:    3600,
		CORSAllowedOrigins: []string{"*"},
		LoginRatePerMinute: 1000,
		LoginRateBurst:     1000,
		AdminPassword:      testAdminPassword,
	}

	s := server.NewServer(cfg, db, gormstore.NewPostsStore(db), gormstore.NewUsersStore(db))
	endpoints.RegisterAll(s)

	go func() {
		if err := s.Start(); err != nil && err != http.ErrServerClosed {
			log.Printf("server stopped: %v", err)
		}
	}()

	serverURL := fmt.Sprintf("http://127.0.0.1:%d", testServerPort)
	if err := waitForServer(serverURL, 30*time.Second); err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("server failed to become ready: %w", err)
	}

	return &TestContext{
		DB:          db,
		RawDB:       rawDB,
		Container:   pgContainer,
		Server:      s,
		ServerURL:   serverURL,
		DatabaseURL: connStr,
		HTTPClient:  &http.Client{Timeout: 10 * time.Second},
	}, nil
}

// Close cleans up all test resources
func (tc *TestContext) Close(ctx context.Context) {
	if tc.RawDB != nil {
		_ = tc.RawDB.Close()
	}
	if tc.Container != nil {
		_ = tc.Container.Terminate(ctx)
	}
}

// runMigrations applies the embedded up migrations in order.
func runMigrations(db *sql.DB) error {
	entries, err := fs.ReadDir(migrations.Migrations, "migrations")
	if err != nil {
		return err
	}

	var files []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	for _, name := range files {
		content, err := fs.ReadFile(migrations.Migrations, "migrations/"+name)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", name, err)
		}
		if _, err := db.Exec(string(content)); err != nil {
			return fmt.Errorf("migration %s failed: %w", name, err)
		}
	}

	return nil
}

// waitForServer polls the health endpoint until it responds or times out
func waitForServer(serverURL string, timeout time.Duration) error {
	client := &http.Client{Timeout: 2 * time.Second}
	deadline := time.Now().Add(timeout)

	for time.Now().Before(deadline) {
		resp, err := client.Get(serverURL + "/api/v1/status")
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(100 * time.Millisecond)
	}

	return fmt.Errorf("server did not become ready within %v", timeout)
}
