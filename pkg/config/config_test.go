package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BLOG_CONFIG_PATH", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.BindAddress)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 86400, cfg.TokenTTLSeconds)
	assert.Equal(t, "default", cfg.Source("port"))
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("port: 9000\ntoken_ttl_seconds: 600\n"), 0o644)
	require.NoError(t, err)

	t.Setenv("BLOG_CONFIG_PATH", dir)
	t.Setenv("BLOG_PORT", "9001")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9001, cfg.Port)
	assert.Equal(t, "environment", cfg.Source("port"))
	assert.Equal(t, 600, cfg.TokenTTLSeconds)
	assert.Equal(t, "file", cfg.Source("token_ttl_seconds"))
}

func TestValidate(t *testing.T) {
	t.Setenv("BLOG_CONFIG_PATH", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Error(t, cfg.Validate(), "missing token secret must fail validation")

	cfg.TokenSecret = "secret"
	assert.NoError(t, cfg.Validate())

	cfg.TokenTTLSeconds = 5
	assert.Error(t, cfg.Validate())
}

func TestTrustedProxiesFromEnv(t *testing.T) {
	t.Setenv("BLOG_CONFIG_PATH", t.TempDir())
	t.Setenv("BLOG_TRUSTED_PROXIES", "10.0.0.1, 10.0.0.2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.TrustedProxies)
	assert.Equal(t, "environment", cfg.Source("trusted_proxies"))
}

func TestCORSOriginsFromEnv(t *testing.T) {
	t.Setenv("BLOG_CONFIG_PATH", t.TempDir())
	t.Setenv("BLOG_CORS_ALLOWED_ORIGINS", "https://blog.example.com, https://admin.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"https://blog.example.com", "https://admin.example.com"}, cfg.CORSAllowedOrigins)
}
