package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "/etc/novatech"
	ConfigFileName    = "blog.yml"
)

// Config holds all blog server configuration settings.
type Config struct {
	// BindAddress is the address the HTTP server listens on
	BindAddress string `yaml:"bind_address"`

	// Port is the HTTP server port
	Port int `yaml:"port"`

	// TokenSecret signs access tokens. Required to run the server.
	TokenSecret string `yaml:"token_secret"`

	// TokenTTLSeconds is the access-token lifetime in seconds
	TokenTTLSeconds int `yaml:"token_ttl_seconds"`

	// CORSAllowedOrigins is the list of origins allowed by CORS
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`

	// LoginRatePerMinute caps login attempts per client IP
	LoginRatePerMinute int `yaml:"login_rate_per_minute"`

	// LoginRateBurst is the login limiter burst size
	LoginRateBurst int `yaml:"login_rate_burst"`

	// TrustedProxies lists peer addresses whose X-Forwarded-For header is
	// honored when attributing requests to a client IP
	TrustedProxies []string `yaml:"trusted_proxies"`

	// AdminPassword is the bootstrap password for the default admin user
	AdminPassword string `yaml:"admin_password"`

	// sources tracks where each value came from
	sources map[string]string

	// configFilePath is the path to the config file
	configFilePath string
}

// Global singleton config
var (
	globalConfig *Config
	configMu     sync.RWMutex
)

// Get returns the global configuration, loading it if necessary.
func Get() *Config {
	configMu.RLock()
	if globalConfig != nil {
		configMu.RUnlock()
		return globalConfig
	}
	configMu.RUnlock()

	configMu.Lock()
	defer configMu.Unlock()

	if globalConfig == nil {
		cfg, err := Load()
		if err != nil {
			globalConfig = newDefault()
		} else {
			globalConfig = cfg
		}
	}
	return globalConfig
}

// Reload reloads the configuration from file and environment.
func Reload() error {
	cfg, err := Load()
	if err != nil {
		return err
	}

	configMu.Lock()
	globalConfig = cfg
	configMu.Unlock()
	return nil
}

// newDefault returns a config with default values.
func newDefault() *Config {
	return &Config{
		BindAddress:        "0.0.0.0",
		Port:               8080,
		TokenTTLSeconds:    86400,
		CORSAllowedOrigins: []string{"*"},
		LoginRatePerMinute: 10,
		LoginRateBurst:     5,
		AdminPassword:      "admin123",
		sources:            make(map[string]string),
	}
}

// Load loads configuration from file and environment variables.
// Environment variables take precedence over file values.
func Load() (*Config, error) {
	config := newDefault()

	for _, name := range attributeNames() {
		config.sources[name] = "default"
	}

	configPath := os.Getenv("BLOG_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	config.configFilePath = filepath.Join(configPath, ConfigFileName)

	if data, err := os.ReadFile(config.configFilePath); err == nil {
		var fileConfig Config
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", config.configFilePath, err)
		}
		config.applyFileConfig(&fileConfig)
	}

	config.applyEnvConfig()

	return config, nil
}

func attributeNames() []string {
	return []string{
		"bind_address", "port", "token_secret", "token_ttl_seconds",
		"cors_allowed_origins", "login_rate_per_minute", "login_rate_burst",
		"trusted_proxies", "admin_password",
	}
}

func (c *Config) applyFileConfig(file *Config) {
	if file.BindAddress != "" {
		c.BindAddress = file.BindAddress
		c.sources["bind_address"] = "file"
	}
	if file.Port != 0 {
		c.Port = file.Port
		c.sources["port"] = "file"
	}
	if file.TokenSecret != "" {
		c.TokenSecret = file.TokenSecret
		c.sources["token_secret"] = "file"
	}
	if file.TokenTTLSeconds != 0 {
		c.TokenTTLSeconds = file.TokenTTLSeconds
		c.sources["token_ttl_seconds"] = "file"
	}
	if len(file.CORSAllowedOrigins) > 0 {
		c.CORSAllowedOrigins = file.CORSAllowedOrigins
		c.sources["cors_allowed_origins"] = "file"
	}
	if file.LoginRatePerMinute != 0 {
		c.LoginRatePerMinute = file.LoginRatePerMinute
		c.sources["login_rate_per_minute"] = "file"
	}
	if file.LoginRateBurst != 0 {
		c.LoginRateBurst = file.LoginRateBurst
		c.sources["login_rate_burst"] = "file"
	}
	if len(file.TrustedProxies) > 0 {
		c.TrustedProxies = file.TrustedProxies
		c.sources["trusted_proxies"] = "file"
	}
	if file.AdminPassword != "" {
		c.AdminPassword = file.AdminPassword
		c.sources["admin_password"] = "file"
	}
}

func (c *Config) applyEnvConfig() {
	if val := os.Getenv("BLOG_BIND_ADDRESS"); val != "" {
		c.BindAddress = val
		c.sources["bind_address"] = "environment"
	}
	if val := os.Getenv("BLOG_PORT"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.Port = i
			c.sources["port"] = "environment"
		}
	}
	if val := os.Getenv("BLOG_TOKEN_SECRET"); val != "" {
		c.TokenSecret = val
		c.sources["token_secret"] = "environment"
	}
	if val := os.Getenv("BLOG_TOKEN_TTL"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.TokenTTLSeconds = i
			c.sources["token_ttl_seconds"] = "environment"
		}
	}
	if val := os.Getenv("BLOG_CORS_ALLOWED_ORIGINS"); val != "" {
		c.CORSAllowedOrigins = splitAndTrim(val)
		c.sources["cors_allowed_origins"] = "environment"
	}
	if val := os.Getenv("BLOG_LOGIN_RATE_PER_MINUTE"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.LoginRatePerMinute = i
			c.sources["login_rate_per_minute"] = "environment"
		}
	}
	if val := os.Getenv("BLOG_LOGIN_RATE_BURST"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.LoginRateBurst = i
			c.sources["login_rate_burst"] = "environment"
		}
	}
	if val := os.Getenv("BLOG_TRUSTED_PROXIES"); val != "" {
		c.TrustedProxies = splitAndTrim(val)
		c.sources["trusted_proxies"] = "environment"
	}
	if val := os.Getenv("BLOG_ADMIN_PASSWORD"); val != "" {
		c.AdminPassword = val
		c.sources["admin_password"] = "environment"
	}
}

// ConfigFilePath returns the path to the config file.
func (c *Config) ConfigFilePath() string {
	return c.configFilePath
}

// Source returns the source of a configuration attribute.
func (c *Config) Source(name string) string {
	if c.sources == nil {
		return "default"
	}
	if s, ok := c.sources[name]; ok {
		return s
	}
	return "default"
}

// TokenTTL returns the access-token lifetime as a duration.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLSeconds) * time.Second
}

// Addr returns the listen address in host:port form.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.BindAddress, c.Port)
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.TokenSecret == "" {
		return fmt.Errorf("token_secret is required (set BLOG_TOKEN_SECRET)")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.TokenTTLSeconds < 60 {
		return fmt.Errorf("token_ttl_seconds must be at least 60, got %d", c.TokenTTLSeconds)
	}
	if c.LoginRatePerMinute < 1 {
		return fmt.Errorf("login_rate_per_minute must be positive, got %d", c.LoginRatePerMinute)
	}
	return nil
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
