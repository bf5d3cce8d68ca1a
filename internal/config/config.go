package config

import (
	"fmt"
	"os"
)

// Config holds the admin console settings, loaded from environment
// variables (a .env file is overloaded by the binaries before Load runs).
type Config struct {
	// BaseURL is the root of the remote catalog API, e.g. http://localhost:8081.
	BaseURL string
	// APIPath is the tenant path segment in /api/{APIPath}/admin/... routes.
	APIPath string
	// Port the console listens on.
	Port string
	// SessionSecret signs the UI session cookie.
	SessionSecret string
	// TokenCookie is the name of the cookie holding the bearer token.
	TokenCookie string
}

// Load reads the console configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{
		BaseURL:       getEnv("BASE_URL", "http://localhost:8081"),
		APIPath:       getEnv("API_PATH", "devshop"),
		Port:          getEnv("APP_PORT", "8080"),
		SessionSecret: getEnv("SESSION_SECRET", ""),
		TokenCookie:   getEnv("TOKEN_COOKIE", "adminToken"),
	}
	if cfg.SessionSecret == "" {
		// same fallback the login flow had before; fine for local runs
		cfg.SessionSecret = "dev_fallback_secret"
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks required settings.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("BASE_URL is required")
	}
	if c.APIPath == "" {
		return fmt.Errorf("API_PATH is required")
	}
	if c.Port == "" {
		return fmt.Errorf("APP_PORT is required")
	}
	return nil
}

// DevAPI holds settings for the bundled stand-in of the remote API.
type DevAPI struct {
	Port          string
	DBPath        string
	APIPath       string
	AdminUser     string
	AdminPassword string
	JWTSecret     string
}

// LoadDevAPI reads the devapi configuration from the environment.
func LoadDevAPI() *DevAPI {
	return &DevAPI{
		Port:          getEnv("DEVAPI_PORT", "8081"),
		DBPath:        getEnv("DEVAPI_DB", "devapi.db"),
		APIPath:       getEnv("API_PATH", "devshop"),
		AdminUser:     getEnv("DEVAPI_ADMIN_USER", "admin@example.com"),
		AdminPassword: getEnv("DEVAPI_ADMIN_PASSWORD", "password"),
		JWTSecret:     getEnv("DEVAPI_JWT_SECRET", "dev_fallback_secret"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
