package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	Server    ServerConfig    `json:"server"`
	Database  DatabaseConfig  `json:"database"`
	RateLimit RateLimitConfig `json:"rate_limit"`
	Logging   LoggingConfig   `json:"logging"`
	Auth      AuthConfig      `json:"auth"`
}

type ServerConfig struct {
	Port         int           `json:"port" env:"SERVER_PORT" default:"9400"`
	ReadTimeout  time.Duration `json:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"30s"`
	WriteTimeout time.Duration `json:"write_timeout" env:"SERVER_WRITE_TIMEOUT" default:"30s"`
	IdleTimeout  time.Duration `json:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" default:"120s"`
}

type DatabaseConfig struct {
	MaxConnections    int           `json:"max_connections" env:"DB_MAX_CONNECTIONS" default:"25"`
	ConnectionTimeout time.Duration `json:"connection_timeout" env:"DB_CONNECTION_TIMEOUT" default:"30s"`
}

type RateLimitConfig struct {
	RequestsPerSecond int `json:"requests_per_second" env:"RATE_LIMIT_RPS" default:"20"`
	Burst             int `json:"burst" env:"RATE_LIMIT_BURST" default:"40"`
}

type LoggingConfig struct {
	Level  string `json:"level" env:"LOG_LEVEL" default:"info"`
	Format string `json:"format" env:"LOG_FORMAT" default:"json"`
}

type AuthConfig struct {
	BackendTokenSecret     string `json:"backend_token_secret" env:"BACKEND_TOKEN_SECRET"`
	BackendTokenSecretFile string `json:"-" env:"BACKEND_TOKEN_SECRET_FILE"`
	BackendTokenIssuer     string `json:"backend_token_issuer" env:"BACKEND_TOKEN_ISSUER"`
	BackendTokenAudience   string `json:"backend_token_audience" env:"BACKEND_TOKEN_AUDIENCE"`
}

// NewConfig loads configuration from environment variables with fallback to
// default values declared in struct tags.
func NewConfig() (*Config, error) {
	config := &Config{}

	if err := loadFromEnvironment(config); err != nil {
		return nil, err
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	// Docker Secrets support: a file-backed secret wins over the env value.
	if config.Auth.BackendTokenSecretFile != "" {
		content, err := os.ReadFile(config.Auth.BackendTokenSecretFile)
		if err == nil {
			config.Auth.BackendTokenSecret = strings.TrimSpace(string(content))
		}
	}

	if config.Auth.BackendTokenIssuer == "" {
		config.Auth.BackendTokenIssuer = "auth-hub"
	}
	if config.Auth.BackendTokenAudience == "" {
		config.Auth.BackendTokenAudience = "skillbridge-feed"
	}

	return config, nil
}

// Load is an alias for NewConfig.
func Load() (*Config, error) {
	return NewConfig()
}
