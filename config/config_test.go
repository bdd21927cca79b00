package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o600)
}

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, 9400, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 25, cfg.Database.MaxConnections)
	assert.Equal(t, 20, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 40, cfg.RateLimit.Burst)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "auth-hub", cfg.Auth.BackendTokenIssuer)
	assert.Equal(t, "skillbridge-feed", cfg.Auth.BackendTokenAudience)
}

func TestNewConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("SERVER_READ_TIMEOUT", "45s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("RATE_LIMIT_RPS", "5")
	t.Setenv("RATE_LIMIT_BURST", "10")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 45*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 5, cfg.RateLimit.RequestsPerSecond)
}

func TestNewConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"port out of range", "SERVER_PORT", "70000"},
		{"non-numeric port", "SERVER_PORT", "abc"},
		{"bad duration", "SERVER_READ_TIMEOUT", "soon"},
		{"unknown log level", "LOG_LEVEL", "verbose"},
		{"zero rate limit", "RATE_LIMIT_RPS", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := NewConfig()
			assert.Error(t, err)
		})
	}
}

func TestNewConfig_SecretFile(t *testing.T) {
	secretFile := t.TempDir() + "/token_secret"
	require.NoError(t, writeFile(secretFile, "file-secret\n"))

	t.Setenv("BACKEND_TOKEN_SECRET", "env-secret")
	t.Setenv("BACKEND_TOKEN_SECRET_FILE", secretFile)

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, "file-secret", cfg.Auth.BackendTokenSecret)
}
