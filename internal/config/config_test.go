package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.False(t, cfg.IsProduction())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("TRIVIA_ENV", "production")
	t.Setenv("TRIVIA_SERVER_PORT", "9090")
	t.Setenv("TRIVIA_SERVER_READ_TIMEOUT", "3s")
	t.Setenv("TRIVIA_SERVER_CORS_ALLOWED_ORIGINS", "http://localhost:3000,https://quiz.example.com")
	t.Setenv("TRIVIA_DATABASE_DRIVER", "sqlite")
	t.Setenv("TRIVIA_DATABASE_SQLITE_PATH", "/tmp/trivia.db")
	t.Setenv("TRIVIA_DATABASE_MAX_CONNS", "4")
	t.Setenv("TRIVIA_REDIS_ADDRESS", "localhost:6379")
	t.Setenv("TRIVIA_RATELIMIT_ENABLED", "true")
	t.Setenv("TRIVIA_RATELIMIT_REQUESTS", "30")
	t.Setenv("TRIVIA_RATELIMIT_WINDOW", "10s")
	t.Setenv("TRIVIA_LOGGING_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 3*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, []string{"http://localhost:3000", "https://quiz.example.com"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "/tmp/trivia.db", cfg.Database.SQLitePath)
	assert.Equal(t, int32(4), cfg.Database.MaxConns)
	assert.Equal(t, "localhost:6379", cfg.Redis.Address)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 30, cfg.RateLimit.Requests)
	assert.Equal(t, 10*time.Second, cfg.RateLimit.Window)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown driver", map[string]string{"TRIVIA_DATABASE_DRIVER": "mysql"}},
		{"unknown level", map[string]string{"TRIVIA_LOGGING_LEVEL": "verbose"}},
		{"unknown env", map[string]string{"TRIVIA_ENV": "staging"}},
		{"rate limit without redis", map[string]string{"TRIVIA_RATELIMIT_ENABLED": "true"}},
		{"sqlite without path", map[string]string{"TRIVIA_DATABASE_DRIVER": "sqlite", "TRIVIA_DATABASE_SQLITE_PATH": ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "env", envKey("TRIVIA_ENV"))
	assert.Equal(t, "database.ssl_mode", envKey("TRIVIA_DATABASE_SSL_MODE"))
	assert.Equal(t, "server.cors_allowed_origins", envKey("TRIVIA_SERVER_CORS_ALLOWED_ORIGINS"))
}
