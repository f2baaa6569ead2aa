package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	for _, key := range []string{
		"APP_PORT", "APP_ENV", "LOG_LEVEL", "APP_TIMEZONE", "CORS_ALLOWED_ORIGINS", "SEED_FILE",
		"JWT_SECRET_KEY", "JWT_ACCESS_EXPIRATION_TIME", "REVOKED_TOKEN_SWEEP_INTERVAL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET_KEY", "secret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, 24*time.Hour, cfg.JWT.AccessExpiration)
	assert.Equal(t, time.Hour, cfg.Cron.RevokedTokenSweepInterval)
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:3000"}, cfg.App.CORSAllowedOrigins)
	assert.Empty(t, cfg.App.SeedFile)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET_KEY", "secret")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("APP_TIMEZONE", "UTC")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("JWT_ACCESS_EXPIRATION_TIME", "2h")
	t.Setenv("SEED_FILE", "/tmp/seed.yaml")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.App.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "UTC", cfg.App.Timezone)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.App.CORSAllowedOrigins)
	assert.Equal(t, 2*time.Hour, cfg.JWT.AccessExpiration)
	assert.Equal(t, "/tmp/seed.yaml", cfg.App.SeedFile)

	level, err := ParseLogLevel(cfg.App.LogLevel)
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing secret", map[string]string{}},
		{"bad port", map[string]string{"JWT_SECRET_KEY": "s", "APP_PORT": "http"}},
		{"port out of range", map[string]string{"JWT_SECRET_KEY": "s", "APP_PORT": "70000"}},
		{"bad duration", map[string]string{"JWT_SECRET_KEY": "s", "JWT_ACCESS_EXPIRATION_TIME": "soon"}},
		{"bad log level", map[string]string{"JWT_SECRET_KEY": "s", "LOG_LEVEL": "loud"}},
		{"bad timezone", map[string]string{"JWT_SECRET_KEY": "s", "APP_TIMEZONE": "Mars/Olympus"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
