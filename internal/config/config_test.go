package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644))
	return dir
}

func TestLoadConfigDefaultsWithoutFile(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "5001", cfg.Server.Port)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "quizmaster.db", cfg.Database.Path)
	assert.False(t, cfg.Auth.DemoPasswords)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 60*time.Second, cfg.Redis.CacheTTL)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := writeConfig(t, `
server:
  port: "9090"
  mode: release
database:
  driver: postgres
  host: db
  port: 5432
  dbname: quiz
redis:
  enabled: true
  cache_ttl_seconds: 5
auth:
  demo_passwords: true
`)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 5*time.Second, cfg.Redis.CacheTTL)
	assert.True(t, cfg.Auth.DemoPasswords)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	dir := writeConfig(t, "database:\n  driver: sqlite\n")
	t.Setenv("DATABASE_DRIVER", "mysql")
	t.Setenv("DEMO_PASSWORDS", "true")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, DriverMySQL, cfg.Database.Driver)
	assert.True(t, cfg.Auth.DemoPasswords)
}

func TestLoadConfigCacheTTLFromEnv(t *testing.T) {
	dir := writeConfig(t, "redis:\n  cache_ttl_seconds: 5\n")
	t.Setenv("QUIZMASTER_REDIS_CACHE_TTL_SECONDS", "30")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.Redis.CacheTTLSeconds)
	assert.Equal(t, 30*time.Second, cfg.Redis.CacheTTL)
}

func TestLoadConfigRejectsUnknownDriver(t *testing.T) {
	dir := writeConfig(t, "database:\n  driver: oracle\n")

	_, err := LoadConfig(dir)
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestLoadConfigRejectsTracingWithoutEndpoint(t *testing.T) {
	dir := writeConfig(t, "tracing:\n  enabled: true\n")

	_, err := LoadConfig(dir)
	assert.Error(t, err)
}
