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
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0644))
	return dir
}

func TestLoadConfig(t *testing.T) {
	uploads := filepath.Join(t.TempDir(), "uploads")
	dir := writeConfig(t, `
server:
  port: "8081"
  mode: debug
database:
  driver: mongo
  uri: mongodb://localhost:27017
  dbname: pulse_test
  timeout_seconds: 3
jwt:
  secret: short
  expire_hours: 2
storage:
  type: local
  local_path: `+uploads+`
rate_limit:
  max_requests: 30
  window_minutes: 2
cors:
  allowed_origins:
    - http://localhost:3000
`)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Server.Port)
	assert.Equal(t, DriverMongo, cfg.Database.Driver)
	assert.Equal(t, "pulse_test", cfg.Database.DBName)
	assert.Equal(t, 3*time.Second, cfg.Database.QueryTimeout())
	assert.Equal(t, 2*time.Hour, cfg.JWT.ExpireTime)
	assert.Equal(t, 30, cfg.RateLimit.MaxRequests)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 60, cfg.Storage.PresignMinutes)
	assert.DirExists(t, uploads)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	dir := writeConfig(t, `
database:
  uri: mongodb://localhost:27017
storage:
  local_path: `+t.TempDir()+`
`)
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_DRIVER", "postgres")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, 10*time.Second, cfg.Database.QueryTimeout())
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		Server:   ServerConfig{Mode: "release"},
		Database: DatabaseConfig{Driver: DriverMongo, URI: "mongodb://db"},
		JWT:      JWTConfig{Secret: "too-short"},
	}
	assert.Error(t, cfg.Validate())

	cfg.JWT.Secret = "0123456789abcdef0123456789abcdef"
	assert.NoError(t, cfg.Validate())

	cfg.Database.URI = ""
	assert.Error(t, cfg.Validate())

	cfg.Database.Driver = "sqlite"
	assert.Error(t, cfg.Validate())

	cfg.Database.Driver = DriverMySQL
	assert.NoError(t, cfg.Validate())
}
