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
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	path := writeConfig(t, `
database:
  host: localhost
  user: airport
  name: airport
auth:
  jwt_secret: secret
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTP.Address)
	assert.Equal(t, "/api/airport", cfg.HTTP.BasePath)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, FulfillmentModeSync, cfg.Fulfillment.Mode)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL())
	assert.Equal(t, 30*time.Second, cfg.Flights.CacheTTL())
	assert.Equal(t, "host=localhost port=5432 user=airport password= dbname=airport sslmode=disable", cfg.Database.DSN())
}

func TestLoadConfig_EnvOverridesSecrets(t *testing.T) {
	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("JWT_SECRET", "env-secret")
	path := writeConfig(t, `
database:
  password: from-file
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, "env-secret", cfg.Auth.JWTSecret)
}

func TestLoadConfig_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	path := writeConfig(t, `http: {address: ":9000"}`)

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_KafkaModeNeedsBrokers(t *testing.T) {
	path := writeConfig(t, `
auth: {jwt_secret: s}
fulfillment: {mode: kafka}
`)

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
