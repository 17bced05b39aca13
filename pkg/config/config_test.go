package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `service_name = "storefront"`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "storefront", cfg.ServiceName)
	assert.Equal(t, "dev", cfg.Environment)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, BackendMemory, cfg.Storage.Backend)
	assert.True(t, cfg.Storage.Seed)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.False(t, cfg.RateLimit.Enabled)
}

func TestLoadOverridesFromFile(t *testing.T) {
	path := writeConfig(t, `
service_name = "storefront"
environment = "prod"

[http]
port = 9090

[storage]
backend = "mysql"

[database]
dsn = "root:root@tcp(localhost:3306)/motoparts"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Environment)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, BackendMySQL, cfg.Storage.Backend)
	assert.Equal(t, "root:root@tcp(localhost:3306)/motoparts", cfg.Database.DSN)
}

func TestLoadRejectsMissingServiceName(t *testing.T) {
	path := writeConfig(t, `environment = "dev"`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "service_name")
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	path := writeConfig(t, `
service_name = "storefront"

[storage]
backend = "cassandra"
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported storage backend")
}

func TestLoadRequiresDSNForDatabaseBackend(t *testing.T) {
	path := writeConfig(t, `
service_name = "storefront"

[storage]
backend = "postgres"
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DSN")
}

func TestLoadRejectsRateLimitWithoutRedis(t *testing.T) {
	path := writeConfig(t, `
service_name = "storefront"

[rate_limit]
enabled = true
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis")
}
