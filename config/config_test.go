package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `app:
  name: "oneview-redfish"
  version: "1.0.0"
http:
  port: "8181"
logger:
  log_level: "debug"
db:
  path: ":memory:"
redfish:
  service_uuid: "9a0f1e36-6a8d-4b8b-bc1b-2a1c6b6d2f7e"
`

func writeConfig(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o600))

	return path
}

func TestNewConfigFromFile(t *testing.T) {
	cfg, err := NewConfigFromFile(writeConfig(t))
	require.NoError(t, err)

	assert.Equal(t, "oneview-redfish", cfg.App.Name)
	assert.Equal(t, "8181", cfg.HTTP.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, ":memory:", cfg.DB.Path)
	assert.Equal(t, "9a0f1e36-6a8d-4b8b-bc1b-2a1c6b6d2f7e", cfg.Redfish.ServiceUUID)
	assert.Empty(t, cfg.Inventory.SeedDir)
	assert.False(t, cfg.HTTP.Pprof)
}

func TestNewConfigFromFileEnvOverride(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("INVENTORY_SEED_DIR", "/var/lib/oneview")
	t.Setenv("HTTP_PPROF", "true")

	cfg, err := NewConfigFromFile(writeConfig(t))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.HTTP.Port)
	assert.Equal(t, "/var/lib/oneview", cfg.Inventory.SeedDir)
	assert.True(t, cfg.HTTP.Pprof)
}

func TestNewConfigFromFileMissing(t *testing.T) {
	_, err := NewConfigFromFile(filepath.Join(t.TempDir(), "absent.yml"))
	require.Error(t, err)
}
