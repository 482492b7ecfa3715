package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
app:
  name: gofood
  server:
    shutdown_timeout: 15
  maintenance:
    endpoints: "/api/v1/riders, ,/api/v1/restaurants"
instrument:
  log_mask_fields:
    - phone
    - email
  sample_ratio: 0.25
modules:
  restaurant:
    idempotency_ttl_minutes: 10
    topics: "registered:restaurant_registered,report:restaurant_validation_report"
`

func TestNewViperFromBytes(t *testing.T) {
	cfg, err := NewViperFromBytes("yaml", []byte(sample))
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, cfg.Close()) })

	assert.Equal(t, "gofood", cfg.GetString("app.name"))
	assert.Equal(t, 15*time.Second, cfg.GetSecond("app.server.shutdown_timeout"))
	assert.Equal(t, 10*time.Minute, cfg.GetMinute("modules.restaurant.idempotency_ttl_minutes"))
	assert.InDelta(t, 0.25, cfg.GetFloat64("instrument.sample_ratio"), 1e-9)
	assert.Equal(t, []string{"/api/v1/riders", "/api/v1/restaurants"}, cfg.GetArray("app.maintenance.endpoints"))
	assert.Equal(t, []string{"phone", "email"}, cfg.GetArray("instrument.log_mask_fields"))
	assert.Empty(t, cfg.GetArray("missing.key"))
	assert.Equal(t, map[string]string{
		"registered": "restaurant_registered",
		"report":     "restaurant_validation_report",
	}, cfg.GetMap("modules.restaurant.topics"))
	assert.False(t, cfg.GetBool("missing.flag"))
}

func TestNewViperFromBytes_Errors(t *testing.T) {
	_, err := NewViperFromBytes(" ", []byte(sample))
	assert.Error(t, err)

	_, err = NewViperFromBytes("yaml", []byte("app: [unclosed"))
	assert.Error(t, err)
}

func TestNewViper(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte(sample), 0o600))

	t.Setenv("GOFOOD_APP_NAME", "gofood-env")

	cfg, err := NewViper(file)
	require.NoError(t, err)

	assert.Equal(t, "gofood-env", cfg.GetString("app.name"))
	assert.Equal(t, 15, cfg.GetInt("app.server.shutdown_timeout"))
}

func TestPath(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("LOCAL", "")
	assert.Equal(t, defaultPath, Path())

	t.Setenv("LOCAL", "true")
	assert.Equal(t, defaultLocalPath, Path())

	t.Setenv("CONFIG_PATH", "/etc/gofood.yaml")
	assert.Equal(t, "/etc/gofood.yaml", Path())
}
