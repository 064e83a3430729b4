package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chronometer.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeFile(t, `
window:
  width: 800
assets:
  dir: /opt/erid
  earth: blue.png
clock:
  period: 500ms
eridian:
  width: 3
logging:
  json: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, float32(800), cfg.Window.Width)
	assert.Equal(t, float32(600), cfg.Window.Height)
	assert.Equal(t, "/opt/erid", cfg.Assets.Dir)
	assert.Equal(t, "blue.png", cfg.Assets.Earth)
	assert.Equal(t, "erid.png", cfg.Assets.Eridian)
	assert.Equal(t, 500*time.Millisecond, cfg.Clock.Period)
	assert.Equal(t, 3, cfg.Eridian.Width)
	assert.True(t, cfg.Logging.JSON)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, IsKind(err, KindNotFound))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadInvalidYAML(t *testing.T) {
	_, err := Load(writeFile(t, "window: [unclosed"))
	require.Error(t, err)
	assert.True(t, IsKind(err, KindInvalidConfig))
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	_, err := Load(writeFile(t, "eridian:\n  width: 4\nclock:\n  period: 0s\n"))
	require.Error(t, err)
	assert.True(t, IsKind(err, KindInvalidConfig))
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "eridian width 4")
	assert.Contains(t, err.Error(), "clock period")
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"ERIDIAN_ASSETS_DIR": "/tmp/art",
		"ERIDIAN_DEBUG":      "true",
		"ERIDIAN_JSON_LOGS":  "true",
		"ERIDIAN_WIDTH":      "3",
	}

	cfg := Default()
	cfg.ApplyEnv(func(k string) string { return env[k] })

	assert.Equal(t, "/tmp/art", cfg.Assets.Dir)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.JSON)
	assert.Equal(t, 3, cfg.Eridian.Width)
}

func TestApplyEnvEmptyKeepsConfig(t *testing.T) {
	cfg := Default()
	cfg.ApplyEnv(func(string) string { return "" })
	assert.Equal(t, Default(), cfg)
}

func TestAssetPath(t *testing.T) {
	a := AssetsConfig{Dir: "art"}
	assert.Equal(t, filepath.Join("art", "earth.png"), a.Path("earth.png"))
	assert.Equal(t, "/abs/earth.png", a.Path("/abs/earth.png"))
	assert.Equal(t, "", a.Path(""))
	assert.Equal(t, "earth.png", AssetsConfig{}.Path("earth.png"))
}
