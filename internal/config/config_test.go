package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	conf, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8080", conf.Server.Port)
	assert.False(t, conf.Server.OpenBrowser)
	assert.Equal(t, "info", conf.Logging.Level)
	assert.Equal(t, "console", conf.Logging.Format)
	assert.NotEmpty(t, conf.Store.Dir)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  port: "9090"
  open_browser: true
store:
  dir: /tmp/scenarios
logging:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	conf, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", conf.Server.Port)
	assert.True(t, conf.Server.OpenBrowser)
	assert.Equal(t, "/tmp/scenarios", conf.Store.Dir)
	assert.Equal(t, "debug", conf.Logging.Level)
	assert.Equal(t, "json", conf.Logging.Format)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: \"3000\"\n"), 0o644))

	conf, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "3000", conf.Server.Port)
	assert.Equal(t, "info", conf.Logging.Level)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("ADOPT_SERVER_PORT", "7070")
	t.Setenv("ADOPT_LOGGING_LEVEL", "warn")

	conf, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "7070", conf.Server.Port)
	assert.Equal(t, "warn", conf.Logging.Level)
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
