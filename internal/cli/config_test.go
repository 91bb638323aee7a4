package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tessella.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
[viewport]
width = 1024
height = 768

[font]
path = "/tmp/some-font.ttf"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 1024.0, cfg.Viewport.Width)
	assert.Equal(t, 768.0, cfg.Viewport.Height)
	assert.Equal(t, "/tmp/some-font.ttf", cfg.Font.Path)
}

func TestLoadConfigDefaultsMissingFields(t *testing.T) {
	path := writeConfig(t, `
[font]
path = "x.ttf"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 800.0, cfg.Viewport.Width)
	assert.Equal(t, 600.0, cfg.Viewport.Height)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
}

func TestLoadConfigMalformed(t *testing.T) {
	path := writeConfig(t, `viewport = "not a table`)
	_, err := LoadConfig(path)
	require.Error(t, err)
}
