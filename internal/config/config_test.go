package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "gallery.yaml")
	cfg := Default()
	cfg.Window.Width = 1280
	cfg.Page = "authoring"
	cfg.Log.Level = "debug"
	require.NoError(t, cfg.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoadPartialAndValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gallery.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window:\n  width: -3\n  height: 480\nlog:\n  level: loud\n"), 0o644))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 800, got.Window.Width)
	assert.Equal(t, 480, got.Window.Height)
	assert.Equal(t, "info", got.Log.Level)
	assert.Equal(t, "hello", got.Page)
	assert.Equal(t, filepath.Join("presets", "shader.yaml"), got.PresetPath("shader"))
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gallery.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window: [1, 2"), 0o644))
	_, err := Load(path)
	assert.ErrorContains(t, err, path)
}

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, l)
	l, err = ParseLevel(" Warn ")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, l)
	_, err = ParseLevel("loud")
	assert.Error(t, err)
}
