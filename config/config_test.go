package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NotNil(t, cfg)

	// Verify storage defaults
	assert.Equal(t, "", cfg.Storage.Path)

	// Verify display defaults
	assert.Equal(t, ColorAuto, cfg.Display.Colors)
	assert.Equal(t, TimezoneLocal, cfg.Display.Timezone)

	// Verify orders defaults
	assert.Equal(t, defaultMaxItemsPerOrder, cfg.Orders.MaxItemsPerOrder)
}

func TestLoad_ValidConfig(t *testing.T) {
	configContent := `
storage:
  path: /tmp/custom.db
display:
  colors: always
  timezone: utc
orders:
  max_items_per_order: 25
`

	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")
	err := os.WriteFile(configFile, []byte(configContent), 0644)
	require.NoError(t, err)

	cfg, err := Load(configFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "/tmp/custom.db", cfg.Storage.Path)
	assert.Equal(t, ColorAlways, cfg.Display.Colors)
	assert.Equal(t, TimezoneUTC, cfg.Display.Timezone)
	assert.Equal(t, 25, cfg.Orders.MaxItemsPerOrder)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, ColorAuto, cfg.Display.Colors)
	assert.Equal(t, defaultMaxItemsPerOrder, cfg.Orders.MaxItemsPerOrder)
}

func TestLoad_InvalidColorMode(t *testing.T) {
	configContent := `
display:
  colors: invalid
`

	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")
	err := os.WriteFile(configFile, []byte(configContent), 0644)
	require.NoError(t, err)

	cfg, err := Load(configFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "invalid display.colors")
}

func TestLoad_InvalidTimezoneMode(t *testing.T) {
	configContent := `
display:
  timezone: invalid
`

	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")
	err := os.WriteFile(configFile, []byte(configContent), 0644)
	require.NoError(t, err)

	cfg, err := Load(configFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "invalid display.timezone")
}

func TestLoad_InvalidMaxItems(t *testing.T) {
	configContent := `
orders:
  max_items_per_order: 0
`

	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")
	err := os.WriteFile(configFile, []byte(configContent), 0644)
	require.NoError(t, err)

	cfg, err := Load(configFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "max_items_per_order")
}

func TestGetDatabasePath(t *testing.T) {
	cfg := Default()
	cfg.Storage.Path = "/tmp/explicit.db"
	assert.Equal(t, "/tmp/explicit.db", cfg.GetDatabasePath())

	cfg.Storage.Path = ""
	assert.Equal(t, ResolvePaths().DatabaseFile, cfg.GetDatabasePath())
}

func TestShouldUseColors(t *testing.T) {
	cfg := Default()

	cfg.Display.Colors = ColorAlways
	assert.True(t, cfg.ShouldUseColors())

	cfg.Display.Colors = ColorNever
	assert.False(t, cfg.ShouldUseColors())
}

func TestLocation(t *testing.T) {
	cfg := Default()

	cfg.Display.Timezone = TimezoneUTC
	assert.Equal(t, time.UTC, cfg.Location())

	cfg.Display.Timezone = TimezoneLocal
	assert.Equal(t, time.Local, cfg.Location())
}

func TestResolvePaths(t *testing.T) {
	paths := ResolvePaths()

	assert.NotEmpty(t, paths.ConfigDir)
	assert.NotEmpty(t, paths.DataDir)
	assert.Equal(t, filepath.Join(paths.ConfigDir, "config.yaml"), paths.ConfigFile)
	assert.Equal(t, filepath.Join(paths.DataDir, "coeur.db"), paths.DatabaseFile)
}

func TestPathsEnsure(t *testing.T) {
	tmpDir := t.TempDir()
	paths := &Paths{
		ConfigDir: filepath.Join(tmpDir, "config", "coeur"),
		DataDir:   filepath.Join(tmpDir, "data", "coeur"),
	}

	require.NoError(t, paths.Ensure())

	for _, dir := range []string{paths.ConfigDir, paths.DataDir} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}

	// Existing directories are left alone.
	require.NoError(t, paths.Ensure())
}
