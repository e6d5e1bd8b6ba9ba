package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestConfig(t *testing.T) func() {
	// save original values
	origConfigDir := configDir
	origConfigFile := configFile

	// create temp directory
	tmpDir, err := os.MkdirTemp("", "fuzzyfind_config_test_*")
	require.NoError(t, err)

	configDir = tmpDir
	configFile = filepath.Join(tmpDir, "config.yaml")

	return func() {
		os.RemoveAll(tmpDir)
		configDir = origConfigDir
		configFile = origConfigFile
	}
}

func TestGetDefaultConfig(t *testing.T) {
	cfg := GetDefaultConfig()

	assert.NotNil(t, cfg)
	assert.NotEmpty(t, cfg.DBPath)
	assert.Equal(t, 0, cfg.Workers) // one worker per CPU
	assert.Equal(t, 32, cfg.ChunkSize)
	assert.Equal(t, 50, cfg.HistoryLimit)
}

func TestLoadConfig_Default(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.NotNil(t, cfg)

	// should return default values when no config file exists
	assert.NotEmpty(t, cfg.DBPath)
	assert.Equal(t, 32, cfg.ChunkSize)
	assert.Equal(t, 50, cfg.HistoryLimit)
}

func TestSaveAndLoadConfig(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	cfg := &Config{
		DBPath:       filepath.Join(configDir, "test.db"),
		Workers:      4,
		ChunkSize:    16,
		HistoryLimit: 25,
	}

	err := SaveConfig(cfg)
	require.NoError(t, err)

	loaded, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, cfg.DBPath, loaded.DBPath)
	assert.Equal(t, cfg.Workers, loaded.Workers)
	assert.Equal(t, cfg.ChunkSize, loaded.ChunkSize)
	assert.Equal(t, cfg.HistoryLimit, loaded.HistoryLimit)
}

func TestSaveConfig_CreatesDirectory(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	// remove the config directory
	os.RemoveAll(configDir)

	cfg := GetDefaultConfig()
	err := SaveConfig(cfg)
	require.NoError(t, err)

	// verify directory was created
	info, err := os.Stat(configDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestLoadConfig_FillsDefaults(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	// a config with unset values gets defaults on load
	err := SaveConfig(&Config{})
	require.NoError(t, err)

	loaded, err := LoadConfig()
	require.NoError(t, err)

	assert.NotEmpty(t, loaded.DBPath)
	assert.Equal(t, 32, loaded.ChunkSize)
	assert.Equal(t, 50, loaded.HistoryLimit)
}
