package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, 10, cfg.Sources.TimeoutSeconds)
	assert.Contains(t, cfg.Sources.CountriesURL, "restcountries.com")
	assert.Contains(t, cfg.Sources.ExchangeURL, "open.er-api.com")
	assert.Equal(t, "local", cfg.Storage.Driver)
	assert.Equal(t, "cache", cfg.Storage.LocalDir)
	assert.Equal(t, 300, cfg.Storage.CacheTTLSeconds)
	assert.Equal(t, 0, cfg.Scheduler.RefreshIntervalMinutes)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("SOURCES_TIMEOUT_SECONDS", "3")
	t.Setenv("SCHEDULER_REFRESH_INTERVAL_MINUTES", "60")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 3, cfg.Sources.TimeoutSeconds)
	assert.Equal(t, 60, cfg.Scheduler.RefreshIntervalMinutes)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, ".env"), []byte("SERVER_PORT=9191\nSTORAGE_BUCKET=summaries\n"), 0o644)
	require.NoError(t, err)
	t.Cleanup(func() {
		os.Unsetenv("SERVER_PORT")
		os.Unsetenv("STORAGE_BUCKET")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "9191", cfg.Server.Port)
	assert.Equal(t, "summaries", cfg.Storage.Bucket)
}
