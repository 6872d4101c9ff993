package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	for _, k := range []string{"SHOPLIST_ITEMS", "SHOPLIST_THEME", "SHOPLIST_LOG_LEVEL", "SHOPLIST_LOG_FILE", "SHOPLIST_SYNC", "NO_COLOR"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg := Load()

	assert.NotNil(t, cfg)
	assert.Empty(t, cfg.ItemsFile)
	assert.Equal(t, "classic", cfg.Theme)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.LogFile)
	assert.False(t, cfg.Sync)
	assert.False(t, cfg.NoColor)
}

func TestLoadCustomValues(t *testing.T) {
	t.Setenv("SHOPLIST_ITEMS", "/tmp/list.json")
	t.Setenv("SHOPLIST_THEME", "neon")
	t.Setenv("SHOPLIST_LOG_LEVEL", "debug")
	t.Setenv("SHOPLIST_LOG_FILE", "/tmp/shoplist.log")
	t.Setenv("SHOPLIST_SYNC", "1")
	t.Setenv("NO_COLOR", "")

	cfg := Load()

	assert.Equal(t, "/tmp/list.json", cfg.ItemsFile)
	assert.Equal(t, "neon", cfg.Theme)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/shoplist.log", cfg.LogFile)
	assert.True(t, cfg.Sync)
	assert.True(t, cfg.NoColor)
}

func TestLoadSyncRequiresOne(t *testing.T) {
	t.Setenv("SHOPLIST_SYNC", "true")
	assert.False(t, Load().Sync)
}
