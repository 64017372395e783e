package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.Inventory.ReorderPoint)
	assert.Equal(t, 4*time.Second, cfg.Notifications.DisplayDuration)
	assert.Equal(t, 2*time.Second, cfg.Assist.ProcessingDelay)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("AGORA_INVENTORY_REORDER_POINT", "25")
	t.Setenv("AGORA_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.Inventory.ReorderPoint)
	assert.Equal(t, "debug", cfg.Log.Level)
}
