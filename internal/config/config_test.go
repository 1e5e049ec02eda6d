// SPDX-License-Identifier: MIT

package config_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazechase/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"MAZECHASE_LEVEL", "MAZECHASE_TICKS", "MAZECHASE_TICK_SECONDS", "MAZECHASE_CATCH_RADIUS",
		"MAZECHASE_WATCH", "MAZECHASE_METRICS_ADDR", "LOG_LEVEL", "LOG_FORMAT", "LOG_INCLUDE_CALLER",
	} {
		t.Setenv(key, "")
	}

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Sim.LevelPath)
	assert.Equal(t, 3600, cfg.Sim.Ticks)
	assert.InDelta(t, 1.0/60, cfg.Sim.TickSeconds, 1e-15)
	assert.Equal(t, 0.25, cfg.Sim.CatchRadius)
	assert.False(t, cfg.Sim.Watch)
	assert.Equal(t, "", cfg.Metrics.Addr)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.False(t, cfg.Logging.IncludeCaller)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("MAZECHASE_LEVEL", "levels/window.yaml")
	t.Setenv("MAZECHASE_TICKS", "120")
	t.Setenv("MAZECHASE_TICK_SECONDS", "0.05")
	t.Setenv("MAZECHASE_CATCH_RADIUS", "0.4")
	t.Setenv("MAZECHASE_WATCH", "true")
	t.Setenv("MAZECHASE_METRICS_ADDR", ":9100")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_INCLUDE_CALLER", "not-a-bool")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "levels/window.yaml", cfg.Sim.LevelPath)
	assert.Equal(t, 120, cfg.Sim.Ticks)
	assert.Equal(t, 0.05, cfg.Sim.TickSeconds)
	assert.Equal(t, 0.4, cfg.Sim.CatchRadius)
	assert.True(t, cfg.Sim.Watch)
	assert.Equal(t, ":9100", cfg.Metrics.Addr)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.False(t, cfg.Logging.IncludeCaller, "unparsable booleans fall back")
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"MAZECHASE_TICKS", "many"},
		{"MAZECHASE_TICKS", "0"},
		{"MAZECHASE_TICK_SECONDS", "-0.1"},
		{"MAZECHASE_TICK_SECONDS", "NaN"},
		{"MAZECHASE_CATCH_RADIUS", "wide"},
		{"MAZECHASE_CATCH_RADIUS", "+Inf"},
	}

	for i, tt := range tests {
		t.Run(tt.key+"/"+strconv.Itoa(i), func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := config.Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}
