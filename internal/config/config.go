// SPDX-License-Identifier: MIT

// Package config loads the mazechase command's settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/katalvlaran/mazechase/maze"
)

// Config aggregates application configuration values.
type Config struct {
	Sim     SimConfig
	Metrics MetricsConfig
	Logging LoggingConfig
}

// SimConfig governs the headless chase simulation.
type SimConfig struct {
	LevelPath   string  // level file; empty runs the built-in window level
	Ticks       int     // maximum ticks per run
	TickSeconds float64 // simulated seconds per tick
	CatchRadius float64 // planar distance at which a ghost catches the player
	Watch       bool    // reload the level file when it changes
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Addr string // listen address; empty disables the endpoint
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level         string
	Format        string // text|json
	IncludeCaller bool
}

const (
	defaultTicks         = 3600
	defaultTickSeconds   = 1.0 / 60
	defaultLoggingLevel  = "info"
	defaultLoggingFormat = "text"
)

// Load reads configuration from environment variables, applying defaults.
func Load() (Config, error) {
	cfg := Config{
		Sim: SimConfig{
			LevelPath: os.Getenv("MAZECHASE_LEVEL"),
			Watch:     parseBoolWithDefault("MAZECHASE_WATCH", false),
		},
		Metrics: MetricsConfig{
			Addr: os.Getenv("MAZECHASE_METRICS_ADDR"),
		},
		Logging: LoggingConfig{
			Level:         valueOrDefault("LOG_LEVEL", defaultLoggingLevel),
			Format:        valueOrDefault("LOG_FORMAT", defaultLoggingFormat),
			IncludeCaller: parseBoolWithDefault("LOG_INCLUDE_CALLER", false),
		},
	}

	ticks, err := parsePositiveInt("MAZECHASE_TICKS", defaultTicks)
	if err != nil {
		return Config{}, err
	}
	cfg.Sim.Ticks = ticks

	dt, err := parsePositiveFloat("MAZECHASE_TICK_SECONDS", defaultTickSeconds)
	if err != nil {
		return Config{}, err
	}
	cfg.Sim.TickSeconds = dt

	radius, err := parsePositiveFloat("MAZECHASE_CATCH_RADIUS", maze.DefaultHalfPathWidth)
	if err != nil {
		return Config{}, err
	}
	cfg.Sim.CatchRadius = radius

	return cfg, nil
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseBoolWithDefault(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		val, err := strconv.ParseBool(v)
		if err != nil {
			return fallback
		}
		return val
	}
	return fallback
}

func parsePositiveInt(key string, fallback int) (int, error) {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("invalid %s value %q: %w", key, v, err)
		}
		if n <= 0 {
			return 0, fmt.Errorf("%s must be positive, got %d", key, n)
		}
		return n, nil
	}
	return fallback, nil
}

func parsePositiveFloat(key string, fallback float64) (float64, error) {
	if v := os.Getenv(key); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s value %q: %w", key, v, err)
		}
		if !(f > 0) || f > 1e9 {
			return 0, fmt.Errorf("%s must be a positive number, got %q", key, v)
		}
		return f, nil
	}
	return fallback, nil
}
