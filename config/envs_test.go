package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"HTTP_ADDR", "BASE_URL", "GIN_MODE", "LOG_LEVEL", "LOG_FORMAT", "MAX_GRID_CELLS", "MAZE_SEED"} {
		t.Setenv(k, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "/api", cfg.BaseURL)
	assert.Equal(t, "release", cfg.GinMode)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 40000, cfg.MaxGridCells)
	assert.Nil(t, cfg.MazeSeed)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_ADDR", "127.0.0.1:9000")
	t.Setenv("BASE_URL", "/grid")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("MAX_GRID_CELLS", "1024")
	t.Setenv("MAZE_SEED", "-17")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.Equal(t, "/grid", cfg.BaseURL)
	assert.Equal(t, 1024, cfg.MaxGridCells)
	require.NotNil(t, cfg.MazeSeed)
	assert.Equal(t, int64(-17), *cfg.MazeSeed)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestFromEnv_Invalid(t *testing.T) {
	cases := map[string]string{
		"MAX_GRID_CELLS": "lots",
		"MAZE_SEED":      "0x",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, val)
			_, err := FromEnv()
			assert.ErrorIs(t, err, ErrInvalidValue)
		})
	}

	clearEnv(t)
	t.Setenv("MAX_GRID_CELLS", "0")
	_, err := FromEnv()
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestSlogLevel_Fallback(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, Config{LogLevel: "chatty"}.SlogLevel())
	assert.Equal(t, slog.LevelWarn, Config{LogLevel: "WARN"}.SlogLevel())
}
