package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "tui", cfg.Renderer)
	assert.Equal(t, "sqlite", cfg.Store)
	assert.Equal(t, "lifeguard.db", cfg.SQLitePath)
	assert.Empty(t, cfg.LayoutPath)
	assert.Equal(t, slog.LevelInfo, cfg.Level())
}

func TestLoad_EnvThenFlags(t *testing.T) {
	t.Setenv("LIFEGUARD_STORE", "redis")
	t.Setenv("LIFEGUARD_REDIS_ADDR", "redis:6380")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LIFEGUARD_RENDERER", "ebiten")

	cfg, err := Load([]string{"-store", "memory", "-layout", "pool.yaml"})
	require.NoError(t, err)
	assert.Equal(t, "memory", cfg.Store, "flag wins over env")
	assert.Equal(t, "redis:6380", cfg.RedisAddr)
	assert.Equal(t, "ebiten", cfg.Renderer)
	assert.Equal(t, "pool.yaml", cfg.LayoutPath)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load([]string{"-renderer", "sdl"})
	assert.ErrorContains(t, err, "unknown renderer")

	_, err = Load([]string{"-nope"})
	assert.Error(t, err)
}

func TestParseLogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"loud":    slog.LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, parseLogLevel(in), in)
	}
}
