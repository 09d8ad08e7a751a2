// Package config loads runtime settings from the environment and flags.
package config

import (
	"flag"
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds every runtime setting. Environment variables are read first,
// command-line flags override them.
type Config struct {
	Renderer    string `env:"LIFEGUARD_RENDERER" envDefault:"tui"`
	LayoutPath  string `env:"LIFEGUARD_LAYOUT"`
	Store       string `env:"LIFEGUARD_STORE" envDefault:"sqlite"`
	SQLitePath  string `env:"LIFEGUARD_SQLITE_PATH" envDefault:"lifeguard.db"`
	RedisAddr   string `env:"LIFEGUARD_REDIS_ADDR" envDefault:"localhost:6379"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile     string `env:"LIFEGUARD_LOG_FILE" envDefault:"lifeguard.log"`
}

// Load parses the environment, then args (without the program name)
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("lifeguard", flag.ContinueOnError)
	fs.StringVar(&cfg.Renderer, "renderer", cfg.Renderer, "frontend: tui or ebiten")
	fs.StringVar(&cfg.LayoutPath, "layout", cfg.LayoutPath, "facility layout YAML (default: built in)")
	fs.StringVar(&cfg.Store, "store", cfg.Store, "progress store: memory, sqlite or redis")
	fs.StringVar(&cfg.SQLitePath, "sqlite", cfg.SQLitePath, "SQLite database path")
	fs.StringVar(&cfg.RedisAddr, "redis", cfg.RedisAddr, "Redis address")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "log file path")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	switch cfg.Renderer {
	case "tui", "ebiten":
	default:
		return nil, fmt.Errorf("unknown renderer %q", cfg.Renderer)
	}
	return cfg, nil
}

// Level returns the configured log level
func (c *Config) Level() slog.Level {
	return parseLogLevel(c.LogLevel)
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
