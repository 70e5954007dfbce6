// Package config loads process configuration from the environment,
// optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// ErrInvalidValue is returned when a variable cannot be parsed.
var ErrInvalidValue = errors.New("config: invalid value")

// Config holds the application's configuration values.
type Config struct {
	Addr         string // Address to listen on
	BaseURL      string // Base URL for API routes
	GinMode      string // Mode for the Gin framework (release, debug, test)
	LogLevel     string // debug, info, warn or error
	LogFormat    string // text or json
	MaxGridCells int    // Upper bound on rows×cols per request
	MazeSeed     *int64 // Fixed maze seed; nil means time-seeded
}

// Load reads a .env file if one exists, then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug(".env file not loaded", slog.String("error", err.Error()))
	}

	return FromEnv()
}

// FromEnv builds a Config from the current process environment.
func FromEnv() (Config, error) {
	cfg := Config{
		Addr:      getEnvWithDefault("HTTP_ADDR", ":8080"),
		BaseURL:   getEnvWithDefault("BASE_URL", "/api"),
		GinMode:   getEnvWithDefault("GIN_MODE", "release"),
		LogLevel:  getEnvWithDefault("LOG_LEVEL", "info"),
		LogFormat: getEnvWithDefault("LOG_FORMAT", "text"),
	}

	var err error
	if cfg.MaxGridCells, err = getEnvAsInt("MAX_GRID_CELLS", 40000); err != nil {
		return Config{}, err
	}
	if cfg.MaxGridCells <= 0 {
		return Config{}, fmt.Errorf("%w: MAX_GRID_CELLS must be positive, got %d", ErrInvalidValue, cfg.MaxGridCells)
	}
	if raw, ok := os.LookupEnv("MAZE_SEED"); ok && raw != "" {
		seed, perr := strconv.ParseInt(raw, 10, 64)
		if perr != nil {
			return Config{}, fmt.Errorf("%w: MAZE_SEED=%q: %v", ErrInvalidValue, raw, perr)
		}
		cfg.MazeSeed = &seed
	}

	return cfg, nil
}

// SlogLevel maps LogLevel onto a slog.Level. Unknown names fall back to Info.
func (c Config) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}

	return lvl
}

// getEnvAsInt retrieves an integer variable or returns a default value if not set.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q: %v", ErrInvalidValue, key, raw, err)
	}

	return value, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}

	return defaultValue
}
