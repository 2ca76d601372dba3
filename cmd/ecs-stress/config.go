package main

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Run     RunConfig     `toml:"run"`
	Logging LoggingConfig `toml:"logging"`
}

type RunConfig struct {
	Duration   time.Duration `toml:"duration"`
	Entities   int           `toml:"entities"`
	Worlds     int           `toml:"worlds"`
	FixedEvery int           `toml:"fixed_every"` // fixed-interval sweep once per N frame sweeps
}

type LoggingConfig struct {
	Level       string `toml:"level"`
	Development bool   `toml:"development"`
}

func defaultConfig() *Config {
	return &Config{
		Run: RunConfig{
			Duration:   10 * time.Second,
			Entities:   10000,
			Worlds:     1,
			FixedEvery: 3,
		},
		Logging: LoggingConfig{
			Level:       "info",
			Development: true,
		},
	}
}

// loadConfig returns defaults overlaid with the TOML file at path, when
// given. Flag values are applied on top by the caller.
func loadConfig(path string) (*Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if cfg.Run.Worlds < 1 {
		return nil, fmt.Errorf("config: worlds must be at least 1, got %d", cfg.Run.Worlds)
	}
	if cfg.Run.FixedEvery < 1 {
		return nil, fmt.Errorf("config: fixed_every must be at least 1, got %d", cfg.Run.FixedEvery)
	}
	return cfg, nil
}
