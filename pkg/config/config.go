// Package config provides configuration management.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"SlideBox/pkg/transition"
)

// Config holds all configuration settings.
type Config struct {
	// Transition settings
	DurationMs            int     `json:"duration_ms"`              // Full-run transition duration in milliseconds
	MinFractionToComplete float64 `json:"min_fraction_to_complete"` // Release threshold in [0,1]; at or below it the gesture reverts
	Curve                 string  `json:"curve"`                    // "linear", "ease-in", "ease-out", "ease-in-out"
	KeepUnusedNodes       bool    `json:"keep_unused_nodes"`        // Leave nodes of other states attached after settling

	// UI settings
	TickMs int `json:"tick_ms"` // Animation tick interval in milliseconds

	// Debug settings
	LogLevel string `json:"log_level"` // DEBUG, INFO, WARN, ERROR
	LogFile  string `json:"log_file"`  // Empty disables logging (the terminal belongs to the TUI)
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		DurationMs:            250,
		MinFractionToComplete: 0.3,
		Curve:                 "ease-in-out",
		TickMs:                33,
		LogLevel:              "INFO",
	}
}

// Load reads configuration from the given path, falling back to defaults
// when the path is empty or the file does not exist. Environment
// variables override file values.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		} else if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides config values from SLIDEBOX_* environment variables.
func applyEnv(cfg *Config) {
	if v := os.Getenv("SLIDEBOX_DURATION_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.DurationMs = n
		}
	}
	if v := os.Getenv("SLIDEBOX_MIN_FRACTION"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.MinFractionToComplete = f
		}
	}
	if v := os.Getenv("SLIDEBOX_CURVE"); v != "" {
		cfg.Curve = v
	}
	if v := os.Getenv("SLIDEBOX_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("SLIDEBOX_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.DurationMs <= 0 {
		return fmt.Errorf("duration_ms must be positive, got %d", c.DurationMs)
	}
	if c.TickMs <= 0 {
		return fmt.Errorf("tick_ms must be positive, got %d", c.TickMs)
	}
	if c.MinFractionToComplete < 0 || c.MinFractionToComplete > 1 {
		return fmt.Errorf("min_fraction_to_complete must be in [0,1], got %v", c.MinFractionToComplete)
	}
	if _, err := transition.CurveByName(c.Curve); err != nil {
		return err
	}
	return nil
}

// TimingCurve resolves the configured curve name. Validate must have
// accepted the config first.
func (c *Config) TimingCurve() transition.Curve {
	curve, err := transition.CurveByName(c.Curve)
	if err != nil {
		curve = transition.EaseInOutCubic
	}
	return curve
}
