package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
	if cfg.DurationMs != 250 {
		t.Errorf("DurationMs = %d, want 250", cfg.DurationMs)
	}
	if cfg.MinFractionToComplete != 0.3 {
		t.Errorf("MinFractionToComplete = %v, want 0.3", cfg.MinFractionToComplete)
	}
	if cfg.Curve != "ease-in-out" {
		t.Errorf("Curve = %q, want ease-in-out", cfg.Curve)
	}
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DurationMs != DefaultConfig().DurationMs {
		t.Errorf("DurationMs = %d, want default", cfg.DurationMs)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"duration_ms": 400, "min_fraction_to_complete": 0.5, "curve": "linear"}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DurationMs != 400 {
		t.Errorf("DurationMs = %d, want 400", cfg.DurationMs)
	}
	if cfg.MinFractionToComplete != 0.5 {
		t.Errorf("MinFractionToComplete = %v, want 0.5", cfg.MinFractionToComplete)
	}
	if cfg.Curve != "linear" {
		t.Errorf("Curve = %q, want linear", cfg.Curve)
	}
	if cfg.TickMs != DefaultConfig().TickMs {
		t.Errorf("TickMs = %d, want default for omitted field", cfg.TickMs)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SLIDEBOX_DURATION_MS", "600")
	t.Setenv("SLIDEBOX_CURVE", "ease-out")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DurationMs != 600 {
		t.Errorf("DurationMs = %d, want 600", cfg.DurationMs)
	}
	if cfg.Curve != "ease-out" {
		t.Errorf("Curve = %q, want ease-out", cfg.Curve)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults ok", func(c *Config) {}, false},
		{"zero duration", func(c *Config) { c.DurationMs = 0 }, true},
		{"negative duration", func(c *Config) { c.DurationMs = -1 }, true},
		{"zero tick", func(c *Config) { c.TickMs = 0 }, true},
		{"threshold too high", func(c *Config) { c.MinFractionToComplete = 1.1 }, true},
		{"threshold negative", func(c *Config) { c.MinFractionToComplete = -0.1 }, true},
		{"threshold at one", func(c *Config) { c.MinFractionToComplete = 1 }, false},
		{"unknown curve", func(c *Config) { c.Curve = "bounce" }, true},
		{"linear curve", func(c *Config) { c.Curve = "linear" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
