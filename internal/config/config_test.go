package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.API.BaseURL == "" {
		t.Error("default base URL should not be empty")
	}
	if got := cfg.APITimeout(); got != 15*time.Second {
		t.Errorf("APITimeout() = %v, want 15s", got)
	}
	if cfg.Dashboard.ActivityLimit != 10 {
		t.Errorf("ActivityLimit = %d, want 10", cfg.Dashboard.ActivityLimit)
	}
	if cfg.Dashboard.PerformancePeriod != "30days" {
		t.Errorf("PerformancePeriod = %q, want 30days", cfg.Dashboard.PerformancePeriod)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.API.BaseURL != DefaultConfig().API.BaseURL {
		t.Errorf("missing file should yield defaults, got %q", cfg.API.BaseURL)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	cfg := DefaultConfig()
	cfg.API.BaseURL = "https://farm.example.com/api"
	cfg.API.Timeout = "30s"
	cfg.Dashboard.ActivityLimit = 25
	cfg.Logging.DebugMode = true

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.API.BaseURL != "https://farm.example.com/api" {
		t.Errorf("BaseURL = %q", loaded.API.BaseURL)
	}
	if loaded.APITimeout() != 30*time.Second {
		t.Errorf("APITimeout() = %v, want 30s", loaded.APITimeout())
	}
	if loaded.Dashboard.ActivityLimit != 25 {
		t.Errorf("ActivityLimit = %d, want 25", loaded.Dashboard.ActivityLimit)
	}
	if !loaded.Logging.DebugMode {
		t.Error("DebugMode should survive the round trip")
	}
}

func TestEnvOverrides(t *testing.T) {
	os.Setenv("POULTRY360_API_URL", "https://override.example.com/api")
	os.Setenv("POULTRY360_TIMEOUT", "5s")
	os.Setenv("POULTRY360_DATA_DIR", "/tmp/p360")
	defer func() {
		os.Unsetenv("POULTRY360_API_URL")
		os.Unsetenv("POULTRY360_TIMEOUT")
		os.Unsetenv("POULTRY360_DATA_DIR")
	}()

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.API.BaseURL != "https://override.example.com/api" {
		t.Errorf("env override missed: BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.APITimeout() != 5*time.Second {
		t.Errorf("env override missed: APITimeout() = %v", cfg.APITimeout())
	}
	if cfg.DataDir() != "/tmp/p360" {
		t.Errorf("env override missed: DataDir() = %q", cfg.DataDir())
	}
}

func TestAPITimeoutFallsBackOnGarbage(t *testing.T) {
	cfg := DefaultConfig()
	cfg.API.Timeout = "soon"
	if got := cfg.APITimeout(); got != 15*time.Second {
		t.Errorf("APITimeout() = %v, want 15s fallback", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"empty base url", func(c *Config) { c.API.BaseURL = "" }, true},
		{"bad timeout", func(c *Config) { c.API.Timeout = "yesterday" }, true},
		{"negative activity limit", func(c *Config) { c.Dashboard.ActivityLimit = -1 }, true},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, true},
		{"warn level", func(c *Config) { c.Logging.Level = "warn" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
