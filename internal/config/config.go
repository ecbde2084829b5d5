package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all poultry360 configuration.
type Config struct {
	// Server connection
	API APIConfig `yaml:"api"`

	// Local state (credentials, logs)
	Storage StorageConfig `yaml:"storage"`

	// Dashboard rendering
	Dashboard DashboardConfig `yaml:"dashboard"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// APIConfig configures the connection to the poultry360 server.
type APIConfig struct {
	BaseURL string `yaml:"base_url"`
	Timeout string `yaml:"timeout"`
}

// StorageConfig configures where local state lives.
type StorageConfig struct {
	// DataDir holds credentials.json and the logs directory.
	// Empty means ~/.poultry360.
	DataDir string `yaml:"data_dir"`
}

// DashboardConfig configures the dashboard view.
type DashboardConfig struct {
	ActivityLimit     int    `yaml:"activity_limit"`
	PerformancePeriod string `yaml:"performance_period"` // e.g. 30days
	Currency          string `yaml:"currency"`
}

// LoggingConfig configures the categorized file logger.
type LoggingConfig struct {
	DebugMode  bool     `yaml:"debug_mode"`
	Level      string   `yaml:"level"` // debug, info, warn, error
	Categories []string `yaml:"categories"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: "http://localhost:5000/api",
			Timeout: "15s",
		},
		Storage: StorageConfig{
			DataDir: "",
		},
		Dashboard: DashboardConfig{
			ActivityLimit:     10,
			PerformancePeriod: "30days",
			Currency:          "UGX",
		},
		Logging: LoggingConfig{
			DebugMode: false,
			Level:     "info",
		},
	}
}

// DefaultPath returns the standard config location, ~/.poultry360/config.yaml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(home, ".poultry360", "config.yaml")
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults; environment overrides apply either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if url := os.Getenv("POULTRY360_API_URL"); url != "" {
		c.API.BaseURL = url
	}
	if timeout := os.Getenv("POULTRY360_TIMEOUT"); timeout != "" {
		c.API.Timeout = timeout
	}
	if dir := os.Getenv("POULTRY360_DATA_DIR"); dir != "" {
		c.Storage.DataDir = dir
	}
}

// APITimeout returns the request timeout as a duration.
func (c *Config) APITimeout() time.Duration {
	d, err := time.ParseDuration(c.API.Timeout)
	if err != nil || d <= 0 {
		return 15 * time.Second
	}
	return d
}

// DataDir resolves the data directory, defaulting to ~/.poultry360.
func (c *Config) DataDir() string {
	if c.Storage.DataDir != "" {
		return c.Storage.DataDir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".poultry360"
	}
	return filepath.Join(home, ".poultry360")
}

// Validate checks the configuration for obvious mistakes.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}
	if c.API.Timeout != "" {
		if _, err := time.ParseDuration(c.API.Timeout); err != nil {
			return fmt.Errorf("api.timeout is not a valid duration: %w", err)
		}
	}
	if c.Dashboard.ActivityLimit < 0 {
		return fmt.Errorf("dashboard.activity_limit cannot be negative")
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error")
	}
	return nil
}
