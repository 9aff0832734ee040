// Package config loads application settings from defaults and
// EDUMOOD_* environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"github.com/hajira/edumood/internal/fetcher"
)

// Backend names for the storage layer.
const (
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Config holds all runtime settings.
type Config struct {
	// DBPath is the SQLite file. Empty means the default data path.
	DBPath string `koanf:"db_path"`

	// Backend selects sqlite or memory storage.
	Backend string `koanf:"backend"`

	// LogFile receives structured logs. Empty disables logging.
	LogFile string `koanf:"log_file"`

	// Content service simulation knobs.
	FetchMinDelayMs  int     `koanf:"fetch_min_delay_ms"`
	FetchMaxDelayMs  int     `koanf:"fetch_max_delay_ms"`
	FetchFailureRate float64 `koanf:"fetch_failure_rate"`
}

func defaults() map[string]any {
	return map[string]any{
		"db_path":            "",
		"backend":            BackendSQLite,
		"log_file":           "",
		"fetch_min_delay_ms": 1000,
		"fetch_max_delay_ms": 2000,
		"fetch_failure_rate": 0.10,
	}
}

// Load builds the configuration: hardcoded defaults overridden by
// EDUMOOD_* environment variables (EDUMOOD_FETCH_FAILURE_RATE and so on).
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if err := k.Load(env.Provider("EDUMOOD_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "EDUMOOD_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for inconsistent values.
func (c *Config) Validate() error {
	if c.Backend != BackendSQLite && c.Backend != BackendMemory {
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
	if c.FetchMinDelayMs < 0 || c.FetchMaxDelayMs < 0 {
		return fmt.Errorf("fetch delays must not be negative")
	}
	if c.FetchMaxDelayMs < c.FetchMinDelayMs {
		return fmt.Errorf("fetch_max_delay_ms %d below fetch_min_delay_ms %d",
			c.FetchMaxDelayMs, c.FetchMinDelayMs)
	}
	if c.FetchFailureRate < 0 || c.FetchFailureRate > 1 {
		return fmt.Errorf("fetch_failure_rate %g outside [0, 1]", c.FetchFailureRate)
	}
	return nil
}

// FetcherConfig converts the fetch knobs into a fetcher.Config.
func (c *Config) FetcherConfig() fetcher.Config {
	return fetcher.Config{
		MinDelay:    time.Duration(c.FetchMinDelayMs) * time.Millisecond,
		MaxDelay:    time.Duration(c.FetchMaxDelayMs) * time.Millisecond,
		FailureRate: c.FetchFailureRate,
	}
}
