// Package config loads checker configuration from an optional YAML file
// layered over defaults, with the provider API key also taken from the
// environment.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// APIKeyEnv overrides the configured provider API key when set.
const APIKeyEnv = "HANDLECHECK_API_KEY"

// Config holds every tunable the checker recognizes. The thresholds are
// empirically chosen defaults meant to be tuned against outcome data.
type Config struct {
	Verifier  VerifierConfig  `yaml:"verifier"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Cache     CacheConfig     `yaml:"cache"`

	// RefineThreshold is the heuristic confidence below which direct
	// probes are attempted.
	RefineThreshold int `yaml:"refine_threshold"`
}

// VerifierConfig configures the third-party verification tier.
// An empty APIKey disables the tier.
type VerifierConfig struct {
	APIKey   string `yaml:"api_key"`
	Endpoint string `yaml:"endpoint"`
}

// RateLimitConfig bounds direct probing.
type RateLimitConfig struct {
	WindowSeconds int `yaml:"window_seconds"`
	Capacity      int `yaml:"capacity"`
}

// Window returns the sliding window as a duration.
func (r RateLimitConfig) Window() time.Duration {
	return time.Duration(r.WindowSeconds) * time.Second
}

// CacheConfig bounds the probe result cache.
type CacheConfig struct {
	TTLHours int `yaml:"ttl_hours"`
}

// TTL returns the probe cache TTL as a duration.
func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLHours) * time.Hour
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		RateLimit: RateLimitConfig{
			WindowSeconds: 60,
			Capacity:      10,
		},
		Cache: CacheConfig{
			TTLHours: 24,
		},
		RefineThreshold: 85,
	}
}

// Load reads path over the defaults. An empty path returns the defaults;
// the API key environment variable wins over the file in both cases.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) != "" {
		data, err := os.ReadFile(path) //nolint:gosec // operator-supplied path
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}
	if key := os.Getenv(APIKeyEnv); key != "" {
		cfg.Verifier.APIKey = key
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.RateLimit.WindowSeconds <= 0 {
		return fmt.Errorf("rate_limit.window_seconds must be positive, got %d", c.RateLimit.WindowSeconds)
	}
	if c.RateLimit.Capacity <= 0 {
		return fmt.Errorf("rate_limit.capacity must be positive, got %d", c.RateLimit.Capacity)
	}
	if c.Cache.TTLHours <= 0 {
		return fmt.Errorf("cache.ttl_hours must be positive, got %d", c.Cache.TTLHours)
	}
	if c.RefineThreshold < 0 || c.RefineThreshold > 100 {
		return fmt.Errorf("refine_threshold must be in [0,100], got %d", c.RefineThreshold)
	}
	return nil
}
