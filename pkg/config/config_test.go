package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.RateLimit.Window() != 60*time.Second {
		t.Errorf("Window = %v, want 60s", cfg.RateLimit.Window())
	}
	if cfg.RateLimit.Capacity != 10 {
		t.Errorf("Capacity = %d, want 10", cfg.RateLimit.Capacity)
	}
	if cfg.Cache.TTL() != 24*time.Hour {
		t.Errorf("TTL = %v, want 24h", cfg.Cache.TTL())
	}
	if cfg.RefineThreshold != 85 {
		t.Errorf("RefineThreshold = %d, want 85", cfg.RefineThreshold)
	}
	if cfg.Verifier.APIKey != "" {
		t.Error("default config carries an API key")
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	t.Setenv(APIKeyEnv, "")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load(\"\") = %+v, want defaults", cfg)
	}
}

func TestLoadOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
verifier:
  api_key: file-key
rate_limit:
  capacity: 3
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Verifier.APIKey != "file-key" {
		t.Errorf("APIKey = %q, want file-key", cfg.Verifier.APIKey)
	}
	if cfg.RateLimit.Capacity != 3 {
		t.Errorf("Capacity = %d, want 3", cfg.RateLimit.Capacity)
	}
	// Untouched keys keep their defaults.
	if cfg.RateLimit.WindowSeconds != 60 {
		t.Errorf("WindowSeconds = %d, want the default 60", cfg.RateLimit.WindowSeconds)
	}
	if cfg.RefineThreshold != 85 {
		t.Errorf("RefineThreshold = %d, want the default 85", cfg.RefineThreshold)
	}
}

func TestEnvKeyWinsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("verifier:\n  api_key: file-key\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(APIKeyEnv, "env-key")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Verifier.APIKey != "env-key" {
		t.Errorf("APIKey = %q, want env-key", cfg.Verifier.APIKey)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load succeeded on a missing file")
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"zero capacity", "rate_limit:\n  capacity: 0\n  window_seconds: 60\n", "capacity"},
		{"negative window", "rate_limit:\n  window_seconds: -1\n", "window_seconds"},
		{"zero ttl", "cache:\n  ttl_hours: 0\n", "ttl_hours"},
		{"threshold out of range", "refine_threshold: 101\n", "refine_threshold"},
		{"unparseable", "rate_limit: [not a map\n", "parse config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0o600); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if err == nil {
				t.Fatal("Load accepted an invalid config")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}
