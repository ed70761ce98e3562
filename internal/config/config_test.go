package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.BaseURL != "http://www.38.co.kr" {
		t.Errorf("unexpected base URL: %s", cfg.BaseURL)
	}
	if cfg.MaxRetries != 3 {
		t.Errorf("expected 3 retries, got %d", cfg.MaxRetries)
	}
	if cfg.RequestDelay() != 1500*time.Millisecond {
		t.Errorf("expected 1.5s delay, got %v", cfg.RequestDelay())
	}
	if cfg.RequestTimeout() != 10*time.Second {
		t.Errorf("expected 10s timeout, got %v", cfg.RequestTimeout())
	}
	if len(cfg.NoiseKeywords) == 0 {
		t.Error("expected default noise keywords to be populated")
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.BaseURL != Default().BaseURL {
		t.Errorf("expected default base URL, got %s", cfg.BaseURL)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
calendar_id: test-calendar@example.com
request_delay: 0.1
max_retries: 5
noise_keywords:
  - 실시간
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.CalendarID != "test-calendar@example.com" {
		t.Errorf("unexpected calendar ID: %s", cfg.CalendarID)
	}
	if cfg.RequestDelay() != 100*time.Millisecond {
		t.Errorf("expected 100ms delay, got %v", cfg.RequestDelay())
	}
	if cfg.MaxRetries != 5 {
		t.Errorf("expected 5 retries, got %d", cfg.MaxRetries)
	}
	if len(cfg.NoiseKeywords) != 1 {
		t.Errorf("expected keyword list to be replaced, got %d entries", len(cfg.NoiseKeywords))
	}
	// Unset fields keep their defaults.
	if cfg.BaseURL != Default().BaseURL {
		t.Errorf("expected default base URL, got %s", cfg.BaseURL)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv(EnvCalendarID, "env-calendar@example.com")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.CalendarID != "env-calendar@example.com" {
		t.Errorf("expected env override, got %s", cfg.CalendarID)
	}
}
