package config

import (
	"testing"
	"time"
)

// Environment overrides stop these tests from running in parallel.

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Tracker.SummaryTTL != 60*time.Second {
		t.Errorf("expected summary TTL 60s, got %v", cfg.Tracker.SummaryTTL)
	}
	if cfg.Tracker.ChartTTL != 30*time.Second {
		t.Errorf("expected chart TTL 30s, got %v", cfg.Tracker.ChartTTL)
	}
	if cfg.Tracker.StartDate != "2025-11-01" {
		t.Errorf("expected start date 2025-11-01, got %q", cfg.Tracker.StartDate)
	}
	if cfg.Tracker.RateLimitPerMinute != 60 {
		t.Errorf("expected rate limit 60, got %d", cfg.Tracker.RateLimitPerMinute)
	}
	if !cfg.Database.RunMigrations {
		t.Error("expected migrations enabled by default")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("TRACKER_API_BASE_URL", "http://tracker.internal:9000")
	t.Setenv("SERVER_PORT", "3000")
	t.Setenv("REDIS_HOST", "cache.internal")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Tracker.APIBaseURL != "http://tracker.internal:9000" {
		t.Errorf("expected env override for api base url, got %q", cfg.Tracker.APIBaseURL)
	}
	if cfg.Server.Port != 3000 {
		t.Errorf("expected env override for port, got %d", cfg.Server.Port)
	}
	if cfg.Redis.Host != "cache.internal" {
		t.Errorf("expected env override for redis host, got %q", cfg.Redis.Host)
	}
}
