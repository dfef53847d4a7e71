package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SCHEDULER_HOUR", "")
	t.Setenv("JWT_EXPIRES_IN", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.SchedulerHour != 6 {
		t.Errorf("expected default scheduler hour 6, got %d", cfg.SchedulerHour)
	}
	if cfg.JWTExpirationDur != 15*time.Minute {
		t.Errorf("expected 15m expiry, got %s", cfg.JWTExpirationDur)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SCHEDULER_ENABLED", "false")
	t.Setenv("SCHEDULER_HOUR", "30")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("NATS_URL", "nats://localhost:4222")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.SchedulerEnabled {
		t.Error("expected scheduler disabled")
	}
	if cfg.SchedulerHour != 6 {
		t.Errorf("out of range hour should fall back to 6, got %d", cfg.SchedulerHour)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://b.example" {
		t.Errorf("unexpected origins %v", cfg.CORSOrigins)
	}
	if cfg.NATSURL != "nats://localhost:4222" {
		t.Errorf("unexpected NATS url %q", cfg.NATSURL)
	}
}
