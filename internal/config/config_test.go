package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Addr != ":8080" {
		t.Errorf("Expected default addr :8080, got %q", cfg.Addr)
	}
	if cfg.MaxMessageSize != 4096 {
		t.Errorf("Expected default max message size 4096, got %d", cfg.MaxMessageSize)
	}
	if cfg.CacheTTL != time.Hour {
		t.Errorf("Expected default cache TTL 1h, got %v", cfg.CacheTTL)
	}
	if cfg.ConnectionsPerMinute != 10 || cfg.ConnectionBurst != 5 {
		t.Errorf("Expected default connection limits 10/min burst 5, got %g/%d", cfg.ConnectionsPerMinute, cfg.ConnectionBurst)
	}
	if cfg.IdleTTL != time.Hour {
		t.Errorf("Expected default idle TTL 1h, got %v", cfg.IdleTTL)
	}
	if cfg.CatalogFile != "" {
		t.Errorf("Expected no default catalog file, got %q", cfg.CatalogFile)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("MAX_CLIENTS", "5")
	t.Setenv("MESSAGES_PER_SECOND", "12.5")
	t.Setenv("CACHE_TTL", "30m")
	t.Setenv("CONNECTIONS_PER_MINUTE", "60")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Addr != ":9090" {
		t.Errorf("Expected addr :9090, got %q", cfg.Addr)
	}
	if cfg.MaxClients != 5 {
		t.Errorf("Expected max clients 5, got %d", cfg.MaxClients)
	}
	if cfg.MessagesPerSecond != 12.5 {
		t.Errorf("Expected 12.5 messages per second, got %g", cfg.MessagesPerSecond)
	}
	if cfg.CacheTTL != 30*time.Minute {
		t.Errorf("Expected cache TTL 30m, got %v", cfg.CacheTTL)
	}
	if cfg.ConnectionsPerMinute != 60 {
		t.Errorf("Expected 60 connections per minute, got %g", cfg.ConnectionsPerMinute)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("MAX_CLIENTS", "many")

	if _, err := Load(); err == nil {
		t.Fatal("Expected error for non-numeric MAX_CLIENTS")
	}
}
