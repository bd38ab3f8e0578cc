package config

import (
	"os"
	"testing"
)

// unsetenv clears name for the duration of the test, restoring it after.
func unsetenv(t *testing.T, name string) {
	t.Helper()
	t.Setenv(name, "")
	_ = os.Unsetenv(name)
}

func TestRead(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("PATHAO_WEBHOOK_SECRET", "shared-secret")
	t.Setenv("PATHAO_INTEGRATION_SECRET", "integration-secret")

	cfg, err := Read()
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if cfg.Addr != ":9090" {
		t.Errorf("Addr = %q, want %q", cfg.Addr, ":9090")
	}
	if cfg.WebhookSecret != "shared-secret" {
		t.Errorf("WebhookSecret = %q", cfg.WebhookSecret)
	}
	if cfg.IntegrationSecret != "integration-secret" {
		t.Errorf("IntegrationSecret = %q", cfg.IntegrationSecret)
	}
}

func TestReadDefaults(t *testing.T) {
	unsetenv(t, "ADDR")
	t.Setenv("PATHAO_WEBHOOK_SECRET", "shared-secret")

	cfg, err := Read()
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, want %q", cfg.Addr, ":8080")
	}
}

func TestReadMissingSecret(t *testing.T) {
	unsetenv(t, "PATHAO_WEBHOOK_SECRET")

	if _, err := Read(); err == nil {
		t.Fatal("Read() error = nil, want error for missing secret")
	}
}
