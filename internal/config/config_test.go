package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ZENCHECK_DB_PATH", "")
	t.Setenv("ZENCHECK_SWEEP_SECONDS", "")
	t.Setenv("ZENCHECK_DESKTOP_NOTIFICATIONS", "")
	t.Setenv("GEMINI_API_KEY", "")

	cfg := Load()
	if cfg.DBPath == "" {
		t.Fatal("expected a default db path")
	}
	if cfg.SweepInterval != 60*time.Second {
		t.Fatalf("expected 60s sweep default, got %s", cfg.SweepInterval)
	}
	if !cfg.DesktopNotifications {
		t.Fatal("desktop notifications must default on")
	}
	if cfg.GeminiAPIKey != "" {
		t.Fatal("api key must default empty")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ZENCHECK_DB_PATH", "/tmp/custom.db")
	t.Setenv("ZENCHECK_SWEEP_SECONDS", "15")
	t.Setenv("ZENCHECK_DESKTOP_NOTIFICATIONS", "false")
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg := Load()
	if cfg.DBPath != "/tmp/custom.db" {
		t.Fatalf("db path override lost: %q", cfg.DBPath)
	}
	if cfg.SweepInterval != 15*time.Second {
		t.Fatalf("sweep override lost: %s", cfg.SweepInterval)
	}
	if cfg.DesktopNotifications {
		t.Fatal("notification override lost")
	}
	if cfg.GeminiAPIKey != "test-key" {
		t.Fatal("api key override lost")
	}
}

func TestLoadRejectsBadSweepSeconds(t *testing.T) {
	t.Setenv("ZENCHECK_SWEEP_SECONDS", "soon")
	cfg := Load()
	if cfg.SweepInterval != 60*time.Second {
		t.Fatalf("invalid seconds must keep the default, got %s", cfg.SweepInterval)
	}

	t.Setenv("ZENCHECK_SWEEP_SECONDS", "-5")
	cfg = Load()
	if cfg.SweepInterval != 60*time.Second {
		t.Fatalf("negative seconds must keep the default, got %s", cfg.SweepInterval)
	}
}
