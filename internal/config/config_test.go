package config

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"APP_PORT", "APP_ENV", "LOG_LEVEL", "DATABASE_URL", "BOX_OFFICE_CHANNEL_ID", "DEFAULT_CURRENCY", "SYNC_DELAY"} {
		t.Setenv(k, "") // empty variables fall back to defaults
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" || cfg.Env != "dev" || cfg.LogLevel != "info" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.BoxOfficeChannelID != "box-office" || cfg.DefaultCurrency != "USD" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.SyncDelay != 1500*time.Millisecond {
		t.Fatalf("SyncDelay = %s", cfg.SyncDelay)
	}
	if !cfg.UseSeed() {
		t.Fatalf("empty DATABASE_URL should select the seed catalog")
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("APP_ENV", "production")
	t.Setenv("BOX_OFFICE_CHANNEL_ID", "onsite-main")
	t.Setenv("DEFAULT_CURRENCY", "eur")
	t.Setenv("SYNC_DELAY", "2s")
	t.Setenv("DATABASE_URL", "postgres://localhost/catalog?sslmode=disable")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9090" || !cfg.IsProduction() {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.BoxOfficeChannelID != "onsite-main" || cfg.DefaultCurrency != "EUR" || cfg.SyncDelay != 2*time.Second {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.UseSeed() {
		t.Fatalf("DATABASE_URL set, seed must not be used")
	}
}

func TestLoad_RejectsNegativeDelay(t *testing.T) {
	t.Setenv("SYNC_DELAY", "-1s")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for negative delay")
	}
}

func TestNewLogger(t *testing.T) {
	prod := NewLogger(&Config{Env: "production", LogLevel: "debug"})
	if _, ok := prod.Formatter.(*logrus.JSONFormatter); !ok {
		t.Fatalf("production logger should use JSON, got %T", prod.Formatter)
	}
	if prod.GetLevel() != logrus.DebugLevel {
		t.Fatalf("level = %s", prod.GetLevel())
	}

	dev := NewLogger(&Config{Env: "dev", LogLevel: "nonsense"})
	if _, ok := dev.Formatter.(*logrus.TextFormatter); !ok {
		t.Fatalf("dev logger should use text, got %T", dev.Formatter)
	}
	if dev.GetLevel() != logrus.InfoLevel {
		t.Fatalf("level = %s", dev.GetLevel())
	}
}
