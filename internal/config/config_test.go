package config

import (
	"testing"
	"time"

	"github.com/khelsetu/arena/internal/usecase"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_DBURLRequiredOutsideDev(t *testing.T) {
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("DB_URL", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when APP_ENV=prod without DB_URL")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_LeaderboardDefaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("LEADERBOARD_DEFAULT_VIEW", "")
	t.Setenv("LEADERBOARD_WORKERS", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.LeaderboardDefaultView != usecase.ViewDistrict {
		t.Fatalf("unexpected default view: %s", cfg.LeaderboardDefaultView)
	}
	if cfg.LeaderboardWorkers != 8 {
		t.Fatalf("unexpected default workers: %d", cfg.LeaderboardWorkers)
	}
}

func TestLoad_LeaderboardViewValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("LEADERBOARD_DEFAULT_VIEW", "neighborhood")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid LEADERBOARD_DEFAULT_VIEW")
	}
}

func TestLoad_GeodataConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("GEODATA_ENABLED", "true")
	t.Setenv("GEODATA_BASE_URL", "https://geo.internal.example")
	t.Setenv("GEODATA_API_KEY", "key-123")
	t.Setenv("GEODATA_TIMEOUT", "7s")
	t.Setenv("GEODATA_CIRCUIT_FAILURE_COUNT", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.GeodataEnabled {
		t.Fatalf("expected GeodataEnabled=true")
	}
	if cfg.GeodataBaseURL != "https://geo.internal.example" {
		t.Fatalf("unexpected GeodataBaseURL: %q", cfg.GeodataBaseURL)
	}
	if cfg.GeodataAPIKey != "key-123" {
		t.Fatalf("unexpected GeodataAPIKey")
	}
	if cfg.GeodataTimeout != 7*time.Second {
		t.Fatalf("unexpected GeodataTimeout: %s", cfg.GeodataTimeout)
	}
	if cfg.GeodataCircuitFailureCount != 3 {
		t.Fatalf("unexpected GeodataCircuitFailureCount: %d", cfg.GeodataCircuitFailureCount)
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "uptrace-dsn=https://token@api.uptrace.dev/1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev/1" {
		t.Fatalf("unexpected UptraceDSN: %q", cfg.UptraceDSN)
	}
}

func TestLoad_CORSOriginsCSV(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if len(cfg.CORSAllowedOrigins) != 2 {
		t.Fatalf("unexpected origins: %v", cfg.CORSAllowedOrigins)
	}
	if cfg.CORSAllowedOrigins[0] != "https://a.example" || cfg.CORSAllowedOrigins[1] != "https://b.example" {
		t.Fatalf("unexpected origins: %v", cfg.CORSAllowedOrigins)
	}
}
