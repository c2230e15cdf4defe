package config

import (
	"flag"
	"os"
	"strings"
	"testing"
)

// resetFlagSet создаёт новый FlagSet перед каждым вызовом NewConfig,
// чтобы избежать повторной регистрации одних и тех же флагов между тестами.
func resetFlagSet(t *testing.T) {
	t.Helper()
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	// подавляем вывод парсера флагов в тестах
	flag.CommandLine.SetOutput(os.Stderr)
}

func TestNewConfig_DefaultsWhenEnvEmpty(t *testing.T) {
	t.Setenv("DATABASE_URI", "")
	t.Setenv("AUTH_SECRET", "")
	t.Setenv("BASE_URL", "")
	t.Setenv("ENABLE_HTTPS", "")
	t.Setenv("ASSET_MAX_MB", "")
	t.Setenv("S3_BUCKET", "")
	t.Setenv("S3_REGION", "")
	t.Setenv("CONSOLE_DB_DIR", "")
	t.Setenv("TOKEN_FILE", "")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.AuthSecret != "dev-secret-key" {
		t.Fatalf("AuthSecret default expected 'dev-secret-key', got %q", cfg.AuthSecret)
	}
	if cfg.AssetMaxSizeMB != 10 {
		t.Fatalf("AssetMaxSizeMB default expected 10, got %d", cfg.AssetMaxSizeMB)
	}
	if cfg.S3Bucket != "portfolio-assets" {
		t.Fatalf("S3Bucket default expected 'portfolio-assets', got %q", cfg.S3Bucket)
	}
	if cfg.BaseURL != "localhost:8081" {
		t.Fatalf("BaseURL default expected 'localhost:8081', got %q", cfg.BaseURL)
	}
	if cfg.ServerURL != "http://localhost:8081" {
		t.Fatalf("ServerURL default expected 'http://localhost:8081', got %q", cfg.ServerURL)
	}
	if cfg.ConsoleDBDir == "" {
		t.Fatalf("console defaults must be non-empty: ConsoleDBDir=%q", cfg.ConsoleDBDir)
	}
}

func TestNewConfig_BaseURLAndHTTPS(t *testing.T) {
	t.Setenv("BASE_URL", "example.com:443")
	t.Setenv("ENABLE_HTTPS", "true")
	t.Setenv("AUTH_SECRET", "top")
	t.Setenv("ASSET_MAX_MB", "25")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.BaseURL != "example.com:443" {
		t.Fatalf("BaseURL expected 'example.com:443', got %q", cfg.BaseURL)
	}
	if cfg.ServerURL != "https://example.com:443" {
		t.Fatalf("ServerURL expected 'https://example.com:443', got %q", cfg.ServerURL)
	}
	if cfg.AuthSecret != "top" {
		t.Fatalf("AuthSecret expected from env 'top', got %q", cfg.AuthSecret)
	}
	if cfg.AssetMaxSizeMB != 25 {
		t.Fatalf("AssetMaxSizeMB expected 25, got %d", cfg.AssetMaxSizeMB)
	}
}

func TestNewConfig_InvalidBaseURLFallback(t *testing.T) {
	// Невалидный BASE_URL (со схемой) должен откатиться на localhost:8081
	t.Setenv("BASE_URL", "http://bad:8080")
	t.Setenv("ENABLE_HTTPS", "false")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.BaseURL != "localhost:8081" {
		t.Fatalf("invalid BASE_URL must fallback to 'localhost:8081', got %q", cfg.BaseURL)
	}
	if !strings.HasPrefix(cfg.ServerURL, "http://localhost:8081") {
		t.Fatalf("ServerURL must reflect fallback base, got %q", cfg.ServerURL)
	}
}
