package config

import (
	"flag"
	"os"
	"path/filepath"
	"regexp"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	// Server-side settings
	DatabaseDSN string `env:"DATABASE_URI"`
	AuthSecret  string `env:"AUTH_SECRET"`

	// Object store (S3-compatible) settings
	S3Endpoint      string `env:"S3_ENDPOINT"`
	S3Region        string `env:"S3_REGION"`
	S3Bucket        string `env:"S3_BUCKET"`
	S3AccessKey     string `env:"S3_ACCESS_KEY"`
	S3SecretKey     string `env:"S3_SECRET_KEY"`
	S3PublicBaseURL string `env:"S3_PUBLIC_BASE_URL"`
	AssetMaxSizeMB  int    `env:"ASSET_MAX_MB"`

	// Shared settings
	BaseURL     string `env:"BASE_URL"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`

	// Console-side settings
	ServerURL    string `env:"-"`
	ConsoleDBDir string `env:"CONSOLE_DB_DIR"`
	Version      bool   `env:"-"` // show console version and exit (flag only)
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags работают ТОЛЬКО если переменные из env не заданы
	// Server flags
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД")
	flag.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "секрет для подписи JWT")
	flag.StringVar(&cfg.S3Endpoint, "s3-endpoint", cfg.S3Endpoint, "endpoint S3-совместимого хранилища")
	flag.StringVar(&cfg.S3Region, "s3-region", cfg.S3Region, "регион S3")
	flag.StringVar(&cfg.S3Bucket, "s3-bucket", cfg.S3Bucket, "бакет для загружаемых ассетов")
	flag.StringVar(&cfg.S3AccessKey, "s3-access-key", cfg.S3AccessKey, "ключ доступа S3")
	flag.StringVar(&cfg.S3SecretKey, "s3-secret-key", cfg.S3SecretKey, "секретный ключ S3")
	flag.StringVar(&cfg.S3PublicBaseURL, "s3-public-url", cfg.S3PublicBaseURL, "базовый публичный URL бакета")
	flag.IntVar(&cfg.AssetMaxSizeMB, "asset-max-mb", cfg.AssetMaxSizeMB, "максимальный размер одного ассета, МБ")
	// Shared/console flags
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "base URL of the PortfolioDesk server (may be host:port)")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "enable HTTPS (console: prefer https scheme for BaseURL)")
	// Console flags
	flag.StringVar(&cfg.ConsoleDBDir, "console-db", cfg.ConsoleDBDir, "каталог данных консоли (сессия, черновики)")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show console version and exit")

	flag.Parse()

	// Defaults
	if cfg.AuthSecret == "" {
		cfg.AuthSecret = "dev-secret-key"
	}
	if cfg.AssetMaxSizeMB <= 0 {
		cfg.AssetMaxSizeMB = 10
	}
	if cfg.S3Bucket == "" {
		cfg.S3Bucket = "portfolio-assets"
	}
	if cfg.S3Region == "" {
		cfg.S3Region = "us-east-1"
	}
	// validate BaseURL: must be in "address:port" (no scheme, no path). Otherwise use default.
	hostPortRe := regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = "localhost:8081"
	}

	if cfg.EnableHTTPS {
		cfg.ServerURL = "https://" + cfg.BaseURL
	} else {
		cfg.ServerURL = "http://" + cfg.BaseURL
	}

	// Fill console defaults if empty
	home, _ := os.UserHomeDir()
	if cfg.ConsoleDBDir == "" {
		cfg.ConsoleDBDir = filepath.Join(home, ".pdesk")
	}

	return cfg
}
