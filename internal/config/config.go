package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config is the full application configuration, populated from environment
// variables (with a .env file loaded in development).
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Email    EmailConfig
	MinIO    MinIOConfig
	Site     SiteConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret             string
	AccessTokenExpiry  int // minutes
	RefreshTokenExpiry int // hours
}

type EmailConfig struct {
	SMTPHost  string
	SMTPPort  string
	From      string
	LeadInbox string // where lead notifications go
}

type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// SiteConfig describes the public site the API serves.
type SiteConfig struct {
	BaseURL      string // e.g. https://perkpal.io, used for sitemap and link rendering
	CacheTTLSecs int    // TTL for cached public listings
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	accessExpiry, err := strconv.Atoi(getEnv("JWT_ACCESS_EXPIRY_MINUTES", "60"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_ACCESS_EXPIRY_MINUTES: %w", err)
	}

	refreshExpiry, err := strconv.Atoi(getEnv("JWT_REFRESH_EXPIRY_HOURS", "72"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_REFRESH_EXPIRY_HOURS: %w", err)
	}

	cacheTTL, err := strconv.Atoi(getEnv("SITE_CACHE_TTL_SECONDS", "60"))
	if err != nil {
		return nil, fmt.Errorf("invalid SITE_CACHE_TTL_SECONDS: %w", err)
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "perkpal"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "dev"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     dbPort,
			User:     getEnv("DB_USER", "perkpal"),
			Password: getEnv("DB_PASSWORD", "secret"),
			Database: getEnv("DB_NAME", "perkpal_dev"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		JWT: JWTConfig{
			Secret:             secret,
			AccessTokenExpiry:  accessExpiry,
			RefreshTokenExpiry: refreshExpiry,
		},
		Email: EmailConfig{
			SMTPHost:  getEnv("SMTP_HOST", "localhost"),
			SMTPPort:  getEnv("SMTP_PORT", "1025"),
			From:      getEnv("EMAIL_FROM", "noreply@perkpal.dev"),
			LeadInbox: getEnv("LEAD_NOTIFICATION_INBOX", "leads@perkpal.dev"),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
			SecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
			Bucket:    getEnv("MINIO_BUCKET", "perkpal-media"),
			UseSSL:    getEnv("MINIO_USE_SSL", "false") == "true",
		},
		Site: SiteConfig{
			BaseURL:      getEnv("SITE_BASE_URL", "http://localhost:3000"),
			CacheTTLSecs: cacheTTL,
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
