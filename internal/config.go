package internal

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string
	Port     int
	LogLevel string

	// Postgres connection string. Empty disables the inquiry archive and
	// the notification worker; the configurator itself runs without it.
	DatabaseUrl string

	// Catalog/content service (read side)
	CatalogBaseURL string
	CatalogTimeout time.Duration

	// Lead intake service (write side)
	IntakeURL     string
	IntakeTimeout time.Duration

	// SMTP Configuration (lead notification mail)
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
	SMTPFromName string

	// Recipient of lead notification emails (the rental desk)
	LeadNotifyEmail string

	// Wizard session lifecycle
	SessionTTL           time.Duration
	SessionSweepInterval time.Duration

	// Rate limiting for session creation and lead submission
	RateLimitMax    int
	RateLimitWindow time.Duration

	// Worker Configuration
	WorkerEnabled      bool
	WorkerConcurrency  int
	WorkerPollInterval time.Duration
	WorkerJobTimeout   time.Duration

	// Metrics endpoint authentication
	// If both are empty, the /metrics endpoint will be unprotected (not recommended)
	MetricsUsername string
	MetricsPassword string
}

func NewConfig() (*Config, error) {
	// Load .env file if it exists (ignored in production)
	_ = godotenv.Load()

	cfg := &Config{
		Env:      getEnv("ENV", "development"),
		Port:     getEnvInt("PORT", 8080),
		LogLevel: getEnv("LOG_LEVEL", "debug"),

		DatabaseUrl: getEnv("DATABASE_URL", ""),

		CatalogBaseURL: getEnv("CATALOG_BASE_URL", "http://localhost:4000"),
		CatalogTimeout: getEnvDuration("CATALOG_TIMEOUT", 10*time.Second),

		IntakeURL:     getEnv("INTAKE_URL", "http://localhost:4000/api/inquiries"),
		IntakeTimeout: getEnvDuration("INTAKE_TIMEOUT", 15*time.Second),

		// SMTP defaults for Mailhog (development)
		SMTPHost:     getEnv("SMTP_HOST", "localhost"),
		SMTPPort:     getEnvInt("SMTP_PORT", 1025),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		SMTPFrom:     getEnv("SMTP_FROM", "noreply@goetzrental.de"),
		SMTPFromName: getEnv("SMTP_FROM_NAME", "Götz Rental"),

		LeadNotifyEmail: getEnv("LEAD_NOTIFY_EMAIL", "vermietung@goetzrental.de"),

		SessionTTL:           getEnvDuration("SESSION_TTL", 45*time.Minute),
		SessionSweepInterval: getEnvDuration("SESSION_SWEEP_INTERVAL", 5*time.Minute),

		RateLimitMax:    getEnvInt("RATE_LIMIT_MAX", 30),
		RateLimitWindow: getEnvDuration("RATE_LIMIT_WINDOW", time.Minute),

		// Worker defaults
		WorkerEnabled:      getEnvBool("WORKER_ENABLED", true),
		WorkerConcurrency:  getEnvInt("WORKER_CONCURRENCY", 2),
		WorkerPollInterval: getEnvDuration("WORKER_POLL_INTERVAL", 5*time.Second),
		WorkerJobTimeout:   getEnvDuration("WORKER_JOB_TIMEOUT", 2*time.Minute),

		// Metrics authentication
		MetricsUsername: getEnv("METRICS_USERNAME", ""),
		MetricsPassword: getEnv("METRICS_PASSWORD", ""),
	}

	if cfg.CatalogBaseURL == "" {
		return nil, fmt.Errorf("CATALOG_BASE_URL must not be empty")
	}
	if cfg.IntakeURL == "" {
		return nil, fmt.Errorf("INTAKE_URL must not be empty")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
