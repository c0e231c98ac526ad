package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// AppConfig holds all configuration for the application
type AppConfig struct {
	DatabaseURL       string
	AWSRegion         string
	MailFrom          string
	DefaultSubject    string // Used when a task carries no subject of its own
	CronSpecDispatch  string // Daily dispatch tick
	SchedulerTimezone string // IANA name; the civil calendar all due checks run in
	LogLevel          string
	Environment       string
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// Attempt to load .env file. Errors are ignored if the file doesn't exist.
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	cfg.AWSRegion = os.Getenv("AWS_REGION")
	if cfg.AWSRegion == "" {
		return nil, fmt.Errorf("AWS_REGION is not set")
	}

	cfg.MailFrom = os.Getenv("MAIL_FROM")
	if cfg.MailFrom == "" {
		return nil, fmt.Errorf("MAIL_FROM is not set")
	}

	cfg.DefaultSubject = os.Getenv("DEFAULT_SUBJECT")
	if cfg.DefaultSubject == "" {
		cfg.DefaultSubject = "Compliance reminder"
	}

	cfg.CronSpecDispatch = os.Getenv("CRON_SPEC_DISPATCH")
	if cfg.CronSpecDispatch == "" {
		cfg.CronSpecDispatch = "0 9 * * *" // Default: 9:00 AM daily
	}

	cfg.SchedulerTimezone = os.Getenv("SCHEDULER_TIMEZONE")
	if cfg.SchedulerTimezone == "" {
		cfg.SchedulerTimezone = "UTC"
	}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info" // Default log level
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development" // Default environment
	}

	return cfg, nil
}
