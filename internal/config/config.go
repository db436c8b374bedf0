// File: internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	// Runtime environment: "debug" or "release". Controls logger encoding.
	AppEnv          string        `mapstructure:"APP_ENV"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT_SECONDS"`

	// Logging Configuration
	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`

	// Application Specific Configuration
	DefaultListingLifespanDays int           `mapstructure:"DEFAULT_LISTING_LIFESPAN_DAYS"`
	FeedLoadTimeout            time.Duration `mapstructure:"FEED_LOAD_TIMEOUT_SECONDS"`
	StatsLoadTimeout           time.Duration `mapstructure:"STATS_LOAD_TIMEOUT_SECONDS"`

	// Cron Jobs
	ListingExpiryJobSchedule string `mapstructure:"LISTING_EXPIRY_JOB_SCHEDULE"`

	// Firebase Configuration
	FirebaseServiceAccountKeyPath string `mapstructure:"FIREBASE_SERVICE_ACCOUNT_KEY_PATH"`
	FirebaseProjectID             string `mapstructure:"FIREBASE_PROJECT_ID"`
	FirebaseWebAPIKey             string `mapstructure:"FIREBASE_WEB_API_KEY"`
	FirebaseStorageBucket         string `mapstructure:"FIREBASE_STORAGE_BUCKET"`
}

// Load attempts to load configuration from a .env file (if present) and environment variables.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	v := viper.New()

	// Set default values
	v.SetDefault("APP_ENV", "debug")
	v.SetDefault("SHUTDOWN_TIMEOUT_SECONDS", 30)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")

	v.SetDefault("DEFAULT_LISTING_LIFESPAN_DAYS", 90)
	v.SetDefault("FEED_LOAD_TIMEOUT_SECONDS", 10)
	v.SetDefault("STATS_LOAD_TIMEOUT_SECONDS", 10)
	v.SetDefault("LISTING_EXPIRY_JOB_SCHEDULE", "@daily")

	// Firebase
	v.SetDefault("FIREBASE_PROJECT_ID", "") // Optional, inferred from credentials when empty
	v.SetDefault("FIREBASE_SERVICE_ACCOUNT_KEY_PATH", "")
	v.SetDefault("FIREBASE_WEB_API_KEY", "")
	v.SetDefault("FIREBASE_STORAGE_BUCKET", "")

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling configuration: %w", err)
	}

	// Convert duration fields
	cfg.ShutdownTimeout = time.Duration(v.GetInt("SHUTDOWN_TIMEOUT_SECONDS")) * time.Second
	cfg.FeedLoadTimeout = time.Duration(v.GetInt("FEED_LOAD_TIMEOUT_SECONDS")) * time.Second
	cfg.StatsLoadTimeout = time.Duration(v.GetInt("STATS_LOAD_TIMEOUT_SECONDS")) * time.Second

	// Basic validation for critical configs
	if strings.TrimSpace(cfg.FirebaseServiceAccountKeyPath) == "" {
		return nil, fmt.Errorf("FATAL: FIREBASE_SERVICE_ACCOUNT_KEY_PATH is not set. This is required for Firebase Admin SDK initialization")
	}
	if _, err := os.Stat(cfg.FirebaseServiceAccountKeyPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("FATAL: Firebase service account key file specified in FIREBASE_SERVICE_ACCOUNT_KEY_PATH (%s) not found", cfg.FirebaseServiceAccountKeyPath)
	}
	if strings.TrimSpace(cfg.FirebaseWebAPIKey) == "" {
		return nil, fmt.Errorf("FATAL: FIREBASE_WEB_API_KEY is not set. This is required for password sign-in against the Identity Toolkit")
	}

	return &cfg, nil
}
