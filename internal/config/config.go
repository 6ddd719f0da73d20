package config

import (
	"fmt"
	"strings"

	apperrors "capi-onboarding-backend/internal/errors"

	"github.com/spf13/viper"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Store drivers accepted by STORE_DRIVER
const (
	StoreDriverAuto     = "auto"
	StoreDriverMemory   = "memory"
	StoreDriverPostgres = "postgres"
	StoreDriverSheets   = "sheets"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Log file rotation; empty LOG_FILE logs to stdout only
	LogFile           string `mapstructure:"LOG_FILE"`
	LogFileMaxSizeMB  int    `mapstructure:"LOG_FILE_MAX_SIZE_MB"`
	LogFileMaxBackups int    `mapstructure:"LOG_FILE_MAX_BACKUPS"`
	LogFileMaxAgeDays int    `mapstructure:"LOG_FILE_MAX_AGE_DAYS"`

	// Persistence
	StoreDriver string `mapstructure:"STORE_DRIVER"`
	MockSeed    bool   `mapstructure:"MOCK_SEED"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// Google Sheets configuration
	GoogleServiceAccountEmail string `mapstructure:"GOOGLE_SERVICE_ACCOUNT_EMAIL"`
	GooglePrivateKey          string `mapstructure:"GOOGLE_PRIVATE_KEY"`
	GoogleSheetID             string `mapstructure:"GOOGLE_SHEET_ID"`

	// Auth configuration
	AuthEnabled bool   `mapstructure:"AUTH_ENABLED"`
	JWTSecret   string `mapstructure:"JWT_SECRET"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`
	FrontendURL    string   `mapstructure:"FRONTEND_URL"`

	MetricsEnabled bool `mapstructure:"METRICS_ENABLED"`

	// Optional override of the embedded step catalog
	CatalogFile string `mapstructure:"CATALOG_FILE"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	config.GooglePrivateKey = NormalizePrivateKey(config.GooglePrivateKey)
	config.StoreDriver = strings.ToLower(strings.TrimSpace(config.StoreDriver))
	if config.FrontendURL != "" && !contains(config.AllowedOrigins, config.FrontendURL) {
		config.AllowedOrigins = append(config.AllowedOrigins, config.FrontendURL)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "3001")
	viper.SetDefault("LOG_LEVEL", "info")

	viper.SetDefault("LOG_FILE", "")
	viper.SetDefault("LOG_FILE_MAX_SIZE_MB", 50)
	viper.SetDefault("LOG_FILE_MAX_BACKUPS", 5)
	viper.SetDefault("LOG_FILE_MAX_AGE_DAYS", 14)

	viper.SetDefault("STORE_DRIVER", StoreDriverAuto)
	viper.SetDefault("MOCK_SEED", true)

	// Database defaults
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "capi_onboarding")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// Google Sheets defaults
	viper.SetDefault("GOOGLE_SERVICE_ACCOUNT_EMAIL", "")
	viper.SetDefault("GOOGLE_PRIVATE_KEY", "")
	viper.SetDefault("GOOGLE_SHEET_ID", "")

	// Auth defaults
	viper.SetDefault("AUTH_ENABLED", false)
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"})
	viper.SetDefault("FRONTEND_URL", "")

	viper.SetDefault("METRICS_ENABLED", true)
	viper.SetDefault("CATALOG_FILE", "")
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" && config.AuthEnabled {
		if config.JWTSecret == defaultJWTSecret || config.JWTSecret == "" {
			return fmt.Errorf("JWT_SECRET must be set in production when AUTH_ENABLED is true")
		}
	}

	switch config.StoreDriver {
	case StoreDriverAuto, StoreDriverMemory:
	case StoreDriverPostgres:
		if config.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for the postgres store")
		}
	case StoreDriverSheets:
		if !config.HasSheetsCredentials() {
			return apperrors.ErrSheetsCredentialsMissing
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", config.StoreDriver)
	}

	return nil
}

// NormalizePrivateKey strips surrounding quotes and expands escaped newlines,
// as private keys usually arrive through single-line env vars.
func NormalizePrivateKey(key string) string {
	key = strings.TrimSpace(key)
	if len(key) >= 2 && (key[0] == '"' || key[0] == '\'') && key[len(key)-1] == key[0] {
		key = key[1 : len(key)-1]
	}
	return strings.ReplaceAll(key, `\n`, "\n")
}

// HasSheetsCredentials reports whether all Google Sheets settings are present
func (c *Config) HasSheetsCredentials() bool {
	return c.GoogleServiceAccountEmail != "" && c.GooglePrivateKey != "" && c.GoogleSheetID != ""
}

// ResolvedStoreDriver resolves "auto" to sheets when credentials exist, memory otherwise
func (c *Config) ResolvedStoreDriver() string {
	if c.StoreDriver != StoreDriverAuto && c.StoreDriver != "" {
		return c.StoreDriver
	}
	if c.HasSheetsCredentials() {
		return StoreDriverSheets
	}
	return StoreDriverMemory
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
