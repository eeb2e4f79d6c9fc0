package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	Environment string
	Database    DatabaseConfig
	Business    BusinessConfig
	Checkout    CheckoutConfig
	API         APIConfig
	LogLevel    string
}

type DatabaseConfig struct {
	Enabled  bool
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// BusinessConfig is the identity printed on receipt headers
type BusinessConfig struct {
	Name    string
	Address string
	Phone   string
}

type CheckoutConfig struct {
	// ProcessingDelay models the bill submission round-trip. Zero in tests.
	ProcessingDelay time.Duration
	PageSize        int
}

type APIConfig struct {
	// StationKeyHash is the bcrypt hash terminals authenticate with.
	// Empty disables station auth (development).
	StationKeyHash string
}

func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("PROCESSING_DELAY_MS", "1500")
	viper.SetDefault("CATALOG_PAGE_SIZE", "8")

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read .env file (optional)
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if .env doesn't exist, we'll use env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{
		Port:        getEnvOrViper("PORT", "8080"),
		Environment: getEnvOrViper("ENVIRONMENT", "development"),
		Database: DatabaseConfig{
			Enabled:  getEnvOrViper("DB_ENABLED", "false") == "true",
			Host:     getEnvOrViper("DB_HOST", "localhost"),
			Port:     getEnvOrViper("DB_PORT", "5432"),
			User:     getEnvOrViper("DB_USER", "postgres"),
			Password: getEnvOrViper("DB_PASSWORD", "postgres"),
			DBName:   getEnvOrViper("DB_NAME", "pos"),
			SSLMode:  getEnvOrViper("DB_SSLMODE", "disable"),
		},
		Business: BusinessConfig{
			Name:    getEnvOrViper("BUSINESS_NAME", "Spice Table"),
			Address: getEnvOrViper("BUSINESS_ADDRESS", ""),
			Phone:   getEnvOrViper("BUSINESS_PHONE", ""),
		},
		Checkout: CheckoutConfig{
			ProcessingDelay: time.Duration(viper.GetInt("PROCESSING_DELAY_MS")) * time.Millisecond,
			PageSize:        viper.GetInt("CATALOG_PAGE_SIZE"),
		},
		API: APIConfig{
			StationKeyHash: getEnvOrViper("STATION_KEY_HASH", ""),
		},
		LogLevel: getEnvOrViper("LOG_LEVEL", "info"),
	}

	if cfg.Checkout.PageSize < 1 {
		return nil, fmt.Errorf("CATALOG_PAGE_SIZE must be at least 1")
	}

	return cfg, nil
}

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}
