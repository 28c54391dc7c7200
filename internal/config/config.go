package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the whole application configuration, populated from
// environment variables once at startup and passed down explicitly.
type Config struct {
	App         AppConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	CheckAccess CheckAccessConfig
	Log         LogConfig

	// AddressesPerPage bounds the admin listing page size.
	AddressesPerPage int

	// SecretKey is reserved for cookie/session signing.
	SecretKey string
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
	MaxConns int
	MinConns int
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

// CheckAccessConfig points at the external access-control service used to
// introspect bearer tokens.
type CheckAccessConfig struct {
	BaseURL string
	Timeout time.Duration
}

type LogConfig struct {
	Filename string
	Level    string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "address-api"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "address"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: getEnvInt("DB_MAX_CONNS", 25),
			MinConns: getEnvInt("DB_MIN_CONNS", 5),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		CheckAccess: CheckAccessConfig{
			BaseURL: getEnv("CHECK_ACCESS_URL", ""),
			Timeout: getEnvDuration("CHECK_ACCESS_TIMEOUT", 10*time.Second),
		},
		Log: LogConfig{
			Filename: getEnv("LOG_FILENAME", ""),
			Level:    getEnv("LOG_LEVEL", "INFO"),
		},
		AddressesPerPage: getEnvInt("ADDRESS_LIMIT_PER_PAGE", 10),
		SecretKey:        getEnv("SECRET_KEY", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks constraints that would otherwise only surface at request time.
func (c *Config) Validate() error {
	if c.CheckAccess.BaseURL == "" {
		return fmt.Errorf("CHECK_ACCESS_URL must be set")
	}
	if c.AddressesPerPage < 1 {
		return fmt.Errorf("ADDRESS_LIMIT_PER_PAGE must be at least 1")
	}
	if c.App.Environment == "production" {
		if c.SecretKey == "" {
			return fmt.Errorf("SECRET_KEY must be set in production")
		}
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD must be set in production")
		}
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
