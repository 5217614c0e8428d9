package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	ServerPort     string
	DatabaseType   string // sqlite, postgres, mysql
	DatabasePath   string // sqlite file path
	DatabaseURL    string // postgres/mysql connection string
	MigrationsPath string

	JWTSecret string
	TokenTTL  time.Duration

	// Bootstrap admin account, created at startup when no admins exist.
	AdminEmail    string
	AdminPassword string
	AdminName     string

	// Low-content alerting over SES.
	AlertsEnabled bool
	AlertFrom     string
	AlertTo       string
	AWSRegion     string
}

// Load reads configuration from the environment with sensible defaults.
// A .env file in the working directory is loaded first when present.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not load .env file: %v", err)
	}

	return &Config{
		ServerPort:     getEnv("PORT", "8080"),
		DatabaseType:   getEnv("DB_TYPE", "sqlite"),
		DatabasePath:   getEnv("DB_PATH", "./playday.db"),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "./migrations"),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		TokenTTL:       getDuration("TOKEN_TTL", 12*time.Hour),
		AdminEmail:     getEnv("ADMIN_EMAIL", ""),
		AdminPassword:  getEnv("ADMIN_PASSWORD", ""),
		AdminName:      getEnv("ADMIN_NAME", "Admin"),
		AlertsEnabled:  getEnv("ALERTS_ENABLED", "") == "true",
		AlertFrom:      getEnv("ALERT_FROM", ""),
		AlertTo:        getEnv("ALERT_TO", ""),
		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDuration reads a duration environment variable or returns a default
func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		log.Printf("Warning: invalid duration for %s, using default", key)
	}
	return defaultValue
}
