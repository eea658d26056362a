package config

import (
	"os"
	"strconv"
)

// DatabaseConfig holds MongoDB connection settings.
// Timeouts live here on purpose: the handlers implement no cancellation or
// retry policy of their own, so connection-level timeouts are the only knob.
type DatabaseConfig struct {
	Host                string
	Port                string
	User                string
	Password            string
	Name                string
	ConnectTimeoutSec   int
	OperationTimeoutSec int
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost  string
	Port     string
	Database DatabaseConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost: getEnv("APP_HOST", "localhost:8080"),
		Port:    getEnv("PORT", "8080"), // default only for non-sensitive value
		Database: DatabaseConfig{
			Host:                getEnv("MONGO_HOST", ""),
			Port:                getEnv("MONGO_PORT", "27017"),
			User:                getEnv("MONGO_USER", ""),
			Password:            getEnv("MONGO_PASSWORD", ""),
			Name:                getEnv("MONGO_DB", "comments"),
			ConnectTimeoutSec:   getEnvInt("MONGO_CONNECT_TIMEOUT_SEC", 5),
			OperationTimeoutSec: getEnvInt("MONGO_OPERATION_TIMEOUT_SEC", 5),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
