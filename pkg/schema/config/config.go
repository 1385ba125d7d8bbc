package config

import (
	"fmt"
	"os"
	"sync"
)

// Config holds configuration for database access, shared between the API
// server and the seed/maintenance scripts.
type Config struct {
	// PostgresURI is the full connection string. When POSTGRES_URI is not
	// set it is assembled from the DB_* component variables.
	PostgresURI string
}

var (
	config *Config
	once   sync.Once
)

// GetConfig returns the singleton configuration instance
func GetConfig() *Config {
	once.Do(func() {
		config = loadConfig()
	})
	return config
}

func loadConfig() *Config {
	return &Config{
		PostgresURI: postgresURI(),
	}
}

func postgresURI() string {
	if uri := os.Getenv("POSTGRES_URI"); uri != "" {
		return uri
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASS", "postgres"),
		getEnv("DB_HOST", "db"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_NAME", "biblia"),
		getEnv("DB_SSLMODE", "disable"),
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
