package main

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the storefront service. Database
// settings are read by the database package from the POSTGRES_* variables.
type Config struct {
	Port          string
	Environment   string
	AllowedOrigin string
}

// LoadConfig reads configuration from the environment with defaults.
func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:          getEnv("PORT", "5000"),
		Environment:   getEnv("APP_ENV", "development"),
		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "http://localhost:3000"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
