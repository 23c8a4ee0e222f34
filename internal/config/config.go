// Package config handles application configuration from environment
// variables, with .env support for local development.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the settings shared by both shells.
type Config struct {
	Port        string // web shell listen port
	ModelDBPath string // path to the SQLite model artifact
	Env         string // "development" or "production"
	LogLevel    string
}

const (
	DefaultPort        = "8080"
	DefaultModelDBPath = "models/fraud_model.db"
	DefaultEnv         = "development"
)

// Load reads configuration from the environment. A .env file is loaded
// first if present; missing keys fall back to defaults.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", DefaultPort),
		ModelDBPath: getEnv("MODEL_DB_PATH", DefaultModelDBPath),
		Env:         getEnv("ENV", DefaultEnv),
		LogLevel:    os.Getenv("LOG_LEVEL"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
