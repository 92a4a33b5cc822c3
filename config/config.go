// Package config loads server configuration from the environment.
// A .env file is picked up by the godotenv autoload import in main.
package config

import (
	"os"
	"time"
)

type Config struct {
	ServerPort    string
	DatabasePath  string
	JWTSecret     string
	JWTExpiration time.Duration
	AdminUser     string
	AdminPassword string
}

// Load reads configuration from environment variables with defaults.
// An empty JWT_SECRET leaves the API open (trusted-network mode).
func Load() *Config {
	return &Config{
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		DatabasePath:  getEnv("DATABASE_PATH", "quotes.db"),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		JWTExpiration: 24 * time.Hour,
		AdminUser:     getEnv("ADMIN_USER", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
