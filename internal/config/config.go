// Package config handles configuration loading for the todo service.
package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the todo service.
type Config struct {
	MongoURI       string
	DatabaseName   string
	TodoCollection string
	UserCollection string
	JWTSecret      string
	JWTExpiry      time.Duration
	Port           string
	AllowedOrigins []string
	Environment    string
}

// Load reads configuration from environment variables. A .env file in the
// working directory is honored when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		MongoURI:       getEnvRequired("MONGO_URI"),
		DatabaseName:   getEnvOrDefault("MONGO_DATABASE", "todo_service"),
		TodoCollection: getEnvOrDefault("TODO_COLLECTION", "todos"),
		UserCollection: getEnvOrDefault("USER_COLLECTION", "users"),
		JWTSecret:      getEnvRequired("JWT_SECRET"),
		JWTExpiry:      parseDuration(getEnvOrDefault("JWT_EXPIRY", "24h"), 24*time.Hour),
		Port:           getEnvOrDefault("PORT", "8000"),
		AllowedOrigins: splitList(getEnvOrDefault("ALLOWED_ORIGINS", "http://localhost:3000")),
		Environment:    getEnvOrDefault("ENVIRONMENT", "development"),
	}
}

func getEnvRequired(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("required environment variable %s is not set", key)
	}
	return value
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(value string, defaultValue time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
