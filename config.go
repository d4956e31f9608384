package main

import (
	"fmt"
	"os"
	"strings"
)

// Config holds all environment variables for the product service.
type Config struct {
	Port           string
	MongoURL       string
	MongoDB        string
	Env            string
	AllowedOrigins []string
}

// LoadConfig loads environment variables into a Config struct and
// validates them. The service refuses to start without a store URL.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:     getEnv("PORT", "8080"),
		MongoURL: os.Getenv("MONGO_URL"),
		MongoDB:  getEnv("MONGO_DB", "shopswift"),
		Env:      getEnv("APP_ENV", "development"),
	}

	origins := getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	for _, o := range strings.Split(origins, ",") {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
		}
	}

	if cfg.MongoURL == "" {
		return nil, fmt.Errorf("MONGO_URL is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
