package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port        string
	Environment string
	CORSOrigins string
	// Upstream provider configuration
	OpenAIAPIKey    string
	OpenAIModel     string
	UpstreamTimeout time.Duration
	// Goal store
	DBPath string
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "3001"),
		Environment: getEnv("ENVIRONMENT", "dev"),
		// Local development hosts plus the deployed frontend host
		CORSOrigins: getEnv("CORS_ORIGINS",
			"http://localhost:5173,http://localhost:3000,https://*.vercel.app"),
		OpenAIAPIKey:    getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:     getEnv("OPENAI_MODEL", ""),
		UpstreamTimeout: getDurationEnv("UPSTREAM_TIMEOUT", 30*time.Second),
		DBPath:          getEnv("DB_PATH", "nextstep.db"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	// Bare numbers are treated as seconds
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}
