package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port        string
	Environment string

	DatabaseURL string

	RedisURL string

	DefaultLocale   string
	LocalesPath     string
	DefaultTenantID string

	CacheTTL          time.Duration
	ThemeExtendsDepth int

	CORSOrigins string
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		RedisURL: getEnv("REDIS_URL", "redis://localhost:6379"),

		DefaultLocale:   getEnv("DEFAULT_LOCALE", "en"),
		LocalesPath:     getEnv("LOCALES_PATH", "locales"),
		DefaultTenantID: getEnv("DEFAULT_TENANT_ID", ""),

		CacheTTL:          getDurationEnv("CACHE_TTL", 5*time.Minute),
		ThemeExtendsDepth: getIntEnv("THEME_EXTENDS_DEPTH", 10),

		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:5173"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		parsed, err := time.ParseDuration(value)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}
