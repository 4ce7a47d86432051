package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	Port               string
	AllowedOrigins     []string
	FrontendURL        string
	SessionSecret      string
	SessionTokenTTL    time.Duration
	SessionIdleTimeout time.Duration
	CleanupInterval    time.Duration
	LogLevel           string
}

var AppConfig *Config

func LoadConfig() *Config {
	port := GetEnv("PORT", "8080")

	// Frontend & CORS
	frontendURL := GetEnv("FRONTEND_URL", "http://localhost:5173")
	allowedOriginsStr := GetEnv("ALLOWED_ORIGINS", "")

	// Build allowed origins list (Frontend URL + CSV values)
	allowedOrigins := []string{frontendURL}
	if allowedOriginsStr != "" {
		for _, origin := range strings.Split(allowedOriginsStr, ",") {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				allowedOrigins = append(allowedOrigins, trimmed)
			}
		}
	}

	// Sessions
	sessionSecret := GetEnv("SESSION_SECRET", "change-this-session-secret")
	tokenTTL := GetEnvAsDuration("SESSION_TOKEN_TTL_HOURS", 24, time.Hour)
	idleTimeout := GetEnvAsDuration("SESSION_IDLE_TIMEOUT_MINUTES", 30, time.Minute)
	cleanupInterval := GetEnvAsDuration("CLEANUP_INTERVAL_MINUTES", 5, time.Minute)

	AppConfig = &Config{
		Port:               port,
		AllowedOrigins:     allowedOrigins,
		FrontendURL:        frontendURL,
		SessionSecret:      sessionSecret,
		SessionTokenTTL:    tokenTTL,
		SessionIdleTimeout: idleTimeout,
		CleanupInterval:    cleanupInterval,
		LogLevel:           GetEnv("LOG_LEVEL", "info"),
	}

	return AppConfig
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Warn().Str("key", key).Str("value", valueStr).Int("default", defaultValue).Msg("invalid integer value, using default")
		return defaultValue
	}
	return value
}

// GetEnvAsDuration reads a count of unit from the environment. Non-positive
// values fall back to the default.
func GetEnvAsDuration(key string, defaultValue int, unit time.Duration) time.Duration {
	value := GetEnvAsInt(key, defaultValue)
	if value <= 0 {
		log.Warn().Str("key", key).Int("value", value).Msg("duration must be positive, using default")
		value = defaultValue
	}
	return time.Duration(value) * unit
}
