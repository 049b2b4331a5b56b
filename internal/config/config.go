package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr         string
	BodyLimitMB        int
	RateLimitPerMinute int

	// Optional API key; requests must send it in X-API-Key when set.
	APIKey string

	// Storage (optional)
	DatabaseURL string
	RedisURL    string // Rate limiter storage; in-memory when empty

	// CORS
	CORSOrigins string // Comma-separated allowed origins, e.g. "https://example.com,https://app.example.com"

	// PII masking
	PresidioAnalyzerURL   string
	PresidioAnonymizerURL string
	PIILanguage           string

	// LLM
	GeminiAPIKey     string
	GeminiModel      string
	GeminiEmbedModel string

	// Retention of stored analyses
	RetentionMaxAge   time.Duration
	RetentionInterval time.Duration

	// Logging
	LogJSON  bool
	LogDebug bool
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:                getEnv("ENV", "development"),
		ServerAddr:         getEnv("SERVER_ADDR", ":8000"),
		BodyLimitMB:        getEnvInt("BODY_LIMIT_MB", 10),
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 100),
		APIKey:             getEnv("API_KEY", ""),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		RedisURL:           getEnv("REDIS_URL", ""),
		CORSOrigins:        getEnv("CORS_ORIGINS", ""),

		PresidioAnalyzerURL:   getEnv("PRESIDIO_ANALYZER_URL", ""),
		PresidioAnonymizerURL: getEnv("PRESIDIO_ANONYMIZER_URL", ""),
		PIILanguage:           getEnv("PII_LANGUAGE", "en"),

		GeminiAPIKey:     getEnv("GEMINI_API_KEY", ""),
		GeminiModel:      getEnv("GEMINI_MODEL", ""),
		GeminiEmbedModel: getEnv("GEMINI_EMBED_MODEL", ""),

		RetentionMaxAge:   getEnvDuration("RETENTION_MAX_AGE", 0),
		RetentionInterval: getEnvDuration("RETENTION_INTERVAL", time.Hour),

		LogJSON:  getEnvBool("LOG_JSON", false),
		LogDebug: getEnvBool("LOG_DEBUG", false),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if n, err := strconv.Atoi(getEnv(key, "")); err == nil && n > 0 {
		return n
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(getEnv(key, "")); err == nil && d >= 0 {
		return d
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if b, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return b
	}
	return fallback
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// StorageEnabled reports whether analyses are persisted.
func (c *Config) StorageEnabled() bool {
	return c.DatabaseURL != ""
}

// MaskingEnabled reports whether both Presidio endpoints are configured.
func (c *Config) MaskingEnabled() bool {
	return c.PresidioAnalyzerURL != "" && c.PresidioAnonymizerURL != ""
}

// OptimizerEnabled reports whether an LLM backend is configured.
func (c *Config) OptimizerEnabled() bool {
	return c.GeminiAPIKey != ""
}

// RetentionEnabled reports whether stored analyses are pruned.
func (c *Config) RetentionEnabled() bool {
	return c.StorageEnabled() && c.RetentionMaxAge > 0
}

// BodyLimit returns the request body limit in bytes.
func (c *Config) BodyLimit() int {
	return c.BodyLimitMB * 1024 * 1024
}

// AllowedOrigins splits CORSOrigins into trimmed, non-empty entries.
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
