package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"ENV", "SERVER_ADDR", "BODY_LIMIT_MB", "RATE_LIMIT_PER_MINUTE", "API_KEY",
		"DATABASE_URL", "REDIS_URL", "PII_LANGUAGE", "GEMINI_API_KEY",
		"PRESIDIO_ANALYZER_URL", "PRESIDIO_ANONYMIZER_URL",
		"RETENTION_MAX_AGE", "RETENTION_INTERVAL", "LOG_JSON",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if !cfg.IsDev() {
		t.Errorf("IsDev() = false, want true for default env")
	}
	if cfg.ServerAddr != ":8000" {
		t.Errorf("ServerAddr = %q, want :8000", cfg.ServerAddr)
	}
	if cfg.BodyLimit() != 10*1024*1024 {
		t.Errorf("BodyLimit() = %d, want 10 MiB", cfg.BodyLimit())
	}
	if cfg.RateLimitPerMinute != 100 {
		t.Errorf("RateLimitPerMinute = %d, want 100", cfg.RateLimitPerMinute)
	}
	if cfg.PIILanguage != "en" {
		t.Errorf("PIILanguage = %q, want en", cfg.PIILanguage)
	}
	if cfg.RetentionInterval != time.Hour {
		t.Errorf("RetentionInterval = %v, want 1h", cfg.RetentionInterval)
	}
	if cfg.StorageEnabled() || cfg.MaskingEnabled() || cfg.OptimizerEnabled() || cfg.RetentionEnabled() {
		t.Errorf("optional collaborators enabled by default: %+v", cfg)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("BODY_LIMIT_MB", "2")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "abc")
	t.Setenv("DATABASE_URL", "postgres://localhost/atsmatch")
	t.Setenv("RETENTION_MAX_AGE", "720h")
	t.Setenv("PRESIDIO_ANALYZER_URL", "http://analyzer:3000")
	t.Setenv("PRESIDIO_ANONYMIZER_URL", "http://anonymizer:3000")
	t.Setenv("LOG_JSON", "true")

	cfg := Load()

	if cfg.IsDev() {
		t.Error("IsDev() = true, want false")
	}
	if cfg.BodyLimit() != 2*1024*1024 {
		t.Errorf("BodyLimit() = %d, want 2 MiB", cfg.BodyLimit())
	}
	if cfg.RateLimitPerMinute != 100 {
		t.Errorf("invalid RATE_LIMIT_PER_MINUTE should fall back, got %d", cfg.RateLimitPerMinute)
	}
	if !cfg.RetentionEnabled() {
		t.Error("RetentionEnabled() = false, want true")
	}
	if !cfg.MaskingEnabled() {
		t.Error("MaskingEnabled() = false, want true")
	}
	if !cfg.LogJSON {
		t.Error("LogJSON = false, want true")
	}
}

func TestAllowedOrigins(t *testing.T) {
	cfg := &Config{CORSOrigins: " https://a.example.com, ,https://b.example.com "}
	got := cfg.AllowedOrigins()
	if len(got) != 2 || got[0] != "https://a.example.com" || got[1] != "https://b.example.com" {
		t.Errorf("AllowedOrigins() = %v", got)
	}

	if got := (&Config{}).AllowedOrigins(); got != nil {
		t.Errorf("AllowedOrigins() = %v, want nil", got)
	}
}
