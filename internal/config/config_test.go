package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TRANSLATE_API_URL", "")
	t.Setenv("APP_PORT", "")
	cfg := Load()
	assert.Equal(t, "3000", cfg.AppPort)
	assert.Equal(t, "translation_history", cfg.DynamoTables.History)
	assert.Equal(t, 10*time.Second, cfg.TranslateTimeout)
	assert.Equal(t, 15*time.Minute, cfg.ExportURLTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("TRANSLATE_API_URL", "http://localhost:5000/")
	t.Setenv("TRANSLATE_TIMEOUT", "2s")
	t.Setenv("RATE_LIMIT_RPS", "1.5")
	t.Setenv("RATE_LIMIT_BURST", "not-a-number")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example,https://b.example")
	cfg := Load()
	assert.Equal(t, "http://localhost:5000", cfg.TranslateAPIURL)
	assert.Equal(t, 2*time.Second, cfg.TranslateTimeout)
	assert.Equal(t, 1.5, cfg.RateLimitRPS)
	assert.Equal(t, 10, cfg.RateLimitBurst)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
}
