package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromViper_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("IS_PRODUCTION", "false")

	cfg, err := loadFromViper(newViper())

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 168*time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, defaultJWTIssuer, cfg.JWTIssuer)
	assert.Equal(t, "file://migrations", cfg.MigrationsPath)
	assert.Equal(t, "5-M", cfg.LoginRateLimit)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Len(t, cfg.JWTSecret, 64, "a random development secret is generated")
}

func TestLoadFromViper_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_SECRET", "s3cr3t")
	t.Setenv("JWT_EXPIRY_DURATION", "30m")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")

	cfg, err := loadFromViper(newViper())

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "s3cr3t", cfg.JWTSecret)
	assert.Equal(t, 30*time.Minute, cfg.JWTExpiryDuration)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}

func TestLoadFromViper_InvalidExpiryFallsBack(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cr3t")
	t.Setenv("JWT_EXPIRY_DURATION", "a week")

	cfg, err := loadFromViper(newViper())

	require.NoError(t, err)
	assert.Equal(t, defaultJWTExpiryDuration, cfg.JWTExpiryDuration)
}

func TestLoadFromViper_ProductionRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("IS_PRODUCTION", "true")

	cfg, err := loadFromViper(newViper())

	assert.Error(t, err)
	assert.Nil(t, cfg)
}
