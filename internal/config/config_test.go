package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"HOST", "PORT", "LOG_LEVEL", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Zero(t, cfg.RateLimit.RPS)
	assert.Zero(t, cfg.RateLimit.Burst)
	assert.Equal(t, "0.0.0.0:5000", cfg.Addr())
}

func TestLoad(t *testing.T) {
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "8081")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "")

	cfg := Load()

	assert.Equal(t, "127.0.0.1:8081", cfg.Addr())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 2.5, cfg.RateLimit.RPS)
	// Burst defaults to the rounded-up rate.
	assert.Equal(t, 3, cfg.RateLimit.Burst)
}

func TestLoad_NegativeRateDisables(t *testing.T) {
	t.Setenv("RATE_LIMIT_RPS", "-4")
	t.Setenv("RATE_LIMIT_BURST", "")

	cfg := Load()

	assert.Zero(t, cfg.RateLimit.RPS)
	assert.Zero(t, cfg.RateLimit.Burst)
}

func TestAddr_IPv6(t *testing.T) {
	cfg := &AppConfig{Host: "::1", Port: "5000"}
	assert.Equal(t, "[::1]:5000", cfg.Addr())
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	t.Setenv(key, "value")

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	t.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	t.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	t.Setenv(key, "")
	assert.Equal(t, 10, getEnvInt(key, 10))
}

func TestGetEnvFloat(t *testing.T) {
	key := "TEST_FLOAT_VAR"

	t.Setenv(key, "0.5")
	assert.Equal(t, 0.5, getEnvFloat(key, 0))

	t.Setenv(key, "invalid")
	assert.Equal(t, 1.5, getEnvFloat(key, 1.5))
}
