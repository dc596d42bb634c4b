package config

import (
	"math"
	"net"
	"os"
	"strconv"
)

// RateLimitConfig holds the optional global request rate limit.
// A zero RPS disables limiting.
type RateLimitConfig struct {
	RPS   float64
	Burst int
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables.
type AppConfig struct {
	Host      string
	Port      string
	LogLevel  string
	RateLimit RateLimitConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	rps := getEnvFloat("RATE_LIMIT_RPS", 0)
	if rps < 0 {
		rps = 0
	}
	burst := getEnvInt("RATE_LIMIT_BURST", 0)
	if burst <= 0 && rps > 0 {
		burst = int(math.Ceil(rps))
	}

	return &AppConfig{
		Host:     getEnv("HOST", "0.0.0.0"),
		Port:     getEnv("PORT", "5000"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		RateLimit: RateLimitConfig{
			RPS:   rps,
			Burst: burst,
		},
	}
}

// Addr returns the host:port pair the server binds to.
func (c *AppConfig) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err == nil {
			return f
		}
	}
	return def
}
