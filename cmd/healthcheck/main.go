// Command healthcheck probes a running sample-data API and exits non-zero
// unless GET /health reports "healthy". It is meant for container
// HEALTHCHECK directives in images without curl.
package main

import (
	"context"
	"flag"
	"net"
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"sampleapi/internal/client"
	"sampleapi/internal/config"
	"sampleapi/internal/logging"
	"sampleapi/internal/service"
)

func main() {
	cfg := config.Load()

	defaultURL := "http://" + net.JoinHostPort("127.0.0.1", cfg.Port)
	target := flag.String("url", defaultURL, "base URL of the API to probe")
	timeout := flag.Duration("timeout", 3*time.Second, "overall probe timeout")
	flag.Parse()

	logger := logging.New(cfg.LogLevel)
	defer logger.Sync() //nolint:errcheck

	os.Exit(run(*target, *timeout, logger))
}

func run(target string, timeout time.Duration, logger *zap.Logger) int {
	c, err := client.New(target, client.WithTimeout(timeout))
	if err != nil {
		logger.Error("invalid target", zap.String("url", target), zap.Error(err))
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	h, err := c.Health(ctx)
	if err != nil {
		logger.Error("health probe failed", zap.String("url", target), zap.Error(err))
		return 1
	}
	if h.Status != service.StatusHealthy {
		logger.Error("service unhealthy", zap.String("url", target), zap.String("status", h.Status))
		return 1
	}

	logger.Debug("service healthy", zap.String("url", target))
	return 0
}
