package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

// SwaggerPrefix is where the API documentation UI is mounted.
const SwaggerPrefix = "/swagger"

// RateLimit enforces a single process-wide token bucket of rps tokens per
// second with the given burst. A non-positive rps disables limiting.
// CORS preflight, metrics scrapes and the docs UI are never limited.
func RateLimit(rps float64, burst int) fiber.Handler {
	if rps <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	if burst < 1 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(c *fiber.Ctx) error {
		if exemptFromLimit(c) {
			return c.Next()
		}
		if !limiter.Allow() {
			c.Set(fiber.HeaderRetryAfter, "1")
			return fiber.ErrTooManyRequests
		}
		return c.Next()
	}
}

func exemptFromLimit(c *fiber.Ctx) bool {
	if c.Method() == fiber.MethodOptions {
		return true
	}
	path := c.Path()
	return path == MetricsPath || path == SwaggerPrefix || strings.HasPrefix(path, SwaggerPrefix+"/")
}
