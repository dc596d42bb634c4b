package server

import (
	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	_ "sampleapi/docs"
	"sampleapi/internal/config"
	handlers "sampleapi/internal/http/handler"
	"sampleapi/internal/http/middleware"
	"sampleapi/internal/service"
)

// AppName identifies the Fiber application.
const AppName = "sampleapi"

// Options carries the dependencies needed to build the HTTP dispatcher.
type Options struct {
	Logger    *zap.Logger
	Registry  *prometheus.Registry
	RateLimit config.RateLimitConfig
	Service   service.CatalogService
}

// New builds the Fiber app with global middleware, public routes,
// the metrics scrape endpoint and the Swagger UI. The route table is
// fixed once New returns.
func New(opts Options) (*fiber.App, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		AppName:               AppName,
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: true,
	})

	// Order matters: CORS runs before anything that can short-circuit so
	// every response, including errors, carries the headers. Recover sits
	// inside the logger and metrics so panics are logged and counted.
	app.Use(middleware.CORS())
	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware())
	app.Use(middleware.Logger(logger))
	app.Use(promMiddleware.Handler())
	app.Use(recover.New())
	app.Use(middleware.RateLimit(opts.RateLimit.RPS, opts.RateLimit.Burst))

	handlers.RegisterRoutes(app, opts.Service)

	app.Get(middleware.MetricsPath, adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// Swagger UI. The generated doc leaves host empty so clients resolve
	// it against whatever address served the UI.
	app.Get(middleware.SwaggerPrefix+"/*", swagger.HandlerDefault)

	return app, nil
}
