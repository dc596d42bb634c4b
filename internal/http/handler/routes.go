package handler

import (
	"github.com/gofiber/fiber/v2"

	"sampleapi/internal/service"
)

// RegisterRoutes attaches the public HTTP routes to the provided Fiber app.
// Handlers stay thin; payload assembly lives in the catalog service.
func RegisterRoutes(app *fiber.App, svc service.CatalogService) {
	app.Get("/", RootInfo(svc))
	app.Get("/health", HealthCheck(svc))
	app.Get("/api/data", ListData(svc))
}

// RootInfo godoc
// @Summary  Service descriptor
// @Tags     system
// @Produce  json
// @Success  200  {object}  model.RootInfo
// @Router   / [get]
func RootInfo(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		info, err := svc.Info(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusOK).JSON(info)
	}
}

// HealthCheck godoc
// @Summary  Liveness probe
// @Tags     system
// @Produce  json
// @Success  200  {object}  model.HealthStatus
// @Router   /health [get]
func HealthCheck(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		h, err := svc.Health(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusOK).JSON(h)
	}
}

// ListData godoc
// @Summary  Sample data listing
// @Tags     data
// @Produce  json
// @Success  200  {object}  model.DataPayload
// @Failure  500  {object}  errorPayload
// @Router   /api/data [get]
func ListData(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.Data(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusOK).JSON(res)
	}
}
