package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sathvik89/Taskease/interfaces/api/handlers"
)

func SetupHealthRoutes(app *fiber.App, api fiber.Router, h *handlers.Handlers) {
	api.Get("/health", h.HealthHandler.Health)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Taskease API",
			"docs":    "/api/v1",
			"health":  "/api/v1/health",
		})
	})
}
