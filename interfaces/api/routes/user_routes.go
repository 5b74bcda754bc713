package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sathvik89/Taskease/interfaces/api/handlers"
)

func SetupUserRoutes(api fiber.Router, h *handlers.Handlers, g Guards) {
	users := api.Group("/users", g.protected, g.admin)
	users.Get("/", h.UserHandler.ListUsers)
}
