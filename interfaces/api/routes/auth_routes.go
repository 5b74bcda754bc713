package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sathvik89/Taskease/interfaces/api/handlers"
)

func SetupAuthRoutes(api fiber.Router, h *handlers.Handlers, g Guards) {
	auth := api.Group("/auth")

	auth.Post("/register", g.authLimit, h.UserHandler.Register)
	auth.Post("/login", g.authLimit, h.UserHandler.Login)

	auth.Get("/me", g.protected, h.UserHandler.GetProfile)
	auth.Put("/profile", g.protected, h.UserHandler.UpdateProfile)
	auth.Put("/change-password", g.protected, h.UserHandler.ChangePassword)
}
