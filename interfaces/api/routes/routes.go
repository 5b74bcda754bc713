package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sathvik89/Taskease/interfaces/api/handlers"
	"github.com/sathvik89/Taskease/interfaces/api/middleware"
)

type Options struct {
	JWTSecret      string
	TokenTTL       time.Duration
	AuthRateMax    int
	AuthRateWindow time.Duration
}

// Guards holds the middleware shared by the route groups.
type Guards struct {
	protected fiber.Handler
	admin     fiber.Handler
	authLimit fiber.Handler
}

func SetupRoutes(app *fiber.App, h *handlers.Handlers, opts Options) {
	g := Guards{
		protected: middleware.Protected(opts.JWTSecret, opts.TokenTTL),
		admin:     middleware.AdminOnly(),
		authLimit: middleware.AuthRateLimit(opts.AuthRateMax, opts.AuthRateWindow),
	}

	api := app.Group("/api/v1")

	SetupHealthRoutes(app, api, h)
	SetupAuthRoutes(api, h, g)
	SetupUserRoutes(api, h, g)
	SetupTaskRoutes(api, h, g)
}
