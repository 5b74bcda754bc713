package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/sathvik89/Taskease/interfaces/api/handlers"
	"github.com/sathvik89/Taskease/interfaces/api/middleware"
	"github.com/sathvik89/Taskease/interfaces/api/routes"
	"github.com/sathvik89/Taskease/pkg/di"
	"github.com/sathvik89/Taskease/pkg/logger"
)

func main() {
	container := di.NewContainer()

	if err := container.Initialize(); err != nil {
		// the logger may not be up yet
		panic("Failed to initialize container: " + err.Error())
	}
	cfg := container.GetConfig()

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
		AppName:      cfg.App.Name,
		BodyLimit:    1 * 1024 * 1024,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	})

	// request id first so every later log line carries it
	app.Use(middleware.RequestIDMiddleware())
	app.Use(recover.New())
	app.Use(middleware.LoggerMiddleware())
	app.Use(middleware.CorsMiddleware(cfg.App.AllowOrigins))

	h := handlers.NewHandlers(container.GetHandlerServices())
	routes.SetupRoutes(app, h, routes.Options{
		JWTSecret:      cfg.JWT.Secret,
		TokenTTL:       cfg.JWT.TTL,
		AuthRateMax:    cfg.RateLimit.AuthMax,
		AuthRateWindow: cfg.RateLimit.AuthWindow,
	})

	setupGracefulShutdown(app, container)

	logger.Info("Server starting",
		"port", cfg.App.Port,
		"env", cfg.App.Env,
		"app", cfg.App.Name,
		"health", "http://localhost:"+cfg.App.Port+"/api/v1/health",
	)

	if err := app.Listen(":" + cfg.App.Port); err != nil {
		logger.Error("Server failed to start", "error", err)
		os.Exit(1)
	}
}

func setupGracefulShutdown(app *fiber.App, container *di.Container) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		logger.Info("Gracefully shutting down...")

		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			logger.Error("Error shutting down server", "error", err)
		}
		if err := container.Cleanup(); err != nil {
			logger.Error("Error during cleanup", "error", err)
		}

		logger.Info("Shutdown complete")
		os.Exit(0)
	}()
}
