package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sathvik89/Taskease/pkg/logger"
)

func LoggerMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		logger.DebugContext(c.UserContext(), "Request started",
			"method", c.Method(),
			"path", c.Path(),
			"ip", c.IP(),
		)

		err := c.Next()

		status := c.Response().StatusCode()
		logFunc := logger.InfoContext
		if status >= fiber.StatusInternalServerError {
			logFunc = logger.ErrorContext
		} else if status >= fiber.StatusBadRequest {
			logFunc = logger.WarnContext
		}

		// UserContext now carries the user id when the route was protected
		logFunc(c.UserContext(), "Request completed",
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"latency", time.Since(start).String(),
			"bytes", len(c.Response().Body()),
		)

		return err
	}
}
