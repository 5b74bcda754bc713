package middleware

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sathvik89/Taskease/pkg/logger"
	"github.com/sathvik89/Taskease/pkg/utils"
)

// RefreshedTokenHeader carries a re-issued token on every authenticated
// response, so an active session never expires.
const RefreshedTokenHeader = "X-Refreshed-Token"

// Protected validates the bearer token and stores the caller's identity in
// Locals under utils.IdentityKey.
func Protected(jwtSecret string, tokenTTL time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := utils.ExtractTokenFromHeader(c.Get(fiber.HeaderAuthorization))
		if token == "" {
			return utils.UnauthorizedResponse(c, "Missing or malformed authorization header")
		}

		identity, err := utils.ParseToken(token, jwtSecret)
		if err != nil {
			logger.WarnContext(c.UserContext(), "Token validation failed", "error", err)
			if errors.Is(err, utils.ErrExpiredToken) {
				return utils.UnauthorizedResponse(c, "Token has expired")
			}
			return utils.UnauthorizedResponse(c, "Invalid token")
		}

		c.Locals(utils.IdentityKey, identity)
		c.SetUserContext(logger.ContextWithUserID(c.UserContext(), identity.ID.String()))

		if refreshed, err := utils.GenerateToken(identity, jwtSecret, tokenTTL); err == nil {
			c.Set(RefreshedTokenHeader, refreshed)
		}

		return c.Next()
	}
}

// AdminOnly must run after Protected.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, err := utils.GetIdentityFromContext(c)
		if err != nil {
			return utils.UnauthorizedResponse(c, "User not authenticated")
		}
		if !identity.IsAdmin {
			return utils.ForbiddenResponse(c, "Admin access required")
		}
		return c.Next()
	}
}
