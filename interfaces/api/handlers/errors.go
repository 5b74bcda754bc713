package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/sathvik89/Taskease/domain/apperrors"
	"github.com/sathvik89/Taskease/domain/models"
	"github.com/sathvik89/Taskease/pkg/logger"
	"github.com/sathvik89/Taskease/pkg/utils"
)

// handleServiceError maps the service error taxonomy onto the response
// envelope. notFound is the message used for apperrors.ErrNotFound.
func handleServiceError(c *fiber.Ctx, err error, notFound string) error {
	var ve *apperrors.ValidationError
	switch {
	case errors.As(err, &ve):
		var details any
		if ve.Field != "" {
			details = map[string]string{ve.Field: ve.Reason}
		}
		return utils.ValidationErrorResponse(c, ve.Reason, details)
	case errors.Is(err, apperrors.ErrUnauthorized):
		return utils.UnauthorizedResponse(c, "Authentication required")
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return utils.UnauthorizedResponse(c, "Invalid credentials")
	case errors.Is(err, apperrors.ErrForbidden):
		return utils.ForbiddenResponse(c, "Admin access required")
	case errors.Is(err, apperrors.ErrUserNotFound):
		return utils.NotFoundResponse(c, "User not found")
	case errors.Is(err, apperrors.ErrNotFound):
		return utils.NotFoundResponse(c, notFound)
	}

	logger.ErrorContext(c.UserContext(), "Request failed", "path", c.Path(), "error", err)
	return utils.InternalServerErrorResponse(c)
}

// bindAndValidate parses the JSON body into req and runs the validator. It
// writes the error response itself and reports whether the handler should
// go on.
func bindAndValidate(c *fiber.Ctx, req interface{}) (bool, error) {
	if err := c.BodyParser(req); err != nil {
		logger.WarnContext(c.UserContext(), "Invalid request body", "error", err)
		return false, utils.BadRequestResponse(c, "Invalid request body")
	}
	return validate(c, req)
}

func validate(c *fiber.Ctx, req interface{}) (bool, error) {
	if err := utils.ValidateStruct(req); err != nil {
		details := utils.GetValidationErrors(err)
		logger.WarnContext(c.UserContext(), "Validation failed", "errors", details)
		return false, utils.ValidationErrorResponse(c, "Validation failed", details)
	}
	return true, nil
}

// identity is nil when the route is not protected; services then answer
// apperrors.ErrUnauthorized.
func identity(c *fiber.Ctx) *models.Identity {
	id, err := utils.GetIdentityFromContext(c)
	if err != nil {
		return nil
	}
	return id
}
