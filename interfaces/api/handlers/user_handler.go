package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/sathvik89/Taskease/domain/apperrors"
	"github.com/sathvik89/Taskease/domain/dto"
	"github.com/sathvik89/Taskease/domain/services"
	"github.com/sathvik89/Taskease/pkg/logger"
	"github.com/sathvik89/Taskease/pkg/utils"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Register creates the account and signs the user in.
func (h *UserHandler) Register(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.RegisterRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	user, err := h.userService.Register(ctx, &req)
	if err != nil {
		return handleServiceError(c, err, "User not found")
	}

	token, err := h.userService.GenerateToken(user)
	if err != nil {
		return handleServiceError(c, err, "")
	}

	return utils.CreatedResponse(c, dto.AuthResponse{
		Token: token,
		User:  *dto.UserToUserResponse(user),
	})
}

func (h *UserHandler) Login(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.LoginRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	token, user, err := h.userService.Login(ctx, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return utils.NotFoundResponse(c, "User not found. Please register first.")
		}
		return handleServiceError(c, err, "User not found")
	}

	return utils.SuccessResponse(c, dto.AuthResponse{
		Token: token,
		User:  *dto.UserToUserResponse(user),
	})
}

func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	user, err := h.userService.GetProfile(c.UserContext(), identity(c))
	if err != nil {
		return handleServiceError(c, err, "User not found")
	}
	return utils.SuccessResponse(c, dto.UserToUserResponse(user))
}

func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.UpdateProfileRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	user, err := h.userService.UpdateProfile(ctx, identity(c), &req)
	if err != nil {
		return handleServiceError(c, err, "User not found")
	}
	return utils.SuccessResponse(c, dto.UserToUserResponse(user))
}

func (h *UserHandler) ChangePassword(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.ChangePasswordRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	if err := h.userService.ChangePassword(ctx, identity(c), &req); err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			return utils.BadRequestResponse(c, "Current password is incorrect")
		}
		return handleServiceError(c, err, "User not found")
	}
	return utils.MessageResponse(c, "Password updated successfully")
}

// ListUsers is admin only; the route also runs AdminOnly.
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.userService.ListUsers(c.UserContext(), identity(c))
	if err != nil {
		return handleServiceError(c, err, "")
	}
	logger.InfoContext(c.UserContext(), "Users listed", "count", len(users))
	return utils.SuccessResponse(c, dto.UsersToUserResponses(users))
}
