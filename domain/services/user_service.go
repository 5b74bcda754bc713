package services

import (
	"context"

	"github.com/sathvik89/Taskease/domain/dto"
	"github.com/sathvik89/Taskease/domain/models"
)

type UserService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (string, *models.User, error)
	GenerateToken(user *models.User) (string, error)

	GetProfile(ctx context.Context, identity *models.Identity) (*models.User, error)
	UpdateProfile(ctx context.Context, identity *models.Identity, req *dto.UpdateProfileRequest) (*models.User, error)
	ChangePassword(ctx context.Context, identity *models.Identity, req *dto.ChangePasswordRequest) error

	// ListUsers is admin only.
	ListUsers(ctx context.Context, identity *models.Identity) ([]*models.User, error)

	// SetAdmin grants or revokes the admin flag. Operator CLI only, no
	// identity check.
	SetAdmin(ctx context.Context, email string, isAdmin bool) (*models.User, error)
}
