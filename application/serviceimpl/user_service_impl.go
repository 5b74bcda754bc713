package serviceimpl

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/sathvik89/Taskease/domain/apperrors"
	"github.com/sathvik89/Taskease/domain/dto"
	"github.com/sathvik89/Taskease/domain/models"
	"github.com/sathvik89/Taskease/domain/repositories"
	"github.com/sathvik89/Taskease/domain/services"
	"github.com/sathvik89/Taskease/pkg/logger"
	"github.com/sathvik89/Taskease/pkg/utils"
)

const (
	minPasswordLength = 6
	// bcrypt only accepts up to 72 bytes of input.
	maxPasswordBytes = 72
)

type UserServiceImpl struct {
	userRepo  repositories.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewUserService(userRepo repositories.UserRepository, jwtSecret string, tokenTTL time.Duration) services.UserService {
	return &UserServiceImpl{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

func (s *UserServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	if name == "" {
		return nil, apperrors.NewValidationError("name", "Name is required")
	}
	if err := checkPassword("password", req.Password); err != nil {
		return nil, err
	}

	taken, err := s.userRepo.EmailTaken(ctx, email, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if taken {
		logger.WarnContext(ctx, "Email already exists", "email", email)
		return nil, apperrors.ErrDuplicateEmail
	}

	hashedPassword, err := hashPassword(req.Password)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to hash password", "error", err)
		return nil, err
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: hashedPassword,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicateEmail) {
			logger.ErrorContext(ctx, "Failed to create user in database", "error", err)
		}
		return nil, err
	}

	logger.InfoContext(ctx, "User registered", "user_id", user.ID, "email", user.Email)
	return user, nil
}

// Authenticate matches the email exactly, then compares the bcrypt hash.
func (s *UserServiceImpl) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, apperrors.NewValidationError("", "Email and password are required")
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.WarnContext(ctx, "Login for unknown email", "email", email)
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		logger.WarnContext(ctx, "Invalid password", "user_id", user.ID)
		return nil, apperrors.ErrInvalidCredentials
	}
	return user, nil
}

func (s *UserServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (string, *models.User, error) {
	user, err := s.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		return "", nil, err
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to generate token", "user_id", user.ID, "error", err)
		return "", nil, err
	}

	logger.InfoContext(ctx, "User logged in", "user_id", user.ID)
	return token, user, nil
}

func (s *UserServiceImpl) GenerateToken(user *models.User) (string, error) {
	return utils.GenerateToken(user.Identity(), s.jwtSecret, s.tokenTTL)
}

func (s *UserServiceImpl) GetProfile(ctx context.Context, identity *models.Identity) (*models.User, error) {
	if err := requireIdentity(identity); err != nil {
		return nil, err
	}
	return s.userRepo.GetByID(ctx, identity.ID)
}

func (s *UserServiceImpl) UpdateProfile(ctx context.Context, identity *models.Identity, req *dto.UpdateProfileRequest) (*models.User, error) {
	if err := requireIdentity(identity); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	if name == "" || email == "" {
		return nil, apperrors.NewValidationError("", "Name and email are required")
	}

	user, err := s.userRepo.GetByID(ctx, identity.ID)
	if err != nil {
		return nil, err
	}

	taken, err := s.userRepo.EmailTaken(ctx, email, user.ID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.ErrDuplicateEmail
	}

	user.Name = name
	user.Email = email
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "Profile updated", "user_id", user.ID)
	return user, nil
}

func (s *UserServiceImpl) ChangePassword(ctx context.Context, identity *models.Identity, req *dto.ChangePasswordRequest) error {
	if err := requireIdentity(identity); err != nil {
		return err
	}
	if err := checkPassword("newPassword", req.NewPassword); err != nil {
		return err
	}

	user, err := s.userRepo.GetByID(ctx, identity.ID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		return fmt.Errorf("current password is incorrect: %w", apperrors.ErrInvalidCredentials)
	}

	hashedPassword, err := hashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	user.Password = hashedPassword
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	logger.InfoContext(ctx, "Password changed", "user_id", user.ID)
	return nil
}

func (s *UserServiceImpl) ListUsers(ctx context.Context, identity *models.Identity) ([]*models.User, error) {
	if err := requireIdentity(identity); err != nil {
		return nil, err
	}
	if !identity.IsAdmin {
		logger.WarnContext(ctx, "Non-admin tried to list users", "user_id", identity.ID)
		return nil, apperrors.ErrForbidden
	}
	return s.userRepo.List(ctx)
}

func (s *UserServiceImpl) SetAdmin(ctx context.Context, email string, isAdmin bool) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	user.IsAdmin = isAdmin
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "Admin flag changed", "user_id", user.ID, "is_admin", isAdmin)
	return user, nil
}

// checkPassword enforces the length rules on a new password. The upper bound
// is in bytes, so multibyte characters count for more than one.
func checkPassword(field, password string) error {
	if len(password) < minPasswordLength {
		return apperrors.NewValidationError(field, "Password must be at least 6 characters")
	}
	if len(password) > maxPasswordBytes {
		return apperrors.NewValidationError(field, "Password must be at most 72 bytes")
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", apperrors.NewValidationError("password", "Password must be at most 72 bytes")
	}
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
