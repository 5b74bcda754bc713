package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/sathvik89/Taskease/domain/models"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// EmailTaken reports whether a user other than excludeID owns email.
	// Pass uuid.Nil to check against every user.
	EmailTaken(ctx context.Context, email string, excludeID uuid.UUID) (bool, error)
	Update(ctx context.Context, user *models.User) error
	List(ctx context.Context) ([]*models.User, error)
	Count(ctx context.Context) (int64, error)
}
