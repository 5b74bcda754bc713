package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sathvik89/Taskease/domain/dto"
	"github.com/sathvik89/Taskease/domain/models"
	"github.com/sathvik89/Taskease/domain/ports"
)

// TaskService is the task access layer. Every method that takes an identity
// rejects a missing one with apperrors.ErrUnauthorized and only ever sees
// the caller's own tasks.
type TaskService interface {
	List(ctx context.Context, identity *models.Identity, filter *dto.TaskFilterRequest) ([]*models.Task, error)
	ListTrash(ctx context.Context, identity *models.Identity) ([]*models.Task, error)
	Get(ctx context.Context, identity *models.Identity, taskID uuid.UUID) (*models.Task, error)
	Create(ctx context.Context, identity *models.Identity, req *dto.CreateTaskRequest) (*models.Task, error)
	Update(ctx context.Context, identity *models.Identity, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error)
	UpdateStatus(ctx context.Context, identity *models.Identity, taskID uuid.UUID, status string) (*models.Task, error)
	SoftDelete(ctx context.Context, identity *models.Identity, taskID uuid.UUID) (*models.Task, error)
	Restore(ctx context.Context, identity *models.Identity, taskID uuid.UUID) (*models.Task, error)
	PermanentDelete(ctx context.Context, identity *models.Identity, taskID uuid.UUID) error
	Search(ctx context.Context, identity *models.Identity, query string) ([]*models.Task, error)
	Stats(ctx context.Context, identity *models.Identity) (*models.TaskStats, error)
	Export(ctx context.Context, identity *models.Identity, filter *dto.TaskFilterRequest) (*ports.ExportedFile, error)

	// PurgeTrash permanently removes tasks trashed before cutoff, for every
	// owner. Used by the retention job and the operator CLI.
	PurgeTrash(ctx context.Context, cutoff time.Time) (int64, error)
}
