package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sathvik89/Taskease/domain/models"
)

const SortByDueDate = "dueDate"

// TaskFilter narrows List to equality matches. Zero values mean "any".
type TaskFilter struct {
	Status   models.TaskStatus
	Category string
	Priority models.TaskPriority
	SortBy   string
}

type TaskCounts struct {
	Total      int64
	Todo       int64
	InProgress int64
	Completed  int64
}

// TaskRepository is the task store. Every method except PurgeTrashedBefore
// is scoped to ownerID; a task owned by someone else behaves as if it did
// not exist and yields apperrors.ErrNotFound.
type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*models.Task, error)
	List(ctx context.Context, ownerID uuid.UUID, filter TaskFilter) ([]*models.Task, error)
	ListTrashed(ctx context.Context, ownerID uuid.UUID) ([]*models.Task, error)
	Search(ctx context.Context, ownerID uuid.UUID, query string) ([]*models.Task, error)
	Update(ctx context.Context, ownerID uuid.UUID, task *models.Task) error
	UpdateStatus(ctx context.Context, ownerID, id uuid.UUID, status models.TaskStatus) error
	SetDeleted(ctx context.Context, ownerID, id uuid.UUID, deleted bool) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	CountByStatus(ctx context.Context, ownerID uuid.UUID) (*TaskCounts, error)
	Upcoming(ctx context.Context, ownerID uuid.UUID, from time.Time, limit int) ([]*models.Task, error)

	// PurgeTrashedBefore is a maintenance operation across all owners.
	PurgeTrashedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
