package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/sathvik89/Taskease/domain/models"
)

// StatsCachePort caches per-user task statistics. A miss returns
// (nil, nil); any mutation of the user's tasks must call Invalidate.
type StatsCachePort interface {
	GetStats(ctx context.Context, userID uuid.UUID) (*models.TaskStats, error)
	SetStats(ctx context.Context, userID uuid.UUID, stats *models.TaskStats) error
	Invalidate(ctx context.Context, userID uuid.UUID) error
}
