package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type TaskEventType string

const (
	TaskCreated       TaskEventType = "created"
	TaskUpdated       TaskEventType = "updated"
	TaskStatusChanged TaskEventType = "status_changed"
	TaskTrashed       TaskEventType = "trashed"
	TaskRestored      TaskEventType = "restored"
	TaskPurged        TaskEventType = "purged"
)

// TaskEvent describes one lifecycle change of a task. Plain struct, no
// broker types.
type TaskEvent struct {
	Type       TaskEventType `json:"type"`
	TaskID     uuid.UUID     `json:"taskId"`
	OwnerID    uuid.UUID     `json:"ownerId"`
	Status     string        `json:"status,omitempty"`
	OccurredAt time.Time     `json:"occurredAt"`
}

type TaskEventPublisherPort interface {
	PublishTaskEvent(ctx context.Context, event *TaskEvent) error
}
