package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sathvik89/Taskease/domain/apperrors"
)

type CreateTaskRequest struct {
	Title       string  `json:"title" validate:"required,max=200"`
	Description string  `json:"description" validate:"omitempty,max=2000"`
	Status      string  `json:"status" validate:"omitempty,oneof=todo in-progress completed"`
	Category    string  `json:"category" validate:"omitempty,max=100"`
	Priority    string  `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueDate     *string `json:"dueDate"`
}

// UpdateTaskRequest overwrites every editable field of a task.
type UpdateTaskRequest struct {
	Title       string  `json:"title" validate:"required,max=200"`
	Description string  `json:"description" validate:"omitempty,max=2000"`
	Status      string  `json:"status" validate:"omitempty,oneof=todo in-progress completed"`
	Category    string  `json:"category" validate:"omitempty,max=100"`
	Priority    string  `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueDate     *string `json:"dueDate"`
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=todo in-progress completed"`
}

type TaskFilterRequest struct {
	Status   string `query:"status" validate:"omitempty,oneof=todo in-progress completed"`
	Category string `query:"category" validate:"omitempty,max=100"`
	Priority string `query:"priority" validate:"omitempty,oneof=low medium high"`
	SortBy   string `query:"sortBy" validate:"omitempty,oneof=dueDate createdAt"`
}

type TaskResponse struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Category    string     `json:"category"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"dueDate"`
	CreatedBy   uuid.UUID  `json:"createdBy"`
	IsDeleted   bool       `json:"isDeleted"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type TaskStatsResponse struct {
	TotalTasks      int64          `json:"totalTasks"`
	TodoTasks       int64          `json:"todoTasks"`
	InProgressTasks int64          `json:"inProgressTasks"`
	CompletedTasks  int64          `json:"completedTasks"`
	UpcomingTasks   []TaskResponse `json:"upcomingTasks"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

var dueDateLayouts = []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"}

// ParseDueDate accepts RFC 3339 timestamps and the plain dates sent by HTML
// date inputs. A nil or blank value means "no due date".
func ParseDueDate(raw *string) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}
	s := strings.TrimSpace(*raw)
	if s == "" {
		return nil, nil
	}

	for _, layout := range dueDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, apperrors.NewValidationError("dueDate", "Due date must be a date (YYYY-MM-DD) or an RFC 3339 timestamp")
}
