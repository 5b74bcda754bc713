package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskStatus string

const (
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in-progress"
	StatusCompleted  TaskStatus = "completed"
)

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

const DefaultCategory = "Other"

type Task struct {
	ID          uuid.UUID    `gorm:"primaryKey;type:uuid"`
	Title       string       `gorm:"not null"`
	Description string
	Status      TaskStatus   `gorm:"size:20;not null;default:'todo';index"`
	Category    string       `gorm:"size:100;not null;default:'Other'"`
	Priority    TaskPriority `gorm:"size:10;not null;default:'medium'"`
	DueDate     *time.Time   `gorm:"index"`
	CreatedBy   uuid.UUID    `gorm:"type:uuid;not null;index"`
	IsDeleted   bool         `gorm:"not null;default:false;index"`
	TrashedAt   *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Task) TableName() string {
	return "tasks"
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// State derives the lifecycle state from the stored flag.
func (t *Task) State() TaskState {
	if t.IsDeleted {
		return TaskStateDeleted
	}
	return TaskStateActive
}

func (s TaskStatus) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}
