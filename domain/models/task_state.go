package models

import "fmt"

// TaskState is the trash lifecycle of a task:
//
//	active -> deleted -> active (restore)
//	active | deleted -> purged
type TaskState string

const (
	TaskStateActive  TaskState = "active"
	TaskStateDeleted TaskState = "deleted"
	TaskStatePurged  TaskState = "purged"
)

type TaskAction string

const (
	ActionTrash   TaskAction = "trash"
	ActionRestore TaskAction = "restore"
	ActionPurge   TaskAction = "purge"
)

// Apply returns the state reached from s by action. Trash and restore are
// idempotent; purged is terminal.
func (s TaskState) Apply(action TaskAction) (TaskState, error) {
	if s == TaskStatePurged {
		return s, fmt.Errorf("task is purged, cannot %s", action)
	}

	switch action {
	case ActionTrash:
		return TaskStateDeleted, nil
	case ActionRestore:
		return TaskStateActive, nil
	case ActionPurge:
		return TaskStatePurged, nil
	}
	return s, fmt.Errorf("unknown task action %q", action)
}

// IsDeleted maps a state onto the persisted soft-delete flag.
func (s TaskState) IsDeleted() bool {
	return s == TaskStateDeleted
}
