package nats

import (
	"encoding/json"
	"fmt"

	"github.com/sathvik89/Taskease/domain/ports"
)

const (
	// StreamName holds every task lifecycle event.
	StreamName = "TASK_EVENTS"

	// SubjectPrefix is followed by the event type, e.g. tasks.trashed.
	SubjectPrefix = "tasks."

	// SubjectAll matches every task event subject.
	SubjectAll = SubjectPrefix + ">"
)

// Subject returns the subject an event of the given type is published on.
func Subject(t ports.TaskEventType) string {
	return SubjectPrefix + string(t)
}

// encodeEvent builds the subject and JSON payload for an event.
func encodeEvent(event *ports.TaskEvent) (string, []byte, error) {
	if event == nil || event.Type == "" {
		return "", nil, fmt.Errorf("task event without type")
	}
	data, err := json.Marshal(event)
	if err != nil {
		return "", nil, fmt.Errorf("failed to marshal task event: %w", err)
	}
	return Subject(event.Type), data, nil
}
