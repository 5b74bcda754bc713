package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskStateApply(t *testing.T) {
	tests := []struct {
		name   string
		from   TaskState
		action TaskAction
		want   TaskState
	}{
		{"trash active", TaskStateActive, ActionTrash, TaskStateDeleted},
		{"trash deleted is idempotent", TaskStateDeleted, ActionTrash, TaskStateDeleted},
		{"restore deleted", TaskStateDeleted, ActionRestore, TaskStateActive},
		{"restore active is idempotent", TaskStateActive, ActionRestore, TaskStateActive},
		{"purge active", TaskStateActive, ActionPurge, TaskStatePurged},
		{"purge deleted", TaskStateDeleted, ActionPurge, TaskStatePurged},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.from.Apply(tt.action)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTaskStatePurgedIsTerminal(t *testing.T) {
	for _, action := range []TaskAction{ActionTrash, ActionRestore, ActionPurge} {
		_, err := TaskStatePurged.Apply(action)
		assert.Error(t, err, action)
	}
}

func TestTaskStateUnknownAction(t *testing.T) {
	_, err := TaskStateActive.Apply("archive")
	assert.Error(t, err)
}

func TestTaskDerivedState(t *testing.T) {
	task := &Task{}
	assert.Equal(t, TaskStateActive, task.State())
	task.IsDeleted = true
	assert.Equal(t, TaskStateDeleted, task.State())
	assert.True(t, task.State().IsDeleted())
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, StatusInProgress.Valid())
	assert.False(t, TaskStatus("pending").Valid())
	assert.True(t, PriorityHigh.Valid())
	assert.False(t, TaskPriority("urgent").Valid())
}
