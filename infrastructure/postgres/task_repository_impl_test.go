package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sathvik89/Taskease/domain/apperrors"
	"github.com/sathvik89/Taskease/domain/models"
	"github.com/sathvik89/Taskease/domain/repositories"
)

type taskFixture struct {
	ctx   context.Context
	repo  repositories.TaskRepository
	owner uuid.UUID
	other uuid.UUID
	base  time.Time
}

func newTaskFixture(t *testing.T) *taskFixture {
	return &taskFixture{
		ctx:   context.Background(),
		repo:  NewTaskRepository(newTestDB(t)),
		owner: uuid.New(),
		other: uuid.New(),
		base:  time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

// add creates a task for owner, n minutes after the fixture base time.
func (f *taskFixture) add(t *testing.T, owner uuid.UUID, n int, task models.Task) *models.Task {
	t.Helper()
	task.CreatedBy = owner
	task.CreatedAt = f.base.Add(time.Duration(n) * time.Minute)
	if task.Status == "" {
		task.Status = models.StatusTodo
	}
	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}
	if task.Category == "" {
		task.Category = models.DefaultCategory
	}
	require.NoError(t, f.repo.Create(f.ctx, &task))
	return &task
}

func titles(tasks []*models.Task) []string {
	out := make([]string, len(tasks))
	for i, task := range tasks {
		out[i] = task.Title
	}
	return out
}

func datePtr(t time.Time) *time.Time { return &t }

func TestTaskRepositoryOwnershipScope(t *testing.T) {
	f := newTaskFixture(t)
	mine := f.add(t, f.owner, 1, models.Task{Title: "mine"})
	theirs := f.add(t, f.other, 2, models.Task{Title: "theirs"})

	got, err := f.repo.GetByID(f.ctx, f.owner, mine.ID)
	require.NoError(t, err)
	assert.Equal(t, "mine", got.Title)

	_, err = f.repo.GetByID(f.ctx, f.owner, theirs.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	tasks, err := f.repo.List(f.ctx, f.owner, repositories.TaskFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"mine"}, titles(tasks))

	theirs.Title = "hijacked"
	assert.ErrorIs(t, f.repo.Update(f.ctx, f.owner, theirs), apperrors.ErrNotFound)
	assert.ErrorIs(t, f.repo.UpdateStatus(f.ctx, f.owner, theirs.ID, models.StatusCompleted), apperrors.ErrNotFound)
	assert.ErrorIs(t, f.repo.SetDeleted(f.ctx, f.owner, theirs.ID, true), apperrors.ErrNotFound)
	assert.ErrorIs(t, f.repo.Delete(f.ctx, f.owner, theirs.ID), apperrors.ErrNotFound)

	untouched, err := f.repo.GetByID(f.ctx, f.other, theirs.ID)
	require.NoError(t, err)
	assert.Equal(t, "theirs", untouched.Title)
	assert.False(t, untouched.IsDeleted)
}

func TestTaskRepositoryListFiltersAndSort(t *testing.T) {
	f := newTaskFixture(t)
	f.add(t, f.owner, 1, models.Task{Title: "a", Category: "Work", Priority: models.PriorityHigh, DueDate: datePtr(f.base.AddDate(0, 0, 5))})
	f.add(t, f.owner, 2, models.Task{Title: "b", Category: "Home", Status: models.StatusCompleted})
	f.add(t, f.owner, 3, models.Task{Title: "c", Category: "Work", DueDate: datePtr(f.base.AddDate(0, 0, 1))})
	trashed := f.add(t, f.owner, 4, models.Task{Title: "d", Category: "Work"})
	require.NoError(t, f.repo.SetDeleted(f.ctx, f.owner, trashed.ID, true))

	tests := []struct {
		name   string
		filter repositories.TaskFilter
		want   []string
	}{
		{"default newest first", repositories.TaskFilter{}, []string{"c", "b", "a"}},
		{"by category", repositories.TaskFilter{Category: "Work"}, []string{"c", "a"}},
		{"by status", repositories.TaskFilter{Status: models.StatusCompleted}, []string{"b"}},
		{"by priority", repositories.TaskFilter{Priority: models.PriorityHigh}, []string{"a"}},
		{"combined", repositories.TaskFilter{Category: "Work", Priority: models.PriorityMedium}, []string{"c"}},
		{"due date ascending, undated first", repositories.TaskFilter{SortBy: repositories.SortByDueDate}, []string{"b", "c", "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks, err := f.repo.List(f.ctx, f.owner, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, titles(tasks))
		})
	}
}

func TestTaskRepositoryDueDateSortPutsUndatedFirst(t *testing.T) {
	f := newTaskFixture(t)
	f.add(t, f.owner, 1, models.Task{Title: "dated", DueDate: datePtr(f.base.AddDate(0, 0, 3))})
	f.add(t, f.owner, 2, models.Task{Title: "undated old"})
	f.add(t, f.owner, 3, models.Task{Title: "dated sooner", DueDate: datePtr(f.base.AddDate(0, 0, 1))})
	f.add(t, f.owner, 4, models.Task{Title: "undated new"})

	tasks, err := f.repo.List(f.ctx, f.owner, repositories.TaskFilter{SortBy: repositories.SortByDueDate})
	require.NoError(t, err)
	assert.Equal(t, []string{"undated new", "undated old", "dated sooner", "dated"}, titles(tasks))
}

func TestTaskRepositoryTrashRoundTrip(t *testing.T) {
	f := newTaskFixture(t)
	task := f.add(t, f.owner, 1, models.Task{Title: "round trip", Description: "keep me", DueDate: datePtr(f.base.AddDate(0, 1, 0))})

	before, err := f.repo.GetByID(f.ctx, f.owner, task.ID)
	require.NoError(t, err)

	require.NoError(t, f.repo.SetDeleted(f.ctx, f.owner, task.ID, true))
	// idempotent
	require.NoError(t, f.repo.SetDeleted(f.ctx, f.owner, task.ID, true))

	deleted, err := f.repo.GetByID(f.ctx, f.owner, task.ID)
	require.NoError(t, err)
	assert.True(t, deleted.IsDeleted)
	require.NotNil(t, deleted.TrashedAt)

	trash, err := f.repo.ListTrashed(f.ctx, f.owner)
	require.NoError(t, err)
	assert.Equal(t, []string{"round trip"}, titles(trash))

	active, err := f.repo.List(f.ctx, f.owner, repositories.TaskFilter{})
	require.NoError(t, err)
	assert.Empty(t, active)

	require.NoError(t, f.repo.SetDeleted(f.ctx, f.owner, task.ID, false))
	after, err := f.repo.GetByID(f.ctx, f.owner, task.ID)
	require.NoError(t, err)

	assert.False(t, after.IsDeleted)
	assert.Nil(t, after.TrashedAt)
	assert.Equal(t, before.Title, after.Title)
	assert.Equal(t, before.Description, after.Description)
	assert.Equal(t, before.Status, after.Status)
	assert.Equal(t, before.Category, after.Category)
	assert.Equal(t, before.Priority, after.Priority)
	assert.True(t, before.DueDate.Equal(*after.DueDate))
	assert.True(t, before.CreatedAt.Equal(after.CreatedAt))
	assert.True(t, before.UpdatedAt.Equal(after.UpdatedAt))
}

func TestTaskRepositoryUpdateOverwrites(t *testing.T) {
	f := newTaskFixture(t)
	task := f.add(t, f.owner, 1, models.Task{Title: "old", Description: "old desc", DueDate: datePtr(f.base)})

	task.Title = "new"
	task.Description = ""
	task.Status = models.StatusInProgress
	task.Category = "Work"
	task.Priority = models.PriorityLow
	task.DueDate = nil
	task.IsDeleted = true // ignored by Update
	require.NoError(t, f.repo.Update(f.ctx, f.owner, task))

	got, err := f.repo.GetByID(f.ctx, f.owner, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "new", got.Title)
	assert.Equal(t, "", got.Description)
	assert.Equal(t, models.StatusInProgress, got.Status)
	assert.Equal(t, "Work", got.Category)
	assert.Equal(t, models.PriorityLow, got.Priority)
	assert.Nil(t, got.DueDate)
	assert.False(t, got.IsDeleted)
	assert.Equal(t, f.owner, got.CreatedBy)

	require.NoError(t, f.repo.UpdateStatus(f.ctx, f.owner, task.ID, models.StatusCompleted))
	got, err = f.repo.GetByID(f.ctx, f.owner, task.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, got.Status)
	assert.Equal(t, "new", got.Title)
}

func TestTaskRepositorySearch(t *testing.T) {
	f := newTaskFixture(t)
	f.add(t, f.owner, 1, models.Task{Title: "Buy MILK"})
	f.add(t, f.owner, 2, models.Task{Title: "Call mom", Description: "about the milkshake"})
	f.add(t, f.owner, 3, models.Task{Title: "100% done"})
	f.add(t, f.owner, 4, models.Task{Title: "unrelated"})
	gone := f.add(t, f.owner, 5, models.Task{Title: "milk in trash"})
	require.NoError(t, f.repo.SetDeleted(f.ctx, f.owner, gone.ID, true))
	f.add(t, f.other, 6, models.Task{Title: "someone else's milk"})

	tasks, err := f.repo.Search(f.ctx, f.owner, "Milk")
	require.NoError(t, err)
	assert.Equal(t, []string{"Call mom", "Buy MILK"}, titles(tasks))

	tasks, err = f.repo.Search(f.ctx, f.owner, "0%")
	require.NoError(t, err)
	assert.Equal(t, []string{"100% done"}, titles(tasks))

	tasks, err = f.repo.Search(f.ctx, f.owner, "_")
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestTaskRepositorySearchFoldsNonASCII(t *testing.T) {
	f := newTaskFixture(t)
	f.add(t, f.owner, 1, models.Task{Title: "ÉCOLE run"})
	f.add(t, f.owner, 2, models.Task{Title: "Groceries", Description: "Crème BRÛLÉE"})
	f.add(t, f.owner, 3, models.Task{Title: "ecole without accent"})

	tasks, err := f.repo.Search(f.ctx, f.owner, "école")
	require.NoError(t, err)
	assert.Equal(t, []string{"ÉCOLE run"}, titles(tasks))

	tasks, err = f.repo.Search(f.ctx, f.owner, "brûlée")
	require.NoError(t, err)
	assert.Equal(t, []string{"Groceries"}, titles(tasks))
}

func TestTaskRepositoryCountsAndUpcoming(t *testing.T) {
	f := newTaskFixture(t)
	now := f.base
	f.add(t, f.owner, 1, models.Task{Title: "late", DueDate: datePtr(now.Add(-time.Hour))})
	f.add(t, f.owner, 2, models.Task{Title: "soon", DueDate: datePtr(now.Add(time.Hour)), Status: models.StatusInProgress})
	f.add(t, f.owner, 3, models.Task{Title: "done", DueDate: datePtr(now.Add(2 * time.Hour)), Status: models.StatusCompleted})
	f.add(t, f.owner, 4, models.Task{Title: "later", DueDate: datePtr(now.Add(48 * time.Hour))})
	f.add(t, f.owner, 5, models.Task{Title: "undated"})
	trashed := f.add(t, f.owner, 6, models.Task{Title: "trashed", DueDate: datePtr(now.Add(30 * time.Minute))})
	require.NoError(t, f.repo.SetDeleted(f.ctx, f.owner, trashed.ID, true))
	f.add(t, f.other, 7, models.Task{Title: "foreign", DueDate: datePtr(now.Add(10 * time.Minute))})

	counts, err := f.repo.CountByStatus(f.ctx, f.owner)
	require.NoError(t, err)
	assert.Equal(t, repositories.TaskCounts{Total: 5, Todo: 3, InProgress: 1, Completed: 1}, *counts)

	upcoming, err := f.repo.Upcoming(f.ctx, f.owner, now, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"soon", "later"}, titles(upcoming))

	upcoming, err = f.repo.Upcoming(f.ctx, f.owner, now, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"soon"}, titles(upcoming))
}

func TestTaskRepositoryDeleteAndPurge(t *testing.T) {
	f := newTaskFixture(t)
	live := f.add(t, f.owner, 1, models.Task{Title: "live"})
	old := f.add(t, f.owner, 2, models.Task{Title: "old trash"})
	foreign := f.add(t, f.other, 3, models.Task{Title: "foreign trash"})

	// permanent delete does not require the task to be trashed first
	require.NoError(t, f.repo.Delete(f.ctx, f.owner, live.ID))
	_, err := f.repo.GetByID(f.ctx, f.owner, live.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.ErrorIs(t, f.repo.Delete(f.ctx, f.owner, live.ID), apperrors.ErrNotFound)

	require.NoError(t, f.repo.SetDeleted(f.ctx, f.owner, old.ID, true))
	require.NoError(t, f.repo.SetDeleted(f.ctx, f.other, foreign.ID, true))

	n, err := f.repo.PurgeTrashedBefore(f.ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = f.repo.PurgeTrashedBefore(f.ctx, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	trash, err := f.repo.ListTrashed(f.ctx, f.other)
	require.NoError(t, err)
	assert.Empty(t, trash)
}
