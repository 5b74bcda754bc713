package serviceimpl

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/sathvik89/Taskease/domain/models"
	"github.com/sathvik89/Taskease/domain/ports"
	"github.com/sathvik89/Taskease/domain/repositories"
	"github.com/sathvik89/Taskease/infrastructure/postgres"
	"github.com/sathvik89/Taskease/pkg/scheduler"
)

type testRepos struct {
	users repositories.UserRepository
	tasks repositories.TaskRepository
}

func newTestRepos(t *testing.T) testRepos {
	t.Helper()

	db, err := postgres.NewDatabase(postgres.DatabaseConfig{
		Driver:     postgres.DriverSQLite,
		SQLitePath: "file:" + uuid.NewString() + "?mode=memory&cache=shared",
		LogLevel:   "silent",
	})
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return testRepos{
		users: postgres.NewUserRepository(db),
		tasks: postgres.NewTaskRepository(db),
	}
}

// countingTaskRepo records SetDeleted calls on top of a real repository.
type countingTaskRepo struct {
	repositories.TaskRepository
	setDeleted int
}

func (r *countingTaskRepo) SetDeleted(ctx context.Context, ownerID, id uuid.UUID, deleted bool) error {
	r.setDeleted++
	return r.TaskRepository.SetDeleted(ctx, ownerID, id, deleted)
}

// slowCountTaskRepo runs afterCount once the status counts are read, standing
// in for a write that lands while stats are being computed.
type slowCountTaskRepo struct {
	repositories.TaskRepository
	afterCount func()
}

func (r *slowCountTaskRepo) CountByStatus(ctx context.Context, ownerID uuid.UUID) (*repositories.TaskCounts, error) {
	counts, err := r.TaskRepository.CountByStatus(ctx, ownerID)
	if r.afterCount != nil {
		hook := r.afterCount
		r.afterCount = nil
		hook()
	}
	return counts, err
}

// memoryStatsCache counts hits so tests can tell cached from computed stats.
type memoryStatsCache struct {
	mu          sync.Mutex
	stats       map[uuid.UUID]*models.TaskStats
	invalidated []uuid.UUID
	failReads   bool
}

func newMemoryStatsCache() *memoryStatsCache {
	return &memoryStatsCache{stats: map[uuid.UUID]*models.TaskStats{}}
}

func (c *memoryStatsCache) GetStats(_ context.Context, userID uuid.UUID) (*models.TaskStats, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failReads {
		return nil, errors.New("cache down")
	}
	return c.stats[userID], nil
}

func (c *memoryStatsCache) SetStats(_ context.Context, userID uuid.UUID, stats *models.TaskStats) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats[userID] = stats
	return nil
}

func (c *memoryStatsCache) Invalidate(_ context.Context, userID uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.stats, userID)
	c.invalidated = append(c.invalidated, userID)
	return nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []*ports.TaskEvent
	err    error
}

func (p *recordingPublisher) PublishTaskEvent(_ context.Context, event *ports.TaskEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) types() []ports.TaskEventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]ports.TaskEventType, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

type stubExporter struct{}

func (stubExporter) ContentType() string { return "text/plain" }
func (stubExporter) Extension() string   { return "txt" }
func (stubExporter) Export(tasks []*models.Task) ([]byte, error) {
	out := ""
	for _, t := range tasks {
		out += t.Title + "\n"
	}
	return []byte(out), nil
}

type fakeScheduler struct {
	scheduler.EventScheduler
	jobs map[string]string
}

func (f *fakeScheduler) AddJob(id, cronExpr string, _ func()) error {
	if f.jobs == nil {
		f.jobs = map[string]string{}
	}
	f.jobs[id] = cronExpr
	return nil
}

func createUser(t *testing.T, repos testRepos, name, email string, isAdmin bool) *models.User {
	t.Helper()
	user := &models.User{Name: name, Email: email, Password: "x", IsAdmin: isAdmin}
	require.NoError(t, repos.users.Create(context.Background(), user))
	return user
}

func ptr[T any](v T) *T { return &v }

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
