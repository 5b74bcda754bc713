package redis

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sathvik89/Taskease/domain/models"
)

type memoryStore struct {
	data map[string][]byte
	ttls map[string]time.Duration
	err  error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{data: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (m *memoryStore) GetJSON(_ context.Context, key string, target interface{}) error {
	if m.err != nil {
		return m.err
	}
	raw, ok := m.data[key]
	if !ok {
		return ErrCacheMiss
	}
	return json.Unmarshal(raw, target)
}

func (m *memoryStore) SetJSON(_ context.Context, key string, value interface{}, expiration time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = raw
	m.ttls[key] = expiration
	return nil
}

func (m *memoryStore) Del(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

func TestStatsCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()
	cache := NewStatsCache(store, 30*time.Second)
	owner := uuid.New()

	got, err := cache.GetStats(ctx, owner)
	require.NoError(t, err)
	assert.Nil(t, got, "miss is nil, nil")

	stats := &models.TaskStats{TotalTasks: 3, TodoTasks: 2, CompletedTasks: 1, UpcomingTasks: []*models.Task{}}
	require.NoError(t, cache.SetStats(ctx, owner, stats))
	assert.Equal(t, 30*time.Second, store.ttls[statsKey(owner)])

	got, err = cache.GetStats(ctx, owner)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(3), got.TotalTasks)
	assert.Equal(t, int64(2), got.TodoTasks)

	other, err := cache.GetStats(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, other)

	require.NoError(t, cache.Invalidate(ctx, owner))
	got, err = cache.GetStats(ctx, owner)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStatsCachePropagatesStoreErrors(t *testing.T) {
	store := newMemoryStore()
	store.err = errors.New("connection refused")
	cache := NewStatsCache(store, 0)

	_, err := cache.GetStats(context.Background(), uuid.New())
	assert.EqualError(t, err, "connection refused")
	assert.Equal(t, time.Minute, cache.ttl)
}
