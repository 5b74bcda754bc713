package redis

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/sathvik89/Taskease/domain/models"
	"github.com/sathvik89/Taskease/domain/ports"
)

const statsKeyPrefix = "taskease:stats:"

// jsonStore is the subset of Client the stats cache needs.
type jsonStore interface {
	GetJSON(ctx context.Context, key string, target interface{}) error
	SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

type StatsCache struct {
	store jsonStore
	ttl   time.Duration
}

var _ ports.StatsCachePort = (*StatsCache)(nil)

func NewStatsCache(store jsonStore, ttl time.Duration) *StatsCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &StatsCache{store: store, ttl: ttl}
}

func statsKey(ownerID uuid.UUID) string {
	return statsKeyPrefix + ownerID.String()
}

// GetStats returns nil, nil on a cache miss.
func (s *StatsCache) GetStats(ctx context.Context, ownerID uuid.UUID) (*models.TaskStats, error) {
	var stats models.TaskStats
	if err := s.store.GetJSON(ctx, statsKey(ownerID), &stats); err != nil {
		if errors.Is(err, ErrCacheMiss) {
			return nil, nil
		}
		return nil, err
	}
	return &stats, nil
}

func (s *StatsCache) SetStats(ctx context.Context, ownerID uuid.UUID, stats *models.TaskStats) error {
	return s.store.SetJSON(ctx, statsKey(ownerID), stats, s.ttl)
}

func (s *StatsCache) Invalidate(ctx context.Context, ownerID uuid.UUID) error {
	return s.store.Del(ctx, statsKey(ownerID))
}
