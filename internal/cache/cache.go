package cache

import (
	"context"
	"sync"

	"github.com/appdotbuilder/influencer-sponsor-connect/internal/model"
)

// StatsCache holds the latest dashboard snapshot. Load returns nil, nil on a
// miss. Store keeps the current snapshot when the new one was computed earlier.
type StatsCache interface {
	Load(ctx context.Context) (*model.DashboardStats, error)
	Store(ctx context.Context, stats *model.DashboardStats) error
}

type MemoryStatsCache struct {
	mu    sync.RWMutex
	stats *model.DashboardStats
}

func NewMemoryStatsCache() *MemoryStatsCache {
	return &MemoryStatsCache{}
}

func (c *MemoryStatsCache) Load(ctx context.Context) (*model.DashboardStats, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stats, nil
}

func (c *MemoryStatsCache) Store(ctx context.Context, stats *model.DashboardStats) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if older(stats, c.stats) {
		return nil
	}
	c.stats = stats
	return nil
}

// older reports whether next was refreshed before current.
func older(next, current *model.DashboardStats) bool {
	return current != nil && next.RefreshedAt.Before(current.RefreshedAt)
}

var _ StatsCache = (*MemoryStatsCache)(nil)
