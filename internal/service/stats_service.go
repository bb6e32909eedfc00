package service

import (
	"context"
	"sync"

	"github.com/appdotbuilder/influencer-sponsor-connect/internal/cache"
	"github.com/appdotbuilder/influencer-sponsor-connect/internal/logger"
	"github.com/appdotbuilder/influencer-sponsor-connect/internal/model"
	"github.com/appdotbuilder/influencer-sponsor-connect/internal/repository"
)

// StatsService serves the dashboard snapshot. Counts are recomputed from
// scratch on refresh; nothing is maintained incrementally.
type StatsService struct {
	StatsRepo repository.StatsRepositoryInterface
	Cache     cache.StatsCache

	// refreshes run one at a time so snapshots are stored in the order computed
	mu sync.Mutex
}

// Get returns the cached snapshot, computing one on a miss.
func (s *StatsService) Get(ctx context.Context) (*model.DashboardStats, error) {
	if s.Cache != nil {
		stats, err := s.Cache.Load(ctx)
		if err != nil {
			logger.FromContext(ctx).Warn("failed to load cached stats", "err", err)
		}
		if stats != nil {
			return stats, nil
		}
	}
	return s.Refresh(ctx)
}

func (s *StatsService) Refresh(ctx context.Context) (*model.DashboardStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats, err := s.StatsRepo.Counts(ctx)
	if err != nil {
		return nil, logFailure(ctx, "failed to compute dashboard stats", err)
	}
	if s.Cache != nil {
		if err := s.Cache.Store(ctx, stats); err != nil {
			logger.FromContext(ctx).Warn("failed to cache stats", "err", err)
		}
	}
	return stats, nil
}
