package service

import (
	"context"

	"github.com/appdotbuilder/influencer-sponsor-connect/internal/model"
	"github.com/appdotbuilder/influencer-sponsor-connect/internal/queue"
	"github.com/appdotbuilder/influencer-sponsor-connect/internal/repository"
)

type PerformanceIndicatorsService struct {
	IndicatorsRepo repository.PerformanceIndicatorsRepositoryInterface
	InfluencerRepo repository.InfluencerRepositoryInterface
	Queue          queue.Queue
}

func (s *PerformanceIndicatorsService) Create(ctx context.Context, in model.CreatePerformanceIndicatorsInput) (*model.PerformanceIndicators, error) {
	if err := requireInfluencer(ctx, s.InfluencerRepo, in.InfluencerID); err != nil {
		return nil, err
	}
	p, err := s.IndicatorsRepo.Create(ctx, in)
	if err != nil {
		return nil, logFailure(ctx, "failed to create performance indicators", err)
	}
	publish(ctx, s.Queue, "performance_indicators", "created", p.ID)
	return p, nil
}

// Get returns nil without error when the row does not exist.
func (s *PerformanceIndicatorsService) Get(ctx context.Context, id int) (*model.PerformanceIndicators, error) {
	p, err := s.IndicatorsRepo.GetByID(ctx, id)
	if err != nil {
		return nil, logFailure(ctx, "failed to fetch performance indicators", err)
	}
	return p, nil
}

func (s *PerformanceIndicatorsService) ListByInfluencer(ctx context.Context, influencerID int) ([]*model.PerformanceIndicators, error) {
	list, err := s.IndicatorsRepo.ListByInfluencer(ctx, influencerID)
	if err != nil {
		return nil, logFailure(ctx, "failed to list performance indicators", err)
	}
	return list, nil
}

// Update always refreshes last_updated, even when only the id is supplied.
func (s *PerformanceIndicatorsService) Update(ctx context.Context, in model.UpdatePerformanceIndicatorsInput) (*model.PerformanceIndicators, error) {
	p, err := s.IndicatorsRepo.Update(ctx, in)
	if err != nil {
		return nil, logFailure(ctx, "failed to update performance indicators", err)
	}
	publish(ctx, s.Queue, "performance_indicators", "updated", p.ID)
	return p, nil
}
