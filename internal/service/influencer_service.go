// internal/service/influencer_service.go
package service

import (
	"context"

	appErrors "github.com/appdotbuilder/influencer-sponsor-connect/internal/errors"
	"github.com/appdotbuilder/influencer-sponsor-connect/internal/model"
	"github.com/appdotbuilder/influencer-sponsor-connect/internal/queue"
	"github.com/appdotbuilder/influencer-sponsor-connect/internal/repository"
)

type InfluencerService struct {
	InfluencerRepo repository.InfluencerRepositoryInterface
	Queue          queue.Queue
}

func (s *InfluencerService) Create(ctx context.Context, in model.CreateInfluencerInput) (*model.Influencer, error) {
	i, err := s.InfluencerRepo.Create(ctx, in)
	if err != nil {
		return nil, logFailure(ctx, "failed to create influencer", err)
	}
	publish(ctx, s.Queue, "influencer", "created", i.ID)
	return i, nil
}

// Get returns nil without error when the influencer does not exist.
func (s *InfluencerService) Get(ctx context.Context, id int) (*model.Influencer, error) {
	i, err := s.InfluencerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, logFailure(ctx, "failed to fetch influencer", err)
	}
	return i, nil
}

func (s *InfluencerService) List(ctx context.Context) ([]*model.Influencer, error) {
	list, err := s.InfluencerRepo.List(ctx)
	if err != nil {
		return nil, logFailure(ctx, "failed to list influencers", err)
	}
	return list, nil
}

func (s *InfluencerService) Update(ctx context.Context, in model.UpdateInfluencerInput) (*model.Influencer, error) {
	i, err := s.InfluencerRepo.Update(ctx, in)
	if err != nil {
		return nil, logFailure(ctx, "failed to update influencer", err)
	}
	publish(ctx, s.Queue, "influencer", "updated", i.ID)
	return i, nil
}

// Search returns influencers matching every supplied filter, in id order.
func (s *InfluencerService) Search(ctx context.Context, in model.SearchInfluencersInput) ([]*model.Influencer, error) {
	in.Limit, in.Offset = pageDefaults(in.Limit, in.Offset)
	list, err := s.InfluencerRepo.Search(ctx, in)
	if err != nil {
		return nil, logFailure(ctx, "failed to search influencers", err)
	}
	return list, nil
}

// requireInfluencer is shared by the services owning influencer child rows.
func requireInfluencer(ctx context.Context, repo repository.InfluencerRepositoryInterface, id int) error {
	ok, err := repo.Exists(ctx, id)
	if err != nil {
		return logFailure(ctx, "failed to check influencer", err)
	}
	if !ok {
		return appErrors.NewInfluencerNotFound(id)
	}
	return nil
}
