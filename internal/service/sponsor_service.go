// internal/service/sponsor_service.go
package service

import (
	"context"

	"github.com/appdotbuilder/influencer-sponsor-connect/internal/model"
	"github.com/appdotbuilder/influencer-sponsor-connect/internal/queue"
	"github.com/appdotbuilder/influencer-sponsor-connect/internal/repository"
)

type SponsorService struct {
	SponsorRepo repository.SponsorRepositoryInterface
	Queue       queue.Queue
}

func (s *SponsorService) Create(ctx context.Context, in model.CreateSponsorInput) (*model.Sponsor, error) {
	sp, err := s.SponsorRepo.Create(ctx, in)
	if err != nil {
		return nil, logFailure(ctx, "failed to create sponsor", err)
	}
	publish(ctx, s.Queue, "sponsor", "created", sp.ID)
	return sp, nil
}

func (s *SponsorService) Get(ctx context.Context, id int) (*model.Sponsor, error) {
	sp, err := s.SponsorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, logFailure(ctx, "failed to fetch sponsor", err)
	}
	return sp, nil
}

func (s *SponsorService) List(ctx context.Context) ([]*model.Sponsor, error) {
	list, err := s.SponsorRepo.List(ctx)
	if err != nil {
		return nil, logFailure(ctx, "failed to list sponsors", err)
	}
	return list, nil
}

func (s *SponsorService) Update(ctx context.Context, in model.UpdateSponsorInput) (*model.Sponsor, error) {
	sp, err := s.SponsorRepo.Update(ctx, in)
	if err != nil {
		return nil, logFailure(ctx, "failed to update sponsor", err)
	}
	publish(ctx, s.Queue, "sponsor", "updated", sp.ID)
	return sp, nil
}
