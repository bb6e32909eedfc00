package service

import (
	"context"

	"github.com/appdotbuilder/influencer-sponsor-connect/internal/model"
	"github.com/appdotbuilder/influencer-sponsor-connect/internal/queue"
	"github.com/appdotbuilder/influencer-sponsor-connect/internal/repository"
)

type SocialMediaAccountService struct {
	AccountRepo    repository.SocialMediaAccountRepositoryInterface
	InfluencerRepo repository.InfluencerRepositoryInterface
	Queue          queue.Queue
}

func (s *SocialMediaAccountService) Create(ctx context.Context, in model.CreateSocialMediaAccountInput) (*model.SocialMediaAccount, error) {
	if err := requireInfluencer(ctx, s.InfluencerRepo, in.InfluencerID); err != nil {
		return nil, err
	}
	a, err := s.AccountRepo.Create(ctx, in)
	if err != nil {
		return nil, logFailure(ctx, "failed to create social media account", err)
	}
	publish(ctx, s.Queue, "social_media_account", "created", a.ID)
	return a, nil
}

func (s *SocialMediaAccountService) ListByInfluencer(ctx context.Context, influencerID int) ([]*model.SocialMediaAccount, error) {
	list, err := s.AccountRepo.ListByInfluencer(ctx, influencerID)
	if err != nil {
		return nil, logFailure(ctx, "failed to list social media accounts", err)
	}
	return list, nil
}

func (s *SocialMediaAccountService) Update(ctx context.Context, in model.UpdateSocialMediaAccountInput) (*model.SocialMediaAccount, error) {
	a, err := s.AccountRepo.Update(ctx, in)
	if err != nil {
		return nil, logFailure(ctx, "failed to update social media account", err)
	}
	publish(ctx, s.Queue, "social_media_account", "updated", a.ID)
	return a, nil
}
