// internal/service/campaign_service.go
package service

import (
	"context"

	appErrors "github.com/appdotbuilder/influencer-sponsor-connect/internal/errors"
	"github.com/appdotbuilder/influencer-sponsor-connect/internal/logger"
	"github.com/appdotbuilder/influencer-sponsor-connect/internal/model"
	"github.com/appdotbuilder/influencer-sponsor-connect/internal/queue"
	"github.com/appdotbuilder/influencer-sponsor-connect/internal/repository"
)

type CampaignService struct {
	CampaignRepo repository.CampaignRepositoryInterface
	SponsorRepo  repository.SponsorRepositoryInterface
	ProductRepo  repository.ProductRepositoryInterface
	Queue        queue.Queue
}

// CreateCampaign checks the sponsor, then the product, then that the product
// belongs to the sponsor. The database does not enforce the last rule.
func (s *CampaignService) CreateCampaign(ctx context.Context, in model.CreateCampaignInput) (*model.Campaign, error) {
	sponsor, err := s.SponsorRepo.GetByID(ctx, in.SponsorID)
	if err != nil {
		return nil, logFailure(ctx, "failed to fetch sponsor", err)
	}
	if sponsor == nil {
		return nil, appErrors.NewSponsorNotFound(in.SponsorID)
	}

	product, err := s.ProductRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, logFailure(ctx, "failed to fetch product", err)
	}
	if product == nil {
		return nil, appErrors.NewProductNotFound(in.ProductID)
	}
	if product.SponsorID != in.SponsorID {
		logger.FromContext(ctx).Warn("product owned by another sponsor",
			"product_id", product.ID, "owner_id", product.SponsorID, "sponsor_id", in.SponsorID)
		return nil, appErrors.NewProductNotOwned(in.ProductID, in.SponsorID)
	}

	c, err := s.CampaignRepo.Create(ctx, in)
	if err != nil {
		return nil, logFailure(ctx, "failed to create campaign", err)
	}
	publish(ctx, s.Queue, "campaign", "created", c.ID)
	return c, nil
}

// GetCampaign fetches a campaign by ID
func (s *CampaignService) GetCampaign(ctx context.Context, id int) (*model.Campaign, error) {
	c, err := s.CampaignRepo.GetByID(ctx, id)
	if err != nil {
		return nil, logFailure(ctx, "failed to fetch campaign", err)
	}
	return c, nil
}

func (s *CampaignService) ListCampaigns(ctx context.Context) ([]*model.Campaign, error) {
	list, err := s.CampaignRepo.List(ctx)
	if err != nil {
		return nil, logFailure(ctx, "failed to list campaigns", err)
	}
	return list, nil
}

func (s *CampaignService) ListBySponsor(ctx context.Context, sponsorID int) ([]*model.Campaign, error) {
	list, err := s.CampaignRepo.ListBySponsor(ctx, sponsorID)
	if err != nil {
		return nil, logFailure(ctx, "failed to list sponsor campaigns", err)
	}
	return list, nil
}

// UpdateCampaign does not revalidate sponsor/product ownership; those columns are immutable.
func (s *CampaignService) UpdateCampaign(ctx context.Context, in model.UpdateCampaignInput) (*model.Campaign, error) {
	c, err := s.CampaignRepo.Update(ctx, in)
	if err != nil {
		return nil, logFailure(ctx, "failed to update campaign", err)
	}
	publish(ctx, s.Queue, "campaign", "updated", c.ID)
	return c, nil
}

func (s *CampaignService) SearchCampaigns(ctx context.Context, in model.SearchCampaignsInput) ([]*model.Campaign, error) {
	in.Limit, in.Offset = pageDefaults(in.Limit, in.Offset)
	list, err := s.CampaignRepo.Search(ctx, in)
	if err != nil {
		return nil, logFailure(ctx, "failed to search campaigns", err)
	}
	return list, nil
}
