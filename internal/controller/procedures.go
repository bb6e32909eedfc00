// internal/controller/procedures.go
package controller

import (
	"context"
	"time"

	"github.com/appdotbuilder/influencer-sponsor-connect/internal/model"
	"github.com/appdotbuilder/influencer-sponsor-connect/internal/service"
)

type Services struct {
	Influencers *service.InfluencerService
	Sponsors    *service.SponsorService
	Products    *service.ProductService
	Campaigns   *service.CampaignService
	Accounts    *service.SocialMediaAccountService
	Indicators  *service.PerformanceIndicatorsService
	Stats       *service.StatsService
}

type HealthStatus struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

func healthcheck(ctx context.Context) (HealthStatus, error) {
	return HealthStatus{Status: "ok", Timestamp: time.Now().UTC()}, nil
}

// NewMarketplaceRPC registers every marketplace procedure.
func NewMarketplaceRPC(s Services) *RPC {
	rpc := NewRPC()
	rpc.Query("healthcheck", bindNoInput(healthcheck))

	// Influencers
	rpc.Mutation("createInfluencer", bind(s.Influencers.Create))
	rpc.Query("getInfluencer", bind(func(ctx context.Context, in model.IDInput) (*model.Influencer, error) {
		return s.Influencers.Get(ctx, in.ID)
	}))
	rpc.Query("getInfluencers", bindNoInput(s.Influencers.List))
	rpc.Mutation("updateInfluencer", bind(s.Influencers.Update))
	rpc.Query("searchInfluencers", bind(s.Influencers.Search))

	// Sponsors
	rpc.Mutation("createSponsor", bind(s.Sponsors.Create))
	rpc.Query("getSponsor", bind(func(ctx context.Context, in model.IDInput) (*model.Sponsor, error) {
		return s.Sponsors.Get(ctx, in.ID)
	}))
	rpc.Query("getSponsors", bindNoInput(s.Sponsors.List))
	rpc.Mutation("updateSponsor", bind(s.Sponsors.Update))

	// Products
	rpc.Mutation("createProduct", bind(s.Products.Create))
	rpc.Query("getProduct", bind(func(ctx context.Context, in model.IDInput) (*model.Product, error) {
		return s.Products.Get(ctx, in.ID)
	}))
	rpc.Query("getProducts", bindNoInput(s.Products.List))
	rpc.Query("getProductsBySponsor", bind(func(ctx context.Context, in model.SponsorIDInput) ([]*model.Product, error) {
		return s.Products.ListBySponsor(ctx, in.SponsorID)
	}))
	rpc.Mutation("updateProduct", bind(s.Products.Update))

	// Campaigns
	rpc.Mutation("createCampaign", bind(s.Campaigns.CreateCampaign))
	rpc.Query("getCampaign", bind(func(ctx context.Context, in model.IDInput) (*model.Campaign, error) {
		return s.Campaigns.GetCampaign(ctx, in.ID)
	}))
	rpc.Query("getCampaigns", bindNoInput(s.Campaigns.ListCampaigns))
	rpc.Query("getCampaignsBySponsor", bind(func(ctx context.Context, in model.SponsorIDInput) ([]*model.Campaign, error) {
		return s.Campaigns.ListBySponsor(ctx, in.SponsorID)
	}))
	rpc.Mutation("updateCampaign", bind(s.Campaigns.UpdateCampaign))
	rpc.Query("searchCampaigns", bind(s.Campaigns.SearchCampaigns))

	// Influencer profile rows
	rpc.Mutation("createSocialMediaAccount", bind(s.Accounts.Create))
	rpc.Query("getSocialMediaAccounts", bind(func(ctx context.Context, in model.InfluencerIDInput) ([]*model.SocialMediaAccount, error) {
		return s.Accounts.ListByInfluencer(ctx, in.InfluencerID)
	}))
	rpc.Mutation("updateSocialMediaAccount", bind(s.Accounts.Update))

	rpc.Mutation("createPerformanceIndicators", bind(s.Indicators.Create))
	rpc.Query("getPerformanceIndicator", bind(func(ctx context.Context, in model.IDInput) (*model.PerformanceIndicators, error) {
		return s.Indicators.Get(ctx, in.ID)
	}))
	rpc.Query("getPerformanceIndicators", bind(func(ctx context.Context, in model.InfluencerIDInput) ([]*model.PerformanceIndicators, error) {
		return s.Indicators.ListByInfluencer(ctx, in.InfluencerID)
	}))
	rpc.Mutation("updatePerformanceIndicators", bind(s.Indicators.Update))

	// Dashboard
	rpc.Query("getDashboardStats", bindNoInput(s.Stats.Get))
	rpc.Mutation("refreshDashboardStats", bindNoInput(s.Stats.Refresh))

	return rpc
}
