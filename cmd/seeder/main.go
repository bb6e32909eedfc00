//cmd/seeder/main.go
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/appdotbuilder/influencer-sponsor-connect/internal/app"
	"github.com/appdotbuilder/influencer-sponsor-connect/internal/config"
	"github.com/appdotbuilder/influencer-sponsor-connect/internal/controller"
	"github.com/appdotbuilder/influencer-sponsor-connect/internal/db"
	"github.com/appdotbuilder/influencer-sponsor-connect/internal/logger"
	"github.com/appdotbuilder/influencer-sponsor-connect/internal/model"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		fail(err)
	}
	logger.Init(logger.Config{Level: cfg.Log.Level, Format: "text", Service: "seeder"})

	conn, err := db.Open(ctx, cfg.DB)
	if err != nil {
		fail(err)
	}
	defer conn.Close()
	if err := db.EnsureSchema(ctx, conn); err != nil {
		fail(err)
	}

	statsCache, closeCache, err := app.OpenStatsCache(ctx, cfg.Redis)
	if err != nil {
		fail(err)
	}
	defer closeCache()

	stats := app.NewStatsService(conn, statsCache)
	svcs := app.NewServices(conn, nil, stats)
	if err := seed(ctx, svcs); err != nil {
		fail(err)
	}

	snapshot, err := stats.Refresh(ctx)
	if err != nil {
		fail(err)
	}
	fmt.Printf("Database seeding completed successfully! %d influencers, %d sponsors, %d campaigns\n",
		snapshot.Influencers, snapshot.Sponsors, snapshot.Campaigns)
}

func fail(err error) {
	slog.Error("seeding failed", "err", err)
	os.Exit(1)
}

func ptr[T any](v T) *T { return &v }

// seed inserts a small marketplace through the services so every referential
// check runs. Emails are unique, so seeding twice fails on the first sponsor.
func seed(ctx context.Context, s controller.Services) error {
	acme, err := s.Sponsors.Create(ctx, model.CreateSponsorInput{
		CompanyName:  "Acme Outdoor",
		ContactEmail: "partnerships@acme-outdoor.example",
		Industry:     "outdoor",
		Description:  ptr("Camping and hiking gear."),
	})
	if err != nil {
		return err
	}
	glow, err := s.Sponsors.Create(ctx, model.CreateSponsorInput{
		CompanyName:  "Glow Labs",
		ContactEmail: "hello@glowlabs.example",
		ContactPhone: ptr("+1-555-0100"),
		Industry:     "beauty",
	})
	if err != nil {
		return err
	}

	tent, err := s.Products.Create(ctx, model.CreateProductInput{
		SponsorID: acme.ID, Name: "Ultralight Tent", Category: "outdoor",
		TargetAudience: ptr("backpackers"),
	})
	if err != nil {
		return err
	}
	serum, err := s.Products.Create(ctx, model.CreateProductInput{
		SponsorID: glow.ID, Name: "Vitamin C Serum", Category: "beauty",
	})
	if err != nil {
		return err
	}

	active := model.CampaignActive
	campaigns := []model.CreateCampaignInput{
		{SponsorID: acme.ID, ProductID: tent.ID, Title: "Summer Trails", Budget: 5000, Status: &active, Objectives: ptr("Reach 1M hikers")},
		{SponsorID: glow.ID, ProductID: serum.ID, Title: "Glow Up Week", Budget: 1250.50},
	}
	for _, in := range campaigns {
		if _, err := s.Campaigns.CreateCampaign(ctx, in); err != nil {
			return err
		}
	}

	influencers := []struct {
		in       model.CreateInfluencerInput
		platform model.Platform
		handle   string
		follows  int64
		rate     float64
	}{
		{model.CreateInfluencerInput{Name: "Maya Trails", Email: "maya@trails.example", Bio: ptr("Thru-hiker and outdoor photographer")}, model.PlatformInstagram, "mayatrails", 120000, 4.2},
		{model.CreateInfluencerInput{Name: "Leo Skin", Email: "leo@skin.example", PortfolioDescription: ptr("Beauty and skincare reviews")}, model.PlatformTikTok, "leoskin", 45000, 7.8},
		{model.CreateInfluencerInput{Name: "Sam Codes", Email: "sam@codes.example"}, model.PlatformYouTube, "samcodes", 8000, 2.1},
	}
	for _, inf := range influencers {
		i, err := s.Influencers.Create(ctx, inf.in)
		if err != nil {
			return err
		}
		if _, err := s.Accounts.Create(ctx, model.CreateSocialMediaAccountInput{
			InfluencerID:  i.ID,
			Platform:      inf.platform,
			Username:      inf.handle,
			URL:           fmt.Sprintf("https://%s.com/%s", inf.platform, inf.handle),
			FollowerCount: ptr(inf.follows),
		}); err != nil {
			return err
		}
		if _, err := s.Indicators.Create(ctx, model.CreatePerformanceIndicatorsInput{
			InfluencerID:      i.ID,
			Platform:          inf.platform,
			FollowersCount:    inf.follows,
			AvgEngagementRate: ptr(inf.rate),
		}); err != nil {
			return err
		}
	}
	return nil
}
