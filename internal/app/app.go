// internal/app/app.go
package app

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/appdotbuilder/influencer-sponsor-connect/internal/cache"
	"github.com/appdotbuilder/influencer-sponsor-connect/internal/config"
	"github.com/appdotbuilder/influencer-sponsor-connect/internal/controller"
	"github.com/appdotbuilder/influencer-sponsor-connect/internal/queue"
	"github.com/appdotbuilder/influencer-sponsor-connect/internal/repository"
	"github.com/appdotbuilder/influencer-sponsor-connect/internal/service"
)

// NewStatsService is built before the queue, which refreshes it on events.
func NewStatsService(conn *sql.DB, statsCache cache.StatsCache) *service.StatsService {
	return &service.StatsService{
		StatsRepo: &repository.StatsRepository{DB: conn},
		Cache:     statsCache,
	}
}

// NewServices builds every repository and service on one connection pool.
func NewServices(conn *sql.DB, q queue.Queue, stats *service.StatsService) controller.Services {
	influencerRepo := &repository.InfluencerRepository{DB: conn}
	sponsorRepo := &repository.SponsorRepository{DB: conn}
	productRepo := &repository.ProductRepository{DB: conn}

	return controller.Services{
		Influencers: &service.InfluencerService{InfluencerRepo: influencerRepo, Queue: q},
		Sponsors:    &service.SponsorService{SponsorRepo: sponsorRepo, Queue: q},
		Products:    &service.ProductService{ProductRepo: productRepo, SponsorRepo: sponsorRepo, Queue: q},
		Campaigns: &service.CampaignService{
			CampaignRepo: &repository.CampaignRepository{DB: conn},
			SponsorRepo:  sponsorRepo,
			ProductRepo:  productRepo,
			Queue:        q,
		},
		Accounts: &service.SocialMediaAccountService{
			AccountRepo:    &repository.SocialMediaAccountRepository{DB: conn},
			InfluencerRepo: influencerRepo,
			Queue:          q,
		},
		Indicators: &service.PerformanceIndicatorsService{
			IndicatorsRepo: &repository.PerformanceIndicatorsRepository{DB: conn},
			InfluencerRepo: influencerRepo,
			Queue:          q,
		},
		Stats: stats,
	}
}

// OpenStatsCache uses Redis when REDIS_ADDR is set, memory otherwise.
func OpenStatsCache(ctx context.Context, cfg config.RedisConfig) (cache.StatsCache, func(), error) {
	if cfg.Addr == "" {
		slog.Info("REDIS_ADDR not set, caching dashboard stats in memory")
		return cache.NewMemoryStatsCache(), func() {}, nil
	}
	client, err := cache.NewRedisClient(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return cache.NewRedisStatsCache(client), func() { client.Close() }, nil
}

// OpenQueue returns the AMQP queue when AMQP_URL is set. Without a broker the
// in-memory queue refreshes stats in process.
func OpenQueue(cfg config.EventsConfig, stats queue.StatsRefresher) (queue.Queue, func(), error) {
	if cfg.AMQPURL == "" {
		q := queue.NewInMemoryQueue()
		if err := queue.StartStatsRefreshSubscriber(q, stats); err != nil {
			return nil, nil, err
		}
		slog.Info("AMQP_URL not set, using in-memory event queue")
		return q, func() {}, nil
	}

	q, err := queue.NewAMQPQueue(cfg.AMQPURL, cfg.Queue)
	if err != nil {
		return nil, nil, err
	}
	slog.Info("publishing events to RabbitMQ", "queue", cfg.Queue)
	return q, func() { q.Close() }, nil
}
