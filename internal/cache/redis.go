package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/appdotbuilder/influencer-sponsor-connect/internal/config"
	"github.com/appdotbuilder/influencer-sponsor-connect/internal/model"
)

const DashboardStatsKey = "marketplace:dashboard_stats"

// RedisStatsCache shares the snapshot between the server and the event worker.
type RedisStatsCache struct {
	Client *redis.Client
	Key    string
}

// NewRedisClient creates a client and pings it.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("unable to connect to redis: %w", err)
	}
	return rdb, nil
}

func NewRedisStatsCache(client *redis.Client) *RedisStatsCache {
	return &RedisStatsCache{Client: client, Key: DashboardStatsKey}
}

func (c *RedisStatsCache) Load(ctx context.Context) (*model.DashboardStats, error) {
	raw, err := c.Client.Get(ctx, c.Key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var stats model.DashboardStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, fmt.Errorf("decode cached stats: %w", err)
	}
	return &stats, nil
}

const storeRetries = 3

// Store writes without expiry; snapshots are replaced on refresh, never
// evicted. The key is watched so a slower, older refresh from another process
// cannot overwrite a newer snapshot.
func (c *RedisStatsCache) Store(ctx context.Context, stats *model.DashboardStats) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	txf := func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, c.Key).Bytes()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if err == nil {
			var cur model.DashboardStats
			if json.Unmarshal(current, &cur) == nil && older(stats, &cur) {
				return nil
			}
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, c.Key, raw, 0)
			return nil
		})
		return err
	}

	for i := 0; i < storeRetries; i++ {
		err = c.Client.Watch(ctx, txf, c.Key)
		if !errors.Is(err, redis.TxFailedErr) {
			return err
		}
	}
	return err
}

var _ StatsCache = (*RedisStatsCache)(nil)
