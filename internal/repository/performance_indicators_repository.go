package repository

import (
	"context"
	"database/sql"
	"errors"

	appErrors "github.com/appdotbuilder/influencer-sponsor-connect/internal/errors"
	"github.com/appdotbuilder/influencer-sponsor-connect/internal/model"
)

const performanceIndicatorsColumns = "id, influencer_id, platform, followers_count, avg_views, avg_engagement_rate, total_posts, last_updated, created_at"

type PerformanceIndicatorsRepositoryInterface interface {
	Create(ctx context.Context, in model.CreatePerformanceIndicatorsInput) (*model.PerformanceIndicators, error)
	GetByID(ctx context.Context, id int) (*model.PerformanceIndicators, error)
	ListByInfluencer(ctx context.Context, influencerID int) ([]*model.PerformanceIndicators, error)
	Update(ctx context.Context, in model.UpdatePerformanceIndicatorsInput) (*model.PerformanceIndicators, error)
}

type PerformanceIndicatorsRepository struct {
	DB *sql.DB
}

func scanPerformanceIndicators(row rowScanner) (*model.PerformanceIndicators, error) {
	var (
		p          model.PerformanceIndicators
		engagement sql.NullString
	)
	err := row.Scan(&p.ID, &p.InfluencerID, &p.Platform, &p.FollowersCount, &p.AvgViews, &engagement, &p.TotalPosts, &p.LastUpdated, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	if p.AvgEngagementRate, err = parseNullDecimal(engagement); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PerformanceIndicatorsRepository) Create(ctx context.Context, in model.CreatePerformanceIndicatorsInput) (*model.PerformanceIndicators, error) {
	query := `
        INSERT INTO performance_indicators (influencer_id, platform, followers_count, avg_views, avg_engagement_rate, total_posts)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING ` + performanceIndicatorsColumns
	return scanPerformanceIndicators(r.DB.QueryRowContext(ctx, query,
		in.InfluencerID, string(in.Platform), in.FollowersCount, in.AvgViews, decimalArg(in.AvgEngagementRate), in.TotalPosts,
	))
}

func (r *PerformanceIndicatorsRepository) GetByID(ctx context.Context, id int) (*model.PerformanceIndicators, error) {
	query := `SELECT ` + performanceIndicatorsColumns + ` FROM performance_indicators WHERE id=$1`
	p, err := scanPerformanceIndicators(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return p, err
}

func (r *PerformanceIndicatorsRepository) ListByInfluencer(ctx context.Context, influencerID int) ([]*model.PerformanceIndicators, error) {
	query := `SELECT ` + performanceIndicatorsColumns + ` FROM performance_indicators WHERE influencer_id=$1 ORDER BY id`
	rows, err := r.DB.QueryContext(ctx, query, influencerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	indicators := []*model.PerformanceIndicators{}
	for rows.Next() {
		p, err := scanPerformanceIndicators(rows)
		if err != nil {
			return nil, err
		}
		indicators = append(indicators, p)
	}
	return indicators, rows.Err()
}

// Update refreshes last_updated on every call.
func (r *PerformanceIndicatorsRepository) Update(ctx context.Context, in model.UpdatePerformanceIndicatorsInput) (*model.PerformanceIndicators, error) {
	u := newUpdate("performance_indicators")
	if in.FollowersCount != nil {
		u.set("followers_count", *in.FollowersCount)
	}
	if in.AvgViews.Set {
		u.set("avg_views", in.AvgViews.Ptr())
	}
	if in.AvgEngagementRate.Set {
		u.set("avg_engagement_rate", nullableDecimalArg(in.AvgEngagementRate))
	}
	if in.TotalPosts.Set {
		u.set("total_posts", in.TotalPosts.Ptr())
	}
	u.touch("last_updated")

	query, args := u.build(in.ID, performanceIndicatorsColumns)
	p, err := scanPerformanceIndicators(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.NewPerformanceIndicatorsNotFound(in.ID)
	}
	return p, err
}

var _ PerformanceIndicatorsRepositoryInterface = (*PerformanceIndicatorsRepository)(nil)
