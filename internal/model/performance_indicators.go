// internal/model/performance_indicators.go
package model

import "time"

// PerformanceIndicators holds one platform's audience metrics for an influencer.
type PerformanceIndicators struct {
	ID                int       `db:"id" json:"id"`
	InfluencerID      int       `db:"influencer_id" json:"influencer_id"`
	Platform          Platform  `db:"platform" json:"platform"`
	FollowersCount    int64     `db:"followers_count" json:"followers_count"`
	AvgViews          *int64    `db:"avg_views" json:"avg_views"`
	AvgEngagementRate *float64  `db:"avg_engagement_rate" json:"avg_engagement_rate"`
	TotalPosts        *int64    `db:"total_posts" json:"total_posts"`
	LastUpdated       time.Time `db:"last_updated" json:"last_updated"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
}

type CreatePerformanceIndicatorsInput struct {
	InfluencerID      int      `json:"influencer_id" validate:"required,gt=0"`
	Platform          Platform `json:"platform" validate:"required,oneof=instagram youtube tiktok twitter linkedin facebook other"`
	FollowersCount    int64    `json:"followers_count" validate:"gte=0"`
	AvgViews          *int64   `json:"avg_views" validate:"omitempty,gte=0"`
	AvgEngagementRate *float64 `json:"avg_engagement_rate" validate:"omitempty,gte=0,lte=100"`
	TotalPosts        *int64   `json:"total_posts" validate:"omitempty,gte=0"`
}

type UpdatePerformanceIndicatorsInput struct {
	ID                int               `json:"id" validate:"required,gt=0"`
	FollowersCount    *int64            `json:"followers_count" validate:"omitempty,gte=0"`
	AvgViews          Nullable[int64]   `json:"avg_views" validate:"omitempty,gte=0"`
	AvgEngagementRate Nullable[float64] `json:"avg_engagement_rate" validate:"omitempty,gte=0,lte=100"`
	TotalPosts        Nullable[int64]   `json:"total_posts" validate:"omitempty,gte=0"`
}
