// internal/model/social_media_account.go
package model

import "time"

type SocialMediaAccount struct {
	ID            int       `db:"id" json:"id"`
	InfluencerID  int       `db:"influencer_id" json:"influencer_id"`
	Platform      Platform  `db:"platform" json:"platform"`
	Username      string    `db:"username" json:"username"`
	URL           string    `db:"url" json:"url"`
	FollowerCount *int64    `db:"follower_count" json:"follower_count"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

type CreateSocialMediaAccountInput struct {
	InfluencerID  int      `json:"influencer_id" validate:"required,gt=0"`
	Platform      Platform `json:"platform" validate:"required,oneof=instagram youtube tiktok twitter linkedin facebook other"`
	Username      string   `json:"username" validate:"required,min=1"`
	URL           string   `json:"url" validate:"required,url"`
	FollowerCount *int64   `json:"follower_count" validate:"omitempty,gte=0"`
}

type UpdateSocialMediaAccountInput struct {
	ID            int             `json:"id" validate:"required,gt=0"`
	Platform      *Platform       `json:"platform" validate:"omitempty,oneof=instagram youtube tiktok twitter linkedin facebook other"`
	Username      *string         `json:"username" validate:"omitempty,min=1"`
	URL           *string         `json:"url" validate:"omitempty,url"`
	FollowerCount Nullable[int64] `json:"follower_count" validate:"omitempty,gte=0"`
}
