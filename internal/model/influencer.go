// internal/model/influencer.go
package model

import "time"

type Influencer struct {
	ID                   int       `db:"id" json:"id"`
	Name                 string    `db:"name" json:"name"`
	Email                string    `db:"email" json:"email"`
	Phone                *string   `db:"phone" json:"phone"`
	Bio                  *string   `db:"bio" json:"bio"`
	PortfolioDescription *string   `db:"portfolio_description" json:"portfolio_description"`
	CreatedAt            time.Time `db:"created_at" json:"created_at"`
	UpdatedAt            time.Time `db:"updated_at" json:"updated_at"`
}

type CreateInfluencerInput struct {
	Name                 string  `json:"name" validate:"required,min=1"`
	Email                string  `json:"email" validate:"required,email"`
	Phone                *string `json:"phone"`
	Bio                  *string `json:"bio"`
	PortfolioDescription *string `json:"portfolio_description"`
}

type UpdateInfluencerInput struct {
	ID                   int              `json:"id" validate:"required,gt=0"`
	Name                 *string          `json:"name" validate:"omitempty,min=1"`
	Email                *string          `json:"email" validate:"omitempty,email"`
	Phone                Nullable[string] `json:"phone"`
	Bio                  Nullable[string] `json:"bio"`
	PortfolioDescription Nullable[string] `json:"portfolio_description"`
}

// SearchInfluencersInput filters combine with AND. Zero Limit means the default page size.
type SearchInfluencersInput struct {
	Category          *string   `json:"category" validate:"omitempty,min=1"`
	MinFollowers      *int64    `json:"min_followers" validate:"omitempty,gte=0"`
	MaxFollowers      *int64    `json:"max_followers" validate:"omitempty,gte=0"`
	Platform          *Platform `json:"platform" validate:"omitempty,oneof=instagram youtube tiktok twitter linkedin facebook other"`
	MinEngagementRate *float64  `json:"min_engagement_rate" validate:"omitempty,gte=0,lte=100"`
	Limit             int       `json:"limit" validate:"omitempty,gte=1,lte=100"`
	Offset            int       `json:"offset" validate:"omitempty,gte=0"`
}
