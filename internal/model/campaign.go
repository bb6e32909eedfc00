// internal/model/campaign.go
package model

import "time"

type Campaign struct {
	ID             int            `db:"id" json:"id"`
	SponsorID      int            `db:"sponsor_id" json:"sponsor_id"`
	ProductID      int            `db:"product_id" json:"product_id"`
	Title          string         `db:"title" json:"title"`
	Description    *string        `db:"description" json:"description"`
	Budget         float64        `db:"budget" json:"budget"`
	TargetAudience *string        `db:"target_audience" json:"target_audience"`
	Objectives     *string        `db:"objectives" json:"objectives"`
	Status         CampaignStatus `db:"status" json:"status"`
	StartDate      *time.Time     `db:"start_date" json:"start_date"`
	EndDate        *time.Time     `db:"end_date" json:"end_date"`
	CreatedAt      time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at" json:"updated_at"`
}

// Budget bounds match NUMERIC(12,2): the smallest positive amount and the column maximum.
type CreateCampaignInput struct {
	SponsorID      int             `json:"sponsor_id" validate:"required,gt=0"`
	ProductID      int             `json:"product_id" validate:"required,gt=0"`
	Title          string          `json:"title" validate:"required,min=1"`
	Description    *string         `json:"description"`
	Budget         float64         `json:"budget" validate:"required,gte=0.01,lte=9999999999.99"`
	TargetAudience *string         `json:"target_audience"`
	Objectives     *string         `json:"objectives"`
	Status         *CampaignStatus `json:"status" validate:"omitempty,oneof=draft active paused completed cancelled"`
	StartDate      *time.Time      `json:"start_date"`
	EndDate        *time.Time      `json:"end_date"`
}

type UpdateCampaignInput struct {
	ID             int                 `json:"id" validate:"required,gt=0"`
	Title          *string             `json:"title" validate:"omitempty,min=1"`
	Description    Nullable[string]    `json:"description"`
	Budget         *float64            `json:"budget" validate:"omitempty,gte=0.01,lte=9999999999.99"`
	TargetAudience Nullable[string]    `json:"target_audience"`
	Objectives     Nullable[string]    `json:"objectives"`
	Status         *CampaignStatus     `json:"status" validate:"omitempty,oneof=draft active paused completed cancelled"`
	StartDate      Nullable[time.Time] `json:"start_date"`
	EndDate        Nullable[time.Time] `json:"end_date"`
}

type SearchCampaignsInput struct {
	Category  *string         `json:"category" validate:"omitempty,min=1"`
	MinBudget *float64        `json:"min_budget" validate:"omitempty,gte=0,lte=9999999999.99"`
	MaxBudget *float64        `json:"max_budget" validate:"omitempty,gte=0,lte=9999999999.99"`
	Status    *CampaignStatus `json:"status" validate:"omitempty,oneof=draft active paused completed cancelled"`
	SponsorID *int            `json:"sponsor_id" validate:"omitempty,gt=0"`
	Limit     int             `json:"limit" validate:"omitempty,gte=1,lte=100"`
	Offset    int             `json:"offset" validate:"omitempty,gte=0"`
}
