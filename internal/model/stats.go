package model

import "time"

// DashboardStats is recomputed from scratch on every refresh.
type DashboardStats struct {
	Influencers       int                    `json:"influencers"`
	Sponsors          int                    `json:"sponsors"`
	Products          int                    `json:"products"`
	Campaigns         int                    `json:"campaigns"`
	CampaignsByStatus map[CampaignStatus]int `json:"campaigns_by_status"`
	ActiveBudget      float64                `json:"active_budget"`
	SocialAccounts    int                    `json:"social_accounts"`
	RefreshedAt       time.Time              `json:"refreshed_at"`
}
