package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/appdotbuilder/influencer-sponsor-connect/internal/model"
)

type StatsRepositoryInterface interface {
	Counts(ctx context.Context) (*model.DashboardStats, error)
}

type StatsRepository struct {
	DB *sql.DB
}

func (r *StatsRepository) Counts(ctx context.Context) (*model.DashboardStats, error) {
	// stamped before reading so a later refresh always carries a later time
	stats := &model.DashboardStats{
		CampaignsByStatus: map[model.CampaignStatus]int{},
		RefreshedAt:       time.Now().UTC(),
	}
	for _, s := range model.CampaignStatuses {
		stats.CampaignsByStatus[s] = 0
	}

	var activeBudget string
	err := r.DB.QueryRowContext(ctx, `
        SELECT
            (SELECT COUNT(*) FROM influencers),
            (SELECT COUNT(*) FROM sponsors),
            (SELECT COUNT(*) FROM products),
            (SELECT COUNT(*) FROM campaigns),
            (SELECT COUNT(*) FROM social_media_accounts),
            (SELECT COALESCE(SUM(budget), 0) FROM campaigns WHERE status = 'active')
    `).Scan(&stats.Influencers, &stats.Sponsors, &stats.Products, &stats.Campaigns, &stats.SocialAccounts, &activeBudget)
	if err != nil {
		return nil, err
	}
	if stats.ActiveBudget, err = parseDecimal(activeBudget); err != nil {
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, `SELECT status, COUNT(*) FROM campaigns GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			status model.CampaignStatus
			count  int
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		stats.CampaignsByStatus[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}

var _ StatsRepositoryInterface = (*StatsRepository)(nil)
