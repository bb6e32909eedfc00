package repository

import (
	"context"
	"database/sql"
	"errors"

	appErrors "github.com/appdotbuilder/influencer-sponsor-connect/internal/errors"
	"github.com/appdotbuilder/influencer-sponsor-connect/internal/model"
)

const campaignColumns = "id, sponsor_id, product_id, title, description, budget, target_audience, objectives, status, start_date, end_date, created_at, updated_at"

type CampaignRepositoryInterface interface {
	// Campaign CRUD
	Create(ctx context.Context, in model.CreateCampaignInput) (*model.Campaign, error)
	GetByID(ctx context.Context, id int) (*model.Campaign, error)
	List(ctx context.Context) ([]*model.Campaign, error)
	ListBySponsor(ctx context.Context, sponsorID int) ([]*model.Campaign, error)
	Update(ctx context.Context, in model.UpdateCampaignInput) (*model.Campaign, error)

	// Discovery
	Search(ctx context.Context, in model.SearchCampaignsInput) ([]*model.Campaign, error)
}

type CampaignRepository struct {
	DB *sql.DB
}

// ====================== Campaign CRUD ======================

func scanCampaign(row rowScanner) (*model.Campaign, error) {
	var (
		c      model.Campaign
		budget string
	)
	err := row.Scan(
		&c.ID, &c.SponsorID, &c.ProductID, &c.Title, &c.Description, &budget,
		&c.TargetAudience, &c.Objectives, &c.Status, &c.StartDate, &c.EndDate,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if c.Budget, err = parseDecimal(budget); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CampaignRepository) Create(ctx context.Context, in model.CreateCampaignInput) (*model.Campaign, error) {
	status := model.CampaignDraft
	if in.Status != nil {
		status = *in.Status
	}
	query := `
        INSERT INTO campaigns (sponsor_id, product_id, title, description, budget, target_audience, objectives, status, start_date, end_date)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING ` + campaignColumns
	return scanCampaign(r.DB.QueryRowContext(ctx, query,
		in.SponsorID, in.ProductID, in.Title, in.Description, formatDecimal(in.Budget),
		in.TargetAudience, in.Objectives, string(status), in.StartDate, in.EndDate,
	))
}

func (r *CampaignRepository) GetByID(ctx context.Context, id int) (*model.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE id=$1`
	c, err := scanCampaign(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return c, err
}

func (r *CampaignRepository) List(ctx context.Context) ([]*model.Campaign, error) {
	return r.query(ctx, `SELECT `+campaignColumns+` FROM campaigns ORDER BY id`)
}

func (r *CampaignRepository) ListBySponsor(ctx context.Context, sponsorID int) ([]*model.Campaign, error) {
	return r.query(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE sponsor_id=$1 ORDER BY id`, sponsorID)
}

func (r *CampaignRepository) Update(ctx context.Context, in model.UpdateCampaignInput) (*model.Campaign, error) {
	u := newUpdate("campaigns")
	if in.Title != nil {
		u.set("title", *in.Title)
	}
	if in.Description.Set {
		u.set("description", in.Description.Ptr())
	}
	if in.Budget != nil {
		u.set("budget", formatDecimal(*in.Budget))
	}
	if in.TargetAudience.Set {
		u.set("target_audience", in.TargetAudience.Ptr())
	}
	if in.Objectives.Set {
		u.set("objectives", in.Objectives.Ptr())
	}
	if in.Status != nil {
		u.set("status", string(*in.Status))
	}
	if in.StartDate.Set {
		u.set("start_date", in.StartDate.Ptr())
	}
	if in.EndDate.Set {
		u.set("end_date", in.EndDate.Ptr())
	}
	u.touch("updated_at")

	query, args := u.build(in.ID, campaignColumns)
	c, err := scanCampaign(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.NewCampaignNotFound(in.ID)
	}
	return c, err
}

// ====================== Discovery ======================

func (r *CampaignRepository) Search(ctx context.Context, in model.SearchCampaignsInput) ([]*model.Campaign, error) {
	query, args := campaignSearchQuery(in).build()
	return r.query(ctx, query, args...)
}

// campaignSearchQuery joins products only for the category filter.
func campaignSearchQuery(in model.SearchCampaignsInput) *searchQuery {
	q := newSearchQuery(qualify("c", campaignColumns), "campaigns c").
		join(joinProduct, "INNER JOIN products p ON p.id = c.product_id", false)
	q.orderBy = "c.id"

	if in.Category != nil {
		q.where("p.category = ?", joinProduct, *in.Category)
	}
	if in.MinBudget != nil {
		q.where("c.budget >= ?", 0, formatDecimal(*in.MinBudget))
	}
	if in.MaxBudget != nil {
		q.where("c.budget <= ?", 0, formatDecimal(*in.MaxBudget))
	}
	if in.Status != nil {
		q.where("c.status = ?", 0, string(*in.Status))
	}
	if in.SponsorID != nil {
		q.where("c.sponsor_id = ?", 0, *in.SponsorID)
	}

	return q.page(in.Limit, in.Offset)
}

func (r *CampaignRepository) query(ctx context.Context, query string, args ...any) ([]*model.Campaign, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	campaigns := []*model.Campaign{}
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, rows.Err()
}

var _ CampaignRepositoryInterface = (*CampaignRepository)(nil)
