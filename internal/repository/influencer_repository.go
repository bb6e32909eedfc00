package repository

import (
	"context"
	"database/sql"
	"errors"

	appErrors "github.com/appdotbuilder/influencer-sponsor-connect/internal/errors"
	"github.com/appdotbuilder/influencer-sponsor-connect/internal/model"
)

const influencerColumns = "id, name, email, phone, bio, portfolio_description, created_at, updated_at"

type InfluencerRepositoryInterface interface {
	Create(ctx context.Context, in model.CreateInfluencerInput) (*model.Influencer, error)
	GetByID(ctx context.Context, id int) (*model.Influencer, error)
	List(ctx context.Context) ([]*model.Influencer, error)
	Update(ctx context.Context, in model.UpdateInfluencerInput) (*model.Influencer, error)
	Search(ctx context.Context, in model.SearchInfluencersInput) ([]*model.Influencer, error)
	Exists(ctx context.Context, id int) (bool, error)
}

type InfluencerRepository struct {
	DB *sql.DB
}

func scanInfluencer(row rowScanner) (*model.Influencer, error) {
	var i model.Influencer
	err := row.Scan(&i.ID, &i.Name, &i.Email, &i.Phone, &i.Bio, &i.PortfolioDescription, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *InfluencerRepository) Create(ctx context.Context, in model.CreateInfluencerInput) (*model.Influencer, error) {
	query := `
        INSERT INTO influencers (name, email, phone, bio, portfolio_description)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING ` + influencerColumns
	return scanInfluencer(r.DB.QueryRowContext(ctx, query, in.Name, in.Email, in.Phone, in.Bio, in.PortfolioDescription))
}

// GetByID returns nil, nil when no influencer has the id.
func (r *InfluencerRepository) GetByID(ctx context.Context, id int) (*model.Influencer, error) {
	query := `SELECT ` + influencerColumns + ` FROM influencers WHERE id=$1`
	i, err := scanInfluencer(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return i, err
}

func (r *InfluencerRepository) List(ctx context.Context) ([]*model.Influencer, error) {
	query := `SELECT ` + influencerColumns + ` FROM influencers ORDER BY id`
	return r.query(ctx, query)
}

func (r *InfluencerRepository) Update(ctx context.Context, in model.UpdateInfluencerInput) (*model.Influencer, error) {
	u := newUpdate("influencers")
	if in.Name != nil {
		u.set("name", *in.Name)
	}
	if in.Email != nil {
		u.set("email", *in.Email)
	}
	if in.Phone.Set {
		u.set("phone", in.Phone.Ptr())
	}
	if in.Bio.Set {
		u.set("bio", in.Bio.Ptr())
	}
	if in.PortfolioDescription.Set {
		u.set("portfolio_description", in.PortfolioDescription.Ptr())
	}
	u.touch("updated_at")

	query, args := u.build(in.ID, influencerColumns)
	i, err := scanInfluencer(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.NewInfluencerNotFound(in.ID)
	}
	return i, err
}

func (r *InfluencerRepository) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM influencers WHERE id=$1)`, id).Scan(&exists)
	return exists, err
}

// Search joins performance indicators for follower, engagement and category
// filters and social accounts for platform and category filters.
func (r *InfluencerRepository) Search(ctx context.Context, in model.SearchInfluencersInput) ([]*model.Influencer, error) {
	query, args := influencerSearchQuery(in).build()
	return r.query(ctx, query, args...)
}

func influencerSearchQuery(in model.SearchInfluencersInput) *searchQuery {
	q := newSearchQuery(qualify("i", influencerColumns), "influencers i").
		join(joinPerformance, "INNER JOIN performance_indicators pi ON pi.influencer_id = i.id", true).
		join(joinSocial, "INNER JOIN social_media_accounts sma ON sma.influencer_id = i.id", true)
	q.groupBy = "i.id"
	q.orderBy = "i.id"

	if in.Category != nil {
		pattern := likePattern(*in.Category)
		q.where("(i.bio ILIKE ? OR i.portfolio_description ILIKE ?)", joinPerformance|joinSocial, pattern, pattern)
	}
	if in.MinFollowers != nil {
		q.where("pi.followers_count >= ?", joinPerformance, *in.MinFollowers)
	}
	if in.MaxFollowers != nil {
		q.where("pi.followers_count <= ?", joinPerformance, *in.MaxFollowers)
	}
	if in.Platform != nil {
		q.where("sma.platform = ?", joinSocial, string(*in.Platform))
	}
	if in.MinEngagementRate != nil {
		q.where("pi.avg_engagement_rate >= ?", joinPerformance, formatDecimal(*in.MinEngagementRate))
	}

	return q.page(in.Limit, in.Offset)
}

func (r *InfluencerRepository) query(ctx context.Context, query string, args ...any) ([]*model.Influencer, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	influencers := []*model.Influencer{}
	for rows.Next() {
		i, err := scanInfluencer(rows)
		if err != nil {
			return nil, err
		}
		influencers = append(influencers, i)
	}
	return influencers, rows.Err()
}

var _ InfluencerRepositoryInterface = (*InfluencerRepository)(nil)
