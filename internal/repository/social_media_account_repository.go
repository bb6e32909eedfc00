package repository

import (
	"context"
	"database/sql"
	"errors"

	appErrors "github.com/appdotbuilder/influencer-sponsor-connect/internal/errors"
	"github.com/appdotbuilder/influencer-sponsor-connect/internal/model"
)

const socialMediaAccountColumns = "id, influencer_id, platform, username, url, follower_count, created_at"

type SocialMediaAccountRepositoryInterface interface {
	Create(ctx context.Context, in model.CreateSocialMediaAccountInput) (*model.SocialMediaAccount, error)
	GetByID(ctx context.Context, id int) (*model.SocialMediaAccount, error)
	ListByInfluencer(ctx context.Context, influencerID int) ([]*model.SocialMediaAccount, error)
	Update(ctx context.Context, in model.UpdateSocialMediaAccountInput) (*model.SocialMediaAccount, error)
}

type SocialMediaAccountRepository struct {
	DB *sql.DB
}

func scanSocialMediaAccount(row rowScanner) (*model.SocialMediaAccount, error) {
	var a model.SocialMediaAccount
	err := row.Scan(&a.ID, &a.InfluencerID, &a.Platform, &a.Username, &a.URL, &a.FollowerCount, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *SocialMediaAccountRepository) Create(ctx context.Context, in model.CreateSocialMediaAccountInput) (*model.SocialMediaAccount, error) {
	query := `
        INSERT INTO social_media_accounts (influencer_id, platform, username, url, follower_count)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING ` + socialMediaAccountColumns
	return scanSocialMediaAccount(r.DB.QueryRowContext(ctx, query, in.InfluencerID, string(in.Platform), in.Username, in.URL, in.FollowerCount))
}

func (r *SocialMediaAccountRepository) GetByID(ctx context.Context, id int) (*model.SocialMediaAccount, error) {
	query := `SELECT ` + socialMediaAccountColumns + ` FROM social_media_accounts WHERE id=$1`
	a, err := scanSocialMediaAccount(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return a, err
}

func (r *SocialMediaAccountRepository) ListByInfluencer(ctx context.Context, influencerID int) ([]*model.SocialMediaAccount, error) {
	query := `SELECT ` + socialMediaAccountColumns + ` FROM social_media_accounts WHERE influencer_id=$1 ORDER BY id`
	rows, err := r.DB.QueryContext(ctx, query, influencerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := []*model.SocialMediaAccount{}
	for rows.Next() {
		a, err := scanSocialMediaAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

// Update has no timestamp to refresh, so an input without fields only re-reads the row.
func (r *SocialMediaAccountRepository) Update(ctx context.Context, in model.UpdateSocialMediaAccountInput) (*model.SocialMediaAccount, error) {
	u := newUpdate("social_media_accounts")
	if in.Platform != nil {
		u.set("platform", string(*in.Platform))
	}
	if in.Username != nil {
		u.set("username", *in.Username)
	}
	if in.URL != nil {
		u.set("url", *in.URL)
	}
	if in.FollowerCount.Set {
		u.set("follower_count", in.FollowerCount.Ptr())
	}

	var (
		a   *model.SocialMediaAccount
		err error
	)
	if u.empty() {
		a, err = r.GetByID(ctx, in.ID)
		if err == nil && a == nil {
			err = sql.ErrNoRows
		}
	} else {
		query, args := u.build(in.ID, socialMediaAccountColumns)
		a, err = scanSocialMediaAccount(r.DB.QueryRowContext(ctx, query, args...))
	}
	if errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.NewSocialMediaAccountNotFound(in.ID)
	}
	return a, err
}

var _ SocialMediaAccountRepositoryInterface = (*SocialMediaAccountRepository)(nil)
