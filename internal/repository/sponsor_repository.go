package repository

import (
	"context"
	"database/sql"
	"errors"

	appErrors "github.com/appdotbuilder/influencer-sponsor-connect/internal/errors"
	"github.com/appdotbuilder/influencer-sponsor-connect/internal/model"
)

const sponsorColumns = "id, company_name, contact_email, contact_phone, industry, description, created_at, updated_at"

type SponsorRepositoryInterface interface {
	Create(ctx context.Context, in model.CreateSponsorInput) (*model.Sponsor, error)
	GetByID(ctx context.Context, id int) (*model.Sponsor, error)
	List(ctx context.Context) ([]*model.Sponsor, error)
	Update(ctx context.Context, in model.UpdateSponsorInput) (*model.Sponsor, error)
	Exists(ctx context.Context, id int) (bool, error)
}

type SponsorRepository struct {
	DB *sql.DB
}

func scanSponsor(row rowScanner) (*model.Sponsor, error) {
	var s model.Sponsor
	err := row.Scan(&s.ID, &s.CompanyName, &s.ContactEmail, &s.ContactPhone, &s.Industry, &s.Description, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SponsorRepository) Create(ctx context.Context, in model.CreateSponsorInput) (*model.Sponsor, error) {
	query := `
        INSERT INTO sponsors (company_name, contact_email, contact_phone, industry, description)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING ` + sponsorColumns
	return scanSponsor(r.DB.QueryRowContext(ctx, query, in.CompanyName, in.ContactEmail, in.ContactPhone, in.Industry, in.Description))
}

func (r *SponsorRepository) GetByID(ctx context.Context, id int) (*model.Sponsor, error) {
	query := `SELECT ` + sponsorColumns + ` FROM sponsors WHERE id=$1`
	s, err := scanSponsor(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return s, err
}

func (r *SponsorRepository) List(ctx context.Context) ([]*model.Sponsor, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+sponsorColumns+` FROM sponsors ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sponsors := []*model.Sponsor{}
	for rows.Next() {
		s, err := scanSponsor(rows)
		if err != nil {
			return nil, err
		}
		sponsors = append(sponsors, s)
	}
	return sponsors, rows.Err()
}

func (r *SponsorRepository) Update(ctx context.Context, in model.UpdateSponsorInput) (*model.Sponsor, error) {
	u := newUpdate("sponsors")
	if in.CompanyName != nil {
		u.set("company_name", *in.CompanyName)
	}
	if in.ContactEmail != nil {
		u.set("contact_email", *in.ContactEmail)
	}
	if in.ContactPhone.Set {
		u.set("contact_phone", in.ContactPhone.Ptr())
	}
	if in.Industry != nil {
		u.set("industry", *in.Industry)
	}
	if in.Description.Set {
		u.set("description", in.Description.Ptr())
	}
	u.touch("updated_at")

	query, args := u.build(in.ID, sponsorColumns)
	s, err := scanSponsor(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.NewSponsorNotFound(in.ID)
	}
	return s, err
}

func (r *SponsorRepository) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM sponsors WHERE id=$1)`, id).Scan(&exists)
	return exists, err
}

var _ SponsorRepositoryInterface = (*SponsorRepository)(nil)
