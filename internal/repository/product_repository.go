package repository

import (
	"context"
	"database/sql"
	"errors"

	appErrors "github.com/appdotbuilder/influencer-sponsor-connect/internal/errors"
	"github.com/appdotbuilder/influencer-sponsor-connect/internal/model"
)

const productColumns = "id, sponsor_id, name, description, category, target_audience, created_at, updated_at"

type ProductRepositoryInterface interface {
	Create(ctx context.Context, in model.CreateProductInput) (*model.Product, error)
	GetByID(ctx context.Context, id int) (*model.Product, error)
	List(ctx context.Context) ([]*model.Product, error)
	ListBySponsor(ctx context.Context, sponsorID int) ([]*model.Product, error)
	Update(ctx context.Context, in model.UpdateProductInput) (*model.Product, error)
}

type ProductRepository struct {
	DB *sql.DB
}

func scanProduct(row rowScanner) (*model.Product, error) {
	var p model.Product
	err := row.Scan(&p.ID, &p.SponsorID, &p.Name, &p.Description, &p.Category, &p.TargetAudience, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) Create(ctx context.Context, in model.CreateProductInput) (*model.Product, error) {
	query := `
        INSERT INTO products (sponsor_id, name, description, category, target_audience)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING ` + productColumns
	return scanProduct(r.DB.QueryRowContext(ctx, query, in.SponsorID, in.Name, in.Description, in.Category, in.TargetAudience))
}

func (r *ProductRepository) GetByID(ctx context.Context, id int) (*model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id=$1`
	p, err := scanProduct(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return p, err
}

func (r *ProductRepository) List(ctx context.Context) ([]*model.Product, error) {
	return r.query(ctx, `SELECT `+productColumns+` FROM products ORDER BY id`)
}

func (r *ProductRepository) ListBySponsor(ctx context.Context, sponsorID int) ([]*model.Product, error) {
	return r.query(ctx, `SELECT `+productColumns+` FROM products WHERE sponsor_id=$1 ORDER BY id`, sponsorID)
}

func (r *ProductRepository) Update(ctx context.Context, in model.UpdateProductInput) (*model.Product, error) {
	u := newUpdate("products")
	if in.Name != nil {
		u.set("name", *in.Name)
	}
	if in.Description.Set {
		u.set("description", in.Description.Ptr())
	}
	if in.Category != nil {
		u.set("category", *in.Category)
	}
	if in.TargetAudience.Set {
		u.set("target_audience", in.TargetAudience.Ptr())
	}
	u.touch("updated_at")

	query, args := u.build(in.ID, productColumns)
	p, err := scanProduct(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.NewProductNotFound(in.ID)
	}
	return p, err
}

func (r *ProductRepository) query(ctx context.Context, query string, args ...any) ([]*model.Product, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []*model.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

var _ ProductRepositoryInterface = (*ProductRepository)(nil)
