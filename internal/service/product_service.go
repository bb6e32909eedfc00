// internal/service/product_service.go
package service

import (
	"context"

	appErrors "github.com/appdotbuilder/influencer-sponsor-connect/internal/errors"
	"github.com/appdotbuilder/influencer-sponsor-connect/internal/model"
	"github.com/appdotbuilder/influencer-sponsor-connect/internal/queue"
	"github.com/appdotbuilder/influencer-sponsor-connect/internal/repository"
)

type ProductService struct {
	ProductRepo repository.ProductRepositoryInterface
	SponsorRepo repository.SponsorRepositoryInterface
	Queue       queue.Queue
}

func (s *ProductService) Create(ctx context.Context, in model.CreateProductInput) (*model.Product, error) {
	ok, err := s.SponsorRepo.Exists(ctx, in.SponsorID)
	if err != nil {
		return nil, logFailure(ctx, "failed to check sponsor", err)
	}
	if !ok {
		return nil, appErrors.NewSponsorNotFound(in.SponsorID)
	}

	p, err := s.ProductRepo.Create(ctx, in)
	if err != nil {
		return nil, logFailure(ctx, "failed to create product", err)
	}
	publish(ctx, s.Queue, "product", "created", p.ID)
	return p, nil
}

func (s *ProductService) Get(ctx context.Context, id int) (*model.Product, error) {
	p, err := s.ProductRepo.GetByID(ctx, id)
	if err != nil {
		return nil, logFailure(ctx, "failed to fetch product", err)
	}
	return p, nil
}

func (s *ProductService) List(ctx context.Context) ([]*model.Product, error) {
	list, err := s.ProductRepo.List(ctx)
	if err != nil {
		return nil, logFailure(ctx, "failed to list products", err)
	}
	return list, nil
}

// ListBySponsor returns an empty list for unknown sponsors.
func (s *ProductService) ListBySponsor(ctx context.Context, sponsorID int) ([]*model.Product, error) {
	list, err := s.ProductRepo.ListBySponsor(ctx, sponsorID)
	if err != nil {
		return nil, logFailure(ctx, "failed to list sponsor products", err)
	}
	return list, nil
}

func (s *ProductService) Update(ctx context.Context, in model.UpdateProductInput) (*model.Product, error) {
	p, err := s.ProductRepo.Update(ctx, in)
	if err != nil {
		return nil, logFailure(ctx, "failed to update product", err)
	}
	publish(ctx, s.Queue, "product", "updated", p.ID)
	return p, nil
}
