package service

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"poppys/internal/model"
	"poppys/internal/repository"
)

// ProductService exposes catalog operations. Reads are public; the router
// gates every mutation behind the credential check.
type ProductService interface {
	Create(ctx context.Context, product *model.Product) (*model.Product, error)
	Get(ctx context.Context, id bson.ObjectID) (*model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
	Update(ctx context.Context, id bson.ObjectID, params repository.UpdateProductParams) (*model.Product, error)
	Delete(ctx context.Context, id bson.ObjectID) error
}

type productService struct {
	repo repository.ProductRepository
}

// NewProductService builds a ProductService.
func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{repo: repo}
}

func (s *productService) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) Get(ctx context.Context, id bson.ObjectID) (*model.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *productService) List(ctx context.Context) ([]model.Product, error) {
	return s.repo.List(ctx)
}

func (s *productService) Update(ctx context.Context, id bson.ObjectID, params repository.UpdateProductParams) (*model.Product, error) {
	return s.repo.Update(ctx, id, params)
}

func (s *productService) Delete(ctx context.Context, id bson.ObjectID) error {
	return s.repo.Delete(ctx, id)
}
