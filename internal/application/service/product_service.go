package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/fulcitt/fulcitt-api/internal/domain/entity"
	"github.com/fulcitt/fulcitt-api/internal/domain/repository"
	"github.com/fulcitt/fulcitt-api/pkg/apperror"
)

// ProductService handles catalog operations
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{
		productRepo: productRepo,
	}
}

// UpsertProductInput represents the upsert product input. Name is the
// natural key: an existing product with the same name is updated in place
// and un-deleted.
type UpsertProductInput struct {
	Name     string
	Category string
	Price    float64
}

// UpsertProduct creates or updates a catalog product keyed on its name
func (s *ProductService) UpsertProduct(ctx context.Context, input *UpsertProductInput) (*entity.Product, error) {
	if input.Name == "" {
		return nil, apperror.NewAppError(400, apperror.KindInvalidInput, "Product name is required")
	}
	if input.Price < 0 {
		return nil, apperror.NewAppError(400, apperror.KindInvalidInput, "Product price must be non-negative")
	}

	product := &entity.Product{
		Name:      input.Name,
		Category:  input.Category,
		IsDeleted: false,
	}
	product.SetPriceFromDecimal(input.Price)

	if err := s.productRepo.Upsert(ctx, product); err != nil {
		return nil, apperror.NewDatabaseError(err)
	}

	// Reload by name: on a conflict the insert's generated ID is not the
	// ID of the surviving row.
	saved, err := s.productRepo.GetByName(ctx, input.Name)
	if err != nil {
		return nil, apperror.NewDatabaseError(err)
	}
	return saved, nil
}

// ListProducts lists catalog products, excluding soft-deleted ones unless asked
func (s *ProductService) ListProducts(ctx context.Context, includeDeleted bool) ([]entity.Product, error) {
	products, err := s.productRepo.List(ctx, includeDeleted)
	if err != nil {
		return nil, apperror.NewDatabaseError(err)
	}
	return products, nil
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NewDatabaseError(err)
	}
	if product == nil {
		return nil, apperror.NewProductNotFoundError(id)
	}
	return product, nil
}

// DeleteProduct soft-deletes a product. The row survives so that sales
// history keeps resolving its name and category.
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.productRepo.SoftDelete(ctx, id)
	if err != nil {
		return apperror.NewDatabaseError(err)
	}
	if !deleted {
		return apperror.NewProductNotFoundError(id)
	}
	return nil
}
