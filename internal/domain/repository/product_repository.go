package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/fulcitt/fulcitt-api/internal/domain/entity"
)

// ProductRepository defines the interface for catalog product persistence
type ProductRepository interface {
	// Upsert creates the product or, when a product with the same name
	// already exists, updates its price, category and deleted flag.
	Upsert(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	// GetByIDs retrieves multiple products by their IDs in a single query.
	// Soft-deleted products are included: sales history must still resolve them.
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error)
	GetByName(ctx context.Context, name string) (*entity.Product, error)
	List(ctx context.Context, includeDeleted bool) ([]entity.Product, error)
	// SoftDelete raises the deleted flag; the row is kept.
	SoftDelete(ctx context.Context, id uuid.UUID) (bool, error)
}
