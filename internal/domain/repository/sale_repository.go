package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/fulcitt/fulcitt-api/internal/domain/entity"
	"github.com/fulcitt/fulcitt-api/pkg/pagination"
)

// SaleRepository defines the interface for sale persistence
type SaleRepository interface {
	// CreateWithItems inserts the sale row and all line items in one atomic
	// transaction: either every row lands or none does.
	CreateWithItems(ctx context.Context, sale *entity.Sale, items []entity.SaleItem) error
	// GetWithItems returns the sale with its line items, or nil when absent.
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Sale, int64, error)
	// ListAllWithItems returns every sale with items, oldest first (exports).
	ListAllWithItems(ctx context.Context) ([]entity.Sale, error)
	SetPaymentMethod(ctx context.Context, id uuid.UUID, method string) (bool, error)
}
