package service

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/fulcitt/fulcitt-api/internal/domain/entity"
	"github.com/fulcitt/fulcitt-api/internal/domain/repository"
	"github.com/fulcitt/fulcitt-api/pkg/apperror"
	"github.com/fulcitt/fulcitt-api/pkg/pagination"
)

// SaleService validates carts and commits them as atomic sale transactions
type SaleService struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
}

// NewSaleService creates a new sale service
func NewSaleService(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
) *SaleService {
	return &SaleService{
		saleRepo:    saleRepo,
		productRepo: productRepo,
	}
}

// CartItem is one caller-supplied line proposed for a sale. Unit price and
// quantity are copied verbatim into the sale item record so the sale keeps
// its historical price even if the catalog changes later.
type CartItem struct {
	ProductID uuid.UUID
	Name      string
	UnitPrice float64
	Quantity  int
}

// CommitSale validates the cart, resolves every referenced catalog product
// and persists the sale plus its line items in a single transaction. The
// total is computed from the caller-supplied prices, in cart order. Any
// persistence failure rolls the whole sale back; no automatic retry is
// attempted since a blind retry risks a duplicate sale.
func (s *SaleService) CommitSale(ctx context.Context, cart []CartItem) (*entity.Sale, error) {
	if len(cart) == 0 {
		return nil, apperror.NewEmptyCartError()
	}

	for _, item := range cart {
		if item.Quantity <= 0 {
			return nil, apperror.NewInvalidQuantityError(item.ProductID)
		}
		if item.UnitPrice < 0 {
			return nil, apperror.NewInvalidPriceError(item.ProductID)
		}
	}

	// Batch fetch all referenced products in one query (prevents N+1).
	// A missing product fails the commit before any write.
	productIDs := make([]uuid.UUID, len(cart))
	for i, item := range cart {
		productIDs[i] = item.ProductID
	}

	products, err := s.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, apperror.NewDatabaseError(err)
	}

	productMap := make(map[uuid.UUID]*entity.Product, len(products))
	for i := range products {
		productMap[products[i].ID] = &products[i]
	}

	for _, item := range cart {
		if _, exists := productMap[item.ProductID]; !exists {
			return nil, apperror.NewProductNotFoundError(item.ProductID)
		}
	}

	// Server-side timestamp, captured once at the start of commit.
	saleTime := time.Now()

	var totalAmount int64
	items := make([]entity.SaleItem, 0, len(cart))
	for _, item := range cart {
		// Round, don't truncate: 19.99 has no exact float representation and
		// would otherwise land as 1998 cents.
		priceCents := int64(math.Round(item.UnitPrice * 100))
		totalAmount += priceCents * int64(item.Quantity)

		items = append(items, entity.SaleItem{
			ProductID:   item.ProductID,
			ProductName: item.Name,
			Quantity:    item.Quantity,
			PriceAtSale: priceCents,
		})
	}

	sale := &entity.Sale{
		SaleTime:    saleTime,
		TotalAmount: totalAmount,
	}

	if err := s.saleRepo.CreateWithItems(ctx, sale, items); err != nil {
		return nil, apperror.NewDatabaseError(err)
	}

	return sale, nil
}

// GetSale retrieves a sale with its items by ID
func (s *SaleService) GetSale(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, apperror.NewDatabaseError(err)
	}
	if sale == nil {
		return nil, apperror.NewSaleNotFoundError(id)
	}
	return sale, nil
}

// ListSales lists sales with pagination, newest first. Nil params list the
// default first page.
func (s *SaleService) ListSales(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Sale], error) {
	if params == nil {
		params = pagination.DefaultPagination()
	}

	sales, total, err := s.saleRepo.List(ctx, params)
	if err != nil {
		return nil, apperror.NewDatabaseError(err)
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(sales, pag), nil
}

// SetPaymentMethod annotates a committed sale with its payment method
func (s *SaleService) SetPaymentMethod(ctx context.Context, id uuid.UUID, method string) error {
	updated, err := s.saleRepo.SetPaymentMethod(ctx, id, method)
	if err != nil {
		return apperror.NewDatabaseError(err)
	}
	if !updated {
		return apperror.NewSaleNotFoundError(id)
	}
	return nil
}
