package service

import (
	"context"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/fulcitt/fulcitt-api/internal/domain/entity"
	"github.com/fulcitt/fulcitt-api/internal/domain/repository"
	"github.com/fulcitt/fulcitt-api/pkg/apperror"
	"github.com/fulcitt/fulcitt-api/pkg/printer"
)

// PrintingService sequences the sale pipeline: commit, compose, dispatch.
// It owns the single printer device handle; dispatches are mutually excluded
// and never started for an uncommitted sale.
type PrintingService struct {
	driver        printer.Driver
	mu            sync.Mutex
	transportType string

	sales       *SaleService
	layouts     *LayoutService
	productRepo repository.ProductRepository
}

// NewPrintingService creates a new printing service. The driver is injected
// so tests can substitute a fake device.
func NewPrintingService(
	driver printer.Driver,
	transportType string,
	sales *SaleService,
	layouts *LayoutService,
	productRepo repository.ProductRepository,
) *PrintingService {
	return &PrintingService{
		driver:        driver,
		transportType: transportType,
		sales:         sales,
		layouts:       layouts,
		productRepo:   productRepo,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer configuration and connection status.
func (s *PrintingService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.configured(),
		Connected:  s.driver.Connected(),
		Type:       s.transportType,
	}
}

func (s *PrintingService) configured() bool {
	return s.transportType != "none" && s.transportType != ""
}

// CommitAndPrintSale commits the cart and prints its tickets. A commit
// failure aborts before any printer work. A printing failure is returned
// alongside the committed sale: money was taken, so printing is best-effort
// and must never undo the recorded sale; callers offer a manual reprint.
func (s *PrintingService) CommitAndPrintSale(ctx context.Context, cart []CartItem) (*entity.Sale, error) {
	sale, err := s.sales.CommitSale(ctx, cart)
	if err != nil {
		return nil, err
	}

	if err := s.printSale(ctx, sale); err != nil {
		log.Printf("Sale %s committed but printing failed: %v", sale.ID, err)
		return sale, err
	}

	return sale, nil
}

// ReprintSale re-renders and re-dispatches the tickets of a stored sale.
// Repeating it produces structurally identical operation sequences for the
// same sale and layout.
func (s *PrintingService) ReprintSale(ctx context.Context, saleID uuid.UUID) (*entity.Sale, error) {
	sale, err := s.sales.GetSale(ctx, saleID)
	if err != nil {
		return nil, err
	}

	if err := s.printSale(ctx, sale); err != nil {
		return sale, err
	}
	return sale, nil
}

// printSale runs steps 2-5 of the pipeline for an already-committed sale:
// load layout, compose, lock the device, dispatch.
func (s *PrintingService) printSale(ctx context.Context, sale *entity.Sale) error {
	layout, err := s.layouts.GetLayout(ctx)
	if err != nil {
		return err
	}

	items, err := s.ticketItems(ctx, sale)
	if err != nil {
		return err
	}

	ops := ComposeTickets(sale, items, layout)
	return s.dispatch(ops)
}

// ticketItems resolves the sale's lines against the catalog. Names and
// quantities come from the sale items as captured at sale time; the catalog
// contributes only the category (soft-deleted products still resolve).
func (s *PrintingService) ticketItems(ctx context.Context, sale *entity.Sale) ([]TicketItem, error) {
	productIDs := make([]uuid.UUID, len(sale.Items))
	for i, item := range sale.Items {
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

	items := make([]TicketItem, 0, len(sale.Items))
	for _, item := range sale.Items {
		product, exists := productMap[item.ProductID]
		if !exists {
			return nil, apperror.NewProductNotFoundError(item.ProductID)
		}
		items = append(items, TicketItem{
			Name:     item.ProductName,
			Quantity: item.Quantity,
			Category: product.Category,
		})
	}
	return items, nil
}

// dispatch executes an operation sequence under the exclusive device lock.
// The database transaction is long closed by the time this runs; slow
// hardware never holds a database lock.
func (s *PrintingService) dispatch(ops []printer.Op) error {
	if !s.configured() {
		return apperror.NewPrinterNotConfiguredError()
	}

	if !s.mu.TryLock() {
		return apperror.NewConcurrencyError()
	}
	defer s.mu.Unlock()

	if err := printer.Dispatch(s.driver, ops); err != nil {
		log.Printf("Printer dispatch error: %v", err)
		return apperror.NewPrinterError(err)
	}
	return nil
}

// TestPrint sends a small fixed ticket to the printer to verify the device.
func (s *PrintingService) TestPrint() error {
	ops := []printer.Op{
		printer.SetJustifyOp(printer.AlignCenter),
		printer.SetFontOp(2, 2),
		printer.WriteOp("PRINTER TEST"),
		printer.SetFontOp(1, 1),
		printer.FeedOp(),
		printer.WriteOp("If you can read this, the"),
		printer.WriteOp("printer is configured correctly."),
		printer.FeedOp(),
		printer.CutOp(),
	}
	return s.dispatch(ops)
}
