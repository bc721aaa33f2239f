package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/fulcitt/fulcitt-api/internal/domain/repository"
	"github.com/fulcitt/fulcitt-api/pkg/apperror"
)

const (
	salesSheetName     = "Sales"
	saleItemsSheetName = "Sale items"
)

// ExportService writes the sales register to a spreadsheet
type ExportService struct {
	saleRepo  repository.SaleRepository
	exportDir string
}

// NewExportService creates a new export service
func NewExportService(saleRepo repository.SaleRepository, exportDir string) *ExportService {
	return &ExportService{
		saleRepo:  saleRepo,
		exportDir: exportDir,
	}
}

// ExportSalesReport writes every sale and line item to a two-worksheet xlsx
// file in the export directory and returns the file path.
func (s *ExportService) ExportSalesReport(ctx context.Context) (string, error) {
	sales, err := s.saleRepo.ListAllWithItems(ctx)
	if err != nil {
		return "", apperror.NewDatabaseError(err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", salesSheetName); err != nil {
		return "", fmt.Errorf("failed to create sales sheet: %w", err)
	}
	if _, err := f.NewSheet(saleItemsSheetName); err != nil {
		return "", fmt.Errorf("failed to create sale items sheet: %w", err)
	}

	currencyFormat := "#,##0.00 €"
	currencyStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &currencyFormat})
	if err != nil {
		return "", fmt.Errorf("failed to create currency style: %w", err)
	}

	salesHeader := []interface{}{"ID", "Date", "Payment method", "Amount"}
	if err := f.SetSheetRow(salesSheetName, "A1", &salesHeader); err != nil {
		return "", fmt.Errorf("failed to write sales header: %w", err)
	}
	itemsHeader := []interface{}{"Sale ID", "Product", "Qty", "Unit price", "Total"}
	if err := f.SetSheetRow(saleItemsSheetName, "A1", &itemsHeader); err != nil {
		return "", fmt.Errorf("failed to write sale items header: %w", err)
	}

	itemRow := 2
	for i, sale := range sales {
		row := i + 2

		paymentMethod := ""
		if sale.PaymentMethod != nil {
			paymentMethod = *sale.PaymentMethod
		}

		saleRow := []interface{}{
			sale.ID.String(),
			sale.SaleTime.Format("2006-01-02 15:04:05"),
			paymentMethod,
			sale.GetTotalAmountDecimal(),
		}
		cell := fmt.Sprintf("A%d", row)
		if err := f.SetSheetRow(salesSheetName, cell, &saleRow); err != nil {
			return "", fmt.Errorf("failed to write sale row: %w", err)
		}
		amountCell := fmt.Sprintf("D%d", row)
		if err := f.SetCellStyle(salesSheetName, amountCell, amountCell, currencyStyle); err != nil {
			return "", fmt.Errorf("failed to style sale row: %w", err)
		}

		for _, item := range sale.Items {
			itemCells := []interface{}{
				sale.ID.String(),
				item.ProductName,
				item.Quantity,
				float64(item.PriceAtSale) / 100,
			}
			cell := fmt.Sprintf("A%d", itemRow)
			if err := f.SetSheetRow(saleItemsSheetName, cell, &itemCells); err != nil {
				return "", fmt.Errorf("failed to write sale item row: %w", err)
			}

			// Line total as a spreadsheet formula so edits recompute.
			totalCell := fmt.Sprintf("E%d", itemRow)
			formula := fmt.Sprintf("=C%d*D%d", itemRow, itemRow)
			if err := f.SetCellFormula(saleItemsSheetName, totalCell, formula); err != nil {
				return "", fmt.Errorf("failed to write sale item formula: %w", err)
			}
			priceCell := fmt.Sprintf("D%d", itemRow)
			if err := f.SetCellStyle(saleItemsSheetName, priceCell, totalCell, currencyStyle); err != nil {
				return "", fmt.Errorf("failed to style sale item row: %w", err)
			}

			itemRow++
		}
	}

	if err := os.MkdirAll(s.exportDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	filename := fmt.Sprintf("sales-report-%s.xlsx", time.Now().Format("20060102-150405"))
	path := filepath.Join(s.exportDir, filename)
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save report: %w", err)
	}

	return path, nil
}
