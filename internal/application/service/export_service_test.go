package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/fulcitt/fulcitt-api/internal/domain/entity"
)

func TestExportSalesReport(t *testing.T) {
	saleRepo := newFakeSaleRepo()
	productID := uuid.New()
	err := saleRepo.CreateWithItems(context.Background(), testSale(), []entity.SaleItem{
		{ProductID: productID, ProductName: "Espresso", Quantity: 2, PriceAtSale: 120},
		{ProductID: productID, ProductName: "Panino", Quantity: 1, PriceAtSale: 450},
	})
	require.NoError(t, err)

	svc := NewExportService(saleRepo, t.TempDir())

	path, err := svc.ExportSalesReport(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, path)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Sales", "Sale items"}, f.GetSheetList())

	rows, err := f.GetRows("Sale items")
	require.NoError(t, err)
	// header plus one row per line item
	require.Len(t, rows, 3)
	assert.Equal(t, "Espresso", rows[1][1])
	assert.Equal(t, "Panino", rows[2][1])
}

func TestExportSalesReportEmptyRegister(t *testing.T) {
	svc := NewExportService(newFakeSaleRepo(), t.TempDir())

	path, err := svc.ExportSalesReport(context.Background())

	require.NoError(t, err)
	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Sales")
	require.NoError(t, err)
	assert.Len(t, rows, 1, "only the header row")
}
