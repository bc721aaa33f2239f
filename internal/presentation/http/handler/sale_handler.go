package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fulcitt/fulcitt-api/internal/application/service"
	"github.com/fulcitt/fulcitt-api/internal/presentation/http/dto/request"
	"github.com/fulcitt/fulcitt-api/internal/presentation/http/dto/response"
	"github.com/fulcitt/fulcitt-api/pkg/pagination"
)

// SaleHandler handles sale-related HTTP requests
type SaleHandler struct {
	saleService     *service.SaleService
	printingService *service.PrintingService
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(saleService *service.SaleService, printingService *service.PrintingService) *SaleHandler {
	return &SaleHandler{
		saleService:     saleService,
		printingService: printingService,
	}
}

// Commit persists a sale and prints its receipt tickets. A printing failure
// does not undo the sale: the committed sale is returned with a warning so
// the client can offer a reprint.
func (h *SaleHandler) Commit(c *gin.Context) {
	var req request.CommitSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	cart := make([]service.CartItem, 0, len(req.Items))
	for _, item := range req.Items {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			response.BadRequest(c, "Invalid product ID format: "+item.ProductID)
			return
		}
		cart = append(cart, service.CartItem{
			ProductID: productID,
			Name:      item.Name,
			UnitPrice: item.Price,
			Quantity:  item.Quantity,
		})
	}

	sale, err := h.printingService.CommitAndPrintSale(c.Request.Context(), cart)
	if err != nil {
		// If the sale was committed but printing failed, return the sale
		// with a warning so the client can offer a reprint
		if sale != nil {
			response.Created(c, "Sale committed but printing failed", gin.H{
				"sale":    sale,
				"warning": err.Error(),
			})
			return
		}
		response.Error(c, err)
		return
	}

	response.Created(c, "Sale committed successfully", gin.H{
		"sale": sale,
	})
}

// Reprint re-dispatches the receipt tickets for an already committed sale.
func (h *SaleHandler) Reprint(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	sale, err := h.printingService.ReprintSale(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale reprinted successfully", gin.H{
		"sale": sale,
	})
}

// List returns committed sales, most recent first.
func (h *SaleHandler) List(c *gin.Context) {
	var filter request.SaleFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &pagination.PaginationParams{
		Page:    filter.Page,
		PerPage: filter.PerPage,
	}

	result, err := h.saleService.ListSales(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Sales retrieved successfully", result)
}

// Get returns a single sale with its line items.
func (h *SaleHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	sale, err := h.saleService.GetSale(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale retrieved successfully", sale)
}

// SetPayment annotates a committed sale with its payment method.
func (h *SaleHandler) SetPayment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	var req request.SetPaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.saleService.SetPaymentMethod(c.Request.Context(), id, req.PaymentMethod); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
