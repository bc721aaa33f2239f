package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/fulcitt/fulcitt-api/internal/application/service"
	"github.com/fulcitt/fulcitt-api/internal/presentation/http/dto/response"
)

// PrinterHandler handles printer-related HTTP requests.
type PrinterHandler struct {
	printingService *service.PrintingService
}

// NewPrinterHandler creates a new printer handler.
func NewPrinterHandler(printingService *service.PrintingService) *PrinterHandler {
	return &PrinterHandler{printingService: printingService}
}

// GetStatus returns the current printer connection status.
func (h *PrinterHandler) GetStatus(c *gin.Context) {
	status := h.printingService.GetStatus()
	response.OK(c, "Printer status retrieved", status)
}

// TestPrint sends a test page to the printer.
func (h *PrinterHandler) TestPrint(c *gin.Context) {
	if err := h.printingService.TestPrint(); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Test page sent to printer", nil)
}
