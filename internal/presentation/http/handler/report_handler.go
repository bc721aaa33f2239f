package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/fulcitt/fulcitt-api/internal/application/service"
	"github.com/fulcitt/fulcitt-api/internal/presentation/http/dto/response"
)

// ReportHandler handles report export requests
type ReportHandler struct {
	exportService *service.ExportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(exportService *service.ExportService) *ReportHandler {
	return &ReportHandler{exportService: exportService}
}

// ExportSales writes the full sales register to an xlsx file and streams it
// back as a download.
func (h *ReportHandler) ExportSales(c *gin.Context) {
	path, err := h.exportService.ExportSalesReport(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.FileAttachment(path, "sales-report.xlsx")
}
