package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/fulcitt/fulcitt-api/internal/application/service"
	"github.com/fulcitt/fulcitt-api/internal/domain/entity"
	"github.com/fulcitt/fulcitt-api/internal/presentation/http/dto/response"
)

// LayoutHandler handles receipt layout configuration requests
type LayoutHandler struct {
	layoutService *service.LayoutService
}

// NewLayoutHandler creates a new layout handler
func NewLayoutHandler(layoutService *service.LayoutService) *LayoutHandler {
	return &LayoutHandler{layoutService: layoutService}
}

// Get returns the active printing layout, falling back to defaults when
// nothing has been saved yet.
func (h *LayoutHandler) Get(c *gin.Context) {
	layout, err := h.layoutService.GetLayout(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Printing layout retrieved successfully", layout)
}

// Update replaces the saved printing layout.
func (h *LayoutHandler) Update(c *gin.Context) {
	var layout entity.PrintingLayout
	if err := c.ShouldBindJSON(&layout); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.layoutService.SetLayout(c.Request.Context(), &layout); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Printing layout updated successfully", layout)
}
