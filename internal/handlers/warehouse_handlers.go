package handlers

import (
	"net/http"
	"strconv"

	"inventory_dashboard_backend/internal/models"
	"inventory_dashboard_backend/internal/services"
	"inventory_dashboard_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// WarehouseHandler holds the warehouse service.
type WarehouseHandler struct {
	warehouseService services.WarehouseService
}

// NewWarehouseHandler creates a new WarehouseHandler.
func NewWarehouseHandler(ws services.WarehouseService) *WarehouseHandler {
	return &WarehouseHandler{warehouseService: ws}
}

// GetWarehouseDistribution handles the per-location stock distribution.
func (h *WarehouseHandler) GetWarehouseDistribution(c *gin.Context) {
	var filters models.WarehouseFilters

	if productIDStr := c.Query("product_id"); productIDStr != "" {
		productID, err := strconv.ParseInt(productIDStr, 10, 64)
		if err != nil {
			utils.RespondValidationFailed(c, "product_id must be an integer")
			return
		}
		filters.ProductID = &productID
	}
	filters.Category = c.Query("category")
	if minValueStr := c.Query("min_value"); minValueStr != "" {
		minValue, err := strconv.ParseFloat(minValueStr, 64)
		if err != nil || minValue < 0 {
			utils.RespondValidationFailed(c, "min_value must be a non-negative number")
			return
		}
		filters.MinValue = &minValue
	}

	distribution, err := h.warehouseService.GetWarehouseDistribution(filters)
	if err != nil {
		utils.LogError(err, "GetWarehouseDistribution: failed to aggregate distribution")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeDataSource, "Failed to fetch warehouse distribution.", ""))
		return
	}
	c.JSON(http.StatusOK, distribution)
}
