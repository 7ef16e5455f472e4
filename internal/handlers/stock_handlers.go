package handlers

import (
	"net/http"
	"strconv"

	"inventory_dashboard_backend/internal/models"
	"inventory_dashboard_backend/internal/services"
	"inventory_dashboard_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

const defaultPageLimit = 20

// StockHandler holds the stock service.
type StockHandler struct {
	stockService services.StockService
}

// NewStockHandler creates a new StockHandler.
func NewStockHandler(ss services.StockService) *StockHandler {
	return &StockHandler{stockService: ss}
}

// GetStockLevels handles the paginated stock levels listing.
func (h *StockHandler) GetStockLevels(c *gin.Context) {
	var filters models.StockFilters
	var pagination models.Pagination

	if warehouseIDStr := c.Query("warehouse_id"); warehouseIDStr != "" {
		warehouseID, err := strconv.ParseInt(warehouseIDStr, 10, 64)
		if err != nil {
			utils.RespondValidationFailed(c, "warehouse_id must be an integer")
			return
		}
		filters.WarehouseID = &warehouseID
	}

	filters.StockFilter = models.StockFilter(c.DefaultQuery("stock_filter", string(models.StockFilterAll)))
	if !filters.StockFilter.IsValid() {
		utils.RespondValidationFailed(c, "stock_filter must be one of: all, low_stock, out_of_stock")
		return
	}
	filters.Search = c.Query("search")
	filters.Category = c.Query("category")

	pageStr := c.DefaultQuery("page", "1")
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		utils.RespondValidationFailed(c, "page must be a positive integer")
		return
	}
	limitStr := c.DefaultQuery("limit", strconv.Itoa(defaultPageLimit))
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		utils.RespondValidationFailed(c, "limit must be a positive integer")
		return
	}
	pagination = models.Pagination{Page: page, Limit: limit}

	result, err := h.stockService.GetStockLevels(filters, pagination)
	if err != nil {
		utils.LogError(err, "GetStockLevels: failed to aggregate stock levels")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeDataSource, "Failed to fetch stock levels.", ""))
		return
	}
	c.JSON(http.StatusOK, result)
}
