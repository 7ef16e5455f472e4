package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"inventory_dashboard_backend/internal/services"
	"inventory_dashboard_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

const (
	defaultRankingsLimit        = 10
	defaultRecentPurchasesLimit = 10
)

// SupplierHandler holds the supplier service.
type SupplierHandler struct {
	supplierService services.SupplierService
}

// NewSupplierHandler creates a new SupplierHandler.
func NewSupplierHandler(ss services.SupplierService) *SupplierHandler {
	return &SupplierHandler{supplierService: ss}
}

// GetSupplierPerformance handles per-supplier performance metrics.
func (h *SupplierHandler) GetSupplierPerformance(c *gin.Context) {
	supplierID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondValidationFailed(c, "supplier id must be an integer")
		return
	}

	metrics, err := h.supplierService.CalculateSupplierPerformance(supplierID)
	if err != nil {
		if errors.Is(err, services.ErrSupplierNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Supplier not found.", ""))
			return
		}
		utils.LogError(err, "GetSupplierPerformance: failed to score supplier")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeDataSource, "Failed to calculate supplier performance.", ""))
		return
	}
	c.JSON(http.StatusOK, metrics)
}

// GetSupplierRankings handles the supplier performance leaderboard.
func (h *SupplierHandler) GetSupplierRankings(c *gin.Context) {
	limit, ok := parseLimit(c, defaultRankingsLimit)
	if !ok {
		return
	}

	rankings, err := h.supplierService.GetSupplierPerformanceRankings(limit)
	if err != nil {
		utils.LogError(err, "GetSupplierRankings: failed to rank suppliers")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeDataSource, "Failed to calculate supplier rankings.", ""))
		return
	}
	c.JSON(http.StatusOK, rankings)
}

// GetRecentPurchases handles the recent purchase orders listing.
func (h *SupplierHandler) GetRecentPurchases(c *gin.Context) {
	limit, ok := parseLimit(c, defaultRecentPurchasesLimit)
	if !ok {
		return
	}

	orders, err := h.supplierService.GetRecentPurchases(limit)
	if err != nil {
		utils.LogError(err, "GetRecentPurchases: failed to fetch recent purchases")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeDataSource, "Failed to fetch recent purchases.", ""))
		return
	}
	c.JSON(http.StatusOK, orders)
}

func parseLimit(c *gin.Context, fallback int) (int, bool) {
	limitStr := c.DefaultQuery("limit", strconv.Itoa(fallback))
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		utils.RespondValidationFailed(c, "limit must be a positive integer")
		return 0, false
	}
	return limit, true
}
