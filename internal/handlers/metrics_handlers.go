package handlers

import (
	"net/http"
	"strconv"

	"inventory_dashboard_backend/internal/services"
	"inventory_dashboard_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// MetricsHandler holds the metrics service.
type MetricsHandler struct {
	metricsService services.MetricsService
}

// NewMetricsHandler creates a new MetricsHandler.
func NewMetricsHandler(ms services.MetricsService) *MetricsHandler {
	return &MetricsHandler{metricsService: ms}
}

// GetSummaryMetrics handles the dashboard headline metrics.
func (h *MetricsHandler) GetSummaryMetrics(c *gin.Context) {
	var warehouseID *int64
	if warehouseIDStr := c.Query("warehouse_id"); warehouseIDStr != "" {
		id, err := strconv.ParseInt(warehouseIDStr, 10, 64)
		if err != nil {
			utils.RespondValidationFailed(c, "warehouse_id must be an integer")
			return
		}
		warehouseID = &id
	}

	metrics, err := h.metricsService.CalculateSummaryMetrics(warehouseID)
	if err != nil {
		utils.LogError(err, "GetSummaryMetrics: failed to calculate summary metrics")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeDataSource, "Failed to calculate summary metrics.", ""))
		return
	}
	c.JSON(http.StatusOK, metrics)
}
