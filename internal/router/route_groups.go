package router

import (
	"inventory_dashboard_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

func SetupPublicAuthRoutes(group *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	group.POST("/login", authHandler.LoginUser)
}

func SetupAuthenticatedAuthRoutes(group *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	group.GET("/me", authHandler.GetCurrentUser)
}

func SetupStockRoutes(group *gin.RouterGroup, stockHandler *handlers.StockHandler) {
	group.GET("/stock-levels", stockHandler.GetStockLevels)
}

func SetupMetricsRoutes(group *gin.RouterGroup, metricsHandler *handlers.MetricsHandler) {
	group.GET("/metrics/summary", metricsHandler.GetSummaryMetrics)
}

func SetupSupplierRoutes(group *gin.RouterGroup, supplierHandler *handlers.SupplierHandler) {
	group.GET("/suppliers/rankings", supplierHandler.GetSupplierRankings)
	group.GET("/suppliers/:id/performance", supplierHandler.GetSupplierPerformance)
	group.GET("/purchases/recent", supplierHandler.GetRecentPurchases)
}

func SetupWarehouseRoutes(group *gin.RouterGroup, warehouseHandler *handlers.WarehouseHandler) {
	group.GET("/warehouses/distribution", warehouseHandler.GetWarehouseDistribution)
}
