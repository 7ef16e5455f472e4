package router

import (
	"database/sql"
	"time"

	"inventory_dashboard_backend/internal/cache"
	"inventory_dashboard_backend/internal/handlers"
	"inventory_dashboard_backend/internal/middleware"
	"inventory_dashboard_backend/internal/repositories"
	"inventory_dashboard_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// Setup initializes the routing for the application. The result cache is
// constructed by main and injected here so its lifecycle (and shutdown) stays
// explicit.
func Setup(engine *gin.Engine, db *sql.DB, resultCache *cache.Cache) {
	// Initialize Repositories
	productRepo := repositories.NewProductRepository(db)
	supplierRepo := repositories.NewSupplierRepository(db)
	warehouseRepo := repositories.NewWarehouseRepository(db)
	userRepo := repositories.NewUserRepository(db)

	// Initialize Services
	stockService := services.NewStockService(productRepo, resultCache)
	metricsService := services.NewMetricsService(productRepo, supplierRepo, resultCache)
	supplierService := services.NewSupplierService(supplierRepo, resultCache, time.Now)
	warehouseService := services.NewWarehouseService(warehouseRepo, resultCache)
	authService := services.NewAuthService(userRepo)

	// Initialize Handlers
	stockHandler := handlers.NewStockHandler(stockService)
	metricsHandler := handlers.NewMetricsHandler(metricsService)
	supplierHandler := handlers.NewSupplierHandler(supplierService)
	warehouseHandler := handlers.NewWarehouseHandler(warehouseService)
	authHandler := handlers.NewAuthHandler(authService)

	apiV1 := engine.Group("/api/v1")

	// Public authentication routes
	SetupPublicAuthRoutes(apiV1.Group("/auth"), authHandler)

	// Authenticated dashboard routes
	authenticated := apiV1.Group("")
	authenticated.Use(middleware.AuthMiddleware())
	{
		SetupAuthenticatedAuthRoutes(authenticated.Group("/auth"), authHandler)
		SetupStockRoutes(authenticated, stockHandler)
		SetupMetricsRoutes(authenticated, metricsHandler)
		SetupSupplierRoutes(authenticated, supplierHandler)
		SetupWarehouseRoutes(authenticated, warehouseHandler)
	}
}
