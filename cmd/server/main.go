package main

import (
	"log"
	"net/http"
	"os"
	"strings"

	"inventory_dashboard_backend/internal/cache"
	"inventory_dashboard_backend/internal/database"
	router_pkg "inventory_dashboard_backend/internal/router"
	"inventory_dashboard_backend/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	utils.LoadDotEnv()
	utils.InitLogger()
	utils.SetJWTSecret(os.Getenv("JWT_SECRET"))

	// Load database configuration from environment variables
	dbHost := utils.Getenv("DB_HOST", "localhost")
	dbPort := utils.Getenv("DB_PORT", "5432")
	dbUser := utils.Getenv("DB_USER", "inventory_user")
	dbPassword := utils.Getenv("DB_PASSWORD", "inventory_password")
	dbName := utils.Getenv("DB_NAME", "inventory_dashboard_db")
	dbSSLMode := utils.Getenv("DB_SSLMODE", "disable")

	db, err := database.Connect(dbHost, dbPort, dbUser, dbPassword, dbName, dbSSLMode)
	if err != nil {
		utils.LogError(err, "Failed to connect to database")
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	utils.LogInfo("Database connected", map[string]interface{}{"host": dbHost, "database": dbName})

	// Result cache: explicit instance with a defined lifecycle. TTLs are
	// tunable per deployment via *_TTL_SECONDS variables.
	cacheCfg := cache.DefaultConfig()
	cacheCfg.StockLevelsTTL = utils.GetenvDuration("CACHE_STOCK_LEVELS_TTL_SECONDS", cacheCfg.StockLevelsTTL)
	cacheCfg.SummaryMetricsTTL = utils.GetenvDuration("CACHE_SUMMARY_METRICS_TTL_SECONDS", cacheCfg.SummaryMetricsTTL)
	cacheCfg.SupplierDetailTTL = utils.GetenvDuration("CACHE_SUPPLIER_DETAIL_TTL_SECONDS", cacheCfg.SupplierDetailTTL)
	cacheCfg.SupplierRankingsTTL = utils.GetenvDuration("CACHE_SUPPLIER_RANKINGS_TTL_SECONDS", cacheCfg.SupplierRankingsTTL)
	cacheCfg.RecentPurchasesTTL = utils.GetenvDuration("CACHE_RECENT_PURCHASES_TTL_SECONDS", cacheCfg.RecentPurchasesTTL)
	cacheCfg.WarehouseDistributionTTL = utils.GetenvDuration("CACHE_WAREHOUSE_TTL_SECONDS", cacheCfg.WarehouseDistributionTTL)
	cacheCfg.SweepInterval = utils.GetenvDuration("CACHE_SWEEP_INTERVAL_SECONDS", cacheCfg.SweepInterval)

	resultCache, err := cache.New(cacheCfg)
	if err != nil {
		utils.LogError(err, "Invalid cache configuration")
		log.Fatalf("Invalid cache configuration: %v", err)
	}
	defer resultCache.Stop()

	engine := gin.Default()
	engine.Use(utils.GinLogger())

	// CORS configuration
	corsAllowedOriginsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	var allowedOrigins []string
	if corsAllowedOriginsEnv != "" {
		allowedOrigins = strings.Split(corsAllowedOriginsEnv, ",")
	} else {
		allowedOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	}

	config := cors.DefaultConfig()
	config.AllowOrigins = allowedOrigins
	config.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	config.AllowCredentials = true
	engine.Use(cors.New(config))

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	router_pkg.Setup(engine, db, resultCache)

	port := utils.Getenv("PORT", "8080")
	utils.LogInfo("Server starting", map[string]interface{}{"port": port})

	if err := engine.Run(":" + port); err != nil {
		utils.LogError(err, "Failed to start server")
		log.Fatalf("Failed to start server: %v", err)
	}
}
