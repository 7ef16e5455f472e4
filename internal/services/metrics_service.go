package services

import (
	"fmt"
	"strconv"

	"inventory_dashboard_backend/internal/cache"
	"inventory_dashboard_backend/internal/models"
	"inventory_dashboard_backend/internal/repositories"
)

// lowStockDisplayThreshold is the informational threshold the dashboard shows
// next to the low-stock counter. It coincides with the critical cutoff.
const lowStockDisplayThreshold = 50

// MetricsService computes the five dashboard headline metrics.
type MetricsService interface {
	CalculateSummaryMetrics(warehouseID *int64) (*models.SummaryMetrics, error)
}

type metricsService struct {
	productRepo  repositories.ProductRepository
	supplierRepo repositories.SupplierRepository
	resultCache  *cache.Cache
}

// NewMetricsService creates a new instance of MetricsService.
func NewMetricsService(productRepo repositories.ProductRepository, supplierRepo repositories.SupplierRepository, resultCache *cache.Cache) MetricsService {
	return &metricsService{
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
		resultCache:  resultCache,
	}
}

func (s *metricsService) CalculateSummaryMetrics(warehouseID *int64) (*models.SummaryMetrics, error) {
	fields := map[string]string{}
	if warehouseID != nil {
		fields["warehouse_id"] = strconv.FormatInt(*warehouseID, 10)
	}
	key := cache.Key(cache.NSSummaryMetrics, fields)
	if cached, ok := s.resultCache.Get(key); ok {
		if metrics, ok := cached.(*models.SummaryMetrics); ok {
			return metrics, nil
		}
	}

	rows, err := s.productRepo.GetProductStockRows(warehouseID)
	if err != nil {
		return nil, fmt.Errorf("failed to load stock rows for summary metrics: %w", err)
	}
	supplierCount, err := s.supplierRepo.CountActiveSuppliers()
	if err != nil {
		return nil, fmt.Errorf("failed to count active suppliers: %w", err)
	}

	metrics := buildSummaryMetrics(rows, supplierCount, warehouseID != nil)
	s.resultCache.Set(key, metrics, s.resultCache.Config().SummaryMetricsTTL)
	return metrics, nil
}

// buildSummaryMetrics is the pure calculator over pre-fetched rows. Empty
// input yields all-zero metrics, never an error. When the rows were
// warehouse-restricted, the product counter only counts products that hold
// stock records in that warehouse.
func buildSummaryMetrics(rows []models.ProductStockRow, supplierCount int, warehouseRestricted bool) *models.SummaryMetrics {
	groups := groupStockRows(rows)

	totalProducts := 0
	lowStock := 0
	outOfStock := 0
	totalStockValue := 0.0
	excludedProducts := 0

	for _, g := range groups {
		// A warehouse-restricted count only includes products actually
		// stocked in that warehouse.
		if !warehouseRestricted || len(g.records) > 0 {
			totalProducts++
		}

		totalQuantity := 0
		valued := false
		for _, rec := range g.records {
			qty := 0
			if rec.QuantityOnHand != nil {
				qty = *rec.QuantityOnHand
			}
			totalQuantity += qty
			if rec.UnitCost != nil && *rec.UnitCost > 0 {
				totalStockValue += float64(qty) * *rec.UnitCost
				valued = true
			}
		}
		if len(g.records) > 0 && !valued {
			excludedProducts++
		}

		if g.reorderPoint > 0 && totalQuantity > 0 && totalQuantity < g.reorderPoint {
			lowStock++
		}
		if totalQuantity == 0 {
			outOfStock++
		}
	}

	return &models.SummaryMetrics{
		TotalProducts: models.CountMetric{
			Value:  totalProducts,
			Status: totalProductsStatus(totalProducts),
		},
		LowStock: models.LowStockMetric{
			Value:     lowStock,
			Status:    lowStockStatus(lowStock),
			Threshold: lowStockDisplayThreshold,
		},
		OutOfStock: models.CountMetric{
			Value:  outOfStock,
			Status: outOfStockStatus(outOfStock),
		},
		Suppliers: models.CountMetric{
			Value:  supplierCount,
			Status: suppliersStatus(supplierCount),
		},
		TotalStockValue: models.StockValueMetric{
			Value:            round2(totalStockValue),
			Status:           stockValueStatus(totalStockValue),
			ExcludedProducts: excludedProducts,
		},
	}
}

func totalProductsStatus(count int) models.MetricStatus {
	switch {
	case count == 0:
		return models.MetricStatusCritical
	case count < 10:
		return models.MetricStatusWarning
	default:
		return models.MetricStatusNormal
	}
}

func lowStockStatus(count int) models.MetricStatus {
	switch {
	case count == 0:
		return models.MetricStatusNormal
	case count >= 50:
		return models.MetricStatusCritical
	case count >= 20:
		return models.MetricStatusWarning
	default:
		return models.MetricStatusNormal
	}
}

func outOfStockStatus(count int) models.MetricStatus {
	switch {
	case count == 0:
		return models.MetricStatusNormal
	case count >= 10:
		return models.MetricStatusCritical
	case count >= 5:
		return models.MetricStatusWarning
	default:
		return models.MetricStatusNormal
	}
}

func suppliersStatus(count int) models.MetricStatus {
	switch {
	case count == 0:
		return models.MetricStatusCritical
	case count < 5:
		return models.MetricStatusWarning
	default:
		return models.MetricStatusNormal
	}
}

func stockValueStatus(value float64) models.MetricStatus {
	switch {
	case value == 0:
		return models.MetricStatusCritical
	case value < 10000:
		return models.MetricStatusWarning
	default:
		return models.MetricStatusNormal
	}
}
