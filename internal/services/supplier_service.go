package services

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"inventory_dashboard_backend/internal/cache"
	"inventory_dashboard_backend/internal/models"
	"inventory_dashboard_backend/internal/repositories"
)

// ErrSupplierNotFound is returned when performance is requested for an
// unknown supplier.
var ErrSupplierNotFound = errors.New("supplier not found")

// Reliability score weights and normalization caps.
const (
	frequencyWeight   = 0.3
	deliveryWeight    = 0.4
	consistencyWeight = 0.3

	frequencyCap30Days   = 5.0  // orders in 30 days for a full frequency score
	consistencyCap90Days = 10.0 // orders in 90 days for a full consistency score
)

// SupplierService scores supplier reliability from purchase-order history and
// produces the performance leaderboard.
type SupplierService interface {
	CalculateSupplierPerformance(supplierID int64) (*models.SupplierPerformanceMetrics, error)
	GetSupplierPerformanceRankings(limit int) ([]models.SupplierRanking, error)
	GetRecentPurchases(limit int) ([]models.PurchaseOrder, error)
}

type supplierService struct {
	supplierRepo repositories.SupplierRepository
	resultCache  *cache.Cache
	now          func() time.Time
}

// NewSupplierService creates a new instance of SupplierService. The clock is
// injectable so time-window scoring is deterministic under test.
func NewSupplierService(supplierRepo repositories.SupplierRepository, resultCache *cache.Cache, now func() time.Time) SupplierService {
	if now == nil {
		now = time.Now
	}
	return &supplierService{
		supplierRepo: supplierRepo,
		resultCache:  resultCache,
		now:          now,
	}
}

func (s *supplierService) CalculateSupplierPerformance(supplierID int64) (*models.SupplierPerformanceMetrics, error) {
	key := cache.Key(cache.NSSupplierDetail, map[string]string{
		"supplier_id": strconv.FormatInt(supplierID, 10),
	})
	if cached, ok := s.resultCache.Get(key); ok {
		if metrics, ok := cached.(*models.SupplierPerformanceMetrics); ok {
			return metrics, nil
		}
	}

	if _, err := s.supplierRepo.GetSupplierByID(supplierID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrSupplierNotFound
		}
		return nil, fmt.Errorf("failed to load supplier %d: %w", supplierID, err)
	}
	orders, err := s.supplierRepo.GetPurchaseOrdersBySupplier(supplierID)
	if err != nil {
		return nil, fmt.Errorf("failed to load purchase orders for supplier %d: %w", supplierID, err)
	}

	metrics := buildSupplierPerformance(orders, s.now())
	s.resultCache.Set(key, &metrics, s.resultCache.Config().SupplierDetailTTL)
	return &metrics, nil
}

func (s *supplierService) GetSupplierPerformanceRankings(limit int) ([]models.SupplierRanking, error) {
	key := cache.Key(cache.NSSupplierRankings, map[string]string{
		"limit": strconv.Itoa(limit),
	})
	if cached, ok := s.resultCache.Get(key); ok {
		if rankings, ok := cached.([]models.SupplierRanking); ok {
			return rankings, nil
		}
	}

	suppliers, err := s.supplierRepo.GetActiveSuppliers()
	if err != nil {
		return nil, fmt.Errorf("failed to load active suppliers: %w", err)
	}
	orders, err := s.supplierRepo.GetPurchaseOrdersForActiveSuppliers()
	if err != nil {
		return nil, fmt.Errorf("failed to load purchase orders for rankings: %w", err)
	}

	rankings := buildSupplierRankings(suppliers, orders, limit, s.now())
	s.resultCache.Set(key, rankings, s.resultCache.Config().SupplierRankingsTTL)
	return rankings, nil
}

func (s *supplierService) GetRecentPurchases(limit int) ([]models.PurchaseOrder, error) {
	key := cache.Key(cache.NSRecentPurchases, map[string]string{
		"limit": strconv.Itoa(limit),
	})
	if cached, ok := s.resultCache.Get(key); ok {
		if orders, ok := cached.([]models.PurchaseOrder); ok {
			return orders, nil
		}
	}

	orders, err := s.supplierRepo.GetRecentPurchaseOrders(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent purchase orders: %w", err)
	}
	s.resultCache.Set(key, orders, s.resultCache.Config().RecentPurchasesTTL)
	return orders, nil
}

// buildSupplierPerformance scores one supplier's full order history at the
// given reference time. A supplier with no orders yields the zero value for
// every field.
func buildSupplierPerformance(orders []models.PurchaseOrder, now time.Time) models.SupplierPerformanceMetrics {
	metrics := models.SupplierPerformanceMetrics{}
	if len(orders) == 0 {
		return metrics
	}

	cutoff30 := now.AddDate(0, 0, -30)
	cutoff90 := now.AddDate(0, 0, -90)

	totalValue := 0.0
	deliveredOnTime := 0
	deliveredEligible := 0
	varianceSum := 0.0

	for _, po := range orders {
		totalValue += po.TotalAmount
		if po.OrderDate.After(cutoff30) {
			metrics.OrdersLast30Days++
		}
		if po.OrderDate.After(cutoff90) {
			metrics.OrdersLast90Days++
		}

		// Delivery metrics consider only delivered orders with a promised
		// date; negative variance means early.
		if po.Status == models.POStatusDelivered && po.ExpectedDeliveryDate != nil && po.CompletedAt != nil {
			varianceDays := po.CompletedAt.Sub(*po.ExpectedDeliveryDate).Hours() / 24
			varianceSum += varianceDays
			deliveredEligible++
			if varianceDays <= 0 {
				deliveredOnTime++
			}
		}
	}

	metrics.TotalOrders = len(orders)
	metrics.TotalValue = round2(totalValue)
	metrics.AverageOrderValue = round2(totalValue / float64(len(orders)))

	if deliveredEligible > 0 {
		metrics.OnTimeDeliveryRate = round2(100 * float64(deliveredOnTime) / float64(deliveredEligible))
		metrics.AverageDeliveryDays = round2(varianceSum / float64(deliveredEligible))
	}

	frequencyScore := minFloat(float64(metrics.OrdersLast30Days)/frequencyCap30Days, 1)
	deliveryScore := metrics.OnTimeDeliveryRate / 100
	consistencyScore := 0.0
	if metrics.OrdersLast90Days > 0 {
		consistencyScore = minFloat(float64(metrics.OrdersLast90Days)/consistencyCap90Days, 1)
	}
	metrics.ReliabilityScore = round2(
		frequencyWeight*frequencyScore + deliveryWeight*deliveryScore + consistencyWeight*consistencyScore,
	)
	return metrics
}

// buildSupplierRankings scores every active supplier, drops those with no
// order history, sorts by reliability descending and assigns contiguous
// 1-based ranks over the surviving set.
func buildSupplierRankings(suppliers []models.Supplier, orders []models.PurchaseOrder, limit int, now time.Time) []models.SupplierRanking {
	bySupplier := make(map[int64][]models.PurchaseOrder)
	for _, po := range orders {
		bySupplier[po.SupplierID] = append(bySupplier[po.SupplierID], po)
	}

	rankings := []models.SupplierRanking{}
	for _, supplier := range suppliers {
		history := bySupplier[supplier.ID]
		if len(history) == 0 {
			continue
		}
		rankings = append(rankings, models.SupplierRanking{
			Supplier:    supplier,
			Performance: buildSupplierPerformance(history, now),
		})
	}

	sort.Slice(rankings, func(i, j int) bool {
		si, sj := rankings[i].Performance.ReliabilityScore, rankings[j].Performance.ReliabilityScore
		if si != sj {
			return si > sj
		}
		return rankings[i].Supplier.ID < rankings[j].Supplier.ID
	})

	if limit > 0 && limit < len(rankings) {
		rankings = rankings[:limit]
	}
	for i := range rankings {
		rankings[i].Rank = i + 1
	}
	return rankings
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
