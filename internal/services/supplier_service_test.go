package services

import (
	"testing"
	"time"

	"inventory_dashboard_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var scoringNow = time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return scoringNow }

func daysAgo(days int) time.Time { return scoringNow.AddDate(0, 0, -days) }

func deliveredOrder(amount float64, orderedDaysAgo int, varianceDays int) models.PurchaseOrder {
	expected := daysAgo(orderedDaysAgo - 5)
	completed := expected.Add(time.Duration(varianceDays) * 24 * time.Hour)
	return models.PurchaseOrder{
		SupplierID:           1,
		OrderDate:            daysAgo(orderedDaysAgo),
		ExpectedDeliveryDate: timePtr(expected),
		Status:               models.POStatusDelivered,
		TotalAmount:          amount,
		CompletedAt:          timePtr(completed),
	}
}

// TestBuildSupplierPerformance_FullHistory is the three-order scenario:
// totals 1500/2000/800, two delivered with variances -1 and +2 days.
func TestBuildSupplierPerformance_FullHistory(t *testing.T) {
	orders := []models.PurchaseOrder{
		deliveredOrder(1500, 10, -1),
		deliveredOrder(2000, 40, 2),
		{
			SupplierID:  1,
			OrderDate:   daysAgo(100),
			Status:      models.POStatusPending,
			TotalAmount: 800,
		},
	}

	metrics := buildSupplierPerformance(orders, scoringNow)

	assert.Equal(t, 3, metrics.TotalOrders)
	assert.Equal(t, 4300.0, metrics.TotalValue)
	assert.Equal(t, 1433.33, metrics.AverageOrderValue)
	assert.Equal(t, 1, metrics.OrdersLast30Days)
	assert.Equal(t, 2, metrics.OrdersLast90Days)
	assert.Equal(t, 50.0, metrics.OnTimeDeliveryRate)
	assert.Equal(t, 0.5, metrics.AverageDeliveryDays)

	// 0.3*min(1/5,1) + 0.4*(50/100) + 0.3*min(2/10,1) = 0.32
	assert.Equal(t, 0.32, metrics.ReliabilityScore)
}

// TestBuildSupplierPerformance_NoOrders: every field zero, never absent.
func TestBuildSupplierPerformance_NoOrders(t *testing.T) {
	metrics := buildSupplierPerformance(nil, scoringNow)
	assert.Equal(t, models.SupplierPerformanceMetrics{}, metrics)
}

// TestBuildSupplierPerformance_NoEligibleDeliveries: undelivered orders or
// deliveries without a promised date contribute nothing to delivery metrics.
func TestBuildSupplierPerformance_NoEligibleDeliveries(t *testing.T) {
	completed := daysAgo(2)
	orders := []models.PurchaseOrder{
		{OrderDate: daysAgo(10), Status: models.POStatusShipped, TotalAmount: 100},
		// Delivered but no expected date: ineligible.
		{OrderDate: daysAgo(20), Status: models.POStatusDelivered, TotalAmount: 200, CompletedAt: timePtr(completed)},
	}

	metrics := buildSupplierPerformance(orders, scoringNow)
	assert.Equal(t, 0.0, metrics.OnTimeDeliveryRate)
	assert.Equal(t, 0.0, metrics.AverageDeliveryDays)
	assert.Equal(t, 2, metrics.TotalOrders)
}

// TestBuildSupplierPerformance_ScoreBounds checks the score stays in [0,1]
// even for a heavy, perfectly on-time order history.
func TestBuildSupplierPerformance_ScoreBounds(t *testing.T) {
	orders := []models.PurchaseOrder{}
	for i := 0; i < 25; i++ {
		orders = append(orders, deliveredOrder(1000, (i%28)+1, -1))
	}

	metrics := buildSupplierPerformance(orders, scoringNow)
	assert.GreaterOrEqual(t, metrics.ReliabilityScore, 0.0)
	assert.LessOrEqual(t, metrics.ReliabilityScore, 1.0)
	assert.Equal(t, 1.0, metrics.ReliabilityScore)
}

func TestCalculateSupplierPerformance_UnknownSupplier(t *testing.T) {
	repo := &mockSupplierRepo{supplierByID: map[int64]*models.Supplier{}}
	svc := NewSupplierService(repo, newTestCache(t), fixedNow)

	_, err := svc.CalculateSupplierPerformance(99)
	assert.ErrorIs(t, err, ErrSupplierNotFound)
}

func TestGetSupplierPerformanceRankings(t *testing.T) {
	suppliers := []models.Supplier{
		{ID: 1, Name: "Acme", IsActive: true},
		{ID: 2, Name: "Globex", IsActive: true},
		{ID: 3, Name: "Initech", IsActive: true}, // no orders: excluded
	}
	orders := map[int64][]models.PurchaseOrder{
		1: {deliveredOrder(1000, 10, 2)}, // late delivery: lower score
		2: {
			deliveredOrder(1000, 5, -1),
			deliveredOrder(1000, 15, -2),
			deliveredOrder(1000, 60, 0),
		},
	}
	for id, list := range orders {
		for i := range list {
			list[i].SupplierID = id
		}
	}
	repo := &mockSupplierRepo{suppliers: suppliers, orders: orders}
	svc := NewSupplierService(repo, newTestCache(t), fixedNow)

	rankings, err := svc.GetSupplierPerformanceRankings(10)
	require.NoError(t, err)

	require.Len(t, rankings, 2)
	assert.Equal(t, "Globex", rankings[0].Supplier.Name)
	assert.Equal(t, 1, rankings[0].Rank)
	assert.Equal(t, "Acme", rankings[1].Supplier.Name)
	assert.Equal(t, 2, rankings[1].Rank)
	assert.Greater(t, rankings[0].Performance.ReliabilityScore, rankings[1].Performance.ReliabilityScore)
}

func TestGetSupplierPerformanceRankings_LimitAndCache(t *testing.T) {
	suppliers := []models.Supplier{
		{ID: 1, Name: "Acme", IsActive: true},
		{ID: 2, Name: "Globex", IsActive: true},
	}
	orders := map[int64][]models.PurchaseOrder{
		1: {{SupplierID: 1, OrderDate: daysAgo(3), Status: models.POStatusPending, TotalAmount: 10}},
		2: {{SupplierID: 2, OrderDate: daysAgo(4), Status: models.POStatusPending, TotalAmount: 20}},
	}
	repo := &mockSupplierRepo{suppliers: suppliers, orders: orders}
	svc := NewSupplierService(repo, newTestCache(t), fixedNow)

	rankings, err := svc.GetSupplierPerformanceRankings(1)
	require.NoError(t, err)
	require.Len(t, rankings, 1)
	assert.Equal(t, 1, rankings[0].Rank)

	callsAfterFirst := repo.calls
	_, err = svc.GetSupplierPerformanceRankings(1)
	require.NoError(t, err)
	assert.Equal(t, callsAfterFirst, repo.calls, "second identical request should be served from cache")
}

func TestGetRecentPurchases(t *testing.T) {
	repo := &mockSupplierRepo{recent: []models.PurchaseOrder{
		{ID: 3, PONumber: "PO-3", OrderDate: daysAgo(1)},
		{ID: 2, PONumber: "PO-2", OrderDate: daysAgo(2)},
		{ID: 1, PONumber: "PO-1", OrderDate: daysAgo(3)},
	}}
	svc := NewSupplierService(repo, newTestCache(t), fixedNow)

	orders, err := svc.GetRecentPurchases(2)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "PO-3", orders[0].PONumber)
}
