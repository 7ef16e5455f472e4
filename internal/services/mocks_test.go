package services

import (
	"testing"
	"time"

	"inventory_dashboard_backend/internal/cache"
	"inventory_dashboard_backend/internal/models"
	"inventory_dashboard_backend/internal/repositories"

	"github.com/stretchr/testify/require"
)

// errNotFoundForTest is the sentinel unknown-record error the mocks return.
var errNotFoundForTest = repositories.ErrNotFound

// mockProductRepo serves canned rows and counts calls so tests can observe
// cache hits and misses.
type mockProductRepo struct {
	rows  []models.ProductStockRow
	err   error
	calls int
}

func (m *mockProductRepo) GetProductStockRows(warehouseID *int64) ([]models.ProductStockRow, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.rows, nil
}

type mockSupplierRepo struct {
	suppliers     []models.Supplier
	supplierByID  map[int64]*models.Supplier
	orders        map[int64][]models.PurchaseOrder
	recent        []models.PurchaseOrder
	supplierCount int
	err           error
	calls         int
}

func (m *mockSupplierRepo) GetSupplierByID(supplierID int64) (*models.Supplier, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	s, ok := m.supplierByID[supplierID]
	if !ok {
		return nil, errNotFoundForTest
	}
	return s, nil
}

func (m *mockSupplierRepo) GetActiveSuppliers() ([]models.Supplier, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.suppliers, nil
}

func (m *mockSupplierRepo) CountActiveSuppliers() (int, error) {
	m.calls++
	if m.err != nil {
		return 0, m.err
	}
	return m.supplierCount, nil
}

func (m *mockSupplierRepo) GetPurchaseOrdersBySupplier(supplierID int64) ([]models.PurchaseOrder, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.orders[supplierID], nil
}

func (m *mockSupplierRepo) GetPurchaseOrdersForActiveSuppliers() ([]models.PurchaseOrder, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	all := []models.PurchaseOrder{}
	for _, orders := range m.orders {
		all = append(all, orders...)
	}
	return all, nil
}

func (m *mockSupplierRepo) GetRecentPurchaseOrders(limit int) ([]models.PurchaseOrder, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	if limit < len(m.recent) {
		return m.recent[:limit], nil
	}
	return m.recent, nil
}

type mockWarehouseRepo struct {
	rows  []models.WarehouseStockRow
	err   error
	calls int
}

func (m *mockWarehouseRepo) GetWarehouseStockRows() ([]models.WarehouseStockRow, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.rows, nil
}

func newTestCache(t *testing.T) *cache.Cache {
	t.Helper()
	c, err := cache.New(cache.DefaultConfig())
	require.NoError(t, err)
	t.Cleanup(c.Stop)
	return c
}

// Pointer helpers for literal fixtures.
func intPtr(v int) *int              { return &v }
func int64Ptr(v int64) *int64        { return &v }
func floatPtr(v float64) *float64    { return &v }
func strPtr(v string) *string        { return &v }
func timePtr(v time.Time) *time.Time { return &v }

// stockRow builds a joined product/stock fixture row.
func stockRow(productID int64, name, sku, category string, costPrice float64, reorderPoint int, locationID int64, locationName string, qty int, unitCost *float64) models.ProductStockRow {
	return models.ProductStockRow{
		ProductID:      productID,
		SKU:            sku,
		Name:           name,
		Category:       category,
		CostPrice:      costPrice,
		ReorderPoint:   reorderPoint,
		LocationID:     int64Ptr(locationID),
		LocationName:   strPtr(locationName),
		QuantityOnHand: intPtr(qty),
		UnitCost:       unitCost,
	}
}

// bareProductRow builds a product row without any stock record joined.
func bareProductRow(productID int64, name, sku, category string, costPrice float64, reorderPoint int) models.ProductStockRow {
	return models.ProductStockRow{
		ProductID:    productID,
		SKU:          sku,
		Name:         name,
		Category:     category,
		CostPrice:    costPrice,
		ReorderPoint: reorderPoint,
	}
}
