package services

import (
	"testing"

	"inventory_dashboard_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func warehouseRow(locationID int64, locationName string, productID int64, productName, sku, category string, costPrice float64, qty int, unitCost *float64) models.WarehouseStockRow {
	return models.WarehouseStockRow{
		LocationID:     locationID,
		LocationName:   locationName,
		ProductID:      productID,
		ProductName:    productName,
		SKU:            sku,
		Category:       category,
		CostPrice:      costPrice,
		QuantityOnHand: qty,
		UnitCost:       unitCost,
	}
}

func TestGetWarehouseDistribution_GroupsByLocation(t *testing.T) {
	repo := &mockWarehouseRepo{rows: []models.WarehouseStockRow{
		warehouseRow(1, "Central", 1, "Widget", "WID-1", "tools", 4, 10, floatPtr(5)),
		warehouseRow(1, "Central", 2, "Bolt", "BLT-1", "parts", 1, 100, floatPtr(2)),
		warehouseRow(2, "North", 1, "Widget", "WID-1", "tools", 4, 3, floatPtr(5)),
	}}
	svc := NewWarehouseService(repo, newTestCache(t))

	distribution, err := svc.GetWarehouseDistribution(models.WarehouseFilters{})
	require.NoError(t, err)
	require.Len(t, distribution, 2)

	central := distribution[0]
	assert.Equal(t, "Central", central.Location.Name)
	assert.Equal(t, 2, central.TotalProducts)
	assert.Equal(t, 110, central.TotalQuantity)
	assert.Equal(t, 250.0, central.TotalValue) // 10*5 + 100*2
	require.Len(t, central.Products, 2)
	assert.Equal(t, "Bolt", central.Products[0].Name)

	north := distribution[1]
	assert.Equal(t, "North", north.Location.Name)
	assert.Equal(t, 1, north.TotalProducts)
	assert.Equal(t, 15.0, north.TotalValue)
}

// TestGetWarehouseDistribution_CostFallback: a record without a positive unit
// cost is valued at the product's cost price.
func TestGetWarehouseDistribution_CostFallback(t *testing.T) {
	repo := &mockWarehouseRepo{rows: []models.WarehouseStockRow{
		warehouseRow(1, "Central", 1, "Widget", "WID-1", "tools", 4, 10, nil),
	}}
	svc := NewWarehouseService(repo, newTestCache(t))

	distribution, err := svc.GetWarehouseDistribution(models.WarehouseFilters{})
	require.NoError(t, err)
	require.Len(t, distribution, 1)
	assert.Equal(t, 40.0, distribution[0].TotalValue)
}

func TestGetWarehouseDistribution_Filters(t *testing.T) {
	rows := []models.WarehouseStockRow{
		warehouseRow(1, "Central", 1, "Widget", "WID-1", "tools", 4, 10, floatPtr(5)),
		warehouseRow(1, "Central", 2, "Bolt", "BLT-1", "parts", 1, 100, floatPtr(2)),
		warehouseRow(2, "North", 2, "Bolt", "BLT-1", "parts", 1, 5, floatPtr(2)),
	}

	// Product filter keeps only the widget's contributions.
	byProduct := aggregateWarehouseDistribution(rows, models.WarehouseFilters{ProductID: int64Ptr(1)})
	require.Len(t, byProduct, 1)
	assert.Equal(t, "Central", byProduct[0].Location.Name)
	assert.Equal(t, 1, byProduct[0].TotalProducts)

	// Category filter.
	byCategory := aggregateWarehouseDistribution(rows, models.WarehouseFilters{Category: "parts"})
	require.Len(t, byCategory, 2)
	assert.Equal(t, 200.0, byCategory[0].TotalValue)

	// Minimum aggregate value cuts the small North holding.
	minValue := 50.0
	byValue := aggregateWarehouseDistribution(rows, models.WarehouseFilters{MinValue: &minValue})
	require.Len(t, byValue, 1)
	assert.Equal(t, "Central", byValue[0].Location.Name)
}

func TestGetWarehouseDistribution_EmptyInput(t *testing.T) {
	svc := NewWarehouseService(&mockWarehouseRepo{}, newTestCache(t))

	distribution, err := svc.GetWarehouseDistribution(models.WarehouseFilters{})
	require.NoError(t, err)
	assert.Empty(t, distribution)
}

func TestGetWarehouseDistribution_Cached(t *testing.T) {
	repo := &mockWarehouseRepo{rows: []models.WarehouseStockRow{
		warehouseRow(1, "Central", 1, "Widget", "WID-1", "tools", 4, 10, floatPtr(5)),
	}}
	svc := NewWarehouseService(repo, newTestCache(t))

	_, err := svc.GetWarehouseDistribution(models.WarehouseFilters{})
	require.NoError(t, err)
	_, err = svc.GetWarehouseDistribution(models.WarehouseFilters{})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.calls)

	_, err = svc.GetWarehouseDistribution(models.WarehouseFilters{Category: "tools"})
	require.NoError(t, err)
	assert.Equal(t, 2, repo.calls)
}
