package models

import "time"

// Product represents a sellable item tracked by the inventory dashboard.
// Product identity is immutable; rows are mutated by the product-management
// flows, never by the metrics engine.
type Product struct {
	ID           int64     `json:"id" db:"id"`
	SKU          string    `json:"sku" db:"sku" binding:"required"`
	Name         string    `json:"name" db:"name" binding:"required"`
	Category     string    `json:"category" db:"category"`
	SalePrice    float64   `json:"sale_price" db:"sale_price"`
	CostPrice    float64   `json:"cost_price" db:"cost_price"`
	ReorderPoint int       `json:"reorder_point" db:"reorder_point"` // threshold below which stock is considered low
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Location represents a warehouse that holds stock.
type Location struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name" binding:"required"`
	Address   *string   `json:"address,omitempty" db:"address"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// StockRecord is the on-hand quantity of one product at one location.
// UnitCost is nullable: not every stock intake records an acquisition cost.
type StockRecord struct {
	ID             int64     `json:"id" db:"id"`
	ProductID      int64     `json:"product_id" db:"product_id" binding:"required"`
	LocationID     int64     `json:"location_id" db:"location_id" binding:"required"`
	QuantityOnHand int       `json:"quantity_on_hand" db:"quantity_on_hand"`
	UnitCost       *float64  `json:"unit_cost,omitempty" db:"unit_cost"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// ProductStockRow is one row of the active-products LEFT JOIN stock_records
// read used by the stock and metrics aggregations. The location fields are
// nil for a product that has no stock record (in the requested warehouse).
type ProductStockRow struct {
	ProductID    int64
	SKU          string
	Name         string
	Category     string
	CostPrice    float64
	ReorderPoint int

	LocationID     *int64
	LocationName   *string
	QuantityOnHand *int
	UnitCost       *float64
}

// HasStockRecord reports whether this row carries a joined stock record.
func (r ProductStockRow) HasStockRecord() bool {
	return r.LocationID != nil
}
