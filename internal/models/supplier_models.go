package models

import "time"

// PurchaseOrder status constants. The scorer reads all of them; delivery
// metrics only consider delivered orders.
const (
	POStatusPending   = "pending"
	POStatusConfirmed = "confirmed"
	POStatusShipped   = "shipped"
	POStatusDelivered = "delivered"
	POStatusCancelled = "cancelled"
)

// Supplier represents a vendor purchase orders are placed with.
type Supplier struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name" binding:"required"`
	ContactName  *string   `json:"contact_name,omitempty" db:"contact_name"`
	ContactEmail *string   `json:"contact_email,omitempty" db:"contact_email"`
	ContactPhone *string   `json:"contact_phone,omitempty" db:"contact_phone"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// PurchaseOrder is one order placed with a supplier. CompletedAt is set when
// the order reaches the delivered status.
type PurchaseOrder struct {
	ID                   int64      `json:"id" db:"id"`
	PONumber             string     `json:"po_number" db:"po_number"`
	SupplierID           int64      `json:"supplier_id" db:"supplier_id"`
	OrderDate            time.Time  `json:"order_date" db:"order_date"`
	ExpectedDeliveryDate *time.Time `json:"expected_delivery_date,omitempty" db:"expected_delivery_date"`
	Status               string     `json:"status" db:"status"`
	TotalAmount          float64    `json:"total_amount" db:"total_amount"`
	CompletedAt          *time.Time `json:"completed_at,omitempty" db:"completed_at"`
	CreatedAt            time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at" db:"updated_at"`

	SupplierName *string `json:"supplier_name,omitempty"` // joined for list views
}

// PurchaseOrderLine is one product line of a purchase order.
type PurchaseOrderLine struct {
	ID               int64   `json:"id" db:"id"`
	PurchaseOrderID  int64   `json:"purchase_order_id" db:"purchase_order_id"`
	ProductID        int64   `json:"product_id" db:"product_id"`
	QuantityOrdered  int     `json:"quantity_ordered" db:"quantity_ordered"`
	QuantityReceived int     `json:"quantity_received" db:"quantity_received"`
	UnitPrice        float64 `json:"unit_price" db:"unit_price"`
}

// SupplierPerformanceMetrics is the scorer's output for one supplier. A
// supplier with no order history yields the zero value, never nil.
type SupplierPerformanceMetrics struct {
	TotalOrders         int     `json:"total_orders"`
	TotalValue          float64 `json:"total_value"`
	AverageOrderValue   float64 `json:"average_order_value"`
	OrdersLast30Days    int     `json:"orders_last_30_days"`
	OrdersLast90Days    int     `json:"orders_last_90_days"`
	OnTimeDeliveryRate  float64 `json:"on_time_delivery_rate"`
	AverageDeliveryDays float64 `json:"average_delivery_days"`
	ReliabilityScore    float64 `json:"reliability_score"`
}

// SupplierRanking is one entry of the supplier performance leaderboard.
type SupplierRanking struct {
	Supplier    Supplier                   `json:"supplier"`
	Performance SupplierPerformanceMetrics `json:"performance"`
	Rank        int                        `json:"rank"`
}
