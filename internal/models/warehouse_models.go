package models

// WarehouseFilters narrows the warehouse distribution aggregation.
// MinValue is a post-aggregation cutoff on a location's total value.
type WarehouseFilters struct {
	ProductID *int64   `json:"product_id,omitempty"`
	Category  string   `json:"category,omitempty"`
	MinValue  *float64 `json:"min_value,omitempty"`
}

// WarehouseStockRow is one row of the stock_records JOIN products JOIN
// locations read feeding the warehouse distribution aggregation.
type WarehouseStockRow struct {
	LocationID      int64
	LocationName    string
	LocationAddress *string

	ProductID      int64
	ProductName    string
	SKU            string
	Category       string
	CostPrice      float64
	QuantityOnHand int
	UnitCost       *float64
}

// WarehouseProductSummary is one product's contribution to a location.
type WarehouseProductSummary struct {
	ProductID int64   `json:"productId"`
	Name      string  `json:"name"`
	SKU       string  `json:"sku"`
	Quantity  int     `json:"quantity"`
	Value     float64 `json:"value"`
}

// WarehouseDistribution is the per-location aggregate of stock holdings.
type WarehouseDistribution struct {
	Location      Location                  `json:"location"`
	TotalProducts int                       `json:"totalProducts"`
	TotalQuantity int                       `json:"totalQuantity"`
	TotalValue    float64                   `json:"totalValue"`
	Products      []WarehouseProductSummary `json:"products"`
}
