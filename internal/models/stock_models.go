package models

// StockStatus classifies a product's aggregate on-hand quantity.
type StockStatus string

const (
	StockStatusAdequate   StockStatus = "adequate"
	StockStatusLowStock   StockStatus = "low_stock"
	StockStatusOutOfStock StockStatus = "out_of_stock"
)

// StockFilter selects which derived stock statuses a listing should include.
type StockFilter string

const (
	StockFilterAll        StockFilter = "all"
	StockFilterLowStock   StockFilter = "low_stock"
	StockFilterOutOfStock StockFilter = "out_of_stock"
)

// IsValid reports whether f is one of the closed set of filter values.
func (f StockFilter) IsValid() bool {
	switch f {
	case StockFilterAll, StockFilterLowStock, StockFilterOutOfStock:
		return true
	default:
		return false
	}
}

// StockFilters is the typed filter value object the HTTP layer hands to the
// stock aggregator. Search is a case-insensitive substring over name, SKU and
// category; Category is an exact match.
type StockFilters struct {
	WarehouseID *int64      `json:"warehouse_id,omitempty"`
	StockFilter StockFilter `json:"stock_filter"`
	Search      string      `json:"search,omitempty"`
	Category    string      `json:"category,omitempty"`
}

// Pagination is a 1-based page request. A zero value means "no pagination":
// the full filtered list is returned without metadata.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Enabled reports whether the request asked for a page slice.
func (p Pagination) Enabled() bool {
	return p.Page > 0 && p.Limit > 0
}

// PaginationMeta describes the full filtered result set a page was cut from.
// Total counts product groups passing the stock-status predicate, not rows.
type PaginationMeta struct {
	Total      int  `json:"total"`
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// StockLocationBreakdown is one contributing location of a stock level item.
type StockLocationBreakdown struct {
	LocationID   int64    `json:"locationId"`
	LocationName string   `json:"locationName"`
	Quantity     int      `json:"quantity"`
	UnitCost     *float64 `json:"unitCost,omitempty"`
}

// StockLevelItem is one product group of the stock levels listing. UnitCost
// is the average over contributing stock records, falling back to the
// product's cost price when the product has no stock records.
type StockLevelItem struct {
	ID            int64                    `json:"id"`
	SKU           string                   `json:"sku"`
	Name          string                   `json:"name"`
	Category      string                   `json:"category"`
	TotalQuantity int                      `json:"totalQuantity"`
	UnitCost      float64                  `json:"unitCost"`
	TotalValue    float64                  `json:"totalValue"`
	ReorderPoint  int                      `json:"reorderPoint"`
	StockStatus   StockStatus              `json:"stockStatus"`
	Locations     []StockLocationBreakdown `json:"locations"`
}

// StockLevelsResult is the stock aggregator's response envelope.
type StockLevelsResult struct {
	Products   []StockLevelItem `json:"products"`
	Filters    StockFilters     `json:"filters"`
	Pagination *PaginationMeta  `json:"pagination,omitempty"`
}
