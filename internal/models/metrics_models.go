package models

// MetricStatus is the severity attached to a headline summary metric.
type MetricStatus string

const (
	MetricStatusNormal   MetricStatus = "normal"
	MetricStatusWarning  MetricStatus = "warning"
	MetricStatusCritical MetricStatus = "critical"
)

// CountMetric is a headline counter with its severity.
type CountMetric struct {
	Value  int          `json:"value"`
	Status MetricStatus `json:"status"`
}

// LowStockMetric is the low-stock counter. Threshold is a fixed informational
// field shown by the dashboard; it coincides with the critical cutoff.
type LowStockMetric struct {
	Value     int          `json:"value"`
	Status    MetricStatus `json:"status"`
	Threshold int          `json:"threshold"`
}

// StockValueMetric is the total stock valuation. ExcludedProducts counts
// active products none of whose stock records carry a positive unit cost.
type StockValueMetric struct {
	Value            float64      `json:"value"`
	Status           MetricStatus `json:"status"`
	ExcludedProducts int          `json:"excluded_products"`
}

// SummaryMetrics carries the five dashboard headline metrics.
type SummaryMetrics struct {
	TotalProducts   CountMetric      `json:"total_products"`
	LowStock        LowStockMetric   `json:"low_stock"`
	OutOfStock      CountMetric      `json:"out_of_stock"`
	Suppliers       CountMetric      `json:"suppliers"`
	TotalStockValue StockValueMetric `json:"total_stock_value"`
}
