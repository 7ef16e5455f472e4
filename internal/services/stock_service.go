package services

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"inventory_dashboard_backend/internal/cache"
	"inventory_dashboard_backend/internal/models"
	"inventory_dashboard_backend/internal/repositories"
)

// StockService is the stock aggregation engine: it turns per-location stock
// rows into the paginated, status-classified stock levels listing.
type StockService interface {
	GetStockLevels(filters models.StockFilters, pagination models.Pagination) (*models.StockLevelsResult, error)
}

type stockService struct {
	productRepo repositories.ProductRepository
	resultCache *cache.Cache
}

// NewStockService creates a new instance of StockService.
func NewStockService(productRepo repositories.ProductRepository, resultCache *cache.Cache) StockService {
	return &stockService{
		productRepo: productRepo,
		resultCache: resultCache,
	}
}

func (s *stockService) GetStockLevels(filters models.StockFilters, pagination models.Pagination) (*models.StockLevelsResult, error) {
	if filters.StockFilter == "" {
		filters.StockFilter = models.StockFilterAll
	}

	key := stockLevelsCacheKey(filters, pagination)
	if cached, ok := s.resultCache.Get(key); ok {
		if result, ok := cached.(*models.StockLevelsResult); ok {
			return result, nil
		}
	}

	rows, err := s.productRepo.GetProductStockRows(filters.WarehouseID)
	if err != nil {
		return nil, fmt.Errorf("failed to load stock rows: %w", err)
	}

	result := aggregateStockLevels(rows, filters, pagination)
	s.resultCache.Set(key, result, s.resultCache.Config().StockLevelsTTL)
	return result, nil
}

func stockLevelsCacheKey(filters models.StockFilters, pagination models.Pagination) string {
	fields := map[string]string{
		"stock_filter": string(filters.StockFilter),
	}
	if filters.WarehouseID != nil {
		fields["warehouse_id"] = strconv.FormatInt(*filters.WarehouseID, 10)
	}
	if filters.Search != "" {
		fields["search"] = filters.Search
	}
	if filters.Category != "" {
		fields["category"] = filters.Category
	}
	if pagination.Enabled() {
		fields["page"] = strconv.Itoa(pagination.Page)
		fields["limit"] = strconv.Itoa(pagination.Limit)
	}
	return cache.Key(cache.NSStockLevels, fields)
}

// --- Aggregation pipeline ---
// Each phase below is a pure function over its input: filter rows by product
// attributes, group by product, compute aggregates, post-filter by derived
// status, then sort and slice. The derived stock status depends on the summed
// quantity, so the stock filter must never be applied before grouping.

// productStockGroup collects the joined stock rows of one product.
type productStockGroup struct {
	productID    int64
	sku          string
	name         string
	category     string
	costPrice    float64
	reorderPoint int
	records      []models.ProductStockRow // rows that carry a stock record
}

func aggregateStockLevels(rows []models.ProductStockRow, filters models.StockFilters, pagination models.Pagination) *models.StockLevelsResult {
	groups := groupStockRows(filterStockRows(rows, filters))

	items := make([]models.StockLevelItem, 0, len(groups))
	for _, g := range groups {
		item := buildStockLevelItem(g)
		if stockStatusMatches(item.StockStatus, filters.StockFilter) {
			items = append(items, item)
		}
	}

	sort.Slice(items, func(i, j int) bool {
		ni, nj := strings.ToLower(items[i].Name), strings.ToLower(items[j].Name)
		if ni != nj {
			return ni < nj
		}
		return items[i].ID < items[j].ID
	})

	result := &models.StockLevelsResult{Filters: filters}
	if !pagination.Enabled() {
		result.Products = items
		return result
	}

	meta := buildPaginationMeta(len(items), pagination)
	result.Pagination = &meta
	result.Products = pageSlice(items, pagination)
	return result
}

// filterStockRows applies the product-attribute predicates: search is a
// case-insensitive substring over name, SKU and category; category is exact.
func filterStockRows(rows []models.ProductStockRow, filters models.StockFilters) []models.ProductStockRow {
	if filters.Search == "" && filters.Category == "" {
		return rows
	}
	search := strings.ToLower(filters.Search)
	out := make([]models.ProductStockRow, 0, len(rows))
	for _, row := range rows {
		if filters.Category != "" && row.Category != filters.Category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(row.Name), search) &&
			!strings.Contains(strings.ToLower(row.SKU), search) &&
			!strings.Contains(strings.ToLower(row.Category), search) {
			continue
		}
		out = append(out, row)
	}
	return out
}

// groupStockRows groups joined rows per product, preserving first-seen order.
func groupStockRows(rows []models.ProductStockRow) []productStockGroup {
	index := make(map[int64]int)
	groups := []productStockGroup{}
	for _, row := range rows {
		i, seen := index[row.ProductID]
		if !seen {
			i = len(groups)
			index[row.ProductID] = i
			groups = append(groups, productStockGroup{
				productID:    row.ProductID,
				sku:          row.SKU,
				name:         row.Name,
				category:     row.Category,
				costPrice:    row.CostPrice,
				reorderPoint: row.ReorderPoint,
			})
		}
		if row.HasStockRecord() {
			groups[i].records = append(groups[i].records, row)
		}
	}
	return groups
}

// buildStockLevelItem computes the aggregates of one product group. The unit
// cost is the average over records that carry one; a product with no costed
// records falls back to its cost price.
func buildStockLevelItem(g productStockGroup) models.StockLevelItem {
	totalQuantity := 0
	totalValue := 0.0
	costSum := 0.0
	costCount := 0
	locations := []models.StockLocationBreakdown{}

	for _, rec := range g.records {
		qty := 0
		if rec.QuantityOnHand != nil {
			qty = *rec.QuantityOnHand
		}
		totalQuantity += qty
		if rec.UnitCost != nil {
			costSum += *rec.UnitCost
			costCount++
			totalValue += float64(qty) * *rec.UnitCost
		}
		if qty > 0 {
			loc := models.StockLocationBreakdown{
				Quantity: qty,
				UnitCost: rec.UnitCost,
			}
			if rec.LocationID != nil {
				loc.LocationID = *rec.LocationID
			}
			if rec.LocationName != nil {
				loc.LocationName = *rec.LocationName
			}
			locations = append(locations, loc)
		}
	}

	unitCost := g.costPrice
	if costCount > 0 {
		unitCost = costSum / float64(costCount)
	}

	sort.Slice(locations, func(i, j int) bool {
		return locations[i].LocationName < locations[j].LocationName
	})

	return models.StockLevelItem{
		ID:            g.productID,
		SKU:           g.sku,
		Name:          g.name,
		Category:      g.category,
		TotalQuantity: totalQuantity,
		UnitCost:      round2(unitCost),
		TotalValue:    round2(totalValue),
		ReorderPoint:  g.reorderPoint,
		StockStatus:   classifyStockStatus(totalQuantity, g.reorderPoint),
		Locations:     locations,
	}
}

// classifyStockStatus derives the stock status of a product from its summed
// on-hand quantity.
func classifyStockStatus(totalQuantity, reorderPoint int) models.StockStatus {
	switch {
	case totalQuantity == 0:
		return models.StockStatusOutOfStock
	case totalQuantity < reorderPoint:
		return models.StockStatusLowStock
	default:
		return models.StockStatusAdequate
	}
}

func stockStatusMatches(status models.StockStatus, filter models.StockFilter) bool {
	switch filter {
	case models.StockFilterLowStock:
		return status == models.StockStatusLowStock
	case models.StockFilterOutOfStock:
		return status == models.StockStatusOutOfStock
	default:
		return true
	}
}

// buildPaginationMeta derives page metadata from the filtered group count.
func buildPaginationMeta(total int, pagination models.Pagination) models.PaginationMeta {
	totalPages := 0
	if total > 0 {
		totalPages = (total + pagination.Limit - 1) / pagination.Limit
	}
	return models.PaginationMeta{
		Total:      total,
		Page:       pagination.Page,
		Limit:      pagination.Limit,
		TotalPages: totalPages,
		HasNext:    pagination.Page < totalPages,
		HasPrev:    pagination.Page > 1,
	}
}

func pageSlice(items []models.StockLevelItem, pagination models.Pagination) []models.StockLevelItem {
	offset := (pagination.Page - 1) * pagination.Limit
	if offset >= len(items) {
		return []models.StockLevelItem{}
	}
	end := offset + pagination.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

// round2 rounds to two decimal places, the precision of every monetary and
// score field the dashboard displays.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
