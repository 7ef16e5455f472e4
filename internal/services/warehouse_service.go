package services

import (
	"fmt"
	"sort"
	"strconv"

	"inventory_dashboard_backend/internal/cache"
	"inventory_dashboard_backend/internal/models"
	"inventory_dashboard_backend/internal/repositories"
)

// WarehouseService aggregates stock holdings per warehouse location for the
// distribution visualization.
type WarehouseService interface {
	GetWarehouseDistribution(filters models.WarehouseFilters) ([]models.WarehouseDistribution, error)
}

type warehouseService struct {
	warehouseRepo repositories.WarehouseRepository
	resultCache   *cache.Cache
}

// NewWarehouseService creates a new instance of WarehouseService.
func NewWarehouseService(warehouseRepo repositories.WarehouseRepository, resultCache *cache.Cache) WarehouseService {
	return &warehouseService{
		warehouseRepo: warehouseRepo,
		resultCache:   resultCache,
	}
}

func (s *warehouseService) GetWarehouseDistribution(filters models.WarehouseFilters) ([]models.WarehouseDistribution, error) {
	fields := map[string]string{}
	if filters.ProductID != nil {
		fields["product_id"] = strconv.FormatInt(*filters.ProductID, 10)
	}
	if filters.Category != "" {
		fields["category"] = filters.Category
	}
	if filters.MinValue != nil {
		fields["min_value"] = strconv.FormatFloat(*filters.MinValue, 'f', -1, 64)
	}
	key := cache.Key(cache.NSWarehouseDistribution, fields)
	if cached, ok := s.resultCache.Get(key); ok {
		if distribution, ok := cached.([]models.WarehouseDistribution); ok {
			return distribution, nil
		}
	}

	rows, err := s.warehouseRepo.GetWarehouseStockRows()
	if err != nil {
		return nil, fmt.Errorf("failed to load warehouse stock rows: %w", err)
	}

	distribution := aggregateWarehouseDistribution(rows, filters)
	s.resultCache.Set(key, distribution, s.resultCache.Config().WarehouseDistributionTTL)
	return distribution, nil
}

// aggregateWarehouseDistribution groups stock rows per location. Product and
// category filters narrow the contributing rows before grouping; the minimum
// value cutoff applies to the aggregated location value afterwards. A record
// without a positive unit cost is valued at the product's cost price, the
// same fallback the stock listing uses.
func aggregateWarehouseDistribution(rows []models.WarehouseStockRow, filters models.WarehouseFilters) []models.WarehouseDistribution {
	type locationGroup struct {
		location models.Location
		products map[int64]*models.WarehouseProductSummary
		order    []int64
		quantity int
		value    float64
	}

	index := make(map[int64]int)
	groups := []*locationGroup{}

	for _, row := range rows {
		if filters.ProductID != nil && row.ProductID != *filters.ProductID {
			continue
		}
		if filters.Category != "" && row.Category != filters.Category {
			continue
		}

		i, seen := index[row.LocationID]
		if !seen {
			i = len(groups)
			index[row.LocationID] = i
			groups = append(groups, &locationGroup{
				location: models.Location{
					ID:      row.LocationID,
					Name:    row.LocationName,
					Address: row.LocationAddress,
				},
				products: make(map[int64]*models.WarehouseProductSummary),
			})
		}
		g := groups[i]

		unitCost := row.CostPrice
		if row.UnitCost != nil && *row.UnitCost > 0 {
			unitCost = *row.UnitCost
		}
		value := float64(row.QuantityOnHand) * unitCost

		g.quantity += row.QuantityOnHand
		g.value += value

		summary, ok := g.products[row.ProductID]
		if !ok {
			summary = &models.WarehouseProductSummary{
				ProductID: row.ProductID,
				Name:      row.ProductName,
				SKU:       row.SKU,
			}
			g.products[row.ProductID] = summary
			g.order = append(g.order, row.ProductID)
		}
		summary.Quantity += row.QuantityOnHand
		summary.Value += value
	}

	distribution := []models.WarehouseDistribution{}
	for _, g := range groups {
		if filters.MinValue != nil && g.value < *filters.MinValue {
			continue
		}
		products := make([]models.WarehouseProductSummary, 0, len(g.order))
		for _, productID := range g.order {
			summary := *g.products[productID]
			summary.Value = round2(summary.Value)
			products = append(products, summary)
		}
		sort.Slice(products, func(i, j int) bool {
			return products[i].Name < products[j].Name
		})
		distribution = append(distribution, models.WarehouseDistribution{
			Location:      g.location,
			TotalProducts: len(products),
			TotalQuantity: g.quantity,
			TotalValue:    round2(g.value),
			Products:      products,
		})
	}

	sort.Slice(distribution, func(i, j int) bool {
		return distribution[i].Location.Name < distribution[j].Location.Name
	})
	return distribution
}
