package repositories

import (
	"database/sql"
	"fmt"

	"inventory_dashboard_backend/internal/models"
)

// WarehouseRepository defines the read-side location and stock queries
// consumed by the warehouse distribution aggregator.
type WarehouseRepository interface {
	// GetWarehouseStockRows returns every stock record of an active product
	// joined with its product and location.
	GetWarehouseStockRows() ([]models.WarehouseStockRow, error)
}

type warehouseRepository struct {
	db *sql.DB
}

// NewWarehouseRepository creates a new instance of WarehouseRepository.
func NewWarehouseRepository(db *sql.DB) WarehouseRepository {
	return &warehouseRepository{db: db}
}

func (r *warehouseRepository) GetWarehouseStockRows() ([]models.WarehouseStockRow, error) {
	query := `
		SELECT
		    l.id, l.name, l.address,
		    p.id, p.name, p.sku, p.category, p.cost_price,
		    sr.quantity_on_hand, sr.unit_cost
		FROM stock_records sr
		JOIN products p ON p.id = sr.product_id AND p.is_active = TRUE
		JOIN locations l ON l.id = sr.location_id
		ORDER BY l.name, p.name`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying warehouse stock rows: %v", ErrDataSource, err)
	}
	defer rows.Close()

	result := []models.WarehouseStockRow{}
	for rows.Next() {
		var row models.WarehouseStockRow
		var unitCost sql.NullFloat64
		err := rows.Scan(
			&row.LocationID, &row.LocationName, &row.LocationAddress,
			&row.ProductID, &row.ProductName, &row.SKU, &row.Category, &row.CostPrice,
			&row.QuantityOnHand, &unitCost,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning warehouse stock row: %v", ErrDataSource, err)
		}
		if unitCost.Valid {
			cost := unitCost.Float64
			row.UnitCost = &cost
		}
		result = append(result, row)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating warehouse stock rows: %v", ErrDataSource, err)
	}
	return result, nil
}
