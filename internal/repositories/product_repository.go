package repositories

import (
	"database/sql"
	"fmt"

	"inventory_dashboard_backend/internal/models"
)

// ProductRepository defines the read-side product and stock queries consumed
// by the aggregation engines. The metrics core never issues writes.
type ProductRepository interface {
	// GetProductStockRows returns one row per (active product, stock record)
	// pair, LEFT JOINed so products without stock records still appear with
	// nil location fields. A non-nil warehouseID restricts the joined stock
	// records, not the product set.
	GetProductStockRows(warehouseID *int64) ([]models.ProductStockRow, error)
}

type productRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new instance of ProductRepository.
func NewProductRepository(db *sql.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) GetProductStockRows(warehouseID *int64) ([]models.ProductStockRow, error) {
	query := `
		SELECT
		    p.id, p.sku, p.name, p.category, p.cost_price, p.reorder_point,
		    sr.location_id, l.name AS location_name, sr.quantity_on_hand, sr.unit_cost
		FROM products p
		LEFT JOIN stock_records sr
		    ON sr.product_id = p.id AND ($1::bigint IS NULL OR sr.location_id = $1)
		LEFT JOIN locations l ON l.id = sr.location_id
		WHERE p.is_active = TRUE
		ORDER BY p.id, l.name`

	var warehouseArg sql.NullInt64
	if warehouseID != nil {
		warehouseArg = sql.NullInt64{Int64: *warehouseID, Valid: true}
	}

	rows, err := r.db.Query(query, warehouseArg)
	if err != nil {
		return nil, fmt.Errorf("%w: querying product stock rows: %v", ErrDataSource, err)
	}
	defer rows.Close()

	result := []models.ProductStockRow{}
	for rows.Next() {
		var row models.ProductStockRow
		var locationID sql.NullInt64
		var locationName sql.NullString
		var quantity sql.NullInt64
		var unitCost sql.NullFloat64

		err := rows.Scan(
			&row.ProductID, &row.SKU, &row.Name, &row.Category, &row.CostPrice, &row.ReorderPoint,
			&locationID, &locationName, &quantity, &unitCost,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning product stock row: %v", ErrDataSource, err)
		}

		if locationID.Valid {
			id := locationID.Int64
			row.LocationID = &id
		}
		if locationName.Valid {
			name := locationName.String
			row.LocationName = &name
		}
		if quantity.Valid {
			qty := int(quantity.Int64)
			row.QuantityOnHand = &qty
		}
		if unitCost.Valid {
			cost := unitCost.Float64
			row.UnitCost = &cost
		}
		result = append(result, row)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating product stock rows: %v", ErrDataSource, err)
	}
	return result, nil
}
