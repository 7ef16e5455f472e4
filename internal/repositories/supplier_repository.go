package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"inventory_dashboard_backend/internal/models"
)

// SupplierRepository defines the read-side supplier and purchase-order
// queries consumed by the performance scorer.
type SupplierRepository interface {
	GetSupplierByID(supplierID int64) (*models.Supplier, error)
	GetActiveSuppliers() ([]models.Supplier, error)
	CountActiveSuppliers() (int, error)
	// GetPurchaseOrdersBySupplier returns the supplier's full order history,
	// all statuses, newest first.
	GetPurchaseOrdersBySupplier(supplierID int64) ([]models.PurchaseOrder, error)
	// GetPurchaseOrdersForActiveSuppliers returns the order history of every
	// active supplier in one read, for ranking computation.
	GetPurchaseOrdersForActiveSuppliers() ([]models.PurchaseOrder, error)
	// GetRecentPurchaseOrders returns the latest orders across all suppliers
	// with the supplier name joined in.
	GetRecentPurchaseOrders(limit int) ([]models.PurchaseOrder, error)
}

type supplierRepository struct {
	db *sql.DB
}

// NewSupplierRepository creates a new instance of SupplierRepository.
func NewSupplierRepository(db *sql.DB) SupplierRepository {
	return &supplierRepository{db: db}
}

const supplierColumns = `id, name, contact_name, contact_email, contact_phone, is_active, created_at, updated_at`

func (r *supplierRepository) scanSupplier(row *sql.Row) (*models.Supplier, error) {
	var s models.Supplier
	err := row.Scan(
		&s.ID, &s.Name, &s.ContactName, &s.ContactEmail, &s.ContactPhone,
		&s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *supplierRepository) GetSupplierByID(supplierID int64) (*models.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE id = $1`
	supplier, err := r.scanSupplier(r.db.QueryRow(query, supplierID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting supplier by ID %d: %v", ErrDataSource, supplierID, err)
	}
	return supplier, nil
}

func (r *supplierRepository) GetActiveSuppliers() ([]models.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE is_active = TRUE ORDER BY name`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying active suppliers: %v", ErrDataSource, err)
	}
	defer rows.Close()

	suppliers := []models.Supplier{}
	for rows.Next() {
		var s models.Supplier
		err := rows.Scan(
			&s.ID, &s.Name, &s.ContactName, &s.ContactEmail, &s.ContactPhone,
			&s.IsActive, &s.CreatedAt, &s.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning supplier: %v", ErrDataSource, err)
		}
		suppliers = append(suppliers, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating supplier rows: %v", ErrDataSource, err)
	}
	return suppliers, nil
}

func (r *supplierRepository) CountActiveSuppliers() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM suppliers WHERE is_active = TRUE`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%w: counting active suppliers: %v", ErrDataSource, err)
	}
	return count, nil
}

const purchaseOrderColumns = `po.id, po.po_number, po.supplier_id, po.order_date,
	         po.expected_delivery_date, po.status, po.total_amount, po.completed_at,
	         po.created_at, po.updated_at`

func scanPurchaseOrder(rows *sql.Rows, withSupplierName bool) (models.PurchaseOrder, error) {
	var po models.PurchaseOrder
	var expected, completed sql.NullTime
	dest := []interface{}{
		&po.ID, &po.PONumber, &po.SupplierID, &po.OrderDate,
		&expected, &po.Status, &po.TotalAmount, &completed,
		&po.CreatedAt, &po.UpdatedAt,
	}
	var supplierName sql.NullString
	if withSupplierName {
		dest = append(dest, &supplierName)
	}
	if err := rows.Scan(dest...); err != nil {
		return po, err
	}
	if expected.Valid {
		t := expected.Time
		po.ExpectedDeliveryDate = &t
	}
	if completed.Valid {
		t := completed.Time
		po.CompletedAt = &t
	}
	if supplierName.Valid {
		name := supplierName.String
		po.SupplierName = &name
	}
	return po, nil
}

func (r *supplierRepository) GetPurchaseOrdersBySupplier(supplierID int64) ([]models.PurchaseOrder, error) {
	query := `SELECT ` + purchaseOrderColumns + `
	          FROM purchase_orders po
	          WHERE po.supplier_id = $1
	          ORDER BY po.order_date DESC`
	rows, err := r.db.Query(query, supplierID)
	if err != nil {
		return nil, fmt.Errorf("%w: querying purchase orders for supplier %d: %v", ErrDataSource, supplierID, err)
	}
	defer rows.Close()

	orders := []models.PurchaseOrder{}
	for rows.Next() {
		po, err := scanPurchaseOrder(rows, false)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning purchase order: %v", ErrDataSource, err)
		}
		orders = append(orders, po)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating purchase order rows: %v", ErrDataSource, err)
	}
	return orders, nil
}

func (r *supplierRepository) GetPurchaseOrdersForActiveSuppliers() ([]models.PurchaseOrder, error) {
	query := `SELECT ` + purchaseOrderColumns + `
	          FROM purchase_orders po
	          JOIN suppliers s ON s.id = po.supplier_id
	          WHERE s.is_active = TRUE
	          ORDER BY po.supplier_id, po.order_date DESC`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying purchase orders for active suppliers: %v", ErrDataSource, err)
	}
	defer rows.Close()

	orders := []models.PurchaseOrder{}
	for rows.Next() {
		po, err := scanPurchaseOrder(rows, false)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning purchase order: %v", ErrDataSource, err)
		}
		orders = append(orders, po)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating purchase order rows: %v", ErrDataSource, err)
	}
	return orders, nil
}

func (r *supplierRepository) GetRecentPurchaseOrders(limit int) ([]models.PurchaseOrder, error) {
	query := `SELECT ` + purchaseOrderColumns + `, s.name AS supplier_name
	          FROM purchase_orders po
	          JOIN suppliers s ON s.id = po.supplier_id
	          ORDER BY po.order_date DESC, po.id DESC
	          LIMIT $1`
	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: querying recent purchase orders: %v", ErrDataSource, err)
	}
	defer rows.Close()

	orders := []models.PurchaseOrder{}
	for rows.Next() {
		po, err := scanPurchaseOrder(rows, true)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning recent purchase order: %v", ErrDataSource, err)
		}
		orders = append(orders, po)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating recent purchase order rows: %v", ErrDataSource, err)
	}
	return orders, nil
}
