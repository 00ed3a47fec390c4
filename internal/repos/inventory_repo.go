package repos

import (
	"github.com/jmoiron/sqlx"

	"github.com/WebFlexrr/vendorsphere-sub000/internal/domain"
)

type InventoryRepo struct{ db *sqlx.DB }

func NewInventoryRepo(db *sqlx.DB) *InventoryRepo { return &InventoryRepo{db: db} }

const itemCols = `id, product_id, product_name, sku, category, vendor_name, warehouse,
	in_stock, reorder_point, on_order, cost_price, retail_price, status,
	COALESCE(last_updated,'') AS last_updated`

func (r *InventoryRepo) ListItems() ([]domain.InventoryItem, error) {
	var out []domain.InventoryItem
	err := r.db.Select(&out, `SELECT `+itemCols+` FROM inventory_items ORDER BY product_name`)
	return out, err
}

func (r *InventoryRepo) GetItem(id string) (*domain.InventoryItem, error) {
	var it domain.InventoryItem
	if err := r.db.Get(&it, `SELECT `+itemCols+` FROM inventory_items WHERE id = ?`, id); err != nil {
		return nil, err
	}
	return &it, nil
}

// LowStock returns items at or below their reorder point.
func (r *InventoryRepo) LowStock() ([]domain.InventoryItem, error) {
	var out []domain.InventoryItem
	err := r.db.Select(&out, `
		SELECT `+itemCols+` FROM inventory_items
		WHERE in_stock <= reorder_point
		ORDER BY product_name`)
	return out, err
}

// ApplyAdjustment writes the adjusted item and its ledger entry in one
// transaction so the ledger can never drift from the stock level.
func (r *InventoryRepo) ApplyAdjustment(it *domain.InventoryItem, mov *domain.StockMovement) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`
		UPDATE inventory_items
		SET in_stock = ?, status = ?, last_updated = ?
		WHERE id = ?`,
		it.InStock, it.Status, it.LastUpdated, it.ID); err != nil {
		return err
	}

	if _, err := tx.Exec(`
		INSERT INTO stock_movements(id, product_id, product_name, movement_type,
			quantity_change, quantity_before, quantity_after, reference, notes, created_by, created_at)
		VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
		mov.ID, mov.ProductID, mov.ProductName, mov.MovementType,
		mov.QuantityChange, mov.QuantityBefore, mov.QuantityAfter,
		mov.Reference, mov.Notes, mov.CreatedBy, mov.CreatedAt); err != nil {
		return err
	}

	return tx.Commit()
}

const movementCols = `seq, id, product_id, product_name, movement_type,
	quantity_change, quantity_before, quantity_after, reference, notes, created_by,
	COALESCE(created_at,'') AS created_at`

// Movements returns the ledger for one product, newest first.
func (r *InventoryRepo) Movements(productID string) ([]domain.StockMovement, error) {
	var out []domain.StockMovement
	err := r.db.Select(&out, `
		SELECT `+movementCols+` FROM stock_movements
		WHERE product_id = ?
		ORDER BY seq DESC`, productID)
	return out, err
}

// AllMovements returns the full ledger, newest first.
func (r *InventoryRepo) AllMovements(limit int) ([]domain.StockMovement, error) {
	var out []domain.StockMovement
	err := r.db.Select(&out, `
		SELECT `+movementCols+` FROM stock_movements
		ORDER BY seq DESC
		LIMIT ?`, limit)
	return out, err
}
