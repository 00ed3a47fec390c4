package repos

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/WebFlexrr/vendorsphere-sub000/internal/domain"
)

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

const orderCols = `id, vendor_id, customer_name, customer_email, total, status, COALESCE(created_at,'') AS created_at`

func (r *OrderRepo) List() ([]domain.Order, error) {
	var out []domain.Order
	err := r.db.Select(&out, `SELECT `+orderCols+` FROM orders ORDER BY created_at DESC`)
	return out, err
}

func (r *OrderRepo) Get(id string) (*domain.Order, error) {
	var o domain.Order
	if err := r.db.Get(&o, `SELECT `+orderCols+` FROM orders WHERE id = ?`, id); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepo) UpdateStatus(id, status string) error {
	res, err := r.db.Exec(`UPDATE orders SET status=? WHERE id=?`, status, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("order %s not found", id)
	}
	return nil
}
