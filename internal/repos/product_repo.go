package repos

import (
	"github.com/jmoiron/sqlx"

	"github.com/WebFlexrr/vendorsphere-sub000/internal/domain"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

const productCols = `id, vendor_id, name, sku, category, description, cost_price,
	retail_price, status, COALESCE(created_at,'') AS created_at, COALESCE(updated_at,'') AS updated_at`

func (r *ProductRepo) List() ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `SELECT `+productCols+` FROM products ORDER BY name`)
	return out, err
}

func (r *ProductRepo) Get(id string) (*domain.Product, error) {
	var p domain.Product
	if err := r.db.Get(&p, `SELECT `+productCols+` FROM products WHERE id = ?`, id); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepo) Create(p *domain.Product) error {
	_, err := r.db.Exec(`
		INSERT INTO products(id, vendor_id, name, sku, category, description, cost_price, retail_price, status, created_at)
		VALUES (?,?,?,?,?,?,?,?,?,?)`,
		p.ID, p.VendorID, p.Name, p.SKU, p.Category, p.Description, p.CostPrice, p.RetailPrice, p.Status, p.CreatedAt)
	return err
}

func (r *ProductRepo) Update(p *domain.Product) error {
	_, err := r.db.Exec(`
		UPDATE products
		SET vendor_id=?, name=?, sku=?, category=?, description=?, cost_price=?, retail_price=?, status=?, updated_at=?
		WHERE id=?`,
		p.VendorID, p.Name, p.SKU, p.Category, p.Description, p.CostPrice, p.RetailPrice, p.Status, p.UpdatedAt, p.ID)
	return err
}

func (r *ProductRepo) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM products WHERE id=?`, id)
	return err
}
