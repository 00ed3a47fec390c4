package repos

import (
	"github.com/jmoiron/sqlx"

	"github.com/WebFlexrr/vendorsphere-sub000/internal/domain"
)

type VendorRepo struct{ db *sqlx.DB }

func NewVendorRepo(db *sqlx.DB) *VendorRepo { return &VendorRepo{db: db} }

const vendorCols = `id, name, contact_email, phone, commission_rate, status, COALESCE(created_at,'') AS created_at`

func (r *VendorRepo) List() ([]domain.Vendor, error) {
	var out []domain.Vendor
	err := r.db.Select(&out, `SELECT `+vendorCols+` FROM vendors ORDER BY name`)
	return out, err
}

func (r *VendorRepo) Get(id string) (*domain.Vendor, error) {
	var v domain.Vendor
	if err := r.db.Get(&v, `SELECT `+vendorCols+` FROM vendors WHERE id = ?`, id); err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VendorRepo) Create(v *domain.Vendor) error {
	_, err := r.db.Exec(`
		INSERT INTO vendors(id, name, contact_email, phone, commission_rate, status, created_at)
		VALUES (?,?,?,?,?,?,?)`,
		v.ID, v.Name, v.ContactEmail, v.Phone, v.CommissionRate, v.Status, v.CreatedAt)
	return err
}

func (r *VendorRepo) Update(v *domain.Vendor) error {
	_, err := r.db.Exec(`
		UPDATE vendors SET name=?, contact_email=?, phone=?, commission_rate=?, status=? WHERE id=?`,
		v.Name, v.ContactEmail, v.Phone, v.CommissionRate, v.Status, v.ID)
	return err
}
