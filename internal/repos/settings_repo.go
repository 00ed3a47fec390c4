package repos

import (
	"github.com/jmoiron/sqlx"

	"github.com/WebFlexrr/vendorsphere-sub000/internal/domain"
)

type SettingsRepo struct{ db *sqlx.DB }

func NewSettingsRepo(db *sqlx.DB) *SettingsRepo { return &SettingsRepo{db: db} }

func (r *SettingsRepo) Get() (*domain.StoreSettings, error) {
	var s domain.StoreSettings
	if err := r.db.Get(&s, `
		SELECT id, store_name, currency, tax_rate, support_email, low_stock_alerts
		FROM settings WHERE id = 1`); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SettingsRepo) Update(s *domain.StoreSettings) error {
	_, err := r.db.Exec(`
		INSERT INTO settings(id, store_name, currency, tax_rate, support_email, low_stock_alerts)
		VALUES (1,?,?,?,?,?)
		ON CONFLICT(id) DO UPDATE SET
			store_name=excluded.store_name,
			currency=excluded.currency,
			tax_rate=excluded.tax_rate,
			support_email=excluded.support_email,
			low_stock_alerts=excluded.low_stock_alerts`,
		s.StoreName, s.Currency, s.TaxRate, s.SupportEmail, s.LowStockAlerts)
	return err
}
