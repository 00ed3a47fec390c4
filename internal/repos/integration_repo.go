package repos

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/WebFlexrr/vendorsphere-sub000/internal/domain"
)

type IntegrationRepo struct{ db *sqlx.DB }

func NewIntegrationRepo(db *sqlx.DB) *IntegrationRepo { return &IntegrationRepo{db: db} }

func (r *IntegrationRepo) List() ([]domain.Integration, error) {
	var out []domain.Integration
	err := r.db.Select(&out, `SELECT id, name, provider, category, status, connected_at FROM integrations ORDER BY name`)
	return out, err
}

func (r *IntegrationRepo) Get(id string) (*domain.Integration, error) {
	var in domain.Integration
	if err := r.db.Get(&in, `SELECT id, name, provider, category, status, connected_at FROM integrations WHERE id = ?`, id); err != nil {
		return nil, err
	}
	return &in, nil
}

func (r *IntegrationRepo) SetStatus(id, status, connectedAt string) error {
	res, err := r.db.Exec(`UPDATE integrations SET status=?, connected_at=? WHERE id=?`, status, connectedAt, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("integration %s not found", id)
	}
	return nil
}
