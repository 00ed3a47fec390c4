package repos

import (
	"github.com/jmoiron/sqlx"

	"github.com/WebFlexrr/vendorsphere-sub000/internal/domain"
)

type CampaignRepo struct{ db *sqlx.DB }

func NewCampaignRepo(db *sqlx.DB) *CampaignRepo { return &CampaignRepo{db: db} }

func (r *CampaignRepo) List() ([]domain.Campaign, error) {
	var out []domain.Campaign
	err := r.db.Select(&out, `
		SELECT id, name, channel, impressions, clicks, conversions, spend, revenue, starts_at, ends_at
		FROM campaigns ORDER BY starts_at`)
	return out, err
}
