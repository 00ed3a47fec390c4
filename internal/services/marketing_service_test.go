package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WebFlexrr/vendorsphere-sub000/internal/repos"
)

func TestPerformanceReport(t *testing.T) {
	db := memdb(t)
	repo := repos.NewCampaignRepo(db)
	svc := NewMarketingService(repo)

	campaigns, err := repo.List()
	require.NoError(t, err)
	require.NotEmpty(t, campaigns)

	doc, err := svc.PerformanceReport("VendorSphere", "Last 30 days")
	require.NoError(t, err)

	assert.Equal(t, "Marketing Performance Report", doc.Title)
	assert.Equal(t, "VendorSphere", doc.Subtitle)
	assert.Equal(t, "Last 30 days", doc.DateRange)
	assert.Len(t, doc.Metrics, 6)

	require.Len(t, doc.Tables, 1)
	assert.Len(t, doc.Tables[0].Rows, len(campaigns), "one table row per campaign")
	assert.Len(t, doc.Tables[0].Columns, 8)
}
