package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WebFlexrr/vendorsphere-sub000/internal/listing"
	"github.com/WebFlexrr/vendorsphere-sub000/internal/repos"
)

func TestOrderUpdateStatus(t *testing.T) {
	db := memdb(t)
	repo := repos.NewOrderRepo(db)
	svc := NewOrderService(repo)

	require.NoError(t, svc.UpdateStatus("ord-1184", "SHIPPED"))
	got, err := repo.Get("ord-1184")
	require.NoError(t, err)
	assert.Equal(t, "SHIPPED", got.Status)
}

func TestOrderUpdateStatusRejectsUnknownValues(t *testing.T) {
	db := memdb(t)
	svc := NewOrderService(repos.NewOrderRepo(db))

	assert.Error(t, svc.UpdateStatus("ord-1184", "TELEPORTED"))
	assert.Error(t, svc.UpdateStatus("ord-1184", "shipped"), "statuses are case-sensitive")
}

func TestOrderUpdateStatusUnknownOrder(t *testing.T) {
	db := memdb(t)
	svc := NewOrderService(repos.NewOrderRepo(db))
	assert.Error(t, svc.UpdateStatus("ord-0000", "SHIPPED"))
}

func TestOrderListFilterByStatus(t *testing.T) {
	db := memdb(t)
	svc := NewOrderService(repos.NewOrderRepo(db))

	all, err := svc.List(listing.Params{})
	require.NoError(t, err)
	require.NotEmpty(t, all)

	for _, o := range all {
		got, err := svc.List(listing.Params{Filters: map[string]string{"status": o.Status}})
		require.NoError(t, err)
		for _, g := range got {
			assert.Equal(t, o.Status, g.Status)
		}
		break
	}

	sorted, err := svc.List(listing.Params{SortBy: "total", Desc: true})
	require.NoError(t, err)
	for i := 1; i < len(sorted); i++ {
		assert.GreaterOrEqual(t, sorted[i-1].Total, sorted[i].Total)
	}
}
