package services

import (
	"database/sql"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WebFlexrr/vendorsphere-sub000/internal/domain"
	"github.com/WebFlexrr/vendorsphere-sub000/internal/repos"
)

func memdb(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// seedItem inserts an inventory row against an already seeded product so the
// tests control the starting quantities exactly.
func seedItem(t *testing.T, db *sqlx.DB, id string, inStock, reorderPoint int) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO inventory_items
		(id, product_id, product_name, sku, category, vendor_name, warehouse, in_stock, reorder_point, on_order, cost_price, retail_price, status, last_updated)
		VALUES (?, 'prod-hp01', 'Test Widget', 'TW-001', 'Electronics', 'Aurora Supply Co', 'WH-A', ?, ?, 0, 5, 12, ?, '2026-01-01')`,
		id, inStock, reorderPoint, domain.DeriveStatus(inStock, reorderPoint))
	require.NoError(t, err)
}

func TestAdjustStockReceivedCrossesIntoOverstocked(t *testing.T) {
	db := memdb(t)
	svc := NewInventoryService(repos.NewInventoryRepo(db))
	seedItem(t, db, "inv-test", 12, 10)

	it, err := svc.AdjustStock("inv-test", Adjustment{
		Type:      domain.MovementReceived,
		Quantity:  20,
		Reference: "PO-1",
	}, "u-admin")
	require.NoError(t, err)

	assert.Equal(t, 32, it.InStock)
	assert.Equal(t, domain.StatusOverstocked, it.Status)

	movs, err := svc.Movements("prod-hp01")
	require.NoError(t, err)
	require.NotEmpty(t, movs)
	head := movs[0]
	assert.Equal(t, domain.MovementReceived, head.MovementType)
	assert.Equal(t, 20, head.QuantityChange)
	assert.Equal(t, 12, head.QuantityBefore)
	assert.Equal(t, 32, head.QuantityAfter)
	assert.Equal(t, "PO-1", head.Reference)
	assert.Equal(t, "u-admin", head.CreatedBy)
}

func TestAdjustStockRejectsInsufficientStock(t *testing.T) {
	db := memdb(t)
	svc := NewInventoryService(repos.NewInventoryRepo(db))
	seedItem(t, db, "inv-scarce", 3, 10)

	before, err := svc.Movements("prod-hp01")
	require.NoError(t, err)

	_, err = svc.AdjustStock("inv-scarce", Adjustment{
		Type:      domain.MovementSold,
		Quantity:  5,
		Reference: "ORD-9",
	}, "u-admin")
	assert.ErrorIs(t, err, ErrInsufficientStock)

	// neither the item nor the ledger changed
	it, err := repos.NewInventoryRepo(db).GetItem("inv-scarce")
	require.NoError(t, err)
	assert.Equal(t, 3, it.InStock)
	assert.Equal(t, domain.StatusLowStock, it.Status)

	after, err := svc.Movements("prod-hp01")
	require.NoError(t, err)
	assert.Len(t, after, len(before))
}

func TestAdjustStockSellingToZeroIsAllowed(t *testing.T) {
	db := memdb(t)
	svc := NewInventoryService(repos.NewInventoryRepo(db))
	seedItem(t, db, "inv-last", 5, 10)

	it, err := svc.AdjustStock("inv-last", Adjustment{
		Type:      domain.MovementSold,
		Quantity:  5,
		Reference: "ORD-10",
	}, "u-admin")
	require.NoError(t, err)
	assert.Equal(t, 0, it.InStock)
	assert.Equal(t, domain.StatusOutOfStock, it.Status)
}

func TestAdjustStockValidation(t *testing.T) {
	db := memdb(t)
	svc := NewInventoryService(repos.NewInventoryRepo(db))
	seedItem(t, db, "inv-val", 10, 5)

	cases := []struct {
		name string
		adj  Adjustment
	}{
		{"zero quantity", Adjustment{Type: domain.MovementReceived, Quantity: 0, Reference: "PO-2"}},
		{"negative quantity", Adjustment{Type: domain.MovementReceived, Quantity: -4, Reference: "PO-2"}},
		{"missing reference", Adjustment{Type: domain.MovementReceived, Quantity: 4}},
		{"unknown type", Adjustment{Type: "STOLEN", Quantity: 4, Reference: "PO-2"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.AdjustStock("inv-val", tc.adj, "u-admin")
			assert.ErrorIs(t, err, ErrBadAdjustment)
		})
	}
}

func TestAdjustStockUnknownItem(t *testing.T) {
	db := memdb(t)
	svc := NewInventoryService(repos.NewInventoryRepo(db))

	_, err := svc.AdjustStock("inv-nope", Adjustment{
		Type: domain.MovementReceived, Quantity: 1, Reference: "PO-3",
	}, "u-admin")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestLedgerIsAppendOnlyNewestFirst(t *testing.T) {
	db := memdb(t)
	svc := NewInventoryService(repos.NewInventoryRepo(db))
	seedItem(t, db, "inv-ledger", 50, 10)

	refs := []string{"PO-10", "ORD-11", "RET-12"}
	types := []string{domain.MovementReceived, domain.MovementSold, domain.MovementReturned}
	for i := range refs {
		_, err := svc.AdjustStock("inv-ledger", Adjustment{
			Type: types[i], Quantity: 2, Reference: refs[i],
		}, "u-admin")
		require.NoError(t, err)
	}

	movs, err := svc.Movements("prod-hp01")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(movs), 3)
	assert.Equal(t, "RET-12", movs[0].Reference)
	assert.Equal(t, "ORD-11", movs[1].Reference)
	assert.Equal(t, "PO-10", movs[2].Reference)
}

func TestLowStockSet(t *testing.T) {
	db := memdb(t)
	svc := NewInventoryService(repos.NewInventoryRepo(db))

	items, err := svc.Inv.ListItems()
	require.NoError(t, err)

	want := map[string]bool{}
	for _, it := range items {
		if it.InStock <= it.ReorderPoint {
			want[it.ID] = true
		}
	}

	low, err := svc.LowStock()
	require.NoError(t, err)
	got := map[string]bool{}
	for _, it := range low {
		got[it.ID] = true
	}
	assert.Equal(t, want, got)
	assert.NotEmpty(t, got, "seed data includes low-stock items")
}
