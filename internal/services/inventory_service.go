package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/WebFlexrr/vendorsphere-sub000/internal/domain"
	"github.com/WebFlexrr/vendorsphere-sub000/internal/listing"
	"github.com/WebFlexrr/vendorsphere-sub000/internal/repos"
)

var (
	ErrBadAdjustment = errors.New("adjustment needs a positive quantity, a known movement type and a reference")
	// ErrInsufficientStock: outbound movements may not drive stock negative.
	// Back-order tracking is not supported; the adjustment is rejected and
	// neither the item nor the ledger changes.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Adjustment is one operator-entered stock change. Quantity is always
// positive; the movement type decides the sign.
type Adjustment struct {
	Type      string `json:"type"`
	Quantity  int    `json:"quantity"`
	Reference string `json:"reference"`
	Notes     string `json:"notes"`
}

type InventoryService struct {
	Inv *repos.InventoryRepo
}

func NewInventoryService(inv *repos.InventoryRepo) *InventoryService {
	return &InventoryService{Inv: inv}
}

// AdjustStock applies one adjustment to an item: validates it, applies the
// signed delta, re-derives the status from scratch, stamps last_updated and
// appends exactly one ledger entry. All-or-nothing.
func (s *InventoryService) AdjustStock(itemID string, adj Adjustment, actor string) (*domain.InventoryItem, error) {
	if adj.Quantity <= 0 || adj.Reference == "" {
		return nil, ErrBadAdjustment
	}
	delta, ok := domain.MovementDelta(adj.Type, adj.Quantity)
	if !ok {
		return nil, ErrBadAdjustment
	}

	it, err := s.Inv.GetItem(itemID)
	if err != nil {
		return nil, err
	}

	before := it.InStock
	after := before + delta
	if after < 0 {
		return nil, fmt.Errorf("%w: have %d, movement needs %d", ErrInsufficientStock, before, -delta)
	}

	now := time.Now().UTC()
	it.InStock = after
	it.Status = domain.DeriveStatus(after, it.ReorderPoint)
	it.LastUpdated = now.Format("2006-01-02")

	mov := &domain.StockMovement{
		ID:             uuid.NewString(),
		ProductID:      it.ProductID,
		ProductName:    it.ProductName,
		MovementType:   adj.Type,
		QuantityChange: delta,
		QuantityBefore: before,
		QuantityAfter:  after,
		Reference:      adj.Reference,
		Notes:          adj.Notes,
		CreatedBy:      actor,
		CreatedAt:      now.Format(time.RFC3339),
	}

	if err := s.Inv.ApplyAdjustment(it, mov); err != nil {
		return nil, err
	}
	return it, nil
}

// LowStock is the alert set: items at or below their reorder point,
// recomputed from current inventory on every call.
func (s *InventoryService) LowStock() ([]domain.InventoryItem, error) {
	return s.Inv.LowStock()
}

func (s *InventoryService) Movements(productID string) ([]domain.StockMovement, error) {
	return s.Inv.Movements(productID)
}

func (s *InventoryService) Ledger(limit int) ([]domain.StockMovement, error) {
	if limit <= 0 {
		limit = 200
	}
	return s.Inv.AllMovements(limit)
}

var inventorySchema = listing.Schema[domain.InventoryItem]{
	SearchFields: []func(domain.InventoryItem) string{
		func(i domain.InventoryItem) string { return i.ProductName },
		func(i domain.InventoryItem) string { return i.SKU },
		func(i domain.InventoryItem) string { return i.VendorName },
	},
	FilterFields: map[string]func(domain.InventoryItem) string{
		"category": func(i domain.InventoryItem) string { return i.Category },
		"status":   func(i domain.InventoryItem) string { return i.Status },
	},
	TextSort: map[string]func(domain.InventoryItem) string{
		"name":   func(i domain.InventoryItem) string { return i.ProductName },
		"sku":    func(i domain.InventoryItem) string { return i.SKU },
		"vendor": func(i domain.InventoryItem) string { return i.VendorName },
	},
	NumericSort: map[string]func(domain.InventoryItem) float64{
		"inStock":      func(i domain.InventoryItem) float64 { return float64(i.InStock) },
		"reorderPoint": func(i domain.InventoryItem) float64 { return float64(i.ReorderPoint) },
		"retailPrice":  func(i domain.InventoryItem) float64 { return i.RetailPrice },
	},
}

// Items lists inventory with the shared search/filter/sort contract applied.
func (s *InventoryService) Items(p listing.Params) ([]domain.InventoryItem, error) {
	items, err := s.Inv.ListItems()
	if err != nil {
		return nil, err
	}
	return listing.Apply(items, inventorySchema, p), nil
}
