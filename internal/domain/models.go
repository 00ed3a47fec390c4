package domain

// Stock statuses. Status is always derived from (in_stock, reorder_point),
// never set directly.
const (
	StatusInStock     = "IN_STOCK"
	StatusLowStock    = "LOW_STOCK"
	StatusOutOfStock  = "OUT_OF_STOCK"
	StatusOverstocked = "OVERSTOCKED"
)

// Movement types. RECEIVED and RETURNED add stock; SOLD, ADJUSTED and
// TRANSFERRED subtract. ADJUSTED is a write-off; positive corrections are
// recorded as RECEIVED with a note.
const (
	MovementReceived    = "RECEIVED"
	MovementSold        = "SOLD"
	MovementReturned    = "RETURNED"
	MovementAdjusted    = "ADJUSTED"
	MovementTransferred = "TRANSFERRED"
)

// DeriveStatus maps on-hand quantity and reorder point to a stock status.
func DeriveStatus(inStock, reorderPoint int) string {
	switch {
	case inStock <= 0:
		return StatusOutOfStock
	case inStock <= reorderPoint:
		return StatusLowStock
	case inStock > reorderPoint*3:
		return StatusOverstocked
	default:
		return StatusInStock
	}
}

// MovementDelta returns the signed stock delta for a movement of the given
// type and (positive) quantity. ok is false for unknown types.
func MovementDelta(movementType string, quantity int) (delta int, ok bool) {
	switch movementType {
	case MovementReceived, MovementReturned:
		return quantity, true
	case MovementSold, MovementAdjusted, MovementTransferred:
		return -quantity, true
	default:
		return 0, false
	}
}

type InventoryItem struct {
	ID           string  `db:"id" json:"id"`
	ProductID    string  `db:"product_id" json:"productId"`
	ProductName  string  `db:"product_name" json:"productName"`
	SKU          string  `db:"sku" json:"sku"`
	Category     string  `db:"category" json:"category"`
	VendorName   string  `db:"vendor_name" json:"vendorName"`
	Warehouse    string  `db:"warehouse" json:"warehouse"`
	InStock      int     `db:"in_stock" json:"inStock"`
	ReorderPoint int     `db:"reorder_point" json:"reorderPoint"`
	OnOrder      int     `db:"on_order" json:"onOrder"`
	CostPrice    float64 `db:"cost_price" json:"costPrice"`
	RetailPrice  float64 `db:"retail_price" json:"retailPrice"`
	Status       string  `db:"status" json:"status"`
	LastUpdated  string  `db:"last_updated" json:"lastUpdated"`
}

// StockMovement is one row of the append-only movement ledger. Rows are never
// edited or deleted; Seq orders the ledger newest-first.
type StockMovement struct {
	Seq            int64  `db:"seq" json:"-"`
	ID             string `db:"id" json:"id"`
	ProductID      string `db:"product_id" json:"productId"`
	ProductName    string `db:"product_name" json:"productName"`
	MovementType   string `db:"movement_type" json:"type"`
	QuantityChange int    `db:"quantity_change" json:"quantityChange"`
	QuantityBefore int    `db:"quantity_before" json:"quantityBefore"`
	QuantityAfter  int    `db:"quantity_after" json:"quantityAfter"`
	Reference      string `db:"reference" json:"reference"`
	Notes          string `db:"notes" json:"notes,omitempty"`
	CreatedBy      string `db:"created_by" json:"createdBy"`
	CreatedAt      string `db:"created_at" json:"createdAt"`
}

type Product struct {
	ID          string  `db:"id" json:"id"`
	VendorID    string  `db:"vendor_id" json:"vendorId"`
	Name        string  `db:"name" json:"name"`
	SKU         string  `db:"sku" json:"sku"`
	Category    string  `db:"category" json:"category"`
	Description string  `db:"description" json:"description"`
	CostPrice   float64 `db:"cost_price" json:"costPrice"`
	RetailPrice float64 `db:"retail_price" json:"retailPrice"`
	Status      string  `db:"status" json:"status"` // ACTIVE | DRAFT | ARCHIVED
	CreatedAt   string  `db:"created_at" json:"createdAt"`
	UpdatedAt   string  `db:"updated_at" json:"updatedAt"`
}

type Vendor struct {
	ID             string  `db:"id" json:"id"`
	Name           string  `db:"name" json:"name"`
	ContactEmail   string  `db:"contact_email" json:"contactEmail"`
	Phone          string  `db:"phone" json:"phone"`
	CommissionRate float64 `db:"commission_rate" json:"commissionRate"`
	Status         string  `db:"status" json:"status"` // ACTIVE | PENDING | SUSPENDED
	CreatedAt      string  `db:"created_at" json:"createdAt"`
}

type Order struct {
	ID            string  `db:"id" json:"id"`
	VendorID      string  `db:"vendor_id" json:"vendorId"`
	CustomerName  string  `db:"customer_name" json:"customerName"`
	CustomerEmail string  `db:"customer_email" json:"customerEmail"`
	Total         float64 `db:"total" json:"total"`
	Status        string  `db:"status" json:"status"` // PENDING | PROCESSING | SHIPPED | DELIVERED | CANCELED
	CreatedAt     string  `db:"created_at" json:"createdAt"`
}

type Employee struct {
	ID         string `db:"id" json:"id"`
	Name       string `db:"name" json:"name"`
	Email      string `db:"email" json:"email"`
	Department string `db:"department" json:"department"`
	Title      string `db:"title" json:"title"`
	Status     string `db:"status" json:"status"` // ACTIVE | ON_LEAVE | TERMINATED
	CreatedAt  string `db:"created_at" json:"createdAt"`
}

type BlogPost struct {
	ID              string `db:"id" json:"id"`
	Title           string `db:"title" json:"title"`
	Slug            string `db:"slug" json:"slug"`
	Author          string `db:"author" json:"author"`
	MetaDescription string `db:"meta_description" json:"metaDescription"`
	Keywords        string `db:"keywords" json:"keywords"`
	Content         string `db:"content" json:"content"`
	SEOScore        int    `db:"seo_score" json:"seoScore"`
	Status          string `db:"status" json:"status"` // DRAFT | PUBLISHED
	CreatedAt       string `db:"created_at" json:"createdAt"`
	UpdatedAt       string `db:"updated_at" json:"updatedAt"`
}

type CMSPage struct {
	ID              string `db:"id" json:"id"`
	Title           string `db:"title" json:"title"`
	Slug            string `db:"slug" json:"slug"`
	MetaDescription string `db:"meta_description" json:"metaDescription"`
	Keywords        string `db:"keywords" json:"keywords"`
	Content         string `db:"content" json:"content"`
	SEOScore        int    `db:"seo_score" json:"seoScore"`
	Status          string `db:"status" json:"status"` // DRAFT | PUBLISHED
	UpdatedAt       string `db:"updated_at" json:"updatedAt"`
}

type Integration struct {
	ID          string `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Provider    string `db:"provider" json:"provider"`
	Category    string `db:"category" json:"category"` // payments | shipping | marketing | analytics
	Status      string `db:"status" json:"status"`     // CONNECTED | DISCONNECTED
	ConnectedAt string `db:"connected_at" json:"connectedAt"`
}

type Campaign struct {
	ID          string  `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Channel     string  `db:"channel" json:"channel"`
	Impressions int     `db:"impressions" json:"impressions"`
	Clicks      int     `db:"clicks" json:"clicks"`
	Conversions int     `db:"conversions" json:"conversions"`
	Spend       float64 `db:"spend" json:"spend"`
	Revenue     float64 `db:"revenue" json:"revenue"`
	StartsAt    string  `db:"starts_at" json:"startsAt"`
	EndsAt      string  `db:"ends_at" json:"endsAt"`
}

type StoreSettings struct {
	ID             int     `db:"id" json:"-"`
	StoreName      string  `db:"store_name" json:"storeName"`
	Currency       string  `db:"currency" json:"currency"`
	TaxRate        float64 `db:"tax_rate" json:"taxRate"`
	SupportEmail   string  `db:"support_email" json:"supportEmail"`
	LowStockAlerts bool    `db:"low_stock_alerts" json:"lowStockAlerts"`
}
