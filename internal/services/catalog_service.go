package services

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/WebFlexrr/vendorsphere-sub000/internal/domain"
	"github.com/WebFlexrr/vendorsphere-sub000/internal/listing"
	"github.com/WebFlexrr/vendorsphere-sub000/internal/repos"
)

var ErrMissingFields = errors.New("missing required fields")

// CatalogService owns products and vendors.
type CatalogService struct {
	Products *repos.ProductRepo
	Vendors  *repos.VendorRepo
}

func NewCatalogService(products *repos.ProductRepo, vendors *repos.VendorRepo) *CatalogService {
	return &CatalogService{Products: products, Vendors: vendors}
}

var productSchema = listing.Schema[domain.Product]{
	SearchFields: []func(domain.Product) string{
		func(p domain.Product) string { return p.Name },
		func(p domain.Product) string { return p.SKU },
	},
	FilterFields: map[string]func(domain.Product) string{
		"category": func(p domain.Product) string { return p.Category },
		"status":   func(p domain.Product) string { return p.Status },
		"vendor":   func(p domain.Product) string { return p.VendorID },
	},
	TextSort: map[string]func(domain.Product) string{
		"name": func(p domain.Product) string { return p.Name },
		"sku":  func(p domain.Product) string { return p.SKU },
	},
	NumericSort: map[string]func(domain.Product) float64{
		"retailPrice": func(p domain.Product) float64 { return p.RetailPrice },
		"costPrice":   func(p domain.Product) float64 { return p.CostPrice },
	},
}

func (s *CatalogService) ListProducts(p listing.Params) ([]domain.Product, error) {
	all, err := s.Products.List()
	if err != nil {
		return nil, err
	}
	return listing.Apply(all, productSchema, p), nil
}

func (s *CatalogService) CreateProduct(p *domain.Product) error {
	if p.Name == "" || p.SKU == "" || p.VendorID == "" {
		return ErrMissingFields
	}
	if _, err := s.Vendors.Get(p.VendorID); err != nil {
		return err
	}
	p.ID = uuid.NewString()
	if p.Status == "" {
		p.Status = "DRAFT"
	}
	p.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	return s.Products.Create(p)
}

func (s *CatalogService) UpdateProduct(p *domain.Product) error {
	if p.ID == "" || p.Name == "" || p.SKU == "" {
		return ErrMissingFields
	}
	p.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	return s.Products.Update(p)
}

var vendorSchema = listing.Schema[domain.Vendor]{
	SearchFields: []func(domain.Vendor) string{
		func(v domain.Vendor) string { return v.Name },
		func(v domain.Vendor) string { return v.ContactEmail },
	},
	FilterFields: map[string]func(domain.Vendor) string{
		"status": func(v domain.Vendor) string { return v.Status },
	},
	TextSort: map[string]func(domain.Vendor) string{
		"name": func(v domain.Vendor) string { return v.Name },
	},
	NumericSort: map[string]func(domain.Vendor) float64{
		"commissionRate": func(v domain.Vendor) float64 { return v.CommissionRate },
	},
}

func (s *CatalogService) ListVendors(p listing.Params) ([]domain.Vendor, error) {
	all, err := s.Vendors.List()
	if err != nil {
		return nil, err
	}
	return listing.Apply(all, vendorSchema, p), nil
}

func (s *CatalogService) CreateVendor(v *domain.Vendor) error {
	if v.Name == "" || v.ContactEmail == "" {
		return ErrMissingFields
	}
	v.ID = uuid.NewString()
	if v.Status == "" {
		v.Status = "PENDING"
	}
	v.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	return s.Vendors.Create(v)
}

func (s *CatalogService) UpdateVendor(v *domain.Vendor) error {
	if v.ID == "" || v.Name == "" {
		return ErrMissingFields
	}
	return s.Vendors.Update(v)
}
