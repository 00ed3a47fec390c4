package services

import (
	"fmt"

	"github.com/WebFlexrr/vendorsphere-sub000/internal/domain"
	"github.com/WebFlexrr/vendorsphere-sub000/internal/listing"
	"github.com/WebFlexrr/vendorsphere-sub000/internal/repos"
)

var orderStatuses = map[string]bool{
	"PENDING":    true,
	"PROCESSING": true,
	"SHIPPED":    true,
	"DELIVERED":  true,
	"CANCELED":   true,
}

type OrderService struct {
	Orders *repos.OrderRepo
}

func NewOrderService(orders *repos.OrderRepo) *OrderService {
	return &OrderService{Orders: orders}
}

var orderSchema = listing.Schema[domain.Order]{
	SearchFields: []func(domain.Order) string{
		func(o domain.Order) string { return o.ID },
		func(o domain.Order) string { return o.CustomerName },
		func(o domain.Order) string { return o.CustomerEmail },
	},
	FilterFields: map[string]func(domain.Order) string{
		"status": func(o domain.Order) string { return o.Status },
		"vendor": func(o domain.Order) string { return o.VendorID },
	},
	TextSort: map[string]func(domain.Order) string{
		"customer":  func(o domain.Order) string { return o.CustomerName },
		"createdAt": func(o domain.Order) string { return o.CreatedAt },
	},
	NumericSort: map[string]func(domain.Order) float64{
		"total": func(o domain.Order) float64 { return o.Total },
	},
}

func (s *OrderService) List(p listing.Params) ([]domain.Order, error) {
	all, err := s.Orders.List()
	if err != nil {
		return nil, err
	}
	return listing.Apply(all, orderSchema, p), nil
}

func (s *OrderService) UpdateStatus(id, status string) error {
	if !orderStatuses[status] {
		return fmt.Errorf("unknown order status %q", status)
	}
	return s.Orders.UpdateStatus(id, status)
}
