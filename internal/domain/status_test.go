package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveStatus(t *testing.T) {
	cases := []struct {
		name         string
		inStock      int
		reorderPoint int
		want         string
	}{
		{"zero is out of stock", 0, 10, StatusOutOfStock},
		{"negative is out of stock", -3, 10, StatusOutOfStock},
		{"at reorder point is low", 10, 10, StatusLowStock},
		{"below reorder point is low", 4, 10, StatusLowStock},
		{"just above reorder point is in stock", 11, 10, StatusInStock},
		{"exactly triple is still in stock", 30, 10, StatusInStock},
		{"above triple is overstocked", 31, 10, StatusOverstocked},
		{"zero reorder point with stock", 5, 0, StatusOverstocked},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DeriveStatus(tc.inStock, tc.reorderPoint))
		})
	}
}

func TestMovementDelta(t *testing.T) {
	cases := []struct {
		movementType string
		want         int
		ok           bool
	}{
		{MovementReceived, 7, true},
		{MovementReturned, 7, true},
		{MovementSold, -7, true},
		{MovementAdjusted, -7, true},
		{MovementTransferred, -7, true},
		{"STOLEN", 0, false},
		{"received", 0, false}, // types are case-sensitive
	}
	for _, tc := range cases {
		t.Run(tc.movementType, func(t *testing.T) {
			delta, ok := MovementDelta(tc.movementType, 7)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, delta)
		})
	}
}
