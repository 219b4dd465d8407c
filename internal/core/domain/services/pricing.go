package services

import (
	"math"

	"pizzabot/internal/core/domain/model/order"
)

// Totals is the breakdown produced at checkout, in whole currency units.
type Totals struct {
	Subtotal    int `json:"subtotal"`
	DeliveryFee int `json:"delivery_fee"`
	Tax         int `json:"tax"`
	Total       int `json:"total"`
}

// PricingEngine computes order totals. It is a pure domain service: same
// inputs always produce the same Totals, there are no side effects, and it is
// safe to call from any number of goroutines.
//
// Fee selection is the caller's responsibility: pass the catalog's delivery
// fee for delivery orders and zero for pickup.
type PricingEngine struct{}

// NewPricingEngine creates a PricingEngine instance.
func NewPricingEngine() PricingEngine {
	return PricingEngine{}
}

// ComputeTotals calculates subtotal, tax and total for the given line items.
//
//	subtotal = sum(qty * unitPrice) over items, integer arithmetic
//	tax      = round(subtotal * taxPercent), half-to-even
//	total    = subtotal + deliveryFee + tax
//
// Half-to-even rounding keeps the tax within one unit of the exact value and
// avoids the systematic upward drift of always rounding halves up.
func (PricingEngine) ComputeTotals(items []*order.Item, deliveryFee int, taxPercent float64) Totals {
	subtotal := 0
	for _, item := range items {
		subtotal += item.Qty() * item.UnitPrice()
	}

	tax := int(math.RoundToEven(float64(subtotal) * taxPercent))

	return Totals{
		Subtotal:    subtotal,
		DeliveryFee: deliveryFee,
		Tax:         tax,
		Total:       subtotal + deliveryFee + tax,
	}
}
