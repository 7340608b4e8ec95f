package order

import (
	"errors"

	"fooddelivery/internal/pkg/errs"
)

// Pricing carries the money breakdown computed at placement time. Every
// component is non-negative and the order total is derived, never stored
// independently: total == max(0, subtotal + deliveryFee - discount).
type Pricing struct {
	subtotal    float64
	deliveryFee float64
	discount    float64
}

// NewPricing validates and builds a pricing breakdown.
func NewPricing(subtotal, deliveryFee, discount float64) (Pricing, error) {
	pricing := Pricing{}

	if err := errors.Join(
		pricing.setSubtotal(subtotal),
		pricing.setDeliveryFee(deliveryFee),
		pricing.setDiscount(discount),
	); err != nil {
		return Pricing{}, err
	}

	return pricing, nil
}

// Subtotal returns the sum of item line totals.
func (p Pricing) Subtotal() float64 {
	return p.subtotal
}

// DeliveryFee returns the restaurant's configured delivery fee.
func (p Pricing) DeliveryFee() float64 {
	return p.deliveryFee
}

// Discount returns the amount granted by an offer code, zero if none.
func (p Pricing) Discount() float64 {
	return p.discount
}

// Total returns the amount the customer owes. A discount larger than
// subtotal plus fee clamps to zero rather than going negative.
func (p Pricing) Total() float64 {
	total := p.subtotal + p.deliveryFee - p.discount
	if total < 0 {
		return 0
	}
	return total
}

func (p *Pricing) setSubtotal(subtotal float64) error {
	if subtotal < 0 {
		return errs.NewValueIsOutOfRangeError("subtotal", subtotal, 0, nil)
	}
	p.subtotal = subtotal
	return nil
}

func (p *Pricing) setDeliveryFee(deliveryFee float64) error {
	if deliveryFee < 0 {
		return errs.NewValueIsOutOfRangeError("deliveryFee", deliveryFee, 0, nil)
	}
	p.deliveryFee = deliveryFee
	return nil
}

func (p *Pricing) setDiscount(discount float64) error {
	if discount < 0 {
		return errs.NewValueIsOutOfRangeError("discount", discount, 0, nil)
	}
	p.discount = discount
	return nil
}
