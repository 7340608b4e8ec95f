package order

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// PaymentMethod is the closed set of payment options accepted at placement.
type PaymentMethod string

const (
	PaymentCashOnDelivery PaymentMethod = "cod"
	PaymentCard           PaymentMethod = "card"
	PaymentUPI            PaymentMethod = "upi"
)

// PaymentMethodFromString parses a payment method received from the transport layer.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	method := PaymentMethod(s)
	if err := method.Validate(); err != nil {
		return "", err
	}
	return method, nil
}

// Validate checks the method against the closed set.
func (m PaymentMethod) Validate() error {
	switch m {
	case PaymentCashOnDelivery, PaymentCard, PaymentUPI:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("paymentMethod", fmt.Errorf("%q is not a supported payment method", string(m)))
}

func (m PaymentMethod) String() string {
	return string(m)
}

// PaymentStatus is the bookkeeping state of an order's payment. All methods
// start pending; cash-on-delivery flips to paid when the driver marks the
// order delivered.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

// Validate checks the payment status against the closed set.
func (s PaymentStatus) Validate() error {
	switch s {
	case PaymentPending, PaymentPaid, PaymentFailed:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("paymentStatus", fmt.Errorf("%q is not a valid payment status", string(s)))
}

func (s PaymentStatus) String() string {
	return string(s)
}
