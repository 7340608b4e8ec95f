package order

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// Status is the customer-visible delivery stage of an order. It implements a
// state machine with a fixed transition table; anything not listed in the
// table is rejected.
//
// State transitions:
//
//	placed ──> confirmed ──> preparing ──> out_for_delivery ──> delivered
//	   │           │  └──────────────────────────^  │
//	   └───────────┴──> cancelled <─────────────────┘
//
// confirmed -> out_for_delivery is allowed directly so restaurants that hand
// off to a driver without a distinct preparing step are not forced through
// it. delivered and cancelled are terminal.
type Status string

const (
	StatusPlaced         Status = "placed"
	StatusConfirmed      Status = "confirmed"
	StatusPreparing      Status = "preparing"
	StatusOutForDelivery Status = "out_for_delivery"
	StatusDelivered      Status = "delivered"
	StatusCancelled      Status = "cancelled"
)

// validTransitions is the complete status graph. Terminal statuses map to an
// empty set rather than being absent so that Validate can treat presence in
// this map as status validity.
func validTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusPlaced:         {StatusConfirmed, StatusCancelled},
		StatusConfirmed:      {StatusPreparing, StatusCancelled, StatusOutForDelivery},
		StatusPreparing:      {StatusOutForDelivery, StatusCancelled},
		StatusOutForDelivery: {StatusDelivered, StatusCancelled},
		StatusDelivered:      {},
		StatusCancelled:      {},
	}
}

// StatusFromString parses a status received from the transport layer.
func StatusFromString(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks the status against the closed set of known statuses.
func (s Status) Validate() error {
	if _, ok := validTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid order status", string(s)))
	}
	return nil
}

func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether no further transitions are permitted.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransition reports whether the table contains a directed edge from s to
// target. Terminal statuses never transition; unknown statuses fail closed.
func (s Status) CanTransition(target Status) bool {
	if s.IsTerminal() {
		return false
	}
	for _, next := range validTransitions()[s] {
		if next == target {
			return true
		}
	}
	return false
}
