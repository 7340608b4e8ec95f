package services

import (
	"errors"

	"fooddelivery/internal/core/domain/model/driver"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// ErrDriverNotFound is returned when no driver in the candidate pool can take
// the order: the pool is empty, or every candidate is offline, blocked, busy,
// or excluded.
var ErrDriverNotFound = errors.New("driver not found")

// DriverDispatcher is a domain service that picks a driver for an order and
// starts the acceptance handshake atomically across both aggregates.
//
// Business rules:
//   - the order must be open and not yet handed to the kitchen's courier
//   - candidates are considered in the given slice order; callers pass them
//     sorted by registration time so selection is deterministic
//   - excluded drivers are skipped, which is how a decliner is kept out of
//     the immediate retry
//   - on success the order carries a pending assignment and the driver is
//     tied to the order in the same step
type DriverDispatcher struct{}

// NewDriverDispatcher creates a new DriverDispatcher instance.
func NewDriverDispatcher() DriverDispatcher {
	return DriverDispatcher{}
}

// Dispatch selects the first eligible candidate and assigns the order to
// them. Returns ErrDriverNotFound when nobody qualifies; the order and every
// candidate are left untouched in that case.
func (d DriverDispatcher) Dispatch(
	ord *order.Order,
	candidates []*driver.Driver,
	exclude []kernel.UUID,
) (*driver.Driver, error) {
	if err := ord.Validate(); err != nil {
		return nil, err
	}

	selected := d.findEligible(ord, candidates, exclude)
	if selected == nil {
		return nil, ErrDriverNotFound
	}

	if err := ord.AssignDriver(selected.ID(), ""); err != nil {
		return nil, err
	}
	if err := selected.MarkBusy(ord.ID()); err != nil {
		return nil, err
	}

	return selected, nil
}

// Redispatch moves a declined order to the first eligible candidate, keeping
// the order's driver history intact via Reassign.
func (d DriverDispatcher) Redispatch(
	ord *order.Order,
	candidates []*driver.Driver,
	exclude []kernel.UUID,
) (*driver.Driver, error) {
	if err := ord.Validate(); err != nil {
		return nil, err
	}

	selected := d.findEligible(ord, candidates, exclude)
	if selected == nil {
		return nil, ErrDriverNotFound
	}

	if err := ord.Reassign(selected.ID(), ""); err != nil {
		return nil, err
	}
	if err := selected.MarkBusy(ord.ID()); err != nil {
		return nil, err
	}

	return selected, nil
}

func (d DriverDispatcher) findEligible(
	ord *order.Order,
	candidates []*driver.Driver,
	exclude []kernel.UUID,
) *driver.Driver {
	for _, candidate := range candidates {
		if candidate == nil || candidate.Validate() != nil {
			continue
		}
		if isExcluded(candidate.ID(), exclude) {
			continue
		}
		if !candidate.IsAvailable() {
			continue
		}
		if candidate.ValidateAssignable(ord.ID()) != nil {
			continue
		}
		return candidate
	}
	return nil
}

func isExcluded(id kernel.UUID, exclude []kernel.UUID) bool {
	for _, excluded := range exclude {
		if id.IsEqual(excluded) {
			return true
		}
	}
	return false
}
