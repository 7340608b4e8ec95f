package order

import (
	"errors"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// Domain errors for order lifecycle operations.
var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder, NewReplacementOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrItemsAreRequired is returned when placing an order from an empty cart snapshot.
	ErrItemsAreRequired = errors.New("order requires at least one item")
	// ErrInvalidStatusTransition is returned when the requested transition is not
	// an edge of the status table.
	ErrInvalidStatusTransition = errors.New("status transition not allowed")
	// ErrOrderAlreadyClosed is returned for any write against a delivered or
	// cancelled order.
	ErrOrderAlreadyClosed = errors.New("order is already delivered or cancelled")
	// ErrOrderNotAssignable is returned when assigning a driver to an order that
	// is already out for delivery or beyond.
	ErrOrderNotAssignable = errors.New("order is not in an assignable status")
	// ErrNoDriverAssigned is returned for handshake operations on an order with
	// no outstanding driver assignment.
	ErrNoDriverAssigned = errors.New("no driver is assigned to the order")
	// ErrNotAssignedDriver is returned when a driver acts on an order assigned
	// to somebody else.
	ErrNotAssignedDriver = errors.New("driver is not assigned to this order")
	// ErrAssignmentAlreadyResolved is returned when accepting or declining a
	// handshake that is not pending.
	ErrAssignmentAlreadyResolved = errors.New("driver assignment is already resolved")
	// ErrAssignmentNotAccepted is returned when a driver advances status before
	// accepting the assignment.
	ErrAssignmentNotAccepted = errors.New("driver has not accepted the assignment")
	// ErrStatusNotAllowedForDriver is returned when a driver requests a status
	// outside out_for_delivery and delivered.
	ErrStatusNotAllowedForDriver = errors.New("status cannot be set by a driver")
)

// assignableStatuses are the statuses from which a driver may be (re)assigned.
// Once an order is out for delivery the assignment is locked in.
var assignableStatuses = []Status{StatusPlaced, StatusConfirmed, StatusPreparing}

// StatusChange is one entry of the append-only status history.
type StatusChange struct {
	Status    Status
	ChangedAt time.Time
	Note      string
}

// Order is the aggregate root of the lifecycle engine. It owns the status
// state machine, the driver-acceptance handshake sub-state, the money
// invariant and the append-only history; all mutation goes through methods
// that enforce those rules.
//
// Invariants:
//   - total == max(0, subtotal + deliveryFee - discount) after every mutation
//   - the first history entry is always placed, entries are never removed
//   - each per-status timestamp is written at most once
//   - no mutation succeeds once status is delivered or cancelled
type Order struct {
	id           kernel.UUID
	customerID   kernel.UUID
	restaurantID kernel.UUID
	driverID     *kernel.UUID

	items           []Item
	pricing         Pricing
	offerCode       string
	deliveryAddress string

	paymentMethod    PaymentMethod
	paymentStatus    PaymentStatus
	paidAt           *time.Time
	paymentReference string

	status     Status
	acceptance Acceptance
	history    []StatusChange

	confirmedAt      *time.Time
	preparingAt      *time.Time
	outForDeliveryAt *time.Time
	deliveredAt      *time.Time
	cancelledAt      *time.Time

	replacesOrderID *kernel.UUID
	supportNote     string

	createdAt time.Time
	version   int

	guard guard.ConstructorGuard
}

// NewOrder creates an order from a resolved, non-empty cart snapshot. The
// order starts in placed status with a single history entry and a pending
// payment regardless of method.
func NewOrder(
	id, customerID, restaurantID kernel.UUID,
	items []Item,
	pricing Pricing,
	deliveryAddress string,
	paymentMethod PaymentMethod,
	offerCode string,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		restaurantID.Validate(),
		paymentMethod.Validate(),
		validateItems(items),
		validateDeliveryAddress(deliveryAddress),
	); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Order{
		id:              id,
		customerID:      customerID,
		restaurantID:    restaurantID,
		items:           append([]Item(nil), items...),
		pricing:         pricing,
		offerCode:       offerCode,
		deliveryAddress: deliveryAddress,
		paymentMethod:   paymentMethod,
		paymentStatus:   PaymentPending,
		status:          StatusPlaced,
		history:         []StatusChange{{Status: StatusPlaced, ChangedAt: now}},
		createdAt:       now,
		version:         1,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// NewReplacementOrder clones a prior order into a fresh placed order for a
// support case. Items, pricing, address, payment method and offer code are
// copied; payment resets to pending, no driver is carried over, and the new
// order keeps a back-reference to the one it replaces. The original order is
// not touched.
func NewReplacementOrder(id kernel.UUID, original *Order, supportNote string) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := original.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	originalID := original.id
	return &Order{
		id:              id,
		customerID:      original.customerID,
		restaurantID:    original.restaurantID,
		items:           append([]Item(nil), original.items...),
		pricing:         original.pricing,
		offerCode:       original.offerCode,
		deliveryAddress: original.deliveryAddress,
		paymentMethod:   original.paymentMethod,
		paymentStatus:   PaymentPending,
		status:          StatusPlaced,
		history: []StatusChange{{
			Status:    StatusPlaced,
			ChangedAt: now,
			Note:      fmt.Sprintf("Replacement for %s", originalID),
		}},
		replacesOrderID: &originalID,
		supportNote:     supportNote,
		createdAt:       now,
		version:         1,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// RestoreOrderParams carries the full persisted state of an order.
type RestoreOrderParams struct {
	ID               kernel.UUID
	CustomerID       kernel.UUID
	RestaurantID     kernel.UUID
	DriverID         *kernel.UUID
	Items            []Item
	Pricing          Pricing
	OfferCode        string
	DeliveryAddress  string
	PaymentMethod    PaymentMethod
	PaymentStatus    PaymentStatus
	PaidAt           *time.Time
	PaymentReference string
	Status           Status
	Acceptance       Acceptance
	History          []StatusChange
	ConfirmedAt      *time.Time
	PreparingAt      *time.Time
	OutForDeliveryAt *time.Time
	DeliveredAt      *time.Time
	CancelledAt      *time.Time
	ReplacesOrderID  *kernel.UUID
	SupportNote      string
	CreatedAt        time.Time
	Version          int
}

// RestoreOrder reconstructs an order from persistence. It validates the
// enum-valued fields but trusts stored history and timestamps.
func RestoreOrder(p RestoreOrderParams) (*Order, error) {
	if err := errors.Join(
		p.ID.Validate(),
		p.CustomerID.Validate(),
		p.RestaurantID.Validate(),
		p.Status.Validate(),
		p.Acceptance.Validate(),
		p.PaymentMethod.Validate(),
		p.PaymentStatus.Validate(),
	); err != nil {
		return nil, err
	}
	if p.Version < 1 {
		return nil, errs.NewVersionIsInvalidError("order version", fmt.Errorf("%d is not a positive version", p.Version))
	}

	return &Order{
		id:               p.ID,
		customerID:       p.CustomerID,
		restaurantID:     p.RestaurantID,
		driverID:         p.DriverID,
		items:            append([]Item(nil), p.Items...),
		pricing:          p.Pricing,
		offerCode:        p.OfferCode,
		deliveryAddress:  p.DeliveryAddress,
		paymentMethod:    p.PaymentMethod,
		paymentStatus:    p.PaymentStatus,
		paidAt:           p.PaidAt,
		paymentReference: p.PaymentReference,
		status:           p.Status,
		acceptance:       p.Acceptance,
		history:          append([]StatusChange(nil), p.History...),
		confirmedAt:      p.ConfirmedAt,
		preparingAt:      p.PreparingAt,
		outForDeliveryAt: p.OutForDeliveryAt,
		deliveredAt:      p.DeliveredAt,
		cancelledAt:      p.CancelledAt,
		replacesOrderID:  p.ReplacesOrderID,
		supportNote:      p.SupportNote,
		createdAt:        p.CreatedAt,
		version:          p.Version,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the order came from one of the constructors.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// CustomerID returns the ordering customer's account id.
func (o *Order) CustomerID() kernel.UUID { return o.customerID }

// RestaurantID returns the fulfilling restaurant's account id.
func (o *Order) RestaurantID() kernel.UUID { return o.restaurantID }

// DriverID returns the assigned driver's id, nil while unassigned.
func (o *Order) DriverID() *kernel.UUID { return o.driverID }

// Items returns a copy of the line-item snapshots.
func (o *Order) Items() []Item { return append([]Item(nil), o.items...) }

// Pricing returns the money breakdown frozen at placement.
func (o *Order) Pricing() Pricing { return o.pricing }

// Total returns the clamped amount owed.
func (o *Order) Total() float64 { return o.pricing.Total() }

// OfferCode returns the applied offer code, empty if none.
func (o *Order) OfferCode() string { return o.offerCode }

// DeliveryAddress returns the resolved delivery address text.
func (o *Order) DeliveryAddress() string { return o.deliveryAddress }

// PaymentMethod returns how the customer chose to pay.
func (o *Order) PaymentMethod() PaymentMethod { return o.paymentMethod }

// PaymentStatus returns the payment bookkeeping state.
func (o *Order) PaymentStatus() PaymentStatus { return o.paymentStatus }

// PaidAt returns when payment was captured, nil while unpaid.
func (o *Order) PaidAt() *time.Time { return o.paidAt }

// PaymentReference returns the external payment reference, empty if none.
func (o *Order) PaymentReference() string { return o.paymentReference }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// DriverAcceptance returns the handshake sub-state.
func (o *Order) DriverAcceptance() Acceptance { return o.acceptance }

// History returns a copy of the append-only status history.
func (o *Order) History() []StatusChange { return append([]StatusChange(nil), o.history...) }

// ConfirmedAt returns when the order first reached confirmed.
func (o *Order) ConfirmedAt() *time.Time { return o.confirmedAt }

// PreparingAt returns when the order first reached preparing.
func (o *Order) PreparingAt() *time.Time { return o.preparingAt }

// OutForDeliveryAt returns when the order first went out for delivery.
func (o *Order) OutForDeliveryAt() *time.Time { return o.outForDeliveryAt }

// DeliveredAt returns when the order was delivered.
func (o *Order) DeliveredAt() *time.Time { return o.deliveredAt }

// CancelledAt returns when the order was cancelled.
func (o *Order) CancelledAt() *time.Time { return o.cancelledAt }

// ReplacesOrderID returns the order this one replaces, nil for regular orders.
func (o *Order) ReplacesOrderID() *kernel.UUID { return o.replacesOrderID }

// SupportNote returns the admin note attached to a replacement order.
func (o *Order) SupportNote() string { return o.supportNote }

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// Version returns the optimistic-concurrency version as loaded.
func (o *Order) Version() int { return o.version }

// IsTerminal reports whether the order is delivered or cancelled.
func (o *Order) IsTerminal() bool {
	return o.status.IsTerminal()
}

// WithinCancellationWindow reports whether a customer (or a restaurant
// rejecting the order) may still cancel. Once preparation starts,
// cancellation must go through a delivery-aware support path instead.
func (o *Order) WithinCancellationWindow() bool {
	return o.status == StatusPlaced || o.status == StatusConfirmed
}

// TransitionTo applies a validated status transition: terminal orders reject
// everything, then the table decides. On success the history grows by one
// entry and the first-arrival timestamp is stamped. Reaching delivered on a
// cash-on-delivery order captures the payment, since cash changes hands at
// the door.
func (o *Order) TransitionTo(newStatus Status, note string) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}
	if o.status.IsTerminal() {
		return ErrOrderAlreadyClosed
	}
	if !o.status.CanTransition(newStatus) {
		return ErrInvalidStatusTransition
	}

	now := time.Now().UTC()
	o.status = newStatus
	o.history = append(o.history, StatusChange{Status: newStatus, ChangedAt: now, Note: note})
	o.stampStatusTime(newStatus, now)

	if newStatus == StatusDelivered && o.paymentMethod == PaymentCashOnDelivery && o.paymentStatus != PaymentPaid {
		o.paymentStatus = PaymentPaid
		o.paidAt = &now
	}

	return nil
}

// AssignDriver starts the acceptance handshake with a driver. Orders already
// out for delivery or beyond cannot be reassigned through this path. A
// placed order is auto-confirmed first, with a synthetic history note that
// distinguishes the automatic advance from an explicit restaurant action.
func (o *Order) AssignDriver(driverID kernel.UUID, note string) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if o.status.IsTerminal() {
		return ErrOrderAlreadyClosed
	}
	if !o.isAssignable() {
		return ErrOrderNotAssignable
	}

	if o.status == StatusPlaced {
		if err := o.TransitionTo(StatusConfirmed, "Auto-confirmed on driver assignment"); err != nil {
			return err
		}
	}

	now := time.Now().UTC()
	o.driverID = &driverID
	o.acceptance = AcceptancePending
	if note == "" {
		note = "Driver assigned"
	}
	o.history = append(o.history, StatusChange{Status: o.status, ChangedAt: now, Note: note})
	return nil
}

// AcceptAssignment resolves a pending handshake positively. Only the
// currently-assigned driver may accept, exactly once.
func (o *Order) AcceptAssignment(driverID kernel.UUID) error {
	if err := o.validateHandshake(driverID); err != nil {
		return err
	}

	o.acceptance = AcceptanceAccepted
	o.history = append(o.history, StatusChange{
		Status:    o.status,
		ChangedAt: time.Now().UTC(),
		Note:      "Driver accepted assignment",
	})
	return nil
}

// DeclineAssignment resolves a pending handshake negatively: the driver tie
// is cleared so a replacement can be sought. The caller decides whether a
// reassignment (Reassign) or a reset to manual assignment (ClearAssignment)
// follows.
func (o *Order) DeclineAssignment(driverID kernel.UUID) error {
	if err := o.validateHandshake(driverID); err != nil {
		return err
	}

	o.acceptance = AcceptanceDeclined
	o.driverID = nil
	o.history = append(o.history, StatusChange{
		Status:    o.status,
		ChangedAt: time.Now().UTC(),
		Note:      "Driver declined assignment",
	})
	return nil
}

// Reassign hands a declined order to a replacement driver, re-entering the
// pending handshake state.
func (o *Order) Reassign(driverID kernel.UUID, note string) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if o.status.IsTerminal() {
		return ErrOrderAlreadyClosed
	}

	o.driverID = &driverID
	o.acceptance = AcceptancePending
	if note == "" {
		note = "Reassigned to another driver"
	}
	o.history = append(o.history, StatusChange{Status: o.status, ChangedAt: time.Now().UTC(), Note: note})
	return nil
}

// ClearAssignment resets the handshake after a failed reassignment search;
// the order reverts to awaiting manual assignment.
func (o *Order) ClearAssignment() {
	o.driverID = nil
	o.acceptance = AcceptanceNone
}

// AdvanceByDriver is the driver's only status write: out_for_delivery or
// delivered, on an order they are assigned to and have accepted, subject to
// the transition table.
func (o *Order) AdvanceByDriver(driverID kernel.UUID, newStatus Status, note string) error {
	if newStatus != StatusOutForDelivery && newStatus != StatusDelivered {
		return ErrStatusNotAllowedForDriver
	}
	if o.driverID == nil {
		return ErrNoDriverAssigned
	}
	if !o.driverID.IsEqual(driverID) {
		return ErrNotAssignedDriver
	}
	if o.status.IsTerminal() {
		return ErrOrderAlreadyClosed
	}
	if o.acceptance != AcceptanceAccepted {
		return ErrAssignmentNotAccepted
	}

	return o.TransitionTo(newStatus, note)
}

// validateHandshake guards accept/decline: a driver must be assigned, must
// be the caller, and the handshake must still be pending.
func (o *Order) validateHandshake(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if o.driverID == nil {
		return ErrNoDriverAssigned
	}
	if !o.driverID.IsEqual(driverID) {
		return ErrNotAssignedDriver
	}
	if o.acceptance != AcceptancePending {
		return ErrAssignmentAlreadyResolved
	}
	return nil
}

func (o *Order) isAssignable() bool {
	for _, status := range assignableStatuses {
		if o.status == status {
			return true
		}
	}
	return false
}

func validateItems(items []Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	for _, item := range items {
		if item.name == "" || item.quantity < 1 {
			return errs.NewValueIsInvalidError("items")
		}
	}
	return nil
}

func validateDeliveryAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	return nil
}
