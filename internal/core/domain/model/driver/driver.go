package driver

import (
	"errors"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// Domain errors for driver directory operations.
var (
	// ErrDriverIsNotConstructed is returned when a Driver was not created through
	// NewDriver or RestoreDriver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")
	// ErrDriverIsBusy is returned when tying a driver to an order while they
	// already carry a different one.
	ErrDriverIsBusy = errors.New("driver already carries another order")
	// ErrDriverIsOffline is returned when assigning work to an offline driver.
	ErrDriverIsOffline = errors.New("driver is offline")
	// ErrDriverIsBlocked is returned when assigning work to a blocked driver.
	ErrDriverIsBlocked = errors.New("driver account is blocked")
)

// Driver is the directory's view of one driver-role account: whether they are
// reachable for new work and which order they currently carry.
//
// Invariants:
//   - currentOrderID is non-nil only while that order still needs the driver;
//     MarkFree is the single idempotent way to sever the tie
//   - going offline never clears currentOrderID: a driver mid-delivery stays
//     tracked, they merely stop being eligible for new assignments
//   - MarkFree forces online=true, mirroring auto-reactivation on completion
type Driver struct {
	id             kernel.UUID
	name           string
	online         bool
	blocked        bool
	currentOrderID *kernel.UUID
	registeredAt   time.Time
	version        int

	guard guard.ConstructorGuard
}

// NewDriver registers a driver profile, offline and free. Profiles are
// created lazily, on the first online toggle or first assignment.
func NewDriver(id kernel.UUID, name string) (*Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("driver name")
	}

	return &Driver{
		id:           id,
		name:         name,
		registeredAt: time.Now().UTC(),
		version:      1,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// RestoreDriver reconstructs a driver profile from persistence.
func RestoreDriver(
	id kernel.UUID,
	name string,
	online, blocked bool,
	currentOrderID *kernel.UUID,
	registeredAt time.Time,
	version int,
) (*Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if version < 1 {
		return nil, errs.NewVersionIsInvalidError("driver version", fmt.Errorf("%d is not a positive version", version))
	}

	return &Driver{
		id:             id,
		name:           name,
		online:         online,
		blocked:        blocked,
		currentOrderID: currentOrderID,
		registeredAt:   registeredAt,
		version:        version,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the driver came from one of the constructors.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// ID returns the driver's account identifier.
func (d *Driver) ID() kernel.UUID { return d.id }

// Name returns the driver's display name.
func (d *Driver) Name() string { return d.name }

// IsOnline reports whether the driver toggled themselves reachable.
func (d *Driver) IsOnline() bool { return d.online }

// IsBlocked reports whether the account is administratively blocked.
func (d *Driver) IsBlocked() bool { return d.blocked }

// CurrentOrderID returns the order the driver carries, nil when free.
func (d *Driver) CurrentOrderID() *kernel.UUID { return d.currentOrderID }

// RegisteredAt returns when the profile was first created. FindAvailable
// orders candidates by this, earliest first, so selection is deterministic
// for a given directory snapshot.
func (d *Driver) RegisteredAt() time.Time { return d.registeredAt }

// Version returns the optimistic-concurrency version as loaded.
func (d *Driver) Version() int { return d.version }

// IsAvailable reports whether the driver can receive a new assignment:
// online, not blocked, and carrying nothing.
func (d *Driver) IsAvailable() bool {
	return d.online && !d.blocked && d.currentOrderID == nil
}

// SetOnline flips the driver-controlled reachability flag. Going offline
// deliberately keeps the current order: a driver mid-delivery cannot vanish
// from tracking.
func (d *Driver) SetOnline(online bool) {
	d.online = online
}

// SetBlocked flips the administrative block flag.
func (d *Driver) SetBlocked(blocked bool) {
	d.blocked = blocked
}

// MarkBusy ties the driver to an order. Tying to the same order again is a
// no-op; tying to a different order while busy fails. Assignment keeps the
// driver online, matching the directory's view that dispatching implies
// reachability.
func (d *Driver) MarkBusy(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if d.currentOrderID != nil && !d.currentOrderID.IsEqual(orderID) {
		return ErrDriverIsBusy
	}

	d.currentOrderID = &orderID
	d.online = true
	return nil
}

// MarkFree severs the order tie and brings the driver back online for new
// work. Safe to call when already free.
func (d *Driver) MarkFree() {
	d.currentOrderID = nil
	d.online = true
}

// ValidateAssignable checks the preconditions for handing this driver a new
// order: not blocked, online, and free or already tied to the same order.
func (d *Driver) ValidateAssignable(orderID kernel.UUID) error {
	if d.blocked {
		return ErrDriverIsBlocked
	}
	if !d.online {
		return ErrDriverIsOffline
	}
	if d.currentOrderID != nil && !d.currentOrderID.IsEqual(orderID) {
		return ErrDriverIsBusy
	}
	return nil
}
