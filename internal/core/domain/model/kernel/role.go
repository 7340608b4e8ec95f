package kernel

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// Role identifies which kind of account is performing an operation.
// Authentication happens upstream; the lifecycle engine only consumes the
// resolved role to gate operations.
type Role string

const (
	RoleCustomer   Role = "customer"
	RoleRestaurant Role = "restaurant"
	RoleDriver     Role = "driver"
	RoleAdmin      Role = "admin"
)

// RoleFromString parses and validates a role received from the transport layer.
func RoleFromString(s string) (Role, error) {
	role := Role(s)
	if err := role.Validate(); err != nil {
		return "", err
	}
	return role, nil
}

// Validate checks the role against the closed set of known roles.
func (r Role) Validate() error {
	switch r {
	case RoleCustomer, RoleRestaurant, RoleDriver, RoleAdmin:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", string(r)))
}

func (r Role) String() string {
	return string(r)
}

// Actor is the identity on whose behalf a lifecycle operation runs.
type Actor struct {
	id   UUID
	role Role
}

// NewActor builds a validated actor from an account id and its role.
func NewActor(id UUID, role Role) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}
	return Actor{id: id, role: role}, nil
}

// ID returns the acting account's identifier.
func (a Actor) ID() UUID {
	return a.id
}

// Role returns the acting account's role.
func (a Actor) Role() Role {
	return a.role
}

// Validate reports whether the actor was properly constructed.
func (a Actor) Validate() error {
	if err := a.id.Validate(); err != nil {
		return err
	}
	return a.role.Validate()
}
