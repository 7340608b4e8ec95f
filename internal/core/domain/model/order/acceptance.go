package order

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// Acceptance tracks the driver handshake for an assigned order, orthogonal
// to the order status. AcceptanceNone means no handshake is outstanding:
// either no driver was ever assigned, or a decline cleared the assignment.
type Acceptance string

const (
	AcceptanceNone     Acceptance = ""
	AcceptancePending  Acceptance = "pending"
	AcceptanceAccepted Acceptance = "accepted"
	AcceptanceDeclined Acceptance = "declined"
)

// Validate checks the acceptance value against the closed set.
func (a Acceptance) Validate() error {
	switch a {
	case AcceptanceNone, AcceptancePending, AcceptanceAccepted, AcceptanceDeclined:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("driverAcceptance", fmt.Errorf("%q is not a valid acceptance state", string(a)))
}

func (a Acceptance) String() string {
	return string(a)
}
