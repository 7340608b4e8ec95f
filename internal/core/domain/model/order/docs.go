// Package order implements the Order aggregate of the food-delivery
// lifecycle engine.
//
// The package contains:
//   - Order: the aggregate root owning status, money, history and the
//     driver-acceptance handshake
//   - Status: the lifecycle state machine
//     (placed/confirmed/preparing/out_for_delivery/delivered/cancelled)
//   - Acceptance: the handshake sub-state, orthogonal to Status
//   - Item, Pricing, PaymentMethod, PaymentStatus: placement-time snapshots
//
// Key business rules:
//   - status transitions follow a fixed table; delivered and cancelled are
//     terminal and reject every further write
//   - line items and money are frozen at placement and never change
//   - each per-status timestamp is recorded once, on first arrival
//   - cash-on-delivery payment is captured when the driver marks delivered
package order
