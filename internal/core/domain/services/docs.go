// Package services provides domain services that orchestrate business
// operations across multiple aggregates of the order lifecycle engine.
//
// The package includes:
//   - DriverDispatcher: selects an available driver for an order and starts
//     the acceptance handshake on both aggregates atomically
//
// Domain services hold workflow logic that spans the Order and Driver
// aggregates and therefore does not belong to either one alone.
package services
