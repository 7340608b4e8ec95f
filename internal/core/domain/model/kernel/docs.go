// Package kernel holds the shared value objects used by every aggregate in
// the order lifecycle engine: identifier UUIDs and actor roles. Types here
// are immutable, constructed through validating factories, and carry no
// behavior specific to any single aggregate.
package kernel
