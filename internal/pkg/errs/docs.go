// Package errs provides the standardized error types used across the
// food-delivery order lifecycle engine.
//
// Each error type follows the same pattern:
//   - a sentinel error variable (e.g. ErrValueIsRequired) for errors.Is checks
//   - a struct carrying the error details
//   - constructor functions with and without an underlying cause
//   - Error() for formatting and Unwrap() for classification
//
// The taxonomy maps onto operation outcomes: ValueIsInvalid/ValueIsRequired
// for malformed input, ObjectNotFound for missing records, and
// VersionConflict for optimistic-concurrency races lost between read and
// commit. State-machine violations (illegal transition, already-terminal
// order) live as sentinels next to the aggregates that enforce them.
package errs
