// Package kernel contains the shared value objects of the domain model: UUID
// identifiers, Money amounts, postal Addresses, and delivery TrackingNumbers.
//
// All types in this package are immutable value objects. Zero values are invalid and
// every type must be created through its constructor function; Validate reports
// whether an instance was properly constructed. This keeps aggregates free of
// half-initialized identifiers and amounts when they are rehydrated from persistence
// or parsed from external input.
package kernel
