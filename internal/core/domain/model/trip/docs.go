// Package trip implements the trip aggregate: a transport leg a traveler offers
// between two cities, with a scheduled window, a vehicle type, and finite capacity
// (parcel count, volume, and weight).
//
// Trips do not own deliveries; deliveries reference a trip and the application layer
// enforces that non-canceled references never exceed the trip's parcel capacity.
// Completing or canceling a trip that still carries active deliveries is allowed,
// but the caller receives the count of affected deliveries as a warning and is
// responsible for the cascading effects.
//
// Lifecycle: SCHEDULED -> {IN_PROGRESS, COMPLETED, CANCELED};
// IN_PROGRESS -> {COMPLETED, CANCELED}. COMPLETED and CANCELED are terminal.
package trip
