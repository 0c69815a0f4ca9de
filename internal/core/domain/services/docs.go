// Package services provides domain services that implement business logic
// spanning more than one aggregate of the parcel marketplace.
//
// The package includes:
//   - PriceEstimator: computes a suggested price for a parcel from its size,
//     weight, and category
//   - PriceAdjuster: applies a bounded percentage adjustment to a suggested
//     price when a delivery is created
package services
