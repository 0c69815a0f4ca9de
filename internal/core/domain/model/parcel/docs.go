// Package parcel implements the parcel aggregate: a physical item a client wants
// shipped, described by its weight, size category, content category, and fragility.
//
// A parcel is created by the estimation step with a computed price and no owning
// delivery; delivery creation later binds it to exactly one delivery. The aggregate
// enforces:
//   - weight must be positive and must fall inside the declared size category's
//     weight range
//   - the estimated price is set at construction and only changes through an
//     explicit re-estimation
//   - a parcel binds to at most one delivery, and the binding is permanent
//   - status only moves along the edges of the parcel lifecycle
//     (PENDING -> ACCEPTED -> REGISTERED -> PICKED_UP, with CANCELED reachable
//     from every non-terminal state except PICKED_UP)
//
// Like every aggregate in the model, Parcel has private fields, is created through
// NewParcel, and is rehydrated from persistence through RestoreParcel.
package parcel
