// Package delivery implements the delivery aggregate: the shipment contract between
// a sender and a receiver, optionally riding a traveler's trip.
//
// A delivery owns the parcels bound to it at creation, carries pickup and delivery
// addresses, and holds the unique tracking number assigned once and never
// regenerated. Its estimated price equals the sum of its parcels' estimates unless
// a bounded price adjustment was applied before creation.
//
// The delivery lifecycle is the richest state machine in the model:
//
//	UNASSIGNED -> RESERVED -> PENDING -> ACCEPTED -> PAYMENT_PENDING
//	PAYMENT_PENDING -> PAYMENT_SUCCESS | PAYMENT_FAILED
//	PAYMENT_FAILED  -> PAYMENT_PENDING (payment retry)
//	PAYMENT_SUCCESS -> PICKED_UP -> IN_TRANSIT -> DELIVERED
//
// CANCELED and FAILED are reachable from every non-terminal state; DELIVERED,
// CANCELED, and FAILED are terminal. Illegal transition requests are rejected with
// a typed error carrying both states and never mutate the aggregate.
package delivery
