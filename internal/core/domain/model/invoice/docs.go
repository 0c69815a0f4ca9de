// Package invoice contains the Invoice aggregate: the billing record issued
// for a delivery, tracking its amount breakdown and payment lifecycle.
package invoice
