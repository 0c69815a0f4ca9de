package services

import (
	"math"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/pkg/errs"
)

// Bounds for the sender's percentage adjustment of a suggested price.
const (
	MinAdjustmentPercent = -30
	MaxAdjustmentPercent = 30
)

// Floor for any adjusted price, in currency units.
const minimumPrice = 1.00

// PriceAdjuster is a domain service that applies a sender's percentage
// adjustment to a suggested price when a delivery is created.
//
// Business rules:
//   - The percentage must lie within [MinAdjustmentPercent, MaxAdjustmentPercent]
//   - The adjusted price is rounded to the cent
//   - The result never drops below the minimum price floor
type PriceAdjuster struct{}

// NewPriceAdjuster creates a new PriceAdjuster instance.
func NewPriceAdjuster() PriceAdjuster {
	return PriceAdjuster{}
}

// Adjust applies the percentage to the suggested price and returns the final
// price. An out-of-bounds percentage is rejected with a ValueIsOutOfRangeError.
func (a PriceAdjuster) Adjust(suggested kernel.Money, percent int) (kernel.Money, error) {
	if percent < MinAdjustmentPercent || percent > MaxAdjustmentPercent {
		return kernel.Money{}, errs.NewValueIsOutOfRangeError(
			"adjustmentPercent", percent, MinAdjustmentPercent, MaxAdjustmentPercent,
		)
	}

	adjusted := suggested.Float64() * (1 + float64(percent)/100)
	adjusted = math.Round(adjusted*100) / 100
	adjusted = math.Max(minimumPrice, adjusted)

	return kernel.NewMoneyFromFloat(adjusted)
}
