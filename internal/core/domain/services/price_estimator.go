package services

import (
	"fmt"
	"math"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/core/domain/model/parcel"
	"parcelmarket/internal/pkg/errs"
)

// Per-kilogram surcharge applied on top of the size base fare.
const perKgRate = 0.45

// Surcharge factor for parcels flagged fragile, on top of the category multiplier.
const fragileSurcharge = 1.15

func getBaseFares() map[parcel.SizeCategory]float64 {
	return map[parcel.SizeCategory]float64{
		parcel.SizeLetter:     3.50,
		parcel.SizeExtraSmall: 5.00,
		parcel.SizeSmall:      8.00,
		parcel.SizeMedium:     14.00,
		parcel.SizeLarge:      25.00,
		parcel.SizeExtraLarge: 40.00,
		parcel.SizeJumbo:      65.00,
	}
}

func getCategoryMultipliers() map[parcel.Category]float64 {
	return map[parcel.Category]float64{
		parcel.CategoryDocuments:    0.9,
		parcel.CategoryClothing:     1.0,
		parcel.CategoryElectronics:  1.35,
		parcel.CategoryFragileGoods: 1.3,
		parcel.CategoryPerishable:   1.2,
		parcel.CategoryHazardous:    1.6,
		parcel.CategoryFurniture:    1.25,
		parcel.CategoryOther:        1.0,
	}
}

// PriceEstimator is a domain service that computes the suggested price for
// shipping a parcel.
//
// The estimate is a size base fare plus a per-kilogram surcharge, scaled by a
// category multiplier and a fragile surcharge, rounded to the cent.
type PriceEstimator struct{}

// NewPriceEstimator creates a new PriceEstimator instance.
func NewPriceEstimator() PriceEstimator {
	return PriceEstimator{}
}

// EstimateParcel computes the suggested price for an existing parcel.
func (e PriceEstimator) EstimateParcel(p *parcel.Parcel) (kernel.Money, error) {
	if err := p.Validate(); err != nil {
		return kernel.Money{}, err
	}
	return e.Estimate(p.Size(), p.Category(), p.WeightKg(), p.Fragile())
}

// Estimate computes the suggested price for the given parcel traits. The
// weight must be positive and fall within the size category's range.
func (e PriceEstimator) Estimate(
	size parcel.SizeCategory,
	category parcel.Category,
	weightKg float64,
	fragile bool,
) (kernel.Money, error) {
	if err := size.Validate(); err != nil {
		return kernel.Money{}, err
	}
	if err := category.Validate(); err != nil {
		return kernel.Money{}, err
	}
	if weightKg <= 0 {
		return kernel.Money{}, errs.NewValueIsInvalidErrorWithCause(
			"weightKg",
			fmt.Errorf("%v is not greater than 0", weightKg),
		)
	}
	if !size.ContainsWeight(weightKg) {
		minKg, maxKg := size.WeightRange()
		return kernel.Money{}, errs.NewValueIsOutOfRangeError("weightKg", weightKg, minKg, maxKg)
	}

	price := (getBaseFares()[size] + perKgRate*weightKg) * getCategoryMultipliers()[category]
	if fragile {
		price *= fragileSurcharge
	}

	return kernel.NewMoneyFromFloat(math.Round(price*100) / 100)
}
