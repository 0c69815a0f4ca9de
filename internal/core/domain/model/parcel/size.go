package parcel

import (
	"fmt"

	"parcelmarket/internal/pkg/errs"
)

// SizeCategory classifies a parcel into one of the fixed, ordered size tiers used
// by the price estimator. Each tier declares an inclusive weight range in kilograms;
// a parcel's weight must fall inside its declared tier's range.
type SizeCategory int

const (
	// SizeUnknown represents an invalid or undefined size category.
	SizeUnknown SizeCategory = iota

	SizeLetter
	SizeExtraSmall
	SizeSmall
	SizeMedium
	SizeLarge
	SizeExtraLarge
	SizeJumbo
)

// weightRange is the inclusive [Min, Max] weight interval of a size category, in kg.
type weightRange struct {
	Min float64
	Max float64
}

func getSizeCategoryStrings() map[SizeCategory]string {
	return map[SizeCategory]string{
		SizeUnknown:    "UNKNOWN",
		SizeLetter:     "LETTER",
		SizeExtraSmall: "EXTRA_SMALL",
		SizeSmall:      "SMALL",
		SizeMedium:     "MEDIUM",
		SizeLarge:      "LARGE",
		SizeExtraLarge: "EXTRA_LARGE",
		SizeJumbo:      "JUMBO",
	}
}

func getSizeCategoryRanges() map[SizeCategory]weightRange {
	return map[SizeCategory]weightRange{
		SizeLetter:     {Min: 0, Max: 0.5},
		SizeExtraSmall: {Min: 0.5, Max: 2},
		SizeSmall:      {Min: 2, Max: 15},
		SizeMedium:     {Min: 15, Max: 50},
		SizeLarge:      {Min: 50, Max: 100},
		SizeExtraLarge: {Min: 100, Max: 200},
		SizeJumbo:      {Min: 200, Max: 500},
	}
}

// AllSizeCategories returns the valid size categories in ascending order.
func AllSizeCategories() []SizeCategory {
	return []SizeCategory{
		SizeLetter, SizeExtraSmall, SizeSmall, SizeMedium, SizeLarge, SizeExtraLarge, SizeJumbo,
	}
}

// SizeCategoryFromString parses the wire representation of a size category
// (e.g. "MEDIUM"). Unknown values are rejected.
func SizeCategoryFromString(s string) (SizeCategory, error) {
	for size, str := range getSizeCategoryStrings() {
		if str == s && size != SizeUnknown {
			return size, nil
		}
	}
	return SizeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"sizeCategory",
		fmt.Errorf("%q is not a valid size category", s),
	)
}

// Validate checks that the value is one of the declared size categories.
func (s SizeCategory) Validate() error {
	if _, ok := getSizeCategoryRanges()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"sizeCategory",
			fmt.Errorf("%d is not a valid size category", s),
		)
	}
	return nil
}

// String returns the wire name of the size category, or "UNKNOWN" for invalid values.
func (s SizeCategory) String() string {
	if str, ok := getSizeCategoryStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// WeightRange returns the inclusive weight bounds of the category in kilograms.
// Returns zeros for an invalid category.
func (s SizeCategory) WeightRange() (minKg, maxKg float64) {
	r, ok := getSizeCategoryRanges()[s]
	if !ok {
		return 0, 0
	}
	return r.Min, r.Max
}

// ContainsWeight reports whether the given weight falls inside the category's
// inclusive weight range.
func (s SizeCategory) ContainsWeight(weightKg float64) bool {
	r, ok := getSizeCategoryRanges()[s]
	if !ok {
		return false
	}
	return weightKg >= r.Min && weightKg <= r.Max
}
