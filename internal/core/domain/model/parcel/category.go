package parcel

import (
	"fmt"

	"parcelmarket/internal/pkg/errs"
)

// Category tags the kind of goods inside a parcel. The tag feeds the price
// estimator (handling multipliers) and lets travelers refuse goods they cannot
// carry, e.g. hazardous materials on a bicycle trip.
type Category int

const (
	// CategoryUnknown represents an invalid or undefined category.
	CategoryUnknown Category = iota

	CategoryDocuments
	CategoryClothing
	CategoryElectronics
	CategoryFragileGoods
	CategoryPerishable
	CategoryHazardous
	CategoryFurniture
	CategoryOther
)

func getCategoryStrings() map[Category]string {
	return map[Category]string{
		CategoryUnknown:      "UNKNOWN",
		CategoryDocuments:    "DOCUMENTS",
		CategoryClothing:     "CLOTHING",
		CategoryElectronics:  "ELECTRONICS",
		CategoryFragileGoods: "FRAGILE_GOODS",
		CategoryPerishable:   "PERISHABLE",
		CategoryHazardous:    "HAZARDOUS",
		CategoryFurniture:    "FURNITURE",
		CategoryOther:        "OTHER",
	}
}

// CategoryFromString parses the wire representation of a category (e.g. "ELECTRONICS").
func CategoryFromString(s string) (Category, error) {
	for category, str := range getCategoryStrings() {
		if str == s && category != CategoryUnknown {
			return category, nil
		}
	}
	return CategoryUnknown, errs.NewValueIsInvalidErrorWithCause(
		"category",
		fmt.Errorf("%q is not a valid category", s),
	)
}

// Validate checks that the value is one of the declared categories.
func (c Category) Validate() error {
	if _, ok := getCategoryStrings()[c]; !ok || c == CategoryUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"category",
			fmt.Errorf("%d is not a valid category", c),
		)
	}
	return nil
}

// String returns the wire name of the category, or "UNKNOWN" for invalid values.
func (c Category) String() string {
	if str, ok := getCategoryStrings()[c]; ok {
		return str
	}
	return "UNKNOWN"
}
