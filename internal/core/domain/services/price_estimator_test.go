package services_test

import (
	"testing"

	"parcelmarket/internal/core/domain/model/parcel"
	"parcelmarket/internal/core/domain/services"
	"parcelmarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceEstimator_Estimate(t *testing.T) {
	estimator := services.NewPriceEstimator()

	t.Run("should price a plain clothing parcel", func(t *testing.T) {
		// 8.00 + 0.45*1.5 = 8.675 -> 8.68
		price, err := estimator.Estimate(parcel.SizeSmall, parcel.CategoryClothing, 1.5, false)

		require.NoError(t, err)
		assert.Equal(t, int64(868), price.Cents())
	})

	t.Run("should apply category multiplier and fragile surcharge", func(t *testing.T) {
		// (14.00 + 0.45*20) * 1.35 = 31.05; *1.15 = 35.7075 -> 35.71
		price, err := estimator.Estimate(parcel.SizeMedium, parcel.CategoryElectronics, 20, true)

		require.NoError(t, err)
		assert.Equal(t, int64(3571), price.Cents())
	})

	t.Run("should discount documents", func(t *testing.T) {
		// (3.50 + 0.45*0.2) * 0.9 = 3.231 -> 3.23
		price, err := estimator.Estimate(parcel.SizeLetter, parcel.CategoryDocuments, 0.2, false)

		require.NoError(t, err)
		assert.Equal(t, int64(323), price.Cents())
	})

	t.Run("should grow with weight within a size category", func(t *testing.T) {
		light, err := estimator.Estimate(parcel.SizeLarge, parcel.CategoryOther, 16, false)
		require.NoError(t, err)
		heavy, err := estimator.Estimate(parcel.SizeLarge, parcel.CategoryOther, 49, false)
		require.NoError(t, err)

		assert.True(t, light.LessThan(heavy))
	})

	t.Run("should reject weight outside the size range", func(t *testing.T) {
		_, err := estimator.Estimate(parcel.SizeLetter, parcel.CategoryDocuments, 3, false)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject non-positive weight", func(t *testing.T) {
		_, err := estimator.Estimate(parcel.SizeSmall, parcel.CategoryClothing, 0, false)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject unknown size and category", func(t *testing.T) {
		_, err := estimator.Estimate(parcel.SizeUnknown, parcel.CategoryClothing, 1, false)
		require.Error(t, err)

		_, err = estimator.Estimate(parcel.SizeSmall, parcel.CategoryUnknown, 1, false)
		require.Error(t, err)
	})
}
