package parcel_test

import (
	"testing"

	"parcelmarket/internal/core/domain/model/parcel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSizeCategory_Validate(t *testing.T) {
	t.Run("should accept all declared categories", func(t *testing.T) {
		for _, size := range parcel.AllSizeCategories() {
			require.NoError(t, size.Validate(), size.String())
		}
	})

	t.Run("should reject unknown and out-of-range values", func(t *testing.T) {
		require.Error(t, parcel.SizeUnknown.Validate())
		require.Error(t, parcel.SizeCategory(99).Validate())
	})
}

func TestSizeCategory_WeightRange(t *testing.T) {
	t.Run("should declare contiguous ascending ranges", func(t *testing.T) {
		sizes := parcel.AllSizeCategories()
		for i := 1; i < len(sizes); i++ {
			_, prevMax := sizes[i-1].WeightRange()
			curMin, curMax := sizes[i].WeightRange()

			assert.Equal(t, prevMax, curMin, "range of %s must start where %s ends", sizes[i], sizes[i-1])
			assert.Greater(t, curMax, curMin)
		}
	})

	t.Run("should declare the documented MEDIUM range", func(t *testing.T) {
		minKg, maxKg := parcel.SizeMedium.WeightRange()

		assert.InDelta(t, 15.0, minKg, 0.0001)
		assert.InDelta(t, 50.0, maxKg, 0.0001)
	})
}

func TestSizeCategory_ContainsWeight(t *testing.T) {
	t.Run("should accept weights across each declared range", func(t *testing.T) {
		for _, size := range parcel.AllSizeCategories() {
			minKg, maxKg := size.WeightRange()

			assert.True(t, size.ContainsWeight(minKg), "%s min bound", size)
			assert.True(t, size.ContainsWeight(maxKg), "%s max bound", size)
			assert.True(t, size.ContainsWeight((minKg+maxKg)/2), "%s midpoint", size)
		}
	})

	t.Run("should reject weights outside the range", func(t *testing.T) {
		assert.False(t, parcel.SizeMedium.ContainsWeight(14.99))
		assert.False(t, parcel.SizeMedium.ContainsWeight(50.01))
		assert.False(t, parcel.SizeUnknown.ContainsWeight(1))
	})
}

func TestSizeCategoryFromString(t *testing.T) {
	t.Run("should round-trip every category", func(t *testing.T) {
		for _, size := range parcel.AllSizeCategories() {
			parsed, err := parcel.SizeCategoryFromString(size.String())

			require.NoError(t, err)
			assert.Equal(t, size, parsed)
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		_, err := parcel.SizeCategoryFromString("GIGANTIC")

		require.Error(t, err)
	})

	t.Run("should reject the UNKNOWN name itself", func(t *testing.T) {
		_, err := parcel.SizeCategoryFromString("UNKNOWN")

		require.Error(t, err)
	})
}
