package services_test

import (
	"testing"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/core/domain/services"
	"parcelmarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceAdjuster_Adjust(t *testing.T) {
	adjuster := services.NewPriceAdjuster()

	suggested := func(cents int64) kernel.Money {
		m, err := kernel.NewMoney(cents)
		require.NoError(t, err)
		return m
	}

	t.Run("should keep the price at zero percent", func(t *testing.T) {
		price, err := adjuster.Adjust(suggested(10000), 0)

		require.NoError(t, err)
		assert.Equal(t, int64(10000), price.Cents())
	})

	t.Run("should discount by the given percent", func(t *testing.T) {
		price, err := adjuster.Adjust(suggested(10000), -10)

		require.NoError(t, err)
		assert.Equal(t, int64(9000), price.Cents())
	})

	t.Run("should raise by the given percent", func(t *testing.T) {
		price, err := adjuster.Adjust(suggested(10000), 30)

		require.NoError(t, err)
		assert.Equal(t, int64(13000), price.Cents())
	})

	t.Run("should round to the cent", func(t *testing.T) {
		// 9.99 * 0.85 = 8.4915 -> 8.49
		price, err := adjuster.Adjust(suggested(999), -15)

		require.NoError(t, err)
		assert.Equal(t, int64(849), price.Cents())
	})

	t.Run("should never drop below the floor", func(t *testing.T) {
		price, err := adjuster.Adjust(suggested(120), -30)

		require.NoError(t, err)
		assert.Equal(t, int64(100), price.Cents())
	})

	t.Run("should reject out-of-bounds percentages", func(t *testing.T) {
		_, err := adjuster.Adjust(suggested(10000), -31)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = adjuster.Adjust(suggested(10000), 31)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}
