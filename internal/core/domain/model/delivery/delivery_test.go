package delivery_test

import (
	"testing"

	"parcelmarket/internal/core/domain/model/delivery"
	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type deliveryFixture struct {
	id         kernel.UUID
	senderID   kernel.UUID
	receiverID kernel.UUID
	pickup     kernel.Address
	dropoff    kernel.Address
	tracking   kernel.TrackingNumber
	price      kernel.Money
	parcelIDs  []kernel.UUID
}

func newFixture(t *testing.T) deliveryFixture {
	t.Helper()
	pickup, err := kernel.NewAddress("12", "Rue de Rivoli", "Paris", "75001", "France", "")
	require.NoError(t, err)
	dropoff, err := kernel.NewAddress("8", "Avenue Bourguiba", "Tunis", "1001", "Tunisia", "")
	require.NoError(t, err)
	price, err := kernel.NewMoneyFromFloat(100.00)
	require.NoError(t, err)

	return deliveryFixture{
		id:         kernel.NewUUID(),
		senderID:   kernel.NewUUID(),
		receiverID: kernel.NewUUID(),
		pickup:     pickup,
		dropoff:    dropoff,
		tracking:   kernel.NewTrackingNumber(),
		price:      price,
		parcelIDs:  []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()},
	}
}

func (f deliveryFixture) build(t *testing.T, tripID *kernel.UUID) *delivery.Delivery {
	t.Helper()
	d, err := delivery.NewDelivery(
		f.id, f.senderID, f.receiverID, tripID,
		f.pickup, f.dropoff, "ring twice", "leave at concierge",
		f.tracking, f.price, f.parcelIDs,
	)
	require.NoError(t, err)
	return d
}

func TestNewDelivery(t *testing.T) {
	t.Run("should start UNASSIGNED without a trip", func(t *testing.T) {
		f := newFixture(t)

		d := f.build(t, nil)

		require.NoError(t, d.Validate())
		assert.Equal(t, delivery.StatusUnassigned, d.Status())
		assert.Nil(t, d.TripID())
		assert.True(t, d.TrackingNumber().IsEqual(f.tracking))
		assert.Len(t, d.ParcelIDs(), 2)
		assert.True(t, d.ActualPrice().IsZero())
	})

	t.Run("should start RESERVED with a trip attached", func(t *testing.T) {
		f := newFixture(t)
		tripID := kernel.NewUUID()

		d := f.build(t, &tripID)

		assert.Equal(t, delivery.StatusReserved, d.Status())
		require.NotNil(t, d.TripID())
		assert.True(t, d.TripID().IsEqual(tripID))
	})

	t.Run("should fail with invalid sender", func(t *testing.T) {
		f := newFixture(t)
		var invalid kernel.UUID

		_, err := delivery.NewDelivery(
			f.id, invalid, f.receiverID, nil,
			f.pickup, f.dropoff, "", "",
			f.tracking, f.price, f.parcelIDs,
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "senderID")
	})

	t.Run("should fail with invalid receiver", func(t *testing.T) {
		f := newFixture(t)
		var invalid kernel.UUID

		_, err := delivery.NewDelivery(
			f.id, f.senderID, invalid, nil,
			f.pickup, f.dropoff, "", "",
			f.tracking, f.price, f.parcelIDs,
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "receiverID")
	})

	t.Run("should fail with unconstructed addresses", func(t *testing.T) {
		f := newFixture(t)
		var zeroAddress kernel.Address

		_, err := delivery.NewDelivery(
			f.id, f.senderID, f.receiverID, nil,
			zeroAddress, f.dropoff, "", "",
			f.tracking, f.price, f.parcelIDs,
		)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "pickupAddress")

		_, err = delivery.NewDelivery(
			f.id, f.senderID, f.receiverID, nil,
			f.pickup, zeroAddress, "", "",
			f.tracking, f.price, f.parcelIDs,
		)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "deliveryAddress")
	})

	t.Run("should fail with empty parcel list", func(t *testing.T) {
		f := newFixture(t)

		_, err := delivery.NewDelivery(
			f.id, f.senderID, f.receiverID, nil,
			f.pickup, f.dropoff, "", "",
			f.tracking, f.price, nil,
		)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "parcelIDs")
	})

	t.Run("should fail with missing tracking number", func(t *testing.T) {
		f := newFixture(t)
		var zeroTracking kernel.TrackingNumber

		_, err := delivery.NewDelivery(
			f.id, f.senderID, f.receiverID, nil,
			f.pickup, f.dropoff, "", "",
			zeroTracking, f.price, f.parcelIDs,
		)

		require.Error(t, err)
	})
}

func TestDelivery_Validate(t *testing.T) {
	t.Run("should fail validation for nil and zero values", func(t *testing.T) {
		var nilDelivery *delivery.Delivery
		assert.Equal(t, delivery.ErrDeliveryIsNotConstructed, nilDelivery.Validate())

		var zeroDelivery delivery.Delivery
		assert.Equal(t, delivery.ErrDeliveryIsNotConstructed, zeroDelivery.Validate())
	})
}

func TestDelivery_ChangeStatus(t *testing.T) {
	t.Run("should advance along legal edges", func(t *testing.T) {
		f := newFixture(t)
		d := f.build(t, nil)

		require.NoError(t, d.ChangeStatus(delivery.StatusReserved))
		require.NoError(t, d.ChangeStatus(delivery.StatusPending))
		assert.Equal(t, delivery.StatusPending, d.Status())
	})

	t.Run("should not mutate on illegal request", func(t *testing.T) {
		f := newFixture(t)
		d := f.build(t, nil)

		err := d.ChangeStatus(delivery.StatusDelivered)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, delivery.StatusUnassigned, d.Status())
		assert.True(t, d.ActualPrice().IsZero())
	})

	t.Run("should record the actual price on completion", func(t *testing.T) {
		f := newFixture(t)
		tripID := kernel.NewUUID()
		d := f.build(t, &tripID)

		for _, target := range []delivery.Status{
			delivery.StatusPending,
			delivery.StatusAccepted,
			delivery.StatusPaymentPending,
			delivery.StatusPaymentSuccess,
			delivery.StatusPickedUp,
			delivery.StatusInTransit,
			delivery.StatusDelivered,
		} {
			require.NoError(t, d.ChangeStatus(target))
		}

		assert.Equal(t, delivery.StatusDelivered, d.Status())
		assert.True(t, d.ActualPrice().IsEqual(f.price))
	})
}

func TestRestoreDelivery(t *testing.T) {
	t.Run("should rehydrate a delivery in flight", func(t *testing.T) {
		f := newFixture(t)
		tripID := kernel.NewUUID()
		actual, _ := kernel.NewMoneyFromFloat(95.00)

		d, err := delivery.RestoreDelivery(
			f.id, f.senderID, f.receiverID, &tripID,
			f.pickup, f.dropoff, "", "",
			f.tracking, f.price, actual, f.parcelIDs, delivery.StatusInTransit,
		)

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.Equal(t, delivery.StatusInTransit, d.Status())
		assert.True(t, d.ActualPrice().IsEqual(actual))
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		f := newFixture(t)

		_, err := delivery.RestoreDelivery(
			f.id, f.senderID, f.receiverID, nil,
			f.pickup, f.dropoff, "", "",
			f.tracking, f.price, kernel.Money{}, f.parcelIDs, delivery.StatusUnknown,
		)

		require.Error(t, err)
	})
}
