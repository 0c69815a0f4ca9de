package errs_test

import (
	"errors"
	"testing"

	"parcelmarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("senderID", "123")

		assert.Equal(t, "senderID", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("senderID", "123", cause)

		assert.Equal(t, "senderID", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: senderID, ID is: 123 (cause: database connection failed)",
			err.Error())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("street")

		assert.Equal(t, "street", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: street", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("street", cause)

		assert.Equal(t, "street", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: street (cause: invalid format)", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("weight", 150, 15, 50)

		assert.Equal(t, "weight", err.ParamName)
		assert.Equal(t, 150, err.Value)
		assert.Equal(t, 15, err.Min)
		assert.Equal(t, 50, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 150 is weight, min value is 15, max value is 50", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("adjustment", -45, -30, 30, cause)

		assert.Equal(t, "adjustment", err.ParamName)
		assert.Equal(t, -45, err.Value)
		assert.Equal(t, -30, err.Min)
		assert.Equal(t, 30, err.Max)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: -45 is adjustment, min value is -30, max value is 30 (cause: validation failed)",
			err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("trackingNumber")

		assert.Equal(t, "trackingNumber", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: trackingNumber", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("trackingNumber", cause)

		assert.Equal(t, "trackingNumber", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: trackingNumber (cause: missing required field)", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestInvalidTransitionError(t *testing.T) {
	t.Run("NewInvalidTransitionError", func(t *testing.T) {
		err := errs.NewInvalidTransitionError("delivery", "DELIVERED", "PENDING")

		assert.Equal(t, "delivery", err.Entity)
		assert.Equal(t, "DELIVERED", err.Current)
		assert.Equal(t, "PENDING", err.Requested)
		assert.Equal(t,
			"invalid status transition: delivery cannot move from DELIVERED to PENDING",
			err.Error())
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("identical requests produce identical errors", func(t *testing.T) {
		first := errs.NewInvalidTransitionError("trip", "COMPLETED", "IN_PROGRESS")
		second := errs.NewInvalidTransitionError("trip", "COMPLETED", "IN_PROGRESS")

		assert.Equal(t, first.Error(), second.Error())
		assert.Equal(t, first, second)
	})
}

func TestCapacityExceededError(t *testing.T) {
	err := errs.NewCapacityExceededError("7d9b7a0e-1111-2222-3333-444455556666", 4, 4)

	assert.Equal(t, "7d9b7a0e-1111-2222-3333-444455556666", err.TripID)
	assert.Equal(t, 4, err.Current)
	assert.Equal(t, 4, err.Max)
	assert.Equal(t,
		"trip capacity exceeded: trip 7d9b7a0e-1111-2222-3333-444455556666 holds 4 of 4 deliveries",
		err.Error())
	require.ErrorIs(t, err, errs.ErrCapacityExceeded)
}

func TestUploadFailedError(t *testing.T) {
	t.Run("NewUploadFailedError", func(t *testing.T) {
		err := errs.NewUploadFailedError("photo.jpg", 6291456, 5242880)

		assert.Equal(t, "photo.jpg", err.FileName)
		assert.Equal(t, int64(6291456), err.Size)
		assert.Equal(t, int64(5242880), err.Ceiling)
		require.NoError(t, err.Cause)
		assert.Equal(t, "upload failed: photo.jpg is 6291456 bytes, ceiling is 5242880 bytes", err.Error())
		require.ErrorIs(t, err, errs.ErrUploadFailed)
	})

	t.Run("NewUploadFailedErrorWithCause", func(t *testing.T) {
		cause := errors.New("disk full")
		err := errs.NewUploadFailedErrorWithCause("photo.jpg", 1024, 5242880, cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "upload failed: photo.jpg (cause: disk full)", err.Error())
		require.ErrorIs(t, err, errs.ErrUploadFailed)
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrInvalidTransition)
		require.Error(t, errs.ErrCapacityExceeded)
		require.Error(t, errs.ErrUploadFailed)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "invalid status transition", errs.ErrInvalidTransition.Error())
		assert.Equal(t, "trip capacity exceeded", errs.ErrCapacityExceeded.Error())
		assert.Equal(t, "upload failed", errs.ErrUploadFailed.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		objectNotFoundErr := errs.NewObjectNotFoundError("senderID", "123")
		require.ErrorIs(t, objectNotFoundErr, errs.ErrObjectNotFound)

		valueInvalidErr := errs.NewValueIsInvalidError("street")
		require.ErrorIs(t, valueInvalidErr, errs.ErrValueIsInvalid)

		valueOutOfRangeErr := errs.NewValueIsOutOfRangeError("weight", 150, 15, 50)
		require.ErrorIs(t, valueOutOfRangeErr, errs.ErrValueIsOutOfRange)

		valueRequiredErr := errs.NewValueIsRequiredError("trackingNumber")
		require.ErrorIs(t, valueRequiredErr, errs.ErrValueIsRequired)

		transitionErr := errs.NewInvalidTransitionError("delivery", "DELIVERED", "PENDING")
		require.ErrorIs(t, transitionErr, errs.ErrInvalidTransition)

		capacityErr := errs.NewCapacityExceededError("trip-id", 3, 3)
		require.ErrorIs(t, capacityErr, errs.ErrCapacityExceeded)

		uploadErr := errs.NewUploadFailedError("photo.jpg", 6291456, 5242880)
		require.ErrorIs(t, uploadErr, errs.ErrUploadFailed)
	})

	t.Run("errors.Is reaches the wrapped cause", func(t *testing.T) {
		cause := errors.New("parcel is already bound")
		err := errs.NewValueIsInvalidErrorWithCause("parcelID", cause)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.ErrorIs(t, err, cause)
	})
}
