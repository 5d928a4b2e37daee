package errs_test

import (
	"errors"
	"testing"

	"routesync/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("shiftId", "123")

		assert.Equal(t, "shiftId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("shiftId", "123", cause)

		assert.Equal(t, "shiftId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: shiftId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("destination")

		assert.Equal(t, "destination", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: destination", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("destination", cause)

		assert.Equal(t, "destination", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: destination (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("durationMinutes", 10, 30, 1440)

		assert.Equal(t, "durationMinutes", err.ParamName)
		assert.Equal(t, 10, err.Value)
		assert.Equal(t, 30, err.Min)
		assert.Equal(t, 1440, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t,
			"value is invalid: 10 is durationMinutes, min value is 30, max value is 1440",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("driverId")

		assert.Equal(t, "driverId", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: driverId", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("driverId", cause)

		assert.Equal(t, "driverId", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: driverId (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestTrackingTokenIsInvalidError(t *testing.T) {
	t.Run("NewTrackingTokenIsInvalidError", func(t *testing.T) {
		err := errs.NewTrackingTokenIsInvalidError("RT-abc123")

		assert.Equal(t, "RT-abc123", err.Token)
		require.NoError(t, err.Cause)
		assert.Equal(t, "tracking token is invalid: RT-abc123", err.Error())
		assert.Equal(t, errs.ErrTrackingTokenIsInvalid, err.Unwrap())
	})

	t.Run("NewTrackingTokenIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("suffix is not numeric")
		err := errs.NewTrackingTokenIsInvalidErrorWithCause("RT-xyz", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "tracking token is invalid: RT-xyz (cause: suffix is not numeric)", err.Error())
	})
}

func TestUpstreamUnavailableError(t *testing.T) {
	cause := errors.New("connection refused")
	err := errs.NewUpstreamUnavailableError("routing-provider", cause)

	assert.Equal(t, "routing-provider", err.Service)
	assert.Equal(t, cause, err.Cause)
	assert.Equal(t,
		"upstream service unavailable: routing-provider (cause: connection refused)",
		err.Error())
	assert.Equal(t, errs.ErrUpstreamUnavailable, err.Unwrap())
}

func TestSyncFailedError(t *testing.T) {
	cause := errors.New("insert failed")
	err := errs.NewSyncFailedError("create dynamic shift", cause)

	assert.Equal(t, "create dynamic shift", err.Step)
	assert.Equal(t, cause, err.Cause)
	assert.Equal(t,
		"synchronization step failed: create dynamic shift (cause: insert failed)",
		err.Error())
	assert.Equal(t, errs.ErrSyncFailed, err.Unwrap())
}

func TestSentinelErrors(t *testing.T) {
	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "tracking token is invalid", errs.ErrTrackingTokenIsInvalid.Error())
		assert.Equal(t, "upstream service unavailable", errs.ErrUpstreamUnavailable.Error())
		assert.Equal(t, "synchronization step failed", errs.ErrSyncFailed.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("shiftId", "123"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsInvalidError("destination"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsOutOfRangeError("d", 10, 30, 1440), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, errs.NewValueIsRequiredError("driverId"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewTrackingTokenIsInvalidError("bogus"), errs.ErrTrackingTokenIsInvalid)
		require.ErrorIs(t, errs.NewUpstreamUnavailableError("routing", errors.New("down")), errs.ErrUpstreamUnavailable)
		require.ErrorIs(t, errs.NewSyncFailedError("step", errors.New("boom")), errs.ErrSyncFailed)
	})
}
