package route_test

import (
	"testing"
	"time"

	"routesync/internal/core/domain/model/route"
	"routesync/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecord(t *testing.T) {
	now := time.Now()

	t.Run("creates_valid_record", func(t *testing.T) {
		record, err := route.NewRecord("A", "B", `{"origin":"A"}`, `{"duration_seconds":5400}`, route.StatusOK, now)

		require.NoError(t, err)
		require.NoError(t, record.Validate())
		assert.Equal(t, int64(0), record.ID())
		assert.Equal(t, "A", record.Origin())
		assert.Equal(t, "B", record.Destination())
		assert.Equal(t, route.StatusOK, record.Status())
		assert.Equal(t, now, record.CreatedAt())
	})

	t.Run("requires_origin", func(t *testing.T) {
		_, err := route.NewRecord("", "B", "", "", route.StatusOK, now)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("requires_destination", func(t *testing.T) {
		_, err := route.NewRecord("A", "", "", "", route.StatusOK, now)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("requires_status", func(t *testing.T) {
		_, err := route.NewRecord("A", "B", "", "", "", now)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("payloads_may_be_empty", func(t *testing.T) {
		record, err := route.NewRecord("A", "B", "", "", route.StatusUnreachable, now)

		require.NoError(t, err)
		assert.Empty(t, record.RequestPayload())
		assert.Empty(t, record.ResponsePayload())
	})
}

func TestRestoreRecord(t *testing.T) {
	now := time.Now()

	record, err := route.RestoreRecord(42, "A", "B", "req", "resp", route.StatusOK, now)

	require.NoError(t, err)
	assert.Equal(t, int64(42), record.ID())
	assert.Equal(t, "resp", record.ResponsePayload())
}

func TestStatusFromCode(t *testing.T) {
	assert.Equal(t, "error:502", route.StatusFromCode(502))
	assert.Equal(t, "error:404", route.StatusFromCode(404))
}

func TestRecord_Validate(t *testing.T) {
	t.Run("zero_value_record_is_invalid", func(t *testing.T) {
		var record route.Record
		require.ErrorIs(t, record.Validate(), route.ErrRecordIsNotConstructed)
	})

	t.Run("nil_record_is_invalid", func(t *testing.T) {
		var record *route.Record
		require.ErrorIs(t, record.Validate(), route.ErrRecordIsNotConstructed)
	})
}
