package audit

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSyncEntry(t *testing.T) {
	now := time.Now()

	entry, err := NewSyncEntry(StepComputeRoute, "RT-000123", OutcomeOK, "", now)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, entry.ID())
	assert.Equal(t, StepComputeRoute, entry.Step())
	assert.Equal(t, "RT-000123", entry.TrackingToken())
	assert.Equal(t, OutcomeOK, entry.Outcome())
	assert.Empty(t, entry.Detail())
	assert.Equal(t, now, entry.CreatedAt())
	assert.NoError(t, entry.Validate())
}

func TestNewSyncEntry_AllowsEmptyToken(t *testing.T) {
	entry, err := NewSyncEntry(StepAssignRoute, "", OutcomeError, "driver id is required", time.Now())
	require.NoError(t, err)

	assert.Empty(t, entry.TrackingToken())
	assert.Equal(t, OutcomeError, entry.Outcome())
	assert.Equal(t, "driver id is required", entry.Detail())
}

func TestNewSyncEntry_Validation(t *testing.T) {
	now := time.Now()

	_, err := NewSyncEntry("", "RT-000001", OutcomeOK, "", now)
	assert.ErrorIs(t, err, ErrStepIsRequired)

	_, err = NewSyncEntry(StepSyncShift, "RT-000001", "maybe", "", now)
	assert.ErrorIs(t, err, ErrOutcomeIsInvalid)
}

func TestRestoreSyncEntry(t *testing.T) {
	id := uuid.New()
	now := time.Now()

	entry, err := RestoreSyncEntry(id, StepConfirm, "RT-000042", OutcomeOK, "", now)
	require.NoError(t, err)

	assert.Equal(t, id, entry.ID())
	assert.Equal(t, StepConfirm, entry.Step())
}

func TestSyncEntry_ValidateZeroValue(t *testing.T) {
	var entry SyncEntry
	assert.ErrorIs(t, entry.Validate(), ErrSyncEntryIsNotConstructed)
}
