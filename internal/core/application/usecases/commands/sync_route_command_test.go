package commands_test

import (
	"testing"

	"routesync/internal/core/application/usecases/commands"
	"routesync/internal/core/domain/model/shift"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSyncRouteWithSchedulingCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewSyncRouteWithSchedulingCommand(
		"RT-000123", 42, 5400, "2025-06-02T08:30:00Z", shift.FlowDirect)
	require.NoError(t, err)

	assert.Equal(t, "RT-000123", cmd.TrackingToken())
	assert.Equal(t, int64(42), cmd.EmployeeID())
	assert.Equal(t, int64(5400), cmd.DurationSeconds())
	assert.Equal(t, "2025-06-02T08:30:00Z", cmd.EstimatedStartISO())
	assert.Equal(t, shift.FlowDirect, cmd.Flow())
}

func TestNewSyncRouteWithSchedulingCommand_MalformedTokenAccepted(t *testing.T) {
	cmd, err := commands.NewSyncRouteWithSchedulingCommand(
		"not-a-token", 42, 0, "", shift.FlowSpeculative)
	require.NoError(t, err)
	assert.Equal(t, "not-a-token", cmd.TrackingToken())
}

func TestNewSyncRouteWithSchedulingCommand_InvalidEmployeeID(t *testing.T) {
	_, err := commands.NewSyncRouteWithSchedulingCommand(
		"RT-000123", 0, 5400, "2025-06-02T08:30:00Z", shift.FlowDirect)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrEmployeeIDIsInvalid)
}

func TestNewSyncRouteWithSchedulingCommand_NegativeDuration(t *testing.T) {
	_, err := commands.NewSyncRouteWithSchedulingCommand(
		"RT-000123", 42, -1, "2025-06-02T08:30:00Z", shift.FlowDirect)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrDurationSecondsIsInvalid)
}

func TestNewSyncRouteWithSchedulingCommand_UnknownFlow(t *testing.T) {
	_, err := commands.NewSyncRouteWithSchedulingCommand(
		"RT-000123", 42, 5400, "2025-06-02T08:30:00Z", shift.Flow("manual"))
	require.Error(t, err)
}
