package commands_test

import (
	"testing"

	"routesync/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfirmAssignmentCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewConfirmAssignmentCommand(11, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(11), cmd.ShiftID())
	assert.Equal(t, int64(42), cmd.EmployeeID())
}

func TestNewConfirmAssignmentCommand_InvalidShiftID(t *testing.T) {
	_, err := commands.NewConfirmAssignmentCommand(0, 42)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrShiftIDIsInvalid)
}

func TestNewConfirmAssignmentCommand_InvalidEmployeeID(t *testing.T) {
	_, err := commands.NewConfirmAssignmentCommand(11, -1)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrEmployeeIDIsInvalid)
}
