package commands_test

import (
	"testing"

	"routesync/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAssignRouteToDriverCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewAssignRouteToDriverCommand(42, "Ana Reyes", "Av. Sucre 100", "C. Bolivar 9")
	require.NoError(t, err)
	assert.Equal(t, int64(42), cmd.DriverID())
	assert.Equal(t, "Ana Reyes", cmd.DriverName())
	assert.Equal(t, "Av. Sucre 100", cmd.Origin())
	assert.Equal(t, "C. Bolivar 9", cmd.Destination())
}

func TestNewAssignRouteToDriverCommand_EmptyDriverName(t *testing.T) {
	cmd, err := commands.NewAssignRouteToDriverCommand(42, "", "Av. Sucre 100", "C. Bolivar 9")
	require.NoError(t, err)
	assert.Empty(t, cmd.DriverName())
}

func TestNewAssignRouteToDriverCommand_InvalidDriverID(t *testing.T) {
	_, err := commands.NewAssignRouteToDriverCommand(0, "Ana Reyes", "Av. Sucre 100", "C. Bolivar 9")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrDriverIDIsInvalid)
}

func TestNewAssignRouteToDriverCommand_EmptyOrigin(t *testing.T) {
	_, err := commands.NewAssignRouteToDriverCommand(42, "Ana Reyes", "", "C. Bolivar 9")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrOriginIsRequired)
}

func TestNewAssignRouteToDriverCommand_EmptyDestination(t *testing.T) {
	_, err := commands.NewAssignRouteToDriverCommand(42, "Ana Reyes", "Av. Sucre 100", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrDestinationIsRequired)
}
