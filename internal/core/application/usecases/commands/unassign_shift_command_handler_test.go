package commands_test

import (
	"errors"
	"testing"

	"routesync/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUnassignShiftCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewUnassignShiftCommand(11)
	require.NoError(t, err)

	shiftRepo := new(MockSyncShiftRepository)
	uow := new(MockSyncShiftUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShiftRepository").Return(shiftRepo).Once(),
		shiftRepo.On("DeleteAssignmentsForShift", ctx, int64(11)).Return(nil).Once(),
		shiftRepo.On("Delete", ctx, int64(11)).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSyncShiftUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUnassignShiftCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	shiftRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestUnassignShiftCommandHandler_Handle_DeleteError(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewUnassignShiftCommand(11)
	require.NoError(t, err)

	shiftRepo := new(MockSyncShiftRepository)
	uow := new(MockSyncShiftUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShiftRepository").Return(shiftRepo).Once(),
		shiftRepo.On("DeleteAssignmentsForShift", ctx, int64(11)).Return(nil).Once(),
		shiftRepo.On("Delete", ctx, int64(11)).Return(errors.New("database error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSyncShiftUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUnassignShiftCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "database error")
}

func TestUnassignShiftCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.UnassignShiftCommand{} // not constructed properly

	factory := new(MockSyncShiftUoWFactory)
	handler := commands.NewUnassignShiftCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrUnassignShiftCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestNewUnassignShiftCommand_InvalidShiftID(t *testing.T) {
	_, err := commands.NewUnassignShiftCommand(0)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrShiftIDIsInvalid)
}
