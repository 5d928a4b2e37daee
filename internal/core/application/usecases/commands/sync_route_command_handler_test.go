package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"routesync/internal/core/application/usecases/commands"
	"routesync/internal/core/domain/model/shift"
	"routesync/internal/core/domain/services"
	"routesync/internal/core/ports"
	"routesync/internal/pkg/clock"
	"routesync/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSyncShiftRepository struct{ mock.Mock }

func (m *MockSyncShiftRepository) Add(ctx context.Context, s *shift.DynamicShift) (int64, error) {
	args := m.Called(ctx, s)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSyncShiftRepository) Update(ctx context.Context, s *shift.DynamicShift) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSyncShiftRepository) Get(ctx context.Context, id int64) (*shift.DynamicShift, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shift.DynamicShift), args.Error(1)
}

func (m *MockSyncShiftRepository) GetByRouteID(ctx context.Context, routeID int64) (*shift.DynamicShift, error) {
	args := m.Called(ctx, routeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shift.DynamicShift), args.Error(1)
}

func (m *MockSyncShiftRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSyncShiftRepository) DeleteStalePending(ctx context.Context, olderThan time.Time) ([]int64, error) {
	args := m.Called(ctx, olderThan)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockSyncShiftRepository) AddAssignment(ctx context.Context, a *shift.Assignment) (int64, error) {
	args := m.Called(ctx, a)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSyncShiftRepository) ConfirmAssignments(ctx context.Context, shiftID, employeeID int64, at time.Time) error {
	args := m.Called(ctx, shiftID, employeeID, at)
	return args.Error(0)
}

func (m *MockSyncShiftRepository) DeleteAssignmentsForShift(ctx context.Context, shiftID int64) error {
	args := m.Called(ctx, shiftID)
	return args.Error(0)
}

type MockSyncShiftUoW struct{ mock.Mock }

func (m *MockSyncShiftUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSyncShiftUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSyncShiftUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSyncShiftUoW) ShiftRepository() ports.ShiftRepository {
	args := m.Called()
	return args.Get(0).(ports.ShiftRepository)
}

type MockSyncShiftUoWFactory struct{ mock.Mock }

func (m *MockSyncShiftUoWFactory) Create() commands.ShiftUoW {
	args := m.Called()
	return args.Get(0).(commands.ShiftUoW)
}

func newSyncHandler(factory commands.ShiftUoWFactory, now time.Time) commands.SyncRouteWithSchedulingCommandHandler {
	clk := clock.NewFixedClock(now)
	planner := services.NewShiftPlanner(clk, nil)
	return commands.NewSyncRouteWithSchedulingCommandHandler(factory, planner, clk, nil)
}

func TestSyncRouteWithSchedulingCommandHandler_Handle_CreatesShift(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	cmd, err := commands.NewSyncRouteWithSchedulingCommand(
		"RT-000123", 42, 5400, "2025-06-02T08:30:00Z", shift.FlowDirect)
	require.NoError(t, err)

	shiftRepo := new(MockSyncShiftRepository)
	uow := new(MockSyncShiftUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShiftRepository").Return(shiftRepo).Once(),
		shiftRepo.On("GetByRouteID", ctx, int64(123)).
			Return(nil, errs.NewObjectNotFoundError("routeId", int64(123))).
			Once(),
		shiftRepo.On("Add", ctx, mock.AnythingOfType("*shift.DynamicShift")).Return(int64(11), nil).Once(),
		shiftRepo.On("AddAssignment", ctx, mock.AnythingOfType("*shift.Assignment")).Return(int64(21), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSyncShiftUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newSyncHandler(factory, now)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(11), result.ShiftID)
	assert.Equal(t, int64(21), result.AssignmentID)
	assert.True(t, result.RouteLinked)
	assert.False(t, result.StartFellBack)

	addedShift := shiftRepo.Calls[1].Arguments[1].(*shift.DynamicShift)
	require.NotNil(t, addedShift.RouteID())
	assert.Equal(t, int64(123), *addedShift.RouteID())
	assert.Equal(t, 90, addedShift.DurationMinutes())
	assert.Equal(t, shift.Asignado, addedShift.Status())
	assert.Equal(t, shift.DefaultContinuousDrivingMinutes, addedShift.ContinuousDrivingMinutes())

	addedAssignment := shiftRepo.Calls[2].Arguments[1].(*shift.Assignment)
	assert.Equal(t, int64(11), addedAssignment.ShiftID())
	assert.Equal(t, int64(42), addedAssignment.EmployeeID())
	assert.Equal(t, shift.RolePrimaryDriver, addedAssignment.RoleInShift())
	assert.Equal(t, shift.Asignado, addedAssignment.Status())

	shiftRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestSyncRouteWithSchedulingCommandHandler_Handle_MalformedToken(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	cmd, err := commands.NewSyncRouteWithSchedulingCommand(
		"not-a-token", 42, 0, "2025-06-02T08:30:00Z", shift.FlowDirect)
	require.NoError(t, err)

	shiftRepo := new(MockSyncShiftRepository)
	uow := new(MockSyncShiftUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShiftRepository").Return(shiftRepo).Once(),
		shiftRepo.On("Add", ctx, mock.AnythingOfType("*shift.DynamicShift")).Return(int64(12), nil).Once(),
		shiftRepo.On("AddAssignment", ctx, mock.AnythingOfType("*shift.Assignment")).Return(int64(22), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSyncShiftUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newSyncHandler(factory, now)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, result.RouteLinked)

	addedShift := shiftRepo.Calls[0].Arguments[1].(*shift.DynamicShift)
	assert.Nil(t, addedShift.RouteID())
	assert.Equal(t, 30, addedShift.DurationMinutes())

	shiftRepo.AssertNotCalled(t, "GetByRouteID", mock.Anything, mock.Anything)
	shiftRepo.AssertExpectations(t)
}

func TestSyncRouteWithSchedulingCommandHandler_Handle_RefreshesExistingShift(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	cmd, err := commands.NewSyncRouteWithSchedulingCommand(
		"RT-000123", 42, 7200, "2025-06-03T09:00:00Z", shift.FlowDirect)
	require.NoError(t, err)

	routeID := int64(123)
	assignedAt := now.Add(-time.Hour)
	existing, err := shift.RestoreDynamicShift(
		11, &routeID,
		time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 2, 8, 30, 0, 0, time.UTC),
		90, shift.DefaultContinuousDrivingMinutes,
		shift.Asignado, shift.FlowDirect,
		now.Add(-time.Hour), &assignedAt, nil,
	)
	require.NoError(t, err)

	shiftRepo := new(MockSyncShiftRepository)
	uow := new(MockSyncShiftUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShiftRepository").Return(shiftRepo).Once(),
		shiftRepo.On("GetByRouteID", ctx, int64(123)).Return(existing, nil).Once(),
		shiftRepo.On("Update", ctx, mock.AnythingOfType("*shift.DynamicShift")).Return(nil).Once(),
		shiftRepo.On("DeleteAssignmentsForShift", ctx, int64(11)).Return(nil).Once(),
		shiftRepo.On("AddAssignment", ctx, mock.AnythingOfType("*shift.Assignment")).Return(int64(31), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSyncShiftUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newSyncHandler(factory, now)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(11), result.ShiftID)
	assert.Equal(t, int64(31), result.AssignmentID)

	updatedShift := shiftRepo.Calls[1].Arguments[1].(*shift.DynamicShift)
	assert.Equal(t, 120, updatedShift.DurationMinutes())

	shiftRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	shiftRepo.AssertExpectations(t)
}

func TestSyncRouteWithSchedulingCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.SyncRouteWithSchedulingCommand{} // not constructed properly

	factory := new(MockSyncShiftUoWFactory)
	handler := newSyncHandler(factory, time.Now())
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrSyncRouteCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestSyncRouteWithSchedulingCommandHandler_Handle_PersistShiftError(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	cmd, err := commands.NewSyncRouteWithSchedulingCommand(
		"RT-000123", 42, 5400, "2025-06-02T08:30:00Z", shift.FlowDirect)
	require.NoError(t, err)

	shiftRepo := new(MockSyncShiftRepository)
	uow := new(MockSyncShiftUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShiftRepository").Return(shiftRepo).Once(),
		shiftRepo.On("GetByRouteID", ctx, int64(123)).
			Return(nil, errs.NewObjectNotFoundError("routeId", int64(123))).
			Once(),
		shiftRepo.On("Add", ctx, mock.AnythingOfType("*shift.DynamicShift")).
			Return(int64(0), errors.New("database error")).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSyncShiftUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newSyncHandler(factory, now)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrSyncFailed)
}

func TestSyncRouteWithSchedulingCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	cmd, err := commands.NewSyncRouteWithSchedulingCommand(
		"RT-000123", 42, 5400, "2025-06-02T08:30:00Z", shift.FlowDirect)
	require.NoError(t, err)

	shiftRepo := new(MockSyncShiftRepository)
	uow := new(MockSyncShiftUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShiftRepository").Return(shiftRepo).Once(),
		shiftRepo.On("GetByRouteID", ctx, int64(123)).
			Return(nil, errs.NewObjectNotFoundError("routeId", int64(123))).
			Once(),
		shiftRepo.On("Add", ctx, mock.AnythingOfType("*shift.DynamicShift")).Return(int64(11), nil).Once(),
		shiftRepo.On("AddAssignment", ctx, mock.AnythingOfType("*shift.Assignment")).Return(int64(21), nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSyncShiftUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newSyncHandler(factory, now)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrSyncFailed)
}
