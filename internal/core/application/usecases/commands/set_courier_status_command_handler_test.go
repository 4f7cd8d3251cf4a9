package commands_test

import (
	"testing"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/domain/model/courier"
	"parceltrack/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSetCourierStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	restingCourier := newAvailableCourier(t)
	cmd, err := commands.NewSetCourierStatusCommand(restingCourier.ID(), courier.StatusOnBreak)
	require.NoError(t, err)

	courierRepo := new(MockCourierRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		courierRepo.On("GetForUpdate", mock.Anything, restingCourier.ID()).
			Return(restingCourier, nil).Once(),
		courierRepo.On("Update", mock.Anything, restingCourier).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCourierUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetCourierStatusCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, courier.StatusOnBreak, restingCourier.Status())

	courierRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestSetCourierStatusCommandHandler_Handle_AssignedNotSettable(t *testing.T) {
	ctx := t.Context()

	availableCourier := newAvailableCourier(t)
	cmd, err := commands.NewSetCourierStatusCommand(availableCourier.ID(), courier.StatusAssigned)
	require.NoError(t, err)

	courierRepo := new(MockCourierRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		courierRepo.On("GetForUpdate", mock.Anything, availableCourier.ID()).
			Return(availableCourier, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCourierUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetCourierStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, courier.ErrStatusNotSettable)
	require.Equal(t, courier.StatusAvailable, availableCourier.Status())

	courierRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestSetCourierStatusCommandHandler_Handle_CourierOnDelivery(t *testing.T) {
	ctx := t.Context()

	busyCourier := newAvailableCourier(t)
	require.NoError(t, busyCourier.MarkAssigned())

	cmd, err := commands.NewSetCourierStatusCommand(busyCourier.ID(), courier.StatusOnBreak)
	require.NoError(t, err)

	courierRepo := new(MockCourierRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		courierRepo.On("GetForUpdate", mock.Anything, busyCourier.ID()).
			Return(busyCourier, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCourierUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetCourierStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, courier.ErrCourierOnDelivery)
	require.Equal(t, courier.StatusAssigned, busyCourier.Status())

	courierRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestNewSetCourierStatusCommand_Invalid(t *testing.T) {
	_, err := commands.NewSetCourierStatusCommand(kernel.UUID{}, courier.StatusAvailable)
	require.Error(t, err)

	_, err = commands.NewSetCourierStatusCommand(kernel.NewUUID(), courier.StatusUnknown)
	require.Error(t, err)
}

func TestSetCourierStatusCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.SetCourierStatusCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrSetCourierStatusCommandIsNotConstructed)
}
