package commands_test

import (
	"errors"
	"testing"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateCourierCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateCourierCommand(id, "bike", "AB-123")
	require.NoError(t, err)

	courierRepo := new(MockCourierRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		courierRepo.On("Add", mock.Anything, mock.AnythingOfType("*courier.Courier")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCourierUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateCourierCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	courierRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateCourierCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateCourierCommand(kernel.NewUUID(), "van", "XY-987")
	require.NoError(t, err)

	courierRepo := new(MockCourierRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		courierRepo.On("Add", mock.Anything, mock.AnythingOfType("*courier.Courier")).
			Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCourierUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateCourierCommandHandler(factory)
	require.Error(t, h.Handle(ctx, cmd))

	courierRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestNewCreateCourierCommand_Invalid(t *testing.T) {
	_, err := commands.NewCreateCourierCommand(kernel.UUID{}, "bike", "AB-123")
	require.Error(t, err)

	_, err = commands.NewCreateCourierCommand(kernel.NewUUID(), "", "AB-123")
	require.ErrorIs(t, err, commands.ErrVehicleTypeIsRequired)

	_, err = commands.NewCreateCourierCommand(kernel.NewUUID(), "bike", "")
	require.ErrorIs(t, err, commands.ErrLicensePlateIsRequired)
}

func TestCreateCourierCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.CreateCourierCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateCourierCommandIsNotConstructed)
}
