package commands_test

import (
	"testing"
	"time"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/waybill"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTransitionWaybillStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	w := newTestWaybill(t, "SW-1001", 2)
	require.NoError(t, w.MarkInTransit())

	cmd, err := commands.NewTransitionWaybillStatusCommand(
		w.ID(), waybill.StatusOutForDelivery, "", time.Time{},
	)
	require.NoError(t, err)

	waybillRepo := new(MockWaybillRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WaybillRepository").Return(waybillRepo).Once(),
		waybillRepo.On("Get", ctx, w.ID()).Return(w, nil).Once(),
		waybillRepo.On("Update", ctx, mock.AnythingOfType("*waybill.Waybill")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWaybillUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewTransitionWaybillStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, waybill.StatusOutForDelivery, w.Status())
	waybillRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestTransitionWaybillStatusCommandHandler_Handle_EdgeOffTheTable(t *testing.T) {
	ctx := t.Context()

	w := newTestWaybill(t, "SW-1001", 2)

	cmd, err := commands.NewTransitionWaybillStatusCommand(
		w.ID(), waybill.StatusDelivered, "R. Shah", time.Time{},
	)
	require.NoError(t, err)

	waybillRepo := new(MockWaybillRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WaybillRepository").Return(waybillRepo).Once(),
		waybillRepo.On("Get", ctx, w.ID()).Return(w, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWaybillUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewTransitionWaybillStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, waybill.ErrInvalidTransition)
	assert.Equal(t, waybill.StatusPending, w.Status())
	waybillRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestNewTransitionWaybillStatusCommand_InvalidStatus(t *testing.T) {
	_, err := commands.NewTransitionWaybillStatusCommand(
		kernel.NewUUID(), waybill.StatusUnknown, "", time.Time{},
	)
	require.ErrorIs(t, err, commands.ErrNewStatusIsInvalid)
}
