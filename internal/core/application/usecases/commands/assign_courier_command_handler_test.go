package commands_test

import (
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/assignment"
	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAssignCourierCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	testOrder := newPendingOrder(t, kernel.NewUUID())
	testCourier := &courier.Courier{ID: kernel.NewUUID(), Name: "Jane Smith"}

	cmd, err := commands.NewAssignCourierCommand(testOrder.ID(), testCourier.ID)
	require.NoError(t, err)

	couriers := new(MockCourierReader)
	couriers.On("Get", ctx, testCourier.ID).Return(testCourier, nil).Once()

	orderRepo := new(MockOrderRepository)
	assignmentRepo := new(MockAssignmentRepository)
	uow := new(MockDispatchUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		assignmentRepo.On("GetActiveByOrder", ctx, testOrder.ID()).
			Return(nil, errs.NewObjectNotFoundError("orderID", testOrder.ID())).Once(),
		assignmentRepo.On("Add", ctx, mock.AnythingOfType("*assignment.Assignment")).Return(nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignCourierCommandHandler(factory, couriers)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	added := assignmentRepo.Calls[1].Arguments[1].(*assignment.Assignment)
	assert.Equal(t, assignment.Assigned, added.Status())
	assert.True(t, added.OrderID().IsEqual(testOrder.ID()))
	assert.True(t, added.CourierID().IsEqual(testCourier.ID))

	require.NotNil(t, testOrder.Courier())
	assert.True(t, testOrder.Courier().IsEqual(testCourier.ID))

	assignmentRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAssignCourierCommandHandler_Handle_ActiveAssignmentConflict(t *testing.T) {
	ctx := t.Context()

	testOrder := newPendingOrder(t, kernel.NewUUID())
	testCourier := &courier.Courier{ID: kernel.NewUUID(), Name: "Jane Smith"}

	existing, err := assignment.NewAssignment(kernel.NewUUID(), testOrder.ID(), kernel.NewUUID())
	require.NoError(t, err)

	cmd, err := commands.NewAssignCourierCommand(testOrder.ID(), testCourier.ID)
	require.NoError(t, err)

	couriers := new(MockCourierReader)
	couriers.On("Get", ctx, testCourier.ID).Return(testCourier, nil).Once()

	orderRepo := new(MockOrderRepository)
	assignmentRepo := new(MockAssignmentRepository)
	uow := new(MockDispatchUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		assignmentRepo.On("GetActiveByOrder", ctx, testOrder.ID()).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignCourierCommandHandler(factory, couriers)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConflict)
	assignmentRepo.AssertNotCalled(t, "Add")
}

func TestAssignCourierCommandHandler_Handle_CourierNotFound(t *testing.T) {
	ctx := t.Context()

	courierID := kernel.NewUUID()
	cmd, err := commands.NewAssignCourierCommand(kernel.NewUUID(), courierID)
	require.NoError(t, err)

	couriers := new(MockCourierReader)
	couriers.On("Get", ctx, courierID).
		Return(nil, errs.NewObjectNotFoundError("courierID", courierID)).Once()

	factory := new(MockDispatchUoWFactory)
	handler := commands.NewAssignCourierCommandHandler(factory, couriers)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	factory.AssertNotCalled(t, "Create")
}

func TestAssignCourierCommandHandler_Handle_TerminalOrderRejected(t *testing.T) {
	ctx := t.Context()

	testCourier := &courier.Courier{ID: kernel.NewUUID(), Name: "Jane Smith"}
	testOrder := newPendingOrder(t, kernel.NewUUID())
	require.NoError(t, testOrder.ChangeStatus(order.Cancelled))

	cmd, err := commands.NewAssignCourierCommand(testOrder.ID(), testCourier.ID)
	require.NoError(t, err)

	couriers := new(MockCourierReader)
	couriers.On("Get", ctx, testCourier.ID).Return(testCourier, nil).Once()

	orderRepo := new(MockOrderRepository)
	assignmentRepo := new(MockAssignmentRepository)
	uow := new(MockDispatchUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		assignmentRepo.On("GetActiveByOrder", ctx, testOrder.ID()).
			Return(nil, errs.NewObjectNotFoundError("orderID", testOrder.ID())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignCourierCommandHandler(factory, couriers)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
	orderRepo.AssertNotCalled(t, "Update")
}
