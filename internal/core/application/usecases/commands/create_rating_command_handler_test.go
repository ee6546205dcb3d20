package commands_test

import (
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/rating"
	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateRatingCommandHandler_Handle_RestaurantRating(t *testing.T) {
	ctx := t.Context()

	customerID := kernel.NewUUID()
	testOrder := newDeliveredOrder(t, customerID, nil)
	testRest := &restaurant.Restaurant{ID: testOrder.RestaurantID(), Name: "Thai Garden"}

	cmd, err := commands.NewCreateRatingCommand(
		testOrder.ID(), customerID, rating.RoleRestaurant, 5, "great pizza")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	ratingRepo := new(MockRatingRepository)
	uow := new(MockRatingUoW)
	restaurants := new(MockRestaurantReader)
	cache := new(MockRatingCache)

	restaurants.On("Get", ctx, testRest.ID).Return(testRest, nil).Once()
	cache.On("Invalidate", ctx, testRest.ID, rating.RoleRestaurant).Return(nil).Once()

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("RatingRepository").Return(ratingRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		ratingRepo.On("GetByOrderAndRole", ctx, testOrder.ID(), rating.RoleRestaurant).
			Return(nil, errs.NewObjectNotFoundError("rating", testOrder.ID())).Once(),
		ratingRepo.On("Add", ctx, mock.AnythingOfType("*rating.Rating")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRatingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateRatingCommandHandler(
		factory, restaurants, new(MockCourierReader), cache, testLogger())
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, result.SubjectID.IsEqual(testRest.ID))
	assert.Equal(t, "Thai Garden", result.SubjectName)

	added := ratingRepo.Calls[1].Arguments[1].(*rating.Rating)
	assert.Equal(t, 5, added.Score())
	assert.Equal(t, "great pizza", added.Comment())
	assert.Equal(t, rating.RoleRestaurant, added.Role())

	uow.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestCreateRatingCommandHandler_Handle_CourierRating(t *testing.T) {
	ctx := t.Context()

	customerID := kernel.NewUUID()
	courierID := kernel.NewUUID()
	testOrder := newDeliveredOrder(t, customerID, &courierID)
	testCourier := &courier.Courier{ID: courierID, Name: "Jane Smith"}

	cmd, err := commands.NewCreateRatingCommand(
		testOrder.ID(), customerID, rating.RoleCourier, 4, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	ratingRepo := new(MockRatingRepository)
	uow := new(MockRatingUoW)
	couriers := new(MockCourierReader)

	couriers.On("Get", ctx, courierID).Return(testCourier, nil).Once()

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("RatingRepository").Return(ratingRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		ratingRepo.On("GetByOrderAndRole", ctx, testOrder.ID(), rating.RoleCourier).
			Return(nil, errs.NewObjectNotFoundError("rating", testOrder.ID())).Once(),
		ratingRepo.On("Add", ctx, mock.AnythingOfType("*rating.Rating")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRatingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateRatingCommandHandler(
		factory, new(MockRestaurantReader), couriers, nil, testLogger())
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, result.SubjectID.IsEqual(courierID))
	assert.Equal(t, "Jane Smith", result.SubjectName)
}

func TestCreateRatingCommandHandler_Handle_SecondRatingForbidden(t *testing.T) {
	ctx := t.Context()

	customerID := kernel.NewUUID()
	testOrder := newDeliveredOrder(t, customerID, nil)

	existing, err := rating.NewRating(
		kernel.NewUUID(), testOrder.ID(), customerID, testOrder.RestaurantID(),
		rating.RoleRestaurant, 5, "")
	require.NoError(t, err)

	cmd, err := commands.NewCreateRatingCommand(
		testOrder.ID(), customerID, rating.RoleRestaurant, 3, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	ratingRepo := new(MockRatingRepository)
	uow := new(MockRatingUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("RatingRepository").Return(ratingRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		ratingRepo.On("GetByOrderAndRole", ctx, testOrder.ID(), rating.RoleRestaurant).
			Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRatingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateRatingCommandHandler(
		factory, new(MockRestaurantReader), new(MockCourierReader), nil, testLogger())
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrForbidden)
	ratingRepo.AssertNotCalled(t, "Add")
}

func TestCreateRatingCommandHandler_Handle_NotDeliveredForbidden(t *testing.T) {
	ctx := t.Context()

	customerID := kernel.NewUUID()
	testOrder := newPendingOrder(t, customerID)

	cmd, err := commands.NewCreateRatingCommand(
		testOrder.ID(), customerID, rating.RoleRestaurant, 5, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	ratingRepo := new(MockRatingRepository)
	uow := new(MockRatingUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("RatingRepository").Return(ratingRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRatingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateRatingCommandHandler(
		factory, new(MockRestaurantReader), new(MockCourierReader), nil, testLogger())
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrForbidden)
}

func TestCreateRatingCommandHandler_Handle_CourierRatingWithoutCourier(t *testing.T) {
	ctx := t.Context()

	customerID := kernel.NewUUID()
	testOrder := newDeliveredOrder(t, customerID, nil) // no courier linked

	cmd, err := commands.NewCreateRatingCommand(
		testOrder.ID(), customerID, rating.RoleCourier, 5, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	ratingRepo := new(MockRatingRepository)
	uow := new(MockRatingUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("RatingRepository").Return(ratingRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		ratingRepo.On("GetByOrderAndRole", ctx, testOrder.ID(), rating.RoleCourier).
			Return(nil, errs.NewObjectNotFoundError("rating", testOrder.ID())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRatingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateRatingCommandHandler(
		factory, new(MockRestaurantReader), new(MockCourierReader), nil, testLogger())
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	ratingRepo.AssertNotCalled(t, "Add")
}

func TestNewCreateRatingCommand_ScoreOutOfRange(t *testing.T) {
	_, err := commands.NewCreateRatingCommand(
		kernel.NewUUID(), kernel.NewUUID(), rating.RoleRestaurant, 6, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = commands.NewCreateRatingCommand(
		kernel.NewUUID(), kernel.NewUUID(), rating.RoleRestaurant, 0, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}
