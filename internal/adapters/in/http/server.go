// Package http exposes the order coordination core over a REST API. The
// calling customer is identified by the X-Customer-Id header, which the API
// gateway fills in after authentication.
package http

import (
	"net/http"
	"strconv"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/rating"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CustomerIDHeader carries the authenticated customer's id.
const CustomerIDHeader = "X-Customer-Id"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler        commands.PlaceOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler
	assignCourierHandler     commands.AssignCourierCommandHandler
	markPickedUpHandler      commands.MarkAssignmentPickedUpCommandHandler
	markDeliveredHandler     commands.MarkAssignmentDeliveredCommandHandler
	cancelAssignmentHandler  commands.CancelAssignmentCommandHandler
	createRatingHandler      commands.CreateRatingCommandHandler

	// Query handlers
	searchRestaurantsHandler    queries.SearchRestaurantsQueryHandler
	getOrderHandler             queries.GetOrderQueryHandler
	getUncompletedOrdersHandler queries.GetUncompletedOrdersQueryHandler
	getAverageRatingHandler     queries.GetAverageRatingQueryHandler
	canRateHandler              queries.CanRateQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	assignCourierHandler commands.AssignCourierCommandHandler,
	markPickedUpHandler commands.MarkAssignmentPickedUpCommandHandler,
	markDeliveredHandler commands.MarkAssignmentDeliveredCommandHandler,
	cancelAssignmentHandler commands.CancelAssignmentCommandHandler,
	createRatingHandler commands.CreateRatingCommandHandler,
	searchRestaurantsHandler queries.SearchRestaurantsQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getUncompletedOrdersHandler queries.GetUncompletedOrdersQueryHandler,
	getAverageRatingHandler queries.GetAverageRatingQueryHandler,
	canRateHandler queries.CanRateQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:           placeOrderHandler,
		updateOrderStatusHandler:    updateOrderStatusHandler,
		cancelOrderHandler:          cancelOrderHandler,
		assignCourierHandler:        assignCourierHandler,
		markPickedUpHandler:         markPickedUpHandler,
		markDeliveredHandler:        markDeliveredHandler,
		cancelAssignmentHandler:     cancelAssignmentHandler,
		createRatingHandler:         createRatingHandler,
		searchRestaurantsHandler:    searchRestaurantsHandler,
		getOrderHandler:             getOrderHandler,
		getUncompletedOrdersHandler: getUncompletedOrdersHandler,
		getAverageRatingHandler:     getAverageRatingHandler,
		canRateHandler:              canRateHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.PlaceOrder)
	api.GET("/orders", s.GetUncompletedOrders)
	api.GET("/orders/:orderID", s.GetOrder)
	api.PATCH("/orders/:orderID/status", s.UpdateOrderStatus)
	api.POST("/orders/:orderID/cancel", s.CancelOrder)
	api.POST("/orders/:orderID/assign", s.AssignCourier)

	api.POST("/assignments/:assignmentID/pickup", s.MarkAssignmentPickedUp)
	api.POST("/assignments/:assignmentID/deliver", s.MarkAssignmentDelivered)
	api.POST("/assignments/:assignmentID/cancel", s.CancelAssignment)

	api.GET("/restaurants/search", s.SearchRestaurants)

	api.POST("/ratings", s.CreateRating)
	api.GET("/ratings/average", s.GetAverageRating)
	api.GET("/ratings/can-rate", s.CanRate)
}

func customerID(ctx echo.Context) (kernel.UUID, error) {
	header := ctx.Request().Header.Get(CustomerIDHeader)
	if header == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError("customer id header")
	}
	return kernel.UUIDFromString(header)
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	caller, err := customerID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("request body"))
	}

	restaurantID, err := kernel.UUIDFromString(body.RestaurantID)
	if err != nil {
		return respondError(ctx, err)
	}
	addressID, err := kernel.UUIDFromString(body.AddressID)
	if err != nil {
		return respondError(ctx, err)
	}

	items := make([]commands.PlaceOrderItem, 0, len(body.Items))
	for _, line := range body.Items {
		menuItemID, itemErr := kernel.UUIDFromString(line.MenuItemID)
		if itemErr != nil {
			return respondError(ctx, itemErr)
		}
		item, itemErr := commands.NewPlaceOrderItem(menuItemID, line.Quantity)
		if itemErr != nil {
			return respondError(ctx, itemErr)
		}
		items = append(items, item)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(orderID, caller, restaurantID, addressID, items)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, OrderCreated{ID: orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:orderID.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	found, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := Order{
		ID:           found.ID.String(),
		CustomerID:   found.CustomerID.String(),
		RestaurantID: found.RestaurantID.String(),
		AddressID:    found.AddressID.String(),
		Status:       found.Status,
		Total:        found.Total.String(),
		CreatedAt:    found.CreatedAt,
		DeliveredAt:  found.DeliveredAt,
		Items:        make([]OrderItem, 0, len(found.Items)),
	}
	if found.CourierID != nil {
		id := found.CourierID.String()
		response.CourierID = &id
	}
	for _, item := range found.Items {
		response.Items = append(response.Items, OrderItem{
			MenuItemID: item.MenuItemID.String(),
			Name:       item.Name,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice.String(),
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetUncompletedOrders handles GET /api/v1/orders.
func (s *Server) GetUncompletedOrders(ctx echo.Context) error {
	uncompleted, err := s.getUncompletedOrdersHandler.Handle(
		ctx.Request().Context(), queries.NewGetUncompletedOrdersQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OrderSummary, len(uncompleted))
	for i, o := range uncompleted {
		response[i] = OrderSummary{
			ID:         o.ID.String(),
			CustomerID: o.CustomerID.String(),
			Status:     o.Status,
			Total:      o.Total.String(),
			CreatedAt:  o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:orderID/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return respondError(ctx, err)
	}

	var body StatusChange
	if err := ctx.Bind(&body); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("request body"))
	}

	status, err := order.StatusFromString(body.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:orderID/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	caller, err := customerID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, caller)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignCourier handles POST /api/v1/orders/:orderID/assign.
func (s *Server) AssignCourier(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return respondError(ctx, err)
	}

	var body AssignCourier
	if err := ctx.Bind(&body); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("request body"))
	}

	courierID, err := kernel.UUIDFromString(body.CourierID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAssignCourierCommand(orderID, courierID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.assignCourierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkAssignmentPickedUp handles POST /api/v1/assignments/:assignmentID/pickup.
func (s *Server) MarkAssignmentPickedUp(ctx echo.Context) error {
	assignmentID, err := pathUUID(ctx, "assignmentID")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewMarkAssignmentPickedUpCommand(assignmentID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.markPickedUpHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkAssignmentDelivered handles POST /api/v1/assignments/:assignmentID/deliver.
func (s *Server) MarkAssignmentDelivered(ctx echo.Context) error {
	assignmentID, err := pathUUID(ctx, "assignmentID")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewMarkAssignmentDeliveredCommand(assignmentID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.markDeliveredHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelAssignment handles POST /api/v1/assignments/:assignmentID/cancel.
func (s *Server) CancelAssignment(ctx echo.Context) error {
	assignmentID, err := pathUUID(ctx, "assignmentID")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCancelAssignmentCommand(assignmentID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.cancelAssignmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SearchRestaurants handles GET /api/v1/restaurants/search. All filters are
// optional query parameters; an empty query lists everything.
func (s *Server) SearchRestaurants(ctx echo.Context) error {
	criteria := services.SearchCriteria{
		Name:        ctx.QueryParam("name"),
		CuisineType: ctx.QueryParam("cuisine"),
		City:        ctx.QueryParam("city"),
		State:       ctx.QueryParam("state"),
		Country:     ctx.QueryParam("country"),
	}

	if raw := ctx.QueryParam("min_price"); raw != "" {
		price, err := kernel.MoneyFromString(raw)
		if err != nil {
			return respondError(ctx, err)
		}
		criteria.MinPrice = &price
	}
	if raw := ctx.QueryParam("max_price"); raw != "" {
		price, err := kernel.MoneyFromString(raw)
		if err != nil {
			return respondError(ctx, err)
		}
		criteria.MaxPrice = &price
	}
	if raw := ctx.QueryParam("max_delivery_time_min"); raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil {
			return respondError(ctx, errs.NewValueIsInvalidError("max_delivery_time_min"))
		}
		criteria.MaxDeliveryTimeMin = minutes
	}
	if rawLat, rawLon := ctx.QueryParam("lat"), ctx.QueryParam("lon"); rawLat != "" || rawLon != "" {
		lat, latErr := strconv.ParseFloat(rawLat, 64)
		lon, lonErr := strconv.ParseFloat(rawLon, 64)
		if latErr != nil || lonErr != nil {
			return respondError(ctx, errs.NewValueIsInvalidError("lat/lon"))
		}
		origin, err := kernel.NewGeoPoint(lat, lon)
		if err != nil {
			return respondError(ctx, err)
		}
		criteria.Origin = &origin
	}
	if raw := ctx.QueryParam("max_distance_km"); raw != "" {
		distance, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return respondError(ctx, errs.NewValueIsInvalidError("max_distance_km"))
		}
		criteria.MaxDistanceKm = distance
	}

	query, err := queries.NewSearchRestaurantsQuery(criteria)
	if err != nil {
		return respondError(ctx, err)
	}

	results, err := s.searchRestaurantsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]Restaurant, len(results))
	for i, r := range results {
		response[i] = Restaurant{
			ID:            r.ID.String(),
			Name:          r.Name,
			CuisineType:   r.CuisineType,
			City:          r.City,
			State:         r.State,
			Country:       r.Country,
			AverageRating: r.AverageRating,
			DistanceKm:    r.DistanceKm,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateRating handles POST /api/v1/ratings.
func (s *Server) CreateRating(ctx echo.Context) error {
	caller, err := customerID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var body NewRating
	if err := ctx.Bind(&body); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("request body"))
	}

	orderID, err := kernel.UUIDFromString(body.OrderID)
	if err != nil {
		return respondError(ctx, err)
	}
	role, err := rating.RoleFromString(body.Role)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateRatingCommand(orderID, caller, role, body.Score, body.Comment)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.createRatingHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, RatingCreated{
		ID:          result.RatingID.String(),
		SubjectID:   result.SubjectID.String(),
		SubjectName: result.SubjectName,
	})
}

// GetAverageRating handles GET /api/v1/ratings/average.
func (s *Server) GetAverageRating(ctx echo.Context) error {
	subjectID, err := kernel.UUIDFromString(ctx.QueryParam("subject_id"))
	if err != nil {
		return respondError(ctx, err)
	}
	role, err := rating.RoleFromString(ctx.QueryParam("role"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetAverageRatingQuery(subjectID, role)
	if err != nil {
		return respondError(ctx, err)
	}

	average, err := s.getAverageRatingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, AverageRating{
		SubjectID: average.SubjectID.String(),
		Role:      average.Role.String(),
		Average:   average.Average,
	})
}

// CanRate handles GET /api/v1/ratings/can-rate.
func (s *Server) CanRate(ctx echo.Context) error {
	caller, err := customerID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	orderID, err := kernel.UUIDFromString(ctx.QueryParam("order_id"))
	if err != nil {
		return respondError(ctx, err)
	}
	role, err := rating.RoleFromString(ctx.QueryParam("role"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewCanRateQuery(orderID, caller, role)
	if err != nil {
		return respondError(ctx, err)
	}

	eligibility, err := s.canRateHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, RatingEligibility{
		Allowed: eligibility.Allowed,
		Reason:  eligibility.Reason,
	})
}
