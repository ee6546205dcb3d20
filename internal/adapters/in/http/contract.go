package http

import (
	"errors"
	"net/http"
	"time"

	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the uniform error body returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrderItem is one line of an order placement request.
type NewOrderItem struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
}

// NewOrder is the order placement request body.
type NewOrder struct {
	RestaurantID string         `json:"restaurant_id"`
	AddressID    string         `json:"address_id"`
	Items        []NewOrderItem `json:"items"`
}

// OrderCreated is returned on successful placement.
type OrderCreated struct {
	ID string `json:"id"`
}

// StatusChange is the body of a status update request.
type StatusChange struct {
	Status string `json:"status"`
}

// AssignCourier is the body of a manual courier assignment request.
type AssignCourier struct {
	CourierID string `json:"courier_id"`
}

// OrderItem is one line of an order in responses.
type OrderItem struct {
	MenuItemID string `json:"menu_item_id"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	UnitPrice  string `json:"unit_price"`
}

// Order is the full order representation.
type Order struct {
	ID           string      `json:"id"`
	CustomerID   string      `json:"customer_id"`
	RestaurantID string      `json:"restaurant_id"`
	AddressID    string      `json:"address_id"`
	CourierID    *string     `json:"courier_id,omitempty"`
	Status       string      `json:"status"`
	Total        string      `json:"total"`
	CreatedAt    time.Time   `json:"created_at"`
	DeliveredAt  *time.Time  `json:"delivered_at,omitempty"`
	Items        []OrderItem `json:"items"`
}

// OrderSummary is the short order representation used in listings.
type OrderSummary struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id"`
	Status     string    `json:"status"`
	Total      string    `json:"total"`
	CreatedAt  time.Time `json:"created_at"`
}

// Restaurant is one search result.
type Restaurant struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	CuisineType   string   `json:"cuisine_type"`
	City          string   `json:"city"`
	State         string   `json:"state"`
	Country       string   `json:"country"`
	AverageRating float64  `json:"average_rating"`
	DistanceKm    *float64 `json:"distance_km,omitempty"`
}

// NewRating is the rating creation request body.
type NewRating struct {
	OrderID string `json:"order_id"`
	Role    string `json:"role"`
	Score   int    `json:"score"`
	Comment string `json:"comment"`
}

// RatingCreated is returned on successful rating creation.
type RatingCreated struct {
	ID          string `json:"id"`
	SubjectID   string `json:"subject_id"`
	SubjectName string `json:"subject_name"`
}

// AverageRating is the aggregated rating of one subject.
type AverageRating struct {
	SubjectID string  `json:"subject_id"`
	Role      string  `json:"role"`
	Average   float64 `json:"average"`
}

// RatingEligibility reports whether the caller may rate an order.
type RatingEligibility struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}

// respondError maps application errors to HTTP status codes. Unknown errors
// become opaque 500s so storage details never leak to clients.
func respondError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	message := "internal error"

	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, errs.ErrObjectNotFound):
		code, message = http.StatusNotFound, err.Error()
	case errors.Is(err, errs.ErrForbidden):
		code, message = http.StatusForbidden, err.Error()
	case errors.Is(err, errs.ErrConflict), errors.Is(err, errs.ErrInvalidState):
		code, message = http.StatusConflict, err.Error()
	}

	return ctx.JSON(code, Error{Code: code, Message: message})
}
