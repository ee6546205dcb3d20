package queries

import (
	"context"
	"database/sql"
	"errors"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/rating"
	"fooddelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CanRateQueryHandler evaluates rating eligibility without writing
// anything. Mirrors the checks the rating command performs: ownership,
// delivered status, one rating per (order, role), and an existing courier
// link for courier ratings.
type CanRateQueryHandler struct {
	db *gorm.DB
}

// NewCanRateQueryHandler creates a handler for rating eligibility checks.
func NewCanRateQueryHandler(db *gorm.DB) CanRateQueryHandler {
	return CanRateQueryHandler{db: db}
}

// Handle evaluates the eligibility rules. A missing order is an
// ObjectNotFoundError; every other failed rule is a non-error response
// with Allowed false and the failed rule as Reason.
func (h CanRateQueryHandler) Handle(
	ctx context.Context,
	query CanRateQuery,
) (CanRateQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CanRateQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT customer_id, status, courier_id
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	var (
		customerID uuid.UUID
		status     string
		courierID  *uuid.UUID
	)

	err := row.Scan(&customerID, &status, &courierID)
	if errors.Is(err, sql.ErrNoRows) {
		return CanRateQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID().String())
	}
	if err != nil {
		return CanRateQueryResponse{}, err
	}

	if customerID != query.CustomerID().Bytes() {
		return CanRateQueryResponse{Reason: "order belongs to another customer"}, nil
	}
	if status != order.Delivered.String() {
		return CanRateQueryResponse{Reason: "order is not delivered"}, nil
	}
	if query.Role() == rating.RoleCourier && courierID == nil {
		return CanRateQueryResponse{Reason: "order has no courier"}, nil
	}

	var count int64
	err = h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM ratings
		WHERE order_id = ? AND role = ?
	`, query.OrderID().Bytes(), query.Role().String()).Scan(&count).Error
	if err != nil {
		return CanRateQueryResponse{}, err
	}
	if count > 0 {
		return CanRateQueryResponse{Reason: "order is already rated for this role"}, nil
	}

	return CanRateQueryResponse{Allowed: true}, nil
}
