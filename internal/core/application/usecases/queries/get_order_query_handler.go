package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order with its line items.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Absence is reported as an ObjectNotFoundError.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, customer_id, restaurant_id, address_id, courier_id,
			status, total, created_at, delivered_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	var (
		id, customerID, restaurantID, addressID uuid.UUID
		courierID                               *uuid.UUID
		status                                  string
		total                                   decimal.Decimal
		createdAt                               time.Time
		deliveredAt                             sql.NullTime
	)

	err := row.Scan(
		&id, &customerID, &restaurantID, &addressID, &courierID,
		&status, &total, &createdAt, &deliveredAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID().String())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	response := GetOrderQueryResponse{
		Status:    status,
		CreatedAt: createdAt,
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if response.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if response.RestaurantID, err = kernel.UUIDFromBytes(restaurantID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if response.AddressID, err = kernel.UUIDFromBytes(addressID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if courierID != nil {
		cID, cErr := kernel.UUIDFromBytes((*courierID)[:])
		if cErr != nil {
			return GetOrderQueryResponse{}, cErr
		}
		response.CourierID = &cID
	}
	if response.Total, err = kernel.NewMoney(total); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if deliveredAt.Valid {
		response.DeliveredAt = &deliveredAt.Time
	}

	if response.Items, err = h.loadItems(ctx, query.OrderID()); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return response, nil
}

func (h GetOrderQueryHandler) loadItems(
	ctx context.Context,
	orderID kernel.UUID,
) ([]GetOrderItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT menu_item_id, name, quantity, unit_price
		FROM order_items
		WHERE order_id = ?
		ORDER BY name
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]GetOrderItemResponse, 0)
	for rows.Next() {
		var (
			menuItemID uuid.UUID
			item       GetOrderItemResponse
			price      decimal.Decimal
		)

		if err = rows.Scan(&menuItemID, &item.Name, &item.Quantity, &price); err != nil {
			return nil, err
		}
		if item.MenuItemID, err = kernel.UUIDFromBytes(menuItemID[:]); err != nil {
			return nil, err
		}
		if item.UnitPrice, err = kernel.NewMoney(price); err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, rows.Err()
}
